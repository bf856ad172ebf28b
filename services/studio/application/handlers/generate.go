package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	pkgvalidator "github.com/kenone20/domainogen/pkg/validator"
	appsvcs "github.com/kenone20/domainogen/services/studio/application/services"
	"github.com/kenone20/domainogen/services/studio/domain/models"
)

// GenerateRequest is the request body for POST /generate.
type GenerateRequest struct {
	Prompt string   `json:"prompt" validate:"required,max=500" example:"a SaaS for online courses"`
	Style  string   `json:"style" validate:"omitempty,oneof=Brandable Modern Luxury Techy Two-word" example:"Brandable"`
	TLDs   []string `json:"tlds" validate:"max=17,dive,tld" example:".com,.io"`
} // @name GenerateRequest

// GenerateResponse lists candidates with resolved availability.
type GenerateResponse struct {
	Candidates  []models.CandidateDomain `json:"candidates"`
	SourcedFrom models.Provenance        `json:"sourced_from" example:"mock"`
} // @name GenerateResponse

// GenerateHandler handles POST /generate requests.
type GenerateHandler struct {
	svc *appsvcs.Services
}

// NewGenerateHandler returns a GenerateHandler backed by the given services.
func NewGenerateHandler(svc *appsvcs.Services) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

// Execute generates candidate domains for a concept.
//
//	@Summary		Generate domain names
//	@Description	Produces candidate names, resolves each one's availability and marks the caller's favorites. Falls back to deterministic names when the model is unavailable.
//	@Tags			studio
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GenerateRequest	true	"Concept, style and TLDs"
//	@Success		200		{object}	GenerateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/generate [post]
func (h *GenerateHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[GenerateRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.Studio.Generate(r.Context(), req.Prompt, req.Style, req.TLDs)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, GenerateResponse{
		Candidates:  res.Candidates,
		SourcedFrom: res.SourcedFrom,
	})
}
