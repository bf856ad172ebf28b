package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	pkgvalidator "github.com/kenone20/domainogen/pkg/validator"
	appsvcs "github.com/kenone20/domainogen/services/studio/application/services"
)

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	Domain string `json:"domain" validate:"required,max=253" example:"brandify.io"`
} // @name AnalyzeRequest

// AnalyzeHandler handles POST /analyze requests.
type AnalyzeHandler struct {
	svc *appsvcs.Services
}

// NewAnalyzeHandler returns an AnalyzeHandler backed by the given services.
func NewAnalyzeHandler(svc *appsvcs.Services) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// Execute appraises one domain.
//
//	@Summary		Analyze a domain
//	@Description	Returns scores, value estimate, branding material and the estimated registration age. Falls back to a deterministic analysis when the model is unavailable.
//	@Tags			studio
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AnalyzeRequest	true	"Domain to analyze"
//	@Success		200		{object}	models.Analysis
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/analyze [post]
func (h *AnalyzeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AnalyzeRequest](w, r)
	if !ok {
		return
	}

	analysis, err := h.svc.Studio.Analyze(r.Context(), req.Domain)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, analysis)
}
