package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	pkgvalidator "github.com/kenone20/domainogen/pkg/validator"
	appsvcs "github.com/kenone20/domainogen/services/studio/application/services"
)

// LogoRequest is the request body for POST /logo.
type LogoRequest struct {
	Prompt string `json:"prompt" validate:"required,max=1000" example:"A minimalist logo for a company called 'brandify'"`
} // @name LogoRequest

// LogoHandler handles POST /logo requests.
type LogoHandler struct {
	svc *appsvcs.Services
}

// NewLogoHandler returns a LogoHandler backed by the given services.
func NewLogoHandler(svc *appsvcs.Services) *LogoHandler {
	return &LogoHandler{svc: svc}
}

// Execute draws a logo image.
//
//	@Summary		Generate a logo
//	@Description	Returns a base64 image from the image model, or a seeded placeholder when the model is unavailable.
//	@Tags			studio
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LogoRequest	true	"Logo prompt"
//	@Success		200		{object}	models.Logo
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		502		{object}	ErrorResponse
//	@Router			/logo [post]
func (h *LogoHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LogoRequest](w, r)
	if !ok {
		return
	}

	logo, err := h.svc.Studio.Logo(r.Context(), req.Prompt)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, logo)
}
