package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/httpx"
	pkgvalidator "github.com/kenone20/domainogen/pkg/validator"
	appsvcs "github.com/kenone20/domainogen/services/availability/application/services"
)

// CheckAvailabilityRequest is the request body for POST /availability/check.
type CheckAvailabilityRequest struct {
	Domains []string `json:"domains" validate:"required,min=1,max=100,dive,required,max=253" example:"brandify.io,love.com"`
} // @name CheckAvailabilityRequest

// CheckAvailabilityResponse maps each unique requested name to its verdict.
type CheckAvailabilityResponse struct {
	Results map[string]bool `json:"results"`
} // @name CheckAvailabilityResponse

// CheckAvailabilityHandler handles POST /availability/check requests.
type CheckAvailabilityHandler struct {
	svc *appsvcs.Services
}

// NewCheckAvailabilityHandler returns a CheckAvailabilityHandler backed by the given services.
func NewCheckAvailabilityHandler(svc *appsvcs.Services) *CheckAvailabilityHandler {
	return &CheckAvailabilityHandler{svc: svc}
}

// Execute checks a batch of domain names concurrently.
//
//	@Summary		Check availability of many domains
//	@Description	Runs one concurrent check per unique name. Checks that time out are reported as taken.
//	@Tags			availability
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckAvailabilityRequest	true	"Names to check"
//	@Success		200		{object}	CheckAvailabilityResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/availability/check [post]
func (h *CheckAvailabilityHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CheckAvailabilityRequest](w, r)
	if !ok {
		return
	}

	httpx.JSON(w, http.StatusOK, CheckAvailabilityResponse{
		Results: h.svc.Availability.CheckMany(r.Context(), req.Domains),
	})
}
