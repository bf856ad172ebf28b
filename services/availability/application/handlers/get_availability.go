package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	appsvcs "github.com/kenone20/domainogen/services/availability/application/services"
)

// VerdictResponse is the availability verdict for one name.
type VerdictResponse struct {
	Domain    string `json:"domain"    example:"brandify.io"`
	Available bool   `json:"available" example:"true"`
	Bucket    string `json:"bucket"    example:"io-ai"`
} // @name VerdictResponse

// GetAvailabilityHandler handles GET /availability/{domain} requests.
type GetAvailabilityHandler struct {
	svc *appsvcs.Services
}

// NewGetAvailabilityHandler returns a GetAvailabilityHandler backed by the given services.
func NewGetAvailabilityHandler(svc *appsvcs.Services) *GetAvailabilityHandler {
	return &GetAvailabilityHandler{svc: svc}
}

// Execute checks a single domain name.
//
//	@Summary		Check availability of one domain
//	@Tags			availability
//	@Produce		json
//	@Param			domain	path		string	true	"Domain name"	example(brandify.io)
//	@Success		200		{object}	VerdictResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/availability/{domain} [get]
func (h *GetAvailabilityHandler) Execute(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Availability.Check(r.Context(), chi.URLParam(r, "domain"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, VerdictResponse{
		Domain:    v.Name,
		Available: v.Available,
		Bucket:    string(v.Bucket),
	})
}
