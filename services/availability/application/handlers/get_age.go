package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	appsvcs "github.com/kenone20/domainogen/services/availability/application/services"
)

// AgeResponse is the estimated registration age of a domain.
type AgeResponse struct {
	Domain string `json:"domain" example:"love.com"`
	Age    string `json:"age"    example:"21 years"`
} // @name AgeResponse

// GetAgeHandler handles GET /availability/{domain}/age requests.
type GetAgeHandler struct {
	svc *appsvcs.Services
}

// NewGetAgeHandler returns a GetAgeHandler backed by the given services.
func NewGetAgeHandler(svc *appsvcs.Services) *GetAgeHandler {
	return &GetAgeHandler{svc: svc}
}

// Execute estimates the age of a domain regardless of its availability.
//
//	@Summary		Estimate domain age
//	@Tags			availability
//	@Produce		json
//	@Param			domain	path		string	true	"Domain name"	example(love.com)
//	@Success		200		{object}	AgeResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/availability/{domain}/age [get]
func (h *GetAgeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	age, err := h.svc.Availability.Age(r.Context(), domain)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, AgeResponse{
		Domain: strings.ToLower(strings.TrimSpace(domain)),
		Age:    age.String(),
	})
}
