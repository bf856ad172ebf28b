package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/httpx"
	appsvcs "github.com/kenone20/domainogen/services/availability/application/services"
)

// TLDsResponse lists the TLDs users can generate names for.
type TLDsResponse struct {
	TLDs []string `json:"tlds" example:".com,.io,.ai"`
} // @name TLDsResponse

// ListTLDsHandler handles GET /tlds requests.
type ListTLDsHandler struct {
	svc *appsvcs.Services
}

// NewListTLDsHandler returns a ListTLDsHandler backed by the given services.
func NewListTLDsHandler(svc *appsvcs.Services) *ListTLDsHandler {
	return &ListTLDsHandler{svc: svc}
}

// Execute returns the curated TLD options.
//
//	@Summary	List TLD options
//	@Tags		availability
//	@Produce	json
//	@Success	200	{object}	TLDsResponse
//	@Router		/tlds [get]
func (h *ListTLDsHandler) Execute(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, TLDsResponse{TLDs: h.svc.Availability.TLDs()})
}
