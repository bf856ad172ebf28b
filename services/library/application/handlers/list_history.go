package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	"github.com/kenone20/domainogen/pkg/requestctx"
	appsvcs "github.com/kenone20/domainogen/services/library/application/services"
)

// ListHistoryHandler handles GET /history requests.
type ListHistoryHandler struct {
	svc *appsvcs.Services
}

// NewListHistoryHandler returns a ListHistoryHandler backed by the given services.
func NewListHistoryHandler(svc *appsvcs.Services) *ListHistoryHandler {
	return &ListHistoryHandler{svc: svc}
}

// Execute lists the caller's past generations and analyses, newest first.
//
//	@Summary		List history
//	@Tags			library
//	@Produce		json
//	@Success		200	{array}		HistoryEntryResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		503	{object}	ErrorResponse
//	@Router			/history [get]
func (h *ListHistoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := requestctx.OwnerIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	entries, err := h.svc.Library.History(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toHistoryResponses(entries))
}
