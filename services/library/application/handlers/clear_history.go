package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/requestctx"
	appsvcs "github.com/kenone20/domainogen/services/library/application/services"
)

// ClearHistoryHandler handles DELETE /history requests.
type ClearHistoryHandler struct {
	svc *appsvcs.Services
}

// NewClearHistoryHandler returns a ClearHistoryHandler backed by the given services.
func NewClearHistoryHandler(svc *appsvcs.Services) *ClearHistoryHandler {
	return &ClearHistoryHandler{svc: svc}
}

// Execute removes the caller's entire history. Favorites are kept.
//
//	@Summary	Clear history
//	@Tags		library
//	@Success	204
//	@Failure	401	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/history [delete]
func (h *ClearHistoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := requestctx.OwnerIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if err := h.svc.Library.ClearHistory(r.Context(), ownerID); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
