package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	"github.com/kenone20/domainogen/pkg/requestctx"
	appsvcs "github.com/kenone20/domainogen/services/library/application/services"
)

// RecheckFavoritesHandler handles POST /favorites/recheck requests.
type RecheckFavoritesHandler struct {
	svc *appsvcs.Services
}

// NewRecheckFavoritesHandler returns a RecheckFavoritesHandler backed by the given services.
func NewRecheckFavoritesHandler(svc *appsvcs.Services) *RecheckFavoritesHandler {
	return &RecheckFavoritesHandler{svc: svc}
}

// Execute re-evaluates the availability of every favorite, ignoring cached
// verdicts, and returns the refreshed list.
//
//	@Summary	Re-check favorites
//	@Tags		library
//	@Produce	json
//	@Success	200	{array}		FavoriteResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/favorites/recheck [post]
func (h *RecheckFavoritesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := requestctx.OwnerIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	favs, err := h.svc.Library.RecheckFavorites(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toFavoriteResponses(favs))
}
