package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	"github.com/kenone20/domainogen/pkg/requestctx"
	appsvcs "github.com/kenone20/domainogen/services/library/application/services"
)

// ListFavoritesHandler handles GET /favorites requests.
type ListFavoritesHandler struct {
	svc *appsvcs.Services
}

// NewListFavoritesHandler returns a ListFavoritesHandler backed by the given services.
func NewListFavoritesHandler(svc *appsvcs.Services) *ListFavoritesHandler {
	return &ListFavoritesHandler{svc: svc}
}

// Execute lists the caller's favorites, newest first.
//
//	@Summary	List favorites
//	@Tags		library
//	@Produce	json
//	@Success	200	{array}		FavoriteResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/favorites [get]
func (h *ListFavoritesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	ownerID, err := requestctx.OwnerIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	favs, err := h.svc.Library.Favorites(r.Context(), ownerID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toFavoriteResponses(favs))
}
