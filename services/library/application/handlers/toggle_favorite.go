package handlers

import (
	"net/http"

	"github.com/kenone20/domainogen/pkg/errhttp"
	"github.com/kenone20/domainogen/pkg/httpx"
	"github.com/kenone20/domainogen/pkg/requestctx"
	pkgvalidator "github.com/kenone20/domainogen/pkg/validator"
	appsvcs "github.com/kenone20/domainogen/services/library/application/services"
)

// ToggleFavoriteRequest is the request body for POST /favorites/toggle.
type ToggleFavoriteRequest struct {
	Domain string `json:"domain" validate:"required,max=253"                      example:"zenflow.io"`
	Status string `json:"status" validate:"omitempty,oneof=pending available taken" example:"available"`
} // @name ToggleFavoriteRequest

// ToggleFavoriteResponse reports whether the domain is starred afterwards.
type ToggleFavoriteResponse struct {
	Domain      string `json:"domain"       example:"zenflow.io"`
	IsFavorited bool   `json:"is_favorited" example:"true"`
} // @name ToggleFavoriteResponse

// ToggleFavoriteHandler handles POST /favorites/toggle requests.
type ToggleFavoriteHandler struct {
	svc *appsvcs.Services
}

// NewToggleFavoriteHandler returns a ToggleFavoriteHandler backed by the given services.
func NewToggleFavoriteHandler(svc *appsvcs.Services) *ToggleFavoriteHandler {
	return &ToggleFavoriteHandler{svc: svc}
}

// Execute stars a domain, or un-stars it when it is already a favorite.
//
//	@Summary	Toggle a favorite
//	@Tags		library
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ToggleFavoriteRequest	true	"Domain to toggle"
//	@Success	200		{object}	ToggleFavoriteResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	422		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/favorites/toggle [post]
func (h *ToggleFavoriteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ToggleFavoriteRequest](w, r)
	if !ok {
		return
	}

	ownerID, err := requestctx.OwnerIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	starred, err := h.svc.Library.ToggleFavorite(r.Context(), ownerID, req.Domain, req.Status)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ToggleFavoriteResponse{Domain: req.Domain, IsFavorited: starred})
}
