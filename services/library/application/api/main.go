package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/kenone20/domainogen/pkg/app"
	"github.com/kenone20/domainogen/services/library/application/handlers"
	appsvcs "github.com/kenone20/domainogen/services/library/application/services"
)

// LibraryRoutes registers history and favorites endpoints on the provided
// chi router. avail re-checks favorites against the availability context.
func LibraryRoutes(r chi.Router, a *app.Application, avail appsvcs.Rechecker) *appsvcs.Services {
	svcs := appsvcs.New(a, avail)
	Mount(r, svcs)
	return svcs
}

// Mount registers library endpoints backed by svcs. Every route expects the
// owner bound by auth.EnsureOwner.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Get("/history", handlers.NewListHistoryHandler(svcs).Execute)
		r.Delete("/history", handlers.NewClearHistoryHandler(svcs).Execute)
		r.Get("/analyses/{domain}", handlers.NewGetAnalysisHandler(svcs).Execute)
		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", handlers.NewListFavoritesHandler(svcs).Execute)
			r.Post("/toggle", handlers.NewToggleFavoriteHandler(svcs).Execute)
			r.Post("/recheck", handlers.NewRecheckFavoritesHandler(svcs).Execute)
		})
	})
}
