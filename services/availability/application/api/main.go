package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/kenone20/domainogen/pkg/app"
	"github.com/kenone20/domainogen/services/availability/application/handlers"
	appsvcs "github.com/kenone20/domainogen/services/availability/application/services"
)

// AvailabilityRoutes registers availability endpoints on the provided chi
// router and returns the wired services so other contexts can reuse them.
func AvailabilityRoutes(r chi.Router, a *app.Application) *appsvcs.Services {
	svcs := appsvcs.New(a)
	Mount(r, svcs)
	return svcs
}

// Mount registers availability endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Get("/tlds", handlers.NewListTLDsHandler(svcs).Execute)
		r.Route("/availability", func(r chi.Router) {
			r.Post("/check", handlers.NewCheckAvailabilityHandler(svcs).Execute)
			r.Get("/{domain}", handlers.NewGetAvailabilityHandler(svcs).Execute)
			r.Get("/{domain}/age", handlers.NewGetAgeHandler(svcs).Execute)
		})
	})
}
