package api

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/kenone20/domainogen/pkg/app"
	"github.com/kenone20/domainogen/services/studio/application/handlers"
	appsvcs "github.com/kenone20/domainogen/services/studio/application/services"
)

// StudioRoutes registers studio endpoints on the provided chi router.
// avail and library are the studio's views of the other contexts.
func StudioRoutes(ctx context.Context, r chi.Router, a *app.Application, avail appsvcs.AvailabilityChecker, library appsvcs.Library) *appsvcs.Services {
	svcs := appsvcs.New(ctx, a, avail, library)
	Mount(r, svcs)
	return svcs
}

// Mount registers studio endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Post("/generate", handlers.NewGenerateHandler(svcs).Execute)
		r.Post("/analyze", handlers.NewAnalyzeHandler(svcs).Execute)
		r.Post("/logo", handlers.NewLogoHandler(svcs).Execute)
	})
}
