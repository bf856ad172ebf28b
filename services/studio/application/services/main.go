package services

import (
	"context"

	"github.com/kenone20/domainogen/pkg/app"
	domainsvcs "github.com/kenone20/domainogen/services/studio/domain/services"
	"github.com/kenone20/domainogen/services/studio/infrastructure/gemini"
	"github.com/kenone20/domainogen/services/studio/infrastructure/placeholder"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Studio *StudioService
}

// New wires the orchestrator from configuration. Without a model credential,
// or when the client cannot be built, the studio runs mock-only.
func New(ctx context.Context, a *app.Application, avail AvailabilityChecker, library Library) *Services {
	cfg := a.Config

	opts := []domainsvcs.Option{
		domainsvcs.WithModelTimeout(cfg.ModelTimeout),
		domainsvcs.WithNameCount(cfg.FallbackCount),
	}
	if !cfg.MockOnly() {
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:     cfg.GeminiAPIKey,
			TextModel:  cfg.TextModel,
			ImageModel: cfg.ImageModel,
			Timeout:    cfg.ModelTimeout,
		})
		if err != nil {
			a.Logger.Error("gemini client unavailable, running mock-only", "error", err)
		} else {
			opts = append(opts, domainsvcs.WithTextModel(client), domainsvcs.WithImageModel(client))
		}
	}

	orch := domainsvcs.NewOrchestrator(
		placeholder.New(cfg.PlaceholderURL, cfg.ModelTimeout),
		avail,
		a.Logger,
		opts...,
	)
	if orch.MockOnly() {
		a.Logger.Warn("studio running in mock-only mode")
	}

	return &Services{
		Studio: NewStudioService(orch, avail, library, a.Logger),
	}
}
