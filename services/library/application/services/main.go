package services

import (
	"github.com/kenone20/domainogen/pkg/app"
	"github.com/kenone20/domainogen/pkg/cache"
	"github.com/kenone20/domainogen/services/library/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Library *LibraryService
}

// New wires the Postgres repositories, the Redis analysis cache and, when
// configured, the Temporal client. Without a database the library reports
// itself unavailable.
func New(a *app.Application, avail Rechecker) *Services {
	cfg := a.Config
	opts := []Option{WithHistoryLimit(cfg.HistoryLimit)}

	if a.Redis != nil {
		opts = append(opts, WithAnalysisCache(cache.NewAnalysisCache(a.Redis, cfg.AnalysisCacheTTL)))
	}
	if a.TemporalClient != nil {
		opts = append(opts, WithTemporal(a.TemporalClient.Client, a.TemporalClient.TaskQueue))
	}

	if a.Db == nil {
		return &Services{Library: NewLibraryService(nil, nil, avail, a.Logger, opts...)}
	}

	return &Services{
		Library: NewLibraryService(
			postgres.NewHistoryRepository(a.Db, a.EventBus),
			postgres.NewFavoriteRepository(a.Db),
			avail,
			a.Logger,
			opts...,
		),
	}
}
