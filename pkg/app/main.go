package app

import (
	"github.com/gorilla/sessions"

	"github.com/kenone20/domainogen/pkg/cache"
	"github.com/kenone20/domainogen/pkg/config"
	"github.com/kenone20/domainogen/pkg/database"
	"github.com/kenone20/domainogen/pkg/events"
	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all bounded
// contexts. Pass it to each context's Routes call during server
// initialization.
//
// Logging: app.Logger is backed by a trace-aware handler. Use slog's context
// methods and trace_id, span_id, request_id and owner_id are injected
// automatically:
//
//	app.Logger.InfoContext(ctx, "domain analyzed", "domain", name)
//	app.Logger.ErrorContext(ctx, "failed to record history", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
//
// Db, EventBus, Redis and TemporalClient are nil when the backing service is
// not configured; every context degrades without them.
type Application struct {
	Config         *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
	SessionStore   sessions.Store // nil in worker process
}
