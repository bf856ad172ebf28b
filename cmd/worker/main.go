package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.temporal.io/sdk/worker"

	"github.com/kenone20/domainogen/pkg/app"
	"github.com/kenone20/domainogen/pkg/cache"
	"github.com/kenone20/domainogen/pkg/config"
	"github.com/kenone20/domainogen/pkg/database"
	"github.com/kenone20/domainogen/pkg/events"
	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/telemetry"
	"github.com/kenone20/domainogen/pkg/workflows"
	availsvcs "github.com/kenone20/domainogen/services/availability/application/services"
	librarysvcs "github.com/kenone20/domainogen/services/library/application/services"
	"github.com/kenone20/domainogen/services/library/infrastructure/subscribers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// The worker only exists to consume library events and host the re-check
	// workflow, both of which need the database.
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Config:   cfg,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("redis unavailable, analysis cache warming disabled", "error", err)
	} else {
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
		appConfig.Redis = redisClient
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	var w worker.Worker
	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()

		w = newRecheckWorker(temporalClient, appConfig)
		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("temporal worker started", "task_queue", temporalClient.TaskQueue)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	if w != nil {
		w.Stop()
	}
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more contexts publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	var warmer subscribers.AnalysisWarmer
	if a.Redis != nil {
		warmer = cache.NewAnalysisCache(a.Redis, a.Config.AnalysisCacheTTL)
	}

	topics, err := subscribers.New(warmer, a.Logger).Register(ctx, a.EventBus)
	if err != nil {
		return err
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// newRecheckWorker hosts the favorites re-check workflow. Its activities use
// the same oracle configuration as the API; the workflow client itself is
// not given to the library service so activities never start workflows.
func newRecheckWorker(tc *workflows.TemporalClient, a *app.Application) worker.Worker {
	avail := availsvcs.New(a).Availability
	library := librarysvcs.New(a, avail).Library

	w := tc.NewWorker()
	w.RegisterWorkflow(librarysvcs.RecheckFavoritesWorkflow)
	w.RegisterActivity(librarysvcs.NewRecheckActivities(library))
	return w
}
