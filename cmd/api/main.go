package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/kenone20/domainogen/docs/swagger"
	"github.com/kenone20/domainogen/pkg/app"
	"github.com/kenone20/domainogen/pkg/auth"
	"github.com/kenone20/domainogen/pkg/cache"
	"github.com/kenone20/domainogen/pkg/config"
	"github.com/kenone20/domainogen/pkg/database"
	"github.com/kenone20/domainogen/pkg/events"
	"github.com/kenone20/domainogen/pkg/httpx"
	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/telemetry"
	"github.com/kenone20/domainogen/pkg/workflows"
	availabilityApi "github.com/kenone20/domainogen/services/availability/application/api"
	libraryApi "github.com/kenone20/domainogen/services/library/application/api"
	studioApi "github.com/kenone20/domainogen/services/studio/application/api"
	studiosvcs "github.com/kenone20/domainogen/services/studio/application/services"
)

// @title			DomainOgen API
// @version		1.0
// @description	Domain name generation, availability and appraisal.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api
// @schemes		http https
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

	// An AES key of the wrong size makes every session save fail, and each
	// request would mint a new owner.
	if !config.ValidEncryptionKeyLen(len(cfg.SessionEncryptionKey)) {
		log.Error("SESSION_ENCRYPTION_KEY must be 16, 24 or 32 bytes", "got", len(cfg.SessionEncryptionKey))
		os.Exit(1)
	}

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig := &app.Application{Config: cfg, Logger: log}
	checks := httpx.HealthChecks{"database": nil, "event_bus": nil, "redis": nil, "temporal": nil}

	// Postgres backs history and favorites. Without it the library answers 503
	// and the studio skips recording.
	if pool, err := database.NewPool(ctx, cfg.DatabaseURL, log); err != nil {
		log.Warn("database unavailable, history and favorites disabled", "error", err)
	} else {
		defer pool.Close() //nolint:errcheck
		log.Info("database pool connected")

		eventBus, err := events.NewEventBusWithForwarder(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}

		appConfig.Db = pool
		appConfig.EventBus = eventBus
		checks["database"] = pool
		checks["event_bus"] = eventBus
	}

	if redisClient, err := cache.NewRedisClient(cfg); err != nil {
		log.Warn("redis unavailable, caches disabled and sessions kept in cookies", "error", err)
	} else {
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
		appConfig.Redis = redisClient
		checks["redis"] = redisClient
	}

	if cfg.TemporalEnabled {
		temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Warn("temporal unavailable, favorites re-check runs inline", "error", err)
		} else {
			defer temporalClient.Close()
			appConfig.TemporalClient = temporalClient
			checks["temporal"] = temporalClient
		}
	}

	appConfig.SessionStore = newSessionStore(cfg, appConfig.Redis)

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RequestTimeout:     cfg.ModelTimeout + 10*time.Second,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	mode := "model"
	if cfg.MockOnly() {
		mode = "mock"
	}
	r.Get("/health", httpx.HealthHandler(checks, mode))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.EnsureOwner(appConfig.SessionStore, log))
		registerRoutes(ctx, r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r, cfg.ModelTimeout+10*time.Second)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "mode", mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// newSessionStore keeps sessions in Redis when it is reachable and falls back
// to signed, encrypted cookies otherwise.
func newSessionStore(cfg *config.Config, redisClient *cache.RedisClient) sessions.Store {
	secure := cfg.Environment == config.EnvProduction
	if redisClient != nil {
		return auth.NewSessionStore(redisClient.Client(), []byte(cfg.SessionAuthKey), []byte(cfg.SessionEncryptionKey), secure)
	}
	store := sessions.NewCookieStore([]byte(cfg.SessionAuthKey), []byte(cfg.SessionEncryptionKey))
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// registerRoutes mounts all service routes under /api. The studio sees the
// other contexts only through its ports.
func registerRoutes(ctx context.Context, r chi.Router, a *app.Application) {
	avail := availabilityApi.AvailabilityRoutes(r, a).Availability
	library := libraryApi.LibraryRoutes(r, a, avail).Library

	var recorder studiosvcs.Library
	if library.Available() {
		recorder = library
	}
	studioApi.StudioRoutes(ctx, r, a, avail, recorder)
}
