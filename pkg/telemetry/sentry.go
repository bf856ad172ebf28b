package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/kenone20/domainogen/pkg/config"
)

// SetupSentry initializes crash reporting for the API and the worker. Events
// are tagged with the service release so a studio failure can be told apart
// from a worker one. No-ops if SENTRY_DSN is empty.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		TracesSampleRate: 0.2,
	}); err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// SentryFlush flushes buffered events before process exit. Both binaries
// defer it right after SetupSentry.
func SentryFlush() {
	sentry.Flush(2 * time.Second)
}

// SentryMiddleware reports panics raised by API handlers. It re-panics so
// logger.Recovery still writes the JSON 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	h := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return h.Handle
}
