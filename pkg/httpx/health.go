package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (Database, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheckFunc adapts a plain function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Ping calls f.
func (f HealthCheckFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthChecks maps a component name (reported as-is in the response) to its
// check. A nil check is reported as "disabled" and does not degrade status.
type HealthChecks map[string]HealthChecker

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Mode   string            `json:"mode,omitempty"`
}

// HealthHandler returns an http.HandlerFunc that pings all registered
// HealthCheckers concurrently and reports degraded status if any of them fail.
// mode is echoed back verbatim (the studio reports "mock" or "model").
func HealthHandler(checks HealthChecks, mode string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks)), Mode: mode}
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)

		for name, check := range checks {
			if check == nil {
				resp.Checks[name] = "disabled"
				continue
			}
			g.Go(func() error {
				state := "ok"
				if err := check.Ping(gctx); err != nil {
					state = "unreachable"
				}
				mu.Lock()
				defer mu.Unlock()
				resp.Checks[name] = state
				if state != "ok" {
					resp.Status = "degraded"
				}
				return nil
			})
		}
		_ = g.Wait()

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
