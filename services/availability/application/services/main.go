package services

import (
	"github.com/kenone20/domainogen/pkg/app"
	"github.com/kenone20/domainogen/pkg/cache"
	domainsvcs "github.com/kenone20/domainogen/services/availability/domain/services"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Availability *AvailabilityService
}

// New wires the oracle from configuration and fronts it with the Redis
// verdict cache when Redis is available.
func New(a *app.Application) *Services {
	cfg := a.Config
	oracle := domainsvcs.NewOracle(
		domainsvcs.WithLatency(cfg.OracleLatencyMin, cfg.OracleLatencyMax),
		domainsvcs.WithCheckTimeout(cfg.AvailabilityTimeout),
		domainsvcs.WithConcurrency(cfg.AvailabilityConcurrency),
	)

	var verdicts VerdictCache
	if a.Redis != nil {
		verdicts = cache.NewAvailabilityCache(a.Redis, cfg.AvailabilityCacheTTL)
	}

	return &Services{
		Availability: NewAvailabilityService(oracle, verdicts, a.Logger),
	}
}
