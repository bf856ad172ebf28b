package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/telemetry"
	availdomain "github.com/kenone20/domainogen/services/availability/domain"
	"github.com/kenone20/domainogen/services/availability/domain/models"
	domainsvcs "github.com/kenone20/domainogen/services/availability/domain/services"
)

// VerdictCache pins verdicts per normalized name. Implemented by
// pkg/cache.AvailabilityCache; Get misses return redis.Nil.
type VerdictCache interface {
	Get(ctx context.Context, name string) (bool, error)
	GetMany(ctx context.Context, names []string) (map[string]bool, error)
	Set(ctx context.Context, name string, available bool) (bool, error)
	Overwrite(ctx context.Context, name string, available bool) error
}

// AvailabilityService fronts the oracle with a read-through verdict cache so
// one name keeps one verdict for the cache TTL. Cache failures are logged and
// fall through to the oracle.
type AvailabilityService struct {
	oracle *domainsvcs.Oracle
	cache  VerdictCache
	log    logger.Logger
	checks *telemetry.Counter
}

// NewAvailabilityService returns an AvailabilityService. cache may be nil.
func NewAvailabilityService(oracle *domainsvcs.Oracle, cache VerdictCache, log logger.Logger) *AvailabilityService {
	return &AvailabilityService{
		oracle: oracle,
		cache:  cache,
		log:    log,
		checks: telemetry.NewCounter("domainogen.availability.checks", "Availability verdicts by bucket and source"),
	}
}

// Check returns the verdict for one name.
func (s *AvailabilityService) Check(ctx context.Context, name string) (models.Verdict, error) {
	d, err := models.NewDomainName(name)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("%w: %w", availdomain.ErrInvalidDomainName, err)
	}
	key := d.String()
	bucket := domainsvcs.Classify(d)

	if s.cache != nil {
		available, err := s.cache.Get(ctx, key)
		if err == nil {
			s.record(ctx, bucket.Name, available, "cache")
			return models.Verdict{Name: key, Available: available, Bucket: bucket.Name}, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "verdict cache read failed", "domain", key, "error", err)
		}
	}

	v, err := s.oracle.Evaluate(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "availability check indeterminate, reporting taken", "domain", key, "error", err)
		s.record(ctx, bucket.Name, false, "indeterminate")
		return v, nil
	}
	v.Available = s.pin(ctx, key, v.Available)
	s.record(ctx, v.Bucket, v.Available, "oracle")
	return v, nil
}

// CheckMany returns one verdict per unique input name, keyed by the input as
// given. Cached verdicts are reused; the rest are checked concurrently.
func (s *AvailabilityService) CheckMany(ctx context.Context, names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	keyOf := make(map[string]string, len(names))
	var keys []string
	for _, n := range names {
		if _, ok := keyOf[n]; ok {
			continue
		}
		k := models.ParseDomainName(n).String()
		keyOf[n] = k
		keys = append(keys, k)
	}

	cached := map[string]bool{}
	if s.cache != nil && len(keys) > 0 {
		var err error
		if cached, err = s.cache.GetMany(ctx, keys); err != nil {
			s.log.WarnContext(ctx, "verdict cache batch read failed", "error", err)
		}
		if cached == nil {
			cached = map[string]bool{}
		}
	}

	var misses []string
	for _, k := range keys {
		if _, ok := cached[k]; !ok {
			misses = append(misses, k)
		}
	}

	verdicts, failures := s.oracle.EvaluateMany(ctx, misses)
	for k, v := range verdicts {
		if err, failed := failures[k]; failed {
			s.log.WarnContext(ctx, "availability check indeterminate, reporting taken", "domain", k, "error", err)
			cached[k] = false
			s.record(ctx, v.Bucket, false, "indeterminate")
			continue
		}
		cached[k] = s.pin(ctx, k, v.Available)
		s.record(ctx, v.Bucket, cached[k], "oracle")
	}

	for n, k := range keyOf {
		out[n] = cached[k]
	}
	return out
}

// Recheck bypasses the cache, evaluates every name again and overwrites the
// cached verdicts. Indeterminate checks are reported taken and not cached.
func (s *AvailabilityService) Recheck(ctx context.Context, names []string) map[string]bool {
	verdicts, failures := s.oracle.EvaluateMany(ctx, names)
	out := make(map[string]bool, len(verdicts))
	for n, v := range verdicts {
		out[n] = v.Available
		if _, failed := failures[n]; failed || s.cache == nil {
			continue
		}
		if err := s.cache.Overwrite(ctx, v.Name, v.Available); err != nil {
			s.log.WarnContext(ctx, "verdict cache overwrite failed", "domain", v.Name, "error", err)
		}
	}
	return out
}

// Age estimates the registration age of name.
func (s *AvailabilityService) Age(ctx context.Context, name string) (models.AgeEstimate, error) {
	d, err := models.NewDomainName(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", availdomain.ErrInvalidDomainName, err)
	}
	return s.oracle.DomainAge(ctx, d.String()), nil
}

// EstimateAge is Age for callers that already hold a valid name. Invalid
// input yields the "New" estimate instead of an error.
func (s *AvailabilityService) EstimateAge(ctx context.Context, name string) string {
	age, err := s.Age(ctx, name)
	if err != nil {
		return string(models.AgeEstimateNew)
	}
	return string(age)
}

// TLDs returns the curated TLD options.
func (s *AvailabilityService) TLDs() []string {
	return append([]string(nil), models.TLDOptions...)
}

// pin stores available as the verdict for key unless one is already cached,
// and returns the verdict that wins.
func (s *AvailabilityService) pin(ctx context.Context, key string, available bool) bool {
	if s.cache == nil {
		return available
	}
	winner, err := s.cache.Set(ctx, key, available)
	if err != nil {
		s.log.WarnContext(ctx, "verdict cache write failed", "domain", key, "error", err)
		return available
	}
	return winner
}

func (s *AvailabilityService) record(ctx context.Context, bucket models.BucketName, available bool, source string) {
	s.checks.Add(ctx,
		"bucket", string(bucket),
		"available", strconv.FormatBool(available),
		"source", source,
	)
}
