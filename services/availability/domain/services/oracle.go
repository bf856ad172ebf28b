package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kenone20/domainogen/services/availability/domain"
	"github.com/kenone20/domainogen/services/availability/domain/models"
)

const (
	defaultCheckTimeout = 2 * time.Second
	defaultConcurrency  = 16
)

// Oracle decides availability and age for domain names from the bucket
// cascade plus a random source. It is safe for concurrent use.
type Oracle struct {
	mu  sync.Mutex
	rng *rand.Rand

	latencyMin   time.Duration
	latencyMax   time.Duration
	checkTimeout time.Duration
	concurrency  int
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithRand replaces the entropy-seeded source. Tests pass a seeded
// generator to pin outcomes.
func WithRand(r *rand.Rand) Option {
	return func(o *Oracle) { o.rng = r }
}

// WithSeed is WithRand over a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLatency makes every lookup wait a uniform duration in [min, max],
// standing in for a registry round trip. Zero disables the wait.
func WithLatency(minLatency, maxLatency time.Duration) Option {
	return func(o *Oracle) {
		if maxLatency < minLatency {
			maxLatency = minLatency
		}
		o.latencyMin, o.latencyMax = minLatency, maxLatency
	}
}

// WithCheckTimeout bounds each check inside CheckMultipleAvailability.
func WithCheckTimeout(d time.Duration) Option {
	return func(o *Oracle) { o.checkTimeout = d }
}

// WithConcurrency caps parallel checks inside CheckMultipleAvailability.
func WithConcurrency(n int) Option {
	return func(o *Oracle) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// NewOracle returns an Oracle drawing from an entropy-seeded source.
func NewOracle(opts ...Option) *Oracle {
	o := &Oracle{
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		checkTimeout: defaultCheckTimeout,
		concurrency:  defaultConcurrency,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Classify exposes which bucket name falls into.
func (o *Oracle) Classify(name string) models.Bucket {
	return Classify(models.ParseDomainName(name))
}

// Evaluate runs one availability check. It returns ErrIndeterminate when ctx
// ends during the simulated lookup; the returned verdict is then "taken".
func (o *Oracle) Evaluate(ctx context.Context, name string) (models.Verdict, error) {
	d := models.ParseDomainName(name)
	bucket := Classify(d)
	v := models.Verdict{Name: d.String(), Bucket: bucket.Name}

	if err := o.wait(ctx); err != nil {
		return v, fmt.Errorf("%w: %s: %w", domain.ErrIndeterminate, v.Name, err)
	}

	switch {
	case bucket.Availability <= 0:
		v.Available = false
	case bucket.Availability >= 1:
		v.Available = true
	default:
		v.Available = o.draw() < bucket.Availability
	}
	return v, nil
}

// CheckAvailability reports whether name looks available. Indeterminate
// checks resolve to false.
func (o *Oracle) CheckAvailability(ctx context.Context, name string) bool {
	v, err := o.Evaluate(ctx, name)
	if err != nil {
		return false
	}
	return v.Available
}

// EvaluateMany checks every unique name concurrently and waits for all of
// them. Each check gets its own timeout; names that time out are reported in
// the second map and resolve as taken in the first.
func (o *Oracle) EvaluateMany(ctx context.Context, names []string) (map[string]models.Verdict, map[string]error) {
	unique := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}

	verdicts := make(map[string]models.Verdict, len(unique))
	failures := make(map[string]error)
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for _, n := range unique {
		g.Go(func() error {
			checkCtx, cancel := o.checkContext(ctx)
			defer cancel()

			v, err := o.Evaluate(checkCtx, n)
			mu.Lock()
			defer mu.Unlock()
			verdicts[n] = v
			if err != nil {
				failures[n] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	return verdicts, failures
}

// CheckMultipleAvailability returns one entry per unique input name, keyed by
// the name exactly as given.
func (o *Oracle) CheckMultipleAvailability(ctx context.Context, names []string) map[string]bool {
	verdicts, _ := o.EvaluateMany(ctx, names)
	out := make(map[string]bool, len(verdicts))
	for n, v := range verdicts {
		out[n] = v.Available
	}
	return out
}

// DomainAge estimates how long name has been registered. It is independent
// of availability and always yields a valid estimate; a cancelled ctx only
// skips the simulated latency.
func (o *Oracle) DomainAge(ctx context.Context, name string) models.AgeEstimate {
	_ = o.wait(ctx)
	return o.drawAge(Classify(models.ParseDomainName(name)).Age)
}

func (o *Oracle) drawAge(r models.AgeRange) models.AgeEstimate {
	o.mu.Lock()
	defer o.mu.Unlock()

	if r.NewChance > 0 && o.rng.Float64() < r.NewChance {
		return models.AgeEstimateNew
	}
	lo, hi := max(r.Min, 1), max(r.Max, r.Min, 1)
	return models.NewAgeEstimate(lo+o.rng.IntN(hi-lo+1), r.Unit)
}

func (o *Oracle) checkContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.checkTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.checkTimeout)
}

func (o *Oracle) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if o.latencyMax <= 0 {
		return nil
	}
	d := o.latencyMin
	if span := o.latencyMax - o.latencyMin; span > 0 {
		o.mu.Lock()
		d += time.Duration(o.rng.Int64N(int64(span) + 1))
		o.mu.Unlock()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (o *Oracle) draw() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rng.Float64()
}
