// Package subscribers consumes library events in the worker.
package subscribers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgcache "github.com/kenone20/domainogen/pkg/cache"
	"github.com/kenone20/domainogen/pkg/events"
	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/telemetry"
	libraryevents "github.com/kenone20/domainogen/services/library/domain/events"
)

// Bus is the subscribe side of pkg/events.EventBus.
type Bus interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// AnalysisWarmer stores an analysis read model.
type AnalysisWarmer interface {
	Set(ctx context.Context, a *pkgcache.CachedAnalysis) error
}

// Subscribers holds the library event handlers.
type Subscribers struct {
	cache       AnalysisWarmer
	log         logger.Logger
	generations *telemetry.Counter
}

// New returns the handlers. cache may be nil when Redis is not configured.
func New(cache AnalysisWarmer, log logger.Logger) *Subscribers {
	return &Subscribers{
		cache:       cache,
		log:         log,
		generations: telemetry.NewCounter("domainogen.library.generations_recorded", "Generation history entries consumed by the worker"),
	}
}

// Register subscribes every handler on bus and drains the error channels in
// the background. Returns the subscribed topics.
func (s *Subscribers) Register(ctx context.Context, bus Bus) ([]string, error) {
	handlers := map[string]func(context.Context, *message.Message) error{
		libraryevents.TopicAnalysisRecorded:   s.HandleAnalysisRecorded,
		libraryevents.TopicGenerationRecorded: s.HandleGenerationRecorded,
	}

	topics := make([]string, 0, len(handlers))
	for topic, handler := range handlers {
		errCh, err := bus.Subscribe(ctx, topic, handler)
		if err != nil {
			return nil, fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go func() {
			for err := range errCh {
				s.log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, topic)
	}
	return topics, nil
}

// HandleAnalysisRecorded warms the analysis cache so the next LatestAnalysis
// is served from Redis. Warming is best-effort; only undecodable payloads fail.
func (s *Subscribers) HandleAnalysisRecorded(ctx context.Context, msg *message.Message) error {
	evt, err := events.DecodeJSON[libraryevents.AnalysisRecordedEvent](msg)
	if err != nil {
		return err
	}
	if s.cache == nil {
		return nil
	}

	if err := s.cache.Set(ctx, &pkgcache.CachedAnalysis{
		OwnerID:    evt.OwnerID,
		Domain:     evt.Domain,
		Payload:    evt.Analysis,
		RecordedAt: evt.OccurredAt,
	}); err != nil {
		s.log.WarnContext(ctx, "cache warm failed for analysis_recorded",
			"entry_id", evt.EntryID, "error", err)
		return nil
	}

	s.log.InfoContext(ctx, "analysis cache warmed", "entry_id", evt.EntryID, "domain", evt.Domain)
	return nil
}

// HandleGenerationRecorded counts generations per style.
func (s *Subscribers) HandleGenerationRecorded(ctx context.Context, msg *message.Message) error {
	evt, err := events.DecodeJSON[libraryevents.GenerationRecordedEvent](msg)
	if err != nil {
		return err
	}
	s.generations.Add(ctx, "style", evt.Style)
	s.log.InfoContext(ctx, "generation recorded",
		"entry_id", evt.EntryID, "style", evt.Style, "tlds", evt.TLDs)
	return nil
}
