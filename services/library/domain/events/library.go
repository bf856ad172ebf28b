package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the library repositories.
const (
	TopicAnalysisRecorded   = "library.analysis_recorded"
	TopicGenerationRecorded = "library.generation_recorded"
)

// AnalysisRecordedEvent is published after an analysis entry is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicAnalysisRecorded).
type AnalysisRecordedEvent struct {
	EventID    uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int             `json:"version"`  // Schema version; increment on breaking changes
	EntryID    uuid.UUID       `json:"entry_id"`
	OwnerID    uuid.UUID       `json:"owner_id"`
	Domain     string          `json:"domain"`
	Analysis   json.RawMessage `json:"analysis"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// GenerationRecordedEvent is published after a generation entry is persisted.
type GenerationRecordedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	EntryID    uuid.UUID `json:"entry_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Prompt     string    `json:"prompt"`
	Style      string    `json:"style"`
	TLDs       []string  `json:"tlds"`
	OccurredAt time.Time `json:"occurred_at"`
}
