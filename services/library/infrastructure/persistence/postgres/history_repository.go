package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kenone20/domainogen/pkg/database"
	"github.com/kenone20/domainogen/pkg/events"
	librarydomain "github.com/kenone20/domainogen/services/library/domain"
	domainevents "github.com/kenone20/domainogen/services/library/domain/events"
	"github.com/kenone20/domainogen/services/library/domain/models"
	"github.com/kenone20/domainogen/services/library/infrastructure/persistence/postgres/db"
)

// HistoryRepository implements repositories.HistoryRepository against PostgreSQL.
type HistoryRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewHistoryRepository returns a HistoryRepository backed by the given pool
// and event bus. The bus publishes a recorded event for every appended entry;
// it may be nil.
func NewHistoryRepository(database *database.Database, bus *events.EventBus) *HistoryRepository {
	return &HistoryRepository{db: database, bus: bus}
}

// Append inserts entry, trims the owner's history to limit and publishes the
// matching recorded event, all in one transaction.
func (r *HistoryRepository) Append(ctx context.Context, entry *models.HistoryEntry, limit int) error {
	tlds, err := json.Marshal(nonNil(entry.TLDs))
	if err != nil {
		return fmt.Errorf("marshal tlds: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		if err := q.InsertHistoryEntry(ctx, db.InsertHistoryEntryParams{
			ID:        entry.ID,
			OwnerID:   entry.OwnerID,
			Kind:      string(entry.Kind),
			Prompt:    entry.Prompt,
			Style:     entry.Style,
			Tlds:      string(tlds),
			Domain:    entry.Domain,
			Payload:   string(entry.Payload),
			CreatedAt: entry.CreatedAt,
		}); err != nil {
			return fmt.Errorf("insert history entry: %w", err)
		}

		if _, err := q.TrimHistory(ctx, db.TrimHistoryParams{OwnerID: entry.OwnerID, Keep: int32(limit)}); err != nil {
			return fmt.Errorf("trim history: %w", err)
		}

		if r.bus != nil {
			if err := r.publishRecorded(ctx, tx, entry); err != nil {
				return fmt.Errorf("publish %s recorded: %w", entry.Kind, err)
			}
		}
		return nil
	})
}

// Newest returns the owner's most recent entry, or nil when there is none.
func (r *HistoryRepository) Newest(ctx context.Context, ownerID uuid.UUID) (*models.HistoryEntry, error) {
	entries, err := r.List(ctx, ownerID, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

// List returns up to limit entries, newest first.
func (r *HistoryRepository) List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*models.HistoryEntry, error) {
	rows, err := db.New(r.db.DB()).ListHistory(ctx, db.ListHistoryParams{OwnerID: ownerID, Limit: int32(limit)})
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	out := make([]*models.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		e, err := rowToEntry(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// LatestAnalysis returns the newest analysis of domain for the owner.
// Returns ErrAnalysisNotFound if there is none.
func (r *HistoryRepository) LatestAnalysis(ctx context.Context, ownerID uuid.UUID, domain string) (*models.HistoryEntry, error) {
	row, err := db.New(r.db.DB()).LatestAnalysis(ctx, db.LatestAnalysisParams{OwnerID: ownerID, Domain: domain})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, librarydomain.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("query latest analysis: %w", err)
	}
	return rowToEntry(row)
}

// Clear removes every entry for the owner.
func (r *HistoryRepository) Clear(ctx context.Context, ownerID uuid.UUID) error {
	if err := db.New(r.db.DB()).ClearHistory(ctx, ownerID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (r *HistoryRepository) publishRecorded(ctx context.Context, tx *sql.Tx, entry *models.HistoryEntry) error {
	eventID := uuid.New()

	var (
		topic string
		event any
	)
	switch entry.Kind {
	case models.KindAnalysis:
		topic = domainevents.TopicAnalysisRecorded
		event = domainevents.AnalysisRecordedEvent{
			EventID:    eventID,
			Version:    1,
			EntryID:    entry.ID,
			OwnerID:    entry.OwnerID,
			Domain:     entry.Domain,
			Analysis:   entry.Payload,
			OccurredAt: entry.CreatedAt,
		}
	default:
		topic = domainevents.TopicGenerationRecorded
		event = domainevents.GenerationRecordedEvent{
			EventID:    eventID,
			Version:    1,
			EntryID:    entry.ID,
			OwnerID:    entry.OwnerID,
			Prompt:     entry.Prompt,
			Style:      entry.Style,
			TLDs:       nonNil(entry.TLDs),
			OccurredAt: entry.CreatedAt,
		}
	}

	msg, err := events.NewJSONMessage(eventID.String(), 1, event)
	if err != nil {
		return err
	}
	return r.bus.PublishTx(ctx, tx, topic, msg)
}

// rowToEntry maps a db.LibraryHistory to a domain models.HistoryEntry.
func rowToEntry(row db.LibraryHistory) (*models.HistoryEntry, error) {
	var tlds []string
	if len(row.Tlds) > 0 {
		if err := json.Unmarshal(row.Tlds, &tlds); err != nil {
			return nil, fmt.Errorf("decode tlds of entry %s: %w", row.ID, err)
		}
	}
	return &models.HistoryEntry{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Kind:      models.EntryKind(row.Kind),
		Prompt:    row.Prompt,
		Style:     row.Style,
		TLDs:      tlds,
		Domain:    row.Domain,
		Payload:   json.RawMessage(row.Payload),
		CreatedAt: row.CreatedAt,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
