package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EntryKind distinguishes the two kinds of history entry.
type EntryKind string

const (
	KindGeneration EntryKind = "generation"
	KindAnalysis   EntryKind = "analysis"
)

// DefaultHistoryLimit is the number of entries kept per owner.
const DefaultHistoryLimit = 50

// HistoryEntry is one past generation or analysis. Payload holds the
// candidates or the analysis exactly as they were served.
type HistoryEntry struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"-"`
	Kind      EntryKind       `json:"type"`
	Prompt    string          `json:"prompt,omitempty"`
	Style     string          `json:"style,omitempty"`
	TLDs      []string        `json:"tlds,omitempty"`
	Domain    string          `json:"domain,omitempty"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

var errInvalidPayload = errors.New("payload is not valid JSON")

// NewGenerationEntry returns a generation entry for owner.
func NewGenerationEntry(ownerID uuid.UUID, prompt, style string, tlds []string, suggestions json.RawMessage) (*HistoryEntry, error) {
	if ownerID == uuid.Nil {
		return nil, errors.New("owner id must not be nil")
	}
	if !json.Valid(suggestions) {
		return nil, errInvalidPayload
	}
	return &HistoryEntry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Kind:      KindGeneration,
		Prompt:    prompt,
		Style:     style,
		TLDs:      append([]string(nil), tlds...),
		Payload:   suggestions,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewAnalysisEntry returns an analysis entry for owner. domain is lower-cased.
func NewAnalysisEntry(ownerID uuid.UUID, domain string, analysis json.RawMessage) (*HistoryEntry, error) {
	if ownerID == uuid.Nil {
		return nil, errors.New("owner id must not be nil")
	}
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, errors.New("domain must not be empty")
	}
	if !json.Valid(analysis) {
		return nil, errInvalidPayload
	}
	return &HistoryEntry{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Kind:      KindAnalysis,
		Domain:    domain,
		Payload:   analysis,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Repeats reports whether e is an analysis of domain, in which case recording
// another analysis of it right after would duplicate the newest entry.
func (e *HistoryEntry) Repeats(domain string) bool {
	return e != nil && e.Kind == KindAnalysis && e.Domain == domain
}
