package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/requestctx"
	"github.com/kenone20/domainogen/services/studio/domain"
	"github.com/kenone20/domainogen/services/studio/domain/models"
	domainsvcs "github.com/kenone20/domainogen/services/studio/domain/services"
)

type fakeAvailability struct {
	available map[string]bool
}

func (f *fakeAvailability) CheckMany(_ context.Context, names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		out[n] = f.available[n]
	}
	return out
}

func (f *fakeAvailability) EstimateAge(context.Context, string) string { return "3 years" }

type fakeLibrary struct {
	mu          sync.Mutex
	favorites   map[string]bool
	favErr      error
	recordErr   error
	generations []json.RawMessage
	analyses    map[string]json.RawMessage
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{favorites: map[string]bool{}, analyses: map[string]json.RawMessage{}}
}

func (f *fakeLibrary) FavoriteSet(_ context.Context, _ uuid.UUID, names []string) (map[string]bool, error) {
	if f.favErr != nil {
		return nil, f.favErr
	}
	out := map[string]bool{}
	for _, n := range names {
		if f.favorites[n] {
			out[n] = true
		}
	}
	return out, nil
}

func (f *fakeLibrary) RecordGeneration(_ context.Context, _ uuid.UUID, _, _ string, _ []string, suggestions json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	f.generations = append(f.generations, suggestions)
	return nil
}

func (f *fakeLibrary) RecordAnalysis(_ context.Context, _ uuid.UUID, domain string, analysis json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	f.analyses[domain] = analysis
	return nil
}

type stubPlaceholder struct{}

func (stubPlaceholder) Fetch(context.Context, string) ([]byte, error) {
	return []byte("\x89PNG\r\n\x1a\n"), nil
}

func newStudio(avail *fakeAvailability, lib Library) *StudioService {
	orch := domainsvcs.NewOrchestrator(stubPlaceholder{}, avail, logger.Discard(), domainsvcs.WithNameCount(4))
	return NewStudioService(orch, avail, lib, logger.Discard())
}

func ownerCtx() context.Context {
	return requestctx.WithOwnerID(context.Background(), uuid.New())
}

func TestGenerate_ResolvesStatusAndFavorites(t *testing.T) {
	avail := &fakeAvailability{available: map[string]bool{"coffeeify.com": true}}
	lib := newFakeLibrary()
	lib.favorites["coffeelabs.com"] = true
	s := newStudio(avail, lib)

	res, err := s.Generate(ownerCtx(), "coffee", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SourcedFrom != models.SourcedFromMock || len(res.Candidates) != 4 {
		t.Fatalf("unexpected result %+v", res)
	}

	byName := map[string]models.CandidateDomain{}
	for _, c := range res.Candidates {
		byName[c.Name] = c
	}
	if byName["coffeeify.com"].Status != models.StatusAvailable {
		t.Errorf("coffeeify.com should be available: %+v", byName["coffeeify.com"])
	}
	if byName["coffeeflow.com"].Status != models.StatusTaken {
		t.Errorf("coffeeflow.com should be taken: %+v", byName["coffeeflow.com"])
	}
	if !byName["coffeelabs.com"].IsFavorited || byName["coffeeify.com"].IsFavorited {
		t.Errorf("favorites not marked correctly: %+v", res.Candidates)
	}
	for _, c := range res.Candidates {
		if c.Status == models.StatusPending {
			t.Errorf("candidate %q left pending", c.Name)
		}
	}
	if len(lib.generations) != 1 {
		t.Fatalf("expected one recorded generation, got %d", len(lib.generations))
	}
}

func TestGenerate_LibraryFailuresAreNotFatal(t *testing.T) {
	lib := newFakeLibrary()
	lib.favErr = errors.New("db down")
	lib.recordErr = errors.New("db down")
	s := newStudio(&fakeAvailability{}, lib)

	res, err := s.Generate(ownerCtx(), "coffee", "", nil)
	if err != nil {
		t.Fatalf("library failures must not fail generation: %v", err)
	}
	if len(res.Candidates) != 4 {
		t.Fatalf("got %d candidates", len(res.Candidates))
	}
}

func TestGenerate_NoOwnerSkipsLibrary(t *testing.T) {
	lib := newFakeLibrary()
	s := newStudio(&fakeAvailability{}, lib)

	if _, err := s.Generate(context.Background(), "coffee", "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lib.generations) != 0 {
		t.Fatal("generation without an owner must not be recorded")
	}
}

func TestGenerate_NilLibrary(t *testing.T) {
	s := newStudio(&fakeAvailability{}, nil)
	if _, err := s.Generate(ownerCtx(), "coffee", "", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	s := newStudio(&fakeAvailability{}, nil)
	if _, err := s.Generate(context.Background(), "  ", "", nil); !errors.Is(err, domain.ErrInvalidPrompt) {
		t.Fatalf("expected ErrInvalidPrompt, got %v", err)
	}
}

func TestAnalyze_RecordsHistory(t *testing.T) {
	lib := newFakeLibrary()
	s := newStudio(&fakeAvailability{}, lib)

	a, err := s.Analyze(ownerCtx(), "  Brandify.IO ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Domain != "brandify.io" || a.DomainAge != "3 years" {
		t.Fatalf("unexpected analysis %+v", a)
	}

	raw, ok := lib.analyses["brandify.io"]
	if !ok {
		t.Fatal("analysis was not recorded")
	}
	var stored models.Analysis
	if err := json.Unmarshal(raw, &stored); err != nil || stored.Tagline != a.Tagline {
		t.Fatalf("recorded payload mismatch: %v", err)
	}
}

func TestAnalyze_InvalidDomain(t *testing.T) {
	s := newStudio(&fakeAvailability{}, nil)
	for _, name := range []string{"", "nodot", "bad_name.com", "-lead.com"} {
		if _, err := s.Analyze(context.Background(), name); !errors.Is(err, domain.ErrInvalidDomain) {
			t.Errorf("Analyze(%q): expected ErrInvalidDomain, got %v", name, err)
		}
	}
}

func TestLogo(t *testing.T) {
	s := newStudio(&fakeAvailability{}, nil)
	logo, err := s.Logo(context.Background(), "a wave")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logo.SourcedFrom != models.SourcedFromMock || logo.MIMEType != "image/png" {
		t.Fatalf("unexpected logo %+v", logo)
	}
}
