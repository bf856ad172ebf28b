package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kenone20/domainogen/pkg/database"
	"github.com/kenone20/domainogen/pkg/logger"
	"github.com/kenone20/domainogen/pkg/migrator"
	librarydomain "github.com/kenone20/domainogen/services/library/domain"
	"github.com/kenone20/domainogen/services/library/domain/models"
	"github.com/kenone20/domainogen/services/library/infrastructure/persistence/postgres/db"
)

func TestRowToEntry(t *testing.T) {
	id := uuid.New()
	e, err := rowToEntry(db.LibraryHistory{
		ID:      id,
		Kind:    "generation",
		Tlds:    []byte(`[".io",".com"]`),
		Payload: []byte(`[]`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != id || e.Kind != models.KindGeneration || len(e.TLDs) != 2 {
		t.Fatalf("unexpected entry %+v", e)
	}

	if _, err := rowToEntry(db.LibraryHistory{Tlds: []byte(`{`)}); err == nil {
		t.Fatal("expected error for corrupt tlds")
	}
}

func TestRowToFavorite(t *testing.T) {
	f := rowToFavorite(db.LibraryFavorite{Domain: "a.io", Status: "bogus"})
	if f.Status != models.FavoritePending || !f.CheckedAt.IsZero() {
		t.Fatalf("unexpected favorite %+v", f)
	}
}

// Integration tests: skipped unless DATABASE_URL is set.
func TestRepositoriesIntegration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	if err := migrator.RunMigrations(url, os.DirFS("../../../../../migrations/library")); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, url, logger.Discard())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close() //nolint:errcheck

	history := NewHistoryRepository(pool, nil)
	favorites := NewFavoriteRepository(pool)
	owner := uuid.New()

	t.Run("History_AppendTrimsToLimit", func(t *testing.T) {
		base := time.Now().UTC()
		for i := range 5 {
			e, err := models.NewGenerationEntry(owner, fmt.Sprintf("prompt %d", i), "Modern", []string{".io"}, json.RawMessage(`[]`))
			if err != nil {
				t.Fatal(err)
			}
			e.CreatedAt = base.Add(time.Duration(i) * time.Second)
			if err := history.Append(ctx, e, 3); err != nil {
				t.Fatalf("Append: %v", err)
			}
		}
		entries, err := history.List(ctx, owner, 50)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(entries) != 3 || entries[0].Prompt != "prompt 4" {
			t.Fatalf("expected 3 newest entries, got %d (first %q)", len(entries), entries[0].Prompt)
		}
	})

	t.Run("History_LatestAnalysis", func(t *testing.T) {
		if _, err := history.LatestAnalysis(ctx, owner, "nothing.io"); !errors.Is(err, librarydomain.ErrAnalysisNotFound) {
			t.Fatalf("expected ErrAnalysisNotFound, got %v", err)
		}
		e, _ := models.NewAnalysisEntry(owner, "brandify.io", json.RawMessage(`{"domain":"brandify.io"}`))
		if err := history.Append(ctx, e, 50); err != nil {
			t.Fatalf("Append: %v", err)
		}
		got, err := history.LatestAnalysis(ctx, owner, "brandify.io")
		if err != nil || got.ID != e.ID {
			t.Fatalf("LatestAnalysis = %+v, %v", got, err)
		}
		newest, err := history.Newest(ctx, owner)
		if err != nil || !newest.Repeats("brandify.io") {
			t.Fatalf("Newest = %+v, %v", newest, err)
		}
	})

	t.Run("History_Clear", func(t *testing.T) {
		if err := history.Clear(ctx, owner); err != nil {
			t.Fatalf("Clear: %v", err)
		}
		newest, err := history.Newest(ctx, owner)
		if err != nil || newest != nil {
			t.Fatalf("expected empty history, got %+v, %v", newest, err)
		}
	})

	t.Run("Favorites_Toggle", func(t *testing.T) {
		fav := models.NewFavorite(owner, "zenflow.io", models.FavoriteAvailable)
		on, err := favorites.Toggle(ctx, fav)
		if err != nil || !on {
			t.Fatalf("first toggle = %v, %v", on, err)
		}
		set, err := favorites.Contains(ctx, owner, []string{"zenflow.io", "other.io"})
		if err != nil || !set["zenflow.io"] || set["other.io"] {
			t.Fatalf("Contains = %v, %v", set, err)
		}
		if err := favorites.UpdateStatus(ctx, owner, "zenflow.io", models.FavoriteTaken); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
		list, err := favorites.List(ctx, owner)
		if err != nil || len(list) != 1 || list[0].Status != models.FavoriteTaken {
			t.Fatalf("List = %+v, %v", list, err)
		}
		off, err := favorites.Toggle(ctx, fav)
		if err != nil || off {
			t.Fatalf("second toggle = %v, %v", off, err)
		}
	})
}
