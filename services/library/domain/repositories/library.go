package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/kenone20/domainogen/services/library/domain/models"
)

// HistoryRepository is the persistence interface for history entries.
// The domain layer owns this interface; infrastructure implements it.
type HistoryRepository interface {
	// Append stores entry and trims the owner's history to the newest limit
	// entries in the same transaction.
	Append(ctx context.Context, entry *models.HistoryEntry, limit int) error

	// Newest returns the owner's most recent entry, or nil when the history
	// is empty.
	Newest(ctx context.Context, ownerID uuid.UUID) (*models.HistoryEntry, error)

	// List returns up to limit entries, newest first.
	List(ctx context.Context, ownerID uuid.UUID, limit int) ([]*models.HistoryEntry, error)

	// LatestAnalysis returns the newest analysis of domain. Returns
	// ErrAnalysisNotFound when there is none.
	LatestAnalysis(ctx context.Context, ownerID uuid.UUID, domain string) (*models.HistoryEntry, error)

	// Clear removes every entry for the owner.
	Clear(ctx context.Context, ownerID uuid.UUID) error
}

// FavoriteRepository is the persistence interface for favorites.
type FavoriteRepository interface {
	// Toggle removes the favorite when it exists and inserts it otherwise.
	// Reports whether the domain is a favorite afterwards.
	Toggle(ctx context.Context, fav *models.Favorite) (bool, error)

	// List returns the owner's favorites, newest first.
	List(ctx context.Context, ownerID uuid.UUID) ([]*models.Favorite, error)

	// Contains returns the subset of names the owner has starred.
	Contains(ctx context.Context, ownerID uuid.UUID, names []string) (map[string]bool, error)

	// UpdateStatus stores a fresh availability status for one favorite.
	UpdateStatus(ctx context.Context, ownerID uuid.UUID, domain string, status models.FavoriteStatus) error
}
