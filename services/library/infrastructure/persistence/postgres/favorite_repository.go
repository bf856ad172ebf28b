package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kenone20/domainogen/pkg/database"
	"github.com/kenone20/domainogen/services/library/domain/models"
	"github.com/kenone20/domainogen/services/library/infrastructure/persistence/postgres/db"
)

// FavoriteRepository implements repositories.FavoriteRepository against PostgreSQL.
type FavoriteRepository struct {
	db *database.Database
}

// NewFavoriteRepository returns a FavoriteRepository backed by the given pool.
func NewFavoriteRepository(database *database.Database) *FavoriteRepository {
	return &FavoriteRepository{db: database}
}

// Toggle deletes the favorite if present, otherwise inserts it. A concurrent
// insert of the same favorite counts as starred.
func (r *FavoriteRepository) Toggle(ctx context.Context, fav *models.Favorite) (bool, error) {
	var starred bool
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		q := db.New(tx)
		removed, err := q.DeleteFavorite(ctx, db.DeleteFavoriteParams{OwnerID: fav.OwnerID, Domain: fav.Domain})
		if err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}
		if removed > 0 {
			starred = false
			return nil
		}

		if err := q.InsertFavorite(ctx, db.InsertFavoriteParams{
			OwnerID:   fav.OwnerID,
			Domain:    fav.Domain,
			Status:    string(fav.Status),
			CheckedAt: sql.NullTime{Time: fav.CheckedAt, Valid: !fav.CheckedAt.IsZero()},
			CreatedAt: fav.CreatedAt,
		}); err != nil {
			return fmt.Errorf("insert favorite: %w", err)
		}
		starred = true
		return nil
	})
	return starred, err
}

// List returns the owner's favorites, newest first.
func (r *FavoriteRepository) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Favorite, error) {
	rows, err := db.New(r.db.DB()).ListFavorites(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	out := make([]*models.Favorite, len(rows))
	for i, row := range rows {
		out[i] = rowToFavorite(row)
	}
	return out, nil
}

// Contains returns the subset of names the owner has starred.
func (r *FavoriteRepository) Contains(ctx context.Context, ownerID uuid.UUID, names []string) (map[string]bool, error) {
	out := make(map[string]bool)
	if len(names) == 0 {
		return out, nil
	}
	domains, err := db.New(r.db.DB()).FavoriteDomainsIn(ctx, db.FavoriteDomainsInParams{OwnerID: ownerID, Domains: names})
	if err != nil {
		return nil, fmt.Errorf("query favorite set: %w", err)
	}
	for _, d := range domains {
		out[d] = true
	}
	return out, nil
}

// UpdateStatus stores a fresh status and check time for one favorite.
func (r *FavoriteRepository) UpdateStatus(ctx context.Context, ownerID uuid.UUID, domain string, status models.FavoriteStatus) error {
	if err := db.New(r.db.DB()).UpdateFavoriteStatus(ctx, db.UpdateFavoriteStatusParams{
		OwnerID:   ownerID,
		Domain:    domain,
		Status:    string(status),
		CheckedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("update favorite status: %w", err)
	}
	return nil
}

// rowToFavorite maps a db.LibraryFavorite to a domain models.Favorite.
func rowToFavorite(row db.LibraryFavorite) *models.Favorite {
	f := &models.Favorite{
		OwnerID:   row.OwnerID,
		Domain:    row.Domain,
		Status:    models.ParseFavoriteStatus(row.Status),
		CreatedAt: row.CreatedAt,
	}
	if row.CheckedAt.Valid {
		f.CheckedAt = row.CheckedAt.Time
	}
	return f
}
