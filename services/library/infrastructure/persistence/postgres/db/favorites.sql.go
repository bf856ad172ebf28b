package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const deleteFavorite = `-- name: DeleteFavorite :execrows
DELETE FROM library_favorites WHERE owner_id = $1 AND domain = $2
`

type DeleteFavoriteParams struct {
	OwnerID uuid.UUID
	Domain  string
}

func (q *Queries) DeleteFavorite(ctx context.Context, arg DeleteFavoriteParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteFavorite, arg.OwnerID, arg.Domain)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const insertFavorite = `-- name: InsertFavorite :exec
INSERT INTO library_favorites (owner_id, domain, status, checked_at, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (owner_id, domain) DO NOTHING
`

type InsertFavoriteParams struct {
	OwnerID   uuid.UUID
	Domain    string
	Status    string
	CheckedAt sql.NullTime
	CreatedAt time.Time
}

func (q *Queries) InsertFavorite(ctx context.Context, arg InsertFavoriteParams) error {
	_, err := q.db.ExecContext(ctx, insertFavorite,
		arg.OwnerID,
		arg.Domain,
		arg.Status,
		arg.CheckedAt,
		arg.CreatedAt,
	)
	return err
}

const listFavorites = `-- name: ListFavorites :many
SELECT owner_id, domain, status, checked_at, created_at
FROM library_favorites
WHERE owner_id = $1
ORDER BY created_at DESC, domain
`

func (q *Queries) ListFavorites(ctx context.Context, ownerID uuid.UUID) ([]LibraryFavorite, error) {
	rows, err := q.db.QueryContext(ctx, listFavorites, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LibraryFavorite
	for rows.Next() {
		var i LibraryFavorite
		if err := rows.Scan(
			&i.OwnerID,
			&i.Domain,
			&i.Status,
			&i.CheckedAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const favoriteDomainsIn = `-- name: FavoriteDomainsIn :many
SELECT domain FROM library_favorites
WHERE owner_id = $1 AND domain = ANY($2::text[])
`

type FavoriteDomainsInParams struct {
	OwnerID uuid.UUID
	Domains []string
}

func (q *Queries) FavoriteDomainsIn(ctx context.Context, arg FavoriteDomainsInParams) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, favoriteDomainsIn, arg.OwnerID, arg.Domains)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var domain string
		if err := rows.Scan(&domain); err != nil {
			return nil, err
		}
		items = append(items, domain)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateFavoriteStatus = `-- name: UpdateFavoriteStatus :exec
UPDATE library_favorites
SET status = $3, checked_at = $4
WHERE owner_id = $1 AND domain = $2
`

type UpdateFavoriteStatusParams struct {
	OwnerID   uuid.UUID
	Domain    string
	Status    string
	CheckedAt time.Time
}

func (q *Queries) UpdateFavoriteStatus(ctx context.Context, arg UpdateFavoriteStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateFavoriteStatus, arg.OwnerID, arg.Domain, arg.Status, arg.CheckedAt)
	return err
}
