package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const historyColumns = `id, owner_id, kind, prompt, style, tlds, domain, payload, created_at`

const insertHistoryEntry = `-- name: InsertHistoryEntry :exec
INSERT INTO library_history (id, owner_id, kind, prompt, style, tlds, domain, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8::jsonb, $9)
`

type InsertHistoryEntryParams struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Kind      string
	Prompt    string
	Style     string
	Tlds      string
	Domain    string
	Payload   string
	CreatedAt time.Time
}

func (q *Queries) InsertHistoryEntry(ctx context.Context, arg InsertHistoryEntryParams) error {
	_, err := q.db.ExecContext(ctx, insertHistoryEntry,
		arg.ID,
		arg.OwnerID,
		arg.Kind,
		arg.Prompt,
		arg.Style,
		arg.Tlds,
		arg.Domain,
		arg.Payload,
		arg.CreatedAt,
	)
	return err
}

const trimHistory = `-- name: TrimHistory :execrows
DELETE FROM library_history
WHERE owner_id = $1
  AND id NOT IN (
    SELECT id FROM library_history
    WHERE owner_id = $1
    ORDER BY created_at DESC, id DESC
    LIMIT $2
  )
`

type TrimHistoryParams struct {
	OwnerID uuid.UUID
	Keep    int32
}

func (q *Queries) TrimHistory(ctx context.Context, arg TrimHistoryParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, trimHistory, arg.OwnerID, arg.Keep)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listHistory = `-- name: ListHistory :many
SELECT ` + historyColumns + `
FROM library_history
WHERE owner_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListHistoryParams struct {
	OwnerID uuid.UUID
	Limit   int32
}

func (q *Queries) ListHistory(ctx context.Context, arg ListHistoryParams) ([]LibraryHistory, error) {
	rows, err := q.db.QueryContext(ctx, listHistory, arg.OwnerID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LibraryHistory
	for rows.Next() {
		var i LibraryHistory
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.Kind,
			&i.Prompt,
			&i.Style,
			&i.Tlds,
			&i.Domain,
			&i.Payload,
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

const latestAnalysis = `-- name: LatestAnalysis :one
SELECT ` + historyColumns + `
FROM library_history
WHERE owner_id = $1 AND kind = 'analysis' AND domain = $2
ORDER BY created_at DESC, id DESC
LIMIT 1
`

type LatestAnalysisParams struct {
	OwnerID uuid.UUID
	Domain  string
}

func (q *Queries) LatestAnalysis(ctx context.Context, arg LatestAnalysisParams) (LibraryHistory, error) {
	row := q.db.QueryRowContext(ctx, latestAnalysis, arg.OwnerID, arg.Domain)
	var i LibraryHistory
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Kind,
		&i.Prompt,
		&i.Style,
		&i.Tlds,
		&i.Domain,
		&i.Payload,
		&i.CreatedAt,
	)
	return i, err
}

const clearHistory = `-- name: ClearHistory :exec
DELETE FROM library_history WHERE owner_id = $1
`

func (q *Queries) ClearHistory(ctx context.Context, ownerID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, clearHistory, ownerID)
	return err
}
