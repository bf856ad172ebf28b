package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type LibraryHistory struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Kind      string
	Prompt    string
	Style     string
	Tlds      []byte
	Domain    string
	Payload   []byte
	CreatedAt time.Time
}

type LibraryFavorite struct {
	OwnerID   uuid.UUID
	Domain    string
	Status    string
	CheckedAt sql.NullTime
	CreatedAt time.Time
}
