package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FavoriteStatus mirrors the availability state shown for a candidate.
type FavoriteStatus string

const (
	FavoritePending   FavoriteStatus = "pending"
	FavoriteAvailable FavoriteStatus = "available"
	FavoriteTaken     FavoriteStatus = "taken"
)

// ParseFavoriteStatus maps s to a status, defaulting to pending.
func ParseFavoriteStatus(s string) FavoriteStatus {
	switch FavoriteStatus(strings.ToLower(strings.TrimSpace(s))) {
	case FavoriteAvailable:
		return FavoriteAvailable
	case FavoriteTaken:
		return FavoriteTaken
	default:
		return FavoritePending
	}
}

// StatusOf maps an availability verdict to a status.
func StatusOf(available bool) FavoriteStatus {
	if available {
		return FavoriteAvailable
	}
	return FavoriteTaken
}

// Favorite is a domain an owner starred.
type Favorite struct {
	OwnerID   uuid.UUID      `json:"-"`
	Domain    string         `json:"name"`
	Status    FavoriteStatus `json:"status"`
	CheckedAt time.Time      `json:"checked_at,omitzero"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewFavorite returns a favorite. A non-pending status counts as checked now.
func NewFavorite(ownerID uuid.UUID, domain string, status FavoriteStatus) *Favorite {
	now := time.Now().UTC()
	f := &Favorite{
		OwnerID:   ownerID,
		Domain:    strings.ToLower(strings.TrimSpace(domain)),
		Status:    status,
		CreatedAt: now,
	}
	if status != FavoritePending {
		f.CheckedAt = now
	}
	return f
}
