// Package requestctx carries per-request identity through context.Context.
// It sits below pkg/auth and pkg/logger so both can read the owner without
// importing each other.
package requestctx

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const ownerIDKey contextKey = "owner_id"

// ErrOwnerNotFound is returned when no owner ID exists in the request context.
var ErrOwnerNotFound = errors.New("owner_id not found in context")

// OwnerIDFromCtx extracts the anonymous owner ID bound by the session middleware.
// Returns uuid.Nil and ErrOwnerNotFound when the request carries no owner.
func OwnerIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := ctx.Value(ownerIDKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, ErrOwnerNotFound
	}
	return ownerID, nil
}

// WithOwnerID returns a new context with the given owner ID attached.
func WithOwnerID(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}
