// Package auth carries the authenticated identity through a request context.
package auth

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the authenticated user behind a request.
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored in ctx.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
	}
	return id, true
}
