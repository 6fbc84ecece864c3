// Package utils holds small helpers shared across layers: typed context keys,
// session token signing and parsing, password hashing, JSON responses, the
// outbound HTTP client and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-sudoku-backend/models"
)

// contextKey is a private type for context keys so they cannot collide with
// keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the int64 id of a caller authenticated by a
	// required token.
	UserIDCtxKey = contextKey("userID")

	// PrincipalCtxKey holds the [models.Principal] resolved from an optional
	// token.
	PrincipalCtxKey = contextKey("principal")
)

// GetUserIDFromContext returns the authenticated user id and whether it was
// present with the right type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// GetPrincipalFromContext returns the principal stored by the optional auth
// middleware, or [models.Anonymous] when none is stored.
func GetPrincipalFromContext(ctx context.Context) models.Principal {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	if !ok {
		return models.Anonymous
	}
	return principal
}
