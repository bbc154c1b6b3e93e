package port

import (
	"context"
	"time"

	"biz-awards/internal/core/domain"
)

// SessionStore persists anonymous session tokens server-side so the same
// browser resolves to the same session id across requests.
type SessionStore interface {
	// Exists reports whether the token is a known live session.
	Exists(ctx context.Context, token string) (bool, error)
	// Save stores the token with the given time to live, refreshing the
	// expiry if it already exists.
	Save(ctx context.Context, token string, ttl time.Duration) error
}

// TokenVerifier resolves an opaque bearer token to a platform account.
// It is the boundary contract with the authentication collaborator: a
// valid token yields a user id and role, anything else yields
// ErrPermissionDenied.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.User, error)
}
