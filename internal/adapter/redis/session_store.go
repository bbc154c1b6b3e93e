package redisstore

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ad_session:"

// SessionStore keeps anonymous ad-session tokens in Redis with a TTL so
// the same browser resolves to the same session id for the lifetime of
// its cookie. It implements port.SessionStore.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore returns a store backed by the given client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Exists reports whether the token is a known live session.
func (s *SessionStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Save stores the token with the given TTL, refreshing the expiry when
// the token is already present.
func (s *SessionStore) Save(ctx context.Context, token string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+token, "1", ttl).Err()
}

// NewToken mints a random session token with 256 bits of entropy,
// encoded URL-safe for cookie transport.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
