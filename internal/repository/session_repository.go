package repository

import (
	"context"
	"time"
)

// SessionRepository stores refresh sessions keyed by opaque token.
type SessionRepository interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// Get returns the user id the token belongs to, or domain.ErrInvalidToken.
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
