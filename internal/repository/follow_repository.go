package repository

import (
	"context"

	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	Delete(ctx context.Context, followerID, followeeID string) error
	Exists(ctx context.Context, followerID, followeeID string) (bool, error)
	ListFollowing(ctx context.Context, followerID string, limit, offset int) ([]*domain.Profile, error)
	ListFollowers(ctx context.Context, followeeID string, limit, offset int) ([]*domain.Profile, error)
}
