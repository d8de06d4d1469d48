package follow

import (
	"context"
	"fmt"

	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository"
)

const DefaultListLimit = 20

type UseCase struct {
	followRepo  repository.FollowRepository
	profileRepo repository.ProfileRepository
}

func NewUseCase(followRepo repository.FollowRepository, profileRepo repository.ProfileRepository) *UseCase {
	return &UseCase{
		followRepo:  followRepo,
		profileRepo: profileRepo,
	}
}

// Follow creates a follow edge from followerID to followeeID.
func (uc *UseCase) Follow(ctx context.Context, followerID, followeeID string) (*domain.Follow, error) {
	if followerID == followeeID {
		return nil, domain.ErrCannotFollowSelf
	}
	if _, err := uc.profileRepo.GetByID(ctx, followeeID); err != nil {
		return nil, err
	}

	follow := &domain.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	if err := uc.followRepo.Create(ctx, follow); err != nil {
		if err == domain.ErrAlreadyFollowing {
			return nil, err
		}
		return nil, fmt.Errorf("failed to follow: %w", err)
	}
	return follow, nil
}

func (uc *UseCase) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return uc.followRepo.Delete(ctx, followerID, followeeID)
}

func (uc *UseCase) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return uc.followRepo.Exists(ctx, followerID, followeeID)
}

func (uc *UseCase) ListFollowing(ctx context.Context, profileID string, limit, offset int) ([]*domain.Profile, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return uc.followRepo.ListFollowing(ctx, profileID, limit, offset)
}

func (uc *UseCase) ListFollowers(ctx context.Context, profileID string, limit, offset int) ([]*domain.Profile, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return uc.followRepo.ListFollowers(ctx, profileID, limit, offset)
}
