package repository

import (
	"context"

	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
)

// ProfileRepository is the store handle for profile rows. The candidate
// finders apply a weak query-layer pre-filter (NOT NULL on the onboarding
// fields) so most incomplete rows never leave the store; callers still
// re-validate every row with domain.IsProfileCompleted, because NOT NULL does
// not catch empty or whitespace-only values.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	SetEmailConfirmed(ctx context.Context, id string, confirmed bool) error

	// FindByHomeGym returns candidates whose home_gym contains the fragment,
	// excluding excludeID.
	FindByHomeGym(ctx context.Context, fragment, excludeID string, limit int) ([]*domain.Profile, error)
	// FindByPrefecture returns candidates with exactly this prefecture,
	// excluding excludeID.
	FindByPrefecture(ctx context.Context, prefecture, excludeID string, limit int) ([]*domain.Profile, error)
	// FindByExercises returns candidates whose exercise tags overlap the given
	// set, excluding excludeID.
	FindByExercises(ctx context.Context, exercises []string, excludeID string, limit int) ([]*domain.Profile, error)
	// Random returns up to count arbitrary candidates, excluding every id in
	// excludeIDs.
	Random(ctx context.Context, excludeIDs []string, count int) ([]*domain.Profile, error)
	// Newest returns the most recently created candidates with a confirmed
	// email, newest first, excluding excludeID when non-empty.
	Newest(ctx context.Context, excludeID string, limit int) ([]*domain.Profile, error)
}
