package repository

import (
	"context"

	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
)

type RecruitmentRepository interface {
	Create(ctx context.Context, recruitment *domain.Recruitment) error
	GetByID(ctx context.Context, id string) (*domain.Recruitment, error)
	ListByProfile(ctx context.Context, profileID string, limit, offset int) ([]*domain.Recruitment, error)
	UpdateStatus(ctx context.Context, id, status string) error

	// OpenByLocation returns open posts whose location contains the fragment.
	OpenByLocation(ctx context.Context, fragment string, limit int) ([]*domain.Recruitment, error)
	// OpenByBodyParts returns open posts whose target body part is one of parts.
	OpenByBodyParts(ctx context.Context, parts []string, limit int) ([]*domain.Recruitment, error)
	// RecentOpen returns the most recently created open posts.
	RecentOpen(ctx context.Context, limit int) ([]*domain.Recruitment, error)
}
