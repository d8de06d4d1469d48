package recruit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository"
)

const DefaultListLimit = 20

type UseCase struct {
	recruitmentRepo repository.RecruitmentRepository
	profileRepo     repository.ProfileRepository
}

func NewUseCase(recruitmentRepo repository.RecruitmentRepository, profileRepo repository.ProfileRepository) *UseCase {
	return &UseCase{
		recruitmentRepo: recruitmentRepo,
		profileRepo:     profileRepo,
	}
}

type CreateRecruitmentRequest struct {
	Title          string    `json:"title" binding:"required,max=100"`
	Description    string    `json:"description" binding:"required,max=2000"`
	TargetBodyPart string    `json:"target_body_part" binding:"required,max=30"`
	ScheduledAt    time.Time `json:"scheduled_at" binding:"required"`
	Location       string    `json:"location" binding:"required,max=200"`
}

// Create posts a new open recruitment. Only onboarded profiles may post; an
// incomplete profile gets domain.ErrOnboardingRequired.
func (uc *UseCase) Create(ctx context.Context, profileID string, req *CreateRecruitmentRequest) (*domain.Recruitment, error) {
	p, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !domain.IsProfileCompleted(p) {
		return nil, domain.ErrOnboardingRequired
	}

	recruitment := &domain.Recruitment{
		ID:             uuid.NewString(),
		ProfileID:      profileID,
		Title:          req.Title,
		Description:    req.Description,
		TargetBodyPart: req.TargetBodyPart,
		ScheduledAt:    req.ScheduledAt,
		Location:       req.Location,
		Status:         domain.RecruitmentStatusOpen,
	}
	if err := uc.recruitmentRepo.Create(ctx, recruitment); err != nil {
		return nil, fmt.Errorf("failed to create recruitment: %w", err)
	}
	return recruitment, nil
}

func (uc *UseCase) GetByID(ctx context.Context, id string) (*domain.Recruitment, error) {
	return uc.recruitmentRepo.GetByID(ctx, id)
}

func (uc *UseCase) ListMine(ctx context.Context, profileID string, limit, offset int) ([]*domain.Recruitment, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return uc.recruitmentRepo.ListByProfile(ctx, profileID, limit, offset)
}

func (uc *UseCase) ListRecentOpen(ctx context.Context, limit int) ([]*domain.Recruitment, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return uc.recruitmentRepo.RecentOpen(ctx, limit)
}

// Close marks an open recruitment closed. Only the owner may close it.
func (uc *UseCase) Close(ctx context.Context, profileID, recruitmentID string) (*domain.Recruitment, error) {
	recruitment, err := uc.recruitmentRepo.GetByID(ctx, recruitmentID)
	if err != nil {
		return nil, err
	}
	if !recruitment.IsOwnedBy(profileID) {
		return nil, domain.ErrNotRecruitmentOwner
	}
	if !recruitment.IsOpen() {
		return nil, domain.ErrRecruitmentClosed
	}

	if err := uc.recruitmentRepo.UpdateStatus(ctx, recruitmentID, domain.RecruitmentStatusClosed); err != nil {
		return nil, fmt.Errorf("failed to close recruitment: %w", err)
	}
	recruitment.Status = domain.RecruitmentStatusClosed
	return recruitment, nil
}
