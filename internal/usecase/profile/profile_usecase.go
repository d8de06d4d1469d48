package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/infrastructure/gemini"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository"
)

// Route destinations handed back to clients alongside the completion check.
const (
	DestinationDashboard  = "/dashboard"
	DestinationOnboarding = "/onboarding"
)

type UseCase struct {
	profileRepo  repository.ProfileRepository
	geminiClient *gemini.Client
}

func NewUseCase(profileRepo repository.ProfileRepository, geminiClient *gemini.Client) *UseCase {
	return &UseCase{
		profileRepo:  profileRepo,
		geminiClient: geminiClient,
	}
}

// UpdateProfileRequest carries partial profile updates; nil fields are left
// untouched.
type UpdateProfileRequest struct {
	Nickname           *string    `json:"nickname" binding:"omitempty,max=30"`
	Username           *string    `json:"username" binding:"omitempty,max=30"`
	Bio                *string    `json:"bio" binding:"omitempty,max=500"`
	AvatarURL          *string    `json:"avatar_url" binding:"omitempty,url"`
	HeaderURL          *string    `json:"header_url" binding:"omitempty,url"`
	Prefecture         *string    `json:"prefecture" binding:"omitempty,jp_prefecture"`
	HomeGym            *string    `json:"home_gym" binding:"omitempty,max=100"`
	Exercises          *[]string  `json:"exercises" binding:"omitempty,max=20"`
	BirthDate          *time.Time `json:"birth_date"`
	IsAgePublic        *bool      `json:"is_age_public"`
	IsPrefecturePublic *bool      `json:"is_prefecture_public"`
	IsHomeGymPublic    *bool      `json:"is_home_gym_public"`
}

// ProfileResponse is a profile as shown to a viewer, with private fields
// masked and the age derived from the birth date.
type ProfileResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Bio        *string   `json:"bio"`
	AvatarURL  *string   `json:"avatar_url"`
	HeaderURL  *string   `json:"header_url"`
	Prefecture *string   `json:"prefecture,omitempty"`
	HomeGym    *string   `json:"home_gym,omitempty"`
	Exercises  []string  `json:"exercises"`
	Age        *int      `json:"age,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// OnboardingStatus is the Completion Gate result plus where the client should
// navigate next.
type OnboardingStatus struct {
	Completed bool   `json:"completed"`
	Next      string `json:"next"`
}

// GetMyProfile returns the caller's own profile, unmasked.
func (uc *UseCase) GetMyProfile(ctx context.Context, id string) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

// GetProfileByID returns a profile as seen by viewerID. Fields whose
// visibility flag is off are withheld unless the viewer is the owner.
func (uc *UseCase) GetProfileByID(ctx context.Context, targetID, viewerID string) (*ProfileResponse, error) {
	p, err := uc.profileRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	resp := &ProfileResponse{
		ID:        p.ID,
		Name:      p.DisplayName(),
		Bio:       p.Bio,
		AvatarURL: p.AvatarURL,
		HeaderURL: p.HeaderURL,
		Exercises: p.Exercises,
		CreatedAt: p.CreatedAt,
	}

	owner := targetID == viewerID
	if owner || p.IsPrefecturePublic {
		resp.Prefecture = p.Prefecture
	}
	if owner || p.IsHomeGymPublic {
		resp.HomeGym = p.HomeGym
	}
	if (owner || p.IsAgePublic) && p.BirthDate != nil {
		age := p.Age(time.Now())
		resp.Age = &age
	}
	return resp, nil
}

// UpdateProfile applies the non-nil fields of req and returns the stored row.
func (uc *UseCase) UpdateProfile(ctx context.Context, id string, req *UpdateProfileRequest) (*domain.Profile, error) {
	p, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil {
		p.Nickname = req.Nickname
	}
	if req.Username != nil {
		p.Username = req.Username
	}
	if req.Bio != nil {
		p.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		p.AvatarURL = req.AvatarURL
	}
	if req.HeaderURL != nil {
		p.HeaderURL = req.HeaderURL
	}
	if req.Prefecture != nil {
		p.Prefecture = req.Prefecture
	}
	if req.HomeGym != nil {
		p.HomeGym = req.HomeGym
	}
	if req.Exercises != nil {
		p.Exercises = *req.Exercises
	}
	if req.BirthDate != nil {
		p.BirthDate = req.BirthDate
	}
	if req.IsAgePublic != nil {
		p.IsAgePublic = *req.IsAgePublic
	}
	if req.IsPrefecturePublic != nil {
		p.IsPrefecturePublic = *req.IsPrefecturePublic
	}
	if req.IsHomeGymPublic != nil {
		p.IsHomeGymPublic = *req.IsHomeGymPublic
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

// Status recomputes the Completion Gate for the given profile id. A missing
// row counts as incomplete, not as an error, so brand-new accounts route to
// onboarding instead of an error page.
func (uc *UseCase) Status(ctx context.Context, id string) (*OnboardingStatus, error) {
	p, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil && err != domain.ErrProfileNotFound {
		return nil, err
	}
	status := &OnboardingStatus{Next: DestinationOnboarding}
	if domain.IsProfileCompleted(p) {
		status.Completed = true
		status.Next = DestinationDashboard
	}
	return status, nil
}

// CompleteOnboarding upserts the onboarding fields and returns the recomputed
// gate result, so a client that submitted everything sees the dashboard
// destination immediately.
func (uc *UseCase) CompleteOnboarding(ctx context.Context, id string, req *UpdateProfileRequest) (*OnboardingStatus, error) {
	if _, err := uc.UpdateProfile(ctx, id, req); err != nil {
		return nil, err
	}
	return uc.Status(ctx, id)
}

// SuggestBioRequest parameterizes the AI bio helper.
type SuggestBioRequest struct {
	Name       string   `json:"name" binding:"required,max=30"`
	Prefecture string   `json:"prefecture" binding:"omitempty,jp_prefecture"`
	HomeGym    string   `json:"home_gym" binding:"omitempty,max=100"`
	Exercises  []string `json:"exercises" binding:"omitempty,max=20"`
}

// SuggestBio generates candidate self-introductions for the onboarding form.
func (uc *UseCase) SuggestBio(ctx context.Context, req *SuggestBioRequest) ([]string, error) {
	if uc.geminiClient == nil {
		return nil, fmt.Errorf("bio suggestion is not available")
	}
	return uc.geminiClient.SuggestBios(ctx, req.Name, req.Prefecture, req.HomeGym, req.Exercises)
}
