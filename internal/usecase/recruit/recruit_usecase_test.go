package recruit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
)

type fakeRecruitmentRepo struct {
	create       func(r *domain.Recruitment) error
	getByID      func(id string) (*domain.Recruitment, error)
	updateStatus func(id, status string) error
}

func (f *fakeRecruitmentRepo) Create(_ context.Context, r *domain.Recruitment) error {
	if f.create == nil {
		return nil
	}
	return f.create(r)
}
func (f *fakeRecruitmentRepo) GetByID(_ context.Context, id string) (*domain.Recruitment, error) {
	return f.getByID(id)
}
func (f *fakeRecruitmentRepo) ListByProfile(context.Context, string, int, int) ([]*domain.Recruitment, error) {
	return nil, nil
}
func (f *fakeRecruitmentRepo) UpdateStatus(_ context.Context, id, status string) error {
	if f.updateStatus == nil {
		return nil
	}
	return f.updateStatus(id, status)
}
func (f *fakeRecruitmentRepo) OpenByLocation(context.Context, string, int) ([]*domain.Recruitment, error) {
	return nil, nil
}
func (f *fakeRecruitmentRepo) OpenByBodyParts(context.Context, []string, int) ([]*domain.Recruitment, error) {
	return nil, nil
}
func (f *fakeRecruitmentRepo) RecentOpen(context.Context, int) ([]*domain.Recruitment, error) {
	return nil, nil
}

type fakeProfileRepo struct {
	getByID func(id string) (*domain.Profile, error)
}

func (f *fakeProfileRepo) Create(context.Context, *domain.Profile) error { return nil }
func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	return f.getByID(id)
}
func (f *fakeProfileRepo) Update(context.Context, *domain.Profile) error { return nil }
func (f *fakeProfileRepo) SetEmailConfirmed(context.Context, string, bool) error { return nil }
func (f *fakeProfileRepo) FindByHomeGym(context.Context, string, string, int) ([]*domain.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) FindByPrefecture(context.Context, string, string, int) ([]*domain.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) FindByExercises(context.Context, []string, string, int) ([]*domain.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) Random(context.Context, []string, int) ([]*domain.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) Newest(context.Context, string, int) ([]*domain.Profile, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func onboardedProfile(id string) *domain.Profile {
	return &domain.Profile{
		ID:         id,
		Nickname:   strPtr("たくま"),
		Bio:        strPtr("よろしくお願いします"),
		AvatarURL:  strPtr("https://cdn.example.com/" + id + ".png"),
		Prefecture: strPtr("東京都"),
		Exercises:  []string{"squat"},
	}
}

func createRequest() *CreateRecruitmentRequest {
	return &CreateRecruitmentRequest{
		Title:          "脚トレ一緒にやりましょう",
		Description:    "スクワットメインで2時間ほど",
		TargetBodyPart: "legs",
		ScheduledAt:    time.Now().Add(48 * time.Hour),
		Location:       "東京都渋谷区",
	}
}

func TestCreate(t *testing.T) {
	var stored *domain.Recruitment
	recruitments := &fakeRecruitmentRepo{
		create: func(r *domain.Recruitment) error {
			stored = r
			return nil
		},
	}
	profiles := &fakeProfileRepo{
		getByID: func(id string) (*domain.Profile, error) { return onboardedProfile(id), nil },
	}
	uc := NewUseCase(recruitments, profiles)

	got, err := uc.Create(context.Background(), "u1", createRequest())
	require.NoError(t, err)
	require.NotEmpty(t, got.ID)
	require.Equal(t, "u1", got.ProfileID)
	require.Equal(t, domain.RecruitmentStatusOpen, got.Status)
	require.Same(t, got, stored)
}

// Posting requires a completed profile.
func TestCreate_OnboardingRequired(t *testing.T) {
	profiles := &fakeProfileRepo{
		getByID: func(id string) (*domain.Profile, error) {
			p := onboardedProfile(id)
			p.Bio = strPtr("   ")
			return p, nil
		},
	}
	uc := NewUseCase(&fakeRecruitmentRepo{}, profiles)

	_, err := uc.Create(context.Background(), "u1", createRequest())
	require.ErrorIs(t, err, domain.ErrOnboardingRequired)
}

func TestClose(t *testing.T) {
	recruitments := &fakeRecruitmentRepo{
		getByID: func(id string) (*domain.Recruitment, error) {
			return &domain.Recruitment{ID: id, ProfileID: "owner", Status: domain.RecruitmentStatusOpen}, nil
		},
		updateStatus: func(id, status string) error {
			require.Equal(t, domain.RecruitmentStatusClosed, status)
			return nil
		},
	}
	uc := NewUseCase(recruitments, &fakeProfileRepo{})

	got, err := uc.Close(context.Background(), "owner", "r1")
	require.NoError(t, err)
	require.Equal(t, domain.RecruitmentStatusClosed, got.Status)
}

func TestClose_NotOwner(t *testing.T) {
	recruitments := &fakeRecruitmentRepo{
		getByID: func(id string) (*domain.Recruitment, error) {
			return &domain.Recruitment{ID: id, ProfileID: "owner", Status: domain.RecruitmentStatusOpen}, nil
		},
	}
	uc := NewUseCase(recruitments, &fakeProfileRepo{})

	_, err := uc.Close(context.Background(), "someone-else", "r1")
	require.ErrorIs(t, err, domain.ErrNotRecruitmentOwner)
}

func TestClose_AlreadyClosed(t *testing.T) {
	recruitments := &fakeRecruitmentRepo{
		getByID: func(id string) (*domain.Recruitment, error) {
			return &domain.Recruitment{ID: id, ProfileID: "owner", Status: domain.RecruitmentStatusClosed}, nil
		},
	}
	uc := NewUseCase(recruitments, &fakeProfileRepo{})

	_, err := uc.Close(context.Background(), "owner", "r1")
	require.ErrorIs(t, err, domain.ErrRecruitmentClosed)
}
