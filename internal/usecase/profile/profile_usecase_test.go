package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
)

type fakeProfileRepo struct {
	getByID func(id string) (*domain.Profile, error)
	update  func(p *domain.Profile) error
}

func (f *fakeProfileRepo) Create(context.Context, *domain.Profile) error { return nil }
func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	return f.getByID(id)
}
func (f *fakeProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	if f.update == nil {
		return nil
	}
	return f.update(p)
}
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

func completeProfile(id string) *domain.Profile {
	birth := time.Date(1995, 3, 10, 0, 0, 0, 0, time.UTC)
	return &domain.Profile{
		ID:                 id,
		Nickname:           strPtr("たくま"),
		Bio:                strPtr("ベンチプレス100kg目指してます"),
		AvatarURL:          strPtr("https://cdn.example.com/" + id + ".png"),
		Prefecture:         strPtr("東京都"),
		HomeGym:            strPtr("エニタイム渋谷"),
		Exercises:          []string{"bench_press"},
		BirthDate:          &birth,
		IsAgePublic:        true,
		IsPrefecturePublic: true,
		IsHomeGymPublic:    true,
	}
}

func TestStatus_Complete(t *testing.T) {
	repo := &fakeProfileRepo{
		getByID: func(id string) (*domain.Profile, error) { return completeProfile(id), nil },
	}
	uc := NewUseCase(repo, nil)

	status, err := uc.Status(context.Background(), "u1")
	require.NoError(t, err)
	require.True(t, status.Completed)
	require.Equal(t, DestinationDashboard, status.Next)
}

func TestStatus_Incomplete(t *testing.T) {
	repo := &fakeProfileRepo{
		getByID: func(id string) (*domain.Profile, error) {
			p := completeProfile(id)
			p.AvatarURL = nil
			return p, nil
		},
	}
	uc := NewUseCase(repo, nil)

	status, err := uc.Status(context.Background(), "u1")
	require.NoError(t, err)
	require.False(t, status.Completed)
	require.Equal(t, DestinationOnboarding, status.Next)
}

// A brand-new account has no profile row yet; that routes to onboarding
// rather than erroring.
func TestStatus_MissingProfile(t *testing.T) {
	repo := &fakeProfileRepo{
		getByID: func(string) (*domain.Profile, error) { return nil, domain.ErrProfileNotFound },
	}
	uc := NewUseCase(repo, nil)

	status, err := uc.Status(context.Background(), "u1")
	require.NoError(t, err)
	require.False(t, status.Completed)
	require.Equal(t, DestinationOnboarding, status.Next)
}

func TestStatus_StoreError(t *testing.T) {
	repo := &fakeProfileRepo{
		getByID: func(string) (*domain.Profile, error) { return nil, errors.New("store down") },
	}
	uc := NewUseCase(repo, nil)

	_, err := uc.Status(context.Background(), "u1")
	require.Error(t, err)
}

func TestGetProfileByID_MasksPrivateFields(t *testing.T) {
	p := completeProfile("u1")
	p.IsAgePublic = false
	p.IsPrefecturePublic = false
	p.IsHomeGymPublic = false
	repo := &fakeProfileRepo{
		getByID: func(string) (*domain.Profile, error) { return p, nil },
	}
	uc := NewUseCase(repo, nil)

	resp, err := uc.GetProfileByID(context.Background(), "u1", "viewer")
	require.NoError(t, err)
	require.Nil(t, resp.Prefecture)
	require.Nil(t, resp.HomeGym)
	require.Nil(t, resp.Age)
	require.Equal(t, "たくま", resp.Name)
}

func TestGetProfileByID_OwnerSeesEverything(t *testing.T) {
	p := completeProfile("u1")
	p.IsAgePublic = false
	p.IsPrefecturePublic = false
	p.IsHomeGymPublic = false
	repo := &fakeProfileRepo{
		getByID: func(string) (*domain.Profile, error) { return p, nil },
	}
	uc := NewUseCase(repo, nil)

	resp, err := uc.GetProfileByID(context.Background(), "u1", "u1")
	require.NoError(t, err)
	require.Equal(t, p.Prefecture, resp.Prefecture)
	require.Equal(t, p.HomeGym, resp.HomeGym)
	require.NotNil(t, resp.Age)
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	stored := completeProfile("u1")
	var saved *domain.Profile
	repo := &fakeProfileRepo{
		getByID: func(string) (*domain.Profile, error) { return stored, nil },
		update: func(p *domain.Profile) error {
			saved = p
			return nil
		},
	}
	uc := NewUseCase(repo, nil)

	agePublic := false
	req := &UpdateProfileRequest{
		Bio:         strPtr("更新しました"),
		IsAgePublic: &agePublic,
	}
	got, err := uc.UpdateProfile(context.Background(), "u1", req)
	require.NoError(t, err)
	require.Equal(t, "更新しました", *got.Bio)
	require.False(t, got.IsAgePublic)
	// Untouched fields survive the merge.
	require.Equal(t, "エニタイム渋谷", *got.HomeGym)
	require.Same(t, got, saved)
}

func TestCompleteOnboarding_ReturnsFreshGateResult(t *testing.T) {
	stored := &domain.Profile{ID: "u1", IsAgePublic: true, IsPrefecturePublic: true, IsHomeGymPublic: true}
	repo := &fakeProfileRepo{
		getByID: func(string) (*domain.Profile, error) { return stored, nil },
	}
	uc := NewUseCase(repo, nil)

	exercises := []string{"squat"}
	req := &UpdateProfileRequest{
		Nickname:   strPtr("たくま"),
		Bio:        strPtr("よろしくお願いします"),
		AvatarURL:  strPtr("https://cdn.example.com/u1.png"),
		Prefecture: strPtr("東京都"),
		Exercises:  &exercises,
	}
	status, err := uc.CompleteOnboarding(context.Background(), "u1", req)
	require.NoError(t, err)
	require.True(t, status.Completed)
	require.Equal(t, DestinationDashboard, status.Next)
}

func TestSuggestBio_UnavailableWithoutClient(t *testing.T) {
	uc := NewUseCase(&fakeProfileRepo{}, nil)

	_, err := uc.SuggestBio(context.Background(), &SuggestBioRequest{Name: "たくま"})
	require.Error(t, err)
}
