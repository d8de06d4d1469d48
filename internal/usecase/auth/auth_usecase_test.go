package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/profile"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, taken := f.users[user.Email]; taken {
		return domain.ErrEmailTaken
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

type fakeProfileRepo struct {
	profiles  map[string]*domain.Profile
	confirmed map[string]bool
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles:  make(map[string]*domain.Profile),
		confirmed: make(map[string]bool),
	}
}

func (f *fakeProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) SetEmailConfirmed(_ context.Context, id string, confirmed bool) error {
	f.confirmed[id] = confirmed
	return nil
}

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

type fakeSessionRepo struct {
	sessions map[string]string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]string)}
}

func (f *fakeSessionRepo) Save(_ context.Context, token, userID string, _ time.Duration) error {
	f.sessions[token] = userID
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (string, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

func strPtr(s string) *string { return &s }

func newTestUseCase() (*UseCase, *fakeUserRepo, *fakeProfileRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	sessions := newFakeSessionRepo()
	uc := NewUseCase(users, profiles, sessions, testSecret, 15*time.Minute, 30*24*time.Hour)
	return uc, users, profiles, sessions
}

func completeStoredProfile(id string) *domain.Profile {
	return &domain.Profile{
		ID:         id,
		Nickname:   strPtr("たくま"),
		Bio:        strPtr("よろしくお願いします"),
		AvatarURL:  strPtr("https://cdn.example.com/" + id + ".png"),
		Prefecture: strPtr("東京都"),
		Exercises:  []string{"squat"},
	}
}

func TestSignUp(t *testing.T) {
	uc, users, profiles, _ := newTestUseCase()

	resp, err := uc.SignUp(context.Background(), "  Takuma@Example.COM ", "longenough")
	require.NoError(t, err)
	require.True(t, resp.IsNewUser)
	require.Equal(t, profile.DestinationOnboarding, resp.Next)
	require.NotEmpty(t, resp.Token)
	require.NotEmpty(t, resp.RefreshToken)

	// Email is normalized before storage.
	user, err := users.GetByEmail(context.Background(), "takuma@example.com")
	require.NoError(t, err)
	require.Equal(t, resp.UserID, user.ID)

	// The empty profile shell exists right away with visibility defaults on.
	p, err := profiles.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.True(t, p.IsAgePublic)
	require.False(t, domain.IsProfileCompleted(p))
}

func TestSignUp_ShortPassword(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.SignUp(context.Background(), "a@example.com", "short")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignUp_EmailTaken(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)
	_, err = uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin_RoutesByCompletion(t *testing.T) {
	uc, _, profiles, _ := newTestUseCase()

	signup, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)
	require.Equal(t, profile.DestinationOnboarding, resp.Next)
	require.False(t, resp.IsNewUser)

	profiles.profiles[signup.UserID] = completeStoredProfile(signup.UserID)

	resp, err = uc.Login(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)
	require.Equal(t, profile.DestinationDashboard, resp.Next)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	_, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "a@example.com", "wrongpassword")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// An unknown email yields the same error as a bad password.
	_, err = uc.Login(context.Background(), "nobody@example.com", "longenough")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefresh_RotatesSession(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	signup, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)

	refreshed, err := uc.Refresh(context.Background(), signup.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, signup.UserID, refreshed.UserID)
	require.NotEqual(t, signup.RefreshToken, refreshed.RefreshToken)

	// The old refresh token is gone after rotation.
	_, err = uc.Refresh(context.Background(), signup.RefreshToken)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestLogout(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	signup, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), signup.RefreshToken))
	_, err = uc.Refresh(context.Background(), signup.RefreshToken)
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestParseAccessToken(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	signup, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)

	userID, err := uc.ParseAccessToken(signup.Token)
	require.NoError(t, err)
	require.Equal(t, signup.UserID, userID)

	_, err = uc.ParseAccessToken("not-a-token")
	require.ErrorIs(t, err, domain.ErrInvalidToken)
}

// A confirmation token is not usable as an access token and vice versa.
func TestTokenPurposeIsolation(t *testing.T) {
	uc, _, profiles, _ := newTestUseCase()

	signup, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)

	confirm, err := uc.ConfirmationToken(signup.UserID)
	require.NoError(t, err)

	_, err = uc.ParseAccessToken(confirm)
	require.ErrorIs(t, err, domain.ErrInvalidToken)

	require.Error(t, uc.ConfirmEmail(context.Background(), signup.Token))
	require.False(t, profiles.confirmed[signup.UserID])
}

func TestConfirmEmail(t *testing.T) {
	uc, _, profiles, _ := newTestUseCase()

	signup, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)

	confirm, err := uc.ConfirmationToken(signup.UserID)
	require.NoError(t, err)

	require.NoError(t, uc.ConfirmEmail(context.Background(), confirm))
	require.True(t, profiles.confirmed[signup.UserID])
}

func TestPasswordsAreHashed(t *testing.T) {
	uc, users, _, _ := newTestUseCase()

	_, err := uc.SignUp(context.Background(), "a@example.com", "longenough")
	require.NoError(t, err)

	user, err := users.GetByEmail(context.Background(), "a@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "longenough", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")))
}
