package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/takuma1234577-create/fitpeak-server/internal/domain"
	"github.com/takuma1234577-create/fitpeak-server/internal/repository"
	"github.com/takuma1234577-create/fitpeak-server/internal/usecase/profile"
	"golang.org/x/crypto/bcrypt"
)

// Claim purposes. The email confirmation link carries a restricted token that
// cannot be used as an access token.
const (
	purposeAccess       = "access"
	purposeConfirmEmail = "confirm_email"
)

type UseCase struct {
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	sessionRepo  repository.SessionRepository
	accessSecret []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

func NewUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
	accessSecret string,
	accessTTL, refreshTTL time.Duration,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		sessionRepo:  sessionRepo,
		accessSecret: []byte(accessSecret),
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

// AuthResponse is returned by signup, login and refresh. Next tells the
// client where to navigate: the dashboard when the profile already passes the
// completion check, the onboarding form otherwise.
type AuthResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	UserID       string    `json:"user_id"`
	Next         string    `json:"next"`
	IsNewUser    bool      `json:"is_new_user"`
}

// SignUp registers an email/password account. The profile row is created
// empty in the same step, so the completion check and discovery queries always
// have a row to look at; new accounts are therefore always routed to
// onboarding.
func (uc *UseCase) SignUp(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < 8 {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Reactive profile creation: empty shell with default visibility.
	emptyProfile := &domain.Profile{
		ID:                 user.ID,
		IsAgePublic:        true,
		IsPrefecturePublic: true,
		IsHomeGymPublic:    true,
	}
	if err := uc.profileRepo.Create(ctx, emptyProfile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	resp, err := uc.issueTokens(ctx, user.ID, profile.DestinationOnboarding)
	if err != nil {
		return nil, err
	}
	resp.IsNewUser = true
	return resp, nil
}

// Login authenticates an email/password pair and routes the caller through
// the completion check.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.issueTokens(ctx, user.ID, uc.nextDestination(ctx, user.ID))
}

// Refresh rotates a refresh session into a fresh token pair.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := uc.sessionRepo.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if err := uc.sessionRepo.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}
	return uc.issueTokens(ctx, userID, uc.nextDestination(ctx, userID))
}

// Logout drops the refresh session. The access token simply expires.
func (uc *UseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.sessionRepo.Delete(ctx, refreshToken)
}

// ConfirmEmail validates a confirmation token and flips the profile flag the
// discovery queries filter on.
func (uc *UseCase) ConfirmEmail(ctx context.Context, token string) error {
	userID, err := uc.parseToken(token, purposeConfirmEmail)
	if err != nil {
		return err
	}
	return uc.profileRepo.SetEmailConfirmed(ctx, userID, true)
}

// ConfirmationToken issues the token embedded in the confirmation mail. The
// mail delivery itself is an external concern.
func (uc *UseCase) ConfirmationToken(userID string) (string, error) {
	return uc.signToken(userID, purposeConfirmEmail, 24*time.Hour)
}

// ParseAccessToken validates an access token and returns the user id, for the
// authentication middleware.
func (uc *UseCase) ParseAccessToken(token string) (string, error) {
	return uc.parseToken(token, purposeAccess)
}

func (uc *UseCase) issueTokens(ctx context.Context, userID, next string) (*AuthResponse, error) {
	expiresAt := time.Now().Add(uc.accessTTL)
	access, err := uc.signToken(userID, purposeAccess, uc.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh := uuid.NewString()
	if err := uc.sessionRepo.Save(ctx, refresh, userID, uc.refreshTTL); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &AuthResponse{
		Token:        access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
		UserID:       userID,
		Next:         next,
	}, nil
}

// nextDestination applies the completion check to pick the post-auth route.
// A missing or unreadable profile routes to onboarding rather than erroring.
func (uc *UseCase) nextDestination(ctx context.Context, userID string) string {
	p, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		return profile.DestinationOnboarding
	}
	if domain.IsProfileCompleted(p) {
		return profile.DestinationDashboard
	}
	return profile.DestinationOnboarding
}

func (uc *UseCase) signToken(userID, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     userID,
		"purpose": purpose,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.accessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (uc *UseCase) parseToken(tokenString, purpose string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	if p, _ := claims["purpose"].(string); p != purpose {
		return "", domain.ErrInvalidToken
	}
	userID, _ := claims["sub"].(string)
	if userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}
