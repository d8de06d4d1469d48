package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrRecruitmentNotFound = errors.New("recruitment not found")
	ErrRecruitmentClosed   = errors.New("recruitment already closed")
	ErrNotRecruitmentOwner = errors.New("not the recruitment owner")
	ErrGroupNotFound       = errors.New("group not found")
	ErrAlreadyFollowing    = errors.New("already following")
	ErrNotFollowing        = errors.New("not following")
	ErrCannotFollowSelf    = errors.New("cannot follow yourself")
	ErrOnboardingRequired  = errors.New("onboarding required")
	ErrInvalidInput        = errors.New("invalid input")
)
