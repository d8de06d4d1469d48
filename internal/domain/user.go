package domain

import "time"

// User is the authentication identity a profile hangs off. The profile row is
// created empty in the same transaction as the user, so a profile always
// exists for a signed-up account even before onboarding.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
