package domain

import (
	"strings"
	"time"
)

type Profile struct {
	ID                 string     `json:"id" db:"id"`
	Nickname           *string    `json:"nickname" db:"nickname"`
	Username           *string    `json:"username" db:"username"`
	Bio                *string    `json:"bio" db:"bio"`
	AvatarURL          *string    `json:"avatar_url" db:"avatar_url"`
	HeaderURL          *string    `json:"header_url" db:"header_url"`
	Prefecture         *string    `json:"prefecture" db:"prefecture"`
	HomeGym            *string    `json:"home_gym" db:"home_gym"`
	Exercises          []string   `json:"exercises" db:"exercises"`
	BirthDate          *time.Time `json:"birth_date" db:"birth_date"`
	IsAgePublic        bool       `json:"is_age_public" db:"is_age_public"`
	IsPrefecturePublic bool       `json:"is_prefecture_public" db:"is_prefecture_public"`
	IsHomeGymPublic    bool       `json:"is_home_gym_public" db:"is_home_gym_public"`
	EmailConfirmed     bool       `json:"email_confirmed" db:"email_confirmed"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the trimmed nickname, falling back to the username.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.Nickname != nil {
		if name := strings.TrimSpace(*p.Nickname); name != "" {
			return name
		}
	}
	if p.Username != nil {
		if name := strings.TrimSpace(*p.Username); name != "" {
			return name
		}
	}
	return ""
}

// Age derives the profile's age in whole years, or 0 when no birth date is set.
func (p *Profile) Age(now time.Time) int {
	if p == nil || p.BirthDate == nil {
		return 0
	}
	age := now.Year() - p.BirthDate.Year()
	if now.YearDay() < p.BirthDate.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// IsProfileCompleted reports whether the profile satisfies the minimum fields
// required to finish onboarding: an avatar, a display name, a bio, a prefecture
// and at least one exercise tag. It is the single source of truth for routing
// between onboarding and the dashboard and for which profiles discovery
// surfaces may show. Pure and nil-safe: a nil or partial profile is simply
// incomplete, never an error. Completion is always recomputed from the current
// row, never stored.
func IsProfileCompleted(p *Profile) bool {
	if p == nil {
		return false
	}
	if p.AvatarURL == nil || *p.AvatarURL == "" {
		return false
	}
	if p.DisplayName() == "" {
		return false
	}
	if p.Bio == nil || strings.TrimSpace(*p.Bio) == "" {
		return false
	}
	if p.Prefecture == nil || strings.TrimSpace(*p.Prefecture) == "" {
		return false
	}
	for _, exercise := range p.Exercises {
		if strings.TrimSpace(exercise) != "" {
			return true
		}
	}
	return false
}

// SeedProfile is the reduced view of the caller's own profile used as matching
// criteria by the recommendation queries. Fetched once by the caller and passed
// in; never re-fetched internally.
type SeedProfile struct {
	ID         string   `json:"id"`
	Prefecture string   `json:"prefecture"`
	HomeGym    string   `json:"home_gym"`
	Exercises  []string `json:"exercises"`
}

// SeedFromProfile flattens a profile into matching criteria, trimming the
// scalar fields and dropping blank exercise tags.
func SeedFromProfile(p *Profile) SeedProfile {
	seed := SeedProfile{}
	if p == nil {
		return seed
	}
	seed.ID = p.ID
	if p.Prefecture != nil {
		seed.Prefecture = strings.TrimSpace(*p.Prefecture)
	}
	if p.HomeGym != nil {
		seed.HomeGym = strings.TrimSpace(*p.HomeGym)
	}
	for _, exercise := range p.Exercises {
		if strings.TrimSpace(exercise) != "" {
			seed.Exercises = append(seed.Exercises, exercise)
		}
	}
	return seed
}
