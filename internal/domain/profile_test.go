package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// completeProfile returns a profile passing every onboarding requirement.
func completeProfile() *Profile {
	return &Profile{
		ID:         "p1",
		Nickname:   strPtr("taro"),
		Bio:        strPtr("bench press enjoyer"),
		AvatarURL:  strPtr("https://cdn.example.com/a.png"),
		Prefecture: strPtr("東京都"),
		Exercises:  []string{"bench_press"},
	}
}

func TestIsProfileCompleted_NilProfile(t *testing.T) {
	require.False(t, IsProfileCompleted(nil))
}

func TestIsProfileCompleted_Complete(t *testing.T) {
	require.True(t, IsProfileCompleted(completeProfile()))
}

func TestIsProfileCompleted_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"missing avatar", func(p *Profile) { p.AvatarURL = nil }},
		{"empty avatar", func(p *Profile) { p.AvatarURL = strPtr("") }},
		{"missing name", func(p *Profile) { p.Nickname = nil; p.Username = nil }},
		{"blank name", func(p *Profile) { p.Nickname = strPtr("  "); p.Username = nil }},
		{"missing bio", func(p *Profile) { p.Bio = nil }},
		{"whitespace bio", func(p *Profile) { p.Bio = strPtr("   ") }},
		{"missing prefecture", func(p *Profile) { p.Prefecture = nil }},
		{"whitespace prefecture", func(p *Profile) { p.Prefecture = strPtr(" ") }},
		{"no exercises", func(p *Profile) { p.Exercises = nil }},
		{"empty exercises", func(p *Profile) { p.Exercises = []string{} }},
		{"blank exercise entries", func(p *Profile) { p.Exercises = []string{"", "  "} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := completeProfile()
			tt.mutate(p)
			require.False(t, IsProfileCompleted(p))
		})
	}
}

func TestIsProfileCompleted_UsernameFallback(t *testing.T) {
	p := completeProfile()
	p.Nickname = strPtr("  ")
	p.Username = strPtr("taro123")
	require.True(t, IsProfileCompleted(p))
}

func TestIsProfileCompleted_OneBlankOneRealExercise(t *testing.T) {
	p := completeProfile()
	p.Exercises = []string{"", "squat"}
	require.True(t, IsProfileCompleted(p))
}

// The check is a pure function of the row: calling it repeatedly on the same
// input yields the same answer and mutates nothing.
func TestIsProfileCompleted_Pure(t *testing.T) {
	p := completeProfile()
	first := IsProfileCompleted(p)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, IsProfileCompleted(p))
	}
	require.Equal(t, []string{"bench_press"}, p.Exercises)
}

func TestDisplayName(t *testing.T) {
	p := &Profile{Nickname: strPtr(" taro "), Username: strPtr("fallback")}
	require.Equal(t, "taro", p.DisplayName())

	p.Nickname = strPtr("   ")
	require.Equal(t, "fallback", p.DisplayName())

	p.Username = nil
	require.Equal(t, "", p.DisplayName())

	var nilProfile *Profile
	require.Equal(t, "", nilProfile.DisplayName())
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	birth := time.Date(2000, 8, 29, 0, 0, 0, 0, time.UTC)
	p := &Profile{BirthDate: &birth}
	require.Equal(t, 26, p.Age(now))

	birth = time.Date(2000, 8, 30, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 25, p.Age(now))

	require.Equal(t, 0, (&Profile{}).Age(now))
}

func TestSeedFromProfile(t *testing.T) {
	p := completeProfile()
	p.HomeGym = strPtr(" gold gym shibuya ")
	p.Exercises = []string{"", "squat", "  ", "deadlift"}

	seed := SeedFromProfile(p)
	require.Equal(t, "p1", seed.ID)
	require.Equal(t, "東京都", seed.Prefecture)
	require.Equal(t, "gold gym shibuya", seed.HomeGym)
	require.Equal(t, []string{"squat", "deadlift"}, seed.Exercises)

	require.Equal(t, SeedProfile{}, SeedFromProfile(nil))
}
