package domain

import "time"

// Recruitment statuses.
const (
	RecruitmentStatusOpen   = "open"
	RecruitmentStatusClosed = "closed"
)

// Recruitment is a workout-partner request posted by a profile.
type Recruitment struct {
	ID             string    `json:"id" db:"id"`
	ProfileID      string    `json:"profile_id" db:"profile_id"`
	Title          string    `json:"title" db:"title"`
	Description    string    `json:"description" db:"description"`
	TargetBodyPart string    `json:"target_body_part" db:"target_body_part"`
	ScheduledAt    time.Time `json:"scheduled_at" db:"scheduled_at"`
	Location       string    `json:"location" db:"location"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

func (r *Recruitment) IsOpen() bool {
	return r != nil && r.Status == RecruitmentStatusOpen
}

func (r *Recruitment) IsOwnedBy(profileID string) bool {
	return r != nil && r.ProfileID == profileID
}
