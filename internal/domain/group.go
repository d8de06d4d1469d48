package domain

import "time"

// GroupCategoryOfficial marks groups run by the service itself. One exists
// nationwide plus at most one per prefecture (enforced by a partial unique
// index, not by application code).
const GroupCategoryOfficial = "official"

// Group is a named community, optionally scoped to a prefecture. A nil
// prefecture means nationwide.
type Group struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Prefecture *string   `json:"prefecture" db:"prefecture"`
	IsPrivate  bool      `json:"is_private" db:"is_private"`
	Category   string    `json:"category" db:"category"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

func (g *Group) IsNationwide() bool {
	return g != nil && g.Prefecture == nil
}
