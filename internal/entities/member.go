package entities

import "time"

// Membership roles.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// TeamMember joins a user to a team with a role.
type TeamMember struct {
	ID       string
	TeamID   string
	UserID   string
	Role     string
	JoinedAt time.Time

	// User carries the joined user row when the member list is hydrated.
	User *User
}

// Stats aggregates entity counts across the store.
type Stats struct {
	Users       int64 `json:"users"`
	Teams       int64 `json:"teams"`
	Memberships int64 `json:"memberships"`
}
