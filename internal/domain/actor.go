package domain

// Role authenticated actor role
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Actor the authenticated user performing an operation.
// Resolved from the bearer token before any core operation runs.
type Actor struct {
	ID   string
	Role Role
}

// CanModerate reports whether the actor may edit content regardless of ownership
func (a Actor) CanModerate() bool {
	return a.Role == RoleAdmin || a.Role == RoleModerator
}
