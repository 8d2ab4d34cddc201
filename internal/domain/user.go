package domain

import "time"

// Role is the coarse access level attached to a user account.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User is the domain model for accounts that can own tickets.
// PasswordHash and Roles are internal; they never leave the service
// unprojected.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Roles        Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
