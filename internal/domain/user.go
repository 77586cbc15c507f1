package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the fixed set of user roles.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// User represents an application user account.
// PasswordHash is owned by the auth collaborator; the core only stores it.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// PublicUser is the projection exposed to enrollment listings.
// It deliberately excludes credential material, role and the active flag.
type PublicUser struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Username  string
}

// UserUpdateParams holds the partial-update fields for a user.
// nil means "leave unchanged".
type UserUpdateParams struct {
	FirstName    *string
	LastName     *string
	Username     *string
	PasswordHash *string
	Role         *Role
	IsActive     *bool
}
