/*
Package user contains core data structures related to user identity.

It defines the persisted representation of an account (the User struct), the closed
set of roles, and the public projection returned to clients, which never exposes the
password hash.
*/
package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level assigned to an account.
type Role string

const (
	// RoleReader is the default role for new accounts.
	RoleReader Role = "Reader"

	// RolePublisher can publish content.
	RolePublisher Role = "Publisher"

	// RoleAdmin can manage other accounts.
	RoleAdmin Role = "Admin"
)

// ValidRole reports whether r is one of the closed set of roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleReader, RolePublisher, RoleAdmin:
		return true
	}
	return false
}

// User represents a persisted account. At least one of PasswordHash or
// OAuthSubject is always set once the record is stored; an account with a
// subject but no hash can only sign in through Google until a password is set.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        *string
	PasswordHash *string
	OAuthSubject *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account supports password login.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// PublicUser is the projection of an account that is safe to return to clients.
type PublicUser struct {
	ID       string  `json:"_id"`
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Role     Role    `json:"role"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
