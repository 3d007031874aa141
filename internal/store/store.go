/*
Package store implements the credential store: persistence and lookup of user
accounts backed by PostgreSQL.

Uniqueness of username, email, and linked Google subject is enforced by the
database's unique indexes. The sentinel errors exported here let callers tell
which constraint a write violated, so the HTTP layer can produce a precise
conflict message. Any uniqueness pre-check a handler performs is a fast path
for user experience only; the index violation surfaced by Create or
UpdateUsername is the authoritative conflict signal.
*/
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/user"
)

var (
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when a write violates username uniqueness.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrEmailTaken is returned when a write violates email uniqueness.
	ErrEmailTaken = errors.New("email already taken")

	// ErrSubjectTaken is returned when a write violates Google subject uniqueness.
	ErrSubjectTaken = errors.New("google account already linked")
)

// UserStore provides operations on the users table.
type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByOAuthSubject(ctx context.Context, subject string) (*user.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error)
	UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*user.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	List(ctx context.Context) ([]user.User, error)
}
