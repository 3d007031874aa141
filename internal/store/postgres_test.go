package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		ConstraintName: constraint,
	})
}

func TestTranslateUnique_MapsConstraintToSentinel(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"username index", "users_username_key", ErrUsernameTaken},
		{"email index", "users_email_key", ErrEmailTaken},
		{"oauth subject index", "users_oauth_subject_key", ErrSubjectTaken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := translateUnique(uniqueViolation(tc.constraint), "inserting")
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestTranslateUnique_UnknownConstraintWrapped(t *testing.T) {
	got := translateUnique(uniqueViolation("users_mystery_key"), "inserting")

	assert.NotErrorIs(t, got, ErrUsernameTaken)
	assert.NotErrorIs(t, got, ErrEmailTaken)
	assert.NotErrorIs(t, got, ErrSubjectTaken)

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, got, &pgErr, "original driver error stays in the chain")
}

func TestTranslateUnique_NonUniqueErrorWrapped(t *testing.T) {
	cause := errors.New("connection reset")
	got := translateUnique(cause, "updating")

	assert.ErrorIs(t, got, cause)
	assert.Contains(t, got.Error(), "updating user")
}
