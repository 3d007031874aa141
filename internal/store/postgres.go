package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/db"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/user"
)

// PostgresStore implements UserStore using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a UserStore backed by the given connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const userColumns = `id, username, email, password_hash, oauth_subject, role, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.OAuthSubject, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning user row: %w", err)
	}
	return &u, nil
}

// translateUnique maps a unique index violation onto the matching sentinel
// error by constraint name. Non-unique errors pass through wrapped.
func translateUnique(err error, verb string) error {
	if !db.IsUniqueViolation(err) {
		return fmt.Errorf("%s user: %w", verb, err)
	}

	switch name := db.UniqueConstraintName(err); {
	case strings.Contains(name, "username"):
		return ErrUsernameTaken
	case strings.Contains(name, "email"):
		return ErrEmailTaken
	case strings.Contains(name, "oauth_subject"):
		return ErrSubjectTaken
	default:
		return fmt.Errorf("%s user: %w", verb, err)
	}
}

// Create inserts a new user record and fills in the generated ID and timestamps.
func (s *PostgresStore) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, oauth_subject, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := s.pool.QueryRow(ctx, query,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.OAuthSubject,
		u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return translateUnique(err, "inserting")
	}

	return nil
}

// FindByID retrieves a single user by its UUID.
func (s *PostgresStore) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(s.pool.QueryRow(ctx, query, id))
}

// FindByUsername retrieves a single user by exact username.
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(s.pool.QueryRow(ctx, query, username))
}

// FindByOAuthSubject retrieves the user linked to the given Google subject.
func (s *PostgresStore) FindByOAuthSubject(ctx context.Context, subject string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE oauth_subject = $1`
	return scanUser(s.pool.QueryRow(ctx, query, subject))
}

// FindByUsernameOrEmail retrieves the first user matching either the username
// or the email. Used as the registration pre-check so the handler can report
// which field conflicts before doing any hashing work.
func (s *PostgresStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $2 LIMIT 1`
	return scanUser(s.pool.QueryRow(ctx, query, username, email))
}

// UpdateUsername changes the account's username and returns the updated record.
func (s *PostgresStore) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*user.User, error) {
	query := `
		UPDATE users
		SET username = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	u, err := scanUser(s.pool.QueryRow(ctx, query, id, username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, translateUnique(err, "updating")
	}
	return u, nil
}

// UpdatePassword replaces the account's password hash.
func (s *PostgresStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1`

	result, err := s.pool.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// List retrieves all users ordered by creation time.
func (s *PostgresStore) List(ctx context.Context) ([]user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Username, &u.Email, &u.PasswordHash,
			&u.OAuthSubject, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	if users == nil {
		users = []user.User{}
	}

	return users, nil
}
