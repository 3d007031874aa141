package handler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/user"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/store"
)

// fakeUserStore is an in-memory UserStore enforcing the same uniqueness rules
// as the real Postgres indexes.
type fakeUserStore struct {
	mu    sync.Mutex
	users []*user.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{}
}

func (f *fakeUserStore) Create(_ context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Username == u.Username {
			return store.ErrUsernameTaken
		}
		if existing.Email != nil && u.Email != nil && *existing.Email == *u.Email {
			return store.ErrEmailTaken
		}
		if existing.OAuthSubject != nil && u.OAuthSubject != nil && *existing.OAuthSubject == *u.OAuthSubject {
			return store.ErrSubjectTaken
		}
	}

	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt

	clone := *u
	f.users = append(f.users, &clone)
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByOAuthSubject(_ context.Context, subject string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.OAuthSubject != nil && *u.OAuthSubject == subject {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByUsernameOrEmail(_ context.Context, username, email string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == username || (u.Email != nil && *u.Email == email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) UpdateUsername(_ context.Context, id uuid.UUID, username string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, other := range f.users {
		if other.ID != id && other.Username == username {
			return nil, store.ErrUsernameTaken
		}
	}

	for _, u := range f.users {
		if u.ID == id {
			u.Username = username
			u.UpdatedAt = time.Now()
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ID == id {
			hash := passwordHash
			u.PasswordHash = &hash
			u.UpdatedAt = time.Now()
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}
