/*
Package session implements the client-side session state machine.

A Session owns the durable token and the in-memory user profile, and is the
single source of truth for whether protected views may render. The state
machine has three states:

	StateLoggedOut      no token
	StateProfileLoading token present, profile fetch in flight
	StateProfileLoaded  token present and profile hydrated

Authentication status is a function of token presence only, not of the profile:
a session can be authenticated while the profile is still loading. Collapsing
that distinction to a boolean makes protected views flash a login redirect on
every fresh page load, so Gate exposes the full three-way verdict.

Because the OAuth flow spans multiple page loads, a Session holds no in-memory
continuation: every load reconstructs state from durable storage (Restore) and
from the current URL (ConsumeRedirectToken).
*/
package session

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/user"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/logx"
)

// State is the session machine's current position.
type State int

const (
	// StateLoggedOut means no token is held; protected views must redirect.
	StateLoggedOut State = iota

	// StateProfileLoading means a token is held but the profile has not been
	// hydrated yet; protected views should show a loading indicator.
	StateProfileLoading

	// StateProfileLoaded means the token and hydrated profile are both held.
	StateProfileLoaded
)

// Verdict is the three-way decision for a protected view.
type Verdict int

const (
	// GateRedirect sends the visitor to the login entry point.
	GateRedirect Verdict = iota

	// GateLoading renders a loading indicator while the profile hydrates.
	GateLoading

	// GateAllow renders the protected content.
	GateAllow
)

// ErrNoToken is returned by Restore when durable storage holds no token.
var ErrNoToken = errors.New("no stored token")

// TokenStore persists the session token across process restarts and page loads.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// ProfileFetcher retrieves the authoritative user record for a token.
// An invalid or expired token must yield an error, not an empty user.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, token string) (*user.PublicUser, error)
}

// Session is the client session state machine. All methods are safe for
// concurrent use.
type Session struct {
	mu      sync.Mutex
	tokens  TokenStore
	fetcher ProfileFetcher

	state State
	token string
	user  *user.PublicUser
}

// New creates a Session in the logged-out state.
func New(tokens TokenStore, fetcher ProfileFetcher) *Session {
	return &Session{
		tokens:  tokens,
		fetcher: fetcher,
		state:   StateLoggedOut,
	}
}

// Login accepts a freshly issued token: it persists the token, enters the
// loading state, and hydrates the profile. On hydration failure (expired or
// tampered token, or the account is gone) the token is cleared again and the
// session returns to logged-out rather than sticking in loading.
func (s *Session) Login(ctx context.Context, token string) error {
	s.mu.Lock()
	if err := s.tokens.Save(token); err != nil {
		s.mu.Unlock()
		return err
	}
	s.token = token
	s.user = nil
	s.state = StateProfileLoading
	s.mu.Unlock()

	return s.hydrate(ctx, token)
}

// LoginAsync runs Login on its own goroutine and reports the outcome on the
// returned channel. Callers that only watch State may ignore the channel.
func (s *Session) LoginAsync(ctx context.Context, token string) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Login(ctx, token)
	}()
	return done
}

// Restore reconstructs the session from durable storage, as happens on every
// fresh page load. It returns ErrNoToken when storage is empty, leaving the
// session logged out.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoToken
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.state = StateProfileLoading
	s.mu.Unlock()

	return s.hydrate(ctx, token)
}

// hydrate fetches the profile for token and settles the machine in either
// loaded or logged-out. A stale result (the session changed while the fetch
// was in flight) is discarded.
func (s *Session) hydrate(ctx context.Context, token string) error {
	profile, err := s.fetcher.FetchProfile(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != token {
		// Logout or a newer login happened mid-fetch.
		return nil
	}

	if err != nil {
		logx.Warn("session: profile hydration failed, clearing token", "error", err)
		if clearErr := s.tokens.Clear(); clearErr != nil {
			logx.Error(clearErr, "session: failed to clear stored token")
		}
		s.token = ""
		s.user = nil
		s.state = StateLoggedOut
		return err
	}

	s.user = profile
	s.state = StateProfileLoaded
	return nil
}

// Logout clears the durable token and the in-memory profile synchronously.
// Tokens are stateless, so no server call is involved; the token simply ages
// out on the server side.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		logx.Error(err, "session: failed to clear stored token on logout")
	}
	s.token = ""
	s.user = nil
	s.state = StateLoggedOut
}

// IsAuthenticated reports token presence. It deliberately ignores whether the
// profile has loaded; see the package comment.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// State returns the machine's current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CurrentUser returns the hydrated profile, or nil outside StateProfileLoaded.
func (s *Session) CurrentUser() *user.PublicUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Gate returns the three-way verdict a protected view must follow.
func (s *Session) Gate() Verdict {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateProfileLoaded:
		return GateAllow
	case StateProfileLoading:
		return GateLoading
	default:
		return GateRedirect
	}
}

// ConsumeRedirectToken extracts the one-time token from an OAuth success URL
// and returns the token together with the URL stripped of it. The token is
// delivered through the URL exactly once and must not stay visible in browser
// history, so callers replace the visible URL with the cleaned one immediately.
func ConsumeRedirectToken(rawURL string) (token string, cleaned string, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}

	query := u.Query()
	token = query.Get("token")
	if token == "" {
		return "", rawURL, nil
	}

	query.Del("token")
	u.RawQuery = query.Encode()
	return token, u.String(), nil
}
