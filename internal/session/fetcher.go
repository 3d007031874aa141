package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/user"
)

// HTTPProfileFetcher hydrates the session profile from the auth server's
// profile endpoint.
type HTTPProfileFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProfileFetcher creates a fetcher against the given server base URL
// (e.g. "http://localhost:8080").
func NewHTTPProfileFetcher(baseURL string) *HTTPProfileFetcher {
	return &HTTPProfileFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// profileEnvelope mirrors the server's standard JSON response wrapper.
type profileEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		User *user.PublicUser `json:"user"`
	} `json:"data"`
}

// FetchProfile calls GET /api/auth/profile with the token as a Bearer header
// and returns the authoritative user record. Any non-200 response is an error,
// which the session machine treats as an invalid token.
func (f *HTTPProfileFetcher) FetchProfile(ctx context.Context, token string) (*user.PublicUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/api/auth/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("create profile request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile endpoint returned status %d", resp.StatusCode)
	}

	var envelope profileEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}

	if envelope.Data.User == nil {
		return nil, fmt.Errorf("profile response missing user")
	}

	return envelope.Data.User, nil
}
