package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubProvider spins up a stub identity provider implementing the token and
// userinfo endpoints and returns a Provider pointed at it.
func newStubProvider(t *testing.T, userInfoStatus int, userInfo any) *Provider {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "stub-access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stub-access-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userInfoStatus)
		json.NewEncoder(w).Encode(userInfo)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewProvider("client-id", "client-secret", "http://localhost/callback",
		WithEndpoints(srv.URL+"/token", srv.URL+"/auth", srv.URL+"/userinfo"))
}

func TestAuthCodeURL_CarriesState(t *testing.T) {
	p := NewProvider("client-id", "client-secret", "http://localhost/callback")

	u := p.AuthCodeURL("some-state")
	assert.Contains(t, u, "state=some-state")
	assert.Contains(t, u, "client_id=client-id")
	assert.True(t, strings.Contains(u, "scope="), "consent URL should request scopes")
}

func TestExchange_ReturnsClaims(t *testing.T) {
	p := newStubProvider(t, http.StatusOK, map[string]string{
		"id":    "google-subject-123",
		"name":  "Muskan Aryal",
		"email": "muskan@example.com",
	})

	claims, err := p.Exchange(context.Background(), "auth-code")
	require.NoError(t, err)

	assert.Equal(t, "google-subject-123", claims.Subject)
	assert.Equal(t, "Muskan Aryal", claims.Name)
	assert.Equal(t, "muskan@example.com", claims.Email)
}

func TestExchange_MissingSubjectFails(t *testing.T) {
	p := newStubProvider(t, http.StatusOK, map[string]string{
		"name": "No Subject",
	})

	_, err := p.Exchange(context.Background(), "auth-code")
	assert.Error(t, err)
}

func TestExchange_UserInfoFailure(t *testing.T) {
	p := newStubProvider(t, http.StatusInternalServerError, map[string]string{})

	_, err := p.Exchange(context.Background(), "auth-code")
	assert.Error(t, err)
}

func TestExchange_ProviderUnreachable(t *testing.T) {
	p := NewProvider("client-id", "client-secret", "http://localhost/callback",
		WithEndpoints("http://127.0.0.1:1/token", "http://127.0.0.1:1/auth", "http://127.0.0.1:1/userinfo"))

	_, err := p.Exchange(context.Background(), "auth-code")
	assert.Error(t, err)
}
