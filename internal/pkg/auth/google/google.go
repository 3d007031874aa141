/*
Package google handles the Google OAuth 2.0 identity exchange.

It wraps the authorization-code flow: building the consent URL, exchanging the
callback code for an access token, and fetching the profile claims (subject,
display name, email) that the rest of the authentication flow consumes. It
never touches the credential store; deciding whether a subject maps to an
existing account happens upstream.
*/
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
)

const (
	// userInfoEndpoint is Google's OpenID userinfo endpoint.
	userInfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

	// exchangeTimeout bounds the full provider round trip (code exchange plus
	// profile fetch). Google does not get to hang a callback request forever.
	exchangeTimeout = 10 * time.Second
)

// Claims are the identity assertions Google makes about the signed-in person.
type Claims struct {
	// Subject is the stable identifier Google assigns to the account.
	Subject string

	// Name is the display name from the Google profile; may be empty.
	Name string

	// Email is the verified email address; may be empty for some accounts.
	Email string
}

// Provider performs the Google OAuth exchange.
type Provider struct {
	config      *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

// Option adjusts a Provider. Used by tests to point the exchange at a stub server.
type Option func(*Provider)

// WithEndpoints overrides the token and userinfo endpoints.
func WithEndpoints(tokenURL, authURL, userInfoURL string) Option {
	return func(p *Provider) {
		p.config.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
		p.userInfoURL = userInfoURL
	}
}

// NewProvider creates a Provider for the given OAuth client credentials.
// redirectURL is the server's own callback endpoint registered with Google.
func NewProvider(clientID, clientSecret, redirectURL string, opts ...Option) *Provider {
	p := &Provider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     oauthgoogle.Endpoint,
			Scopes:       []string{"openid", "profile", "email"},
			RedirectURL:  redirectURL,
		},
		userInfoURL: userInfoEndpoint,
		httpClient:  &http.Client{Timeout: exchangeTimeout},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AuthCodeURL returns the Google consent page URL carrying the given state value.
func (p *Provider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange swaps the authorization code for an access token and fetches the
// profile claims. The whole round trip is bounded by exchangeTimeout.
func (p *Provider) Exchange(ctx context.Context, code string) (*Claims, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google token exchange: %w", err)
	}

	claims, err := p.fetchUserInfo(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("fetch google user info: %w", err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("google user info missing subject id")
	}

	return claims, nil
}

type userInfoResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (p *Provider) fetchUserInfo(ctx context.Context, accessToken string) (*Claims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google user info returned status %d", resp.StatusCode)
	}

	var info userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return &Claims{
		Subject: info.ID,
		Name:    info.Name,
		Email:   info.Email,
	}, nil
}
