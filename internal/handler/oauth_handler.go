package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/auth/google"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/logx"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/randx"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/store"
)

// HandleGoogleStart sends the browser to Google's consent page. A random state
// value is attached to the consent URL as the OAuth protocol requires; the
// callback does not verify it against anything (no CSRF protection on this
// handshake).
func HandleGoogleStart(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := randx.StateNonce()
		if err != nil {
			logx.Error(err, "google_start: failed to generate state nonce")
			state = "state"
		}

		http.Redirect(w, r, deps.Google.AuthCodeURL(state), http.StatusTemporaryRedirect)
	}
}

// HandleGoogleCallback completes the Google sign-in. It exchanges the
// authorization code for profile claims and disambiguates:
//
//   - a known subject gets a session token, delivered once through the
//     redirect URL for the client to consume and strip;
//   - an unknown subject persists nothing and is redirected to the
//     registration form with the claims carried as query parameters.
//
// Provider failures redirect back to the login page instead of surfacing a
// raw error to the browser.
func HandleGoogleCallback(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loginFailureURL := deps.Config.FrontendURL + "/login?error=oauth"

		if errParam := r.URL.Query().Get("error"); errParam != "" {
			logx.Warn("google_callback: provider returned error", "error", errParam)
			http.Redirect(w, r, loginFailureURL, http.StatusTemporaryRedirect)
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			logx.Warn("google_callback: missing code parameter")
			http.Redirect(w, r, loginFailureURL, http.StatusTemporaryRedirect)
			return
		}

		claims, err := deps.Google.Exchange(r.Context(), code)
		if err != nil {
			logx.Error(err, "google_callback: exchange failed")
			http.Redirect(w, r, loginFailureURL, http.StatusTemporaryRedirect)
			return
		}

		dbUser, err := deps.Users.FindByOAuthSubject(r.Context(), claims.Subject)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				logx.Error(err, "google_callback: subject lookup failed")
				http.Redirect(w, r, loginFailureURL, http.StatusTemporaryRedirect)
				return
			}

			// First sign-in with this Google account. No record is created
			// yet; the claims ride along to the registration form instead.
			params := url.Values{}
			params.Set("oauthSubject", claims.Subject)
			params.Set("username", google.CandidateUsername(claims.Name))
			params.Set("email", claims.Email)

			logx.Info("google_callback: new google identity, redirecting to registration",
				"subject", claims.Subject,
			)
			http.Redirect(w, r, deps.Config.FrontendURL+"/register?"+params.Encode(), http.StatusTemporaryRedirect)
			return
		}

		token, err := issueSessionToken(dbUser, deps.Config.JWTSecret)
		if err != nil {
			logx.Error(err, "google_callback: jwt generation failed", "user_id", dbUser.ID)
			http.Redirect(w, r, loginFailureURL, http.StatusTemporaryRedirect)
			return
		}

		params := url.Values{}
		params.Set("token", token)
		http.Redirect(w, r, deps.Config.FrontendURL+"/oauth/success?"+params.Encode(), http.StatusTemporaryRedirect)
	}
}
