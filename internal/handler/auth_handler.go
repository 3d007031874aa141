/*
Package handler provides HTTP handler functions for user authentication and account management.
*/
package handler

import (
	"errors"
	"net/http"
	"regexp"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/user"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/auth/jwt"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/errs"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/logx"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/req"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/resp"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/store"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_]{4,20}$`)
)

// validPassword checks the password length bounds in runes.
func validPassword(password string) bool {
	n := utf8.RuneCountInString(password)
	return n >= 6 && n <= 50
}

// issueSessionToken mints the 1-hour session token for the given account.
func issueSessionToken(u *user.User, secret string) (string, error) {
	payload := &jwt.Payload{
		ID:   u.ID.String(),
		Role: string(u.Role),
	}
	return jwt.GenerateToken(payload, secret, jwt.SessionExpiration)
}

type RegisterInput struct {
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	OAuthSubject string `json:"oauthSubject"`
}

// HandleRegister processes the request to create a new user account. It covers
// both the plain username/password sign-up and the Google registration
// completion step, which attaches the oauthSubject carried through the
// redirect so the account becomes usable via either path.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if payload := jwt.GetPayloadFromContext(r); payload != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input RegisterInput
		if customErr := req.BindAndValidate(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !usernameRegex.MatchString(input.Username) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUsername))
			return
		}

		// An account needs at least one way to sign in.
		if input.Password == "" && input.OAuthSubject == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrNoCredential))
			return
		}

		if input.Password != "" && !validPassword(input.Password) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		role := user.RoleReader
		if input.Role != "" {
			role = user.Role(input.Role)
			if !user.ValidRole(role) {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidRole))
				return
			}
		}

		// Fast-path conflict check before the bcrypt work. The unique indexes
		// enforced on insert remain the authoritative signal; a concurrent
		// registration slipping past this check is caught below.
		if existing, err := deps.Users.FindByUsernameOrEmail(r.Context(), input.Username, input.Email); err == nil {
			if existing.Username == input.Username {
				resp.RespondError(w, r, errs.NewError(errs.ErrUsernameTaken))
			} else {
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailTaken))
			}
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			logx.Error(err, "register: uniqueness pre-check failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		newUser := &user.User{
			Username: input.Username,
			Email:    &input.Email,
			Role:     role,
		}

		if input.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), deps.Config.BcryptCost)
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
			hash := string(hashed)
			newUser.PasswordHash = &hash
		}

		if input.OAuthSubject != "" {
			subject := input.OAuthSubject
			newUser.OAuthSubject = &subject
		}

		if err := deps.Users.Create(r.Context(), newUser); err != nil {
			switch {
			case errors.Is(err, store.ErrUsernameTaken):
				logx.Warn("registration conflict: username already exists", "username", input.Username)
				resp.RespondError(w, r, errs.NewError(errs.ErrUsernameTaken))
			case errors.Is(err, store.ErrEmailTaken):
				logx.Warn("registration conflict: email already exists", "username", input.Username)
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailTaken))
			case errors.Is(err, store.ErrSubjectTaken):
				logx.Warn("registration conflict: google account already linked", "username", input.Username)
				resp.RespondError(w, r, errs.NewError(errs.ErrGoogleAccountLinked))
			default:
				logx.Error(err, "failed to create user in database")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			}
			return
		}

		tokenString, err := issueSessionToken(newUser, deps.Config.JWTSecret)
		if err != nil {
			logx.Error(err, "failed to generate token after registration")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondCreated(w, r, map[string]any{
			"token": tokenString,
			"user":  newUser.Public(),
		})
	}
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies user credentials and issues a session token. The failure
// message never reveals whether the username exists, except for accounts that
// can only sign in through Google, which get pointed at the Google login.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := jwt.GetPayloadFromContext(r); identity != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input LoginInput
		if customErr := req.BindAndValidate(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		dbUser, err := deps.Users.FindByUsername(r.Context(), input.Username)
		if err != nil {
			logx.Warn("login: user fetch failed", "username", input.Username, "error", err)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if !dbUser.HasPassword() {
			logx.Warn("login: password attempt on google-only account", "username", input.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrPasswordLoginUnavailable))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(*dbUser.PasswordHash), []byte(input.Password)); err != nil {
			logx.Warn("login: password mismatch", "username", input.Username)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		token, err := issueSessionToken(dbUser, deps.Config.JWTSecret)
		if err != nil {
			logx.Error(err, "login: jwt generation failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token": token,
			"user":  dbUser.Public(),
		})
	}
}
