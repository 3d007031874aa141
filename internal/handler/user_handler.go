package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/app/user"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/auth/jwt"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/errs"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/logx"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/req"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/resp"
	"github.com/aryalmuskan17/GuffSuffFYP/internal/store"
)

// requireIdentity resolves the request's identity to a user ID, writing a 401
// when the request is anonymous. The soft identity middleware never rejects on
// its own, so every handler needing a signed-in user goes through this.
func requireIdentity(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	identity := jwt.GetPayloadFromContext(r)
	if identity == nil {
		resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
		return uuid.Nil, false
	}

	id, err := uuid.Parse(identity.ID)
	if err != nil {
		resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
		return uuid.Nil, false
	}

	return id, true
}

// HandleGetProfile retrieves the current authenticated user's account record.
// The token alone is never trusted as the profile: the authoritative record is
// re-read from the store on every call.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		dbUser, err := deps.Users.FindByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				logx.Warn("get_profile: account gone for valid token", "user_id", userID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			logx.Error(err, "get_profile: user fetch failed", "user_id", userID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": dbUser.Public(),
		})
	}
}

type ChangeUsernameInput struct {
	Username string `json:"username" validate:"required"`
}

// HandleChangeUsername renames the authenticated account.
func HandleChangeUsername(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var input ChangeUsernameInput
		if customErr := req.BindAndValidate(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !usernameRegex.MatchString(input.Username) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUsername))
			return
		}

		updated, err := deps.Users.UpdateUsername(r.Context(), userID, input.Username)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUsernameTaken):
				resp.RespondError(w, r, errs.NewError(errs.ErrUsernameTaken))
			case errors.Is(err, store.ErrNotFound):
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			default:
				logx.Error(err, "change_username: update failed", "user_id", userID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			}
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": updated.Public(),
		})
	}
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// HandleChangePassword sets a new password for the authenticated account.
// For accounts that already have a password the current one must be supplied
// and verified. A Google-only account may set its first password here, which
// links the password path to the existing account.
func HandleChangePassword(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		var input ChangePasswordInput
		if customErr := req.BindAndValidate(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if !validPassword(input.NewPassword) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidPassword))
			return
		}

		dbUser, err := deps.Users.FindByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			logx.Error(err, "change_password: user fetch failed", "user_id", userID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if dbUser.HasPassword() {
			if err := bcrypt.CompareHashAndPassword([]byte(*dbUser.PasswordHash), []byte(input.CurrentPassword)); err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrOldPasswordInvalid))
				return
			}
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), deps.Config.BcryptCost)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		if err := deps.Users.UpdatePassword(r.Context(), userID, string(hashed)); err != nil {
			logx.Error(err, "change_password: update failed", "user_id", userID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		newToken, err := issueSessionToken(dbUser, deps.Config.JWTSecret)
		if err != nil {
			logx.Error(err, "change_password: token generation failed", "user_id", userID)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"message": "Password updated successfully.",
			"token":   newToken,
		})
	}
}

// HandleListUsers returns every account's public projection. The route sits
// behind the Admin role guard, but since that guard waves anonymous requests
// through, the handler additionally requires an Admin identity itself.
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil || identity.Role != string(user.RoleAdmin) {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		users, err := deps.Users.List(r.Context())
		if err != nil {
			logx.Error(err, "list_users: query failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		projections := make([]user.PublicUser, 0, len(users))
		for i := range users {
			projections = append(projections, users[i].Public())
		}

		resp.RespondSuccess(w, r, map[string]any{
			"users": projections,
		})
	}
}
