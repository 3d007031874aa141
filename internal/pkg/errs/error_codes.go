/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrMissingRequiredField indicates that a required request field was absent or empty.
	ErrMissingRequiredField = 1005
)

// 2xxx: Account and Credential Errors
const (
	// ErrInvalidUsername indicates that the supplied username failed format validation.
	ErrInvalidUsername = 2001

	// ErrInvalidPassword indicates that the supplied password failed length validation.
	ErrInvalidPassword = 2002

	// ErrInvalidRole indicates that the supplied role is not one of Reader, Publisher, or Admin.
	ErrInvalidRole = 2003

	// ErrNoCredential indicates an attempt to create an account with neither
	// a password nor a linked Google identity.
	ErrNoCredential = 2004

	// ErrUsernameTaken indicates that the requested username is already in use.
	ErrUsernameTaken = 2101

	// ErrEmailTaken indicates that the requested email address is already in use.
	ErrEmailTaken = 2102

	// ErrGoogleAccountLinked indicates that the Google identity is already linked to another account.
	ErrGoogleAccountLinked = 2103
)

// 3xxx: Session and Authorization Errors
const (
	// ErrInvalidCredentials indicates a failed login. The message never reveals
	// whether the username exists or the password was wrong.
	ErrInvalidCredentials = 3001

	// ErrPasswordLoginUnavailable indicates a password login attempt against an
	// account that only has a linked Google identity.
	ErrPasswordLoginUnavailable = 3002

	// ErrOldPasswordInvalid indicates the current password supplied for a password change was wrong.
	ErrOldPasswordInvalid = 3003

	// ErrAlreadyLoggedIn indicates that an authenticated client called an endpoint reserved for anonymous users.
	ErrAlreadyLoggedIn = 3004

	// ErrUnauthorized indicates that the request requires a valid session token.
	ErrUnauthorized = 3101

	// ErrForbidden indicates that the authenticated role is not allowed to perform the operation.
	ErrForbidden = 3102

	// ErrUserNotFound indicates that the account referenced by a valid token no longer exists.
	ErrUserNotFound = 3103
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
