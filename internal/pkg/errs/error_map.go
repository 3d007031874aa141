/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrMissingRequiredField: {Code: ErrMissingRequiredField, Message: "%s is required.", Status: http.StatusBadRequest},

	// 2xxx: Account and Credential Errors
	ErrInvalidUsername: {Code: ErrInvalidUsername, Message: "Invalid username.", Status: http.StatusBadRequest},
	ErrInvalidPassword: {Code: ErrInvalidPassword, Message: "Invalid password.", Status: http.StatusBadRequest},
	ErrInvalidRole:     {Code: ErrInvalidRole, Message: "Invalid role.", Status: http.StatusBadRequest},
	ErrNoCredential:    {Code: ErrNoCredential, Message: "A password or a linked Google account is required.", Status: http.StatusBadRequest},

	ErrUsernameTaken:       {Code: ErrUsernameTaken, Message: "Username already exists. Please choose a different one.", Status: http.StatusConflict},
	ErrEmailTaken:          {Code: ErrEmailTaken, Message: "Email already exists. Please use the login page to sign in.", Status: http.StatusConflict},
	ErrGoogleAccountLinked: {Code: ErrGoogleAccountLinked, Message: "This Google account is already linked to another user.", Status: http.StatusConflict},

	// 3xxx: Session and Authorization Errors
	ErrInvalidCredentials:       {Code: ErrInvalidCredentials, Message: "Invalid credentials", Status: http.StatusUnauthorized},
	ErrPasswordLoginUnavailable: {Code: ErrPasswordLoginUnavailable, Message: "This account uses Google sign-in. Please use the Google login instead.", Status: http.StatusUnauthorized},
	ErrOldPasswordInvalid:       {Code: ErrOldPasswordInvalid, Message: "Current password is incorrect.", Status: http.StatusBadRequest},
	ErrAlreadyLoggedIn:          {Code: ErrAlreadyLoggedIn, Message: "You are already signed in.", Status: http.StatusBadRequest},

	ErrUnauthorized: {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrForbidden:    {Code: ErrForbidden, Message: "Forbidden", Status: http.StatusForbidden},
	ErrUserNotFound: {Code: ErrUserNotFound, Message: "Account not found.", Status: http.StatusNotFound},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
