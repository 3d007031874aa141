/*
Package req provides helper functions for HTTP request parsing and data binding.

It encapsulates the logic for parsing JSON request bodies and validating the bound
structs, and integrates error handling to ensure data format correctness before
business logic runs.
*/
package req

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/errs"
)

// validate is the shared validator instance used for struct tag validation.
// A single instance caches struct metadata across requests.
var validate = validator.New(validator.WithRequiredStructEnabled())

// BindJSON attempts to bind the JSON data from the HTTP request body to the destination struct dst.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}

// BindAndValidate binds the JSON request body to dst and then runs go-playground
// validator against its struct tags. Required-field failures map to a message that
// names the field; all other tag failures map to a generic invalid-parameters error.
func BindAndValidate(r *http.Request, dst any) *errs.CustomError {
	if customErr := BindJSON(r, dst); customErr != nil {
		return customErr
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			fe := fieldErrors[0]
			if fe.Tag() == "required" {
				return errs.NewError(errs.ErrMissingRequiredField, strings.ToLower(fe.Field()))
			}
		}
		return errs.NewError(errs.ErrInvalidParams)
	}

	return nil
}
