package req

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aryalmuskan17/GuffSuffFYP/internal/pkg/errs"
)

type bindTarget struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestBindJSON_Success(t *testing.T) {
	var dst bindTarget
	customErr := BindJSON(jsonRequest(`{"username":"muskan"}`), &dst)

	require.Nil(t, customErr)
	assert.Equal(t, "muskan", dst.Username)
}

func TestBindJSON_WrongContentType(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"muskan"}`))
	r.Header.Set("Content-Type", "text/plain")

	var dst bindTarget
	customErr := BindJSON(r, &dst)

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrUnsupportedMediaType, customErr.Code)
}

func TestBindJSON_UnknownField(t *testing.T) {
	var dst bindTarget
	customErr := BindJSON(jsonRequest(`{"username":"muskan","unexpected":true}`), &dst)

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrInvalidJSONFormat, customErr.Code)
}

func TestBindJSON_ExtraContent(t *testing.T) {
	var dst bindTarget
	customErr := BindJSON(jsonRequest(`{"username":"muskan"}{"again":true}`), &dst)

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrExtraContentInBody, customErr.Code)
}

func TestBindAndValidate_MissingRequiredNamesField(t *testing.T) {
	var dst bindTarget
	customErr := BindAndValidate(jsonRequest(`{"email":"m@example.com"}`), &dst)

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrMissingRequiredField, customErr.Code)
	assert.Contains(t, customErr.Message, "username")
}

func TestBindAndValidate_OtherTagFailure(t *testing.T) {
	var dst bindTarget
	customErr := BindAndValidate(jsonRequest(`{"username":"muskan","email":"not-an-email"}`), &dst)

	require.NotNil(t, customErr)
	assert.Equal(t, errs.ErrInvalidParams, customErr.Code)
}

func TestBindAndValidate_Valid(t *testing.T) {
	var dst bindTarget
	customErr := BindAndValidate(jsonRequest(`{"username":"muskan","email":"m@example.com"}`), &dst)

	require.Nil(t, customErr)
}
