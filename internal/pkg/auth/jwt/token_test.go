package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken_RoundTrip(t *testing.T) {
	payload := &Payload{
		ID:   "b7a34a66-5de0-4eb9-a1b2-3c4d5e6f7a8b",
		Role: "Publisher",
	}

	tokenString, err := GenerateToken(payload, testSecret, SessionExpiration)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsed, err := ParseToken(tokenString, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "b7a34a66-5de0-4eb9-a1b2-3c4d5e6f7a8b", parsed.ID)
	assert.Equal(t, "Publisher", parsed.Role)
	assert.Equal(t, TokenIssuer, parsed.Issuer)
}

func TestGenerateAndParseToken_AllRoles(t *testing.T) {
	for _, role := range []string{"Reader", "Publisher", "Admin"} {
		payload := &Payload{ID: "some-id", Role: role}

		tokenString, err := GenerateToken(payload, testSecret, SessionExpiration)
		require.NoError(t, err)

		parsed, err := ParseToken(tokenString, testSecret)
		require.NoError(t, err)
		assert.Equal(t, role, parsed.Role)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateToken(&Payload{ID: "id", Role: "Reader"}, testSecret, SessionExpiration)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, "another-secret")
	assert.Error(t, err)
}

func TestParseToken_Tampered(t *testing.T) {
	tokenString, err := GenerateToken(&Payload{ID: "id", Role: "Reader"}, testSecret, SessionExpiration)
	require.NoError(t, err)

	tampered := tokenString[:len(tokenString)-3] + "xyz"

	_, err = ParseToken(tampered, testSecret)
	assert.Error(t, err)
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := ParseToken("not-a-jwt-at-all", testSecret)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	tokenString, err := GenerateToken(&Payload{ID: "id", Role: "Reader"}, testSecret, -1*time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestParseToken_WithinLifetime(t *testing.T) {
	tokenString, err := GenerateToken(&Payload{ID: "id", Role: "Reader"}, testSecret, 2*time.Second)
	require.NoError(t, err)

	parsed, err := ParseToken(tokenString, testSecret)
	require.NoError(t, err)
	assert.WithinDuration(t,
		time.Now().Add(2*time.Second),
		time.Unix(parsed.ExpiresAt, 0),
		2*time.Second,
	)
}
