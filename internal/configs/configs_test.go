package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "ALLOWED_ORIGINS", "JWT_SECRET", "BCRYPT_COST",
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_REDIRECT_URL",
		"FRONTEND_URL", "DATABASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_DevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "http://localhost:8080/api/auth/google/callback", cfg.GoogleRedirectURL)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoadConfig_ProductionRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadConfig_ProductionComplete(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("DATABASE_URL", "postgres://app:pw@db:5432/app")
	t.Setenv("FRONTEND_URL", "https://app.example.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod-secret", cfg.JWTSecret)
	assert.Equal(t, "https://app.example.com", cfg.FrontendURL, "trailing slash is trimmed")
}

func TestLoadConfig_PortValidation(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "not-a-number")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("PORT", "80")
	_, err = LoadConfig()
	require.Error(t, err, "privileged ports are rejected")
}

func TestLoadConfig_BcryptCostBounds(t *testing.T) {
	clearEnv(t)

	t.Setenv("BCRYPT_COST", "99")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("BCRYPT_COST", "10")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadConfig_AllowedOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}
