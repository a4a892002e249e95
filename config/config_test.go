package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.AdminTokenTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, "Tech Talks", cfg.Email.FromName)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_TOKEN_TTL", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("EMAIL_SES_REGION", "eu-west-1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.AdminTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.Equal(t, "eu-west-1", cfg.Email.SES.Region)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
