package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "")
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, "door-compliance", cfg.Issuer)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_ZeroExpirationRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "0")

	_, err := NewJWTConfig()
	assert.Error(t, err)
}

func TestNewJWTConfig_CustomIssuer(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "field-survey")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "field-survey", cfg.Issuer)
	assert.Equal(t, 2, cfg.ExpirationHours)
}
