package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("ACCESS_TOKEN_TTL", "bogus")
	t.Setenv("STORAGE_DRIVER", "S3")
	t.Setenv("API_KEY_RATE_LIMIT_RPS", "2.5")

	cfg := Load()

	assert.Equal(t, "", cfg.App.Port)
	assert.Equal(t, 60*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, 2.5, cfg.RateLimit.APIKeyRPS)
	assert.Equal(t, 10*time.Minute, cfg.Auth.OTPTTL)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "42")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_DUR", "90s")

	assert.Equal(t, 42, getEnvAsInt("X_INT", 1))
	assert.Equal(t, 7, getEnvAsInt("X_MISSING_INT", 7))
	assert.True(t, getEnvAsBool("X_BOOL", false))
	assert.Equal(t, 90*time.Second, getEnvAsDuration("X_DUR", time.Second))
}
