package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("KISAN_CARD_NUMBER", "123456789123")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "users.json", cfg.UsersFile)
	assert.Equal(t, "sha256", cfg.PasswordHasher)
	assert.Equal(t, "openai/gpt-4", cfg.LLM.Model)
	assert.Zero(t, cfg.TokenTTL)
	assert.Equal(t, time.Duration(0), cfg.SessionTTL)
	assert.False(t, cfg.VoiceEnabled())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PASSWORD_HASHER", "BCRYPT")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "bcrypt", cfg.PasswordHasher)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 30, cfg.RateLimitPerMinute)
	assert.True(t, cfg.VoiceEnabled())
}

func TestLoadRejectsBadCardNumber(t *testing.T) {
	tests := []struct {
		name string
		card string
	}{
		{"missing", ""},
		{"too short", "12345"},
		{"not numeric", "12345678912a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "test-secret")
			t.Setenv("KISAN_CARD_NUMBER", tt.card)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("KISAN_CARD_NUMBER", "123456789123")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")
}
