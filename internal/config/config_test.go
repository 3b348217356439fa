package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.AllowClientIDs)
	assert.False(t, cfg.StrictStatus)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)

	policy, err := cfg.BookingPolicy()
	require.NoError(t, err)
	assert.True(t, policy.RequireKnownUser)
	assert.False(t, policy.RevalidateOnEdit)
	assert.Equal(t, "09:00", policy.Open.String())
	assert.Equal(t, "17:00", policy.Close.String())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BOOKING_OPEN", "8:30")
	t.Setenv("BOOKING_CLOSE", "18:00")
	t.Setenv("BOOKING_REQUIRE_KNOWN_USER", "false")
	t.Setenv("API_STRICT_STATUS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	policy, err := cfg.BookingPolicy()
	require.NoError(t, err)
	assert.Equal(t, "08:30", policy.Open.String())
	assert.False(t, policy.RequireKnownUser)
	assert.True(t, cfg.StrictStatus)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad open clock", map[string]string{"BOOKING_OPEN": "nine"}},
		{"open after close", map[string]string{"BOOKING_OPEN": "18:00", "BOOKING_CLOSE": "09:00"}},
		{"zero ttl", map[string]string{"JWT_TTL": "0s"}},
		{"bcrypt too cheap", map[string]string{"BCRYPT_COST": "2"}},
		{"prod with default secret", map[string]string{"APP_ENV": "prod"}},
		{"prod with client ids", map[string]string{"APP_ENV": "production", "JWT_SECRET": "s3cret", "AUTH_ALLOW_CLIENT_IDS": "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ProdWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "Release")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProdLike())
}
