package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:8080/career-fair", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.Auth.TerminateOnMismatch)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.False(t, cfg.Redis.UseSentinel)
	assert.False(t, cfg.Redis.UseCluster)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("API_BASE_URL", "https://careers.example.edu/api")
	t.Setenv("API_TIMEOUT", "30s")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("AUTH_TERMINATE_ON_MISMATCH", "true")
	t.Setenv("REDIS_URI", "redis-prod:6379")
	t.Setenv("REDIS_USE_SENTINEL", "true")
	t.Setenv("REDIS_SENTINEL_NODES", "s1:26379,s2:26379")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "https://careers.example.edu/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.True(t, cfg.Auth.TerminateOnMismatch)
	assert.Equal(t, "redis-prod:6379", cfg.Redis.URI)
	assert.True(t, cfg.Redis.UseSentinel)
	assert.Equal(t, []string{"s1:26379", "s2:26379"}, cfg.Redis.SentinelNodes)
}

func TestSanitizeClampsSessionTTL(t *testing.T) {
	cfg := AppConfig{Auth: AuthConfig{SessionTTL: -time.Hour}}
	cfg.Sanitize()
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)

	cfg = AppConfig{Auth: AuthConfig{SessionTTL: 100 * time.Hour}}
	cfg.Sanitize()
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
}

func TestSanitizeDefaultsAPITimeout(t *testing.T) {
	cfg := AppConfig{}
	cfg.Sanitize()
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
}

func TestDetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg := AppConfig{}
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)
}
