package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chTempDir keeps the loader away from any real config.yaml or .env.
func chTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadRequiresAPIBaseURL(t *testing.T) {
	chTempDir(t)
	_, err := Load()
	assert.ErrorIs(t, err, ErrNoAPIBaseURL)
}

func TestLoadDefaults(t *testing.T) {
	chTempDir(t)
	t.Setenv("API_BASE_URL", "http://store.local")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadFromYAML(t *testing.T) {
	chTempDir(t)
	t.Setenv("API_BASE_URL", "")
	require.NoError(t, os.WriteFile("config.yaml", []byte(
		"listen_addr: \":7070\"\napi_base_url: http://store.local\nsession_ttl: 45m\n",
	), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
	assert.Equal(t, "http://store.local", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Minute, cfg.SessionTTL)
}

func TestEnvOverrides(t *testing.T) {
	chTempDir(t)
	t.Setenv("API_BASE_URL", "http://store.local")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestBadSessionTTL(t *testing.T) {
	chTempDir(t)
	t.Setenv("API_BASE_URL", "http://store.local")
	t.Setenv("SESSION_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}
