package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Address)
	assert.True(t, cfg.HTTP.Debug())
	assert.Equal(t, 24*time.Hour, cfg.Session.Lifetime)
	assert.Equal(t, "duplotech_session", cfg.Session.CookieName)
	assert.NotEmpty(t, cfg.Session.Secret)
	assert.Equal(t, ":9100", cfg.Health.Address)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
env: prod
http:
  address: "127.0.0.1:8000"
  mode: release
session:
  secret: "a-very-long-test-secret"
  lifetime: 2h
log:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "127.0.0.1:8000", cfg.HTTP.Address)
	assert.False(t, cfg.HTTP.Debug())
	assert.Equal(t, "a-very-long-test-secret", cfg.Session.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.Lifetime)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("HTTP_ADDRESS", ":6000")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Session.Secret)
	assert.Equal(t, ":6000", cfg.HTTP.Address)
}

func TestLoadRejectsNonPositiveLifetime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  lifetime: -1h\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
