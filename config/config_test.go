package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CARPARK_BACKEND_URL", "")
	t.Setenv("PORT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, float64(10), cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
}

func TestLoad_FileValues(t *testing.T) {
	t.Setenv("CARPARK_BACKEND_URL", "")
	t.Setenv("PORT", "")

	path := writeConfig(t, `
server:
  port: 9000
  session_ttl_seconds: 60
  cors_origins: ["http://localhost:3000"]
backend:
  base_url: "http://carparks.internal:5000/"
  timeout_seconds: 0
  headers:
    Accept: application/json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "http://carparks.internal:5000", cfg.Backend.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, time.Duration(0), cfg.Backend.Timeout, "explicit 0 disables the timeout")
	assert.Equal(t, "application/json", cfg.Backend.Headers["Accept"])
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CARPARK_BACKEND_URL", "https://api.example.sg")
	t.Setenv("PORT", "7070")

	path := writeConfig(t, `
server:
  port: 9000
backend:
  base_url: "http://localhost:5000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "https://api.example.sg", cfg.Backend.BaseURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")

	_, err := Load(path)
	assert.Error(t, err)
}
