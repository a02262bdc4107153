package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig создает временный конфиг файл
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	configContent := `
env: prod
http_server:
  addresshttp: ":8080"
  timeouthttp: 30s
  idle_timeout: 90s
  shutdown_timeout: 5s
rate_limit:
  rps: 10
  burst: 20
`
	t.Setenv("CONFIG_PATH", writeConfig(t, configContent))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, ":8080", cfg.AddressHTTP)
	assert.Equal(t, 30*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 90*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10.0, cfg.RPS)
	assert.Equal(t, 20, cfg.Burst)
}

func TestLoad_DefaultValues(t *testing.T) {
	// Минимальный конфиг: остальные поля берутся из env-default
	t.Setenv("CONFIG_PATH", writeConfig(t, "env: dev\n"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, ":8000", cfg.AddressHTTP)
	assert.Equal(t, 10*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100.0, cfg.RPS)
	assert.Equal(t, 200, cfg.Burst)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HTTP_ADDRESS", ":9000")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, ":9000", cfg.AddressHTTP)
	assert.Equal(t, 5, cfg.Burst)
	assert.Equal(t, 100.0, cfg.RPS)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{
		Env:        EnvLocal,
		HTTPServer: HTTPServer{AddressHTTP: ":8000"},
		RateLimit:  RateLimit{RPS: 1.5, Burst: 3},
	}

	s := cfg.String()
	assert.Contains(t, s, "Env: local")
	assert.Contains(t, s, "Address: :8000")
	assert.Contains(t, s, "RPS: 1.5")
	assert.Contains(t, s, "Burst: 3")
}
