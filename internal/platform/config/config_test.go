package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_DefaultValues tests that hardcoded defaults are applied correctly.
func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "utm-service", cfg.App.Name)
	assert.Equal(t, "dev", cfg.App.Version)
	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

// TestLoad_AttributionDefaults tests the cookie defaults: 30 days, no domain, overwrite on.
func TestLoad_AttributionDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAttributionTTL, cfg.Attribution.TTL)
	assert.Equal(t, 720*time.Hour, cfg.Attribution.TTL)
	assert.Empty(t, cfg.Attribution.Domain)
	assert.True(t, cfg.Attribution.Overwrite)
}

// TestLoad_EnvVarOverrides tests that environment variables override defaults.
func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("APP_ATTRIBUTION_TTL", "48h")
	t.Setenv("APP_ATTRIBUTION_DOMAIN", ".example.com")
	t.Setenv("APP_ATTRIBUTION_OVERWRITE", "false")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 48*time.Hour, cfg.Attribution.TTL)
	assert.Equal(t, ".example.com", cfg.Attribution.Domain)
	assert.False(t, cfg.Attribution.Overwrite)
}

// TestLoad_DurationParsing tests that duration strings are parsed correctly.
func TestLoad_DurationParsing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

// TestLoad_NonExistentProfile tests that a missing profile file doesn't cause errors.
func TestLoad_NonExistentProfile(t *testing.T) {
	cfg, err := Load("nonexistent")
	require.NoError(t, err)

	assert.Equal(t, "utm-service", cfg.App.Name)
}

// TestLoadFrom_ProfileLayering tests base and profile files layered over defaults.
func TestLoadFrom_ProfileLayering(t *testing.T) {
	dir := t.TempDir()

	base := "app:\n  name: landing-site\nattribution:\n  ttl: 24h\n  domain: example.com\n"
	prod := "app:\n  environment: prod\nattribution:\n  domain: .example.com\n"

	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prod.yaml"), []byte(prod), 0o600))

	cfg, err := LoadFrom(dir, "prod")
	require.NoError(t, err)

	assert.Equal(t, "landing-site", cfg.App.Name)
	assert.Equal(t, "prod", cfg.App.Environment)
	assert.Equal(t, 24*time.Hour, cfg.Attribution.TTL)
	assert.Equal(t, ".example.com", cfg.Attribution.Domain)
	assert.True(t, cfg.Attribution.Overwrite)
}

// TestLoadFrom_InvalidYAML tests that parse failures are reported.
func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("app: [unclosed"), 0o600))

	_, err := LoadFrom(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading base config")
}

// TestDefaults tests that the defaults map contains expected values.
func TestDefaults(t *testing.T) {
	d := defaults()

	assert.Equal(t, "utm-service", d["app.name"])
	assert.Equal(t, DefaultServerPort, d["server.port"])
	assert.Equal(t, "720h0m0s", d["attribution.ttl"])
	assert.Equal(t, true, d["attribution.overwrite"])
}
