package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BREWHAUS_BACKEND__BASE_URL", "https://api.brewhaus.test/api")
	t.Setenv("BREWHAUS_FLASH__SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "bh_flash", cfg.Flash.CookieName)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.IsProduction())
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("BREWHAUS_SERVER__ADDR", ":9000")
	t.Setenv("BREWHAUS_SERVER__ENVIRONMENT", "production")
	t.Setenv("BREWHAUS_LOGGING__LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.IsProduction())
}

func TestLoadRequiresBackendURL(t *testing.T) {
	t.Setenv("BREWHAUS_FLASH__SECRET", "test-secret")
	t.Setenv("BREWHAUS_BACKEND__BASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsRelativeBackendURL(t *testing.T) {
	setRequired(t)
	t.Setenv("BREWHAUS_BACKEND__BASE_URL", "/just/a/path")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresFlashSecret(t *testing.T) {
	t.Setenv("BREWHAUS_BACKEND__BASE_URL", "https://api.brewhaus.test/api")
	t.Setenv("BREWHAUS_FLASH__SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
