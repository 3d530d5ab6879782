package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "@every 1h", cfg.KeyRate.Schedule)
	assert.InDelta(t, 5.0, cfg.KeyRate.Margin, 0.001)
	assert.False(t, cfg.KeyRateEnabled())

	now, err := cfg.FixedNow()
	require.NoError(t, err)
	assert.Nil(t, now)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://app.example.com")
	t.Setenv("ADVISOR_NOW", "2025-07-13 14:36:00")
	t.Setenv("KEY_RATE_URL", "http://rates.local/DailyInfo.asmx")
	t.Setenv("KEY_RATE_MARGIN", "2.5")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.KeyRateEnabled())
	assert.InDelta(t, 2.5, cfg.KeyRate.Margin, 0.001)

	now, err := cfg.FixedNow()
	require.NoError(t, err)
	require.NotNil(t, now)
	assert.Equal(t, time.Date(2025, 7, 13, 14, 36, 0, 0, time.UTC), *now)
}

func TestEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("KEY_RATE_SCHEDULE=@every 5m\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("KEY_RATE_SCHEDULE") })

	cfg, err := NewConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "@every 5m", cfg.KeyRate.Schedule)
}

func TestInvalidFixedNow(t *testing.T) {
	t.Setenv("ADVISOR_NOW", "tomorrow")
	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADVISOR_NOW")
}

func TestMissingNamedEnvFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
