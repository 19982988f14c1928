package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SOCIALITE_PER_CHANNEL_LIMIT", "")
	t.Setenv("SOCIALITE_REQUEST_TIMEOUT", "")
	t.Setenv("SOCIALITE_LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, 3, cfg.PerChannelLimit)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.SettingsPath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SOCIALITE_SETTINGS_PATH", "/tmp/s.json")
	t.Setenv("SOCIALITE_PER_CHANNEL_LIMIT", "5")
	t.Setenv("SOCIALITE_MAX_CONCURRENT_SEARCHES", "2")
	t.Setenv("SOCIALITE_REQUEST_TIMEOUT", "1500ms")
	t.Setenv("SOCIALITE_API_KEY", "abc")

	cfg := Load()

	assert.Equal(t, "/tmp/s.json", cfg.SettingsPath)
	assert.Equal(t, 5, cfg.PerChannelLimit)
	assert.Equal(t, 2, cfg.MaxConcurrentSearches)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "abc", cfg.APIKey)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("SOCIALITE_PER_CHANNEL_LIMIT", "-1")
	t.Setenv("SOCIALITE_REQUEST_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 3, cfg.PerChannelLimit)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}
