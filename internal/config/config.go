package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	SettingsPath          string
	LogDir                string
	LogLevel              string
	APIKey                string
	APIEndpoint           string
	GridAddr              string
	PerChannelLimit       int
	MaxConcurrentSearches int
	RequestTimeout        time.Duration
}

func Load() *Config {
	return &Config{
		SettingsPath:          getEnv("SOCIALITE_SETTINGS_PATH", defaultSettingsPath()),
		LogDir:                getEnv("SOCIALITE_LOG_DIR", "logs"),
		LogLevel:              getEnv("SOCIALITE_LOG_LEVEL", "info"),
		APIKey:                getEnv("SOCIALITE_API_KEY", ""),
		APIEndpoint:           getEnv("SOCIALITE_API_ENDPOINT", ""),
		GridAddr:              getEnv("SOCIALITE_GRID_ADDR", "127.0.0.1:8080"),
		PerChannelLimit:       getEnvInt("SOCIALITE_PER_CHANNEL_LIMIT", 3),
		MaxConcurrentSearches: getEnvInt("SOCIALITE_MAX_CONCURRENT_SEARCHES", 8),
		RequestTimeout:        getEnvDuration("SOCIALITE_REQUEST_TIMEOUT", 10*time.Second),
	}
}

func defaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "settings.json"
	}
	return filepath.Join(dir, "socialite", "settings.json")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
