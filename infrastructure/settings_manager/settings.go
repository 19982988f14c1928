package settings_manager

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"socialite/internal/core/domain"
)

type settingsServiceImpl struct {
	SettingsFilePath string
}

type SettingsService interface {
	Load() (domain.Settings, error)
	Save(settings domain.Settings) error
}

func NewSettingsService(settingsFilePath string) SettingsService {
	if settingsFilePath == "" {
		settingsFilePath = "settings.json"
	}

	return &settingsServiceImpl{
		SettingsFilePath: settingsFilePath,
	}
}

// Load returns empty settings when nothing has been saved yet.
func (s *settingsServiceImpl) Load() (domain.Settings, error) {
	file, err := os.Open(s.SettingsFilePath)
	if errors.Is(err, os.ErrNotExist) {
		return domain.Settings{Channels: map[string]string{}}, nil
	}
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to open settings file %s: %w", s.SettingsFilePath, err)
	}

	defer file.Close()
	settings := domain.Settings{}

	if err = json.NewDecoder(file).Decode(&settings); err != nil {
		return domain.Settings{}, fmt.Errorf("failed to decode settings file %s: %w", s.SettingsFilePath, err)
	}

	if settings.Channels == nil {
		settings.Channels = map[string]string{}
	}

	return settings, nil
}

// Save writes a sibling temp file and renames it over the old one, so an
// interrupted write never leaves a truncated settings file behind.
func (s *settingsServiceImpl) Save(settings domain.Settings) error {
	dir := filepath.Dir(s.SettingsFilePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.SettingsFilePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create settings file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(settings); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to restrict settings file permissions: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.SettingsFilePath); err != nil {
		return fmt.Errorf("failed to replace settings file %s: %w", s.SettingsFilePath, err)
	}

	return nil
}
