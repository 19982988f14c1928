package usecases

import (
	"fmt"
	"strings"

	"socialite/internal/core/domain"
)

func (uc *feedUseCase) SaveAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return domain.ErrMissingAPIKey
	}

	_, err := uc.updateSettings(func(s *domain.Settings) error {
		s.APIKey = apiKey
		return nil
	})
	if err != nil {
		uc.log.Error("Failed to save api key", err)
		return fmt.Errorf("error while saving api key: %w", err)
	}

	uc.log.Info("Api key saved")

	return nil
}

func (uc *feedUseCase) RemoveAPIKey() error {
	_, err := uc.updateSettings(func(s *domain.Settings) error {
		s.APIKey = ""
		return nil
	})
	if err != nil {
		uc.log.Error("Failed to remove api key", err)
		return fmt.Errorf("error while removing api key: %w", err)
	}

	uc.log.Info("Api key removed")

	return nil
}
