package usecases

import (
	"context"
	"fmt"
	"strings"

	"socialite/internal/core/domain"
)

func (uc *feedUseCase) LookupChannel(ctx context.Context, channelID string) (domain.Channel, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return domain.Channel{}, domain.ErrEmptyChannelID
	}

	settings, err := uc.loadSettings()
	if err != nil {
		return domain.Channel{}, fmt.Errorf("error while loading settings: %w", err)
	}

	if settings.APIKey == "" {
		return domain.Channel{}, domain.ErrMissingAPIKey
	}

	title, err := uc.service.GetChannelTitle(ctx, settings.APIKey, channelID)
	if err != nil {
		uc.log.Error("Failed to look up channel "+channelID, err)
		return domain.Channel{}, fmt.Errorf("error while looking up channel: %w", err)
	}

	return domain.Channel{ID: channelID, DisplayName: title}, nil
}

func (uc *feedUseCase) AddChannel(ctx context.Context, channelID string) (domain.Channel, error) {
	uc.log.Info("Init Add Channel")

	channel, err := uc.LookupChannel(ctx, channelID)
	if err != nil {
		return domain.Channel{}, err
	}

	_, err = uc.updateSettings(func(s *domain.Settings) error {
		s.AddChannel(channel)
		return nil
	})
	if err != nil {
		uc.log.Error("Failed to save channel", err)
		return domain.Channel{}, fmt.Errorf("error while saving channel: %w", err)
	}

	uc.log.Info(fmt.Sprintf("Channel added: %s (ID: %s)", channel.DisplayName, channel.ID))

	return channel, nil
}

func (uc *feedUseCase) RemoveChannel(channelID string) error {
	_, err := uc.updateSettings(func(s *domain.Settings) error {
		if !s.RemoveChannel(channelID) {
			return fmt.Errorf("%w: %s", domain.ErrChannelNotFound, channelID)
		}
		return nil
	})
	if err != nil {
		uc.log.Error("Failed to remove channel", err)
		return fmt.Errorf("error while removing channel: %w", err)
	}

	uc.log.Info("Channel removed: " + channelID)

	return nil
}

func (uc *feedUseCase) ToggleChannelVisibility(channelID string) (bool, error) {
	var hidden bool

	_, err := uc.updateSettings(func(s *domain.Settings) error {
		if _, ok := s.Channels[channelID]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrChannelNotFound, channelID)
		}
		hidden = s.ToggleHidden(channelID)
		return nil
	})
	if err != nil {
		uc.log.Error("Failed to toggle channel visibility", err)
		return false, fmt.Errorf("error while toggling channel visibility: %w", err)
	}

	return hidden, nil
}
