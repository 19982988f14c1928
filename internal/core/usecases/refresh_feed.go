package usecases

import (
	"context"
	"fmt"
	"time"

	"socialite/internal/core/domain"
)

const refreshKey = "refresh"

// RefreshFeed aggregates the tracked channels and replaces the stored
// snapshot. Calls made while a refresh is running share its result.
func (uc *feedUseCase) RefreshFeed(ctx context.Context) (domain.Feed, error) {
	result, err, shared := uc.refreshes.Do(refreshKey, func() (interface{}, error) {
		return uc.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}

	if shared {
		uc.log.Debug("Refresh joined an in-flight aggregation")
	}

	return result.(domain.Feed), nil
}

func (uc *feedUseCase) refresh(ctx context.Context) (domain.Feed, error) {
	uc.log.Info("Init Refresh Feed")
	started := time.Now()

	settings, err := uc.loadSettings()
	if err != nil {
		uc.log.Error("Failed to load settings", err)
		return nil, fmt.Errorf("error while loading settings: %w", err)
	}

	if settings.APIKey == "" {
		uc.log.Warning("Refresh skipped: api key is not configured")
		return domain.Feed{}, nil
	}

	feed := uc.FetchRecentVideos(ctx, settings.ChannelList(), settings.APIKey, uc.opts.PerChannelLimit)

	uc.metrics.ObserveRefresh(time.Since(started), len(feed))

	_, err = uc.updateSettings(func(s *domain.Settings) error {
		s.Snapshot = feed
		s.RefreshedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		uc.log.Error("Failed to save feed snapshot", err)
	}

	uc.log.Info(fmt.Sprintf("Refresh Feed Completed in %s", time.Since(started).Round(time.Millisecond)))

	return feed, nil
}

func (uc *feedUseCase) GetSnapshot() (domain.Feed, error) {
	settings, err := uc.loadSettings()
	if err != nil {
		uc.log.Error("Failed to load feed snapshot", err)
		return nil, fmt.Errorf("error while loading feed snapshot: %w", err)
	}

	return settings.Snapshot, nil
}

func (uc *feedUseCase) GetSettings() (domain.Settings, error) {
	settings, err := uc.loadSettings()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("error while loading settings: %w", err)
	}

	return settings, nil
}
