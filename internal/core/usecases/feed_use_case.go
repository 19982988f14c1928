package usecases

import (
	"context"
	"sync"

	"socialite/internal/core/domain"
	"socialite/internal/core/ports"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultPerChannelLimit       = 3
	DefaultMaxConcurrentSearches = 8
)

type Options struct {
	PerChannelLimit       int
	MaxConcurrentSearches int
	// DetailsBatchSize is capped at ports.MaxVideoIDsPerRequest.
	DetailsBatchSize int
}

func (o Options) withDefaults() Options {
	if o.PerChannelLimit <= 0 {
		o.PerChannelLimit = DefaultPerChannelLimit
	}
	if o.MaxConcurrentSearches <= 0 {
		o.MaxConcurrentSearches = DefaultMaxConcurrentSearches
	}
	if o.DetailsBatchSize <= 0 || o.DetailsBatchSize > ports.MaxVideoIDsPerRequest {
		o.DetailsBatchSize = ports.MaxVideoIDsPerRequest
	}
	return o
}

type feedUseCase struct {
	service  ports.YoutubePort
	settings ports.SettingsPort
	metrics  ports.MetricsPort
	log      ports.LoggerPort
	opts     Options

	settingsMu sync.Mutex
	refreshes  singleflight.Group
}

type FeedUseCase interface {
	FetchRecentVideos(ctx context.Context, channels []domain.Channel, apiKey string, perChannelLimit int) domain.Feed
	RefreshFeed(ctx context.Context) (domain.Feed, error)
	GetSnapshot() (domain.Feed, error)
	GetSettings() (domain.Settings, error)

	LookupChannel(ctx context.Context, channelID string) (domain.Channel, error)
	AddChannel(ctx context.Context, channelID string) (domain.Channel, error)
	RemoveChannel(channelID string) error
	ToggleChannelVisibility(channelID string) (bool, error)

	SaveAPIKey(apiKey string) error
	RemoveAPIKey() error
}

func NewFeedUseCase(
	service ports.YoutubePort,
	settings ports.SettingsPort,
	metrics ports.MetricsPort,
	logger ports.LoggerPort,
	opts Options,
) FeedUseCase {
	return &feedUseCase{
		service:  service,
		settings: settings,
		metrics:  metrics,
		log:      logger,
		opts:     opts.withDefaults(),
	}
}

// updateSettings runs one load-modify-save cycle under the settings lock.
func (uc *feedUseCase) updateSettings(mutate func(s *domain.Settings) error) (domain.Settings, error) {
	uc.settingsMu.Lock()
	defer uc.settingsMu.Unlock()

	settings, err := uc.settings.Load()
	if err != nil {
		return domain.Settings{}, err
	}

	if err := mutate(&settings); err != nil {
		return domain.Settings{}, err
	}

	if err := uc.settings.Save(settings); err != nil {
		return domain.Settings{}, err
	}

	return settings, nil
}

func (uc *feedUseCase) loadSettings() (domain.Settings, error) {
	uc.settingsMu.Lock()
	defer uc.settingsMu.Unlock()

	return uc.settings.Load()
}
