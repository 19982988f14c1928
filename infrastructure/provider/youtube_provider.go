package provider

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"socialite/infrastructure/metrics"
	"socialite/internal/core/domain"
	"socialite/internal/core/ports"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	endpointSearch   = "search"
	endpointVideos   = "videos"
	endpointChannels = "channels"

	DefaultRequestTimeout = 10 * time.Second
)

type Config struct {
	HTTPClient *http.Client
	// Endpoint overrides the API base URL, e.g. for a local test server.
	Endpoint       string
	RequestTimeout time.Duration
}

type youtubeProvider struct {
	cfg     Config
	metrics ports.MetricsPort
	log     ports.LoggerPort
	service *youtube.Service
	mu      sync.Mutex
}

func NewYoutubeProvider(cfg Config, metrics ports.MetricsPort, logger ports.LoggerPort) ports.YoutubePort {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}

	return &youtubeProvider{
		cfg:     cfg,
		metrics: metrics,
		log:     logger,
	}
}

// getYoutubeService builds the client once. The api key is not part of it:
// it is sent with every call so a key change applies immediately.
func (s *youtubeProvider) getYoutubeService(ctx context.Context) (*youtube.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service != nil {
		return s.service, nil
	}

	opts := []option.ClientOption{option.WithHTTPClient(s.cfg.HTTPClient)}
	if s.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.cfg.Endpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		s.log.Error("error while create youtube service", err)
		return nil, fmt.Errorf("error while create youtube service: %w", err)
	}

	s.service = service

	s.log.Info("Create youtube service completed")

	return service, nil
}

func (s *youtubeProvider) observe(endpoint string, err error) {
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	s.metrics.ObserveRequest(endpoint, outcome)
}

func (s *youtubeProvider) SearchChannelVideos(ctx context.Context, apiKey string, channel domain.Channel, limit int) ([]domain.Video, error) {
	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return nil, err
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	// newest uploads of the channel, snippet carries everything but the duration
	call := service.Search.List([]string{"snippet", "id"}).
		ChannelId(channel.ID).
		Order("date").
		MaxResults(int64(limit)).
		Context(reqCtx)

	response, err := call.Do(googleapi.QueryParameter("key", apiKey))
	s.observe(endpointSearch, err)
	if err != nil {
		return nil, fmt.Errorf("error in call youtube search for channel %s: %w", channel.ID, err)
	}

	videos := make([]domain.Video, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}

		video := domain.Video{
			ID:        item.Id.VideoId,
			ChannelID: channel.ID,
			Duration:  domain.UnknownDuration,
		}
		// a result without snippet keeps empty metadata
		if item.Snippet != nil {
			video.Title = item.Snippet.Title
			video.ChannelID = item.Snippet.ChannelId
			video.ChannelName = item.Snippet.ChannelTitle
			video.PublishedAt = item.Snippet.PublishedAt
			video.Description = item.Snippet.Description
		}

		videos = append(videos, video)
	}

	s.log.Debug(fmt.Sprintf("Search for channel %s returned %d videos", channel.ID, len(videos)))

	return videos, nil
}

func (s *youtubeProvider) GetVideoDurations(ctx context.Context, apiKey string, videoIDs []string) (map[string]string, error) {
	if len(videoIDs) == 0 {
		return map[string]string{}, nil
	}
	if len(videoIDs) > ports.MaxVideoIDsPerRequest {
		return nil, fmt.Errorf("too many video ids in one request: %d (max %d)", len(videoIDs), ports.MaxVideoIDsPerRequest)
	}

	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return nil, err
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	call := service.Videos.List([]string{"contentDetails"}).
		Id(videoIDs...).
		Context(reqCtx)

	response, err := call.Do(googleapi.QueryParameter("key", apiKey))
	s.observe(endpointVideos, err)
	if err != nil {
		return nil, fmt.Errorf("error in call youtube videos: %w", err)
	}

	durations := make(map[string]string, len(response.Items))
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.Id == "" {
			continue
		}
		durations[item.Id] = item.ContentDetails.Duration
	}

	return durations, nil
}

func (s *youtubeProvider) GetChannelTitle(ctx context.Context, apiKey, channelID string) (string, error) {
	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return "", err
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	call := service.Channels.List([]string{"snippet"}).
		Id(channelID).
		Context(reqCtx)

	response, err := call.Do(googleapi.QueryParameter("key", apiKey))
	s.observe(endpointChannels, err)
	if err != nil {
		return "", fmt.Errorf("error in call youtube channels: %w", err)
	}

	if len(response.Items) == 0 || response.Items[0].Snippet == nil {
		return "", fmt.Errorf("%w: %s", domain.ErrChannelNotFound, channelID)
	}

	return response.Items[0].Snippet.Title, nil
}
