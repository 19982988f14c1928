package ports

import (
	"context"

	"socialite/internal/core/domain"
)

// MaxVideoIDsPerRequest is the most ids the videos endpoint accepts in one call.
const MaxVideoIDsPerRequest = 50

type YoutubePort interface {
	// SearchChannelVideos returns the newest videos of a channel with an unknown duration.
	SearchChannelVideos(ctx context.Context, apiKey string, channel domain.Channel, limit int) ([]domain.Video, error)
	// GetVideoDurations maps video id to its raw ISO 8601 duration.
	GetVideoDurations(ctx context.Context, apiKey string, videoIDs []string) (map[string]string, error)
	GetChannelTitle(ctx context.Context, apiKey, channelID string) (string, error)
}
