package usecases

import (
	"context"
	"fmt"

	"socialite/internal/core/domain"

	"golang.org/x/sync/errgroup"
)

// FetchRecentVideos never fails: a channel or batch whose request fails
// contributes nothing and the rest of the feed is still returned.
func (uc *feedUseCase) FetchRecentVideos(ctx context.Context, channels []domain.Channel, apiKey string, perChannelLimit int) domain.Feed {
	if apiKey == "" || len(channels) == 0 {
		return domain.Feed{}
	}

	if perChannelLimit <= 0 {
		perChannelLimit = uc.opts.PerChannelLimit
	}

	uc.log.Info(fmt.Sprintf("Init fetch recent videos for %d channels", len(channels)))

	feed := uc.searchChannels(ctx, channels, apiKey, perChannelLimit)
	if len(feed) == 0 {
		uc.log.Warning("No videos found for any channel")
		return domain.Feed{}
	}

	durations := uc.lookupDurations(ctx, apiKey, feed.IDs())

	for i := range feed {
		raw, ok := durations[feed[i].ID]
		if !ok {
			continue
		}

		feed[i].Duration = domain.FormatDuration(raw)

		length, err := domain.ParseLength(raw)
		if err != nil {
			uc.log.Debug(fmt.Sprintf("cannot parse duration of video %s: %v", feed[i].ID, err))
			continue
		}
		feed[i].Length = length
	}

	feed.SortByPublish()

	uc.log.Info(fmt.Sprintf("Fetch recent videos completed: %d videos", len(feed)))

	return feed
}

// searchChannels runs one search per channel and waits for all of them.
// Every task owns its slot in results, so nothing is shared while they run.
func (uc *feedUseCase) searchChannels(ctx context.Context, channels []domain.Channel, apiKey string, limit int) domain.Feed {
	results := make([][]domain.Video, len(channels))

	var g errgroup.Group
	g.SetLimit(uc.opts.MaxConcurrentSearches)

	for i, channel := range channels {
		g.Go(func() error {
			videos, err := uc.service.SearchChannelVideos(ctx, apiKey, channel, limit)
			if err != nil {
				uc.log.Error(fmt.Sprintf("search failed for channel %s, skipping", channel.ID), err)
				return nil
			}

			if len(videos) > limit {
				videos = videos[:limit]
			}

			kept := make([]domain.Video, 0, len(videos))
			for _, video := range videos {
				if video.ID == "" {
					continue
				}
				if video.ChannelName == "" {
					video.ChannelName = channel.DisplayName
				}
				video.ChannelID = channel.ID
				video.Duration = domain.UnknownDuration
				kept = append(kept, video)
			}

			results[i] = kept
			return nil
		})
	}

	_ = g.Wait()

	var feed domain.Feed
	for _, videos := range results {
		feed = append(feed, videos...)
	}

	return feed
}

// lookupDurations splits ids into batches the videos endpoint accepts and
// fetches them concurrently. A failed batch leaves its ids unresolved.
func (uc *feedUseCase) lookupDurations(ctx context.Context, apiKey string, ids []string) map[string]string {
	if len(ids) == 0 {
		return map[string]string{}
	}

	var batches [][]string
	for start := 0; start < len(ids); start += uc.opts.DetailsBatchSize {
		end := min(start+uc.opts.DetailsBatchSize, len(ids))
		batches = append(batches, ids[start:end])
	}

	results := make([]map[string]string, len(batches))

	var g errgroup.Group
	for i, batch := range batches {
		g.Go(func() error {
			durations, err := uc.service.GetVideoDurations(ctx, apiKey, batch)
			if err != nil {
				uc.log.Error(fmt.Sprintf("duration lookup failed for %d videos", len(batch)), err)
				return nil
			}
			results[i] = durations
			return nil
		})
	}

	_ = g.Wait()

	merged := make(map[string]string, len(ids))
	for _, durations := range results {
		for id, raw := range durations {
			merged[id] = raw
		}
	}

	return merged
}
