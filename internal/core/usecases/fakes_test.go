package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"socialite/internal/core/domain"
)

var errUpstream = errors.New("upstream unavailable")

type fakeYoutube struct {
	mu sync.Mutex

	videos      map[string][]domain.Video
	durations   map[string]string
	titles      map[string]string
	failSearch  map[string]bool
	failDetails bool
	searchDelay time.Duration
	delays      map[string]time.Duration
	// ignoreLimit makes searches return every seeded video.
	ignoreLimit bool

	searchCalls  atomic.Int32
	detailsCalls atomic.Int32
	batches      [][]string
	limits       []int
}

func newFakeYoutube() *fakeYoutube {
	return &fakeYoutube{
		videos:     map[string][]domain.Video{},
		durations:  map[string]string{},
		titles:     map[string]string{},
		failSearch: map[string]bool{},
		delays:     map[string]time.Duration{},
	}
}

func (f *fakeYoutube) SearchChannelVideos(ctx context.Context, apiKey string, channel domain.Channel, limit int) ([]domain.Video, error) {
	f.searchCalls.Add(1)

	f.mu.Lock()
	f.limits = append(f.limits, limit)
	f.mu.Unlock()

	delay := f.searchDelay
	if d, ok := f.delays[channel.ID]; ok {
		delay = d
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if f.failSearch[channel.ID] {
		return nil, errUpstream
	}

	videos := f.videos[channel.ID]
	if !f.ignoreLimit && len(videos) > limit {
		videos = videos[:limit]
	}

	out := make([]domain.Video, len(videos))
	copy(out, videos)
	return out, nil
}

func (f *fakeYoutube) GetVideoDurations(_ context.Context, _ string, videoIDs []string) (map[string]string, error) {
	f.detailsCalls.Add(1)

	f.mu.Lock()
	f.batches = append(f.batches, append([]string(nil), videoIDs...))
	f.mu.Unlock()

	if f.failDetails {
		return nil, errUpstream
	}

	out := make(map[string]string, len(videoIDs))
	for _, id := range videoIDs {
		if raw, ok := f.durations[id]; ok {
			out[id] = raw
		}
	}
	return out, nil
}

func (f *fakeYoutube) GetChannelTitle(_ context.Context, _ string, channelID string) (string, error) {
	title, ok := f.titles[channelID]
	if !ok {
		return "", domain.ErrChannelNotFound
	}
	return title, nil
}

type memorySettings struct {
	mu       sync.Mutex
	settings domain.Settings
	loadErr  error
	saveErr  error
	saves    int
}

func (m *memorySettings) Load() (domain.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return domain.Settings{}, m.loadErr
	}

	s := m.settings
	s.Channels = make(map[string]string, len(m.settings.Channels))
	for k, v := range m.settings.Channels {
		s.Channels[k] = v
	}
	s.Hidden = append([]string(nil), m.settings.Hidden...)
	s.Snapshot = append(domain.Feed(nil), m.settings.Snapshot...)
	return s, nil
}

func (m *memorySettings) Save(settings domain.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	m.settings = settings
	m.saves++
	return nil
}

type noopMetrics struct {
	refreshes atomic.Int32
}

func (*noopMetrics) ObserveRequest(string, string) {}

func (m *noopMetrics) ObserveRefresh(time.Duration, int) { m.refreshes.Add(1) }

type discardLogger struct{}

func (discardLogger) Debug(string)        {}
func (discardLogger) Info(string)         {}
func (discardLogger) Error(string, error) {}
func (discardLogger) Warning(string)      {}
func (discardLogger) Close()              {}

func video(channelID, id, publishedAt string) domain.Video {
	return domain.Video{
		ID:          id,
		Title:       "title " + id,
		ChannelID:   channelID,
		ChannelName: "name " + channelID,
		PublishedAt: publishedAt,
	}
}

func day(d int) string {
	return fmt.Sprintf("2024-01-%02dT12:00:00Z", d)
}
