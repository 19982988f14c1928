package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"socialite/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsWithChannels(apiKey string) *memorySettings {
	store := &memorySettings{}
	store.settings.APIKey = apiKey
	for _, c := range testChannels {
		store.settings.AddChannel(c)
	}
	return store
}

func TestRefreshFeed_StoresSnapshot(t *testing.T) {
	yt := seededYoutube()
	store := settingsWithChannels("key")
	metrics := &noopMetrics{}
	uc := NewFeedUseCase(yt, store, metrics, discardLogger{}, Options{})

	feed, err := uc.RefreshFeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed, 8)

	snapshot, err := uc.GetSnapshot()
	require.NoError(t, err)
	assert.Equal(t, feed, snapshot)
	assert.False(t, store.settings.RefreshedAt.IsZero())
	assert.EqualValues(t, 1, metrics.refreshes.Load())
}

func TestRefreshFeed_ReplacesPreviousSnapshot(t *testing.T) {
	yt := seededYoutube()
	store := settingsWithChannels("key")
	store.settings.Snapshot = domain.Feed{video("UCgone", "stale", day(30))}
	uc := NewFeedUseCase(yt, store, &noopMetrics{}, discardLogger{}, Options{})

	feed, err := uc.RefreshFeed(context.Background())
	require.NoError(t, err)

	assert.NotContains(t, feedIDs(feed), "stale")
	assert.NotContains(t, feedIDs(store.settings.Snapshot), "stale")
}

func TestRefreshFeed_WithoutAPIKey(t *testing.T) {
	yt := seededYoutube()
	store := settingsWithChannels("")
	uc := NewFeedUseCase(yt, store, &noopMetrics{}, discardLogger{}, Options{})

	feed, err := uc.RefreshFeed(context.Background())
	require.NoError(t, err)

	assert.Empty(t, feed)
	assert.Zero(t, yt.searchCalls.Load())
	assert.Zero(t, store.saves)
}

func TestRefreshFeed_LoadError(t *testing.T) {
	store := &memorySettings{loadErr: errors.New("disk gone")}
	uc := NewFeedUseCase(seededYoutube(), store, &noopMetrics{}, discardLogger{}, Options{})

	_, err := uc.RefreshFeed(context.Background())
	assert.ErrorContains(t, err, "disk gone")
}

func TestRefreshFeed_SaveErrorStillReturnsFeed(t *testing.T) {
	store := settingsWithChannels("key")
	store.saveErr = errors.New("read-only")
	uc := NewFeedUseCase(seededYoutube(), store, &noopMetrics{}, discardLogger{}, Options{})

	feed, err := uc.RefreshFeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed, 8)
}

func TestRefreshFeed_OverlappingCallsShareOneAggregation(t *testing.T) {
	yt := seededYoutube()
	yt.searchDelay = 200 * time.Millisecond
	uc := NewFeedUseCase(yt, settingsWithChannels("key"), &noopMetrics{}, discardLogger{}, Options{})

	var wg sync.WaitGroup
	results := make([]domain.Feed, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			feed, err := uc.RefreshFeed(context.Background())
			assert.NoError(t, err)
			results[i] = feed
		}()
	}
	wg.Wait()

	assert.EqualValues(t, len(testChannels), yt.searchCalls.Load())
	assert.Equal(t, results[0], results[1])
}

func TestRefreshFeed_SequentialCallsRunAgain(t *testing.T) {
	yt := seededYoutube()
	uc := NewFeedUseCase(yt, settingsWithChannels("key"), &noopMetrics{}, discardLogger{}, Options{})

	_, err := uc.RefreshFeed(context.Background())
	require.NoError(t, err)
	_, err = uc.RefreshFeed(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2*len(testChannels), yt.searchCalls.Load())
}
