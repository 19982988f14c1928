package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedSortByPublish(t *testing.T) {
	feed := Feed{
		{ID: "old", PublishedAt: "2024-01-01T10:00:00Z"},
		{ID: "new", PublishedAt: "2024-03-01T10:00:00Z"},
		{ID: "tie-a", PublishedAt: "2024-02-01T10:00:00Z"},
		{ID: "tie-b", PublishedAt: "2024-02-01T10:00:00Z"},
		{ID: "offset", PublishedAt: "2024-02-01T12:00:00+01:00"},
	}

	feed.SortByPublish()

	ids := make([]string, len(feed))
	for i, v := range feed {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"new", "offset", "tie-a", "tie-b", "old"}, ids)

	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Published().After(feed[i-1].Published()), "feed not descending at %d", i)
	}
}

func TestFeedSortByPublishUndatedLast(t *testing.T) {
	feed := Feed{
		{ID: "x", PublishedAt: "2024-01-01T12:00:00+05:00"},
		{ID: "bad", PublishedAt: "2024-01-01T10"},
		{ID: "y", PublishedAt: "2024-01-01T08:00:00Z"},
		{ID: "empty", PublishedAt: ""},
		{ID: "z", PublishedAt: "2024-01-02T00:00:00Z"},
	}

	feed.SortByPublish()

	ids := make([]string, len(feed))
	for i, v := range feed {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"z", "y", "x", "bad", "empty"}, ids)
}

func TestFeedIDsDeduplicates(t *testing.T) {
	feed := Feed{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: "c"}}
	assert.Equal(t, []string{"a", "b", "c"}, feed.IDs())
	assert.Empty(t, Feed{}.IDs())
}

func TestFeedTotalLength(t *testing.T) {
	feed := Feed{{Length: time.Minute}, {Length: 30 * time.Second}, {}}
	assert.Equal(t, 90*time.Second, feed.TotalLength())
}

func TestVideoURLs(t *testing.T) {
	v := Video{ID: "dQw4w9WgXcQ"}
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ?rel=0&modestbranding=1&controls=1", v.EmbedURL())
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", v.WatchURL())
}

func TestVideoPublished(t *testing.T) {
	v := Video{PublishedAt: "2024-05-06T07:08:09Z"}
	assert.Equal(t, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), v.Published().UTC())
	assert.True(t, Video{PublishedAt: "yesterday"}.Published().IsZero())
}
