package domain

import (
	"net/url"
	"time"
)

const (
	embedBaseURL = "https://www.youtube-nocookie.com/embed/"
	watchBaseURL = "https://www.youtube.com/watch"
)

type Video struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	ChannelID   string        `json:"channel_id"`
	ChannelName string        `json:"channel_name"`
	PublishedAt string        `json:"published_at"`
	Description string        `json:"description"`
	Duration    string        `json:"duration"`
	Length      time.Duration `json:"length"`
}

// EmbedURL is the privacy-enhanced player used by the grid page.
func (v Video) EmbedURL() string {
	return embedBaseURL + url.PathEscape(v.ID) + "?rel=0&modestbranding=1&controls=1"
}

func (v Video) WatchURL() string {
	return watchBaseURL + "?v=" + url.QueryEscape(v.ID)
}

// Published returns the zero time when PublishedAt is not RFC3339.
func (v Video) Published() time.Time {
	t, err := time.Parse(time.RFC3339, v.PublishedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
