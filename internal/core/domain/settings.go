package domain

import (
	"sort"
	"time"
)

// Settings is everything the application keeps between runs.
type Settings struct {
	APIKey      string            `json:"api_key"`
	Channels    map[string]string `json:"channels"`
	Hidden      []string          `json:"hidden_channels"`
	Snapshot    Feed              `json:"snapshot"`
	RefreshedAt time.Time         `json:"refreshed_at"`
}

func (s *Settings) ChannelList() []Channel {
	channels := make([]Channel, 0, len(s.Channels))
	for id, name := range s.Channels {
		channels = append(channels, Channel{ID: id, DisplayName: name})
	}

	sort.Slice(channels, func(i, j int) bool {
		return channels[i].ID < channels[j].ID
	})

	return channels
}

func (s *Settings) AddChannel(channel Channel) {
	if s.Channels == nil {
		s.Channels = make(map[string]string)
	}
	s.Channels[channel.ID] = channel.DisplayName
}

// RemoveChannel also forgets the channel's hidden flag.
func (s *Settings) RemoveChannel(channelID string) bool {
	if _, ok := s.Channels[channelID]; !ok {
		return false
	}

	delete(s.Channels, channelID)
	s.unhide(channelID)

	return true
}

func (s *Settings) IsHidden(channelID string) bool {
	for _, id := range s.Hidden {
		if id == channelID {
			return true
		}
	}
	return false
}

// ToggleHidden flips the hidden flag and reports the new state.
func (s *Settings) ToggleHidden(channelID string) bool {
	if s.IsHidden(channelID) {
		s.unhide(channelID)
		return false
	}

	s.Hidden = append(s.Hidden, channelID)
	return true
}

func (s *Settings) unhide(channelID string) {
	kept := s.Hidden[:0]
	for _, id := range s.Hidden {
		if id != channelID {
			kept = append(kept, id)
		}
	}
	s.Hidden = kept
}

// Visible drops videos of hidden channels without touching the input feed.
func (s *Settings) Visible(feed Feed) Feed {
	visible := make(Feed, 0, len(feed))
	for _, video := range feed {
		if s.IsHidden(video.ChannelID) {
			continue
		}
		visible = append(visible, video)
	}
	return visible
}
