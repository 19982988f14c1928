package domain

import (
	"sort"
	"time"
)

type Feed []Video

// SortByPublish orders the feed newest first. Ties keep their input order.
// Entries whose PublishedAt is not RFC3339 go after all dated ones.
func (f Feed) SortByPublish() {
	sort.SliceStable(f, func(i, j int) bool {
		return newerThan(f[i].PublishedAt, f[j].PublishedAt)
	})
}

func newerThan(a, b string) bool {
	ta, errA := time.Parse(time.RFC3339, a)
	tb, errB := time.Parse(time.RFC3339, b)
	switch {
	case errA == nil && errB == nil:
		return ta.After(tb)
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a > b
	}
}

// IDs returns the distinct video ids in first-seen order.
func (f Feed) IDs() []string {
	seen := make(map[string]struct{}, len(f))
	ids := make([]string, 0, len(f))
	for _, v := range f {
		if _, ok := seen[v.ID]; ok {
			continue
		}
		seen[v.ID] = struct{}{}
		ids = append(ids, v.ID)
	}
	return ids
}

func (f Feed) TotalLength() time.Duration {
	var total time.Duration
	for _, v := range f {
		total += v.Length
	}
	return total
}
