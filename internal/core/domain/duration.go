package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

const UnknownDuration = "unknown duration"

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// FormatDuration turns a contentDetails token like PT1M30S into "1 min 30 s".
// Zero components are omitted, so PT0S formats as an empty string.
func FormatDuration(iso string) string {
	match := durationPattern.FindStringSubmatch(iso)
	if match == nil {
		return UnknownDuration
	}

	hours, okH := component(match[1])
	minutes, okM := component(match[2])
	seconds, okS := component(match[3])
	if !okH || !okM || !okS {
		return UnknownDuration
	}

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%d h ", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%d min ", minutes)
	}
	if seconds > 0 {
		fmt.Fprintf(&b, "%d s", seconds)
	}

	return strings.TrimSpace(b.String())
}

// component reports false when the digits do not fit an int.
func component(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseLength accepts any ISO 8601 duration, including day components
// that FormatDuration does not render.
func ParseLength(iso string) (time.Duration, error) {
	parsed, err := duration.Parse(iso)
	if err != nil {
		return 0, fmt.Errorf("error while parsing video duration %q: %w", iso, err)
	}

	return parsed.ToTimeDuration(), nil
}
