package textutil

import (
	"fmt"
	"time"
)

const (
	minute = 60
	hour   = 3600
	day    = 86400
	week   = 604800
)

// TimeAgo renders how long ago t was relative to now, in the short Korean
// form the UI expects. Timestamps in the future clamp to "방금 전".
func TimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds < minute:
		return "방금 전"
	case seconds < hour:
		return fmt.Sprintf("%d분 전", seconds/minute)
	case seconds < day:
		return fmt.Sprintf("%d시간 전", seconds/hour)
	case seconds < week:
		return fmt.Sprintf("%d일 전", seconds/day)
	default:
		return t.Format("2006-01-02")
	}
}

// TimeAgoString parses an RFC-1123Z date string ("Thu, 21 Nov 2024 11:50:00
// +0900") and renders it with TimeAgo. Unparseable input comes back
// unchanged, never an error.
func TimeAgoString(raw string, now time.Time) string {
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC1123Z, raw)
	if err != nil {
		return raw
	}
	return TimeAgo(t, now)
}
