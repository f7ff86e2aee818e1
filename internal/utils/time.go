// Package utils holds small helpers shared across handlers and
// services.
package utils

import (
	"fmt"
	"time"
)

// TimeAgo renders the elapsed time since t in the coarse buckets used
// by the activity feed ("3 hours ago", "2 days ago", …).
func TimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	for _, b := range []struct {
		size int64
		unit string
	}{
		{31536000, "year"},
		{2592000, "month"},
		{86400, "day"},
		{3600, "hour"},
		{60, "minute"},
	} {
		if interval := seconds / b.size; interval >= 1 {
			return plural(interval, b.unit)
		}
	}
	return plural(seconds, "second")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// IsToday reports whether the YYYY-MM-DD date is the current calendar
// day in now's location.
func IsToday(date string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}
	y1, m1, d1 := d.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FormatDate renders a YYYY-MM-DD date as "Aug 6, 2025" for display.
// Unparseable input is returned unchanged.
func FormatDate(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.Format("Jan 2, 2006")
}
