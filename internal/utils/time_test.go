package utils

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "30 seconds ago"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{48 * time.Hour, "2 days ago"},
		{40 * 24 * time.Hour, "1 month ago"},
		{800 * 24 * time.Hour, "2 years ago"},
	}
	for _, c := range cases {
		if got := TimeAgo(now.Add(-c.ago), now); got != c.want {
			t.Errorf("TimeAgo(-%v) = %q, want %q", c.ago, got, c.want)
		}
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2025, 8, 20, 23, 30, 0, 0, time.UTC)
	if !IsToday("2025-08-20", now) {
		t.Error("same calendar day should match")
	}
	if IsToday("2025-08-21", now) {
		t.Error("tomorrow should not match")
	}
	if IsToday("garbage", now) {
		t.Error("unparseable date should not match")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-08-06"); got != "Aug 6, 2025" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDate("n/a"); got != "n/a" {
		t.Errorf("unparseable input should pass through, got %q", got)
	}
}
