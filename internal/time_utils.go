package internal

import (
	"fmt"
	"time"
)

const (
	// DisplayTimeFormat is the standard time format used across the application
	DisplayTimeFormat = "2006-01-02 15:04:05 MST"
)

// FormatTime formats t in local time, or "never" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(DisplayTimeFormat)
}

// Remaining renders the time left until t, e.g. "1h5m left".
func Remaining(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	if !t.After(now) {
		return "expired"
	}
	diff := t.Sub(now)
	h := int(diff.Hours())
	m := int(diff.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm left", h, m)
	}
	return fmt.Sprintf("%dm left", m)
}
