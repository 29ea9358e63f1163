package models

import (
	"fmt"
	"time"
)

type WindowSize string

const (
	WindowMinute WindowSize = "minute"
	WindowHour   WindowSize = "hour"
)

func NewWindowSizeFromString(s string) (WindowSize, error) {
	switch WindowSize(s) {
	case WindowMinute, WindowHour:
		return WindowSize(s), nil
	}
	return "", fmt.Errorf("invalid window size: %q", s)
}

func (w WindowSize) Duration() time.Duration {
	switch w {
	case WindowMinute:
		return time.Minute
	case WindowHour:
		return time.Hour
	default:
		panic(fmt.Sprintf("invalid WindowSize: %q", w))
	}
}

// BucketIndex returns floor(epochMs / window length in ms).
func (w WindowSize) BucketIndex(epochMs int64) int64 {
	size := w.Duration().Milliseconds()
	idx := epochMs / size
	if epochMs%size < 0 {
		idx--
	}
	return idx
}

// WindowStart truncates t to the start of its window in UTC.
func (w WindowSize) WindowStart(t time.Time) time.Time {
	return t.UTC().Truncate(w.Duration())
}

// FormatWindowStart renders the window containing t as a compact UTC stamp,
// e.g. 20240501T1205Z for minutes and 20240501T12Z for hours. Stamps sort chronologically.
func (w WindowSize) FormatWindowStart(t time.Time) string {
	layout := "20060102T15Z"
	if w == WindowMinute {
		layout = "20060102T1504Z"
	}
	return w.WindowStart(t).Format(layout)
}
