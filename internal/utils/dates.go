package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the layout used by expense and income records
const DateTimeLayout = "2006-01-02 15:04:05"

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses ISO 8601 style timestamps. The wall clock written in
// the string is kept and any offset is discarded; the result is in UTC.
func ParseDateTime(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSuffix(v, "Z")
	v = strings.TrimSuffix(v, "+00:00")
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return WallClock(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// ParseDateTimeStrict parses exactly the YYYY-MM-DD HH:MM:SS layout
func ParseDateTimeStrict(s string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// TruncateDay drops the time of day and keeps the wall-clock date
func TruncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts t by n calendar months. Days past the end of the target
// month are clamped to its last day (Aug 31 - 6 months = Feb 28).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// MonthKey returns the YYYY-MM prefix of a "YYYY-MM-DD HH:MM:SS" date
func MonthKey(date string) string {
	day, _, _ := strings.Cut(date, " ")
	if len(day) > 7 {
		return day[:7]
	}
	return day
}

// WallClock keeps the calendar fields of t and moves them to UTC
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
