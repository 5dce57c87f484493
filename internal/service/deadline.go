package service

import (
	"strings"
	"time"
)

// Layouts accepted for a deadline read out of an announcement.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
}

// DefaultDeadline is the calendar date `days` after postedAt in loc, at midnight.
func DefaultDeadline(postedAt time.Time, loc *time.Location, days int) time.Time {
	local := postedAt.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()+days, 0, 0, 0, 0, loc)
}

// ResolveDeadline uses the extracted value when it parses and falls back to the
// default otherwise. The bool reports whether the extracted value was used.
func ResolveDeadline(raw *string, postedAt time.Time, loc *time.Location, days int) (time.Time, bool) {
	if raw != nil {
		if t, ok := parseDeadline(strings.TrimSpace(*raw), loc); ok {
			return t, true
		}
	}
	return DefaultDeadline(postedAt, loc, days), false
}

func parseDeadline(value string, loc *time.Location) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
