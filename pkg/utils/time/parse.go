// ABOUTME: Time parsing utilities for dates gofeed could not parse itself
// ABOUTME: Handles the non-standard layouts commonly found in RSS/Atom feeds

package time

import (
	"strings"
	"time"
)

// Layouts tried in order after gofeed's own date parser has given up
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 -0700",
	"January 2, 2006",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// It returns the zero time when nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// FirstParsed returns the first non-nil, non-zero parsed time, falling back to
// parsing the raw strings in order. Returns nil when nothing is usable.
func FirstParsed(parsed []*time.Time, raw ...string) *time.Time {
	for _, t := range parsed {
		if t != nil && !t.IsZero() {
			value := *t
			return &value
		}
	}

	for _, s := range raw {
		if t := ParseFlexibleTime(s); !t.IsZero() {
			return &t
		}
	}

	return nil
}
