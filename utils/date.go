package utils

import (
	"fmt"
	"strings"
	"time"
)

var dayLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// DayStart returns the canonical completion marker for t: midnight UTC of the
// calendar day t falls on.
func DayStart(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

// DayMarker parses raw into a canonical day marker. An empty string means the
// current day; anything unparseable is an error so callers can reject it
// instead of tracking a nonsense date.
func DayMarker(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return DayStart(time.Now()), nil
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return DayStart(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// SameDay reports whether a and b fall on the same calendar day (UTC).
func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// StartOfWeek returns midnight UTC of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	d := DayStart(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
