package utils

import (
	"fmt"
	"time"

	"github.com/akarpova/trackly/internal/constants"
)

// Today returns the current calendar day at midnight, local time.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ParseDay parses a date string (YYYY-MM-DD) into a local midnight time.
func ParseDay(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return t, nil
}

// ParseDayOrToday parses a date string, defaulting to today when empty.
func ParseDayOrToday(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return Today(), nil
	}
	return ParseDay(dateStr)
}

// FormatDay renders a day in the standard date format.
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}
