package utils

import (
	"strconv"
	"strings"
	"time"
)

// ParseDateParts builds a date from the separate year/month/day form fields.
// Returns false when any part is missing or not numeric.
func ParseDateParts(year, month, day string) (time.Time, bool) {
	if year == "" || month == "" || day == "" {
		return time.Time{}, false
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return time.Time{}, false
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return time.Time{}, false
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return time.Time{}, false
	}

	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}

	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), true
}

// WithClockTime merges an HH:MM field into a date. The date is returned
// unchanged when the clock value is empty or malformed.
func WithClockTime(date time.Time, clock string) time.Time {
	hours, minutes, ok := parseClock(clock)
	if !ok {
		return date
	}

	return time.Date(date.Year(), date.Month(), date.Day(), hours, minutes, 0, 0, date.Location())
}

func parseClock(clock string) (hours, minutes int, ok bool) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minutes, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, 0, false
	}

	return hours, minutes, true
}
