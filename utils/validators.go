package utils

import (
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidTimeOfDay checks an HH:MM clock value as supplied by the pickup/return
// time fields.
func IsValidTimeOfDay(value string) bool {
	_, _, ok := parseClock(value)
	return ok
}
