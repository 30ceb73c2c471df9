package helpers

import (
	"math"
	"time"
)

// ParseDuration parses a duration string, falling back to a default on error.
func ParseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

// SessionDurationMinutes computes a session's length in whole minutes,
// rounded to the nearest minute and never negative.
func SessionDurationMinutes(login, logout time.Time) int {
	minutes := int(math.Round(logout.Sub(login).Minutes()))
	if minutes < 0 {
		return 0
	}
	return minutes
}
