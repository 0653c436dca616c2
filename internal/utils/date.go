package utils

import (
	"time"

	"github.com/solidstreak/streak-cli/internal/constants"
)

// DateToLocalString formats t as a zero-padded YYYY-MM-DD string using the
// local calendar day of t's location.
func DateToLocalString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// truncateToDay drops the time-of-day component, keeping t's location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay reports whether a and b fall on the same local calendar day.
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsBeforeDay reports whether a's calendar day is strictly before b's. Two
// timestamps on the same day are never ordered relative to each other.
func IsBeforeDay(a, b time.Time) bool {
	return truncateToDay(a).Before(truncateToDay(b))
}

// IsAfterDay reports whether a's calendar day is strictly after b's.
func IsAfterDay(a, b time.Time) bool {
	return truncateToDay(a).After(truncateToDay(b))
}
