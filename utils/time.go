// Package utils provides utility functions for the application.
package utils

import (
	"time"
)

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// EpochMillisToUTC converts an epoch-milliseconds timestamp to a UTC time
func EpochMillisToUTC(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// YearOf returns the calendar year of the given time, resolved in UTC
func YearOf(t time.Time) int {
	return t.UTC().Year()
}
