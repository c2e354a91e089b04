package utils

import "time"

// DayIntervalUTC returns the half-open interval [start, end) of the UTC
// calendar day containing t. Daily-limit aggregation is always bracketed with
// this interval so "today" does not depend on the ambient system timezone.
func DayIntervalUTC(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}
