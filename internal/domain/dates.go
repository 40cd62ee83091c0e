package domain

import "time"

// DateOnly truncates a timestamp to its calendar date at midnight UTC.
// All interval math in the timeline operates on calendar dates; time-of-day
// is ignored.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
// Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// MinDate returns the earlier of two dates.
func MinDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxDate returns the later of two dates.
func MaxDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
