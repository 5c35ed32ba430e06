package domain

import (
	"math"
	"time"
)

// Date is a calendar date with no time-of-day and no timezone.
// Two Dates representing the same calendar day always compare equal,
// regardless of any wall-clock time embedded in the input they came from.
type Date struct {
	year  int
	month time.Month
	day   int
}

// ParseDate parses a complete "YYYY-MM-DD" string into a Date.
// Partial or malformed input returns an error; callers treat that as
// "not yet evaluable" rather than a hard rejection.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// DateOf truncates a time.Time to its calendar date in its own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Time returns the date as midnight UTC. Pinning every date to the same
// instant-of-day in the same zone makes day arithmetic immune to DST and
// timezone drift.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// DaysUntil returns the whole number of calendar days from d to other,
// rounding any fractional span up. Negative when other is earlier.
func (d Date) DaysUntil(other Date) int {
	hours := other.Time().Sub(d.Time()).Hours()
	return int(math.Ceil(hours / 24))
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}
