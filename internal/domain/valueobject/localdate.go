// Package valueobject defines immutable domain value types.
package valueobject

import (
	"fmt"
	"time"
)

// LocalDate is a calendar date with no time or timezone component.
// Observations are keyed by LocalDate strings, so formatting must always
// use the local calendar day and never shift through UTC.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewLocalDate creates a LocalDate from its components, normalizing
// out-of-range values the same way time.Date does.
func NewLocalDate(year int, month time.Month, day int) LocalDate {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// LocalDateOf extracts the calendar date from t in t's own location.
func LocalDateOf(t time.Time) LocalDate {
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseLocalDate parses a canonical YYYY-MM-DD string.
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return LocalDate{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD: %w", s, err)
	}
	return LocalDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// String formats the date as canonical YYYY-MM-DD.
func (d LocalDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns the local midnight of this date in the given location.
func (d LocalDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// AddDays returns the date n calendar days after d (negative n walks backward).
func (d LocalDate) AddDays(n int) LocalDate {
	return NewLocalDate(d.Year, d.Month, d.Day+n)
}

// Before reports whether d is strictly earlier than other.
func (d LocalDate) Before(other LocalDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d LocalDate) After(other LocalDate) bool {
	return other.Before(d)
}

// Equal reports whether d and other are the same calendar day.
func (d LocalDate) Equal(other LocalDate) bool {
	return d == other
}

// InMonth reports whether the date falls in the given calendar month.
func (d LocalDate) InMonth(year int, month time.Month) bool {
	return d.Year == year && d.Month == month
}

// PreviousMonth returns the calendar month preceding (year, month),
// rolling the year back at January.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}
