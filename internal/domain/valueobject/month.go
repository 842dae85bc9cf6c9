// Package valueobject contains domain value objects for the wallet system.
package valueobject

import (
	"errors"
	"regexp"
	"time"
)

// MonthKeyLayout is the canonical YYYY-MM layout of a month key.
const MonthKeyLayout = "2006-01"

var monthKeyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ErrMalformedMonthKey is returned when a month key does not match YYYY-MM.
var ErrMalformedMonthKey = errors.New("month must use the YYYY-MM format")

// MonthKey identifies a calendar month bucket, e.g. "2024-11".
type MonthKey struct {
	year  int
	month time.Month
}

// ParseMonthKey parses a YYYY-MM string. Month numbers outside 01-12 are rejected.
func ParseMonthKey(value string) (MonthKey, error) {
	if !monthKeyPattern.MatchString(value) {
		return MonthKey{}, ErrMalformedMonthKey
	}

	t, err := time.Parse(MonthKeyLayout, value)
	if err != nil {
		return MonthKey{}, ErrMalformedMonthKey
	}

	return MonthKey{year: t.Year(), month: t.Month()}, nil
}

// MonthKeyOf returns the UTC calendar month containing t.
func MonthKeyOf(t time.Time) MonthKey {
	utc := t.UTC()
	return MonthKey{year: utc.Year(), month: utc.Month()}
}

// String returns the YYYY-MM form.
func (m MonthKey) String() string {
	return m.Start().Format(MonthKeyLayout)
}

// Label returns the human-readable form, e.g. "November 2024".
func (m MonthKey) Label() string {
	return m.Start().Format("January 2006")
}

// Start returns midnight UTC on the first day of the month.
func (m MonthKey) Start() time.Time {
	return time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
}

// Previous returns the month immediately before m.
func (m MonthKey) Previous() MonthKey {
	return MonthKeyOf(m.Start().AddDate(0, -1, 0))
}

// Before reports whether m is strictly earlier than other.
func (m MonthKey) Before(other MonthKey) bool {
	return m.Start().Before(other.Start())
}

// IsZero reports whether the key was never set.
func (m MonthKey) IsZero() bool {
	return m.year == 0 && m.month == 0
}
