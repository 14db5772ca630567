package core

import (
	"fmt"
	"strings"
	"time"
)

// Wire layouts used by the server for dates and month keys.
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Month is a yyyy-MM budget month key.
type Month string

// CurrentMonth returns the month key for the local current time.
func CurrentMonth() Month {
	return Month(time.Now().Format(MonthLayout))
}

// ParseMonth validates and normalizes a yyyy-MM month key.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("parse month %q: %w", s, ErrInvalidMonth)
	}
	return Month(t.Format(MonthLayout)), nil
}

// Validate reports whether the key is a well-formed yyyy-MM month.
func (m Month) Validate() error {
	if _, err := time.Parse(MonthLayout, string(m)); err != nil {
		return fmt.Errorf("month %q: %w", string(m), ErrInvalidMonth)
	}
	return nil
}

// Time returns midnight UTC on the first day of the month.
func (m Month) Time() (time.Time, error) {
	t, err := time.Parse(MonthLayout, string(m))
	if err != nil {
		return time.Time{}, fmt.Errorf("month %q: %w", string(m), ErrInvalidMonth)
	}
	return t, nil
}

// Range returns the first and last calendar day of the month as wire dates.
// The end date is calendar-correct: "2025-06" yields "2025-06-30" and leap
// Februaries yield "-29".
func (m Month) Range() (from, to string, err error) {
	t, err := m.Time()
	if err != nil {
		return "", "", err
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return first.Format(DateLayout), last.Format(DateLayout), nil
}

// ParseDate validates a yyyy-MM-dd wire date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, ErrInvalidDate)
	}
	return t, nil
}

// FormatDate renders a time as a yyyy-MM-dd wire date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
