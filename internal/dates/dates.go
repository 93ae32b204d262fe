// Package dates handles calendar-day arithmetic. Everything is UTC and
// day-granular; local wall-clock time is never consulted beyond deriving
// "today" from now.
package dates

import (
	"errors"
	"regexp"
	"time"
)

const Layout = "2006-01-02"

var (
	ErrInvalidFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDate   = errors.New("invalid date")

	isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Today returns the current UTC calendar day as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format(Layout)
}

// Parse accepts strictly YYYY-MM-DD and returns the UTC-midnight instant.
func Parse(s string) (time.Time, error) {
	if !isoDate.MatchString(s) {
		return time.Time{}, ErrInvalidFormat
	}
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Format truncates an instant to its UTC calendar day.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// AddDays shifts t by n calendar days (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, 0, n)
}

// Midnight normalizes t to UTC midnight of its calendar day.
func Midnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfWeek walks back from t to the most recent weekStartsOn day.
// weekStartsOn = time.Monday gives Monday-based weeks.
func StartOfWeek(t time.Time, weekStartsOn time.Weekday) time.Time {
	day := Midnight(t)
	back := (int(day.Weekday()) - int(weekStartsOn) + 7) % 7
	return AddDays(day, -back)
}
