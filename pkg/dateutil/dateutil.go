package dateutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned for zero or unparseable dates
var ErrInvalidDate = errors.New("invalid date")

// ISOLayout is the calendar date layout used for cell identity
const ISOLayout = "2006-01-02"

// StartOfDay returns midnight UTC of the calendar day date falls on in its own zone.
// Days are civil dates, so zones whose DST change skips local midnight
// cannot shift the day.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// FirstOfMonth returns midnight UTC of the first day of the date's month
func FirstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddDays returns midnight UTC of the day n calendar days after date
func AddDays(date time.Time, n int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day()+n, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts date by n whole months, clamping the day to the target month length
func AddMonths(date time.Time, n int) time.Time {
	first := time.Date(date.Year(), date.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := date.Day()
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year has a February 29th
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// IsSameMonth returns true if two dates share calendar month and year
func IsSameMonth(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month()
}

// ISODate formats date as YYYY-MM-DD
func ISODate(date time.Time) string {
	return date.Format(ISOLayout)
}

// Validate rejects the zero time, which stands in for an invalid date
func Validate(date time.Time) error {
	if date.IsZero() {
		return fmt.Errorf("%w: zero time", ErrInvalidDate)
	}
	return nil
}

// ParseDate parses date string in various formats.
// Strings without an offset are read as UTC civil dates.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		ISOLayout,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
}

// Today returns today's local calendar date as midnight UTC
func Today() time.Time {
	return StartOfDay(time.Now())
}
