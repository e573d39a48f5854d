package dateutil

import (
	"fmt"
	"time"
)

// KeyLayout is the zero-padded date key used by holiday tables
const KeyLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfMonth returns the first day of the month at 00:00:00
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	return StartOfDay(date.AddDate(0, 0, -MondayIndex(date.Weekday())))
}

// MondayIndex converts Go's Sunday=0 weekday to a Monday=0..Sunday=6 index
func MondayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

// DaysInMonth returns the number of days in the month (day 0 of the next month)
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns the number of calendar days from a to b.
// Wall-clock dates are compared as UTC midnights in Unix seconds, so neither
// DST transitions nor the ~292 year range of time.Duration skew the count.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int((ub.Unix() - ua.Unix()) / secondsPerDay)
}

// IsSunday returns true if the date falls on a Sunday
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DateKey formats the date as YYYY-MM-DD
func DateKey(date time.Time) string {
	return date.Format(KeyLayout)
}

// ParseDate parses a YYYY-MM-DD (or DD.MM.YYYY) string as a local wall-clock date
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		KeyLayout,
		"02.01.2006",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
