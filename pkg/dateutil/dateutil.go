package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD layout used in output and keys
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// CalendarDay returns midnight UTC of the given calendar date
func CalendarDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatDate formats date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses date string in various formats.
// The result is midnight UTC of the parsed calendar day.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02/01/2006",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z07:00",
	}

	dateStr = strings.TrimSpace(dateStr)
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return CalendarDay(t.Year(), t.Month(), t.Day()), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// ParseYear parses a four-digit Gregorian year (1..9999)
func ParseYear(yearStr string) (int, error) {
	t, err := time.Parse("2006", strings.TrimSpace(yearStr))
	if err != nil || t.Year() < 1 {
		return 0, fmt.Errorf("invalid year: %q", yearStr)
	}
	return t.Year(), nil
}

// ParseMonth parses a month number (1..12)
func ParseMonth(monthStr string) (time.Month, error) {
	m, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil || m < 1 || m > 12 {
		return 0, fmt.Errorf("invalid month: %q", monthStr)
	}
	return time.Month(m), nil
}
