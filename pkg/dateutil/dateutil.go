package dateutil

import (
	"fmt"
	"time"
)

// ISO calendar-date layout used across the engine (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// WeekBeginning returns the Sunday on or before the given date.
// Weeks run Sunday through Saturday.
func WeekBeginning(date time.Time) time.Time {
	daysFromSunday := int(date.Weekday())
	return StartOfDay(date.AddDate(0, 0, -daysFromSunday))
}

// WeekEnding returns the Saturday on or after the given date,
// i.e. the last day of the Sunday-started week containing it.
func WeekEnding(date time.Time) time.Time {
	return WeekBeginning(date).AddDate(0, 0, 6)
}

// WeekOfYear returns the 1-based index of the seven-day block the date
// falls into, counted from January 1 of its own year. January 1-7 is
// week 1, January 8-14 is week 2, and so on regardless of weekday.
func WeekOfYear(date time.Time) int {
	return (date.YearDay()-1)/7 + 1
}

// IsSameWeek returns true if two dates share a Sunday-started week
func IsSameWeek(date1, date2 time.Time) bool {
	return WeekBeginning(date1).Equal(WeekBeginning(date2))
}

// ParseDate parses a calendar date in strict YYYY-MM-DD form at UTC midnight
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(dateLayout)
}
