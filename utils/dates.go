// utils/dates.go
package utils

import "time"

// DateLayout is the calendar-date format stored on products and invoices.
const DateLayout = "2006-01-02"

// CalendarDay returns midnight UTC of the date t shows in its own location.
func CalendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(CalendarDay(end).Sub(CalendarDay(start)).Hours() / 24)
}

// DateStamp formats t as a calendar date.
func DateStamp(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a DateLayout date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Timestamp normalises t to UTC at microsecond precision. Datetime columns
// are opened with six fractional digits so the value survives a round trip.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
