// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from start to end, each read in its own
// location. Days shortened or stretched by DST still count as one.
func DaysBetween(start, end time.Time) int {
	return int(calendarDay(end).Sub(calendarDay(start)) / (24 * time.Hour))
}

func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NextDays returns the start of today and the following n-1 days.
func NextDays(from time.Time, n int) []time.Time {
	days := make([]time.Time, 0, n)
	start := BeginningOfDay(from)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}
