// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// MonthKey renders t as the "YYYY-MM" key used to scope monthly stats.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// DateKey renders t as the "YYYY-MM-DD" prefix used for same-day matching.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ValidMonthKey reports whether s looks like "YYYY-MM".
func ValidMonthKey(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}
