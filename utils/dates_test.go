package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", MonthKey(time.Date(2024, 3, 15, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", MonthKey(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-03-05", DateKey(time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC)))
}

func TestValidMonthKey(t *testing.T) {
	assert.True(t, ValidMonthKey("2024-03"))
	assert.True(t, ValidMonthKey("1999-12"))
	assert.False(t, ValidMonthKey("2024-13"))
	assert.False(t, ValidMonthKey("2024-3"))
	assert.False(t, ValidMonthKey("march"))
	assert.False(t, ValidMonthKey(""))
	assert.False(t, ValidMonthKey("2024-03-01"))
}

func TestDaysBetween(t *testing.T) {
	loc := time.UTC
	assert.Equal(t, 0, DaysBetween(
		time.Date(2024, 3, 5, 1, 0, 0, 0, loc),
		time.Date(2024, 3, 5, 23, 0, 0, 0, loc),
	))
	assert.Equal(t, 3, DaysBetween(
		time.Date(2024, 3, 5, 23, 0, 0, 0, loc),
		time.Date(2024, 3, 8, 1, 0, 0, 0, loc),
	))
	assert.Equal(t, -1, DaysBetween(
		time.Date(2024, 3, 5, 0, 0, 0, 0, loc),
		time.Date(2024, 3, 4, 0, 0, 0, 0, loc),
	))
}
