package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esthecrm-backend/models"
)

func TestUpcomingBirthdays(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	customers := []models.Customer{
		{ID: uuid.New(), Name: "today", Phone: "01011112222", BirthDate: "1990-03-10"},
		{ID: uuid.New(), Name: "in-six-days", Phone: "01011113333", BirthDate: "1985-03-16"},
		{ID: uuid.New(), Name: "in-seven-days", Phone: "01011114444", BirthDate: "1985-03-17"},
		{ID: uuid.New(), Name: "already-passed", Phone: "01011115555", BirthDate: "1991-03-01"},
		{ID: uuid.New(), Name: "no-birthdate", Phone: "01011116666"},
		{ID: uuid.New(), Name: "no-phone", BirthDate: "1990-03-11"},
		{ID: uuid.New(), Name: "bad-date", Phone: "01011117777", BirthDate: "March 12"},
	}

	got := UpcomingBirthdays(customers, now, 7)
	require.Len(t, got, 2)
	assert.Equal(t, "today", got[0].Name)
	assert.Equal(t, "in-six-days", got[1].Name)
}

func TestUpcomingBirthdays_YearWrap(t *testing.T) {
	now := time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC)
	customers := []models.Customer{
		{ID: uuid.New(), Name: "new-year", Phone: "01012345678", BirthDate: "2000-01-02"},
	}

	got := UpcomingBirthdays(customers, now, 7)
	require.Len(t, got, 1)
	assert.Equal(t, "new-year", got[0].Name)
}
