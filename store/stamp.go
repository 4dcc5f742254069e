package store

import (
	"time"

	"esthecrm-backend/models"
)

// stamp fills creation and update timestamps for backends that do not get
// them from the database layer (CSV, memory). GORM handles its own.
func stamp[T any](rec *T, created bool) {
	now := time.Now()
	switch r := any(rec).(type) {
	case *models.Customer:
		stampTimes(&r.CreatedAt, &r.UpdatedAt, now, created)
	case *models.Product:
		stampTimes(&r.CreatedAt, &r.UpdatedAt, now, created)
	case *models.Purchase:
		stampTimes(&r.CreatedAt, &r.UpdatedAt, now, created)
	case *models.Appointment:
		stampTimes(&r.CreatedAt, &r.UpdatedAt, now, created)
	case *models.FinanceRecord:
		stampTimes(&r.CreatedAt, &r.UpdatedAt, now, created)
	}
}

func stampTimes(createdAt, updatedAt *time.Time, now time.Time, created bool) {
	if created && createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
