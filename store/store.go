package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"esthecrm-backend/models"
)

// ErrNotFound is returned when a record id does not exist in the backend.
var ErrNotFound = errors.New("record not found")

// Repository is the per-entity contract every backend implements. The
// aggregators only ever need List; the controllers use the full set.
type Repository[T any] interface {
	Create(ctx context.Context, rec *T) error
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store hands out the five entity repositories. Implementations: Postgres
// via GORM, flat CSV files, and in-memory. Callers receive a Store instead
// of reaching for a package-level connection.
type Store interface {
	Customers() Repository[models.Customer]
	Products() Repository[models.Product]
	Purchases() Repository[models.Purchase]
	Appointments() Repository[models.Appointment]
	Finance() Repository[models.FinanceRecord]
}
