package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"esthecrm-backend/models"
)

// GormStore is the hosted-database backend, one table per entity.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the five entity tables.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Purchase{},
		&models.Appointment{},
		&models.FinanceRecord{},
	)
}

func (s *GormStore) Customers() Repository[models.Customer] {
	return &gormTable[models.Customer]{db: s.db}
}

func (s *GormStore) Products() Repository[models.Product] {
	return &gormTable[models.Product]{db: s.db}
}

func (s *GormStore) Purchases() Repository[models.Purchase] {
	return &gormTable[models.Purchase]{db: s.db}
}

func (s *GormStore) Appointments() Repository[models.Appointment] {
	return &gormTable[models.Appointment]{db: s.db}
}

func (s *GormStore) Finance() Repository[models.FinanceRecord] {
	return &gormTable[models.FinanceRecord]{db: s.db}
}

type gormTable[T any] struct {
	db *gorm.DB
}

func (t *gormTable[T]) Create(ctx context.Context, rec *T) error {
	return t.db.WithContext(ctx).Create(rec).Error
}

func (t *gormTable[T]) List(ctx context.Context) ([]T, error) {
	var recs []T
	if err := t.db.WithContext(ctx).Order("created_at").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (t *gormTable[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	var rec T
	err := t.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (t *gormTable[T]) Update(ctx context.Context, rec *T) error {
	res := t.db.WithContext(ctx).Model(rec).Select("*").Omit("created_at").Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (t *gormTable[T]) Delete(ctx context.Context, id uuid.UUID) error {
	res := t.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
