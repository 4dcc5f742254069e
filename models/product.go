package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProductTypeVoucher = "voucher"
	ProductTypeSingle  = "single"

	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Type        string  `gorm:"type:varchar(20);default:'single'" json:"type"`
	Count       int     `gorm:"default:1" json:"count"` // sessions granted per purchased unit
	Status      string  `gorm:"type:varchar(20);default:'active'" json:"status"`
	Description string  `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UnitCount returns the number of sessions one purchased unit grants.
// A missing or bad stored count falls back to 1.
func (p Product) UnitCount() int {
	if p.Count <= 0 {
		return 1
	}
	return p.Count
}
