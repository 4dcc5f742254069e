package models

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`

	Quantity     int     `gorm:"default:1" json:"quantity"`
	PurchaseDate string  `gorm:"not null" json:"purchaseDate"` // YYYY-MM-DD
	TotalPrice   float64 `gorm:"type:decimal(10,2)" json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
