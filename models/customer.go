package models

import (
	"time"

	"github.com/google/uuid"
)

// Skin type categories offered on the customer intake form.
const (
	SkinTypeDry         = "dry"
	SkinTypeOily        = "oily"
	SkinTypeCombination = "combination"
	SkinTypeSensitive   = "sensitive"
	SkinTypeNormal      = "normal"
)

type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Name      string `gorm:"not null" json:"name"`
	Phone     string `gorm:"not null;index" json:"phone"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD, empty when unknown
	SkinType  string `gorm:"type:varchar(20)" json:"skinType"`
	Memo      string `gorm:"type:text" json:"memo"`
	Point     int    `gorm:"default:0" json:"point"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
