package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	FinanceIncome  = "income"
	FinanceExpense = "expense"
)

// FinanceRecord is one income or expense ledger row. Amount is always the
// unsigned magnitude; the direction is carried by Type.
type FinanceRecord struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	Date   string  `gorm:"not null;index" json:"date"` // YYYY-MM-DD
	Type   string  `gorm:"type:varchar(10);not null" json:"type"`
	Title  string  `gorm:"not null" json:"title"`
	Amount float64 `gorm:"type:decimal(12,2);not null" json:"amount"`
	Memo   string  `gorm:"type:text" json:"memo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
