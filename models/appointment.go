package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no-show"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`

	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`
	ProductID  uuid.UUID `gorm:"type:uuid;index;not null" json:"productId"`

	// ISO date-time string, e.g. "2024-03-01T14:00". Kept as text so the
	// date-prefix filters behave the same across every store backend.
	Datetime string `gorm:"not null;index" json:"datetime"`
	Memo     string `gorm:"type:text" json:"memo"`
	Status   string `gorm:"type:varchar(20);default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
