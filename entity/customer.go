package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buyer, optionally flagged as a monthly subscription customer.
// A subscription customer owns at most one active RecurringPlan at a time.
type Customer struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name           string    `json:"name" gorm:"type:text;not null"`
	Email          string    `json:"email" gorm:"type:text"`
	Phone          string    `json:"phone" gorm:"type:text"`
	Address        string    `json:"address" gorm:"type:text"`
	PickupLocation string    `json:"pickup_location" gorm:"type:text"`
	IsSubscription bool      `json:"is_subscription" gorm:"default:false;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
