package entity

import (
	"time"

	"github.com/google/uuid"
)

// Settings is a process-wide singleton row. Days are Monday-based (0=Monday).
// ProductionDay is when the kitchen bakes; the cutoff is the weekly deadline
// after which new orders are late for the next production cycle.
type Settings struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ProductionDay     int       `json:"production_day" gorm:"not null;default:2"`
	OrderCutoffDay    int       `json:"order_cutoff_day" gorm:"not null;default:6"`
	OrderCutoffHour   int       `json:"order_cutoff_hour" gorm:"not null;default:23"`
	OrderCutoffMinute int       `json:"order_cutoff_minute" gorm:"not null;default:59"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
