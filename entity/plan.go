package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecurringPlan is a subscription customer's weekly delivery template.
// DayOfWeek is Monday-based: 0=Monday .. 6=Sunday.
type RecurringPlan struct {
	ID           uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID   uuid.UUID           `json:"customer_id" gorm:"type:uuid;index;not null"`
	DayOfWeek    int                 `json:"day_of_week" gorm:"not null"`
	StartDate    time.Time           `json:"start_date" gorm:"type:date;not null"`
	EndDate      *time.Time          `json:"end_date,omitempty" gorm:"type:date"`
	Active       bool                `json:"active" gorm:"default:true;index"`
	PrepaidMonth bool                `json:"prepaid_month" gorm:"default:false"`
	Items        []RecurringPlanItem `json:"items" gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// RecurringPlanItem is one line of the weekly basket.
type RecurringPlanItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	PlanID    uuid.UUID `json:"plan_id" gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;index;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
}
