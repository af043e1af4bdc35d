package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

type PlanItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

type UpsertPlanRequest struct {
	CustomerID   uuid.UUID
	DayOfWeek    int // 0=Monday .. 6=Sunday
	StartDate    time.Time
	EndDate      *time.Time
	Active       bool
	PrepaidMonth bool
	Items        []PlanItemInput
}

type Service interface {
	CreatePlan(ctx context.Context, req UpsertPlanRequest) (*entity.RecurringPlan, error)
	// UpdatePlan replaces the template; orders already generated from the old
	// template are never touched.
	UpdatePlan(ctx context.Context, id uuid.UUID, req UpsertPlanRequest) (*entity.RecurringPlan, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
	GetPlan(ctx context.Context, id uuid.UUID) (*entity.RecurringPlan, error)
	ListPlans(ctx context.Context, customerID *uuid.UUID) ([]entity.RecurringPlan, error)

	// GenerateMonthlyPayment creates the single order representing the
	// month's subscription fee. Its delivery date is the first qualifying
	// weekday of the month; its total comes from the pricing strategy.
	GenerateMonthlyPayment(ctx context.Context, planID uuid.UUID, month, year int) (*entity.Order, error)

	// GenerateDeliveries materializes the remaining weekly deliveries of the
	// month (the first occurrence belongs to the payment order). Idempotent
	// per plan and delivery date; safe to call repeatedly.
	GenerateDeliveries(ctx context.Context, planID uuid.UUID, month, year int) ([]entity.Order, error)

	// OnMonthlyPaymentConfirmed satisfies order.PaymentHook.
	OnMonthlyPaymentConfirmed(ctx context.Context, o *entity.Order) error
}
