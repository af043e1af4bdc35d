package recurring

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// Repository defines DB operations for plans and the orders they generate.
type Repository interface {
	CreatePlan(ctx context.Context, p *entity.RecurringPlan) (*entity.RecurringPlan, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*entity.RecurringPlan, error)
	ListPlans(ctx context.Context, customerID *uuid.UUID) ([]entity.RecurringPlan, error)
	// UpdatePlan saves plan fields and replaces items atomically.
	UpdatePlan(ctx context.Context, p *entity.RecurringPlan, items []entity.RecurringPlanItem) (*entity.RecurringPlan, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error

	// GetActivePlanForCustomer returns nil, nil when the customer has no
	// active plan.
	GetActivePlanForCustomer(ctx context.Context, customerID uuid.UUID) (*entity.RecurringPlan, error)

	// FindMonthlyPayment returns the plan's monthly payment order for the
	// given period, or nil, nil when none exists.
	FindMonthlyPayment(ctx context.Context, planID uuid.UUID, month, year int) (*entity.Order, error)

	// CreateOrder persists an order plus its initial history entry.
	CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)

	// ListGeneratedDates returns the delivery dates (YYYY-MM-DD) of the
	// plan's already-generated auto deliveries.
	ListGeneratedDates(ctx context.Context, planID uuid.UUID) (map[string]struct{}, error)

	// CreateGeneratedOrders persists the batch (orders + history entries) in
	// a single transaction: all or nothing.
	CreateGeneratedOrders(ctx context.Context, orders []*entity.Order) error
}
