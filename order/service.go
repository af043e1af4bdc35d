package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// ItemInput is one order line. UnitPrice overrides the product's current
// price when set; otherwise the current price is snapshotted.
type ItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice *decimal.Decimal
}

type UpsertOrderRequest struct {
	CustomerID   uuid.UUID
	DeliveryDate *time.Time
	Notes        string
	Items        []ItemInput
}

type ListFilter struct {
	Status     *entity.OrderStatus
	CustomerID *uuid.UUID
}

type Service interface {
	Create(ctx context.Context, req UpsertOrderRequest) (*entity.Order, error)
	// Update replaces delivery date, notes and items wholesale and recomputes
	// the total. Status and history are untouched.
	Update(ctx context.Context, id uuid.UUID, req UpsertOrderRequest) (*entity.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, f ListFilter) ([]entity.Order, error)
	// SetStatus appends a history entry and, for monthly payment orders
	// reaching the paid status, fires the payment hook.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// History returns entries ordered by changed_at ascending.
	History(ctx context.Context, id uuid.UUID) ([]entity.OrderStatusHistory, error)
}

// PaymentHook is invoked when a monthly payment order transitions to paid.
// Implementations must be idempotent; SetStatus may be called repeatedly.
type PaymentHook interface {
	OnMonthlyPaymentConfirmed(ctx context.Context, o *entity.Order) error
}

// Notifier receives order lifecycle events for realtime fan-out.
type Notifier interface {
	NotifyOrderEvent(event string, o *entity.Order)
}
