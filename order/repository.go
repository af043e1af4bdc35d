package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// Repository defines DB operations for orders and their history.
type Repository interface {
	// Create persists the order, its items and the initial history entry in
	// one transaction.
	Create(ctx context.Context, o *entity.Order) (*entity.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, status *entity.OrderStatus, customerID *uuid.UUID) ([]entity.Order, error)

	// Update saves order fields and replaces items atomically.
	Update(ctx context.Context, o *entity.Order, items []entity.OrderItem) (*entity.Order, error)

	// UpdateStatus sets the status and appends a history entry atomically.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// Delete removes history, items and the order in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	History(ctx context.Context, orderID uuid.UUID) ([]entity.OrderStatusHistory, error)
	AppendHistory(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.OrderStatusHistory, error)
}
