package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// Repository defines DB operations for customers.
type Repository interface {
	Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountOrders(ctx context.Context, id uuid.UUID) (int64, error)
}
