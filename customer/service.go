package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

type UpsertCustomerRequest struct {
	Name           string
	Email          string
	Phone          string
	Address        string
	PickupLocation string
	IsSubscription bool
}

type Service interface {
	Create(ctx context.Context, req UpsertCustomerRequest) (*entity.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req UpsertCustomerRequest) (*entity.Customer, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
	// Delete refuses while orders still reference the customer.
	Delete(ctx context.Context, id uuid.UUID) error
}
