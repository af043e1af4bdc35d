package product

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// UpsertProductRequest carries the full product payload; create and update
// both replace every field.
type UpsertProductRequest struct {
	SKU         string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	CostPrice   *decimal.Decimal
	BatchSize   *int
	Active      bool
}

type Service interface {
	Create(ctx context.Context, req UpsertProductRequest) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, req UpsertProductRequest) (*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// List returns all products; active filters when non-nil.
	List(ctx context.Context, active *bool) ([]entity.Product, error)
	// Delete hard-deletes an unreferenced product and soft-deactivates one
	// that order items still reference.
	Delete(ctx context.Context, id uuid.UUID) error
}
