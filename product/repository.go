package product

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// Repository defines DB operations for the catalog.
type Repository interface {
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetBySKU returns nil, nil when no product carries the SKU.
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context, active *bool) ([]entity.Product, error)
	Update(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// IsReferenced reports whether any order item points at the product.
	IsReferenced(ctx context.Context, id uuid.UUID) (bool, error)
	// GetMany fetches products by id, keyed by id. Missing ids are absent
	// from the map, not an error.
	GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Product, error)
}
