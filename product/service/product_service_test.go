package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	"github.com/Ruidozo/fam-backoffice/entity"
	productpkg "github.com/Ruidozo/fam-backoffice/product"
)

type fakeProductRepo struct {
	products   map[uuid.UUID]entity.Product
	referenced map[uuid.UUID]bool
	deleted    []uuid.UUID
}

var _ productpkg.Repository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products:   map[uuid.UUID]entity.Product{},
		referenced: map[uuid.UUID]bool{},
	}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	p.ID = uuid.New()
	f.products[p.ID] = *p
	return p, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List(ctx context.Context, active *bool) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if active != nil && p.Active != *active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	f.products[p.ID] = *p
	return p, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProductRepo) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	return f.referenced[id], nil
}

func (f *fakeProductRepo) GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Product, error) {
	out := map[uuid.UUID]entity.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func validRequest() productpkg.UpsertProductRequest {
	return productpkg.UpsertProductRequest{
		SKU:       "PDC",
		Name:      "Pao de Centeio",
		UnitPrice: decimal.RequireFromString("2.50"),
		Active:    true,
	}
}

func TestCreateProduct(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	p, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "PDC", p.SKU)
	assert.True(t, p.Active)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())

	t.Run("missing sku", func(t *testing.T) {
		req := validRequest()
		req.SKU = ""
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("negative price", func(t *testing.T) {
		req := validRequest()
		req.UnitPrice = decimal.RequireFromString("-1")
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("zero batch size", func(t *testing.T) {
		req := validRequest()
		zero := 0
		req.BatchSize = &zero
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestCreateProductDuplicateSKU(t *testing.T) {
	svc := NewProductService(newFakeProductRepo())
	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateProductSKUConflict(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	first, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	other := validRequest()
	other.SKU = "PDM"
	second, err := svc.Create(context.Background(), other)
	require.NoError(t, err)

	// Taking the first product's SKU conflicts.
	req := validRequest()
	_, err = svc.Update(context.Background(), second.ID, req)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// Keeping its own SKU does not.
	_, err = svc.Update(context.Background(), first.ID, validRequest())
	assert.NoError(t, err)
}

func TestDeleteReferencedProductDeactivates(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	p, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	repo.referenced[p.ID] = true

	require.NoError(t, svc.Delete(context.Background(), p.ID))

	kept, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.False(t, kept.Active)
	assert.Empty(t, repo.deleted)
}

func TestDeleteUnreferencedProductRemoves(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo)
	p, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	assert.Equal(t, []uuid.UUID{p.ID}, repo.deleted)

	err = svc.Delete(context.Background(), p.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
