package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/entity"
	productpkg "github.com/Ruidozo/fam-backoffice/product"
)

func gormNotFound() error { return gorm.ErrRecordNotFound }

// fakeProductRepo backs the catalog lookups the plan service performs.
type fakeProductRepo struct {
	products map[uuid.UUID]entity.Product
}

var _ productpkg.Repository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: map[uuid.UUID]entity.Product{}}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) add(p entity.Product) { f.products[p.ID] = p }

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
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
	return nil
}

func (f *fakeProductRepo) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, nil
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
