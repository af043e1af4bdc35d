package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	"github.com/Ruidozo/fam-backoffice/entity"
	productpkg "github.com/Ruidozo/fam-backoffice/product"
)

type productService struct {
	repo productpkg.Repository
}

func NewProductService(repo productpkg.Repository) productpkg.Service {
	return &productService{repo: repo}
}

func validate(req productpkg.UpsertProductRequest) error {
	if req.SKU == "" {
		return fmt.Errorf("%w: sku is required", apperr.ErrValidation)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}
	if req.UnitPrice.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: unit_price must be >= 0", apperr.ErrValidation)
	}
	if req.CostPrice != nil && req.CostPrice.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: cost_price must be >= 0", apperr.ErrValidation)
	}
	if req.BatchSize != nil && *req.BatchSize < 1 {
		return fmt.Errorf("%w: batch_size must be >= 1", apperr.ErrValidation)
	}
	return nil
}

func (s *productService) Create(ctx context.Context, req productpkg.UpsertProductRequest) (*entity.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: sku %q already exists", apperr.ErrConflict, req.SKU)
	}
	p := &entity.Product{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		CostPrice:   req.CostPrice,
		BatchSize:   req.BatchSize,
		Active:      req.Active,
	}
	return s.repo.Create(ctx, p)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req productpkg.UpsertProductRequest) (*entity.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	if req.SKU != p.SKU {
		existing, err := s.repo.GetBySKU(ctx, req.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: sku %q already exists", apperr.ErrConflict, req.SKU)
		}
	}
	p.SKU = req.SKU
	p.Name = req.Name
	p.Description = req.Description
	p.UnitPrice = req.UnitPrice
	p.CostPrice = req.CostPrice
	p.BatchSize = req.BatchSize
	p.Active = req.Active
	return s.repo.Update(ctx, p)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

func (s *productService) List(ctx context.Context, active *bool) ([]entity.Product, error) {
	return s.repo.List(ctx, active)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %s", apperr.ErrNotFound, id)
		}
		return err
	}
	referenced, err := s.repo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		// Orders snapshot prices but still point at the product row, so it
		// must survive; deactivate instead of deleting.
		p.Active = false
		_, err := s.repo.Update(ctx, p)
		return err
	}
	return s.repo.Delete(ctx, id)
}
