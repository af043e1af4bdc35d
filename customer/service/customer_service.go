package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	customerpkg "github.com/Ruidozo/fam-backoffice/customer"
	"github.com/Ruidozo/fam-backoffice/entity"
)

type customerService struct {
	repo customerpkg.Repository
}

func NewCustomerService(repo customerpkg.Repository) customerpkg.Service {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req customerpkg.UpsertCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}
	c := &entity.Customer{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		PickupLocation: req.PickupLocation,
		IsSubscription: req.IsSubscription,
	}
	return s.repo.Create(ctx, c)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req customerpkg.UpsertCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrValidation)
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	c.Name = req.Name
	c.Email = req.Email
	c.Phone = req.Phone
	c.Address = req.Address
	c.PickupLocation = req.PickupLocation
	c.IsSubscription = req.IsSubscription
	return s.repo.Update(ctx, c)
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return c, nil
}

func (s *customerService) List(ctx context.Context) ([]entity.Customer, error) {
	return s.repo.List(ctx)
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: customer %s", apperr.ErrNotFound, id)
		}
		return err
	}
	count, err := s.repo.CountOrders(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: customer has %d orders", apperr.ErrConflict, count)
	}
	return s.repo.Delete(ctx, id)
}
