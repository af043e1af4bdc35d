package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	customerpkg "github.com/Ruidozo/fam-backoffice/customer"
	"github.com/Ruidozo/fam-backoffice/entity"
)

type GormCustomerRepo struct{ db *gorm.DB }

func NewGormCustomerRepo(db *gorm.DB) customerpkg.Repository { return &GormCustomerRepo{db: db} }

func (r *GormCustomerRepo) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	var list []entity.Customer
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormCustomerRepo) Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *GormCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *GormCustomerRepo) CountOrders(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).Where("customer_id = ?", id).Count(&count).Error
	return count, err
}
