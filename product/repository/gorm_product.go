package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/entity"
	productpkg "github.com/Ruidozo/fam-backoffice/product"
)

type GormProductRepo struct{ db *gorm.DB }

func NewGormProductRepo(db *gorm.DB) productpkg.Repository { return &GormProductRepo{db: db} }

func (r *GormProductRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.WithContext(ctx).First(&p, "sku = ?", sku).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormProductRepo) List(ctx context.Context, active *bool) ([]entity.Product, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if active != nil {
		q = q.Where("active = ?", *active)
	}
	var list []entity.Product
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormProductRepo) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *GormProductRepo) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.OrderItem{}).Where("product_id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *GormProductRepo) GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Product, error) {
	var list []entity.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	m := make(map[uuid.UUID]entity.Product, len(list))
	for i := range list {
		m[list[i].ID] = list[i]
	}
	return m, nil
}
