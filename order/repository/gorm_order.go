package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/entity"
	orderpkg "github.com/Ruidozo/fam-backoffice/order"
)

type GormOrderRepo struct{ db *gorm.DB }

func NewGormOrderRepo(db *gorm.DB) orderpkg.Repository { return &GormOrderRepo{db: db} }

func (r *GormOrderRepo) Create(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		hist := &entity.OrderStatusHistory{OrderID: o.ID, Status: o.Status}
		return tx.Create(hist).Error
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *GormOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var o entity.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormOrderRepo) List(ctx context.Context, status *entity.OrderStatus, customerID *uuid.UUID) ([]entity.Order, error) {
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}
	var list []entity.Order
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormOrderRepo) Update(ctx context.Context, o *entity.Order, items []entity.OrderItem) (*entity.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", o.ID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		o.Items = nil // replaced above; avoid gorm upserting stale associations
		return tx.Omit("Items").Save(o).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, o.ID)
}

func (r *GormOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
			return err
		}
		hist := &entity.OrderStatusHistory{OrderID: id, Status: status}
		return tx.Create(hist).Error
	})
}

func (r *GormOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// History and items first to satisfy FK constraints.
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderStatusHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, "id = ?", id).Error
	})
}

func (r *GormOrderRepo) History(ctx context.Context, orderID uuid.UUID) ([]entity.OrderStatusHistory, error) {
	var entries []entity.OrderStatusHistory
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("changed_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *GormOrderRepo) AppendHistory(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.OrderStatusHistory, error) {
	entry := &entity.OrderStatusHistory{OrderID: orderID, Status: status}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
