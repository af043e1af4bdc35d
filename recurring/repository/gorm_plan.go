package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/entity"
	recurringpkg "github.com/Ruidozo/fam-backoffice/recurring"
)

type GormPlanRepo struct{ db *gorm.DB }

func NewGormPlanRepo(db *gorm.DB) recurringpkg.Repository { return &GormPlanRepo{db: db} }

func (r *GormPlanRepo) CreatePlan(ctx context.Context, p *entity.RecurringPlan) (*entity.RecurringPlan, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *GormPlanRepo) GetPlan(ctx context.Context, id uuid.UUID) (*entity.RecurringPlan, error) {
	var p entity.RecurringPlan
	if err := r.db.WithContext(ctx).Preload("Items").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormPlanRepo) ListPlans(ctx context.Context, customerID *uuid.UUID) ([]entity.RecurringPlan, error) {
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if customerID != nil {
		q = q.Where("customer_id = ?", *customerID)
	}
	var list []entity.RecurringPlan
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *GormPlanRepo) UpdatePlan(ctx context.Context, p *entity.RecurringPlan, items []entity.RecurringPlanItem) (*entity.RecurringPlan, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", p.ID).Delete(&entity.RecurringPlanItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].PlanID = p.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		p.Items = nil
		return tx.Omit("Items").Save(p).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetPlan(ctx, p.ID)
}

func (r *GormPlanRepo) DeletePlan(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&entity.RecurringPlanItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.RecurringPlan{}, "id = ?", id).Error
	})
}

func (r *GormPlanRepo) GetActivePlanForCustomer(ctx context.Context, customerID uuid.UUID) (*entity.RecurringPlan, error) {
	var p entity.RecurringPlan
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND active = ?", customerID, true).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *GormPlanRepo) FindMonthlyPayment(ctx context.Context, planID uuid.UUID, month, year int) (*entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).
		Where("recurring_plan_id = ? AND is_monthly_payment = ?", planID, true).
		Where("EXTRACT(MONTH FROM delivery_date) = ? AND EXTRACT(YEAR FROM delivery_date) = ?", month, year).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *GormPlanRepo) CreateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
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

func (r *GormPlanRepo) ListGeneratedDates(ctx context.Context, planID uuid.UUID) (map[string]struct{}, error) {
	var orders []entity.Order
	if err := r.db.WithContext(ctx).
		Select("delivery_date").
		Where("recurring_plan_id = ? AND is_auto_generated = ?", planID, true).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	m := make(map[string]struct{}, len(orders))
	for i := range orders {
		if orders[i].DeliveryDate != nil {
			m[orders[i].DeliveryDate.Format("2006-01-02")] = struct{}{}
		}
	}
	return m, nil
}

func (r *GormPlanRepo) CreateGeneratedOrders(ctx context.Context, orders []*entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			if err := tx.Create(o).Error; err != nil {
				return err
			}
			hist := &entity.OrderStatusHistory{OrderID: o.ID, Status: o.Status}
			if err := tx.Create(hist).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
