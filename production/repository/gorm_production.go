package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/entity"
	productionpkg "github.com/Ruidozo/fam-backoffice/production"
)

type GormProductionRepo struct{ db *gorm.DB }

func NewGormProductionRepo(db *gorm.DB) productionpkg.Repository {
	return &GormProductionRepo{db: db}
}

func (r *GormProductionRepo) QuantitiesByDate(ctx context.Context, date time.Time) ([]productionpkg.Row, error) {
	var rows []productionpkg.Row
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Select("products.id AS product_id, products.sku, products.name, SUM(order_items.quantity) AS quantity, products.batch_size").
		Joins("JOIN order_items ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.delivery_date = ?", date.Format("2006-01-02")).
		Where("orders.status <> ?", entity.OrderDelivered).
		Group("products.id, products.sku, products.name, products.batch_size").
		Order("products.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
