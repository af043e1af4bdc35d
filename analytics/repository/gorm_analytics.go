package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	analyticspkg "github.com/Ruidozo/fam-backoffice/analytics"
	"github.com/Ruidozo/fam-backoffice/entity"
)

type GormAnalyticsRepo struct{ db *gorm.DB }

func NewGormAnalyticsRepo(db *gorm.DB) analyticspkg.Repository {
	return &GormAnalyticsRepo{db: db}
}

func (r *GormAnalyticsRepo) CountOrdersSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("created_at >= ?", cutoff).
		Count(&count).Error
	return count, err
}

func (r *GormAnalyticsRepo) RevenueSince(ctx context.Context, cutoff time.Time) (decimal.Decimal, error) {
	var revenue decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("SUM(total)").
		Where("created_at >= ?", cutoff).
		Scan(&revenue).Error
	if err != nil || !revenue.Valid {
		return decimal.Zero, err
	}
	return revenue.Decimal, nil
}

func (r *GormAnalyticsRepo) UnitsSince(ctx context.Context, cutoff time.Time) (int64, error) {
	var units *int64
	err := r.db.WithContext(ctx).Model(&entity.OrderItem{}).
		Select("SUM(order_items.quantity)").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ?", cutoff).
		Scan(&units).Error
	if err != nil || units == nil {
		return 0, err
	}
	return *units, nil
}

func (r *GormAnalyticsRepo) OrdersByStatusSince(ctx context.Context, cutoff time.Time) ([]analyticspkg.StatusCount, error) {
	var rows []analyticspkg.StatusCount
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("status, COUNT(id) AS count").
		Where("created_at >= ?", cutoff).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *GormAnalyticsRepo) TopProductsSince(ctx context.Context, cutoff time.Time, limit int) ([]analyticspkg.ProductUnits, error) {
	var rows []analyticspkg.ProductUnits
	err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Select("products.id, products.name, SUM(order_items.quantity) AS total_units").
		Joins("JOIN order_items ON products.id = order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ?", cutoff).
		Group("products.id, products.name").
		Order("SUM(order_items.quantity) DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *GormAnalyticsRepo) TopCustomersSince(ctx context.Context, cutoff time.Time, limit int) ([]analyticspkg.CustomerRevenue, error) {
	var rows []analyticspkg.CustomerRevenue
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Select("customers.id, customers.name, SUM(orders.total) AS total_revenue").
		Joins("JOIN orders ON customers.id = orders.customer_id").
		Where("orders.created_at >= ?", cutoff).
		Group("customers.id, customers.name").
		Order("SUM(orders.total) DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *GormAnalyticsRepo) OrdersByDaySince(ctx context.Context, cutoff time.Time) ([]analyticspkg.DayStats, error) {
	var rows []analyticspkg.DayStats
	err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Select("DATE(created_at)::text AS date, COUNT(id) AS count, COALESCE(SUM(total), 0) AS revenue").
		Where("created_at >= ?", cutoff).
		Group("DATE(created_at)").
		Order("DATE(created_at) ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormAnalyticsRepo) CustomersWithoutOrdersSince(ctx context.Context, cutoff time.Time) ([]entity.Customer, error) {
	var list []entity.Customer
	err := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM orders WHERE orders.customer_id = customers.id AND orders.created_at >= ?)", cutoff).
		Order("name ASC").
		Find(&list).Error
	return list, err
}
