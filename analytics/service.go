// Package analytics produces the time-windowed rollups behind the dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ruidozo/fam-backoffice/entity"
)

type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type ProductUnits struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	TotalUnits int64     `json:"total_units"`
}

type CustomerRevenue struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type DayStats struct {
	Date    string          `json:"date"`
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

type Dashboard struct {
	TotalOrders    int64             `json:"total_orders"`
	TotalRevenue   decimal.Decimal   `json:"total_revenue"`
	TotalUnits     int64             `json:"total_units"`
	OrdersByStatus []StatusCount     `json:"orders_by_status"`
	TopProducts    []ProductUnits    `json:"top_products"`
	TopCustomers   []CustomerRevenue `json:"top_customers"`
	OrdersByDay    []DayStats        `json:"orders_by_day"`
}

// Repository runs the aggregate queries; cutoff bounds every window.
type Repository interface {
	CountOrdersSince(ctx context.Context, cutoff time.Time) (int64, error)
	RevenueSince(ctx context.Context, cutoff time.Time) (decimal.Decimal, error)
	UnitsSince(ctx context.Context, cutoff time.Time) (int64, error)
	OrdersByStatusSince(ctx context.Context, cutoff time.Time) ([]StatusCount, error)
	TopProductsSince(ctx context.Context, cutoff time.Time, limit int) ([]ProductUnits, error)
	TopCustomersSince(ctx context.Context, cutoff time.Time, limit int) ([]CustomerRevenue, error)
	OrdersByDaySince(ctx context.Context, cutoff time.Time) ([]DayStats, error)
	// CustomersWithoutOrdersSince includes customers with no orders at all.
	CustomersWithoutOrdersSince(ctx context.Context, cutoff time.Time) ([]entity.Customer, error)
}

const topLimit = 10

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Dashboard(ctx context.Context, days int) (*Dashboard, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := s.now().UTC().AddDate(0, 0, -days)

	d := &Dashboard{}
	var err error
	if d.TotalOrders, err = s.repo.CountOrdersSince(ctx, cutoff); err != nil {
		return nil, err
	}
	if d.TotalRevenue, err = s.repo.RevenueSince(ctx, cutoff); err != nil {
		return nil, err
	}
	if d.TotalUnits, err = s.repo.UnitsSince(ctx, cutoff); err != nil {
		return nil, err
	}
	if d.OrdersByStatus, err = s.repo.OrdersByStatusSince(ctx, cutoff); err != nil {
		return nil, err
	}
	if d.TopProducts, err = s.repo.TopProductsSince(ctx, cutoff, topLimit); err != nil {
		return nil, err
	}
	if d.TopCustomers, err = s.repo.TopCustomersSince(ctx, cutoff, topLimit); err != nil {
		return nil, err
	}
	if d.OrdersByDay, err = s.repo.OrdersByDaySince(ctx, cutoff); err != nil {
		return nil, err
	}
	return d, nil
}

// InactiveCustomers lists customers without a single order in the window.
func (s *Service) InactiveCustomers(ctx context.Context, days int) ([]entity.Customer, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := s.now().UTC().AddDate(0, 0, -days)
	return s.repo.CustomersWithoutOrdersSince(ctx, cutoff)
}
