package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	"github.com/Ruidozo/fam-backoffice/entity"
	productpkg "github.com/Ruidozo/fam-backoffice/product"
	recurringpkg "github.com/Ruidozo/fam-backoffice/recurring"
)

type planService struct {
	repo     recurringpkg.Repository
	products productpkg.Repository
	pricing  recurringpkg.PricingStrategy
}

func NewPlanService(repo recurringpkg.Repository, products productpkg.Repository, pricing recurringpkg.PricingStrategy) recurringpkg.Service {
	return &planService{repo: repo, products: products, pricing: pricing}
}

func (s *planService) validate(ctx context.Context, req recurringpkg.UpsertPlanRequest) error {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fmt.Errorf("%w: day_of_week must be 0-6", apperr.ErrValidation)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: end_date before start_date", apperr.ErrValidation)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: plan must have at least one item", apperr.ErrValidation)
	}
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be >= 1", apperr.ErrValidation)
		}
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.GetMany(ctx, ids)
	if err != nil {
		return err
	}
	for _, it := range req.Items {
		p, ok := products[it.ProductID]
		if !ok {
			return fmt.Errorf("%w: product %s not found", apperr.ErrValidation, it.ProductID)
		}
		if !p.Active {
			return fmt.Errorf("%w: product %s is inactive", apperr.ErrValidation, p.SKU)
		}
	}
	return nil
}

func planItems(req recurringpkg.UpsertPlanRequest) []entity.RecurringPlanItem {
	items := make([]entity.RecurringPlanItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.RecurringPlanItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}

func (s *planService) CreatePlan(ctx context.Context, req recurringpkg.UpsertPlanRequest) (*entity.RecurringPlan, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	if req.Active {
		existing, err := s.repo.GetActivePlanForCustomer(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: customer already has an active plan", apperr.ErrConflict)
		}
	}
	p := &entity.RecurringPlan{
		CustomerID:   req.CustomerID,
		DayOfWeek:    req.DayOfWeek,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Active:       req.Active,
		PrepaidMonth: req.PrepaidMonth,
		Items:        planItems(req),
	}
	return s.repo.CreatePlan(ctx, p)
}

func (s *planService) UpdatePlan(ctx context.Context, id uuid.UUID, req recurringpkg.UpsertPlanRequest) (*entity.RecurringPlan, error) {
	p, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: plan %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	if req.Active {
		existing, err := s.repo.GetActivePlanForCustomer(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: customer already has an active plan", apperr.ErrConflict)
		}
	}
	p.CustomerID = req.CustomerID
	p.DayOfWeek = req.DayOfWeek
	p.StartDate = req.StartDate
	p.EndDate = req.EndDate
	p.Active = req.Active
	p.PrepaidMonth = req.PrepaidMonth
	return s.repo.UpdatePlan(ctx, p, planItems(req))
}

func (s *planService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetPlan(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: plan %s", apperr.ErrNotFound, id)
		}
		return err
	}
	// Orders generated from the plan are history and survive the delete.
	return s.repo.DeletePlan(ctx, id)
}

func (s *planService) GetPlan(ctx context.Context, id uuid.UUID) (*entity.RecurringPlan, error) {
	p, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: plan %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return p, nil
}

func (s *planService) ListPlans(ctx context.Context, customerID *uuid.UUID) ([]entity.RecurringPlan, error) {
	return s.repo.ListPlans(ctx, customerID)
}

func (s *planService) GenerateMonthlyPayment(ctx context.Context, planID uuid.UUID, month, year int) (*entity.Order, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be 1-12", apperr.ErrValidation)
	}
	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: plan %s", apperr.ErrNotFound, planID)
		}
		return nil, err
	}
	if !plan.Active {
		return nil, fmt.Errorf("%w: plan is not active", apperr.ErrValidation)
	}
	if len(plan.Items) == 0 {
		return nil, fmt.Errorf("%w: plan has no items", apperr.ErrValidation)
	}
	dates := deliveryDates(plan, month, year)
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: plan has no deliveries in %d-%02d", apperr.ErrValidation, year, month)
	}
	existing, err := s.repo.FindMonthlyPayment(ctx, planID, month, year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: monthly payment for %d-%02d already exists", apperr.ErrConflict, year, month)
	}

	ids := make([]uuid.UUID, 0, len(plan.Items))
	for _, it := range plan.Items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.products.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	weeks := len(dates)
	items := make([]entity.OrderItem, 0, len(plan.Items))
	for _, it := range plan.Items {
		p, ok := products[it.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: product %s not found", apperr.ErrValidation, it.ProductID)
		}
		items = append(items, entity.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity * weeks,
			UnitPrice: p.UnitPrice,
		})
	}

	first := dates[0]
	o := &entity.Order{
		CustomerID:       plan.CustomerID,
		DeliveryDate:     &first,
		Status:           entity.OrderEncomendado,
		Total:            s.pricing.MonthlyTotal(plan.Items, products, weeks),
		Notes:            fmt.Sprintf("Pagamento Mensal - %s %d (%d entregas)", monthNamePT(month), year, weeks),
		RecurringPlanID:  &plan.ID,
		IsMonthlyPayment: true,
		Items:            items,
	}
	return s.repo.CreateOrder(ctx, o)
}

func (s *planService) GenerateDeliveries(ctx context.Context, planID uuid.UUID, month, year int) ([]entity.Order, error) {
	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: plan %s", apperr.ErrNotFound, planID)
		}
		return nil, err
	}
	if !plan.Active || len(plan.Items) == 0 {
		return nil, nil
	}
	dates := deliveryDates(plan, month, year)
	if len(dates) <= 1 {
		// First occurrence is the payment order's delivery, nothing to add.
		return nil, nil
	}
	dates = dates[1:]

	generated, err := s.repo.ListGeneratedDates(ctx, planID)
	if err != nil {
		return nil, err
	}

	var orders []*entity.Order
	for _, d := range dates {
		d := d
		if _, ok := generated[d.Format("2006-01-02")]; ok {
			continue
		}
		items := make([]entity.OrderItem, 0, len(plan.Items))
		for _, it := range plan.Items {
			// Money was collected on the monthly payment order; deliveries
			// carry zero-priced items so totals never double count.
			items = append(items, entity.OrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: decimal.Zero,
			})
		}
		orders = append(orders, &entity.Order{
			CustomerID:      plan.CustomerID,
			DeliveryDate:    &d,
			Status:          entity.OrderPago,
			Total:           decimal.Zero,
			Notes:           "Gerado automaticamente da subscrição mensal",
			RecurringPlanID: &plan.ID,
			IsAutoGenerated: true,
			Items:           items,
		})
	}
	if len(orders) == 0 {
		return nil, nil
	}
	if err := s.repo.CreateGeneratedOrders(ctx, orders); err != nil {
		return nil, err
	}
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, *o)
	}
	return out, nil
}

func (s *planService) OnMonthlyPaymentConfirmed(ctx context.Context, o *entity.Order) error {
	if o.RecurringPlanID == nil || o.DeliveryDate == nil {
		return nil
	}
	_, err := s.GenerateDeliveries(ctx, *o.RecurringPlanID, int(o.DeliveryDate.Month()), o.DeliveryDate.Year())
	return err
}

// mondayWeekday maps time.Weekday (Sunday=0) to the plan convention
// (Monday=0 .. Sunday=6).
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// deliveryDates walks the month day by day and collects every occurrence of
// the plan's weekday that falls inside the plan window.
func deliveryDates(plan *entity.RecurringPlan, month, year int) []time.Time {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	start := dateOnly(plan.StartDate)

	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if mondayWeekday(d) != plan.DayOfWeek {
			continue
		}
		if d.Before(start) {
			continue
		}
		if plan.EndDate != nil && d.After(dateOnly(*plan.EndDate)) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// dateOnly drops the time and location so date columns compare cleanly.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var ptMonths = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func monthNamePT(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", month)
	}
	return ptMonths[month-1]
}
