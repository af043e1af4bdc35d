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
	orderpkg "github.com/Ruidozo/fam-backoffice/order"
	productpkg "github.com/Ruidozo/fam-backoffice/product"
)

type OrderService struct {
	repo     orderpkg.Repository
	products productpkg.Repository
	hook     orderpkg.PaymentHook
	notifier orderpkg.Notifier
}

func NewOrderService(repo orderpkg.Repository, products productpkg.Repository) *OrderService {
	return &OrderService{repo: repo, products: products}
}

// WithPaymentHook wires the recurring engine's confirmation hook; set at
// startup to avoid an import cycle between order and recurring.
func (s *OrderService) WithPaymentHook(h orderpkg.PaymentHook) *OrderService {
	s.hook = h
	return s
}

// WithNotifier wires realtime fan-out of order events.
func (s *OrderService) WithNotifier(n orderpkg.Notifier) *OrderService {
	s.notifier = n
	return s
}

// buildItems validates item inputs against the catalog and snapshots unit
// prices, returning the item rows and the order total.
func (s *OrderService) buildItems(ctx context.Context, inputs []orderpkg.ItemInput) ([]entity.OrderItem, decimal.Decimal, error) {
	if len(inputs) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: order must have at least one item", apperr.ErrValidation)
	}
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, decimal.Zero, fmt.Errorf("%w: quantity must be >= 1", apperr.ErrValidation)
		}
		ids = append(ids, in.ProductID)
	}
	products, err := s.products.GetMany(ctx, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		p, ok := products[in.ProductID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: product %s not found", apperr.ErrValidation, in.ProductID)
		}
		if !p.Active {
			return nil, decimal.Zero, fmt.Errorf("%w: product %s is inactive", apperr.ErrValidation, p.SKU)
		}
		price := p.UnitPrice
		if in.UnitPrice != nil {
			price = *in.UnitPrice
		}
		if price.LessThan(decimal.Zero) {
			return nil, decimal.Zero, fmt.Errorf("%w: unit_price must be >= 0", apperr.ErrValidation)
		}
		items = append(items, entity.OrderItem{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			UnitPrice: price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(in.Quantity))))
	}
	return items, total, nil
}

func (s *OrderService) Create(ctx context.Context, req orderpkg.UpsertOrderRequest) (*entity.Order, error) {
	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	o := &entity.Order{
		CustomerID:   req.CustomerID,
		DeliveryDate: req.DeliveryDate,
		Status:       entity.OrderEncomendado,
		Total:        total,
		Notes:        req.Notes,
		Items:        items,
	}
	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.NotifyOrderEvent("order.created", created)
	}
	return created, nil
}

func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req orderpkg.UpsertOrderRequest) (*entity.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	items, total, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	o.CustomerID = req.CustomerID
	o.DeliveryDate = req.DeliveryDate
	o.Notes = req.Notes
	o.Total = total
	updated, err := s.repo.Update(ctx, o, items)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.NotifyOrderEvent("order.updated", updated)
	}
	return updated, nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(ctx context.Context, f orderpkg.ListFilter) ([]entity.Order, error) {
	return s.repo.List(ctx, f.Status, f.CustomerID)
}

func (s *OrderService) SetStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrValidation, status)
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	// Transitions are unrestricted; the UI selects any status directly.
	// Every change lands in history regardless of direction.
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	if status == entity.OrderPago && o.IsMonthlyPayment && s.hook != nil {
		if err := s.hook.OnMonthlyPaymentConfirmed(ctx, o); err != nil {
			return nil, fmt.Errorf("generate deliveries for order %s: %w", id, err)
		}
	}
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		s.notifier.NotifyOrderEvent("order.status_changed", updated)
	}
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order %s", apperr.ErrNotFound, id)
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.notifier != nil {
		s.notifier.NotifyOrderEvent("order.deleted", o)
	}
	return nil
}

func (s *OrderService) History(ctx context.Context, id uuid.UUID) ([]entity.OrderStatusHistory, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", apperr.ErrNotFound, id)
		}
		return nil, err
	}
	entries, err := s.repo.History(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		// Orders created before history tracking get a backfilled entry
		// carrying the current status.
		entry, err := s.repo.AppendHistory(ctx, id, o.Status)
		if err != nil {
			return nil, err
		}
		entries = []entity.OrderStatusHistory{*entry}
	}
	return entries, nil
}
