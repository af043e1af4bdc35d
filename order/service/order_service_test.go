package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	"github.com/Ruidozo/fam-backoffice/entity"
	orderpkg "github.com/Ruidozo/fam-backoffice/order"
	productpkg "github.com/Ruidozo/fam-backoffice/product"
)

type fakeOrderRepo struct {
	orders  map[uuid.UUID]*entity.Order
	history map[uuid.UUID][]entity.OrderStatusHistory
}

var _ orderpkg.Repository = (*fakeOrderRepo)(nil)

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:  map[uuid.UUID]*entity.Order{},
		history: map[uuid.UUID][]entity.OrderStatusHistory{},
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	o.ID = uuid.New()
	f.orders[o.ID] = o
	f.history[o.ID] = []entity.OrderStatusHistory{{OrderID: o.ID, Status: o.Status, ChangedAt: time.Now()}}
	return o, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, status *entity.OrderStatus, customerID *uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if status != nil && o.Status != *status {
			continue
		}
		if customerID != nil && o.CustomerID != *customerID {
			continue
		}
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *entity.Order, items []entity.OrderItem) (*entity.Order, error) {
	o.Items = items
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	f.history[id] = append(f.history[id], entity.OrderStatusHistory{OrderID: id, Status: status, ChangedAt: time.Now()})
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.orders, id)
	delete(f.history, id)
	return nil
}

func (f *fakeOrderRepo) History(ctx context.Context, orderID uuid.UUID) ([]entity.OrderStatusHistory, error) {
	return f.history[orderID], nil
}

func (f *fakeOrderRepo) AppendHistory(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.OrderStatusHistory, error) {
	entry := entity.OrderStatusHistory{ID: uuid.New(), OrderID: orderID, Status: status, ChangedAt: time.Now()}
	f.history[orderID] = append(f.history[orderID], entry)
	return &entry, nil
}

type fakeProducts struct {
	products map[uuid.UUID]entity.Product
}

var _ productpkg.Repository = (*fakeProducts)(nil)

func (f *fakeProducts) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (f *fakeProducts) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f *fakeProducts) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeProducts) List(ctx context.Context, active *bool) ([]entity.Product, error) {
	return nil, nil
}

func (f *fakeProducts) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (f *fakeProducts) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeProducts) IsReferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeProducts) GetMany(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Product, error) {
	out := map[uuid.UUID]entity.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

type fakeHook struct {
	calls []uuid.UUID
}

func (f *fakeHook) OnMonthlyPaymentConfirmed(ctx context.Context, o *entity.Order) error {
	f.calls = append(f.calls, o.ID)
	return nil
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) NotifyOrderEvent(event string, o *entity.Order) {
	f.events = append(f.events, event)
}

func orderFixture(t *testing.T) (*fakeOrderRepo, *OrderService, uuid.UUID) {
	t.Helper()
	productID := uuid.New()
	products := &fakeProducts{products: map[uuid.UUID]entity.Product{
		productID: {ID: productID, SKU: "PDC", Name: "Pao de Centeio", UnitPrice: decimal.RequireFromString("2.50"), Active: true},
	}}
	repo := newFakeOrderRepo()
	return repo, NewOrderService(repo, products), productID
}

func TestCreateOrderSnapshotsPricesAndTotal(t *testing.T) {
	_, svc, productID := orderFixture(t)

	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderEncomendado, o.Status)
	require.Len(t, o.Items, 1)
	assert.True(t, o.Items[0].UnitPrice.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, o.Total.Equal(decimal.RequireFromString("7.50")), "got %s", o.Total)
}

func TestCreateOrderPriceOverride(t *testing.T) {
	_, svc, productID := orderFixture(t)

	override := decimal.RequireFromString("1.00")
	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 2, UnitPrice: &override}},
	})
	require.NoError(t, err)
	assert.True(t, o.Total.Equal(decimal.RequireFromString("2.00")), "got %s", o.Total)
}

func TestCreateOrderValidation(t *testing.T) {
	_, svc, productID := orderFixture(t)

	t.Run("no items", func(t *testing.T) {
		_, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{CustomerID: uuid.New()})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
			CustomerID: uuid.New(),
			Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 0}},
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
			CustomerID: uuid.New(),
			Items:      []orderpkg.ItemInput{{ProductID: uuid.New(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("inactive product", func(t *testing.T) {
		inactive := uuid.New()
		repo := newFakeOrderRepo()
		products := &fakeProducts{products: map[uuid.UUID]entity.Product{
			inactive: {ID: inactive, SKU: "OLD", UnitPrice: decimal.Zero, Active: false},
		}}
		_, err := NewOrderService(repo, products).Create(context.Background(), orderpkg.UpsertOrderRequest{
			CustomerID: uuid.New(),
			Items:      []orderpkg.ItemInput{{ProductID: inactive, Quantity: 1}},
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})

	t.Run("negative override", func(t *testing.T) {
		neg := decimal.RequireFromString("-1")
		_, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
			CustomerID: uuid.New(),
			Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 1, UnitPrice: &neg}},
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestUpdateOrderRecomputesTotal(t *testing.T) {
	_, svc, productID := orderFixture(t)

	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), o.ID, orderpkg.UpsertOrderRequest{
		CustomerID: o.CustomerID,
		Notes:      "mais pão",
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 4}},
	})
	require.NoError(t, err)
	assert.True(t, updated.Total.Equal(decimal.RequireFromString("10.00")), "got %s", updated.Total)
	assert.Equal(t, "mais pão", updated.Notes)
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	_, svc, productID := orderFixture(t)
	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), o.ID, "shipped")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSetStatusAppendsHistory(t *testing.T) {
	repo, svc, productID := orderFixture(t)
	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.SetStatus(context.Background(), o.ID, entity.OrderPreparing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPreparing, updated.Status)

	// Backwards moves are allowed and still recorded.
	updated, err = svc.SetStatus(context.Background(), o.ID, entity.OrderEncomendado)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderEncomendado, updated.Status)

	entries, err := repo.History(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSetStatusFiresPaymentHookForMonthlyPayments(t *testing.T) {
	repo, svc, productID := orderFixture(t)
	hook := &fakeHook{}
	svc.WithPaymentHook(hook)

	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	repo.orders[o.ID].IsMonthlyPayment = true

	_, err = svc.SetStatus(context.Background(), o.ID, entity.OrderPago)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{o.ID}, hook.calls)

	// A non-paid transition never fires the hook.
	_, err = svc.SetStatus(context.Background(), o.ID, entity.OrderPreparing)
	require.NoError(t, err)
	assert.Len(t, hook.calls, 1)
}

func TestSetStatusSkipsHookForAdHocOrders(t *testing.T) {
	_, svc, productID := orderFixture(t)
	hook := &fakeHook{}
	svc.WithPaymentHook(hook)

	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), o.ID, entity.OrderPago)
	require.NoError(t, err)
	assert.Empty(t, hook.calls)
}

func TestNotifierReceivesLifecycleEvents(t *testing.T) {
	_, svc, productID := orderFixture(t)
	n := &fakeNotifier{}
	svc.WithNotifier(n)

	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = svc.SetStatus(context.Background(), o.ID, entity.OrderPago)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), o.ID))

	assert.Equal(t, []string{"order.created", "order.status_changed", "order.deleted"}, n.events)
}

func TestHistoryBackfillsLegacyOrders(t *testing.T) {
	repo, svc, productID := orderFixture(t)
	o, err := svc.Create(context.Background(), orderpkg.UpsertOrderRequest{
		CustomerID: uuid.New(),
		Items:      []orderpkg.ItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	// Simulate an order that predates history tracking.
	repo.history[o.ID] = nil

	entries, err := svc.History(context.Background(), o.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.OrderEncomendado, entries[0].Status)
}

func TestGetMissingOrder(t *testing.T) {
	_, svc, _ := orderFixture(t)
	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
