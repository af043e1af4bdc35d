package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ruidozo/fam-backoffice/apperr"
	customerpkg "github.com/Ruidozo/fam-backoffice/customer"
	"github.com/Ruidozo/fam-backoffice/entity"
)

type fakeCustomerRepo struct {
	customers  map[uuid.UUID]entity.Customer
	orderCount map[uuid.UUID]int64
}

var _ customerpkg.Repository = (*fakeCustomerRepo)(nil)

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers:  map[uuid.UUID]entity.Customer{},
		orderCount: map[uuid.UUID]int64{},
	}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	c.ID = uuid.New()
	f.customers[c.ID] = *c
	return c, nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeCustomerRepo) List(ctx context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	f.customers[c.ID] = *c
	return c, nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) CountOrders(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.orderCount[id], nil
}

func TestCreateCustomerRequiresName(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())
	_, err := svc.Create(context.Background(), customerpkg.UpsertCustomerRequest{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestDeleteCustomerWithOrdersConflicts(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	c, err := svc.Create(context.Background(), customerpkg.UpsertCustomerRequest{Name: "Maria"})
	require.NoError(t, err)
	repo.orderCount[c.ID] = 3

	err = svc.Delete(context.Background(), c.ID)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.Get(context.Background(), c.ID)
	assert.NoError(t, err)
}

func TestDeleteCustomerWithoutOrders(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	c, err := svc.Create(context.Background(), customerpkg.UpsertCustomerRequest{Name: "Maria"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), c.ID))
	_, err = svc.Get(context.Background(), c.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateCustomerMissing(t *testing.T) {
	svc := NewCustomerService(newFakeCustomerRepo())
	_, err := svc.Update(context.Background(), uuid.New(), customerpkg.UpsertCustomerRequest{Name: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
