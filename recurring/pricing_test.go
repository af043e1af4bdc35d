package recurring

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Ruidozo/fam-backoffice/entity"
)

func TestPerDeliveryPricing(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()
	products := map[uuid.UUID]entity.Product{
		p1: {ID: p1, UnitPrice: decimal.RequireFromString("2.50")},
		p2: {ID: p2, UnitPrice: decimal.RequireFromString("1.20")},
	}
	items := []entity.RecurringPlanItem{
		{ProductID: p1, Quantity: 2}, // 5.00 per week
		{ProductID: p2, Quantity: 1}, // 1.20 per week
	}

	total := PerDeliveryPricing{}.MonthlyTotal(items, products, 4)
	assert.True(t, total.Equal(decimal.RequireFromString("24.80")), "got %s", total)
}

func TestPerDeliveryPricingSkipsUnknownProducts(t *testing.T) {
	known := uuid.New()
	products := map[uuid.UUID]entity.Product{
		known: {ID: known, UnitPrice: decimal.RequireFromString("3.00")},
	}
	items := []entity.RecurringPlanItem{
		{ProductID: known, Quantity: 1},
		{ProductID: uuid.New(), Quantity: 5},
	}
	total := PerDeliveryPricing{}.MonthlyTotal(items, products, 2)
	assert.True(t, total.Equal(decimal.RequireFromString("6.00")), "got %s", total)
}

func TestFlatMonthlyPricing(t *testing.T) {
	fee := decimal.RequireFromString("30.00")
	total := FlatMonthlyPricing{Fee: fee}.MonthlyTotal(nil, nil, 5)
	assert.True(t, total.Equal(fee))
}
