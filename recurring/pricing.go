package recurring

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ruidozo/fam-backoffice/entity"
)

// PricingStrategy decides what a month of subscription costs. The business
// never pinned this down, so it is pluggable and selected by configuration.
type PricingStrategy interface {
	MonthlyTotal(items []entity.RecurringPlanItem, products map[uuid.UUID]entity.Product, deliveries int) decimal.Decimal
}

// PerDeliveryPricing charges the weekly basket once per delivery in the
// month: Σ(quantity × current unit price) × deliveries.
type PerDeliveryPricing struct{}

func (PerDeliveryPricing) MonthlyTotal(items []entity.RecurringPlanItem, products map[uuid.UUID]entity.Product, deliveries int) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok {
			continue
		}
		total = total.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Mul(decimal.NewFromInt(int64(deliveries)))
}

// FlatMonthlyPricing charges a configured fee regardless of basket contents.
type FlatMonthlyPricing struct {
	Fee decimal.Decimal
}

func (f FlatMonthlyPricing) MonthlyTotal([]entity.RecurringPlanItem, map[uuid.UUID]entity.Product, int) decimal.Decimal {
	return f.Fee
}
