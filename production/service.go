// Package production answers "what must the kitchen make for date X":
// per-product quantity sums over orders due that date, rounded up to the
// product's minimum batch.
package production

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Need is the production requirement for one product on a target date.
type Need struct {
	ProductID       uuid.UUID `json:"product_id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	RoundedQuantity int       `json:"rounded_quantity"`
	MissingToBatch  int       `json:"missing_to_batch"`
	BatchSize       int       `json:"batch_size"`
}

// Row is a raw per-product quantity sum as read from storage.
type Row struct {
	ProductID uuid.UUID
	SKU       string
	Name      string
	Quantity  int
	BatchSize *int
}

// Repository supplies quantity sums per product over orders whose delivery
// date equals the target, excluding delivered ones, sorted by product name.
type Repository interface {
	QuantitiesByDate(ctx context.Context, date time.Time) ([]Row, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// Needs computes the production requirements for the target date. Pure over
// the stored order/product state: no side effects, same inputs same output.
func (s *Service) Needs(ctx context.Context, date time.Time) ([]Need, error) {
	rows, err := s.repo.QuantitiesByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	needs := make([]Need, 0, len(rows))
	for _, r := range rows {
		batch := 1
		if r.BatchSize != nil && *r.BatchSize > 1 {
			batch = *r.BatchSize
		}
		rounded := RoundToBatch(r.Quantity, batch)
		needs = append(needs, Need{
			ProductID:       r.ProductID,
			SKU:             r.SKU,
			Name:            r.Name,
			Quantity:        r.Quantity,
			RoundedQuantity: rounded,
			MissingToBatch:  rounded - r.Quantity,
			BatchSize:       batch,
		})
	}
	return needs, nil
}

// RoundToBatch rounds quantity up to the next multiple of batchSize.
// A batch of 1 or less leaves the quantity alone, and zero stays zero
// rather than rounding up to a full batch.
func RoundToBatch(quantity, batchSize int) int {
	if batchSize <= 1 || quantity <= 0 {
		return quantity
	}
	batches := (quantity + batchSize - 1) / batchSize
	return batches * batchSize
}
