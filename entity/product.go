package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. BatchSize is the minimum production batch;
// nil or 1 means no batch rounding applies.
type Product struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	SKU         string           `json:"sku" gorm:"type:text;uniqueIndex;not null"`
	Name        string           `json:"name" gorm:"type:text;not null"`
	Description string           `json:"description" gorm:"type:text"`
	UnitPrice   decimal.Decimal  `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	CostPrice   *decimal.Decimal `json:"cost_price,omitempty" gorm:"type:decimal(10,2)"`
	BatchSize   *int             `json:"batch_size,omitempty"`
	Active      bool             `json:"active" gorm:"default:true;index"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
