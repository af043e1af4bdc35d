package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the lifecycle of an order.
type OrderStatus string

const (
	OrderEncomendado OrderStatus = "encomendado" // placed, awaiting payment
	OrderPago        OrderStatus = "pago"        // paid; for monthly payment orders this unlocks weekly deliveries
	OrderPreparing   OrderStatus = "preparing"   // in production
	OrderDelivered   OrderStatus = "delivered"   // handed over, terminal
)

// AllOrderStatuses lists every recognized status.
var AllOrderStatuses = []OrderStatus{OrderEncomendado, OrderPago, OrderPreparing, OrderDelivered}

// Valid reports whether s is a recognized status.
func (s OrderStatus) Valid() bool {
	for _, v := range AllOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order captures a purchase by a customer. Three flavors share the table:
// ad-hoc orders, monthly payment orders (IsMonthlyPayment) and weekly
// deliveries materialized from a recurring plan (IsAutoGenerated).
type Order struct {
	ID               uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID       uuid.UUID       `json:"customer_id" gorm:"type:uuid;index;not null"`
	DeliveryDate     *time.Time      `json:"delivery_date,omitempty" gorm:"type:date;index"`
	Status           OrderStatus     `json:"status" gorm:"type:text;index;not null;default:'encomendado'"`
	Total            decimal.Decimal `json:"total" gorm:"type:decimal(12,2);not null;default:0"`
	Notes            string          `json:"notes" gorm:"type:text"`
	RecurringPlanID  *uuid.UUID      `json:"recurring_plan_id,omitempty" gorm:"type:uuid;index"`
	IsMonthlyPayment bool            `json:"is_monthly_payment" gorm:"default:false"`
	IsAutoGenerated  bool            `json:"is_auto_generated" gorm:"default:false"`
	Items            []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderItem snapshots the unit price at order-creation time. Later product
// price changes never touch existing orders.
type OrderItem struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID   uuid.UUID       `json:"order_id" gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `json:"product_id" gorm:"type:uuid;index;not null"`
	Quantity  int             `json:"quantity" gorm:"not null;default:1"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
}

// OrderStatusHistory is append-only; rows are never updated or rewritten.
type OrderStatusHistory struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID   uuid.UUID   `json:"order_id" gorm:"type:uuid;index;not null"`
	Status    OrderStatus `json:"status" gorm:"type:text;not null"`
	ChangedAt time.Time   `json:"changed_at" gorm:"autoCreateTime"`
}
