package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the fixed set of states an order may be in.
type OrderStatus string

const (
	// OrderStatusCompleted marks an order that was fully paid and persisted.
	OrderStatusCompleted OrderStatus = "completed"
)

// Order is the durable record of a completed checkout. Orders are created
// atomically together with their items and are never mutated afterwards.
type Order struct {
	ID         string          `json:"id"`          // Globally unique order identifier, generated at checkout.
	UserID     string          `json:"user_id"`     // The user who placed the order.
	OrderDate  time.Time       `json:"order_date"`  // Timestamp of checkout.
	Status     OrderStatus     `json:"status"`      // Fixed enumeration, e.g. "completed".
	TotalPrice decimal.Decimal `json:"total_price"` // Invariant: equals the sum of item quantity x price-at-purchase.
	Items      []OrderItem     `json:"items,omitempty"`
}

// OrderItem is one line of an order. PriceAtPurchase is a snapshot taken at
// checkout time and must never track later product price changes.
type OrderItem struct {
	OrderID         string          `json:"order_id"`
	ProductID       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}
