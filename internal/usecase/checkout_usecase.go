package usecase

import (
	"context"

	"github.com/shopspring/decimal"
)

// OrderResult summarizes a successful checkout.
type OrderResult struct {
	OrderID   string          `json:"order_id"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// CheckoutUsecase defines the interface for the cart-to-order conversion saga
type CheckoutUsecase interface {
	// Checkout converts the user's cart into a durable order: it prices the
	// cart against the system of record, persists the order and its items in
	// one transaction, propagates purchase edges to the relationship store
	// best-effort, and finally clears the cart.
	Checkout(ctx context.Context, userID string) (*OrderResult, error)
}
