package repository

import (
	"context"
	"time"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order-related database operations.
// Orders and their items are written as one unit inside a single transaction
// and are immutable once created.
type OrderRepository interface {
	// CreateOrder persists an order together with all of its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// FindOrdersByUser retrieves all orders placed by a user, newest first.
	FindOrdersByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListPurchaseFacts returns purchase rows (user, product, quantity, date)
	// for orders placed at or after the given time. Used to replay the purchase
	// history into the relationship store during reconciliation.
	ListPurchaseFacts(ctx context.Context, since time.Time) ([]*entity.PurchaseFact, error)
}
