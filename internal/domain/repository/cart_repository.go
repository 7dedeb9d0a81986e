package repository

import (
	"context"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrInvalidQuantity is returned when a cart mutation carries a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// CartRepository defines the interface for the ephemeral Redis-backed cart store.
// Every mutation refreshes the cart's sliding TTL; an expired cart simply reads
// back as empty.
type CartRepository interface {
	// Add increments the quantity of a product in the user's cart.
	// The quantity must be positive.
	Add(ctx context.Context, userID, productID string, quantity int) error

	// SetQuantity sets an absolute quantity for a product. A quantity of zero
	// removes the product from the cart.
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error

	// Remove deletes a product from the cart. Removing an absent product is not an error.
	Remove(ctx context.Context, userID, productID string) error

	// Get retrieves the full cart. Entries whose stored quantity cannot be
	// parsed are dropped with a warning rather than failing the read.
	Get(ctx context.Context, userID string) (entity.Cart, error)

	// Clear deletes the entire cart.
	Clear(ctx context.Context, userID string) error
}
