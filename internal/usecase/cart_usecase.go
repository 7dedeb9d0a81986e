// Package usecase defines the application-facing interfaces of the marketplace core.
package usecase

import (
	"context"

	"artisanmarket/internal/domain/entity"
)

// CartUsecase defines the interface for shopping cart management use cases
type CartUsecase interface {
	// AddToCart adds a product to a user's cart or increments its quantity
	AddToCart(ctx context.Context, userID, productID string, quantity int) error

	// UpdateItemQuantity sets an absolute quantity; zero removes the item
	UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) error

	// RemoveFromCart removes a product from a user's cart
	RemoveFromCart(ctx context.Context, userID, productID string) error

	// GetCart retrieves a user's shopping cart
	GetCart(ctx context.Context, userID string) (entity.Cart, error)

	// ClearCart removes all items from a user's cart
	ClearCart(ctx context.Context, userID string) error
}
