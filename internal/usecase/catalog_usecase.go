package usecase

import (
	"context"

	"artisanmarket/internal/domain/entity"
)

// CatalogUsecase defines the interface for marketplace reference data lookups
type CatalogUsecase interface {
	// GetUser retrieves a user by its identifier.
	GetUser(ctx context.Context, userID string) (*entity.User, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListSellers retrieves all sellers.
	ListSellers(ctx context.Context) ([]*entity.Seller, error)

	// ListProductsByCategory retrieves all products in a category, by name.
	ListProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)

	// GetOrder retrieves a single order together with its items.
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// GetUserOrders retrieves all orders placed by a user, newest first.
	GetUserOrders(ctx context.Context, userID string) ([]*entity.Order, error)
}
