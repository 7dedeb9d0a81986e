package repository

import (
	"context"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
)

// CatalogRepository defines read-only lookups over the marketplace reference data.
type CatalogRepository interface {
	// FindUserByID retrieves a user by its identifier.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListSellers retrieves all sellers ordered by name.
	ListSellers(ctx context.Context) ([]*entity.Seller, error)
}
