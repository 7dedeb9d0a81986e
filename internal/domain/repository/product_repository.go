// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/errors"

	"github.com/shopspring/decimal"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrEmbeddingNotFound is returned when a product has no stored embedding.
	ErrEmbeddingNotFound = errors.New("product embedding not found")
	// ErrInsufficientStock is returned when a stock decrement would drop below zero.
	ErrInsufficientStock = errors.New("insufficient product stock")
)

// SearchFilters narrows a vector similarity query. Nil fields are ignored.
type SearchFilters struct {
	Category *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// FindByID retrieves a product by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindByIDs retrieves all products for the given identifiers.
	// The result map contains only the ids that were found.
	FindByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)

	// FindByCategory retrieves all products belonging to a category.
	FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)

	// SearchByVector performs a nearest-neighbor query over product embeddings,
	// ordered by similarity descending and limited to topK.
	SearchByVector(ctx context.Context, embedding []float32, filters SearchFilters, topK int) ([]*entity.SearchResult, error)

	// FindSimilarByProduct finds the products whose embeddings are nearest to the
	// given product's embedding, excluding the product itself.
	FindSimilarByProduct(ctx context.Context, productID string, topK int) ([]*entity.SearchResult, error)

	// DecrementStock reduces the stock counter for a product. The decrement is
	// conditional: when the remaining stock does not cover it, no row changes
	// and ErrInsufficientStock is returned.
	DecrementStock(ctx context.Context, productID string, by int) error
}
