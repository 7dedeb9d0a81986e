package usecase

import (
	"context"

	"artisanmarket/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SearchFilters narrows a semantic search. Nil fields are ignored.
type SearchFilters struct {
	Category *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// SearchUsecase defines the interface for semantic product search use cases
type SearchUsecase interface {
	// SemanticSearch embeds the query text and runs a cached nearest-neighbor
	// query over product embeddings, ordered by similarity descending.
	SemanticSearch(ctx context.Context, query string, filters SearchFilters, topK int) ([]*entity.SearchResult, error)

	// SimilarProducts returns the products nearest to the given product's own
	// embedding, never including the product itself.
	SimilarProducts(ctx context.Context, productID string, topK int) ([]*entity.SearchResult, error)
}
