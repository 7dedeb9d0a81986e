package usecase

import (
	"context"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/infra/cache"
)

// ProductUsecase defines the interface for cached product reads and popularity
type ProductUsecase interface {
	// GetProduct retrieves a product through the cache, bumps its popularity
	// score and, when viewerID is non-empty, records a view edge best-effort.
	GetProduct(ctx context.Context, productID, viewerID string) (*entity.Product, error)

	// HotProducts returns the topN products by popularity score, descending.
	HotProducts(ctx context.Context, topN int) ([]*entity.RankedProduct, error)

	// CacheMetrics returns the per-namespace cache hit/miss counters.
	CacheMetrics(ctx context.Context) (map[string]cache.MetricCounts, error)
}
