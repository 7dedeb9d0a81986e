package impl

import (
	"context"
	"log/slog"
	"time"

	"artisanmarket/config"
	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/infra/cache"
	"artisanmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const productNamespace = "product"

type productService struct {
	productRepo repository.ProductRepository
	graphRepo   repository.GraphRepository
	cache       *cache.Cache
	logger      *slog.Logger
	cacheTTL    time.Duration
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	GraphRepo   repository.GraphRepository
	Cache       *cache.Cache
	Logger      *slog.Logger
	Config      *config.Config
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		graphRepo:   params.GraphRepo,
		cache:       params.Cache,
		logger:      params.Logger,
		cacheTTL:    params.Config.Cache.DefaultTTL,
	}
}

// GetProduct retrieves a product through the cache and bumps its popularity.
func (s *productService) GetProduct(ctx context.Context, productID, viewerID string) (*entity.Product, error) {
	params := []cache.Param{{Name: "id", Value: productID}}

	product, err := cache.Lookup(ctx, s.cache, productNamespace, params, s.cacheTTL, func(ctx context.Context) (*entity.Product, error) {
		return s.productRepo.FindByID(ctx, productID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	// Popularity measures demand, not cache performance: bump on every
	// successful read regardless of hit or miss.
	s.cache.BumpPopularity(ctx, productID)

	if viewerID != "" {
		if err := s.graphRepo.AddView(ctx, viewerID, productID, time.Now().UTC()); err != nil {
			s.logger.Warn("failed to record view edge",
				slog.String("userID", viewerID),
				slog.String("productID", productID),
				slog.Any("error", err))
		}
	}

	return product, nil
}

// HotProducts returns the topN products by popularity score, descending.
func (s *productService) HotProducts(ctx context.Context, topN int) ([]*entity.RankedProduct, error) {
	return s.cache.HotProducts(ctx, topN)
}

// CacheMetrics returns the per-namespace cache hit/miss counters.
func (s *productService) CacheMetrics(ctx context.Context) (map[string]cache.MetricCounts, error) {
	return s.cache.Metrics(ctx)
}
