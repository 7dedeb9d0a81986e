package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"artisanmarket/config"
	"artisanmarket/internal/domain/entity"
	domainerrors "artisanmarket/internal/domain/errors"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/domain/service"
	"artisanmarket/internal/infra/cache"
	"artisanmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	semanticSearchNamespace  = "semantic_search"
	similarProductsNamespace = "similar_products"
)

type searchService struct {
	productRepo repository.ProductRepository
	graphRepo   repository.GraphRepository
	embedder    service.Embedder
	cache       *cache.Cache
	logger      *slog.Logger
	cacheTTL    time.Duration
	defaultTopK int
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	GraphRepo   repository.GraphRepository
	Embedder    service.Embedder
	Cache       *cache.Cache
	Logger      *slog.Logger
	Config      *config.Config
}

// NewSearchService creates a new search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		productRepo: params.ProductRepo,
		graphRepo:   params.GraphRepo,
		embedder:    params.Embedder,
		cache:       params.Cache,
		logger:      params.Logger,
		cacheTTL:    params.Config.Cache.DefaultTTL,
		defaultTopK: params.Config.Search.DefaultTopK,
	}
}

// SemanticSearch embeds the query text and runs a cached nearest-neighbor
// query over product embeddings.
func (s *searchService) SemanticSearch(ctx context.Context, query string, filters usecase.SearchFilters, topK int) ([]*entity.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrEmptyQuery
	}

	if topK <= 0 {
		topK = s.defaultTopK
	}

	params := []cache.Param{
		{Name: "query", Value: query},
		{Name: "top_k", Value: strconv.Itoa(topK)},
	}
	if filters.Category != nil {
		params = append(params, cache.Param{Name: "category", Value: *filters.Category})
	}
	if filters.MinPrice != nil {
		params = append(params, cache.Param{Name: "min_price", Value: filters.MinPrice.String()})
	}
	if filters.MaxPrice != nil {
		params = append(params, cache.Param{Name: "max_price", Value: filters.MaxPrice.String()})
	}

	results, err := cache.Lookup(ctx, s.cache, semanticSearchNamespace, params, s.cacheTTL, func(ctx context.Context) ([]*entity.SearchResult, error) {
		embedding, embedErr := s.embedder.Embed(ctx, query)
		if embedErr != nil {
			return nil, errors.Wrap(embedErr, "failed to embed query")
		}

		repoFilters := repository.SearchFilters{
			Category: filters.Category,
			MinPrice: filters.MinPrice,
			MaxPrice: filters.MaxPrice,
		}

		return s.productRepo.SearchByVector(ctx, embedding, repoFilters, topK)
	})
	if err != nil {
		return nil, errors.Wrap(err, "semantic search failed")
	}

	return results, nil
}

// SimilarProducts returns the cached nearest neighbors of a product's own
// embedding. The product itself never appears in the result.
func (s *searchService) SimilarProducts(ctx context.Context, productID string, topK int) ([]*entity.SearchResult, error) {
	if topK <= 0 {
		topK = s.defaultTopK
	}

	params := []cache.Param{
		{Name: "product_id", Value: productID},
		{Name: "top_k", Value: strconv.Itoa(topK)},
	}

	results, err := cache.Lookup(ctx, s.cache, similarProductsNamespace, params, s.cacheTTL, func(ctx context.Context) ([]*entity.SearchResult, error) {
		neighbors, repoErr := s.productRepo.FindSimilarByProduct(ctx, productID, topK)
		if repoErr != nil {
			return nil, repoErr
		}

		// Freshly computed neighbor scores are projected into the graph as
		// SIMILAR_TO edges. The projection is best-effort derived data, like
		// the purchase edges written at checkout.
		for _, neighbor := range neighbors {
			if graphErr := s.graphRepo.AddSimilar(ctx, productID, neighbor.ProductID, neighbor.Similarity); graphErr != nil {
				s.logger.Warn("failed to record similarity edge",
					slog.String("productID", productID),
					slog.String("otherProductID", neighbor.ProductID),
					slog.Any("error", graphErr))
			}
		}

		return neighbors, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) || errors.Is(err, repository.ErrEmbeddingNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "similar products lookup failed")
	}

	return results, nil
}
