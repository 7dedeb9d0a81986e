package main

import (
	"context"
	"log/slog"
	"os"

	"artisanmarket/config"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/infra/cache"
	"artisanmarket/internal/infra/embedding"
	logs "artisanmarket/internal/infra/log"
	"artisanmarket/internal/infra/persistence/neo4j"
	"artisanmarket/internal/infra/persistence/postgres"
	redisinfra "artisanmarket/internal/infra/persistence/redis"
	"artisanmarket/internal/usecase"
	"artisanmarket/internal/usecase/impl"

	"go.uber.org/fx"
)

// coreParams forces construction of the full use case graph at startup.
type coreParams struct {
	fx.In

	Cart           usecase.CartUsecase
	Checkout       usecase.CheckoutUsecase
	Product        usecase.ProductUsecase
	Search         usecase.SearchUsecase
	Recommendation usecase.RecommendationUsecase
	Catalog        usecase.CatalogUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			ensureGraphSchema,
			startCore,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		redisinfra.New,
		redisinfra.NewStore,
		neo4j.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewCatalogRepository,
			postgres.NewTransactionManager,
			redisinfra.NewCartRepository,
			neo4j.NewGraphRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCacheStore,
			cache.New,
			embedding.NewLocalEmbedder,
			redisinfra.NewAdvisoryLocker,
		),
	)
}

// newCacheStore exposes the Redis adapter through the cache layer's store port.
func newCacheStore(store *redisinfra.Store) cache.Store {
	return store
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewCheckoutService,
			impl.NewProductService,
			impl.NewSearchService,
			impl.NewRecommendationService,
			impl.NewCatalogService,
		),
	)
}

// ensureGraphSchema creates the Neo4j uniqueness constraints at startup so
// that MERGE-based edge writes stay idempotent.
func ensureGraphSchema(ctx context.Context, graphRepo repository.GraphRepository) {
	if err := graphRepo.EnsureSchema(ctx); err != nil {
		slog.Error("Failed to ensure graph schema", slog.Any("error", err))
		os.Exit(1)
	}
}

func startCore(cfg *config.Config, _ coreParams) {
	slog.Info("marketplace core ready", slog.String("service", cfg.Env.ServiceName))
}
