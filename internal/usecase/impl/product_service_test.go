package impl

import (
	"context"
	"testing"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/infra/cache"
	mockRepo "artisanmarket/internal/mocks/repository"
	"artisanmarket/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	graphRepo   *mockRepo.MockGraphRepository
	store       *fakeCacheStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	graphRepo := mockRepo.NewMockGraphRepository(t)
	store := newFakeCacheStore()

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		GraphRepo:   graphRepo,
		Cache:       cache.New(store, newTestLogger()),
		Logger:      newTestLogger(),
		Config:      newTestConfig(),
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
		graphRepo:   graphRepo,
		store:       store,
	}
}

func TestProductService_GetProduct_MissThenHit(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{
		ID:    "P001",
		Name:  "Ceramic Mug",
		Price: decimal.RequireFromString("10.00"),
	}

	// Only the first read may touch the system of record.
	fx.productRepo.EXPECT().
		FindByID(ctx, "P001").
		Return(product, nil).
		Once()

	first, err := fx.service.GetProduct(ctx, "P001", "")
	require.NoError(t, err)
	assert.Equal(t, "Ceramic Mug", first.Name)

	second, err := fx.service.GetProduct(ctx, "P001", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.Price.Equal(second.Price))

	metrics, err := fx.service.CacheMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), metrics["product"].Hits)
	assert.Equal(t, int64(1), metrics["product"].Misses)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByID(ctx, "P404").
		Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, "P404", "")
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductService_GetProduct_BumpsPopularityOnEveryRead(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{ID: "P001", Price: decimal.RequireFromString("10.00")}

	fx.productRepo.EXPECT().
		FindByID(ctx, "P001").
		Return(product, nil).
		Once()

	for range 3 {
		_, err := fx.service.GetProduct(ctx, "P001", "")
		require.NoError(t, err)
	}

	// Cache hits and misses both count toward popularity.
	ranked, err := fx.service.HotProducts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "P001", ranked[0].ProductID)
	assert.Equal(t, float64(3), ranked[0].Score)
}

func TestProductService_GetProduct_RecordsViewEdge(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{ID: "P001", Price: decimal.RequireFromString("10.00")}

	fx.productRepo.EXPECT().
		FindByID(ctx, "P001").
		Return(product, nil)

	fx.graphRepo.EXPECT().
		AddView(ctx, "user-1", "P001", mock.AnythingOfType("time.Time")).
		Return(nil)

	_, err := fx.service.GetProduct(ctx, "P001", "user-1")
	require.NoError(t, err)
}

func TestProductService_HotProducts_OrderedByScore(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	products := map[string]*entity.Product{
		"P001": {ID: "P001", Price: decimal.RequireFromString("1.00")},
		"P002": {ID: "P002", Price: decimal.RequireFromString("2.00")},
	}

	fx.productRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, id string) (*entity.Product, error) {
			return products[id], nil
		})

	for range 2 {
		_, err := fx.service.GetProduct(ctx, "P002", "")
		require.NoError(t, err)
	}
	_, err := fx.service.GetProduct(ctx, "P001", "")
	require.NoError(t, err)

	ranked, err := fx.service.HotProducts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "P002", ranked[0].ProductID)
	assert.Equal(t, "P001", ranked[1].ProductID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}
