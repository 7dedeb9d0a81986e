package impl

import (
	"context"
	"testing"
	"time"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	mockRepo "artisanmarket/internal/mocks/repository"
	"artisanmarket/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		Logger:      newTestLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		catalogRepo: catalogRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func TestCatalogService_GetUser_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	user := &entity.User{ID: "user-1", Name: "Amelie"}

	fx.catalogRepo.EXPECT().
		FindUserByID(ctx, "user-1").
		Return(user, nil)

	got, err := fx.service.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Amelie", got.Name)
}

func TestCatalogService_GetUser_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.catalogRepo.EXPECT().
		FindUserByID(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetUser(ctx, "ghost")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestCatalogService_ListCategories_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	categories := []*entity.Category{
		{ID: "C001", Name: "Ceramics"},
		{ID: "C002", Name: "Textiles"},
	}

	fx.catalogRepo.EXPECT().
		ListCategories(ctx).
		Return(categories, nil)

	got, err := fx.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCatalogService_ListSellers_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	sellers := []*entity.Seller{
		{ID: "S001", Name: "Atelier Nord"},
	}

	fx.catalogRepo.EXPECT().
		ListSellers(ctx).
		Return(sellers, nil)

	got, err := fx.service.ListSellers(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCatalogService_ListProductsByCategory_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	products := []*entity.Product{
		{ID: "P001", Name: "Ceramic Mug", CategoryID: "C001"},
		{ID: "P003", Name: "Clay Teapot", CategoryID: "C001"},
	}

	fx.productRepo.EXPECT().
		FindByCategory(ctx, "C001").
		Return(products, nil)

	got, err := fx.service.ListProductsByCategory(ctx, "C001")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "P001", got[0].ID)
}

func TestCatalogService_GetOrder_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	order := &entity.Order{
		ID:         "O1",
		UserID:     "user-1",
		TotalPrice: decimal.RequireFromString("25.00"),
		Items: []entity.OrderItem{
			{OrderID: "O1", ProductID: "P001", Quantity: 2, PriceAtPurchase: decimal.RequireFromString("10.00")},
		},
	}

	fx.orderRepo.EXPECT().
		FindByID(ctx, "O1").
		Return(order, nil)

	got, err := fx.service.GetOrder(ctx, "O1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "P001", got.Items[0].ProductID)
}

func TestCatalogService_GetOrder_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, "ghost").
		Return(nil, repository.ErrOrderNotFound)

	got, err := fx.service.GetOrder(ctx, "ghost")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestCatalogService_GetUserOrders_NewestFirst(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	now := time.Now().UTC()
	orders := []*entity.Order{
		{ID: "O2", UserID: "user-1", OrderDate: now, TotalPrice: decimal.RequireFromString("25.00")},
		{ID: "O1", UserID: "user-1", OrderDate: now.Add(-time.Hour), TotalPrice: decimal.RequireFromString("10.00")},
	}

	fx.orderRepo.EXPECT().
		FindOrdersByUser(ctx, "user-1").
		Return(orders, nil)

	got, err := fx.service.GetUserOrders(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].OrderDate.After(got[1].OrderDate))
}
