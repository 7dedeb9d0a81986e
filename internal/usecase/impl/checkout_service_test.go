package impl

import (
	"context"
	"testing"
	"time"

	"artisanmarket/internal/domain/entity"
	domainerrors "artisanmarket/internal/domain/errors"
	"artisanmarket/internal/domain/repository"
	mockRepo "artisanmarket/internal/mocks/repository"
	mockService "artisanmarket/internal/mocks/service"
	"artisanmarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service     usecase.CheckoutUsecase
	cartRepo    *mockRepo.MockCartRepository
	graphRepo   *mockRepo.MockGraphRepository
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	factory     *mockRepo.MockRepositoryFactory
	locker      *mockService.MockAdvisoryLocker
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	graphRepo := mockRepo.NewMockGraphRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	locker := mockService.NewMockAdvisoryLocker(t)

	service := NewCheckoutService(CheckoutServiceParams{
		CartRepo:  cartRepo,
		GraphRepo: graphRepo,
		TxManager: txManager,
		Locker:    locker,
		Logger:    newTestLogger(),
		Config:    newTestConfig(),
	})

	return checkoutServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		graphRepo:   graphRepo,
		txManager:   txManager,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		factory:     factory,
		locker:      locker,
	}
}

// expectTransaction makes the transaction manager run the callback against the
// fixture's factory, as the real GORM-backed manager would inside a transaction.
func (f checkoutServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func (f checkoutServiceFixtures) expectLockAcquired(ctx context.Context, userID string) {
	f.locker.EXPECT().
		TryLock(ctx, "checkout:"+userID, mock.AnythingOfType("time.Duration")).
		Return(true, nil)
	f.locker.EXPECT().
		Unlock(ctx, "checkout:"+userID).
		Return(nil)
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"
	cart := entity.Cart{"P001": 2, "P002": 1}
	products := map[string]*entity.Product{
		"P001": {ID: "P001", Name: "Ceramic Mug", Price: decimal.RequireFromString("10.00")},
		"P002": {ID: "P002", Name: "Woven Basket", Price: decimal.RequireFromString("5.00")},
	}

	fx.expectLockAcquired(ctx, userID)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(cart, nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []string{"P001", "P002"}).
		Return(products, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, "P001", 2).Return(nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, "P002", 1).Return(nil)

	var created *entity.Order
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			created = order
		}).
		Return(nil)

	fx.graphRepo.EXPECT().
		AddPurchase(ctx, userID, "P001", 2, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.graphRepo.EXPECT().
		AddPurchase(ctx, userID, "P002", 1, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, userID).Return(nil)

	result, err := fx.service.Checkout(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.ItemCount)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("25.00")),
		"expected total 25.00, got %s", result.Total)

	require.NotNil(t, created)
	assert.Equal(t, result.OrderID, created.ID)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, entity.OrderStatusCompleted, created.Status)
	require.Len(t, created.Items, 2)
	// Items follow product id order, prices snapshotted at checkout time.
	assert.Equal(t, "P001", created.Items[0].ProductID)
	assert.Equal(t, 2, created.Items[0].Quantity)
	assert.True(t, created.Items[0].PriceAtPurchase.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, "P002", created.Items[1].ProductID)
	assert.Equal(t, 1, created.Items[1].Quantity)
	assert.True(t, created.Items[1].PriceAtPurchase.Equal(decimal.RequireFromString("5.00")))
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"

	fx.expectLockAcquired(ctx, userID)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(entity.Cart{}, nil)

	result, err := fx.service.Checkout(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_Checkout_AlreadyInProgress(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"

	fx.locker.EXPECT().
		TryLock(ctx, "checkout:"+userID, mock.AnythingOfType("time.Duration")).
		Return(false, nil)

	result, err := fx.service.Checkout(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutInProgress)
}

func TestCheckoutService_Checkout_LockerUnavailableProceeds(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"
	cart := entity.Cart{"P001": 1}
	products := map[string]*entity.Product{
		"P001": {ID: "P001", Price: decimal.RequireFromString("7.50")},
	}

	fx.locker.EXPECT().
		TryLock(ctx, "checkout:"+userID, mock.AnythingOfType("time.Duration")).
		Return(false, errors.New("redis unavailable"))

	fx.cartRepo.EXPECT().Get(ctx, userID).Return(cart, nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.productRepo.EXPECT().FindByIDs(ctx, []string{"P001"}).Return(products, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, "P001", 1).Return(nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.graphRepo.EXPECT().
		AddPurchase(ctx, userID, "P001", 1, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, userID).Return(nil)

	result, err := fx.service.Checkout(ctx, userID)
	require.NoError(t, err)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("7.50")))
}

func TestCheckoutService_Checkout_ProductMissingAbortsAndKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"
	cart := entity.Cart{"P001": 1, "P404": 1}
	products := map[string]*entity.Product{
		"P001": {ID: "P001", Price: decimal.RequireFromString("10.00")},
	}

	fx.expectLockAcquired(ctx, userID)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(cart, nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []string{"P001", "P404"}).
		Return(products, nil)

	result, err := fx.service.Checkout(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrProductsMissing)
	// The mocks assert no CreateOrder, AddPurchase or Clear happened.
}

func TestCheckoutService_Checkout_InsufficientStockAbortsAndKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"
	cart := entity.Cart{"P001": 99}
	products := map[string]*entity.Product{
		"P001": {ID: "P001", Price: decimal.RequireFromString("10.00"), Stock: 3},
	}

	fx.expectLockAcquired(ctx, userID)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(cart, nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.productRepo.EXPECT().FindByIDs(ctx, []string{"P001"}).Return(products, nil)
	fx.productRepo.EXPECT().
		DecrementStock(ctx, "P001", 99).
		Return(repository.ErrInsufficientStock)

	result, err := fx.service.Checkout(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	// The mocks assert no CreateOrder, AddPurchase or Clear happened.
}

func TestCheckoutService_Checkout_PersistFailureKeepsCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"
	cart := entity.Cart{"P001": 1}
	products := map[string]*entity.Product{
		"P001": {ID: "P001", Price: decimal.RequireFromString("10.00")},
	}

	fx.expectLockAcquired(ctx, userID)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(cart, nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.productRepo.EXPECT().FindByIDs(ctx, []string{"P001"}).Return(products, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, "P001", 1).Return(nil)
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("deadlock detected"))

	result, err := fx.service.Checkout(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutFailed)
}

func TestCheckoutService_Checkout_GraphFailureStillClearsCart(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"
	cart := entity.Cart{"P001": 2}
	products := map[string]*entity.Product{
		"P001": {ID: "P001", Price: decimal.RequireFromString("10.00")},
	}

	fx.expectLockAcquired(ctx, userID)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(cart, nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.productRepo.EXPECT().FindByIDs(ctx, []string{"P001"}).Return(products, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, "P001", 2).Return(nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.graphRepo.EXPECT().
		AddPurchase(ctx, userID, "P001", 2, mock.AnythingOfType("time.Time")).
		Return(errors.New("neo4j unavailable"))
	fx.cartRepo.EXPECT().Clear(ctx, userID).Return(nil)

	result, err := fx.service.Checkout(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("20.00")))
}

func TestCheckoutService_Checkout_OrderDateIsUTC(t *testing.T) {
	fx := createTestCheckoutService(t)

	ctx := context.Background()
	userID := "user-1"
	cart := entity.Cart{"P001": 1}
	products := map[string]*entity.Product{
		"P001": {ID: "P001", Price: decimal.RequireFromString("1.00")},
	}

	fx.expectLockAcquired(ctx, userID)
	fx.cartRepo.EXPECT().Get(ctx, userID).Return(cart, nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewProductRepository().Return(fx.productRepo)
	fx.factory.EXPECT().NewOrderRepository().Return(fx.orderRepo)
	fx.productRepo.EXPECT().FindByIDs(ctx, []string{"P001"}).Return(products, nil)
	fx.productRepo.EXPECT().DecrementStock(ctx, "P001", 1).Return(nil)

	var created *entity.Order
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			created = order
		}).
		Return(nil)
	fx.graphRepo.EXPECT().
		AddPurchase(ctx, userID, "P001", 1, mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.cartRepo.EXPECT().Clear(ctx, userID).Return(nil)

	before := time.Now().UTC()
	_, err := fx.service.Checkout(ctx, userID)
	require.NoError(t, err)
	after := time.Now().UTC()

	require.NotNil(t, created)
	assert.Equal(t, time.UTC, created.OrderDate.Location())
	assert.False(t, created.OrderDate.Before(before))
	assert.False(t, created.OrderDate.After(after))
}
