package impl

import (
	"context"
	"testing"

	"artisanmarket/internal/domain/entity"
	domainerrors "artisanmarket/internal/domain/errors"
	mockRepo "artisanmarket/internal/mocks/repository"
	"artisanmarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service  usecase.CartUsecase
	cartRepo *mockRepo.MockCartRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	service := NewCartService(CartServiceParams{
		CartRepo: cartRepo,
		Logger:   newTestLogger(),
	})

	return cartServiceFixtures{
		service:  service,
		cartRepo: cartRepo,
	}
}

func TestCartService_AddToCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Add(ctx, "user-1", "P001", 3).
		Return(nil)

	err := fx.service.AddToCart(ctx, "user-1", "P001", 3)
	require.NoError(t, err)
}

func TestCartService_AddToCart_InvalidQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	err := fx.service.AddToCart(ctx, "user-1", "P001", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)

	err = fx.service.AddToCart(ctx, "user-1", "P001", -2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_AddToCart_RepoError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Add(ctx, "user-1", "P001", 1).
		Return(errors.New("connection refused"))

	err := fx.service.AddToCart(ctx, "user-1", "P001", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add to cart")
}

func TestCartService_UpdateItemQuantity_ZeroRemoves(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		SetQuantity(ctx, "user-1", "P001", 0).
		Return(nil)

	err := fx.service.UpdateItemQuantity(ctx, "user-1", "P001", 0)
	require.NoError(t, err)
}

func TestCartService_UpdateItemQuantity_NegativeRejected(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	err := fx.service.UpdateItemQuantity(ctx, "user-1", "P001", -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_RemoveFromCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Remove(ctx, "user-1", "P001").
		Return(nil)

	err := fx.service.RemoveFromCart(ctx, "user-1", "P001")
	require.NoError(t, err)
}

func TestCartService_GetCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	stored := entity.Cart{"P001": 2, "P002": 1}

	fx.cartRepo.EXPECT().
		Get(ctx, "user-1").
		Return(stored, nil)

	cart, err := fx.service.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, cart)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Get(ctx, "user-1").
		Return(entity.Cart{}, nil)

	cart, err := fx.service.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_ClearCart_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Clear(ctx, "user-1").
		Return(nil)

	err := fx.service.ClearCart(ctx, "user-1")
	require.NoError(t, err)
}
