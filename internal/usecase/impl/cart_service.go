// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"

	"artisanmarket/internal/domain/entity"
	domainerrors "artisanmarket/internal/domain/errors"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Logger   *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		logger:   params.Logger,
	}
}

// AddToCart adds a product to a user's cart or increments its quantity.
func (s *cartService) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return domainerrors.ErrInvalidQuantity
	}

	if err := s.cartRepo.Add(ctx, userID, productID, quantity); err != nil {
		return errors.Wrap(err, "failed to add to cart")
	}

	return nil
}

// UpdateItemQuantity sets an absolute quantity; zero removes the item.
func (s *cartService) UpdateItemQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity < 0 {
		return domainerrors.ErrInvalidQuantity
	}

	if err := s.cartRepo.SetQuantity(ctx, userID, productID, quantity); err != nil {
		return errors.Wrap(err, "failed to update cart quantity")
	}

	return nil
}

// RemoveFromCart removes a product from a user's cart.
func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	if err := s.cartRepo.Remove(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to remove from cart")
	}

	return nil
}

// GetCart retrieves a user's shopping cart.
func (s *cartService) GetCart(ctx context.Context, userID string) (entity.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cart, nil
}

// ClearCart removes all items from a user's cart.
func (s *cartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
