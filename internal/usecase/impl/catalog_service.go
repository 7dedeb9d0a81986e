package impl

import (
	"context"
	"log/slog"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		logger:      params.Logger,
	}
}

// GetUser retrieves a user by its identifier.
func (s *catalogService) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.catalogRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to get user")
	}

	return user, nil
}

// ListCategories retrieves all categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.catalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// ListSellers retrieves all sellers.
func (s *catalogService) ListSellers(ctx context.Context) ([]*entity.Seller, error) {
	sellers, err := s.catalogRepo.ListSellers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return sellers, nil
}

// ListProductsByCategory retrieves all products in a category, by name.
func (s *catalogService) ListProductsByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	products, err := s.productRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products by category")
	}

	return products, nil
}

// GetOrder retrieves a single order together with its items.
func (s *catalogService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// GetUserOrders retrieves all orders placed by a user, newest first.
func (s *catalogService) GetUserOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user orders")
	}

	return orders, nil
}
