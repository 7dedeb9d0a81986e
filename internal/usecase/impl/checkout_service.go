package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"artisanmarket/config"
	"artisanmarket/internal/domain/entity"
	domainerrors "artisanmarket/internal/domain/errors"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/domain/service"
	"artisanmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type checkoutService struct {
	cartRepo  repository.CartRepository
	graphRepo repository.GraphRepository
	txManager repository.TransactionManager
	locker    service.AdvisoryLocker
	logger    *slog.Logger
	lockTTL   time.Duration
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	GraphRepo repository.GraphRepository
	TxManager repository.TransactionManager
	Locker    service.AdvisoryLocker
	Logger    *slog.Logger
	Config    *config.Config
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartRepo:  params.CartRepo,
		graphRepo: params.GraphRepo,
		txManager: params.TxManager,
		locker:    params.Locker,
		logger:    params.Logger,
		lockTTL:   params.Config.Checkout.LockTTL,
	}
}

// Checkout converts the user's cart into a durable order.
//
// Steps 1-4 (cart read, pricing, stock reservation, order insert) form the
// atomic core: the cart is consumed only after the relational commit succeeds. Steps 5-6 (graph
// propagation, cart clear) run after the point of no return and are
// best-effort; the graph projection may lag until reconciliation repairs it.
func (s *checkoutService) Checkout(ctx context.Context, userID string) (*usecase.OrderResult, error) {
	lockName := "checkout:" + userID
	acquired, err := s.locker.TryLock(ctx, lockName, s.lockTTL)
	if err != nil {
		// The lock is advisory only; an unavailable locker must not block checkout.
		s.logger.Warn("checkout lock unavailable, proceeding without it",
			slog.String("userID", userID), slog.Any("error", err))
	} else if !acquired {
		return nil, domainerrors.ErrCheckoutInProgress
	} else {
		defer func() {
			if unlockErr := s.locker.Unlock(ctx, lockName); unlockErr != nil {
				s.logger.Warn("failed to release checkout lock",
					slog.String("userID", userID), slog.Any("error", unlockErr))
			}
		}()
	}

	// Step 1: read the cart.
	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart for checkout")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	// Steps 2-4: price, validate and persist inside one transaction.
	order, err := s.persistOrder(ctx, userID, cart)
	if err != nil {
		return nil, err
	}

	// Step 5: propagate purchase edges best-effort. The order is already
	// durable; a failure here only delays the graph projection.
	for productID, quantity := range cart {
		if err := s.graphRepo.AddPurchase(ctx, userID, productID, quantity, order.OrderDate); err != nil {
			s.logger.Warn("failed to record purchase edge",
				slog.String("userID", userID),
				slog.String("productID", productID),
				slog.Any("error", err))
		}
	}

	// Step 6: clear the cart. Reached only after the relational commit.
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			slog.String("userID", userID), slog.Any("error", err))
	}

	return &usecase.OrderResult{
		OrderID:   order.ID,
		Total:     order.TotalPrice,
		ItemCount: len(order.Items),
	}, nil
}

// persistOrder resolves current prices and writes the order with its items as
// one transaction. Any failure rolls the whole transaction back, leaving the
// cart untouched so the user can retry safely.
func (s *checkoutService) persistOrder(ctx context.Context, userID string, cart entity.Cart) (*entity.Order, error) {
	productIDs := make([]string, 0, len(cart))
	for productID := range cart {
		productIDs = append(productIDs, productID)
	}
	// A deterministic item order keeps totals and inserts reproducible.
	sort.Strings(productIDs)

	var order *entity.Order

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		productRepo := factory.NewProductRepository()

		products, err := productRepo.FindByIDs(ctx, productIDs)
		if err != nil {
			return errors.Wrap(err, "failed to resolve cart products")
		}
		// Partial resolution is not accepted: either every cart line prices, or
		// the checkout aborts with the cart intact.
		if len(products) != len(productIDs) {
			return domainerrors.ErrProductsMissing
		}

		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(productIDs))
		for _, productID := range productIDs {
			product := products[productID]
			quantity := cart[productID]

			// Reserving stock inside the order transaction means a failed
			// checkout releases the reservation on rollback.
			if err := productRepo.DecrementStock(ctx, productID, quantity); err != nil {
				if errors.Is(err, repository.ErrInsufficientStock) {
					return domainerrors.ErrInsufficientStock
				}

				return errors.Wrapf(err, "failed to reserve stock for product %s", productID)
			}

			items = append(items, entity.OrderItem{
				ProductID:       productID,
				Quantity:        quantity,
				PriceAtPurchase: product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
		}

		order = &entity.Order{
			ID:         uuid.New().String(),
			UserID:     userID,
			OrderDate:  time.Now().UTC(),
			Status:     entity.OrderStatusCompleted,
			TotalPrice: total,
			Items:      items,
		}

		return factory.NewOrderRepository().CreateOrder(ctx, order)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductsMissing) || errors.Is(err, domainerrors.ErrInsufficientStock) {
			return nil, err
		}

		return nil, domainerrors.ErrCheckoutFailed.WrapMessage(err.Error())
	}

	return order, nil
}
