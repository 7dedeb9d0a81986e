package impl

import (
	"context"
	"log/slog"
	"time"

	"artisanmarket/config"
	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type recommendationService struct {
	graphRepo repository.GraphRepository
	orderRepo repository.OrderRepository
	logger    *slog.Logger
	limit     int
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	GraphRepo repository.GraphRepository
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
	Config    *config.Config
}

// NewRecommendationService creates a new recommendation service instance
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		graphRepo: params.GraphRepo,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
		limit:     params.Config.Search.DefaultTopK,
	}
}

// RecommendationsForUser suggests products bought by co-purchasers.
// Recommendations reflect live purchase history, so they bypass the cache.
func (s *recommendationService) RecommendationsForUser(ctx context.Context, userID string) ([]*entity.Recommendation, error) {
	recs, err := s.graphRepo.RecommendationsForUser(ctx, userID, s.limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query user recommendations")
	}

	return recs, nil
}

// AlsoBought returns the products most frequently bought together with the given product.
func (s *recommendationService) AlsoBought(ctx context.Context, productID string) ([]*entity.Recommendation, error) {
	recs, err := s.graphRepo.AlsoBought(ctx, productID, s.limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query also-bought products")
	}

	return recs, nil
}

// ReconcilePurchases replays purchase facts from the system of record into the
// relationship store. Edges are merged idempotently, so replaying a window
// that was already propagated is harmless.
func (s *recommendationService) ReconcilePurchases(ctx context.Context, since time.Time) (int, error) {
	facts, err := s.orderRepo.ListPurchaseFacts(ctx, since)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list purchase facts")
	}

	replayed := 0
	for _, fact := range facts {
		if err := s.graphRepo.MergePurchase(ctx, fact); err != nil {
			s.logger.Warn("failed to merge purchase edge",
				slog.String("userID", fact.UserID),
				slog.String("productID", fact.ProductID),
				slog.Any("error", err))

			continue
		}

		replayed++
	}

	s.logger.Info("purchase reconciliation finished",
		slog.Time("since", since),
		slog.Int("total", len(facts)),
		slog.Int("replayed", replayed))

	return replayed, nil
}
