package usecase

import (
	"context"
	"time"

	"artisanmarket/internal/domain/entity"
)

// RecommendationUsecase defines the interface for graph-based recommendation use cases
type RecommendationUsecase interface {
	// RecommendationsForUser suggests products bought by co-purchasers that the
	// user does not already own. No overlap yields an empty result.
	RecommendationsForUser(ctx context.Context, userID string) ([]*entity.Recommendation, error)

	// AlsoBought returns the products most frequently bought together with the
	// given product.
	AlsoBought(ctx context.Context, productID string) ([]*entity.Recommendation, error)

	// ReconcilePurchases replays purchase facts from the system of record into
	// the relationship store, repairing edges missed by best-effort checkout
	// propagation. Returns the number of facts replayed.
	ReconcilePurchases(ctx context.Context, since time.Time) (int, error)
}
