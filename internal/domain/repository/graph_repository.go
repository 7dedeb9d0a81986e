package repository

import (
	"context"
	"time"

	"artisanmarket/internal/domain/entity"
)

// GraphRepository defines the interface for the Neo4j relationship store.
//
// The graph is a derived, eventually-consistent projection of relational
// facts: writes are best-effort and never transactionally coupled to the
// system of record. Callers on the checkout path log write failures and
// continue; a reconciliation pass can later repair missed edges.
type GraphRepository interface {
	// EnsureSchema creates uniqueness constraints for User, Product and Category nodes.
	EnsureSchema(ctx context.Context) error

	// AddPurchase records a User-PURCHASED->Product edge.
	AddPurchase(ctx context.Context, userID, productID string, quantity int, date time.Time) error

	// AddView records a User-VIEWED->Product edge.
	AddView(ctx context.Context, userID, productID string, at time.Time) error

	// AddSimilar records a Product-SIMILAR_TO->Product edge with a similarity score.
	AddSimilar(ctx context.Context, productID, otherProductID string, score float64) error

	// RecommendationsForUser runs a collaborative-filtering traversal: products
	// bought by co-purchasers that the user does not already own, by frequency
	// descending. No overlap yields an empty slice, not an error.
	RecommendationsForUser(ctx context.Context, userID string, limit int) ([]*entity.Recommendation, error)

	// AlsoBought returns the products most frequently bought by users who also
	// purchased the given product, excluding the product itself.
	AlsoBought(ctx context.Context, productID string, limit int) ([]*entity.Recommendation, error)

	// MergePurchase idempotently upserts a PURCHASED edge. Used by the
	// reconciliation pass so that replays never duplicate edges.
	MergePurchase(ctx context.Context, fact *entity.PurchaseFact) error
}
