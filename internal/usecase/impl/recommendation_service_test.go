package impl

import (
	"context"
	"testing"
	"time"

	"artisanmarket/internal/domain/entity"
	mockRepo "artisanmarket/internal/mocks/repository"
	"artisanmarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recommendationServiceFixtures holds all test dependencies for recommendation service tests.
type recommendationServiceFixtures struct {
	service   usecase.RecommendationUsecase
	graphRepo *mockRepo.MockGraphRepository
	orderRepo *mockRepo.MockOrderRepository
}

func createTestRecommendationService(t *testing.T) recommendationServiceFixtures {
	graphRepo := mockRepo.NewMockGraphRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewRecommendationService(RecommendationServiceParams{
		GraphRepo: graphRepo,
		OrderRepo: orderRepo,
		Logger:    newTestLogger(),
		Config:    newTestConfig(),
	})

	return recommendationServiceFixtures{
		service:   service,
		graphRepo: graphRepo,
		orderRepo: orderRepo,
	}
}

func TestRecommendationService_RecommendationsForUser_Success(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	recs := []*entity.Recommendation{
		{ProductID: "P003", ProductName: "Linen Scarf", Frequency: 4},
		{ProductID: "P007", ProductName: "Wool Blanket", Frequency: 2},
	}

	fx.graphRepo.EXPECT().
		RecommendationsForUser(ctx, "user-1", 10).
		Return(recs, nil)

	got, err := fx.service.RecommendationsForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "P003", got[0].ProductID)
	assert.GreaterOrEqual(t, got[0].Frequency, got[1].Frequency)
}

func TestRecommendationService_RecommendationsForUser_NoOverlap(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()

	// A user with no co-purchasers gets an empty result, not an error.
	fx.graphRepo.EXPECT().
		RecommendationsForUser(ctx, "loner", 10).
		Return([]*entity.Recommendation{}, nil)

	got, err := fx.service.RecommendationsForUser(ctx, "loner")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecommendationService_AlsoBought_Success(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	recs := []*entity.Recommendation{
		{ProductID: "P002", ProductName: "Clay Teapot", Frequency: 6},
	}

	fx.graphRepo.EXPECT().
		AlsoBought(ctx, "P001", 10).
		Return(recs, nil)

	got, err := fx.service.AlsoBought(ctx, "P001")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "P002", got[0].ProductID)
}

func TestRecommendationService_ReconcilePurchases_Success(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	facts := []*entity.PurchaseFact{
		{UserID: "user-1", ProductID: "P001", Quantity: 2, Date: since.Add(24 * time.Hour)},
		{UserID: "user-2", ProductID: "P002", Quantity: 1, Date: since.Add(48 * time.Hour)},
	}

	fx.orderRepo.EXPECT().
		ListPurchaseFacts(ctx, since).
		Return(facts, nil)
	fx.graphRepo.EXPECT().
		MergePurchase(ctx, facts[0]).
		Return(nil)
	fx.graphRepo.EXPECT().
		MergePurchase(ctx, facts[1]).
		Return(nil)

	replayed, err := fx.service.ReconcilePurchases(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 2, replayed)
}

func TestRecommendationService_ReconcilePurchases_SkipsFailedMerges(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	facts := []*entity.PurchaseFact{
		{UserID: "user-1", ProductID: "P001", Quantity: 2, Date: since},
		{UserID: "user-2", ProductID: "P002", Quantity: 1, Date: since},
	}

	fx.orderRepo.EXPECT().
		ListPurchaseFacts(ctx, since).
		Return(facts, nil)
	fx.graphRepo.EXPECT().
		MergePurchase(ctx, facts[0]).
		Return(errors.New("neo4j unavailable"))
	fx.graphRepo.EXPECT().
		MergePurchase(ctx, facts[1]).
		Return(nil)

	// One failed edge does not abort the replay of the rest.
	replayed, err := fx.service.ReconcilePurchases(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, 1, replayed)
}

func TestRecommendationService_ReconcilePurchases_ListError(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		ListPurchaseFacts(ctx, since).
		Return(nil, errors.New("connection refused"))

	replayed, err := fx.service.ReconcilePurchases(ctx, since)
	require.Error(t, err)
	assert.Zero(t, replayed)
}
