package neo4j

import (
	"context"
	"time"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"
)

// graphRepository implements the repository.GraphRepository interface.
type graphRepository struct {
	driver neo4j.DriverWithContext
}

// NewGraphRepository is the constructor for graphRepository.
func NewGraphRepository(driver neo4j.DriverWithContext) repository.GraphRepository {
	return &graphRepository{
		driver: driver,
	}
}

// EnsureSchema creates uniqueness constraints for User, Product and Category nodes.
func (repo *graphRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		"CREATE CONSTRAINT user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id IS UNIQUE",
		"CREATE CONSTRAINT product_id IF NOT EXISTS FOR (p:Product) REQUIRE p.id IS UNIQUE",
		"CREATE CONSTRAINT category_id IF NOT EXISTS FOR (c:Category) REQUIRE c.id IS UNIQUE",
	}

	session := repo.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	for _, statement := range statements {
		if _, err := session.Run(ctx, statement, nil); err != nil {
			return errors.Wrap(err, "failed to create graph constraint")
		}
	}

	return nil
}

// AddPurchase records a User-PURCHASED->Product edge.
func (repo *graphRepository) AddPurchase(ctx context.Context, userID, productID string, quantity int, date time.Time) error {
	return repo.write(ctx, `
		MERGE (u:User {id: $user_id})
		MERGE (p:Product {id: $product_id})
		CREATE (u)-[:PURCHASED {quantity: $quantity, date: $date}]->(p)`,
		map[string]any{
			"user_id":    userID,
			"product_id": productID,
			"quantity":   quantity,
			"date":       date.Format(time.RFC3339),
		})
}

// AddView records a User-VIEWED->Product edge.
func (repo *graphRepository) AddView(ctx context.Context, userID, productID string, at time.Time) error {
	return repo.write(ctx, `
		MERGE (u:User {id: $user_id})
		MERGE (p:Product {id: $product_id})
		CREATE (u)-[:VIEWED {timestamp: $timestamp}]->(p)`,
		map[string]any{
			"user_id":    userID,
			"product_id": productID,
			"timestamp":  at.Format(time.RFC3339),
		})
}

// AddSimilar records a Product-SIMILAR_TO->Product edge with a similarity score.
func (repo *graphRepository) AddSimilar(ctx context.Context, productID, otherProductID string, score float64) error {
	return repo.write(ctx, `
		MERGE (a:Product {id: $product_id})
		MERGE (b:Product {id: $other_id})
		MERGE (a)-[r:SIMILAR_TO]->(b)
		SET r.score = $score`,
		map[string]any{
			"product_id": productID,
			"other_id":   otherProductID,
			"score":      score,
		})
}

// MergePurchase idempotently upserts a PURCHASED edge keyed by its date, so
// reconciliation replays never duplicate edges.
func (repo *graphRepository) MergePurchase(ctx context.Context, fact *entity.PurchaseFact) error {
	return repo.write(ctx, `
		MERGE (u:User {id: $user_id})
		MERGE (p:Product {id: $product_id})
		MERGE (u)-[r:PURCHASED {date: $date}]->(p)
		SET r.quantity = $quantity`,
		map[string]any{
			"user_id":    fact.UserID,
			"product_id": fact.ProductID,
			"quantity":   fact.Quantity,
			"date":       fact.Date.Format(time.RFC3339),
		})
}

// RecommendationsForUser runs the collaborative-filtering traversal: products
// bought by co-purchasers that the user does not already own.
func (repo *graphRepository) RecommendationsForUser(ctx context.Context, userID string, limit int) ([]*entity.Recommendation, error) {
	return repo.queryRecommendations(ctx, `
		MATCH (target:User {id: $user_id})-[:PURCHASED]->(p:Product)<-[:PURCHASED]-(other:User)
		MATCH (other)-[:PURCHASED]->(rec:Product)
		WHERE NOT (target)-[:PURCHASED]->(rec)
		WITH rec, count(*) AS frequency
		ORDER BY frequency DESC
		LIMIT $limit
		RETURN rec.id AS product_id, rec.name AS product_name, frequency`,
		map[string]any{
			"user_id": userID,
			"limit":   limit,
		})
}

// AlsoBought returns the products most frequently bought by users who also
// purchased the given product, excluding the product itself.
func (repo *graphRepository) AlsoBought(ctx context.Context, productID string, limit int) ([]*entity.Recommendation, error) {
	return repo.queryRecommendations(ctx, `
		MATCH (:Product {id: $product_id})<-[:PURCHASED]-(u:User)-[:PURCHASED]->(other:Product)
		WHERE other.id <> $product_id
		WITH other, count(u) AS frequency
		ORDER BY frequency DESC
		LIMIT $limit
		RETURN other.id AS product_id, other.name AS product_name, frequency`,
		map[string]any{
			"product_id": productID,
			"limit":      limit,
		})
}

func (repo *graphRepository) write(ctx context.Context, cypher string, params map[string]any) error {
	session := repo.driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	if _, err := session.Run(ctx, cypher, params); err != nil {
		return errors.Wrap(err, "graph write failed")
	}

	return nil
}

func (repo *graphRepository) queryRecommendations(ctx context.Context, cypher string, params map[string]any) ([]*entity.Recommendation, error) {
	session := repo.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, errors.Wrap(err, "graph traversal failed")
	}

	recommendations := make([]*entity.Recommendation, 0)
	for result.Next(ctx) {
		record := result.Record()

		productID, _ := record.Get("product_id")
		productName, _ := record.Get("product_name")
		frequency, _ := record.Get("frequency")

		recommendation := &entity.Recommendation{}
		if id, ok := productID.(string); ok {
			recommendation.ProductID = id
		}
		if name, ok := productName.(string); ok {
			recommendation.ProductName = name
		}
		if freq, ok := frequency.(int64); ok {
			recommendation.Frequency = freq
		}

		recommendations = append(recommendations, recommendation)
	}
	if err := result.Err(); err != nil {
		return nil, errors.Wrap(err, "graph traversal iteration failed")
	}

	return recommendations, nil
}
