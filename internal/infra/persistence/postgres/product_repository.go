package postgres

import (
	"context"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/infra/persistence/model"

	"github.com/pgvector/pgvector-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its identifier.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves all products for the given identifiers. Ids that do not
// resolve are simply absent from the result map; the caller decides whether
// partial resolution is acceptable.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	if len(ids) == 0 {
		return map[string]*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	products := make(map[string]*entity.Product, len(productModels))
	for _, productM := range productModels {
		products[productM.ID] = toProductDomain(productM)
	}

	return products, nil
}

// FindByCategory retrieves all products belonging to a category.
func (repo *productRepository) FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by category")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// searchResultRow is the raw row shape of the vector similarity queries,
// decoded once at this boundary.
type searchResultRow struct {
	ID           string
	Name         string
	Description  string
	Price        decimal.Decimal
	CategoryName string
	Similarity   float64
}

// SearchByVector performs a nearest-neighbor query over product embeddings
// using the pgvector cosine distance operator, ordered by similarity descending.
func (repo *productRepository) SearchByVector(ctx context.Context, embedding []float32, filters repository.SearchFilters, topK int) ([]*entity.SearchResult, error) {
	sql := `
		SELECT
			p.id, p.name, p.description, p.price, c.name AS category_name,
			1 - (pe.embedding <=> ?) AS similarity
		FROM products p
		JOIN product_embeddings pe ON p.id = pe.product_id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE 1=1`
	args := []any{pgvector.NewVector(embedding)}

	if filters.Category != nil {
		sql += " AND c.name = ?"
		args = append(args, *filters.Category)
	}
	if filters.MinPrice != nil {
		sql += " AND p.price >= ?"
		args = append(args, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		sql += " AND p.price <= ?"
		args = append(args, *filters.MaxPrice)
	}

	sql += " ORDER BY similarity DESC LIMIT ?"
	args = append(args, topK)

	var rows []searchResultRow
	if err := repo.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run vector similarity search")
	}

	return toSearchResults(rows), nil
}

// FindSimilarByProduct finds the products nearest to the given product's own
// embedding, excluding the product itself.
func (repo *productRepository) FindSimilarByProduct(ctx context.Context, productID string, topK int) ([]*entity.SearchResult, error) {
	var exists int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductEmbeddingModel{}).
		Where("product_id = ?", productID).
		Count(&exists).Error; err != nil {
		return nil, errors.Wrap(err, "failed to check product embedding")
	}
	if exists == 0 {
		return nil, repository.ErrEmbeddingNotFound
	}

	sql := `
		WITH target_embedding AS (
			SELECT embedding FROM product_embeddings WHERE product_id = ?
		)
		SELECT
			p.id, p.name, p.description, p.price, c.name AS category_name,
			1 - (pe.embedding <=> (SELECT embedding FROM target_embedding)) AS similarity
		FROM products p
		JOIN product_embeddings pe ON p.id = pe.product_id
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id != ?
		ORDER BY similarity DESC
		LIMIT ?`

	var rows []searchResultRow
	if err := repo.db.WithContext(ctx).Raw(sql, productID, productID, topK).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find similar products")
	}

	return toSearchResults(rows), nil
}

// DecrementStock conditionally reduces the stock counter for a product.
// The guard in the WHERE clause makes the decrement atomic: concurrent
// checkouts can never drive stock below zero.
func (repo *productRepository) DecrementStock(ctx context.Context, productID string, by int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", productID, by).
		UpdateColumn("stock", gorm.Expr("stock - ?", by))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

func toSearchResults(rows []searchResultRow) []*entity.SearchResult {
	results := make([]*entity.SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, &entity.SearchResult{
			ProductID:    row.ID,
			Name:         row.Name,
			Description:  row.Description,
			Price:        row.Price,
			CategoryName: row.CategoryName,
			Similarity:   row.Similarity,
		})
	}

	return results
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		CategoryID:  data.CategoryID,
		SellerID:    data.SellerID,
		Tags:        []string(data.Tags),
		Stock:       data.Stock,
	}
}
