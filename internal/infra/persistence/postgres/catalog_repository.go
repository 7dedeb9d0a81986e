package postgres

import (
	"context"

	"artisanmarket/internal/domain/entity"
	"artisanmarket/internal/domain/repository"
	"artisanmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindUserByID retrieves a user by its identifier.
func (repo *catalogRepository) FindUserByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return &entity.User{
		ID:        userM.ID,
		Name:      userM.Name,
		Email:     userM.Email,
		JoinDate:  userM.JoinDate,
		Interests: []string(userM.Interests),
	}, nil
}

// ListCategories retrieves all categories ordered by name.
func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, &entity.Category{
			ID:          categoryM.ID,
			Name:        categoryM.Name,
			Description: categoryM.Description,
		})
	}

	return categories, nil
}

// ListSellers retrieves all sellers ordered by name.
func (repo *catalogRepository) ListSellers(ctx context.Context) ([]*entity.Seller, error) {
	var sellerModels []*model.SellerModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&sellerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sellers")
	}

	sellers := make([]*entity.Seller, 0, len(sellerModels))
	for _, sellerM := range sellerModels {
		sellers = append(sellers, &entity.Seller{
			ID:     sellerM.ID,
			Name:   sellerM.Name,
			Rating: sellerM.Rating,
			Joined: sellerM.Joined,
		})
	}

	return sellers, nil
}
