package favorite

import (
	"context"

	"gorm.io/gorm"

	"Local-Flavor-Backend/entities"
)

type (
	FavoriteRepository interface {
		AddFavorite(ctx context.Context, favorite *entities.Favorite) error
		RemoveFavorite(ctx context.Context, userID string, id string) (int64, error)
		GetFavorites(ctx context.Context, userID string) ([]entities.Favorite, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite *entities.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

// RemoveFavorite deletes the caller's favorite identified either by its own
// id or by the favorited recipe's id.
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID string, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND (id = ? OR recipe_id = ?)", userID, id, id).
		Delete(&entities.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *favoriteRepository) GetFavorites(ctx context.Context, userID string) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := r.db.WithContext(ctx).
		Joins("Recipe").
		Where("favorites.user_id = ? AND \"Recipe\".is_approved = ?", userID, true).
		Order("favorites.created_at DESC").
		Find(&favorites).Error
	return favorites, err
}
