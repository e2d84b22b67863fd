package rating

import (
	"context"
	"time"

	"gorm.io/gorm"

	"Local-Flavor-Backend/entities"
)

type (
	Aggregate struct {
		AverageRating float64
		RatingCount   int64
	}

	RatingRepository interface {
		UpsertRating(ctx context.Context, userID string, recipeID string, value int) (bool, error)
		GetAggregate(ctx context.Context, recipeID string) (Aggregate, error)
		GetUserRating(ctx context.Context, userID string, recipeID string) (*entities.Rating, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating writes the single rating row for (user, recipe) and reports
// whether it was inserted rather than updated.
func (r *ratingRepository) UpsertRating(ctx context.Context, userID string, recipeID string, value int) (bool, error) {
	var inserted bool
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO ratings (user_id, recipe_id, rating, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, recipe_id)
		DO UPDATE SET rating = EXCLUDED.rating, updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0) AS inserted`,
		userID, recipeID, value, now, now,
	).Scan(&inserted).Error

	return inserted, err
}

func (r *ratingRepository) GetAggregate(ctx context.Context, recipeID string) (Aggregate, error) {
	var agg Aggregate
	err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS rating_count").
		Where("recipe_id = ?", recipeID).
		Scan(&agg).Error
	return agg, err
}

func (r *ratingRepository) GetUserRating(ctx context.Context, userID string, recipeID string) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}
