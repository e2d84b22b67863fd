package cache

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Local-Flavor-Backend/entities"
)

type (
	CacheRepository interface {
		GetByLocationName(ctx context.Context, locationName string) (*entities.RecipeCache, error)
		Upsert(ctx context.Context, entry *entities.RecipeCache) error
		DeleteByLocationName(ctx context.Context, locationName string) (int64, error)
		DeleteAll(ctx context.Context) (int64, error)
	}

	cacheRepository struct {
		db *gorm.DB
	}
)

func NewCacheRepository(db *gorm.DB) CacheRepository {
	return &cacheRepository{db: db}
}

func (r *cacheRepository) GetByLocationName(ctx context.Context, locationName string) (*entities.RecipeCache, error) {
	var entry entities.RecipeCache
	if err := r.db.WithContext(ctx).Where("location_name = ?", locationName).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Upsert overwrites any existing row for the same location name and refreshes
// its timestamp.
func (r *cacheRepository) Upsert(ctx context.Context, entry *entities.RecipeCache) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"location_lat", "location_lng", "recipe_data", "created_at"}),
		}).
		Create(entry).Error
}

func (r *cacheRepository) DeleteByLocationName(ctx context.Context, locationName string) (int64, error) {
	res := r.db.WithContext(ctx).Where("location_name = ?", locationName).Delete(&entities.RecipeCache{})
	return res.RowsAffected, res.Error
}

func (r *cacheRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&entities.RecipeCache{})
	return res.RowsAffected, res.Error
}
