package recipe

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/pkg/geo"
)

type (
	RecipeRepository interface {
		WithTx(tx *gorm.DB) RecipeRepository
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetApprovedRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		FindApprovedNear(ctx context.Context, center geo.Point, radiusKM float64) ([]entities.RecipeWithDistance, error)
		GetApprovedRecipesByCity(ctx context.Context, city string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id string, updates map[string]interface{}) error
		UpdateApproval(ctx context.Context, id string, approved bool, at time.Time) (int64, error)
		DeleteRecipe(ctx context.Context, id string) (int64, error)
		CountRecipes(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) WithTx(tx *gorm.DB) RecipeRepository {
	return &recipeRepository{db: tx}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) CreateRecipes(ctx context.Context, recipes []*entities.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(recipes, 100).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetApprovedRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_approved = ?", id, true).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// FindApprovedNear prefilters with a bounding box in SQL, then keeps only rows
// whose haversine distance is within radiusKM, nearest first.
func (r *recipeRepository) FindApprovedNear(ctx context.Context, center geo.Point, radiusKM float64) ([]entities.RecipeWithDistance, error) {
	box := geo.NewBoundingBox(center, radiusKM)

	query := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Where("location_lat BETWEEN ? AND ?", box.MinLat, box.MaxLat)
	if box.WrapsAntimeridian {
		query = query.Where("location_lng >= ? OR location_lng <= ?", box.MinLng, box.MaxLng)
	} else {
		query = query.Where("location_lng BETWEEN ? AND ?", box.MinLng, box.MaxLng)
	}

	var candidates []entities.Recipe
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}

	nearby := make([]entities.RecipeWithDistance, 0, len(candidates))
	for _, c := range candidates {
		d := geo.Distance(center, geo.Point{Lat: c.LocationLat, Lng: c.LocationLng})
		if d <= radiusKM {
			nearby = append(nearby, entities.RecipeWithDistance{Recipe: c, Distance: d})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})

	return nearby, nil
}

func (r *recipeRepository) GetApprovedRecipesByCity(ctx context.Context, city string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("is_approved = ? AND LOWER(city) = ?", true, strings.ToLower(strings.TrimSpace(city))).
		Order("created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, id string, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *recipeRepository) UpdateApproval(ctx context.Context, id string, approved bool, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_approved":   approved,
			"approval_date": at,
		})
	return res.RowsAffected, res.Error
}

// DeleteRecipe removes a recipe together with everything that references it.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.ModerationEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Rating{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error
	return count, err
}
