package recipe

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/internal/utils/logging"
	"Local-Flavor-Backend/internal/utils/storage"
	"Local-Flavor-Backend/pkg/cache"
	"Local-Flavor-Backend/pkg/geo"
)

const photoFolder = "recipes"

type (
	RecipeService interface {
		GetNearbyRecipes(ctx context.Context, req domain.NearbyRecipesRequest) (domain.NearbyRecipesResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, identity domain.Identity) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string) error
		UploadPhoto(ctx context.Context, file *multipart.FileHeader, userID string) (domain.UploadPhotoResponse, error)
		InvalidateCache(ctx context.Context, key string) (bool, error)
		PurgeCache(ctx context.Context) (int64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		pipeline         *Pipeline
		recipeCache      cache.RecipeCache
		s3               storage.AwsS3
		defaultRadiusKM  float64
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	pipeline *Pipeline,
	recipeCache cache.RecipeCache,
	s3 storage.AwsS3,
	defaultRadiusKM float64,
) RecipeService {
	if defaultRadiusKM <= 0 {
		defaultRadiusKM = domain.DefaultSearchRadiusKM
	}
	return &recipeService{
		recipeRepository: recipeRepository,
		pipeline:         pipeline,
		recipeCache:      recipeCache,
		s3:               s3,
		defaultRadiusKM:  defaultRadiusKM,
	}
}

func (s *recipeService) GetNearbyRecipes(ctx context.Context, req domain.NearbyRecipesRequest) (domain.NearbyRecipesResponse, error) {
	point := geo.Point{Lat: req.Lat, Lng: req.Lng}
	if !point.Valid() {
		return domain.NearbyRecipesResponse{}, domain.ErrInvalidCoordinates
	}

	radius := req.Radius
	if radius == 0 {
		radius = s.defaultRadiusKM
	}
	if !(radius > 0 && radius <= domain.MaxSearchRadiusKM) {
		return domain.NearbyRecipesResponse{}, domain.ErrInvalidRadius
	}

	res, err := s.pipeline.Resolve(ctx, Query{Point: point, RadiusKM: radius})
	if err != nil {
		return domain.NearbyRecipesResponse{}, err
	}

	return domain.NearbyRecipesResponse{
		Recipes: res.Recipes,
		Source:  res.Source,
		Total:   len(res.Recipes),
	}, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (domain.Recipe, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetApprovedRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, domain.NewPersistenceError("get recipe", err)
	}

	return ToDomainRecipe(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, identity domain.Identity) (domain.Recipe, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetApprovedRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, domain.NewPersistenceError("get recipe", err)
	}

	if !identity.IsAdmin() && (recipe.UserID == nil || recipe.UserID.String() != identity.UserID) {
		return domain.Recipe{}, domain.ErrUserNotAllowed
	}

	oldCity := recipe.City
	updates := applyUpdate(recipe, req)
	if len(updates) == 0 {
		return ToDomainRecipe(recipe), nil
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipeID, updates); err != nil {
		return domain.Recipe{}, domain.NewPersistenceError("update recipe", err)
	}

	s.invalidateCity(ctx, oldCity)
	if recipe.City != oldCity {
		s.invalidateCity(ctx, recipe.City)
	}

	return ToDomainRecipe(recipe), nil
}

// applyUpdate copies the set fields of req onto recipe and returns the
// matching column updates.
func applyUpdate(recipe *entities.Recipe, req domain.UpdateRecipeRequest) map[string]interface{} {
	updates := map[string]interface{}{}

	setString := func(column string, src *string, dst *string) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		*dst = v
		updates[column] = v
	}
	setString("name", req.Name, &recipe.Name)
	setString("ingredients", req.Ingredients, &recipe.Ingredients)
	setString("instructions", req.Instructions, &recipe.Instructions)
	setString("location_name", req.LocationName, &recipe.LocationName)
	setString("city", req.City, &recipe.City)
	setString("country", req.Country, &recipe.Country)
	setString("photo_url", req.PhotoURL, &recipe.PhotoURL)

	if req.LocationLat != nil {
		recipe.LocationLat = *req.LocationLat
		updates["location_lat"] = *req.LocationLat
	}
	if req.LocationLng != nil {
		recipe.LocationLng = *req.LocationLng
		updates["location_lng"] = *req.LocationLng
	}

	return updates
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string) error {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return domain.NewPersistenceError("get recipe", err)
	}

	deleted, err := s.recipeRepository.DeleteRecipe(ctx, recipeID)
	if err != nil {
		return domain.NewPersistenceError("delete recipe", err)
	}
	if deleted == 0 {
		return domain.ErrRecipeNotFound
	}

	if recipe.PhotoURL != "" && s.s3 != nil {
		if key := s.s3.GetObjectKeyFromLink(recipe.PhotoURL); key != "" {
			if err := s.s3.DeleteFile(key); err != nil {
				logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("failed to delete recipe photo")
			}
		}
	}

	s.invalidateCity(ctx, recipe.City)
	return nil
}

func (s *recipeService) UploadPhoto(ctx context.Context, file *multipart.FileHeader, userID string) (domain.UploadPhotoResponse, error) {
	if file == nil {
		return domain.UploadPhotoResponse{}, domain.NewValidationError("photo", "photo file is required")
	}

	name := fmt.Sprintf("%s-%s", userID, uuid.New().String())
	objectKey, err := s.s3.UploadFile(name, file, photoFolder, storage.AllowImage...)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge), errors.Is(err, storage.ErrFileTypeNotAllow):
			return domain.UploadPhotoResponse{}, domain.NewValidationError("photo", err.Error())
		default:
			return domain.UploadPhotoResponse{}, domain.NewUpstreamError("object storage", err)
		}
	}

	logging.Ctx(ctx).Info().Str("key", objectKey).Str("user_id", userID).Msg("recipe photo uploaded")
	return domain.UploadPhotoResponse{PhotoURL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

func (s *recipeService) InvalidateCache(ctx context.Context, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, domain.NewValidationError("key", "cache key is required")
	}
	return s.recipeCache.Invalidate(ctx, key)
}

func (s *recipeService) PurgeCache(ctx context.Context) (int64, error) {
	return s.recipeCache.Purge(ctx)
}

func (s *recipeService) invalidateCity(ctx context.Context, name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	if _, err := s.recipeCache.Invalidate(ctx, cache.CityKey(name)); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("city", name).Msg("failed to invalidate city cache")
	}
}
