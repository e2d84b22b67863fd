package rating

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/pkg/recipe"
)

type (
	RatingService interface {
		RateRecipe(ctx context.Context, req domain.RateRecipeRequest, userID string) (domain.RateRecipeResponse, error)
		GetRecipeRating(ctx context.Context, recipeID string) (domain.RecipeRating, error)
		GetUserRating(ctx context.Context, recipeID string, userID string) (domain.UserRecipeRating, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
		recipeRepository recipe.RecipeRepository
	}
)

func NewRatingService(ratingRepository RatingRepository, recipeRepository recipe.RecipeRepository) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		recipeRepository: recipeRepository,
	}
}

func (s *ratingService) RateRecipe(ctx context.Context, req domain.RateRecipeRequest, userID string) (domain.RateRecipeResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return domain.RateRecipeResponse{}, domain.ErrInvalidRating
	}
	if _, err := uuid.Parse(req.RecipeID); err != nil {
		return domain.RateRecipeResponse{}, domain.ErrParseUUID
	}
	if _, err := uuid.Parse(userID); err != nil {
		return domain.RateRecipeResponse{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetApprovedRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RateRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RateRecipeResponse{}, domain.NewPersistenceError("get recipe", err)
	}

	created, err := s.ratingRepository.UpsertRating(ctx, userID, req.RecipeID, req.Rating)
	if err != nil {
		return domain.RateRecipeResponse{}, domain.NewPersistenceError("rate recipe", err)
	}

	return domain.RateRecipeResponse{
		RecipeID: req.RecipeID,
		Rating:   req.Rating,
		Created:  created,
	}, nil
}

func (s *ratingService) GetRecipeRating(ctx context.Context, recipeID string) (domain.RecipeRating, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.RecipeRating{}, domain.ErrParseUUID
	}

	agg, err := s.ratingRepository.GetAggregate(ctx, recipeID)
	if err != nil {
		return domain.RecipeRating{}, domain.NewPersistenceError("get rating", err)
	}

	return domain.RecipeRating{
		RecipeID:      recipeID,
		AverageRating: math.Round(agg.AverageRating*100) / 100,
		RatingCount:   agg.RatingCount,
	}, nil
}

func (s *ratingService) GetUserRating(ctx context.Context, recipeID string, userID string) (domain.UserRecipeRating, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.UserRecipeRating{}, domain.ErrParseUUID
	}
	if _, err := uuid.Parse(userID); err != nil {
		return domain.UserRecipeRating{}, domain.ErrParseUUID
	}

	rating, err := s.ratingRepository.GetUserRating(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserRecipeRating{RecipeID: recipeID}, nil
		}
		return domain.UserRecipeRating{}, domain.NewPersistenceError("get user rating", err)
	}

	return domain.UserRecipeRating{
		RecipeID: recipeID,
		Rating:   rating.Rating,
		HasRated: true,
	}, nil
}
