package favorite

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/pkg/recipe"
)

type (
	FavoriteService interface {
		GetFavorites(ctx context.Context, userID string) ([]domain.Favorite, error)
		AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) (domain.Favorite, error)
		RemoveFavorite(ctx context.Context, id string, userID string) error
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		recipeRepository   recipe.RecipeRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, recipeRepository recipe.RecipeRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		recipeRepository:   recipeRepository,
	}
}

func (s *favoriteService) GetFavorites(ctx context.Context, userID string) ([]domain.Favorite, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	rows, err := s.favoriteRepository.GetFavorites(ctx, userID)
	if err != nil {
		return nil, domain.NewPersistenceError("get favorites", err)
	}

	favorites := make([]domain.Favorite, 0, len(rows))
	for _, row := range rows {
		fav := domain.Favorite{
			ID:        row.ID.String(),
			RecipeID:  row.RecipeID.String(),
			CreatedAt: row.CreatedAt,
		}
		if row.Recipe != nil {
			r := recipe.ToDomainRecipe(row.Recipe)
			fav.Recipe = &r
		}
		favorites = append(favorites, fav)
	}
	return favorites, nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, req domain.AddFavoriteRequest, userID string) (domain.Favorite, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.Favorite{}, domain.ErrParseUUID
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.Favorite{}, domain.ErrParseUUID
	}

	favorited, err := s.recipeRepository.GetApprovedRecipeByID(ctx, recipeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Favorite{}, domain.ErrRecipeNotFound
		}
		return domain.Favorite{}, domain.NewPersistenceError("get recipe", err)
	}

	row := &entities.Favorite{
		UserID:   uid,
		RecipeID: recipeID,
	}
	if err := s.favoriteRepository.AddFavorite(ctx, row); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Favorite{}, domain.ErrFavoriteExists
		}
		return domain.Favorite{}, domain.NewPersistenceError("add favorite", err)
	}

	r := recipe.ToDomainRecipe(favorited)
	return domain.Favorite{
		ID:        row.ID.String(),
		RecipeID:  recipeID.String(),
		CreatedAt: row.CreatedAt,
		Recipe:    &r,
	}, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if _, err := uuid.Parse(userID); err != nil {
		return domain.ErrParseUUID
	}

	removed, err := s.favoriteRepository.RemoveFavorite(ctx, userID, id)
	if err != nil {
		return domain.NewPersistenceError("remove favorite", err)
	}
	if removed == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}
