package domain

import "time"

var (
	MessageSuccessGetFavorites   = "success get favorites"
	MessageSuccessAddFavorite    = "recipe added to favorites"
	MessageSuccessRemoveFavorite = "recipe removed from favorites"

	MessageFailedGetFavorites   = "failed to get favorites"
	MessageFailedAddFavorite    = "failed to add favorite"
	MessageFailedRemoveFavorite = "failed to remove favorite"

	ErrFavoriteExists   = &ConflictError{Reason: "recipe is already in favorites"}
	ErrFavoriteNotFound = &NotFoundError{Resource: "favorite"}
)

type (
	AddFavoriteRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	Favorite struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		CreatedAt time.Time `json:"created_at"`
		Recipe    *Recipe   `json:"recipe,omitempty"`
	}
)
