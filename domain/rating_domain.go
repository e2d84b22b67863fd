package domain

var (
	MessageSuccessGetRating  = "success get rating"
	MessageSuccessRateRecipe = "rating saved"

	MessageFailedGetRating  = "failed to get rating"
	MessageFailedRateRecipe = "failed to rate recipe"

	ErrInvalidRating = &ValidationError{Field: "rating", Reason: "rating must be an integer between 1 and 5"}
)

type (
	RateRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	}

	RateRecipeResponse struct {
		RecipeID string `json:"recipe_id"`
		Rating   int    `json:"rating"`
		Created  bool   `json:"created"`
	}

	RecipeRating struct {
		RecipeID      string  `json:"recipe_id"`
		AverageRating float64 `json:"average_rating"`
		RatingCount   int64   `json:"rating_count"`
	}

	UserRecipeRating struct {
		RecipeID string `json:"recipe_id"`
		Rating   int    `json:"rating"`
		HasRated bool   `json:"has_rated"`
	}
)
