package domain

import "time"

const (
	SourceCurated = "curated"
	SourceAPI     = "api"
	SourceUser    = "user"

	DefaultSearchRadiusKM = 50.0
	MaxSearchRadiusKM     = 1000.0
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSubmitRecipe    = "Recipe submitted successfully and awaiting moderation"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadPhoto     = "photo uploaded successfully"
	MessageSuccessPurgeCache      = "recipe cache purged"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSubmitRecipe    = "failed to submit recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadPhoto     = "failed to upload photo"
	MessageFailedPurgeCache      = "failed to purge recipe cache"

	ErrRecipeNotFound     = &NotFoundError{Resource: "recipe"}
	ErrInvalidCoordinates = &ValidationError{Field: "lat,lng", Reason: "latitude and longitude are required numbers within range"}
	ErrInvalidRadius      = &ValidationError{Field: "radius", Reason: "radius must be a positive number of kilometers"}
)

type (
	Recipe struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Ingredients  string     `json:"ingredients"`
		Instructions string     `json:"instructions"`
		LocationLat  float64    `json:"location_lat"`
		LocationLng  float64    `json:"location_lng"`
		LocationName string     `json:"location_name,omitempty"`
		City         string     `json:"city,omitempty"`
		Country      string     `json:"country,omitempty"`
		PhotoURL     string     `json:"photo_url,omitempty"`
		CulturalNote string     `json:"cultural_note,omitempty"`
		SourceType   string     `json:"source_type"`
		IsApproved   bool       `json:"is_approved"`
		ApprovalDate *time.Time `json:"approval_date,omitempty"`
		UserID       string     `json:"user_id,omitempty"`
		CreatedAt    time.Time  `json:"created_at"`
		Distance     float64    `json:"distance"`
	}

	NearbyRecipesRequest struct {
		Lat    float64 `json:"lat"`
		Lng    float64 `json:"lng"`
		Radius float64 `json:"radius"`
	}

	NearbyRecipesResponse struct {
		Recipes []Recipe `json:"recipes"`
		Source  string   `json:"source"`
		Total   int      `json:"total"`
	}

	SubmitRecipeRequest struct {
		Name         string   `json:"name" validate:"required,max=255"`
		Ingredients  string   `json:"ingredients" validate:"required"`
		Instructions string   `json:"instructions" validate:"required"`
		LocationLat  *float64 `json:"location_lat" validate:"required,latitude"`
		LocationLng  *float64 `json:"location_lng" validate:"required,longitude"`
		LocationName string   `json:"location_name" validate:"max=255"`
		City         string   `json:"city" validate:"max=128"`
		Country      string   `json:"country" validate:"max=128"`
		PhotoURL     string   `json:"photo_url" validate:"omitempty,url"`
	}

	SubmitRecipeResponse struct {
		ID           string `json:"id"`
		ModerationID string `json:"moderation_id"`
		Message      string `json:"message"`
	}

	UpdateRecipeRequest struct {
		Name         *string  `json:"name" validate:"omitempty,min=1,max=255"`
		Ingredients  *string  `json:"ingredients" validate:"omitempty,min=1"`
		Instructions *string  `json:"instructions" validate:"omitempty,min=1"`
		LocationLat  *float64 `json:"location_lat" validate:"omitempty,latitude"`
		LocationLng  *float64 `json:"location_lng" validate:"omitempty,longitude"`
		LocationName *string  `json:"location_name" validate:"omitempty,max=255"`
		City         *string  `json:"city" validate:"omitempty,max=128"`
		Country      *string  `json:"country" validate:"omitempty,max=128"`
		PhotoURL     *string  `json:"photo_url" validate:"omitempty,url"`
	}

	UploadPhotoResponse struct {
		PhotoURL string `json:"photo_url"`
	}
)
