package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecipeCache holds a serialized recipe set keyed by city name or rounded
// coordinates. Rows are disposable and may be purged at any time.
type RecipeCache struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LocationName string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"location_name"`
	LocationLat  float64   `json:"location_lat"`
	LocationLng  float64   `json:"location_lng"`
	RecipeData   string    `gorm:"type:text;not null" json:"recipe_data"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;not null" json:"created_at"`
}

func (RecipeCache) TableName() string {
	return "recipe_cache"
}
