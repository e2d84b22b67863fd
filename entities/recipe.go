package entities

import (
	"time"

	"github.com/google/uuid"
)

type Recipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Ingredients  string     `gorm:"type:text;not null" json:"ingredients"`
	Instructions string     `gorm:"type:text;not null" json:"instructions"`
	LocationLat  float64    `gorm:"index:idx_recipes_location" json:"location_lat"`
	LocationLng  float64    `gorm:"index:idx_recipes_location" json:"location_lng"`
	LocationName string     `gorm:"type:varchar(255)" json:"location_name"`
	City         string     `gorm:"type:varchar(128);index" json:"city"`
	Country      string     `gorm:"type:varchar(128)" json:"country"`
	PhotoURL     string     `gorm:"type:text" json:"photo_url,omitempty"`
	CulturalNote string     `gorm:"type:text" json:"cultural_note,omitempty"`
	SourceType   string     `gorm:"type:varchar(16);not null;default:'user';check:chk_recipes_source_type,source_type IN ('curated','api','user')" json:"source_type"`
	IsApproved   bool       `gorm:"not null;default:false;index" json:"is_approved"`
	ApprovalDate *time.Time `json:"approval_date,omitempty"`
	UserID       *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
	Timestamp
}

// RecipeWithDistance is the scan target for distance-ordered location queries.
type RecipeWithDistance struct {
	Recipe
	Distance float64 `gorm:"column:distance" json:"distance"`
}
