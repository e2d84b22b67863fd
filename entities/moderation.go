package entities

import (
	"time"

	"github.com/google/uuid"
)

type ModerationEntry struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"recipe_id"`
	Status      string     `gorm:"type:varchar(16);not null;default:'pending';index;check:chk_moderation_status,status IN ('pending','approved','rejected')" json:"status"`
	ReviewerID  *uuid.UUID `gorm:"type:uuid" json:"reviewer_id,omitempty"`
	ReviewNotes string     `gorm:"type:text" json:"review_notes,omitempty"`
	ReviewDate  *time.Time `json:"review_date,omitempty"`
	CreatedAt   time.Time  `gorm:"type:timestamp with time zone;not null;index" json:"created_at"`

	Recipe   *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Reviewer *User   `gorm:"foreignKey:ReviewerID;constraint:OnDelete:SET NULL"`
}

func (ModerationEntry) TableName() string {
	return "moderation_queue"
}
