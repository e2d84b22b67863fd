package moderation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/pkg/recipe"
)

type (
	Decision struct {
		Status     string
		ReviewerID *uuid.UUID
		Notes      string
		At         time.Time
	}

	ModerationRepository interface {
		CreateSubmission(ctx context.Context, recipe *entities.Recipe) (*entities.ModerationEntry, error)
		GetPendingQueue(ctx context.Context) ([]domain.ModerationQueueItem, error)
		GetEntryByID(ctx context.Context, id string) (*entities.ModerationEntry, error)
		Decide(ctx context.Context, id string, decision Decision) (*entities.ModerationEntry, error)
	}

	moderationRepository struct {
		db               *gorm.DB
		recipeRepository recipe.RecipeRepository
	}

	queueRow struct {
		ModerationID   string
		Status         string
		SubmissionDate time.Time
		RecipeID       string
		Name           string
		LocationName   string
		City           string
		Country        string
		UserID         *string
	}
)

func NewModerationRepository(db *gorm.DB, recipeRepository recipe.RecipeRepository) ModerationRepository {
	return &moderationRepository{
		db:               db,
		recipeRepository: recipeRepository,
	}
}

// CreateSubmission stores the recipe and its pending queue entry together.
func (r *moderationRepository) CreateSubmission(ctx context.Context, submitted *entities.Recipe) (*entities.ModerationEntry, error) {
	var entry entities.ModerationEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.recipeRepository.WithTx(tx).CreateRecipe(ctx, submitted); err != nil {
			return err
		}

		entry = entities.ModerationEntry{
			RecipeID:  submitted.ID,
			Status:    domain.ModerationPending,
			CreatedAt: submitted.CreatedAt,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *moderationRepository) GetPendingQueue(ctx context.Context) ([]domain.ModerationQueueItem, error) {
	var rows []queueRow
	err := r.db.WithContext(ctx).
		Table("moderation_queue AS mq").
		Select(`mq.id AS moderation_id, mq.status, mq.created_at AS submission_date,
			r.id AS recipe_id, r.name, r.location_name, r.city, r.country, r.user_id`).
		Joins("JOIN recipes r ON r.id = mq.recipe_id").
		Where("mq.status = ?", domain.ModerationPending).
		Order("mq.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.ModerationQueueItem, 0, len(rows))
	for _, row := range rows {
		item := domain.ModerationQueueItem{
			ModerationID:   row.ModerationID,
			Status:         row.Status,
			SubmissionDate: row.SubmissionDate,
			RecipeID:       row.RecipeID,
			Name:           row.Name,
			LocationName:   row.LocationName,
			City:           row.City,
			Country:        row.Country,
		}
		if row.UserID != nil {
			item.UserID = *row.UserID
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *moderationRepository) GetEntryByID(ctx context.Context, id string) (*entities.ModerationEntry, error) {
	var entry entities.ModerationEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Decide moves a pending entry to a terminal status and sets the recipe's
// visibility to match, in one transaction. The status guard in the UPDATE
// makes concurrent decisions on the same entry mutually exclusive.
func (r *moderationRepository) Decide(ctx context.Context, id string, decision Decision) (*entities.ModerationEntry, error) {
	var entry entities.ModerationEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.ModerationEntry{}).
			Where("id = ? AND status = ?", id, domain.ModerationPending).
			Updates(map[string]interface{}{
				"status":       decision.Status,
				"reviewer_id":  decision.ReviewerID,
				"review_notes": decision.Notes,
				"review_date":  decision.At,
			})
		if res.Error != nil {
			return res.Error
		}

		if err := tx.Where("id = ?", id).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrModerationNotFound
			}
			return err
		}
		if res.RowsAffected == 0 {
			return domain.ErrAlreadyModerated
		}

		approved := decision.Status == domain.ModerationApproved
		updated, err := r.recipeRepository.WithTx(tx).UpdateApproval(ctx, entry.RecipeID.String(), approved, decision.At)
		if err != nil {
			return err
		}
		if updated == 0 {
			return domain.ErrRecipeNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entry, nil
}
