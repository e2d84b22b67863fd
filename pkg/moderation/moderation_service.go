package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/internal/utils/logging"
	"Local-Flavor-Backend/internal/utils/mailing"
	"Local-Flavor-Backend/pkg/geo"
	"Local-Flavor-Backend/pkg/metrics"
	"Local-Flavor-Backend/pkg/recipe"
	"Local-Flavor-Backend/pkg/user"
)

type (
	ModerationService interface {
		SubmitRecipe(ctx context.Context, req domain.SubmitRecipeRequest, identity domain.Identity) (domain.SubmitRecipeResponse, error)
		GetModerationQueue(ctx context.Context) ([]domain.ModerationQueueItem, error)
		ModerateRecipe(ctx context.Context, moderationID string, req domain.ModerateRequest, reviewer domain.Identity) (domain.ModerateResponse, error)
	}

	moderationService struct {
		moderationRepository ModerationRepository
		recipeRepository     recipe.RecipeRepository
		userRepository       user.UserRepository
		mailer               mailing.Mailer
		appURL               string
		now                  func() time.Time
	}
)

func NewModerationService(
	moderationRepository ModerationRepository,
	recipeRepository recipe.RecipeRepository,
	userRepository user.UserRepository,
	mailer mailing.Mailer,
	appURL string,
) ModerationService {
	return &moderationService{
		moderationRepository: moderationRepository,
		recipeRepository:     recipeRepository,
		userRepository:       userRepository,
		mailer:               mailer,
		appURL:               strings.TrimRight(appURL, "/"),
		now:                  time.Now,
	}
}

func (s *moderationService) SubmitRecipe(ctx context.Context, req domain.SubmitRecipeRequest, identity domain.Identity) (domain.SubmitRecipeResponse, error) {
	if err := validateSubmission(req); err != nil {
		return domain.SubmitRecipeResponse{}, err
	}

	submitted := &entities.Recipe{
		Name:         strings.TrimSpace(req.Name),
		Ingredients:  strings.TrimSpace(req.Ingredients),
		Instructions: strings.TrimSpace(req.Instructions),
		LocationLat:  *req.LocationLat,
		LocationLng:  *req.LocationLng,
		LocationName: strings.TrimSpace(req.LocationName),
		City:         strings.TrimSpace(req.City),
		Country:      strings.TrimSpace(req.Country),
		PhotoURL:     strings.TrimSpace(req.PhotoURL),
		SourceType:   domain.SourceUser,
		IsApproved:   false,
	}
	if uid, err := uuid.Parse(identity.UserID); err == nil {
		submitted.UserID = &uid
	}

	entry, err := s.moderationRepository.CreateSubmission(ctx, submitted)
	if err != nil {
		return domain.SubmitRecipeResponse{}, domain.NewPersistenceError("submit recipe", err)
	}

	logging.Ctx(ctx).Info().
		Str("recipe_id", submitted.ID.String()).
		Str("moderation_id", entry.ID.String()).
		Str("user_id", identity.UserID).
		Msg("recipe submitted for moderation")

	return domain.SubmitRecipeResponse{
		ID:           submitted.ID.String(),
		ModerationID: entry.ID.String(),
		Message:      domain.MessageSuccessSubmitRecipe,
	}, nil
}

func validateSubmission(req domain.SubmitRecipeRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"ingredients", req.Ingredients},
		{"instructions", req.Instructions},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return domain.NewValidationError(r.field, "is required")
		}
	}

	if req.LocationLat == nil || req.LocationLng == nil {
		return domain.NewValidationError("location", "location_lat and location_lng are required")
	}
	if !(geo.Point{Lat: *req.LocationLat, Lng: *req.LocationLng}).Valid() {
		return domain.ErrInvalidCoordinates
	}
	return nil
}

func (s *moderationService) GetModerationQueue(ctx context.Context) ([]domain.ModerationQueueItem, error) {
	items, err := s.moderationRepository.GetPendingQueue(ctx)
	if err != nil {
		return nil, domain.NewPersistenceError("get moderation queue", err)
	}
	return items, nil
}

func (s *moderationService) ModerateRecipe(ctx context.Context, moderationID string, req domain.ModerateRequest, reviewer domain.Identity) (domain.ModerateResponse, error) {
	if _, err := uuid.Parse(moderationID); err != nil {
		return domain.ModerateResponse{}, domain.ErrParseUUID
	}
	if !domain.IsTerminalModerationStatus(req.Status) {
		return domain.ModerateResponse{}, domain.ErrInvalidModerationStatus
	}

	decision := Decision{
		Status: req.Status,
		Notes:  strings.TrimSpace(req.Notes),
		At:     s.now().UTC(),
	}
	if rid, err := uuid.Parse(reviewer.UserID); err == nil {
		decision.ReviewerID = &rid
	}

	entry, err := s.moderationRepository.Decide(ctx, moderationID, decision)
	if err != nil {
		return domain.ModerateResponse{}, domain.NewPersistenceError("moderate recipe", err)
	}

	metrics.ModerationDecisions.WithLabelValues(req.Status).Inc()
	logging.Ctx(ctx).Info().
		Str("moderation_id", moderationID).
		Str("recipe_id", entry.RecipeID.String()).
		Str("status", req.Status).
		Str("reviewer_id", reviewer.UserID).
		Msg("recipe moderated")

	s.notifySubmitter(ctx, entry.RecipeID.String(), decision)

	return domain.ModerateResponse{
		Message:  fmt.Sprintf("Recipe %s", req.Status),
		RecipeID: entry.RecipeID.String(),
		Status:   req.Status,
	}, nil
}

// notifySubmitter mails the recipe owner about the decision. Failures are
// logged only; the decision is already committed.
func (s *moderationService) notifySubmitter(ctx context.Context, recipeID string, decision Decision) {
	if s.mailer == nil {
		return
	}

	moderated, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil || moderated.UserID == nil {
		return
	}

	owner, err := s.userRepository.GetUserByID(ctx, moderated.UserID.String())
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logging.Ctx(ctx).Warn().Err(err).Str("recipe_id", recipeID).Msg("failed to load submitter")
		}
		return
	}
	if owner.Email == "" {
		return
	}

	subject, body := mailing.ModerationNotice(s.appURL, moderated.Name, recipeID, decision.Status, decision.Notes)
	if err := s.mailer.SendMail(owner.Email, subject, body); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("recipe_id", recipeID).Msg("failed to send moderation notice")
	}
}
