package domain

import "time"

const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

var (
	MessageSuccessGetModerationQueue = "success get moderation queue"
	MessageFailedGetModerationQueue  = "failed to get moderation queue"
	MessageFailedModerateRecipe      = "failed to moderate recipe"

	ErrModerationNotFound      = &NotFoundError{Resource: "moderation entry"}
	ErrAlreadyModerated        = &ConflictError{Reason: "moderation entry has already been decided"}
	ErrInvalidModerationStatus = &ValidationError{Field: "status", Reason: "status must be approved or rejected"}
)

type (
	ModerationQueueItem struct {
		ModerationID   string    `json:"moderation_id"`
		Status         string    `json:"status"`
		SubmissionDate time.Time `json:"submission_date"`
		RecipeID       string    `json:"recipe_id"`
		Name           string    `json:"name"`
		LocationName   string    `json:"location_name"`
		City           string    `json:"city"`
		Country        string    `json:"country"`
		UserID         string    `json:"user_id,omitempty"`
	}

	ModerateRequest struct {
		Status string `json:"status" validate:"required,moderation_status"`
		Notes  string `json:"notes" validate:"max=2000"`
	}

	ModerateResponse struct {
		Message  string `json:"message"`
		RecipeID string `json:"recipe_id"`
		Status   string `json:"status"`
	}
)

// IsTerminalModerationStatus reports whether status ends the moderation lifecycle.
func IsTerminalModerationStatus(status string) bool {
	return status == ModerationApproved || status == ModerationRejected
}
