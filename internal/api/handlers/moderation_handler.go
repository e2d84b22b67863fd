package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/api/presenters"
	"Local-Flavor-Backend/internal/middleware"
	"Local-Flavor-Backend/pkg/moderation"
)

type (
	ModerationHandler interface {
		GetModerationQueue(c *fiber.Ctx) error
		ModerateRecipe(c *fiber.Ctx) error
	}

	moderationHandler struct {
		moderationService moderation.ModerationService
		validator         *validator.Validate
	}
)

func NewModerationHandler(moderationService moderation.ModerationService, validator *validator.Validate) ModerationHandler {
	return &moderationHandler{
		moderationService: moderationService,
		validator:         validator,
	}
}

func (h *moderationHandler) GetModerationQueue(c *fiber.Ctx) error {
	res, err := h.moderationService.GetModerationQueue(c.UserContext())
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetModerationQueue, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetModerationQueue)
}

func (h *moderationHandler) ModerateRecipe(c *fiber.Ctx) error {
	reviewer := middleware.IdentityFrom(c)
	req := new(domain.ModerateRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedModerateRecipe, domain.ErrInvalidModerationStatus)
	}

	res, err := h.moderationService.ModerateRecipe(c.UserContext(), c.Params("id"), *req, reviewer)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedModerateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, res.Message)
}
