package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/api/presenters"
	"Local-Flavor-Backend/internal/middleware"
	"Local-Flavor-Backend/pkg/rating"
)

type (
	RatingHandler interface {
		RateRecipe(c *fiber.Ctx) error
		GetRecipeRating(c *fiber.Ctx) error
		GetUserRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) RateRecipe(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	req := new(domain.RateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.Rating < 1 || req.Rating > 5 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, domain.ErrInvalidRating)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRateRecipe, err)
	}

	res, err := h.ratingService.RateRecipe(c.UserContext(), *req, identity.UserID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedRateRecipe, err)
	}

	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}

	return presenters.SuccessResponse(c, res, status, domain.MessageSuccessRateRecipe)
}

func (h *ratingHandler) GetRecipeRating(c *fiber.Ctx) error {
	res, err := h.ratingService.GetRecipeRating(c.UserContext(), c.Params("recipeId"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRating)
}

func (h *ratingHandler) GetUserRating(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	res, err := h.ratingService.GetUserRating(c.UserContext(), c.Params("recipeId"), identity.UserID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRating)
}
