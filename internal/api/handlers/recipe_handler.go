package handlers

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/api/presenters"
	"Local-Flavor-Backend/internal/middleware"
	"Local-Flavor-Backend/pkg/moderation"
	"Local-Flavor-Backend/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetNearbyRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		SubmitRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadPhoto(c *fiber.Ctx) error
		PurgeCache(c *fiber.Ctx) error
		InvalidateCache(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService     recipe.RecipeService
		moderationService moderation.ModerationService
		validator         *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, moderationService moderation.ModerationService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:     recipeService,
		moderationService: moderationService,
		validator:         validator,
	}
}

func (h *recipeHandler) GetNearbyRecipes(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(c.Query("lat")), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(c.Query("lng")), 64)
	if latErr != nil || lngErr != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrInvalidCoordinates)
	}

	req := domain.NearbyRecipesRequest{Lat: lat, Lng: lng}
	if raw := strings.TrimSpace(c.Query("radius")); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, domain.ErrInvalidRadius)
		}
		req.Radius = radius
	}

	res, err := h.recipeService.GetNearbyRecipes(c.UserContext(), req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) SubmitRecipe(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	req := new(domain.SubmitRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSubmitRecipe, err)
	}

	res, err := h.moderationService.SubmitRecipe(c.UserContext(), *req, identity)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedSubmitRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.UserContext(), c.Params("id"), *req, identity)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.UserContext(), c.Params("id")); err != nil {
		return presenters.Fail(c, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) UploadPhoto(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadPhoto, err)
	}

	res, err := h.recipeService.UploadPhoto(c.UserContext(), file, identity.UserID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUploadPhoto, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadPhoto)
}

func (h *recipeHandler) PurgeCache(c *fiber.Ctx) error {
	removed, err := h.recipeService.PurgeCache(c.UserContext())
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedPurgeCache, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"removed": removed}, fiber.StatusOK, domain.MessageSuccessPurgeCache)
}

func (h *recipeHandler) InvalidateCache(c *fiber.Ctx) error {
	removed, err := h.recipeService.InvalidateCache(c.UserContext(), c.Params("key"))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedPurgeCache, err)
	}
	if !removed {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedPurgeCache, &domain.NotFoundError{Resource: "cache entry"})
	}

	return presenters.SuccessResponse(c, fiber.Map{"removed": 1}, fiber.StatusOK, domain.MessageSuccessPurgeCache)
}
