package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/api/presenters"
	"Local-Flavor-Backend/internal/middleware"
	"Local-Flavor-Backend/pkg/favorite"
)

type (
	FavoriteHandler interface {
		GetFavorites(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorite.FavoriteService
		validator       *validator.Validate
	}
)

func NewFavoriteHandler(favoriteService favorite.FavoriteService, validator *validator.Validate) FavoriteHandler {
	return &favoriteHandler{
		favoriteService: favoriteService,
		validator:       validator,
	}
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	res, err := h.favoriteService.GetFavorites(c.UserContext(), identity.UserID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetFavorites, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}

func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)
	req := new(domain.AddFavoriteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	res, err := h.favoriteService.AddFavorite(c.UserContext(), *req, identity.UserID)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedAddFavorite, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *favoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	identity := middleware.IdentityFrom(c)

	if err := h.favoriteService.RemoveFavorite(c.UserContext(), c.Params("id"), identity.UserID); err != nil {
		return presenters.Fail(c, domain.MessageFailedRemoveFavorite, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}
