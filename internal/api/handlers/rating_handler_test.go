package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/utils"
)

func newRatingApp(svc *fakeRatingService) *fiber.App {
	h := NewRatingHandler(svc, utils.Validate)
	return newTestApp(domain.RoleUser, func(app *fiber.App) {
		app.Post("/ratings", h.RateRecipe)
		app.Get("/ratings/recipe/:recipeId", h.GetRecipeRating)
		app.Get("/ratings/user/recipe/:recipeId", h.GetUserRating)
	})
}

func TestRateRecipe_StatusReflectsInsertOrUpdate(t *testing.T) {
	body := `{"recipe_id":"` + testRecipeID + `","rating":4}`

	status, res := doJSON(t, newRatingApp(&fakeRatingService{created: true}), fiber.MethodPost, "/ratings", body)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.EqualValues(t, 4, res.Data.(map[string]interface{})["rating"])

	status, _ = doJSON(t, newRatingApp(&fakeRatingService{}), fiber.MethodPost, "/ratings", body)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRateRecipe_OutOfRange(t *testing.T) {
	app := newRatingApp(&fakeRatingService{})

	for _, rating := range []string{"0", "6", "-1"} {
		status, res := doJSON(t, app, fiber.MethodPost, "/ratings", `{"recipe_id":"`+testRecipeID+`","rating":`+rating+`}`)
		assert.Equal(t, fiber.StatusBadRequest, status, rating)
		assert.Equal(t, domain.ErrInvalidRating.Error(), res.Error)
	}
}

func TestGetRatings(t *testing.T) {
	app := newRatingApp(&fakeRatingService{})

	status, res := doJSON(t, app, fiber.MethodGet, "/ratings/recipe/"+testRecipeID, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 4.5, res.Data.(map[string]interface{})["average_rating"])

	status, res = doJSON(t, app, fiber.MethodGet, "/ratings/user/recipe/"+testRecipeID, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, res.Data.(map[string]interface{})["has_rated"])
}
