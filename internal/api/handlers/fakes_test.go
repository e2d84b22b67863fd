package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/api/presenters"
	"Local-Flavor-Backend/internal/utils"
	"Local-Flavor-Backend/pkg/favorite"
	"Local-Flavor-Backend/pkg/moderation"
	"Local-Flavor-Backend/pkg/rating"
	"Local-Flavor-Backend/pkg/recipe"
	"Local-Flavor-Backend/pkg/user"
)

const (
	testUserID   = "3f8a8f6e-6d1c-4a55-9f0e-0c5b7a2d1e11"
	testRecipeID = "7b1e6f0a-2c4d-4e8f-9a1b-3c5d7e9f0a12"
)

func init() {
	utils.InitValidator()
}

// newTestApp mounts a handler behind a stub that plays the part of AuthMiddleware.
func newTestApp(role string, register func(app *fiber.App)) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", testUserID)
		c.Locals("role", role)
		return c.Next()
	})
	register(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body string) (int, presenters.Response) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, presenters.Response) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out presenters.Response
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

type fakeRecipeService struct {
	recipe.RecipeService

	nearbyReq   domain.NearbyRecipesRequest
	nearbyErr   error
	detailErr   error
	updateErr   error
	deleteErr   error
	uploadErr   error
	uploadUser  string
	invalidated bool
	purged      int64
}

func (f *fakeRecipeService) GetNearbyRecipes(_ context.Context, req domain.NearbyRecipesRequest) (domain.NearbyRecipesResponse, error) {
	f.nearbyReq = req
	if f.nearbyErr != nil {
		return domain.NearbyRecipesResponse{}, f.nearbyErr
	}
	recipes := []domain.Recipe{{ID: testRecipeID, Name: "Pizza Margherita", SourceType: domain.SourceCurated}}
	return domain.NearbyRecipesResponse{Recipes: recipes, Source: recipe.TierCity, Total: len(recipes)}, nil
}

func (f *fakeRecipeService) GetRecipeDetail(_ context.Context, id string) (domain.Recipe, error) {
	if f.detailErr != nil {
		return domain.Recipe{}, f.detailErr
	}
	return domain.Recipe{ID: id, Name: "Pizza Margherita"}, nil
}

func (f *fakeRecipeService) UpdateRecipe(_ context.Context, id string, req domain.UpdateRecipeRequest, _ domain.Identity) (domain.Recipe, error) {
	if f.updateErr != nil {
		return domain.Recipe{}, f.updateErr
	}
	name := "unchanged"
	if req.Name != nil {
		name = *req.Name
	}
	return domain.Recipe{ID: id, Name: name}, nil
}

func (f *fakeRecipeService) DeleteRecipe(context.Context, string) error {
	return f.deleteErr
}

func (f *fakeRecipeService) UploadPhoto(_ context.Context, file *multipart.FileHeader, userID string) (domain.UploadPhotoResponse, error) {
	f.uploadUser = userID
	if f.uploadErr != nil {
		return domain.UploadPhotoResponse{}, f.uploadErr
	}
	return domain.UploadPhotoResponse{PhotoURL: "https://cdn.example.com/recipes/" + file.Filename}, nil
}

func (f *fakeRecipeService) InvalidateCache(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, domain.NewValidationError("key", "cache key is required")
	}
	return f.invalidated, nil
}

func (f *fakeRecipeService) PurgeCache(context.Context) (int64, error) {
	return f.purged, nil
}

type fakeModerationService struct {
	moderation.ModerationService

	submitted  domain.SubmitRecipeRequest
	submitter  domain.Identity
	moderateFn func(id string, req domain.ModerateRequest) (domain.ModerateResponse, error)
}

func (f *fakeModerationService) SubmitRecipe(_ context.Context, req domain.SubmitRecipeRequest, identity domain.Identity) (domain.SubmitRecipeResponse, error) {
	f.submitted = req
	f.submitter = identity
	return domain.SubmitRecipeResponse{ID: testRecipeID, Message: domain.MessageSuccessSubmitRecipe}, nil
}

func (f *fakeModerationService) GetModerationQueue(context.Context) ([]domain.ModerationQueueItem, error) {
	return []domain.ModerationQueueItem{{RecipeID: testRecipeID, Status: domain.ModerationPending}}, nil
}

func (f *fakeModerationService) ModerateRecipe(_ context.Context, id string, req domain.ModerateRequest, _ domain.Identity) (domain.ModerateResponse, error) {
	return f.moderateFn(id, req)
}

type fakeFavoriteService struct {
	favorite.FavoriteService

	addErr    error
	removeErr error
}

func (f *fakeFavoriteService) GetFavorites(context.Context, string) ([]domain.Favorite, error) {
	return []domain.Favorite{{RecipeID: testRecipeID}}, nil
}

func (f *fakeFavoriteService) AddFavorite(_ context.Context, req domain.AddFavoriteRequest, _ string) (domain.Favorite, error) {
	if f.addErr != nil {
		return domain.Favorite{}, f.addErr
	}
	return domain.Favorite{RecipeID: req.RecipeID}, nil
}

func (f *fakeFavoriteService) RemoveFavorite(context.Context, string, string) error {
	return f.removeErr
}

type fakeRatingService struct {
	rating.RatingService

	created bool
}

func (f *fakeRatingService) RateRecipe(_ context.Context, req domain.RateRecipeRequest, _ string) (domain.RateRecipeResponse, error) {
	return domain.RateRecipeResponse{RecipeID: req.RecipeID, Rating: req.Rating, Created: f.created}, nil
}

func (f *fakeRatingService) GetRecipeRating(_ context.Context, recipeID string) (domain.RecipeRating, error) {
	return domain.RecipeRating{RecipeID: recipeID, AverageRating: 4.5, RatingCount: 2}, nil
}

func (f *fakeRatingService) GetUserRating(_ context.Context, recipeID string, _ string) (domain.UserRecipeRating, error) {
	return domain.UserRecipeRating{RecipeID: recipeID}, nil
}

type fakeUserService struct {
	user.UserService

	loginErr error
}

func (f *fakeUserService) Login(context.Context, domain.LoginRequest) (domain.LoginResponse, error) {
	if f.loginErr != nil {
		return domain.LoginResponse{}, f.loginErr
	}
	return domain.LoginResponse{Token: "signed", Role: domain.RoleUser}, nil
}

func (f *fakeUserService) GetMe(_ context.Context, userID string) (domain.UserResponse, error) {
	return domain.UserResponse{ID: userID, Username: "demo"}, nil
}
