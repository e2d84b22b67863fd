package routes

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/middleware"
)

// stubHandlers answers every route with the name of the handler it reached.
type stubHandlers struct{}

func reply(name string) fiber.Handler {
	return func(c *fiber.Ctx) error { return c.SendString(name) }
}

func (stubHandlers) GetNearbyRecipes(c *fiber.Ctx) error   { return reply("nearby")(c) }
func (stubHandlers) GetRecipeDetail(c *fiber.Ctx) error    { return reply("detail")(c) }
func (stubHandlers) SubmitRecipe(c *fiber.Ctx) error       { return reply("submit")(c) }
func (stubHandlers) UpdateRecipe(c *fiber.Ctx) error       { return reply("update")(c) }
func (stubHandlers) DeleteRecipe(c *fiber.Ctx) error       { return reply("delete")(c) }
func (stubHandlers) UploadPhoto(c *fiber.Ctx) error        { return reply("photo")(c) }
func (stubHandlers) PurgeCache(c *fiber.Ctx) error         { return reply("purge")(c) }
func (stubHandlers) InvalidateCache(c *fiber.Ctx) error    { return reply("invalidate")(c) }
func (stubHandlers) GetModerationQueue(c *fiber.Ctx) error { return reply("queue")(c) }
func (stubHandlers) ModerateRecipe(c *fiber.Ctx) error     { return reply("moderate")(c) }
func (stubHandlers) GetFavorites(c *fiber.Ctx) error       { return reply("favorites")(c) }
func (stubHandlers) AddFavorite(c *fiber.Ctx) error        { return reply("add-favorite")(c) }
func (stubHandlers) RemoveFavorite(c *fiber.Ctx) error     { return reply("remove-favorite")(c) }
func (stubHandlers) RateRecipe(c *fiber.Ctx) error         { return reply("rate")(c) }
func (stubHandlers) GetRecipeRating(c *fiber.Ctx) error    { return reply("recipe-rating")(c) }
func (stubHandlers) GetUserRating(c *fiber.Ctx) error      { return reply("user-rating")(c) }
func (stubHandlers) Login(c *fiber.Ctx) error              { return reply("login")(c) }
func (stubHandlers) Me(c *fiber.Ctx) error                 { return reply("me")(c) }

func newRoutedApp(role string) *fiber.App {
	app := fiber.New()
	h := stubHandlers{}
	cfg := Config{
		App:               app,
		RecipeHandler:     h,
		ModerationHandler: h,
		FavoriteHandler:   h,
		RatingHandler:     h,
		UserHandler:       h,
		Middleware:        middleware.NewMiddleware(),
		Resolver:          middleware.NewStaticResolver("3f8a8f6e-6d1c-4a55-9f0e-0c5b7a2d1e11", role),
	}
	cfg.Setup()
	return app
}

func call(t *testing.T, app *fiber.App, method, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRoutes_Dispatch(t *testing.T) {
	app := newRoutedApp(domain.RoleAdmin)

	cases := []struct {
		method, target, want string
	}{
		{fiber.MethodGet, "/api/v1/recipes?lat=1&lng=2", "nearby"},
		{fiber.MethodGet, "/api/v1/recipes/abc", "detail"},
		{fiber.MethodPost, "/api/v1/recipes", "submit"},
		{fiber.MethodPost, "/api/v1/recipes/photo", "photo"},
		{fiber.MethodPut, "/api/v1/recipes/abc", "update"},
		{fiber.MethodGet, "/api/v1/recipes/admin/moderation-queue", "queue"},
		{fiber.MethodPost, "/api/v1/recipes/admin/moderate/abc", "moderate"},
		{fiber.MethodDelete, "/api/v1/recipes/admin/cache", "purge"},
		{fiber.MethodDelete, "/api/v1/recipes/admin/cache/city:naples", "invalidate"},
		{fiber.MethodDelete, "/api/v1/recipes/admin/abc", "delete"},
		{fiber.MethodGet, "/api/v1/favorites", "favorites"},
		{fiber.MethodPost, "/api/v1/favorites", "add-favorite"},
		{fiber.MethodDelete, "/api/v1/favorites/abc", "remove-favorite"},
		{fiber.MethodPost, "/api/v1/ratings", "rate"},
		{fiber.MethodGet, "/api/v1/ratings/recipe/abc", "recipe-rating"},
		{fiber.MethodGet, "/api/v1/ratings/user/recipe/abc", "user-rating"},
		{fiber.MethodPost, "/api/v1/users/login", "login"},
		{fiber.MethodGet, "/api/v1/users/me", "me"},
	}

	for _, tc := range cases {
		status, body := call(t, app, tc.method, tc.target)
		assert.Equal(t, fiber.StatusOK, status, "%s %s", tc.method, tc.target)
		assert.Equal(t, tc.want, body, "%s %s", tc.method, tc.target)
	}
}

func TestRoutes_AdminRequiresAdminRole(t *testing.T) {
	app := newRoutedApp(domain.RoleUser)

	status, _ := call(t, app, fiber.MethodGet, "/api/v1/recipes/admin/moderation-queue")
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = call(t, app, fiber.MethodDelete, "/api/v1/recipes/admin/cache")
	assert.Equal(t, fiber.StatusForbidden, status)

	status, body := call(t, app, fiber.MethodGet, "/api/v1/recipes/abc")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "detail", body)
}

func TestRoutes_Health(t *testing.T) {
	app := newRoutedApp(domain.RoleUser)

	status, body := call(t, app, fiber.MethodGet, "/api/ping")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "pong")

	for i := 0; i < 3; i++ {
		call(t, app, fiber.MethodGet, "/api/v1/recipes/abc")
		call(t, app, fiber.MethodPost, "/api/v1/favorites")
		call(t, app, fiber.MethodDelete, "/api/v1/favorites/abc")
	}

	status, body = call(t, app, fiber.MethodGet, "/metrics")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "http_requests_total")
}
