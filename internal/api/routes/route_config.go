package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"Local-Flavor-Backend/internal/api/handlers"
	"Local-Flavor-Backend/internal/middleware"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	ModerationHandler handlers.ModerationHandler
	FavoriteHandler   handlers.FavoriteHandler
	RatingHandler     handlers.RatingHandler
	UserHandler       handlers.UserHandler
	Middleware        middleware.Middleware
	Resolver          middleware.IdentityResolver
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestIDMiddleware())
	c.App.Use(c.Middleware.LoggingMiddleware())
	c.App.Use(c.Middleware.MetricsMiddleware())
	c.User()
	c.Recipes()
	c.Favorites()
	c.Ratings()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.Resolver)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.auth(), c.UserHandler.Me)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	// admin routes go first so /admin/cache is not read as a recipe id
	admin := recipes.Group("/admin", c.auth(), c.Middleware.AdminMiddleware())
	admin.Get("/moderation-queue", c.ModerationHandler.GetModerationQueue)
	admin.Post("/moderate/:id", c.ModerationHandler.ModerateRecipe)
	admin.Delete("/cache", c.RecipeHandler.PurgeCache)
	admin.Delete("/cache/:key", c.RecipeHandler.InvalidateCache)
	admin.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	recipes.Get("", c.RecipeHandler.GetNearbyRecipes)
	recipes.Post("", c.auth(), c.RecipeHandler.SubmitRecipe)
	recipes.Post("/photo", c.auth(), c.RecipeHandler.UploadPhoto)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", c.auth(), c.RecipeHandler.UpdateRecipe)
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/v1/favorites", c.auth())
	favorites.Get("", c.FavoriteHandler.GetFavorites)
	favorites.Post("", c.FavoriteHandler.AddFavorite)
	favorites.Delete("/:id", c.FavoriteHandler.RemoveFavorite)
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/v1/ratings")
	ratings.Get("/recipe/:recipeId", c.RatingHandler.GetRecipeRating)
	ratings.Get("/user/recipe/:recipeId", c.auth(), c.RatingHandler.GetUserRating)
	ratings.Post("", c.auth(), c.RatingHandler.RateRecipe)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
