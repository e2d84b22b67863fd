package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"Local-Flavor-Backend/cmd/database/seed"
	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/internal/api/handlers"
	"Local-Flavor-Backend/internal/api/presenters"
	"Local-Flavor-Backend/internal/api/routes"
	"Local-Flavor-Backend/internal/middleware"
	"Local-Flavor-Backend/internal/utils"
	"Local-Flavor-Backend/internal/utils/logging"
	"Local-Flavor-Backend/internal/utils/mailing"
	"Local-Flavor-Backend/internal/utils/storage"
	"Local-Flavor-Backend/pkg/cache"
	"Local-Flavor-Backend/pkg/city"
	"Local-Flavor-Backend/pkg/favorite"
	"Local-Flavor-Backend/pkg/generator"
	"Local-Flavor-Backend/pkg/jwt"
	"Local-Flavor-Backend/pkg/moderation"
	"Local-Flavor-Backend/pkg/rating"
	"Local-Flavor-Backend/pkg/recipe"
	"Local-Flavor-Backend/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		JSONEncoder:       json.Marshal,
		JSONDecoder:       json.Unmarshal,
		ErrorHandler:      errorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up access log and limiter
	logFile := utils.GetConfigDefault("LOG_FILE", "./logs/app.log")
	if err := os.MkdirAll(filepath.Dir(logFile), os.ModePerm); err != nil {
		logging.Error().Err(err).Msg("error creating logs directory")
		return nil, err
	}
	file, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		logging.Error().Err(err).Msg("error opening log file")
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfigDefault("DB_TIMEZONE", "UTC"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	radiusKM := utils.GetConfigFloat("SEARCH_RADIUS_KM", domain.DefaultSearchRadiusKM)
	directory := city.DefaultDirectory(radiusKM)

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	moderationRepository := moderation.NewModerationRepository(db, recipeRepository)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	cacheRepository := cache.NewCacheRepository(db)

	recipeCache := cache.NewRecipeCache(cacheRepository, utils.GetConfigDuration("CACHE_TTL", 24*time.Hour))

	pipeline := recipe.NewPipeline(
		recipe.NewStoreStrategy(recipeRepository),
		recipe.NewCityStrategy(directory, recipeCache, recipeRepository),
		recipe.NewGeneratorStrategy(
			directory,
			recipeCache,
			newPrimaryGenerator(),
			generator.NewTemplate(),
			recipeRepository,
			recipe.GeneratorStrategyConfig{
				Timeout: utils.GetConfigDuration("GENERATOR_TIMEOUT", 15*time.Second),
				Persist: utils.GetConfigBool("PERSIST_GENERATED", true),
			},
		),
		recipe.NewFailsafeStrategy(nil),
	)

	// Service
	jwtService := jwt.NewJWTService(jwtSecret(), 0)
	userService := user.NewUserService(userRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, pipeline, recipeCache, s3, radiusKM)
	moderationService := moderation.NewModerationService(
		moderationRepository,
		recipeRepository,
		userRepository,
		mailer,
		utils.GetConfig("APP_URL"),
	)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, recipeRepository)
	ratingService := rating.NewRatingService(ratingRepository, recipeRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, moderationService, validator)
	moderationHandler := handlers.NewModerationHandler(moderationService, validator)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)

	resolver := middleware.NewIdentityResolver(
		utils.GetConfigDefault("AUTH_MODE", middleware.AuthModeStatic),
		utils.GetConfigDefault("DEFAULT_USER_ID", seed.AdminUserID.String()),
		jwtService,
	)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		ModerationHandler: moderationHandler,
		FavoriteHandler:   favoriteHandler,
		RatingHandler:     ratingHandler,
		UserHandler:       userHandler,
		Middleware:        middlewares,
		Resolver:          resolver,
	}
	routesConfig.Setup()
	return app, nil
}

// newPrimaryGenerator returns nil unless an external provider is configured,
// leaving the template as the only generator.
func newPrimaryGenerator() generator.Generator {
	provider := strings.ToLower(utils.GetConfigDefault("GENERATOR_PROVIDER", "template"))
	apiKey := utils.GetConfig("GENERATOR_API_KEY")

	if provider != "perplexity" {
		return nil
	}
	if apiKey == "" {
		logging.Warn().Msg("GENERATOR_API_KEY not set, falling back to template recipes")
		return nil
	}

	perplexity := generator.NewPerplexity(generator.PerplexityConfig{
		APIKey:  apiKey,
		Model:   utils.GetConfig("GENERATOR_MODEL"),
		URL:     utils.GetConfig("GENERATOR_URL"),
		Timeout: utils.GetConfigDuration("GENERATOR_TIMEOUT", 15*time.Second),
	})
	return generator.NewGuarded(perplexity, generator.GuardConfig{
		RequestsPerSecond: utils.GetConfigFloat("GENERATOR_RPS", 1),
		Burst:             2,
	})
}

func jwtSecret() string {
	secret := utils.GetConfig("JWT_SECRET")
	if secret == "" {
		logging.Warn().Msg("JWT_SECRET not set, issued tokens will not survive a restart")
		secret = uuid.NewString()
	}
	return secret
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return presenters.ErrorResponse(c, fiberErr.Code, fiberErr.Message, err)
	}
	return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessRequest, err)
}
