package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Local-Flavor-Backend/domain"
	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/internal/utils"
	"Local-Flavor-Backend/internal/utils/logging"
	"Local-Flavor-Backend/pkg/curated"
	"Local-Flavor-Backend/pkg/recipe"
	"Local-Flavor-Backend/pkg/user"
)

var (
	AdminUserID   = uuid.MustParse("00000000-0000-4000-8000-000000000001")
	DefaultUserID = uuid.MustParse("00000000-0000-4000-8000-000000000002")
)

const defaultSeedPassword = "localflavor"

// Seed upserts the built-in accounts and loads the curated recipes into an
// empty store.
func Seed(ctx context.Context, db *gorm.DB) error {
	if err := seedUsers(ctx, user.NewUserRepository(db)); err != nil {
		return err
	}
	return seedRecipes(ctx, recipe.NewRecipeRepository(db))
}

func seedUsers(ctx context.Context, userRepository user.UserRepository) error {
	password := utils.GetConfig("SEED_USER_PASSWORD")
	if password == "" {
		logging.Warn().Msg("SEED_USER_PASSWORD not set, seeding users with the default password")
		password = defaultSeedPassword
	}

	hash, err := user.HashPassword(password)
	if err != nil {
		return err
	}

	users := []*entities.User{
		{ID: AdminUserID, Username: "admin_user", Email: "admin@localflavor.app", PasswordHash: hash, Role: domain.RoleAdmin},
		{ID: DefaultUserID, Username: "default_user", Email: "user@localflavor.app", PasswordHash: hash, Role: domain.RoleUser},
	}
	for _, u := range users {
		if err := userRepository.UpsertUser(ctx, u); err != nil {
			logging.Error().Err(err).Str("username", u.Username).Msg("error seeding user")
			return err
		}
	}
	return nil
}

func seedRecipes(ctx context.Context, recipeRepository recipe.RecipeRepository) error {
	count, err := recipeRepository.CountRecipes(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logging.Info().Int64("recipes", count).Msg("recipe store already seeded")
		return nil
	}

	now := time.Now()
	all := curated.All()
	rows := make([]*entities.Recipe, 0, len(all))
	for _, r := range all {
		r.SourceType = domain.SourceCurated
		r.IsApproved = true
		r.ApprovalDate = &now
		rows = append(rows, recipe.ToEntity(r))
	}

	if err := recipeRepository.CreateRecipes(ctx, rows); err != nil {
		logging.Error().Err(err).Msg("error seeding curated recipes")
		return err
	}

	logging.Info().Int("recipes", len(rows)).Msg("seeded curated recipes")
	return nil
}
