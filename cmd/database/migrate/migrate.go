package migration

import (
	"gorm.io/gorm"

	"Local-Flavor-Backend/entities"
	"Local-Flavor-Backend/internal/utils/logging"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		logging.Error().Err(err).Msg("error creating uuid-ossp extension")
		return err
	}

	models := []struct {
		name  string
		model interface{}
	}{
		{"user", &entities.User{}},
		{"recipe", &entities.Recipe{}},
		{"moderation queue", &entities.ModerationEntry{}},
		{"favorite", &entities.Favorite{}},
		{"rating", &entities.Rating{}},
		{"recipe cache", &entities.RecipeCache{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			logging.Error().Err(err).Str("table", m.name).Msg("error migrating database")
			return err
		}
	}

	logging.Info().Msg("database migration complete")
	return nil
}
