package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Local-Flavor-Backend/cmd/config"
	migration "Local-Flavor-Backend/cmd/database/migrate"
	"Local-Flavor-Backend/cmd/database/seed"
	"Local-Flavor-Backend/internal/utils"
	"Local-Flavor-Backend/internal/utils/logging"
)

func main() {
	utils.LoadConfig()
	logging.Init(logging.Config{
		Level:  utils.GetConfig("LOG_LEVEL"),
		Format: utils.GetConfig("LOG_FORMAT"),
	})

	db, err := config.ConnectDB()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect database")
	}

	if err := migration.Migrate(db); err != nil {
		logging.Fatal().Err(err).Msg("failed to migrate database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if err := seed.Seed(ctx, db); err != nil {
		cancel()
		logging.Fatal().Err(err).Msg("failed to seed database")
	}
	cancel()

	app, err := config.NewApp(db)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to build app")
	}

	go func() {
		port := utils.GetConfigDefault("APP_PORT", "3000")
		if err := app.Listen(":" + port); err != nil {
			logging.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logging.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logging.Error().Err(err).Msg("error during shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
