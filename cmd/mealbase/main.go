package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mealbase-dev/mealbase/internal/auth"
	"github.com/mealbase-dev/mealbase/internal/config"
	"github.com/mealbase-dev/mealbase/internal/logger"
	"github.com/mealbase-dev/mealbase/internal/router"
	"github.com/mealbase-dev/mealbase/internal/store"
)

func main() {
	// A missing .env is fine in deployed environments.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	defer logger.Sync()

	if err := auth.Init(cfg.JWTSecret); err != nil {
		logger.Fatal("Failed to initialize auth", zap.Error(err))
	}

	st, err := store.Open(cfg.DSN())

	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	defer st.Close()

	if err := st.AutoMigrate(); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	r := router.NewRouter(st, cfg)

	logger.Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
