package main

import (
	"context"
	"log"

	api "wanderlist-backend/cmd/api"
	advisorUsecase "wanderlist-backend/internal/advisor/usecase"
	authdomain "wanderlist-backend/internal/auth/domain"
	authRepo "wanderlist-backend/internal/auth/repository"
	authUsecase "wanderlist-backend/internal/auth/usecase"
	bucketdomain "wanderlist-backend/internal/bucket/domain"
	bucketRepo "wanderlist-backend/internal/bucket/repository"
	bucketUsecase "wanderlist-backend/internal/bucket/usecase"
	"wanderlist-backend/pkg/ai"
	"wanderlist-backend/pkg/config"
	"wanderlist-backend/pkg/database"
	"wanderlist-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		zl.Fatal("JWT_SECRET must be set")
	}

	db, err := database.NewPostgresConnection(context.Background(), cfg.DatabaseURL, cfg.AppEnv == "development")
	if err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&authdomain.User{}, &bucketdomain.BucketItem{}); err != nil {
		zl.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Repositories and use cases (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	itemRepo := bucketRepo.NewGormBucketItemRepository(db)

	authUc := authUsecase.NewAuthUsecase(userRepo, cfg)
	bucketUc := bucketUsecase.NewBucketUsecase(itemRepo)

	// AI provider init failure is not fatal; the advisory endpoints answer
	// upstream errors and the rest of the app keeps serving.
	advisor, err := ai.NewTravelAdvisor(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiApiKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	})
	if err != nil {
		zl.Warn("Failed to initialize travel advisor, advisory endpoints disabled", zap.Error(err))
	}
	advisorUc := advisorUsecase.NewAdvisorUsecase(advisor)

	handler := api.NewHandler(authUc, bucketUc, advisorUc, cfg)

	zl.Info("Server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zl.Fatal("Failed to start server", zap.Error(err))
	}
}
