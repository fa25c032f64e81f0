package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	api "tasktrack/cmd/api"
	authdomain "tasktrack/internal/auth/domain"
	authRepo "tasktrack/internal/auth/repository"
	"tasktrack/internal/auth/token"
	authUsecase "tasktrack/internal/auth/usecase"
	taskdomain "tasktrack/internal/task/domain"
	taskRepo "tasktrack/internal/task/repository"
	taskUsecase "tasktrack/internal/task/usecase"
	"tasktrack/pkg/config"
	"tasktrack/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &taskdomain.Task{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepository := authRepo.NewUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Token manager: the only holder of the signing configuration.
	tokens := token.NewManager([]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiry)

	// Use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, tokens)
	taskUc := taskUsecase.NewTaskUsecase(taskRepository)

	handler := api.NewHandler(authUc, taskUc, tokens, cfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := handler.Start(ctx, ":"+cfg.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}

	logger.Info("shutdown complete")
}
