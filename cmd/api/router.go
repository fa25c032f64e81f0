package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "tasktrack/internal/auth/delivery"
	"tasktrack/internal/auth/token"
	authUsecase "tasktrack/internal/auth/usecase"
	taskDelivery "tasktrack/internal/task/delivery"
	taskUsecase "tasktrack/internal/task/usecase"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecase.TaskUsecase, tokens *token.Manager) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", authDelivery.AuthMiddleware(tokens), authHandler.Profile)
			auth.GET("/ping", authHandler.Ping)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(tokens))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}
