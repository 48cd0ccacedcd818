package api

import (
	"net/http"

	authDelivery "todo-backend/internal/auth/delivery"
	authUsecase "todo-backend/internal/auth/usecase"
	notifDelivery "todo-backend/internal/notification/delivery"
	taskDelivery "todo-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskHandler *taskDelivery.TaskHandler, categoryHandler *taskDelivery.CategoryHandler, notificationHandler *notifDelivery.NotificationHandler) {
	authHandler := authDelivery.NewAuthHandler(authUc)

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
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(authUc))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/completed", taskHandler.GetCompletedTasks)
			tasks.GET("/pending", taskHandler.GetPendingTasks)
			tasks.GET("/shared-with-me", taskHandler.GetSharedWithMe)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/share", taskHandler.ShareTask)
			tasks.DELETE("/:id/share", taskHandler.UnshareTask)
			tasks.GET("/:id/shares", taskHandler.GetShares)
		}

		// Category routes (protected)
		categories := api.Group("/categories")
		categories.Use(authDelivery.AuthMiddleware(authUc))
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategory)
			categories.GET("/:id", categoryHandler.GetCategoryByID)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		// Tag routes (protected)
		tags := api.Group("/tags")
		tags.Use(authDelivery.AuthMiddleware(authUc))
		{
			tags.GET("", categoryHandler.GetTags)
			tags.POST("", categoryHandler.CreateTag)
			tags.GET("/:id", categoryHandler.GetTagByID)
			tags.PUT("/:id", categoryHandler.UpdateTag)
			tags.DELETE("/:id", categoryHandler.DeleteTag)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(authDelivery.AuthMiddleware(authUc))
		{
			notifications.GET("", notificationHandler.GetNotifications)
		}

		preferences := api.Group("/notification-preferences")
		preferences.Use(authDelivery.AuthMiddleware(authUc))
		{
			preferences.GET("", notificationHandler.GetPreference)
			preferences.PUT("", notificationHandler.UpdatePreference)
		}
	}
}
