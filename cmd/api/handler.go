package api

import (
	authUsecase "todo-backend/internal/auth/usecase"
	notifDelivery "todo-backend/internal/notification/delivery"
	notifUsecase "todo-backend/internal/notification/usecase"
	taskDelivery "todo-backend/internal/task/delivery"
	taskUsecase "todo-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase         authUsecase.AuthUsecase
	taskHandler         *taskDelivery.TaskHandler
	categoryHandler     *taskDelivery.CategoryHandler
	notificationHandler *notifDelivery.NotificationHandler
}

func NewHandler(
	authUc authUsecase.AuthUsecase,
	taskUc taskUsecase.TaskUsecase,
	shareUc taskUsecase.ShareUsecase,
	categoryUc taskUsecase.CategoryUsecase,
	tagUc taskUsecase.TagUsecase,
	notificationUc notifUsecase.NotificationUsecase,
) *Handler {
	return &Handler{
		authUsecase:         authUc,
		taskHandler:         taskDelivery.NewTaskHandler(taskUc, shareUc),
		categoryHandler:     taskDelivery.NewCategoryHandler(categoryUc, tagUc),
		notificationHandler: notifDelivery.NewNotificationHandler(notificationUc),
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.taskHandler, h.categoryHandler, h.notificationHandler)

	return r.Run(addr)
}
