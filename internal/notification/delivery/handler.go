package delivery

import (
	"net/http"

	"todo-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification and preference HTTP requests
type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{notificationUsecase: notificationUsecase}
}

// GetNotifications returns the caller's notifications, newest schedule first
// GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	userID := c.GetString("userID")

	notifications, err := h.notificationUsecase.ListNotifications(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "total": len(notifications)})
}

// GetPreference returns the caller's notification preference, creating the
// default row on first access
// GET /api/notification-preferences
func (h *NotificationHandler) GetPreference(c *gin.Context) {
	userID := c.GetString("userID")

	pref, err := h.notificationUsecase.GetPreference(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}

// UpdatePreference changes the caller's notification preference
// PUT /api/notification-preferences
func (h *NotificationHandler) UpdatePreference(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.PreferenceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref, err := h.notificationUsecase.UpdatePreference(userID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}
