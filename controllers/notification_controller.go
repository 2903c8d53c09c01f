package controllers

import (
	"net/http"
	"strconv"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct{}

func NewNotificationController() *NotificationController {
	return &NotificationController{}
}

// GET /api/notifications — recent notifications, newest first.
func (h *NotificationController) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	notifications, err := services.ListNotifications(user.ID, limit)
	if err != nil {
		config.Log.Errorf("list notifications for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

type markReadInput struct {
	NotificationID uint `json:"notificationId"`
}

// POST /api/notifications — mark one notification as read. The mutation
// shares the collection path with the list endpoint; only the id travels
// in the body.
func (h *NotificationController) MarkRead(c *gin.Context) {
	var body markReadInput
	if err := c.ShouldBindJSON(&body); err != nil || body.NotificationID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing notificationId"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := services.MarkNotificationRead(user.ID, body.NotificationID); err != nil {
		config.Log.Errorf("mark notification %d read for user %d: %v", body.NotificationID, user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
