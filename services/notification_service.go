package services

import (
	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"
)

// NotifyUser persists a notification and pushes it to connected clients.
// Safe to call from any service; delivery failures are not surfaced.
func NotifyUser(hub *RealtimeHub, userID uint, typ, message string) {
	n := &models.Notification{UserID: userID, Type: typ, Message: message}
	if err := config.DB.Create(n).Error; err != nil {
		config.Log.Errorf("failed to store notification: %v", err)
		return
	}
	if hub != nil {
		hub.Broadcast(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
}

func ListNotifications(userID uint, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []models.Notification
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func MarkNotificationRead(userID, notificationID uint) error {
	return config.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true).Error
}
