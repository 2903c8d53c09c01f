package middlewares

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/models"
	"github.com/ser6eevich/formafit/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TelegramAuth resolves the requesting Telegram user from a Bearer token
// (issued by /auth/telegram) or the raw x-telegram-id header the Mini App
// sends. The user row is attached when it exists; handlers that need one
// respond 404 themselves so profile upsert can run for first-time users.
func TelegramAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var telegramID int64

		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			id, err := utils.ParseJWT(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			telegramID = id
		} else if raw := c.GetHeader("x-telegram-id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid x-telegram-id"})
				return
			}
			telegramID = id
		}

		if telegramID == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing x-telegram-id"})
			return
		}

		c.Set("telegramID", telegramID)

		var user models.User
		err := config.DB.Where("telegram_id = ?", telegramID).First(&user).Error
		if err == nil {
			c.Set("user", &user)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Error"})
			return
		}

		c.Next()
	}
}

// ParseTimezoneOffset reads the x-timezone-offset header (minutes, JS
// getTimezoneOffset convention). Missing or malformed values fall back to
// the configured default rather than failing the request.
func ParseTimezoneOffset(c *gin.Context, fallback int) int {
	raw := c.GetHeader("x-timezone-offset")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
