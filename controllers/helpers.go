package controllers

import (
	"net/http"

	"github.com/ser6eevich/formafit/models"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the user attached by the middleware; responds 404 and
// returns false when the Telegram id has no profile yet.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Error"})
		return nil, false
	}
	return user, true
}

func telegramIDFromCtx(c *gin.Context) int64 {
	v, ok := c.Get("telegramID")
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
