package controllers

import (
	"net/http"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/services"

	"github.com/gin-gonic/gin"
)

type UserController struct{}

func NewUserController() *UserController {
	return &UserController{}
}

// GET /api/user — the caller's profile.
func (h *UserController) GetProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// POST /api/user — create the profile on first call, update it afterwards.
func (h *UserController) SaveProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}

	telegramID := telegramIDFromCtx(c)
	user, err := services.UpsertUser(telegramID, input)
	if err != nil {
		config.Log.Errorf("upsert user %d: %v", telegramID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
