package controllers

import (
	"net/http"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/services"
	"github.com/ser6eevich/formafit/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type telegramAuthInput struct {
	InitData string `json:"initData"`
}

// POST /auth/telegram — verify the Mini App's signed initData, upsert the
// user from its payload and issue a JWT for subsequent requests.
func (h *AuthController) TelegramLogin(c *gin.Context) {
	var body telegramAuthInput
	if err := c.ShouldBindJSON(&body); err != nil || body.InitData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing initData"})
		return
	}

	webAppUser, err := utils.VerifyInitData(body.InitData, config.App.BotToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid initData"})
		return
	}

	user, err := services.UpsertUser(webAppUser.ID, services.ProfileInput{
		Username:  &webAppUser.Username,
		FirstName: &webAppUser.FirstName,
		PhotoURL:  &webAppUser.PhotoURL,
	})
	if err != nil {
		config.Log.Errorf("auth upsert for telegram user %d: %v", webAppUser.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
		return
	}

	token, err := utils.GenerateJWT(webAppUser.ID)
	if err != nil {
		config.Log.Errorf("issue token for telegram user %d: %v", webAppUser.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
