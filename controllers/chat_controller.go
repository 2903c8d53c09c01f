package controllers

import (
	"net/http"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

// GET /api/chat — the conversation so far, oldest first.
func (h *ChatController) Messages(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := h.Chat.Messages(user.ID)
	if err != nil {
		config.Log.Errorf("chat messages for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

type chatInput struct {
	Message     string `json:"message"`
	ImageBase64 string `json:"imageBase64"`
}

// POST /api/chat — send a message to the coach and get a reply. A photo
// without text is a valid message.
func (h *ChatController) Send(c *gin.Context) {
	var body chatInput
	if err := c.ShouldBindJSON(&body); err != nil || (body.Message == "" && body.ImageBase64 == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing message"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	reply, err := h.Chat.Send(c.Request.Context(), user, body.Message, body.ImageBase64)
	if err != nil {
		config.Log.Errorf("chat for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// DELETE /api/chat — wipe the conversation.
func (h *ChatController) Clear(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Chat.Clear(user.ID); err != nil {
		config.Log.Errorf("clear chat for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
