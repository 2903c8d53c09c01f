package controllers

import (
	"net/http"
	"strconv"

	"github.com/ser6eevich/formafit/config"
	"github.com/ser6eevich/formafit/services"
	"github.com/ser6eevich/formafit/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RealtimeController struct {
	Hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{Hub: hub}
}

// GET /ws?token=... — upgrade to a websocket and stream notification
// events for the authenticated user. The token is the same JWT issued by
// POST /auth/telegram; query auth because browsers cannot set headers on
// websocket handshakes.
func (h *RealtimeController) Serve(c *gin.Context) {
	var telegramID int64
	if token := c.Query("token"); token != "" {
		id, err := utils.ParseJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		telegramID = id
	} else if raw := c.Query("telegramId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid telegramId"})
			return
		}
		telegramID = id
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	user, err := services.FindUserByTelegramID(telegramID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		config.Log.Errorf("websocket upgrade for user %d: %v", user.ID, err)
		return
	}

	client := &services.WSClient{UserID: user.ID, Conn: conn}
	h.Hub.Register(client)

	go func() {
		defer h.Hub.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
