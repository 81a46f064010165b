package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"

	"clinicadmin_go/database"
	"clinicadmin_go/middleware"
	"clinicadmin_go/models"
	"clinicadmin_go/services/websocket"
	"clinicadmin_go/utils"
)

// WebSocketController upgrades dashboard connections and attaches them to
// the hub. Authentication uses the same JWT as the REST API, passed as a
// query parameter since browsers cannot set headers on WebSocket upgrades.
type WebSocketController struct {
	hub *websocket.Hub
}

func NewWebSocketController(hub *websocket.Hub) *WebSocketController {
	return &WebSocketController{hub: hub}
}

// validateToken checks the JWT and loads the backing admin user.
func (wsc *WebSocketController) validateToken(tokenString string) (*models.AdminUser, error) {
	claims, err := middleware.ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	var user models.AdminUser
	if err := database.DB.Where("id = ? AND status = ?", claims.UserID, "active").First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// WebSocketHandler returns a Fiber WebSocket handler that validates the JWT
// and hands the connection to the hub.
func (wsc *WebSocketController) WebSocketHandler() fiber.Handler {
	return fiberws.New(func(c *fiberws.Conn) {
		token := c.Query("token")
		if token == "" {
			log.Println("WebSocket connection rejected: missing token")
			c.WriteMessage(fiberws.CloseMessage, []byte("Missing token"))
			c.Close()
			return
		}

		user, err := wsc.validateToken(token)
		if err != nil {
			log.Printf("WebSocket connection rejected: %v", err)
			c.WriteMessage(fiberws.CloseMessage, []byte("Invalid token"))
			c.Close()
			return
		}

		wsc.hub.ServeFiberWS(c, user.ID)
	})
}

// GetWebSocketStats reports the number of connected dashboard sessions.
func (wsc *WebSocketController) GetWebSocketStats(c *fiber.Ctx) error {
	return utils.Success(c, fiber.Map{
		"connected_clients": wsc.hub.GetClientCount(),
	})
}
