package system

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type WebSocketApi struct {
	Hub *Hub
}

func NewWebSocketApi(hub *Hub) *WebSocketApi {
	return &WebSocketApi{Hub: hub}
}

func (api *WebSocketApi) Setup(app *fiber.App) {
	app.Get("/api/ws", websocket.New(api.Hub.HandleWebSocket))
}
