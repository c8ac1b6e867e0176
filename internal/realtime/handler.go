package realtime

import (
	"github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v3"
	"github.com/valyala/fasthttp"

	basehdl "youth_bridge/internal/api/base/handler"
	"youth_bridge/internal/logger"
)

var upgrader = websocket.FastHTTPUpgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(ctx *fasthttp.RequestCtx) bool {
		// CORS cho websocket được kiểm soát qua token, không qua origin
		return true
	},
}

// Handler upgrade kết nối /ws/chat lên websocket.
// Route phải đi qua AuthMiddleware trước để có user_id trong Locals.
func Handler(hub *Hub) fiber.Handler {
	return func(c fiber.Ctx) error {
		userID, err := basehdl.CurrentUserID(c)
		if err != nil {
			return err
		}

		err = upgrader.Upgrade(c.Context(), func(conn *websocket.Conn) {
			client := NewClient(hub, conn, userID)
			hub.Register(client)
			logger.GetAppLogger().WithField("userId", userID.Hex()).Debug("Websocket kết nối")

			go client.WriteLoop()
			client.ReadLoop()
		})
		if err != nil {
			logger.GetAppLogger().WithField("userId", userID.Hex()).Warnf("Upgrade websocket thất bại: %v", err)
			return fiber.ErrUpgradeRequired
		}
		return nil
	}
}
