// Package router đăng ký các route thuộc domain chat: cuộc trò chuyện và tin nhắn.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "youth_bridge/internal/api/auth/models"
	chathdl "youth_bridge/internal/api/chat/handler"
	"youth_bridge/internal/api/middleware"
	apirouter "youth_bridge/internal/api/router"
)

// Register đăng ký tất cả route chat lên v1. Mọi route chat đều yêu cầu đăng nhập;
// quyền truy cập từng cuộc trò chuyện được kiểm tra ở tầng service theo danh sách người tham gia.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	conversationHandler, err := chathdl.NewConversationHandler()
	if err != nil {
		return fmt.Errorf("create conversation handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	authed := []fiber.Handler{authMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "POST", "/create", authed, conversationHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "GET", "/my", authed, conversationHandler.HandleMyConversations)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "PUT", "/add-participant/:id", authed, conversationHandler.HandleAddParticipant)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "POST", "/send/:id", authed, conversationHandler.HandleSendMessage)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "GET", "/messages/:id", authed, conversationHandler.HandleListMessages)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "PUT", "/mark-read/:id", authed, conversationHandler.HandleMarkRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/conversations", "GET", "/unread-count/:id", authed, conversationHandler.HandleUnreadCount)

	// CRUD thô chỉ dành cho quản trị viên
	adminOnly := middleware.RequireRoles(authmodels.RoleAdministrator)
	r.RegisterCRUDRoutes(v1, "/conversations", conversationHandler, apirouter.ReadOnlyConfig,
		[]fiber.Handler{authMiddleware, adminOnly},
		[]fiber.Handler{authMiddleware, adminOnly})

	return nil
}
