// Package router đăng ký các route thuộc domain auth: đăng ký, đăng nhập, hồ sơ, quản lý người dùng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "youth_bridge/internal/api/auth/handler"
	authmodels "youth_bridge/internal/api/auth/models"
	"youth_bridge/internal/api/middleware"
	apirouter "youth_bridge/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("create user handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	adminOnly := middleware.RequireRoles(authmodels.RoleAdministrator)

	// Route công khai: đăng ký và đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/register", nil, userHandler.HandleRegister)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", nil, userHandler.HandleLogin)

	// Route yêu cầu đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authMiddleware}, userHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/change-password", []fiber.Handler{authMiddleware}, userHandler.HandleChangePassword)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/profile", []fiber.Handler{authMiddleware}, userHandler.HandleUpdateProfile)

	// Quản lý người dùng: đọc cần đăng nhập, ghi chỉ dành cho Administrator.
	// Không mở insert/upsert: tạo user bắt buộc đi qua /auth/register để mật khẩu được băm.
	usersConfig := apirouter.ReadWriteConfig
	usersConfig.InsOne = false
	usersConfig.InsMany = false
	usersConfig.Upsert = false
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PUT", "/update-status/:id", []fiber.Handler{authMiddleware, adminOnly}, userHandler.HandleUpdateAccountStatus)
	r.RegisterCRUDRoutes(v1, "/users", userHandler, usersConfig,
		[]fiber.Handler{authMiddleware},
		[]fiber.Handler{authMiddleware, adminOnly})

	return nil
}
