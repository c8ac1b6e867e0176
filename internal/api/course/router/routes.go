// Package router đăng ký các route thuộc domain course: khóa học và tiến độ học.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "youth_bridge/internal/api/auth/models"
	coursehdl "youth_bridge/internal/api/course/handler"
	"youth_bridge/internal/api/middleware"
	apirouter "youth_bridge/internal/api/router"
)

// Register đăng ký tất cả route course lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	courseHandler, err := coursehdl.NewCourseHandler()
	if err != nil {
		return fmt.Errorf("create course handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	courseWriteRoles := middleware.RequireRoles(authmodels.RoleMentor, authmodels.RoleAdministrator)

	// Khóa học: ai đăng nhập cũng đọc được, chỉ Mentor/Admin được ghi
	apirouter.RegisterRouteWithMiddleware(v1, "/courses", "GET", "/published", []fiber.Handler{authMiddleware}, courseHandler.HandleFindPublished)
	apirouter.RegisterRouteWithMiddleware(v1, "/courses", "GET", "/search", []fiber.Handler{authMiddleware}, courseHandler.HandleSearch)
	r.RegisterCRUDRoutes(v1, "/courses", courseHandler, apirouter.ReadWriteConfig,
		[]fiber.Handler{authMiddleware},
		[]fiber.Handler{authMiddleware, courseWriteRoles})

	progressHandler, err := coursehdl.NewProgressHandler()
	if err != nil {
		return fmt.Errorf("create progress handler: %w", err)
	}

	// Tiến độ học: thao tác theo người dùng hiện tại
	apirouter.RegisterRouteWithMiddleware(v1, "/progress", "POST", "/enroll", []fiber.Handler{authMiddleware}, progressHandler.HandleEnroll)
	apirouter.RegisterRouteWithMiddleware(v1, "/progress", "PUT", "/complete-lesson/:courseId", []fiber.Handler{authMiddleware}, progressHandler.HandleCompleteLesson)
	apirouter.RegisterRouteWithMiddleware(v1, "/progress", "POST", "/quiz-attempt/:courseId", []fiber.Handler{authMiddleware}, progressHandler.HandleQuizAttempt)
	apirouter.RegisterRouteWithMiddleware(v1, "/progress", "GET", "/my", []fiber.Handler{authMiddleware}, progressHandler.HandleMyProgress)

	// CRUD tiến độ chỉ cho Admin soát dữ liệu (percentage do server tính, không mở ghi tự do)
	adminOnly := middleware.RequireRoles(authmodels.RoleAdministrator)
	r.RegisterCRUDRoutes(v1, "/progress", progressHandler, apirouter.ReadOnlyConfig,
		[]fiber.Handler{authMiddleware, adminOnly},
		[]fiber.Handler{authMiddleware, adminOnly})

	return nil
}
