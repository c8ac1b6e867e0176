// Package router đăng ký các route thuộc domain job: tin tuyển dụng và hồ sơ ứng tuyển.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "youth_bridge/internal/api/auth/models"
	jobhdl "youth_bridge/internal/api/job/handler"
	"youth_bridge/internal/api/middleware"
	apirouter "youth_bridge/internal/api/router"
)

// Register đăng ký tất cả route job lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	jobHandler, err := jobhdl.NewJobHandler()
	if err != nil {
		return fmt.Errorf("create job handler: %w", err)
	}

	authMiddleware := middleware.AuthMiddleware()
	employerOnly := middleware.RequireRoles(authmodels.RoleEmployer, authmodels.RoleAdministrator)
	youthOnly := middleware.RequireRoles(authmodels.RoleYouth)

	// Tin tuyển dụng: Employer đăng/đóng tin, ai đăng nhập cũng đọc được
	apirouter.RegisterRouteWithMiddleware(v1, "/jobs", "POST", "/post", []fiber.Handler{authMiddleware, employerOnly}, jobHandler.HandlePost)
	apirouter.RegisterRouteWithMiddleware(v1, "/jobs", "PUT", "/close/:id", []fiber.Handler{authMiddleware, employerOnly}, jobHandler.HandleClose)
	apirouter.RegisterRouteWithMiddleware(v1, "/jobs", "GET", "/open", []fiber.Handler{authMiddleware}, jobHandler.HandleFindOpen)
	apirouter.RegisterRouteWithMiddleware(v1, "/jobs", "GET", "/my", []fiber.Handler{authMiddleware, employerOnly}, jobHandler.HandleMyJobs)
	apirouter.RegisterRouteWithMiddleware(v1, "/jobs", "GET", "/search", []fiber.Handler{authMiddleware}, jobHandler.HandleSearch)
	apirouter.RegisterRouteWithMiddleware(v1, "/jobs", "GET", "/stats", []fiber.Handler{authMiddleware, middleware.RequireRoles(authmodels.RoleAdministrator)}, jobHandler.HandleStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/jobs", "PUT", "/save/:id", []fiber.Handler{authMiddleware, youthOnly}, jobHandler.HandleSaveJob)
	apirouter.RegisterRouteWithMiddleware(v1, "/jobs", "PUT", "/unsave/:id", []fiber.Handler{authMiddleware, youthOnly}, jobHandler.HandleUnsaveJob)
	r.RegisterCRUDRoutes(v1, "/jobs", jobHandler, apirouter.ReadWriteConfig,
		[]fiber.Handler{authMiddleware},
		[]fiber.Handler{authMiddleware, employerOnly})

	applicationHandler, err := jobhdl.NewApplicationHandler()
	if err != nil {
		return fmt.Errorf("create application handler: %w", err)
	}

	// Hồ sơ ứng tuyển: Youth nộp, employer sở hữu tin xem và cập nhật trạng thái
	apirouter.RegisterRouteWithMiddleware(v1, "/applications", "POST", "/apply", []fiber.Handler{authMiddleware, youthOnly}, applicationHandler.HandleApply)
	apirouter.RegisterRouteWithMiddleware(v1, "/applications", "PUT", "/update-status/:id", []fiber.Handler{authMiddleware, employerOnly}, applicationHandler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/applications", "GET", "/by-job/:jobId", []fiber.Handler{authMiddleware, employerOnly}, applicationHandler.HandleFindByJob)
	apirouter.RegisterRouteWithMiddleware(v1, "/applications", "GET", "/my", []fiber.Handler{authMiddleware}, applicationHandler.HandleMyApplications)

	adminOnly := middleware.RequireRoles(authmodels.RoleAdministrator)
	r.RegisterCRUDRoutes(v1, "/applications", applicationHandler, apirouter.ReadOnlyConfig,
		[]fiber.Handler{authMiddleware, adminOnly},
		[]fiber.Handler{authMiddleware, adminOnly})

	return nil
}
