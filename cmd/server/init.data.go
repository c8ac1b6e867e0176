package main

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	authmodels "youth_bridge/internal/api/auth/models"
	authsvc "youth_bridge/internal/api/auth/service"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
	"youth_bridge/internal/logger"
)

// InitDefaultData tạo tài khoản quản trị mặc định nếu được cấu hình.
// Khi ADMIN_EMAIL trống, user quản trị đầu tiên phải được tạo và kích hoạt thủ công.
func InitDefaultData() {
	log := logger.GetAppLogger()

	cfg := global.ServerConfig
	if cfg.Admin_Email == "" || cfg.Admin_Password == "" {
		log.Info("ADMIN_EMAIL/ADMIN_PASSWORD chưa cấu hình, bỏ qua tạo tài khoản quản trị mặc định")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx := context.Background()
	email := strings.ToLower(strings.TrimSpace(cfg.Admin_Email))

	_, err = userService.FindByEmail(ctx, email)
	if err == nil {
		log.Infof("Tài khoản quản trị %s đã tồn tại", email)
		return
	}
	if !errors.Is(err, common.ErrNotFound) {
		log.Fatalf("Failed to look up admin account: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin_Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin, err := userService.InsertOne(ctx, authmodels.User{
		FullName:      "Administrator",
		Email:         email,
		Password:      string(hashed),
		Role:          authmodels.RoleAdministrator,
		AccountStatus: authmodels.StatusActive,
	})
	if err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"userId": admin.ID.Hex(),
		"email":  email,
	}).Info("Tạo tài khoản quản trị mặc định")
}
