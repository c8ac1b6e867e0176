package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"youth_bridge/config"
	authmodels "youth_bridge/internal/api/auth/models"
	chatmodels "youth_bridge/internal/api/chat/models"
	coursemodels "youth_bridge/internal/api/course/models"
	jobmodels "youth_bridge/internal/api/job/models"
	"youth_bridge/internal/database"
	"youth_bridge/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục theo thứ tự phụ thuộc.
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initConfig()           // Khởi tạo cấu hình server
	initValidator()        // Khởi tạo validator (một số custom validator cần registry, đăng ký lazy)
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// initColNames khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Courses = "courses"
	global.MongoDB_ColNames.Progress = "progress"
	global.MongoDB_ColNames.Jobs = "jobs"
	global.MongoDB_ColNames.Applications = "applications"
	global.MongoDB_ColNames.Conversations = "conversations"
	global.MongoDB_ColNames.Messages = "messages"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator với các custom validators (no_xss, strong_password, exists, min_age, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// initConfig khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB khởi tạo kết nối database, collections và indexes
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	// Khởi tạo database và các collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo các index khai báo qua struct tag của từng model.
	// Các unique index ở đây chính là cơ chế chặn trùng lặp (email, ghi danh,
	// ứng tuyển, direct conversation) — tạo index thất bại thì không được chạy tiếp.
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	indexedModels := []struct {
		collection string
		model      interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Courses, coursemodels.Course{}},
		{global.MongoDB_ColNames.Progress, coursemodels.Progress{}},
		{global.MongoDB_ColNames.Jobs, jobmodels.Job{}},
		{global.MongoDB_ColNames.Applications, jobmodels.Application{}},
		{global.MongoDB_ColNames.Conversations, chatmodels.Conversation{}},
		{global.MongoDB_ColNames.Messages, chatmodels.Message{}},
	}
	for _, m := range indexedModels {
		if err := database.CreateIndexes(context.TODO(), db.Collection(m.collection), m.model); err != nil {
			logrus.Fatalf("Failed to create indexes for collection %s: %v", m.collection, err)
		}
	}

	// Các index đa trường không gắn được vào struct tag (sort phụ, -1)
	if err := database.EnsureDomainIndexes(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure domain indexes: %v", err)
	}
	logrus.Info("Ensured indexes")
}
