package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"youth_bridge/config"
	"youth_bridge/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users         string // Tên collection cho người dùng (Youth/Mentor/Employer/Administrator)
	Courses       string // Tên collection cho khóa học
	Progress      string // Tên collection cho tiến độ học (một document cho mỗi cặp user+course)
	Jobs          string // Tên collection cho tin tuyển dụng
	Applications  string // Tên collection cho hồ sơ ứng tuyển
	Conversations string // Tên collection cho cuộc trò chuyện
	Messages      string // Tên collection cho tin nhắn
}

// Các biến toàn cục
var Validate *validator.Validate            // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client           // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration      // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName // Tên các collection

// Các Registry - chỉ được ghi trong giai đoạn khởi động
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
