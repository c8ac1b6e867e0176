package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "youth_bridge/internal/api/auth/models"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
	"youth_bridge/internal/utility"
)

// userCache cache user theo token claim trong thời gian ngắn để giảm tải query DB
// cho các request liên tiếp của cùng một user.
var userCache = utility.NewCache(30*time.Second, time.Minute)

// InvalidateUserCache xóa user khỏi cache xác thực. Gọi khi trạng thái
// tài khoản đổi để user bị khóa mất quyền ngay, không chờ cache hết hạn.
func InvalidateUserCache(userIDHex string) {
	userCache.Delete(userIDHex)
}

// AuthMiddleware xác thực JWT Bearer token.
// Token hợp lệ: parse claims, load user từ DB, kiểm tra accountStatus phải là active,
// sau đó lưu user_id, user_role và user vào Locals cho các handler phía sau.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		tokenString := authHeader
		if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			tokenString = strings.TrimSpace(authHeader[7:])
		}
		if tokenString == "" {
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		claims, err := utility.ParseToken(tokenString, global.ServerConfig.JwtSecret)
		if err != nil {
			return HandleErrorResponse(c, err)
		}

		user, err := loadActiveUser(c, claims.UserID)
		if err != nil {
			return HandleErrorResponse(c, err)
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user_role", user.Role)
		c.Locals("user", user)
		return c.Next()
	}
}

// loadActiveUser lấy user theo id (ưu tiên cache) và kiểm tra trạng thái tài khoản
func loadActiveUser(c fiber.Ctx, userIDHex string) (*authmodels.User, error) {
	if cached, ok := userCache.Get(userIDHex); ok {
		if user, ok := cached.(*authmodels.User); ok {
			if user.AccountStatus != authmodels.StatusActive {
				return nil, common.ErrAccountNotActive
			}
			return user, nil
		}
	}

	userID := utility.String2ObjectID(userIDHex)
	if userID.IsZero() {
		return nil, common.ErrTokenInvalid
	}

	collection, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !ok {
		return nil, common.ErrConnection
	}

	var user authmodels.User
	if err := collection.FindOne(c.Context(), bson.M{"_id": userID}).Decode(&user); err != nil {
		return nil, common.ErrTokenInvalid
	}

	if user.AccountStatus != authmodels.StatusActive {
		return nil, common.ErrAccountNotActive
	}

	userCache.Set(userIDHex, &user)
	return &user, nil
}

// RequireRoles giới hạn route cho các role được liệt kê.
// Phải đặt sau AuthMiddleware (cần user_role trong Locals).
func RequireRoles(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		userRole, ok := c.Locals("user_role").(string)
		if !ok || userRole == "" {
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}
		for _, role := range roles {
			if role == userRole {
				return c.Next()
			}
		}
		return HandleErrorResponse(c, common.NewError(
			common.ErrCodeAuthRole,
			"Tài khoản không có quyền truy cập chức năng này",
			common.StatusForbidden,
			map[string]interface{}{"requiredRoles": roles},
		))
	}
}
