package basehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"youth_bridge/internal/common"
)

// CurrentUserID lấy ObjectID của người dùng hiện tại từ Locals (do AuthMiddleware nạp).
func CurrentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	idStr, ok := c.Locals("user_id").(string)
	if !ok || idStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return id, nil
}

// CurrentUserRole lấy role của người dùng hiện tại từ Locals.
func CurrentUserRole(c fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	return role
}
