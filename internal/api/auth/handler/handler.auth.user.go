// Package authhdl chứa các handler cho domain auth.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "youth_bridge/internal/api/auth/dto"
	authmodels "youth_bridge/internal/api/auth/models"
	authsvc "youth_bridge/internal/api/auth/service"
	basehdl "youth_bridge/internal/api/base/handler"
	"youth_bridge/internal/common"
	"youth_bridge/internal/logger"
)

// UserHandler xử lý các route liên quan đến người dùng
type UserHandler struct {
	*basehdl.BaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	UserService *authsvc.UserService
}

// NewUserHandler tạo UserHandler mới
func NewUserHandler() (*UserHandler, error) {
	service, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	hdl := &UserHandler{UserService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleRegister đăng ký tài khoản mới. Trả về 201 với user (không có password).
// @Router /auth/register [post]
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	input := new(authdto.RegisterInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.UserService.Register(c.Context(), input)
	if err == nil {
		logger.LogAuth("register", c, map[string]interface{}{"email": input.Email, "role": input.Role})
	}
	h.HandleCreatedResponse(c, user, err)
	return nil
}

// HandleLogin đăng nhập, trả về JWT và thông tin người dùng.
// @Router /auth/login [post]
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	input := new(authdto.LoginInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	result, err := h.UserService.Login(c.Context(), input)
	if err != nil {
		logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
	} else {
		logger.LogAuth("login", c, map[string]interface{}{"email": input.Email})
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleMe trả về thông tin người dùng hiện tại (đã nạp bởi AuthMiddleware).
// @Router /auth/me [get]
func (h *UserHandler) HandleMe(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*authmodels.User)
	if !ok || user == nil {
		h.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}
	h.HandleResponse(c, user, nil)
	return nil
}

// HandleChangePassword đổi mật khẩu của chính người dùng.
// @Router /auth/change-password [put]
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(authdto.ChangePasswordInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.UserService.ChangePassword(c.Context(), userID, input)
	h.HandleResponse(c, fiber.Map{"changed": err == nil}, err)
	return nil
}

// HandleUpdateProfile cập nhật hồ sơ của chính người dùng.
// @Router /auth/profile [put]
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(authdto.UpdateProfileInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.UserService.UpdateProfile(c.Context(), userID, input)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUpdateAccountStatus chuyển trạng thái tài khoản của một người dùng (admin).
// @Router /users/update-status/:id [put]
func (h *UserHandler) HandleUpdateAccountStatus(c fiber.Ctx) error {
	idStr := h.GetIDFromContext(c)
	targetID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	input := new(authdto.UpdateAccountStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.UserService.UpdateAccountStatus(c.Context(), targetID, input)
	if err == nil {
		logger.LogAction("user_status_change", c, map[string]interface{}{
			"target_user_id": targetID.Hex(),
			"status":         input.Status,
		})
	}
	h.HandleResponse(c, user, err)
	return nil
}
