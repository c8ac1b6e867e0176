// Package authsvc chứa logic nghiệp vụ cho domain auth.
package authsvc

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "youth_bridge/internal/api/auth/dto"
	authmodels "youth_bridge/internal/api/auth/models"
	basesvc "youth_bridge/internal/api/base/service"
	"youth_bridge/internal/api/middleware"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
	"youth_bridge/internal/logger"
	"youth_bridge/internal/utility"
)

// UserService cung cấp các thao tác trên người dùng: đăng ký, đăng nhập,
// đổi mật khẩu, chuyển trạng thái tài khoản.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](coll),
	}, nil
}

// Register đăng ký tài khoản mới.
// Email được lowercase trước khi lưu; trùng email trả về lỗi 409 nhờ unique index
// (không dùng check-then-create để tránh race).
func (s *UserService) Register(ctx context.Context, input *authdto.RegisterInput) (authmodels.User, error) {
	var zero authmodels.User

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, nil)
	}

	user := authmodels.User{
		FullName:    strings.TrimSpace(input.FullName),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Password:    string(hashed),
		Phone:       strings.TrimSpace(input.Phone),
		Role:        input.Role,
		DateOfBirth: input.DateOfBirth,
	}
	if input.Address != nil {
		user.Address = &authmodels.Address{
			Street: input.Address.Street,
			City:   input.Address.City,
			State:  input.Address.State,
		}
	}

	// Chỉ lưu các field theo vai trò đã đăng ký
	switch input.Role {
	case authmodels.RoleYouth:
		user.Skills = input.Skills
		user.Education = input.Education
		user.YearsOfExperience = input.YearsOfExperience
	case authmodels.RoleMentor:
		user.Expertise = input.Expertise
		user.Organization = input.Organization
		user.MenteeCapacity = input.MenteeCapacity
	case authmodels.RoleEmployer:
		user.CompanyName = input.CompanyName
		user.CompanyWebsite = input.CompanyWebsite
		user.Industry = input.Industry
		user.CompanySize = input.CompanySize
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return zero, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"userId": created.ID.Hex(),
		"email":  created.Email,
		"role":   created.Role,
	}).Info("Người dùng đăng ký tài khoản")

	return created, nil
}

// Login xác thực email/mật khẩu và phát hành JWT.
// Tài khoản chưa active (pending/suspended/deactivated) không được đăng nhập.
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (*authdto.LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		// Không tiết lộ email có tồn tại hay không
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	switch user.AccountStatus {
	case authmodels.StatusActive:
		// ok
	case authmodels.StatusPending:
		return nil, common.NewError(common.ErrCodeAuthStatus, "Tài khoản đang chờ kích hoạt", common.StatusForbidden, nil)
	case authmodels.StatusSuspended:
		return nil, common.NewError(common.ErrCodeAuthStatus, "Tài khoản đã bị tạm khóa", common.StatusForbidden, nil)
	default:
		return nil, common.ErrAccountNotActive
	}

	token, err := utility.CreateToken(user.ID.Hex(), user.Role, global.ServerConfig.JwtSecret, global.ServerConfig.JwtExpireHours)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, nil)
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"userId": user.ID.Hex(),
		"role":   user.Role,
	}).Info("Người dùng đăng nhập")

	return &authdto.LoginResult{Token: token, User: user}, nil
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusUnauthorized, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể mã hóa mật khẩu", common.StatusInternalServerError, nil)
	}

	if _, err := s.UpdateById(ctx, userID, bson.M{"password": string(hashed)}); err != nil {
		return err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"userId": userID.Hex(),
	}).Info("Người dùng đổi mật khẩu")

	return nil
}

// UpdateProfile cập nhật hồ sơ của chính người dùng.
// Email, role và accountStatus không đổi được qua đây.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateProfileInput) (authmodels.User, error) {
	set := bson.M{}
	if input.FullName != "" {
		set["fullName"] = strings.TrimSpace(input.FullName)
	}
	if input.Phone != "" {
		set["phone"] = strings.TrimSpace(input.Phone)
	}
	if input.DateOfBirth != "" {
		set["dateOfBirth"] = input.DateOfBirth
	}
	if input.Address != nil {
		set["address"] = authmodels.Address{
			Street: input.Address.Street,
			City:   input.Address.City,
			State:  input.Address.State,
		}
	}
	if input.Skills != nil {
		set["skills"] = input.Skills
	}
	if input.Education != "" {
		set["education"] = input.Education
	}
	if input.YearsOfExperience > 0 {
		set["yearsOfExperience"] = input.YearsOfExperience
	}
	if input.Expertise != nil {
		set["expertise"] = input.Expertise
	}
	if input.Organization != "" {
		set["organization"] = input.Organization
	}
	if input.MenteeCapacity > 0 {
		set["menteeCapacity"] = input.MenteeCapacity
	}
	if input.CompanyName != "" {
		set["companyName"] = input.CompanyName
	}
	if input.CompanyWebsite != "" {
		set["companyWebsite"] = input.CompanyWebsite
	}
	if input.Industry != "" {
		set["industry"] = input.Industry
	}
	if input.CompanySize != "" {
		set["companySize"] = input.CompanySize
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, userID)
	}

	return s.UpdateById(ctx, userID, set)
}

// UpdateAccountStatus chuyển trạng thái tài khoản theo bảng chuyển trạng thái cho phép.
// Chuyển không hợp lệ trả về lỗi 400.
func (s *UserService) UpdateAccountStatus(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateAccountStatusInput) (authmodels.User, error) {
	var zero authmodels.User

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return zero, err
	}

	if !authmodels.CanTransitionStatus(user.AccountStatus, input.Status) {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển trạng thái tài khoản từ %s sang %s", user.AccountStatus, input.Status),
			common.StatusBadRequest,
			map[string]interface{}{"from": user.AccountStatus, "to": input.Status},
		)
	}

	updated, err := s.UpdateById(ctx, userID, bson.M{"accountStatus": input.Status})
	if err != nil {
		return zero, err
	}

	// User bị khóa phải mất quyền ngay, không chờ cache xác thực hết hạn
	middleware.InvalidateUserCache(userID.Hex())

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"userId": userID.Hex(),
		"from":   user.AccountStatus,
		"to":     input.Status,
		"reason": input.Reason,
	}).Info("Chuyển trạng thái tài khoản")

	return updated, nil
}

// SaveJob thêm một tin tuyển dụng vào danh sách đã lưu của người dùng.
// Dùng $addToSet nên lưu lại tin đã lưu không tạo bản ghi trùng.
func (s *UserService) SaveJob(ctx context.Context, userID primitive.ObjectID, jobID primitive.ObjectID) (authmodels.User, error) {
	return s.UpdateById(ctx, userID, &basesvc.UpdateData{
		AddToSet: map[string]interface{}{"savedJobs": jobID},
	})
}

// UnsaveJob gỡ một tin tuyển dụng khỏi danh sách đã lưu.
func (s *UserService) UnsaveJob(ctx context.Context, userID primitive.ObjectID, jobID primitive.ObjectID) (authmodels.User, error) {
	return s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Pull: map[string]interface{}{"savedJobs": jobID},
	})
}

// FindByEmail tìm người dùng theo email (đã lowercase).
func (s *UserService) FindByEmail(ctx context.Context, email string) (authmodels.User, error) {
	return s.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}, nil)
}
