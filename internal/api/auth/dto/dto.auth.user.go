// Package authdto chứa các DTO cho domain auth (đăng ký, đăng nhập, quản lý tài khoản).
package authdto

// AddressInput địa chỉ người dùng trong input.
type AddressInput struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
}

// RegisterInput đầu vào đăng ký tài khoản.
// Role quyết định các field bổ sung nào được lưu; email sẽ được lowercase trước khi lưu.
type RegisterInput struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100,no_xss"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,strong_password"`
	// Administrator không tự đăng ký được, chỉ tạo qua bootstrap hoặc admin khác
	Role        string        `json:"role" validate:"required,oneof=Youth Mentor Employer"`
	Phone       string        `json:"phone" validate:"omitempty,min=7,max=20"`
	DateOfBirth string        `json:"dateOfBirth" validate:"required_if=Role Youth,min_age=16"`
	Address     *AddressInput `json:"address"`

	// Youth
	Skills            []string `json:"skills"`
	Education         string   `json:"education"`
	YearsOfExperience int      `json:"yearsOfExperience" validate:"omitempty,min=0,max=60"`

	// Mentor
	Expertise      []string `json:"expertise"`
	Organization   string   `json:"organization"`
	MenteeCapacity int      `json:"menteeCapacity" validate:"omitempty,min=0"`

	// Employer
	CompanyName    string `json:"companyName"`
	CompanyWebsite string `json:"companyWebsite" validate:"omitempty,url"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"companySize"`
}

// LoginInput đầu vào đăng nhập.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult kết quả đăng nhập trả về cho client.
type LoginResult struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateProfileInput đầu vào cập nhật hồ sơ của chính mình.
// Không cho phép đổi email/role/accountStatus qua endpoint này.
type UpdateProfileInput struct {
	FullName    string        `json:"fullName" validate:"omitempty,min=2,max=100,no_xss"`
	Phone       string        `json:"phone" validate:"omitempty,min=7,max=20"`
	DateOfBirth string        `json:"dateOfBirth" validate:"omitempty,min_age=16"`
	Address     *AddressInput `json:"address"`

	Skills            []string `json:"skills"`
	Education         string   `json:"education"`
	YearsOfExperience int      `json:"yearsOfExperience" validate:"omitempty,min=0,max=60"`

	Expertise      []string `json:"expertise"`
	Organization   string   `json:"organization"`
	MenteeCapacity int      `json:"menteeCapacity" validate:"omitempty,min=0"`

	CompanyName    string `json:"companyName"`
	CompanyWebsite string `json:"companyWebsite" validate:"omitempty,url"`
	Industry       string `json:"industry"`
	CompanySize    string `json:"companySize"`
}

// UpdateAccountStatusInput đầu vào chuyển trạng thái tài khoản (admin).
type UpdateAccountStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending active suspended deactivated"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// UserCreateInput đầu vào tạo người dùng qua CRUD (admin).
type UserCreateInput struct {
	FullName    string `json:"fullName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,strong_password"`
	Role        string `json:"role" validate:"required,oneof=Youth Mentor Employer Administrator"`
	Phone       string `json:"phone" validate:"omitempty"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,min_age=16"`
}

// UserUpdateInput đầu vào cập nhật người dùng qua CRUD (admin).
type UserUpdateInput struct {
	FullName    string `json:"fullName" validate:"omitempty,min=2,max=100"`
	Phone       string `json:"phone" validate:"omitempty"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,min_age=16"`
}
