// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò người dùng. Tất cả lưu chung một collection, phân biệt bằng field role.
const (
	RoleYouth         = "Youth"
	RoleMentor        = "Mentor"
	RoleEmployer      = "Employer"
	RoleAdministrator = "Administrator"
)

// Các trạng thái tài khoản
const (
	StatusPending     = "pending"
	StatusActive      = "active"
	StatusSuspended   = "suspended"
	StatusDeactivated = "deactivated"
)

// Address địa chỉ người dùng
type Address struct {
	Street string `json:"street,omitempty" bson:"street,omitempty"`
	City   string `json:"city,omitempty" bson:"city,omitempty"`
	State  string `json:"state,omitempty" bson:"state,omitempty"`
}

// User định nghĩa mô hình người dùng.
// Email lưu lowercase và có unique index. Password là bcrypt hash,
// không bao giờ serialize ra JSON (tag "-").
// Các field theo vai trò dùng omitempty để document chỉ chứa field của vai trò đó.
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FullName      string             `json:"fullName" bson:"fullName"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password      string             `json:"-" bson:"password,omitempty"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty" index:"unique,sparse"`
	Role          string             `json:"role" bson:"role" index:"single"`
	AccountStatus string             `json:"accountStatus" bson:"accountStatus" default:"pending"`
	DateOfBirth   string             `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Address       *Address           `json:"address,omitempty" bson:"address,omitempty"`

	// Field riêng cho Youth
	Skills            []string             `json:"skills,omitempty" bson:"skills,omitempty"`
	Education         string               `json:"education,omitempty" bson:"education,omitempty"`
	YearsOfExperience int                  `json:"yearsOfExperience,omitempty" bson:"yearsOfExperience,omitempty"`
	SavedJobs         []primitive.ObjectID `json:"savedJobs,omitempty" bson:"savedJobs,omitempty"`

	// Field riêng cho Mentor
	Expertise      []string `json:"expertise,omitempty" bson:"expertise,omitempty"`
	Organization   string   `json:"organization,omitempty" bson:"organization,omitempty"`
	MenteeCapacity int      `json:"menteeCapacity,omitempty" bson:"menteeCapacity,omitempty"`

	// Field riêng cho Employer
	CompanyName    string `json:"companyName,omitempty" bson:"companyName,omitempty"`
	CompanyWebsite string `json:"companyWebsite,omitempty" bson:"companyWebsite,omitempty"`
	Industry       string `json:"industry,omitempty" bson:"industry,omitempty"`
	CompanySize    string `json:"companySize,omitempty" bson:"companySize,omitempty"`

	// Field riêng cho Administrator
	Permissions []string `json:"permissions,omitempty" bson:"permissions,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// ValidRoles danh sách vai trò hợp lệ
var ValidRoles = []string{RoleYouth, RoleMentor, RoleEmployer, RoleAdministrator}

// statusTransitions các chuyển trạng thái tài khoản được phép:
// pending -> active; active -> suspended/deactivated; suspended -> active/deactivated
var statusTransitions = map[string][]string{
	StatusPending:     {StatusActive, StatusDeactivated},
	StatusActive:      {StatusSuspended, StatusDeactivated},
	StatusSuspended:   {StatusActive, StatusDeactivated},
	StatusDeactivated: {},
}

// CanTransitionStatus kiểm tra chuyển trạng thái tài khoản có hợp lệ không
func CanTransitionStatus(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
