// Package jobmodels - model tin tuyển dụng (Job) và hồ sơ ứng tuyển (Application).
package jobmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại hình công việc
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

// Các trạng thái tin tuyển dụng
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// SalaryRange khoảng lương của tin tuyển dụng
type SalaryRange struct {
	Min      int64  `json:"min,omitempty" bson:"min,omitempty"`
	Max      int64  `json:"max,omitempty" bson:"max,omitempty"`
	Currency string `json:"currency,omitempty" bson:"currency,omitempty"`
}

// Job định nghĩa mô hình tin tuyển dụng.
// EmployerID tham chiếu tới users (role Employer).
type Job struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title" index:"text"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	EmployerID   primitive.ObjectID `json:"employerId" bson:"employerId" index:"single"`
	Location     string             `json:"location,omitempty" bson:"location,omitempty"`
	JobType      string             `json:"jobType" bson:"jobType"`
	SalaryRange  *SalaryRange       `json:"salaryRange,omitempty" bson:"salaryRange,omitempty"`
	Requirements []string           `json:"requirements,omitempty" bson:"requirements,omitempty"`
	Status       string             `json:"status" bson:"status" default:"open"`
	Deadline     int64              `json:"deadline,omitempty" bson:"deadline,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`

	// Chặn xóa tin tuyển dụng khi còn hồ sơ ứng tuyển tham chiếu tới
	_Relationships struct{} `json:"-" bson:"-" relationship:"collection:applications,field:jobId,message:Không thể xóa tin tuyển dụng vì có %d hồ sơ ứng tuyển đang tham chiếu"`
}
