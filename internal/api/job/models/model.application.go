package jobmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái hồ sơ ứng tuyển
const (
	ApplicationPending     = "pending"
	ApplicationReviewed    = "reviewed"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationAccepted    = "accepted"
)

// Application hồ sơ ứng tuyển của một ứng viên cho một tin tuyển dụng.
// Unique compound index (applicantId, jobId) chặn nộp trùng ngay tại store —
// insert là thao tác duy nhất, không có bước check-then-create.
type Application struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ApplicantID primitive.ObjectID `json:"applicantId" bson:"applicantId" index:"compound:applicantId_jobId_unique"`
	JobID       primitive.ObjectID `json:"jobId" bson:"jobId" index:"compound:applicantId_jobId_unique"`
	CoverLetter string             `json:"coverLetter,omitempty" bson:"coverLetter,omitempty"`
	ResumeURL   string             `json:"resumeUrl,omitempty" bson:"resumeUrl,omitempty"`
	Status      string             `json:"status" bson:"status" default:"pending"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// validStatusValues các giá trị trạng thái hợp lệ của hồ sơ
var validStatusValues = []string{
	ApplicationPending, ApplicationReviewed, ApplicationShortlisted, ApplicationRejected, ApplicationAccepted,
}

// IsValidApplicationStatus kiểm tra trạng thái hồ sơ hợp lệ
func IsValidApplicationStatus(status string) bool {
	for _, s := range validStatusValues {
		if s == status {
			return true
		}
	}
	return false
}
