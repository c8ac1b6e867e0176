// Package jobdto chứa các DTO cho domain job.
package jobdto

// SalaryRangeInput khoảng lương trong input.
type SalaryRangeInput struct {
	Min      int64  `json:"min" validate:"omitempty,min=0"`
	Max      int64  `json:"max" validate:"omitempty,min=0"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

// JobCreateInput đầu vào đăng tin tuyển dụng.
type JobCreateInput struct {
	Title        string            `json:"title" validate:"required,min=3,max=200,no_xss"`
	Description  string            `json:"description" validate:"omitempty,max=10000"`
	Location     string            `json:"location" validate:"omitempty,max=200"`
	JobType      string            `json:"jobType" validate:"required,oneof=full_time part_time contract internship"`
	SalaryRange  *SalaryRangeInput `json:"salaryRange"`
	Requirements []string          `json:"requirements" validate:"omitempty,max=30,dive,max=300"`
	Deadline     int64             `json:"deadline" validate:"omitempty,min=0"`
}

// JobUpdateInput đầu vào cập nhật tin tuyển dụng.
type JobUpdateInput struct {
	Title        string            `json:"title" validate:"omitempty,min=3,max=200,no_xss"`
	Description  string            `json:"description" validate:"omitempty,max=10000"`
	Location     string            `json:"location" validate:"omitempty,max=200"`
	JobType      string            `json:"jobType" validate:"omitempty,oneof=full_time part_time contract internship"`
	SalaryRange  *SalaryRangeInput `json:"salaryRange"`
	Requirements []string          `json:"requirements" validate:"omitempty,max=30,dive,max=300"`
	Deadline     int64             `json:"deadline" validate:"omitempty,min=0"`
}

// ApplyInput đầu vào nộp hồ sơ ứng tuyển.
type ApplyInput struct {
	JobID       string `json:"jobId" validate:"required"`
	CoverLetter string `json:"coverLetter" validate:"omitempty,max=10000"`
	ResumeURL   string `json:"resumeUrl" validate:"omitempty,url"`
}

// ApplicationStatusInput đầu vào cập nhật trạng thái hồ sơ (employer).
type ApplicationStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected accepted"`
	Note   string `json:"note" validate:"omitempty,max=2000"`
}
