// Package coursedto chứa các DTO cho domain course.
package coursedto

// CourseCreateInput đầu vào tạo khóa học.
type CourseCreateInput struct {
	Title         string `json:"title" validate:"required,min=3,max=200,no_xss"`
	Description   string `json:"description" validate:"omitempty,max=5000"`
	Category      string `json:"category" validate:"omitempty,max=100"`
	Level         string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	TotalLessons  int    `json:"totalLessons" validate:"required,min=1"`
	DurationWeeks int    `json:"durationWeeks" validate:"omitempty,min=1"`
	MentorID      string `json:"mentorId" validate:"omitempty,exists=users" transform:"str_objectid,optional"`
	Published     bool   `json:"published"`
}

// CourseUpdateInput đầu vào cập nhật khóa học.
type CourseUpdateInput struct {
	Title         string `json:"title" validate:"omitempty,min=3,max=200,no_xss"`
	Description   string `json:"description" validate:"omitempty,max=5000"`
	Category      string `json:"category" validate:"omitempty,max=100"`
	Level         string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationWeeks int    `json:"durationWeeks" validate:"omitempty,min=1"`
	Published     bool   `json:"published"`
}

// EnrollInput đầu vào ghi danh khóa học.
type EnrollInput struct {
	CourseID string `json:"courseId" validate:"required"`
}

// CompleteLessonInput đầu vào ghi nhận hoàn thành một bài học.
type CompleteLessonInput struct {
	LessonIndex int   `json:"lessonIndex" validate:"min=0"`
	TimeSpent   int64 `json:"timeSpent" validate:"omitempty,min=0"`
}

// QuizAttemptInput đầu vào ghi nhận một lần làm quiz.
type QuizAttemptInput struct {
	QuizID   string `json:"quizId" validate:"required"`
	Score    int    `json:"score" validate:"min=0"`
	MaxScore int    `json:"maxScore" validate:"required,min=1"`
}
