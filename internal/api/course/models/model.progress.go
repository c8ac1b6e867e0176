package coursemodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái tiến độ học
const (
	ProgressEnrolled   = "enrolled"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

// LessonRecord ghi nhận một bài học đã hoàn thành
type LessonRecord struct {
	LessonIndex int   `json:"lessonIndex" bson:"lessonIndex"`
	TimeSpent   int64 `json:"timeSpent,omitempty" bson:"timeSpent,omitempty"` // giây
	CompletedAt int64 `json:"completedAt" bson:"completedAt"`
}

// QuizAttempt một lần làm quiz (append-only)
type QuizAttempt struct {
	QuizID      string `json:"quizId" bson:"quizId"`
	Score       int    `json:"score" bson:"score"`
	MaxScore    int    `json:"maxScore" bson:"maxScore"`
	AttemptedAt int64  `json:"attemptedAt" bson:"attemptedAt"`
}

// Progress tiến độ học của một người dùng trên một khóa học.
// Mỗi cặp (userId, courseId) có đúng một document — unique compound index.
// Percentage do server tính từ số bài đã hoàn thành, client không ghi được.
// CompletedAt chỉ được set một lần duy nhất khi percentage chạm 100.
type Progress struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID           primitive.ObjectID `json:"userId" bson:"userId" index:"compound:userId_courseId_unique"`
	CourseID         primitive.ObjectID `json:"courseId" bson:"courseId" index:"compound:userId_courseId_unique"`
	TotalLessons     int                `json:"totalLessons" bson:"totalLessons"`
	LessonsCompleted int                `json:"lessonsCompleted" bson:"lessonsCompleted"`
	Lessons          []LessonRecord     `json:"lessons,omitempty" bson:"lessons,omitempty"`
	QuizAttempts     []QuizAttempt      `json:"quizAttempts,omitempty" bson:"quizAttempts,omitempty"`
	Percentage       int                `json:"percentage" bson:"percentage"`
	Status           string             `json:"status" bson:"status" default:"enrolled"`
	CompletedAt      int64              `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// ComputePercentage tính phần trăm hoàn thành, làm tròn về số nguyên gần nhất.
func ComputePercentage(lessonsCompleted, totalLessons int) int {
	if totalLessons <= 0 {
		return 0
	}
	if lessonsCompleted >= totalLessons {
		return 100
	}
	return int((float64(lessonsCompleted)/float64(totalLessons))*100 + 0.5)
}
