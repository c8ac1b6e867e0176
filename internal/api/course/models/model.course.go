// Package coursemodels - model khóa học (Course).
package coursemodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các cấp độ khóa học
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Course định nghĩa mô hình khóa học.
// MentorID tham chiếu tới users; TotalLessons phải > 0 vì percentage tiến độ
// được tính từ nó.
type Course struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title" index:"text"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	Category      string             `json:"category,omitempty" bson:"category,omitempty" index:"single"`
	Level         string             `json:"level" bson:"level" default:"beginner"`
	TotalLessons  int                `json:"totalLessons" bson:"totalLessons"`
	DurationWeeks int                `json:"durationWeeks,omitempty" bson:"durationWeeks,omitempty"`
	MentorID      primitive.ObjectID `json:"mentorId,omitempty" bson:"mentorId,omitempty" index:"single"`
	Published     bool               `json:"published" bson:"published"`
	EnrolledCount int64              `json:"enrolledCount" bson:"enrolledCount"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`

	// Chặn xóa khóa học khi còn tiến độ học tham chiếu tới
	_Relationships struct{} `json:"-" bson:"-" relationship:"collection:progress,field:courseId,message:Không thể xóa khóa học vì có %d tiến độ học đang tham chiếu"`
}
