package coursesvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "youth_bridge/internal/api/base/models"
	basesvc "youth_bridge/internal/api/base/service"
	coursedto "youth_bridge/internal/api/course/dto"
	coursemodels "youth_bridge/internal/api/course/models"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
	"youth_bridge/internal/utility"
)

// ProgressService là cấu trúc chứa các phương thức liên quan đến tiến độ học
type ProgressService struct {
	*basesvc.BaseServiceMongoImpl[coursemodels.Progress]
	courseService *CourseService
}

// NewProgressService tạo mới ProgressService
func NewProgressService() (*ProgressService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Progress)
	if !exist {
		return nil, fmt.Errorf("failed to get progress collection: %v", common.ErrNotFound)
	}
	courseService, err := NewCourseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create course service: %v", err)
	}
	return &ProgressService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[coursemodels.Progress](coll),
		courseService:        courseService,
	}, nil
}

// Enroll ghi danh người dùng vào khóa học.
// Unique compound index (userId, courseId) chặn ghi danh trùng ở tầng store,
// lỗi duplicate key được chuyển thành 409 (không check-then-create).
func (s *ProgressService) Enroll(ctx context.Context, userID, courseID primitive.ObjectID) (coursemodels.Progress, error) {
	var zero coursemodels.Progress

	course, err := s.courseService.FindOneById(ctx, courseID)
	if err != nil {
		return zero, err
	}
	if !course.Published {
		return zero, common.NewError(common.ErrCodeBusinessState, "Khóa học chưa được mở ghi danh", common.StatusBadRequest, nil)
	}

	progress := coursemodels.Progress{
		UserID:       userID,
		CourseID:     courseID,
		TotalLessons: course.TotalLessons,
	}

	// Tạo tiến độ và tăng bộ đếm ghi danh trong cùng một transaction:
	// cả hai cùng thành công hoặc không có gì được ghi.
	result, err := s.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		created, err := s.InsertOne(sc, progress)
		if err != nil {
			return nil, err
		}
		if err := s.courseService.IncrementEnrolledCount(sc, courseID, 1); err != nil {
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		var appErr *common.Error
		if errors.As(err, &appErr) && appErr.Code == common.ErrCodeDatabaseDuplicate {
			return zero, common.NewError(common.ErrCodeDatabaseDuplicate, "Bạn đã ghi danh khóa học này", common.StatusConflict,
				map[string]interface{}{"field": "courseId"})
		}
		return zero, err
	}

	return result.(coursemodels.Progress), nil
}

// CompleteLesson ghi nhận hoàn thành một bài học và tính lại percentage phía server.
// Gọi lại với cùng lessonIndex là no-op. CompletedAt chỉ được stamp một lần duy nhất
// khi percentage chạm 100; các cập nhật sau không đổi completedAt.
func (s *ProgressService) CompleteLesson(ctx context.Context, userID, courseID primitive.ObjectID, input *coursedto.CompleteLessonInput) (coursemodels.Progress, error) {
	var zero coursemodels.Progress

	progress, err := s.FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}, nil)
	if err != nil {
		return zero, err
	}

	if input.LessonIndex >= progress.TotalLessons {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Bài học %d không tồn tại trong khóa học (%d bài)", input.LessonIndex, progress.TotalLessons),
			common.StatusBadRequest, map[string]interface{}{"field": "lessonIndex"})
	}

	for _, lesson := range progress.Lessons {
		if lesson.LessonIndex == input.LessonIndex {
			// Đã ghi nhận rồi, trả về hiện trạng
			return progress, nil
		}
	}

	lessons := append(progress.Lessons, coursemodels.LessonRecord{
		LessonIndex: input.LessonIndex,
		TimeSpent:   input.TimeSpent,
		CompletedAt: utility.CurrentTimeInMilli(),
	})
	completed := len(lessons)
	percentage := coursemodels.ComputePercentage(completed, progress.TotalLessons)

	set := bson.M{
		"lessons":          lessons,
		"lessonsCompleted": completed,
		"percentage":       percentage,
	}
	switch {
	case percentage >= 100 && progress.CompletedAt == 0:
		set["status"] = coursemodels.ProgressCompleted
		set["completedAt"] = utility.CurrentTimeInMilli()
	case progress.Status == coursemodels.ProgressEnrolled:
		set["status"] = coursemodels.ProgressInProgress
	}

	return s.UpdateById(ctx, progress.ID, set)
}

// RecordQuizAttempt ghi nhận một lần làm quiz (append-only).
func (s *ProgressService) RecordQuizAttempt(ctx context.Context, userID, courseID primitive.ObjectID, input *coursedto.QuizAttemptInput) (coursemodels.Progress, error) {
	var zero coursemodels.Progress

	progress, err := s.FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}, nil)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{
		Push: map[string]interface{}{
			"quizAttempts": coursemodels.QuizAttempt{
				QuizID:      input.QuizID,
				Score:       input.Score,
				MaxScore:    input.MaxScore,
				AttemptedAt: utility.CurrentTimeInMilli(),
			},
		},
	}
	return s.UpdateById(ctx, progress.ID, update)
}

// FindByUser liệt kê tiến độ học của một người dùng với phân trang.
func (s *ProgressService) FindByUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[coursemodels.Progress], error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"userId": userID}, page, limit, opts)
}
