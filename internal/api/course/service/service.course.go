// Package coursesvc chứa logic nghiệp vụ cho domain course.
package coursesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "youth_bridge/internal/api/base/models"
	basesvc "youth_bridge/internal/api/base/service"
	coursemodels "youth_bridge/internal/api/course/models"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
)

// CourseService là cấu trúc chứa các phương thức liên quan đến khóa học
type CourseService struct {
	*basesvc.BaseServiceMongoImpl[coursemodels.Course]
}

// NewCourseService tạo mới CourseService
func NewCourseService() (*CourseService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Courses)
	if !exist {
		return nil, fmt.Errorf("failed to get courses collection: %v", common.ErrNotFound)
	}
	return &CourseService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[coursemodels.Course](coll),
	}, nil
}

// FindPublished tìm các khóa học đã publish với phân trang, mới nhất trước.
// Filter bổ sung (category, level) được trộn vào filter cơ sở.
func (s *CourseService) FindPublished(ctx context.Context, page, limit int64, extraFilter bson.M) (*basemodels.PaginateResult[coursemodels.Course], error) {
	filter := bson.M{"published": true}
	for k, v := range extraFilter {
		filter[k] = v
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// SearchByTitle tìm kiếm khóa học theo text index trên title.
func (s *CourseService) SearchByTitle(ctx context.Context, query string, page, limit int64) (*basemodels.PaginateResult[coursemodels.Course], error) {
	filter := bson.M{"$text": bson.M{"$search": query}, "published": true}
	return s.FindWithPagination(ctx, filter, page, limit, nil)
}

// IncrementEnrolledCount tăng bộ đếm ghi danh bằng $inc atomic của MongoDB.
func (s *CourseService) IncrementEnrolledCount(ctx context.Context, courseID interface{}, delta int64) error {
	_, err := s.Collection().UpdateOne(ctx,
		bson.M{"_id": courseID},
		bson.M{"$inc": bson.M{"enrolledCount": delta}},
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}
