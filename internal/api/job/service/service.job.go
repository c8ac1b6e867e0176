// Package jobsvc chứa logic nghiệp vụ cho domain job.
package jobsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "youth_bridge/internal/api/base/models"
	basesvc "youth_bridge/internal/api/base/service"
	jobdto "youth_bridge/internal/api/job/dto"
	jobmodels "youth_bridge/internal/api/job/models"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
)

// JobService là cấu trúc chứa các phương thức liên quan đến tin tuyển dụng
type JobService struct {
	*basesvc.BaseServiceMongoImpl[jobmodels.Job]
}

// NewJobService tạo mới JobService
func NewJobService() (*JobService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Jobs)
	if !exist {
		return nil, fmt.Errorf("failed to get jobs collection: %v", common.ErrNotFound)
	}
	return &JobService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[jobmodels.Job](coll),
	}, nil
}

// CreateForEmployer đăng tin tuyển dụng cho employer hiện tại.
// EmployerID lấy từ token, không nhận từ body.
func (s *JobService) CreateForEmployer(ctx context.Context, employerID primitive.ObjectID, input *jobdto.JobCreateInput) (jobmodels.Job, error) {
	job := jobmodels.Job{
		Title:        input.Title,
		Description:  input.Description,
		EmployerID:   employerID,
		Location:     input.Location,
		JobType:      input.JobType,
		Requirements: input.Requirements,
		Deadline:     input.Deadline,
	}
	if input.SalaryRange != nil {
		job.SalaryRange = &jobmodels.SalaryRange{
			Min:      input.SalaryRange.Min,
			Max:      input.SalaryRange.Max,
			Currency: input.SalaryRange.Currency,
		}
	}
	return s.InsertOne(ctx, job)
}

// Close đóng tin tuyển dụng. Chỉ employer sở hữu tin (hoặc admin) được đóng.
func (s *JobService) Close(ctx context.Context, jobID, actorID primitive.ObjectID, isAdmin bool) (jobmodels.Job, error) {
	var zero jobmodels.Job

	job, err := s.FindOneById(ctx, jobID)
	if err != nil {
		return zero, err
	}
	if !isAdmin && job.EmployerID != actorID {
		return zero, common.NewError(common.ErrCodeAuthRole, "Bạn không sở hữu tin tuyển dụng này", common.StatusForbidden, nil)
	}
	if job.Status == jobmodels.JobStatusClosed {
		return job, nil
	}

	return s.UpdateById(ctx, jobID, bson.M{"status": jobmodels.JobStatusClosed})
}

// FindOpen liệt kê tin tuyển dụng đang mở với phân trang, mới nhất trước.
func (s *JobService) FindOpen(ctx context.Context, page, limit int64, extraFilter bson.M) (*basemodels.PaginateResult[jobmodels.Job], error) {
	filter := bson.M{"status": jobmodels.JobStatusOpen}
	for k, v := range extraFilter {
		filter[k] = v
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// FindByEmployer liệt kê tin tuyển dụng của một employer.
func (s *JobService) FindByEmployer(ctx context.Context, employerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[jobmodels.Job], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"employerId": employerID}, page, limit, opts)
}

// SearchByTitle tìm kiếm tin tuyển dụng đang mở theo text index trên title.
func (s *JobService) SearchByTitle(ctx context.Context, query string, page, limit int64) (*basemodels.PaginateResult[jobmodels.Job], error) {
	filter := bson.M{"$text": bson.M{"$search": query}, "status": jobmodels.JobStatusOpen}
	return s.FindWithPagination(ctx, filter, page, limit, nil)
}

// Stats thống kê số tin tuyển dụng theo trạng thái và loại hình (dashboard admin).
func (s *JobService) Stats(ctx context.Context) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "status", Value: "$status"},
				{Key: "jobType", Value: "$jobType"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	return s.Aggregate(ctx, pipeline)
}
