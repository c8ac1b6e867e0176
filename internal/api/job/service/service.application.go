package jobsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "youth_bridge/internal/api/base/models"
	basesvc "youth_bridge/internal/api/base/service"
	jobdto "youth_bridge/internal/api/job/dto"
	jobmodels "youth_bridge/internal/api/job/models"
	"youth_bridge/internal/common"
	"youth_bridge/internal/global"
	"youth_bridge/internal/logger"
	"youth_bridge/internal/utility"
)

// ApplicationService là cấu trúc chứa các phương thức liên quan đến hồ sơ ứng tuyển
type ApplicationService struct {
	*basesvc.BaseServiceMongoImpl[jobmodels.Application]
	jobService *JobService
}

// NewApplicationService tạo mới ApplicationService
func NewApplicationService() (*ApplicationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Applications)
	if !exist {
		return nil, fmt.Errorf("failed to get applications collection: %v", common.ErrNotFound)
	}
	jobService, err := NewJobService()
	if err != nil {
		return nil, fmt.Errorf("failed to create job service: %v", err)
	}
	return &ApplicationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[jobmodels.Application](coll),
		jobService:           jobService,
	}, nil
}

// Apply nộp hồ sơ ứng tuyển.
// Nộp trùng cùng (applicantId, jobId) bị chặn bởi unique compound index —
// một insert duy nhất, lỗi duplicate key chuyển thành 409. Không check-then-create.
func (s *ApplicationService) Apply(ctx context.Context, applicantID primitive.ObjectID, input *jobdto.ApplyInput) (jobmodels.Application, error) {
	var zero jobmodels.Application

	jobID, err := primitive.ObjectIDFromHex(input.JobID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "jobId không hợp lệ", common.StatusBadRequest, nil)
	}

	job, err := s.jobService.FindOneById(ctx, jobID)
	if err != nil {
		return zero, err
	}
	if job.Status != jobmodels.JobStatusOpen {
		return zero, common.NewError(common.ErrCodeBusinessState, "Tin tuyển dụng đã đóng", common.StatusBadRequest, nil)
	}
	if job.Deadline > 0 && job.Deadline < utility.CurrentTimeInMilli() {
		return zero, common.NewError(common.ErrCodeBusinessState, "Tin tuyển dụng đã quá hạn nộp hồ sơ", common.StatusBadRequest, nil)
	}

	application := jobmodels.Application{
		ApplicantID: applicantID,
		JobID:       jobID,
		CoverLetter: input.CoverLetter,
		ResumeURL:   input.ResumeURL,
	}

	created, err := s.InsertOne(ctx, application)
	if err != nil {
		var appErr *common.Error
		if errors.As(err, &appErr) && appErr.Code == common.ErrCodeDatabaseDuplicate {
			return zero, common.NewError(common.ErrCodeDatabaseDuplicate, "Bạn đã nộp hồ sơ cho tin tuyển dụng này", common.StatusConflict,
				map[string]interface{}{"field": "jobId"})
		}
		return zero, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"applicantId": applicantID.Hex(),
		"jobId":       jobID.Hex(),
	}).Info("Nộp hồ sơ ứng tuyển")

	return created, nil
}

// UpdateStatus cập nhật trạng thái hồ sơ. Chỉ employer sở hữu tin (hoặc admin).
// Event applications:update phát ra từ UpdateById sẽ kích hoạt e-mail thông báo.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, actorID primitive.ObjectID, isAdmin bool, input *jobdto.ApplicationStatusInput) (jobmodels.Application, error) {
	var zero jobmodels.Application

	application, err := s.FindOneById(ctx, applicationID)
	if err != nil {
		return zero, err
	}

	job, err := s.jobService.FindOneById(ctx, application.JobID)
	if err != nil {
		return zero, err
	}
	if !isAdmin && job.EmployerID != actorID {
		return zero, common.NewError(common.ErrCodeAuthRole, "Bạn không sở hữu tin tuyển dụng này", common.StatusForbidden, nil)
	}

	return s.UpdateById(ctx, applicationID, bson.M{"status": input.Status})
}

// FindByJob liệt kê hồ sơ ứng tuyển của một tin tuyển dụng (employer sở hữu tin).
// Kèm thông tin tóm tắt ứng viên qua $lookup.
func (s *ApplicationService) FindByJob(ctx context.Context, jobID, actorID primitive.ObjectID, isAdmin bool, page, limit int64) (*basemodels.PaginateResult[bson.M], error) {
	job, err := s.jobService.FindOneById(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && job.EmployerID != actorID {
		return nil, common.NewError(common.ErrCodeAuthRole, "Bạn không sở hữu tin tuyển dụng này", common.StatusForbidden, nil)
	}

	page, limit = basesvc.NormalizePagination(page, limit)

	total, err := s.CountDocuments(ctx, bson.M{"jobId": jobID})
	if err != nil {
		return nil, err
	}

	pipeline := []bson.M{
		{"$match": bson.M{"jobId": jobID}},
		{"$sort": bson.M{"createdAt": -1}},
		{"$skip": (page - 1) * limit},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         global.MongoDB_ColNames.Users,
			"localField":   "applicantId",
			"foreignField": "_id",
			"as":           "applicant",
		}},
		{"$unwind": bson.M{"path": "$applicant", "preserveNullAndEmptyArrays": true}},
		// Không bao giờ trả password/hash ra ngoài
		{"$project": bson.M{
			"applicant.password": 0,
		}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var items []bson.M
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	totalPage := int64(0)
	if limit > 0 {
		totalPage = (total + limit - 1) / limit
	}
	return &basemodels.PaginateResult[bson.M]{
		Page:        page,
		Limit:       limit,
		ItemCount:   int64(len(items)),
		Items:       items,
		Total:       total,
		TotalPage:   totalPage,
		HasNextPage: page < totalPage,
		HasPrevPage: page > 1 && total > 0,
	}, nil
}

// FindByApplicant liệt kê hồ sơ đã nộp của một ứng viên.
func (s *ApplicationService) FindByApplicant(ctx context.Context, applicantID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[jobmodels.Application], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"applicantId": applicantID}, page, limit, opts)
}
