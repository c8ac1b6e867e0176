// Package jobhdl chứa các handler cho domain job.
package jobhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "youth_bridge/internal/api/auth/models"
	authsvc "youth_bridge/internal/api/auth/service"
	basehdl "youth_bridge/internal/api/base/handler"
	jobdto "youth_bridge/internal/api/job/dto"
	jobmodels "youth_bridge/internal/api/job/models"
	jobsvc "youth_bridge/internal/api/job/service"
	"youth_bridge/internal/common"
)

// JobHandler xử lý các route liên quan đến tin tuyển dụng
type JobHandler struct {
	*basehdl.BaseHandler[jobmodels.Job, jobdto.JobCreateInput, jobdto.JobUpdateInput]
	JobService  *jobsvc.JobService
	UserService *authsvc.UserService
}

// NewJobHandler tạo JobHandler mới
func NewJobHandler() (*JobHandler, error) {
	service, err := jobsvc.NewJobService()
	if err != nil {
		return nil, fmt.Errorf("failed to create job service: %v", err)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	hdl := &JobHandler{JobService: service, UserService: userService}
	hdl.BaseHandler = basehdl.NewBaseHandler[jobmodels.Job, jobdto.JobCreateInput, jobdto.JobUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandlePost đăng tin tuyển dụng mới cho employer hiện tại.
// @Router /jobs/post [post]
func (h *JobHandler) HandlePost(c fiber.Ctx) error {
	employerID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(jobdto.JobCreateInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	job, err := h.JobService.CreateForEmployer(c.Context(), employerID, input)
	h.HandleCreatedResponse(c, job, err)
	return nil
}

// HandleClose đóng tin tuyển dụng :id.
// @Router /jobs/close/:id [put]
func (h *JobHandler) HandleClose(c fiber.Ctx) error {
	actorID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	jobID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	isAdmin := basehdl.CurrentUserRole(c) == authmodels.RoleAdministrator
	job, err := h.JobService.Close(c.Context(), jobID, actorID, isAdmin)
	h.HandleResponse(c, job, err)
	return nil
}

// HandleFindOpen liệt kê tin tuyển dụng đang mở với phân trang.
// Hỗ trợ lọc theo jobType và location qua query param.
// @Router /jobs/open [get]
func (h *JobHandler) HandleFindOpen(c fiber.Ctx) error {
	page, limit := h.ParsePagination(c)

	extra := bson.M{}
	if jobType := c.Query("jobType"); jobType != "" {
		extra["jobType"] = jobType
	}
	if location := c.Query("location"); location != "" {
		extra["location"] = location
	}

	result, err := h.JobService.FindOpen(c.Context(), page, limit, extra)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleMyJobs liệt kê tin tuyển dụng của employer hiện tại.
// @Router /jobs/my [get]
func (h *JobHandler) HandleMyJobs(c fiber.Ctx) error {
	employerID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.JobService.FindByEmployer(c.Context(), employerID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleStats thống kê tin tuyển dụng theo trạng thái và loại hình.
// @Router /jobs/stats [get]
func (h *JobHandler) HandleStats(c fiber.Ctx) error {
	stats, err := h.JobService.Stats(c.Context())
	h.HandleResponse(c, stats, err)
	return nil
}

// HandleSaveJob lưu tin tuyển dụng :id vào danh sách đã lưu của người dùng hiện tại.
// @Router /jobs/save/:id [put]
func (h *JobHandler) HandleSaveJob(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	jobID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	// Tin phải tồn tại trước khi lưu
	if _, err := h.JobService.FindOneById(c.Context(), jobID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.UserService.SaveJob(c.Context(), userID, jobID)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUnsaveJob gỡ tin tuyển dụng :id khỏi danh sách đã lưu.
// @Router /jobs/unsave/:id [put]
func (h *JobHandler) HandleUnsaveJob(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	jobID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	user, err := h.UserService.UnsaveJob(c.Context(), userID, jobID)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleSearch tìm kiếm tin tuyển dụng theo tiêu đề (text index).
// @Router /jobs/search [get]
func (h *JobHandler) HandleSearch(c fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số tìm kiếm q", common.StatusBadRequest, nil))
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.JobService.SearchByTitle(c.Context(), query, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}
