package jobhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "youth_bridge/internal/api/auth/models"
	basehdl "youth_bridge/internal/api/base/handler"
	jobdto "youth_bridge/internal/api/job/dto"
	jobmodels "youth_bridge/internal/api/job/models"
	jobsvc "youth_bridge/internal/api/job/service"
	"youth_bridge/internal/common"
)

// ApplicationHandler xử lý các route liên quan đến hồ sơ ứng tuyển
type ApplicationHandler struct {
	*basehdl.BaseHandler[jobmodels.Application, jobdto.ApplyInput, jobdto.ApplicationStatusInput]
	ApplicationService *jobsvc.ApplicationService
}

// NewApplicationHandler tạo ApplicationHandler mới
func NewApplicationHandler() (*ApplicationHandler, error) {
	service, err := jobsvc.NewApplicationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create application service: %v", err)
	}
	hdl := &ApplicationHandler{ApplicationService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[jobmodels.Application, jobdto.ApplyInput, jobdto.ApplicationStatusInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleApply nộp hồ sơ ứng tuyển. Nộp trùng trả về 409.
// @Router /applications/apply [post]
func (h *ApplicationHandler) HandleApply(c fiber.Ctx) error {
	applicantID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(jobdto.ApplyInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	application, err := h.ApplicationService.Apply(c.Context(), applicantID, input)
	h.HandleCreatedResponse(c, application, err)
	return nil
}

// HandleUpdateStatus cập nhật trạng thái hồ sơ :id (employer sở hữu tin hoặc admin).
// @Router /applications/update-status/:id [put]
func (h *ApplicationHandler) HandleUpdateStatus(c fiber.Ctx) error {
	actorID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	applicationID, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	input := new(jobdto.ApplicationStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	isAdmin := basehdl.CurrentUserRole(c) == authmodels.RoleAdministrator
	application, err := h.ApplicationService.UpdateStatus(c.Context(), applicationID, actorID, isAdmin, input)
	h.HandleResponse(c, application, err)
	return nil
}

// HandleFindByJob liệt kê hồ sơ ứng tuyển của tin :jobId kèm thông tin ứng viên.
// @Router /applications/by-job/:jobId [get]
func (h *ApplicationHandler) HandleFindByJob(c fiber.Ctx) error {
	actorID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	jobID, err := primitive.ObjectIDFromHex(c.Params("jobId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "jobId không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	page, limit := h.ParsePagination(c)
	isAdmin := basehdl.CurrentUserRole(c) == authmodels.RoleAdministrator
	result, err := h.ApplicationService.FindByJob(c.Context(), jobID, actorID, isAdmin, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleMyApplications liệt kê hồ sơ đã nộp của người dùng hiện tại.
// @Router /applications/my [get]
func (h *ApplicationHandler) HandleMyApplications(c fiber.Ctx) error {
	applicantID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.ApplicationService.FindByApplicant(c.Context(), applicantID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}
