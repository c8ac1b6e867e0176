package coursehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "youth_bridge/internal/api/base/handler"
	coursedto "youth_bridge/internal/api/course/dto"
	coursemodels "youth_bridge/internal/api/course/models"
	coursesvc "youth_bridge/internal/api/course/service"
	"youth_bridge/internal/common"
)

// ProgressHandler xử lý các route liên quan đến tiến độ học
type ProgressHandler struct {
	*basehdl.BaseHandler[coursemodels.Progress, coursedto.EnrollInput, coursedto.CompleteLessonInput]
	ProgressService *coursesvc.ProgressService
}

// NewProgressHandler tạo ProgressHandler mới
func NewProgressHandler() (*ProgressHandler, error) {
	service, err := coursesvc.NewProgressService()
	if err != nil {
		return nil, fmt.Errorf("failed to create progress service: %v", err)
	}
	hdl := &ProgressHandler{ProgressService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[coursemodels.Progress, coursedto.EnrollInput, coursedto.CompleteLessonInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleEnroll ghi danh người dùng hiện tại vào khóa học. Ghi danh trùng trả về 409.
// @Router /progress/enroll [post]
func (h *ProgressHandler) HandleEnroll(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := new(coursedto.EnrollInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	courseID, err := primitive.ObjectIDFromHex(input.CourseID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "courseId không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	progress, err := h.ProgressService.Enroll(c.Context(), userID, courseID)
	h.HandleCreatedResponse(c, progress, err)
	return nil
}

// HandleCompleteLesson ghi nhận hoàn thành một bài học của khóa học :courseId.
// @Router /progress/complete-lesson/:courseId [put]
func (h *ProgressHandler) HandleCompleteLesson(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "courseId không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	input := new(coursedto.CompleteLessonInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	progress, err := h.ProgressService.CompleteLesson(c.Context(), userID, courseID, input)
	h.HandleResponse(c, progress, err)
	return nil
}

// HandleQuizAttempt ghi nhận một lần làm quiz của khóa học :courseId.
// @Router /progress/quiz-attempt/:courseId [post]
func (h *ProgressHandler) HandleQuizAttempt(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	courseID, err := primitive.ObjectIDFromHex(c.Params("courseId"))
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "courseId không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	input := new(coursedto.QuizAttemptInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	progress, err := h.ProgressService.RecordQuizAttempt(c.Context(), userID, courseID, input)
	h.HandleResponse(c, progress, err)
	return nil
}

// HandleMyProgress liệt kê tiến độ học của người dùng hiện tại.
// @Router /progress/my [get]
func (h *ProgressHandler) HandleMyProgress(c fiber.Ctx) error {
	userID, err := basehdl.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.ProgressService.FindByUser(c.Context(), userID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}
