// Package coursehdl chứa các handler cho domain course.
package coursehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "youth_bridge/internal/api/base/handler"
	coursedto "youth_bridge/internal/api/course/dto"
	coursemodels "youth_bridge/internal/api/course/models"
	coursesvc "youth_bridge/internal/api/course/service"
	"youth_bridge/internal/common"
)

// CourseHandler xử lý các route liên quan đến khóa học
type CourseHandler struct {
	*basehdl.BaseHandler[coursemodels.Course, coursedto.CourseCreateInput, coursedto.CourseUpdateInput]
	CourseService *coursesvc.CourseService
}

// NewCourseHandler tạo CourseHandler mới
func NewCourseHandler() (*CourseHandler, error) {
	service, err := coursesvc.NewCourseService()
	if err != nil {
		return nil, fmt.Errorf("failed to create course service: %v", err)
	}
	hdl := &CourseHandler{CourseService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[coursemodels.Course, coursedto.CourseCreateInput, coursedto.CourseUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleFindPublished liệt kê khóa học đã publish với phân trang.
// Hỗ trợ lọc theo category và level qua query param.
// @Router /courses/published [get]
func (h *CourseHandler) HandleFindPublished(c fiber.Ctx) error {
	page, limit := h.ParsePagination(c)

	extra := bson.M{}
	if category := c.Query("category"); category != "" {
		extra["category"] = category
	}
	if level := c.Query("level"); level != "" {
		extra["level"] = level
	}

	result, err := h.CourseService.FindPublished(c.Context(), page, limit, extra)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleSearch tìm kiếm khóa học theo tiêu đề (text index).
// @Router /courses/search [get]
func (h *CourseHandler) HandleSearch(c fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số tìm kiếm q", common.StatusBadRequest, nil))
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.CourseService.SearchByTitle(c.Context(), query, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}
