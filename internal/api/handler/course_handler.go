package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/service"
	"fouryearplan/backend/pkg/response"
)

// CourseHandler 课程目录模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// Options 查询某条要求的候选课程
// POST /api/v1/courses/options
func (h *CourseHandler) Options(c *gin.Context) {
	var req dto.CourseOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters: "+err.Error())
		return
	}

	resp, err := h.courseSvc.Options(c.Request.Context(), &req)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, resp)
}

// Search 课程搜索（自动补全）
// POST /api/v1/courses/search
func (h *CourseHandler) Search(c *gin.Context) {
	var req dto.SearchCoursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters: "+err.Error())
		return
	}

	results := h.courseSvc.Search(c.Request.Context(), req.Query)
	if results == nil {
		results = []dto.SearchCourseResponse{}
	}
	response.OK(c, gin.H{"results": results})
}

func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMajorNotFound):
		response.NotFound(c, 20001, "major not found")
	case errors.Is(err, service.ErrRequirementNotFound):
		response.NotFound(c, 20003, "requirement not found for this major")
	default:
		response.InternalError(c)
	}
}
