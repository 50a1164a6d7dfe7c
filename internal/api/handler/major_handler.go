package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"fouryearplan/backend/internal/service"
	"fouryearplan/backend/pkg/response"
)

// MajorHandler 专业目录模块 HTTP 处理器
type MajorHandler struct {
	majorSvc service.MajorService
}

// NewMajorHandler 创建 MajorHandler
func NewMajorHandler(majorSvc service.MajorService) *MajorHandler {
	return &MajorHandler{majorSvc: majorSvc}
}

// List 全部支持的专业名称
// GET /api/v1/majors
func (h *MajorHandler) List(c *gin.Context) {
	names := h.majorSvc.List(c.Request.Context())
	response.OK(c, gin.H{"majors": names})
}

// Get 专业培养方案详情
// GET /api/v1/majors/:name
// 专业名含空格，客户端需 URL 编码
func (h *MajorHandler) Get(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		response.BadRequest(c, 10001, "major name is required")
		return
	}

	detail, err := h.majorSvc.Get(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrMajorNotFound) {
			response.NotFound(c, 20001, "major not found")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, detail)
}
