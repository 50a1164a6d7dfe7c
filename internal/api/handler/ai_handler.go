package handler

import (
	"github.com/gin-gonic/gin"

	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/service"
	"fouryearplan/backend/pkg/response"
)

// AIHandler AI 建议模块 HTTP 处理器
type AIHandler struct {
	aiSvc service.AIService
}

// NewAIHandler 创建 AIHandler
func NewAIHandler(aiSvc service.AIService) *AIHandler {
	return &AIHandler{aiSvc: aiSvc}
}

// Suggestions 单学期选课建议
// POST /api/v1/plans/ai-suggestions
// 上游不可用时降级为空建议列表，不向客户端暴露错误
func (h *AIHandler) Suggestions(c *gin.Context) {
	var req dto.AISuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters: "+err.Error())
		return
	}

	resp, err := h.aiSvc.SuggestCourses(c.Request.Context(), &req)
	if err != nil {
		response.OK(c, &dto.AISuggestionsResponse{
			Suggestions: []dto.CourseSuggestion{},
			Advice:      "AI suggestions are temporarily unavailable. Please consult your academic advisor.",
		})
		return
	}

	response.OK(c, resp)
}
