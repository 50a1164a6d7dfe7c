package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/service"
	"fouryearplan/backend/pkg/response"
)

// PlanHandler 计划生成模块 HTTP 处理器
type PlanHandler struct {
	planSvc service.PlanService
}

// NewPlanHandler 创建 PlanHandler
func NewPlanHandler(planSvc service.PlanService) *PlanHandler {
	return &PlanHandler{planSvc: planSvc}
}

// Generate 生成四年计划
// POST /api/v1/plans/generate
func (h *PlanHandler) Generate(c *gin.Context) {
	var req dto.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters: "+err.Error())
		return
	}

	plan, err := h.planSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		h.handlePlanError(c, err)
		return
	}

	response.OK(c, plan)
}

func (h *PlanHandler) handlePlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMajorNotFound):
		response.NotFound(c, 20001, "major not found")
	case errors.Is(err, service.ErrInvalidTimeline):
		response.BadRequest(c, 20002, "graduation year must be after the current year")
	default:
		response.InternalError(c)
	}
}
