package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/service"
	"fouryearplan/backend/pkg/response"
)

// SavedPlanHandler 已保存计划模块 HTTP 处理器
type SavedPlanHandler struct {
	savedPlanSvc service.SavedPlanService
}

// NewSavedPlanHandler 创建 SavedPlanHandler
func NewSavedPlanHandler(savedPlanSvc service.SavedPlanService) *SavedPlanHandler {
	return &SavedPlanHandler{savedPlanSvc: savedPlanSvc}
}

// Save 保存计划
// POST /api/v1/plans
func (h *SavedPlanHandler) Save(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters: "+err.Error())
		return
	}

	saved, err := h.savedPlanSvc.Save(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleSavedPlanError(c, err)
		return
	}

	response.Created(c, saved)
}

// List 当前用户的计划列表
// GET /api/v1/plans
func (h *SavedPlanHandler) List(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.savedPlanSvc.List(c.Request.Context(), userID)
	if err != nil {
		h.handleSavedPlanError(c, err)
		return
	}

	response.OK(c, gin.H{"plans": list})
}

// Get 计划详情（含正文）
// GET /api/v1/plans/:id
func (h *SavedPlanHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	saved, err := h.savedPlanSvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleSavedPlanError(c, err)
		return
	}

	response.OK(c, saved)
}

// Delete 删除计划
// DELETE /api/v1/plans/:id
func (h *SavedPlanHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.savedPlanSvc.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.handleSavedPlanError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *SavedPlanHandler) handleSavedPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlanNotFound):
		response.NotFound(c, 21001, "saved plan not found")
	default:
		response.InternalError(c)
	}
}
