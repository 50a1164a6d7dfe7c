package dto

import "fouryearplan/backend/internal/model"

// ── 已保存计划模块 DTO ──

// SavePlanRequest 保存计划请求
type SavePlanRequest struct {
	Name string      `json:"name" binding:"required,min=1,max=120"`
	Plan *model.Plan `json:"plan" binding:"required"`
}

// SavedPlanResponse 已保存计划（列表项不含计划正文）
type SavedPlanResponse struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Major              string      `json:"major"`
	GraduationYear     int         `json:"graduation_year"`
	GraduationSemester string      `json:"graduation_semester"`
	Plan               *model.Plan `json:"plan,omitempty"`
	CreatedAt          string      `json:"created_at"`
	UpdatedAt          string      `json:"updated_at"`
}
