package service

import (
	"go.uber.org/zap"

	"fouryearplan/backend/config"
	"fouryearplan/backend/internal/catalog"
	"fouryearplan/backend/internal/registry"
	"fouryearplan/backend/internal/repository"
)

// Service 聚合所有业务服务，供路由层按模块取用
type Service struct {
	Plan      PlanService
	Course    CourseService
	Major     MajorService
	AI        AIService
	SavedPlan SavedPlanService
	Export    ExportService
}

// NewService 创建服务层实例并完成内部装配
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	cat *catalog.Catalog,
	reg *registry.Registry,
	logger *zap.Logger,
) *Service {
	ai := NewAIService(&cfg.AI, logger)
	savedPlan := NewSavedPlanService(repo.SavedPlan)

	return &Service{
		Plan:      NewPlanService(cat, reg, ai, logger),
		Course:    NewCourseService(cat, reg),
		Major:     NewMajorService(reg),
		AI:        ai,
		SavedPlan: savedPlan,
		Export:    NewExportService(savedPlan),
	}
}
