package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/model"
	"fouryearplan/backend/internal/repository"
)

// 归属校验失败与记录不存在统一返回 ErrPlanNotFound，不向调用方泄露他人计划的存在性
var ErrPlanNotFound = errors.New("saved plan not found")

// SavedPlanService 已保存计划业务接口
type SavedPlanService interface {
	Save(ctx context.Context, callerID string, req *dto.SavePlanRequest) (*dto.SavedPlanResponse, error)
	List(ctx context.Context, callerID string) ([]dto.SavedPlanResponse, error)
	Get(ctx context.Context, callerID, planID string) (*dto.SavedPlanResponse, error)
	Delete(ctx context.Context, callerID, planID string) error
}

type savedPlanService struct {
	repo repository.SavedPlanRepository
}

// NewSavedPlanService 创建 SavedPlanService 实例
func NewSavedPlanService(repo repository.SavedPlanRepository) SavedPlanService {
	return &savedPlanService{repo: repo}
}

func (s *savedPlanService) Save(ctx context.Context, callerID string, req *dto.SavePlanRequest) (*dto.SavedPlanResponse, error) {
	snapshot, err := json.Marshal(req.Plan)
	if err != nil {
		return nil, fmt.Errorf("序列化计划快照失败: %w", err)
	}

	entity := &model.SavedPlan{
		UserID:             callerID,
		Name:               req.Name,
		Major:              req.Plan.Major,
		GraduationYear:     req.Plan.GraduationYear,
		GraduationSemester: string(req.Plan.GraduationSemester),
		Plan:               snapshot,
	}
	entity.CreatedBy = &callerID
	entity.UpdatedBy = &callerID

	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("保存计划失败: %w", err)
	}
	return toSavedPlanResponse(entity, req.Plan), nil
}

func (s *savedPlanService) List(ctx context.Context, callerID string) ([]dto.SavedPlanResponse, error) {
	plans, err := s.repo.ListByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("查询计划列表失败: %w", err)
	}

	// 列表响应不携带计划正文
	resp := make([]dto.SavedPlanResponse, 0, len(plans))
	for i := range plans {
		resp = append(resp, *toSavedPlanResponse(&plans[i], nil))
	}
	return resp, nil
}

func (s *savedPlanService) Get(ctx context.Context, callerID, planID string) (*dto.SavedPlanResponse, error) {
	entity, err := s.fetchOwned(ctx, callerID, planID)
	if err != nil {
		return nil, err
	}

	var plan model.Plan
	if err := json.Unmarshal(entity.Plan, &plan); err != nil {
		return nil, fmt.Errorf("解析计划快照失败: %w", err)
	}
	return toSavedPlanResponse(entity, &plan), nil
}

func (s *savedPlanService) Delete(ctx context.Context, callerID, planID string) error {
	if _, err := s.fetchOwned(ctx, callerID, planID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, planID, callerID); err != nil {
		return fmt.Errorf("删除计划失败: %w", err)
	}
	return nil
}

// fetchOwned 取回记录并校验归属
func (s *savedPlanService) fetchOwned(ctx context.Context, callerID, planID string) (*model.SavedPlan, error) {
	entity, err := s.repo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("查询计划失败: %w", err)
	}
	if entity.UserID != callerID {
		return nil, ErrPlanNotFound
	}
	return entity, nil
}

func toSavedPlanResponse(entity *model.SavedPlan, plan *model.Plan) *dto.SavedPlanResponse {
	return &dto.SavedPlanResponse{
		ID:                 entity.PlanID,
		Name:               entity.Name,
		Major:              entity.Major,
		GraduationYear:     entity.GraduationYear,
		GraduationSemester: entity.GraduationSemester,
		Plan:               plan,
		CreatedAt:          entity.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          entity.UpdatedAt.Format(time.RFC3339),
	}
}
