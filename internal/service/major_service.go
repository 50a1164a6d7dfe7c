package service

import (
	"context"

	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/model"
	"fouryearplan/backend/internal/registry"
)

// MajorService 专业目录业务接口
type MajorService interface {
	// List 返回全部支持的专业名称，保持学院分组的声明顺序
	List(ctx context.Context) []string
	// Get 返回专业的培养方案详情
	Get(ctx context.Context, name string) (*dto.MajorDetailResponse, error)
}

type majorService struct {
	registry *registry.Registry
}

// NewMajorService 创建 MajorService 实例
func NewMajorService(reg *registry.Registry) MajorService {
	return &majorService{registry: reg}
}

func (s *majorService) List(ctx context.Context) []string {
	return s.registry.MajorNames()
}

func (s *majorService) Get(ctx context.Context, name string) (*dto.MajorDetailResponse, error) {
	profile, ok := s.registry.Profile(name)
	if !ok {
		return nil, ErrMajorNotFound
	}

	resp := &dto.MajorDetailResponse{
		Name:       profile.Name,
		College:    profile.College,
		TotalUnits: profile.TotalUnits,
	}
	for _, slot := range profile.Slots {
		item := dto.RequirementSlotResponse{
			Name:        slot.Name,
			Courses:     slot.Courses,
			Units:       slot.Units,
			Description: slot.Description,
		}
		switch slot.Category {
		case model.CategoryLowerDivision:
			resp.Requirements.LowerDivision = append(resp.Requirements.LowerDivision, item)
		case model.CategoryUpperDivision:
			resp.Requirements.UpperDivision = append(resp.Requirements.UpperDivision, item)
		case model.CategoryBreadth:
			resp.Requirements.Breadth = append(resp.Requirements.Breadth, item)
		case model.CategoryElective:
			resp.Requirements.Elective = append(resp.Requirements.Elective, item)
		}
	}
	return resp, nil
}
