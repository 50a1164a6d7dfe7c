package service

import (
	"context"
	"errors"

	"fouryearplan/backend/internal/catalog"
	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/model"
	"fouryearplan/backend/internal/registry"
)

var ErrRequirementNotFound = errors.New("requirement not found for this major")

// CourseService 课程目录业务接口
type CourseService interface {
	// Options 列出某条要求的全部候选课程，保持培养方案声明顺序
	Options(ctx context.Context, req *dto.CourseOptionsRequest) (*dto.CourseOptionsResponse, error)
	// Search 按课程代码或名称搜索，用于前端自动补全
	Search(ctx context.Context, query string) []dto.SearchCourseResponse
}

type courseService struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(cat *catalog.Catalog, reg *registry.Registry) CourseService {
	return &courseService{catalog: cat, registry: reg}
}

func (s *courseService) Options(ctx context.Context, req *dto.CourseOptionsRequest) (*dto.CourseOptionsResponse, error) {
	profile, ok := s.registry.Profile(req.Major)
	if !ok {
		return nil, ErrMajorNotFound
	}

	slot := findSlot(profile, model.RequirementCategory(req.RequirementType), req.RequirementName)
	if slot == nil {
		return nil, ErrRequirementNotFound
	}

	// 目录中不存在的候选代码静默跳过，首个可解析项即生成器的默认选择
	options := make([]dto.CourseOptionResponse, 0, len(slot.Courses))
	for _, code := range slot.Courses {
		course, ok := s.catalog.ByCode(code)
		if !ok {
			continue
		}
		options = append(options, dto.CourseOptionResponse{
			Subject:      course.Subject,
			Number:       course.Number,
			Title:        course.Title,
			Units:        course.Units,
			TermsOffered: termStrings(course.Terms),
		})
	}

	return &dto.CourseOptionsResponse{
		RequirementType: req.RequirementType,
		RequirementName: slot.Name,
		Options:         options,
	}, nil
}

func (s *courseService) Search(ctx context.Context, query string) []dto.SearchCourseResponse {
	matches := s.catalog.Search(query)
	if len(matches) == 0 {
		return nil
	}

	results := make([]dto.SearchCourseResponse, 0, len(matches))
	for _, course := range matches {
		results = append(results, dto.SearchCourseResponse{
			Code:  course.Code(),
			Title: course.Title,
			Units: course.Units,
			Terms: termStrings(course.Terms),
		})
	}
	return results
}

// findSlot 在培养方案中按类别 + 名称定位要求
func findSlot(profile *model.MajorProfile, cat model.RequirementCategory, name string) *model.RequirementSlot {
	for i := range profile.Slots {
		if profile.Slots[i].Category == cat && profile.Slots[i].Name == name {
			return &profile.Slots[i]
		}
	}
	return nil
}

func termStrings(terms []model.Term) []string {
	if len(terms) == 0 {
		return nil
	}
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = string(t)
	}
	return out
}
