package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fouryearplan/backend/internal/catalog"
	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/model"
	"fouryearplan/backend/internal/registry"
)

// ── 计划生成模块业务错误 ──

var (
	ErrMajorNotFound   = errors.New("major not found")
	ErrInvalidTimeline = errors.New("graduation year must be after the current year")
)

// maxPlanSpanYears 入学到毕业的最大年限，超出视为非法时间轴
const maxPlanSpanYears = 10

// PlanService 四年计划业务接口
type PlanService interface {
	// Generate 生成四年计划：确定性排课 + 可选的 AI 增强
	Generate(ctx context.Context, req *dto.GeneratePlanRequest) (*model.Plan, error)
}

type planService struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
	ai       AIService // 可为 nil：未配置时只生成确定性计划
	logger   *zap.Logger
}

// NewPlanService 创建 PlanService 实例
func NewPlanService(cat *catalog.Catalog, reg *registry.Registry, ai AIService, logger *zap.Logger) PlanService {
	return &planService{catalog: cat, registry: reg, ai: ai, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Generate — 两段式计划生成
//
// 第一段为确定性贪心排课，输入相同则输出逐字节相同；
// 第二段为 AI 增强，失败只降级、永不向调用方抛错。
// ════════════════════════════════════════════════════════════

func (s *planService) Generate(ctx context.Context, req *dto.GeneratePlanRequest) (*model.Plan, error) {
	req.Normalize()

	// ── 阶段1: 解析培养方案与时间轴 ──

	profile, ok := s.registry.Profile(req.Major)
	if !ok {
		return nil, ErrMajorNotFound
	}

	// 骨架始于 current_year 的秋季学期，毕业年份必须严格晚于当前年份；
	// 跨度同时设上限，防止恶意的 current_year 撑爆骨架
	span := req.GraduationYear - req.CurrentYear
	if span <= 0 || span > maxPlanSpanYears {
		return nil, ErrInvalidTimeline
	}

	gradTerm := model.Term(req.GraduationSemester)
	semesters := buildSkeleton(req.CurrentYear, req.GraduationYear, gradTerm)

	// ── 阶段2: 划分要求 — 已修课程满足的要求不再排入学期 ──

	completed := make(map[string]bool, len(req.CompletedCourses))
	for _, code := range req.CompletedCourses {
		completed[strings.ToUpper(strings.TrimSpace(code))] = true
	}

	var pool []model.RequirementSlot
	var snapshot model.RequirementsSnapshot
	for _, slot := range profile.Slots {
		satisfied := slotSatisfied(&slot, completed)
		appendStatus(&snapshot, slot.Category, model.RequirementStatus{
			Name:      slot.Name,
			Courses:   slot.Courses,
			Units:     slot.Units,
			Satisfied: satisfied,
		})
		if !satisfied {
			pool = append(pool, slot)
		}
	}

	// ── 阶段3: 贪心放置 ──
	// 每条要求解析出具体课程后，在其类别对应的窗口内优先选开课学期匹配、
	// 当前学分最低的学期；学分并列取下标最小者

	var warnings []string
	n := len(semesters)
	for _, slot := range pool {
		course := s.resolveCourse(&slot)
		if course == nil {
			// 目录缺口：该要求留空，不使整个请求失败
			warnings = append(warnings, fmt.Sprintf(
				"no catalog entry found for requirement %q (%s)", slot.Name, slot.Category))
			continue
		}

		lo, hi := eligibleWindow(slot.Category, n)
		target := chooseSemester(semesters, lo, hi, course)

		semesters[target].Courses = append(semesters[target].Courses, model.CourseAssignment{
			Subject:         course.Subject,
			Number:          course.Number,
			Title:           course.Title,
			Units:           course.Units,
			RequirementType: slot.Category,
			RequirementName: slot.Name,
		})
		semesters[target].Units += course.Units
	}

	// ── 阶段4: 汇总输出 ──

	totalUnits := 0
	for i := range semesters {
		totalUnits += semesters[i].Units
	}

	plan := &model.Plan{
		Major:              profile.Name,
		College:            profile.College,
		GraduationYear:     req.GraduationYear,
		GraduationSemester: gradTerm,
		TotalUnits:         totalUnits,
		Semesters:          semesters,
		Requirements:       snapshot,
		Warnings:           warnings,
	}

	// ── 阶段5: AI 增强（尽力而为，失败不影响基础计划） ──

	if s.ai != nil {
		rec, err := s.ai.EnrichPlan(ctx, plan, req.Preferences)
		switch {
		case err == nil:
			plan.AIRecommendations = rec
		case errors.Is(err, ErrAIUnavailable):
			s.logger.Debug("AI 未配置，跳过计划增强")
		default:
			s.logger.Warn("AI 增强失败，返回基础计划",
				zap.String("major", req.Major),
				zap.Error(err),
			)
		}
	}

	return plan, nil
}

// ── 内部辅助方法 ──

// buildSkeleton 构建 Fall/Spring 交替的学期骨架
// 始于 currentYear 的 Fall，止于 gradYear 的 gradTerm：
// Spring 毕业共 2*(gradYear-currentYear) 个学期，Fall 毕业再多一个
func buildSkeleton(currentYear, gradYear int, gradTerm model.Term) []model.PlanSemester {
	count := 2 * (gradYear - currentYear)
	if gradTerm == model.TermFall {
		count++
	}

	semesters := make([]model.PlanSemester, count)
	for i := range semesters {
		term := model.TermFall
		if i%2 == 1 {
			term = model.TermSpring
		}
		semesters[i] = model.PlanSemester{
			Index:   i,
			Year:    currentYear + (i+1)/2,
			Term:    term,
			Courses: []model.CourseAssignment{},
			Units:   0,
		}
	}
	return semesters
}

// slotSatisfied 要求的任一候选课程已修即视为满足
func slotSatisfied(slot *model.RequirementSlot, completed map[string]bool) bool {
	for _, code := range slot.Courses {
		if completed[strings.ToUpper(code)] {
			return true
		}
	}
	return false
}

// resolveCourse 按声明顺序取第一门存在于目录中的候选课程
func (s *planService) resolveCourse(slot *model.RequirementSlot) *model.Course {
	for _, code := range slot.Courses {
		if course, ok := s.catalog.ByCode(code); ok {
			return course
		}
	}
	return nil
}

// eligibleWindow 类别对应的可排课窗口（半开区间下标）
// 低年级要求排前半段，高年级要求排后半段，通识/选修全程可排；
// 这是启发式的先后次序，不是严格的先修关系求解
func eligibleWindow(cat model.RequirementCategory, n int) (int, int) {
	switch cat {
	case model.CategoryLowerDivision:
		return 0, (n + 1) / 2
	case model.CategoryUpperDivision:
		return n / 2, n
	default:
		return 0, n
	}
}

// chooseSemester 在 [lo, hi) 窗口内选择放置学期
// 先在开课学期匹配的学期中取当前学分最低者；窗口内无匹配时
// 在整个窗口内取最低者（容忍学期错配，不在计划中留空洞）。
// 学分并列时取下标最小的学期，保证结果确定。
func chooseSemester(semesters []model.PlanSemester, lo, hi int, course *model.Course) int {
	best := -1
	for i := lo; i < hi; i++ {
		if !course.OfferedIn(semesters[i].Term) {
			continue
		}
		if best == -1 || semesters[i].Units < semesters[best].Units {
			best = i
		}
	}
	if best != -1 {
		return best
	}

	for i := lo; i < hi; i++ {
		if best == -1 || semesters[i].Units < semesters[best].Units {
			best = i
		}
	}
	return best
}

// appendStatus 将要求状态写入快照的对应类别
func appendStatus(snap *model.RequirementsSnapshot, cat model.RequirementCategory, st model.RequirementStatus) {
	switch cat {
	case model.CategoryLowerDivision:
		snap.LowerDivision = append(snap.LowerDivision, st)
	case model.CategoryUpperDivision:
		snap.UpperDivision = append(snap.UpperDivision, st)
	case model.CategoryBreadth:
		snap.Breadth = append(snap.Breadth, st)
	case model.CategoryElective:
		snap.Elective = append(snap.Elective, st)
	}
}
