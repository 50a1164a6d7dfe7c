package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"fouryearplan/backend/internal/catalog"
	"fouryearplan/backend/internal/dto"
	"fouryearplan/backend/internal/model"
	"fouryearplan/backend/internal/registry"
)

// ── 测试辅助 ──

func testCourses() []model.Course {
	fallSpring := []model.Term{model.TermFall, model.TermSpring}
	return []model.Course{
		{Subject: "COMPSCI", Number: "61A", Title: "The Structure and Interpretation of Computer Programs", Units: 4, Terms: fallSpring},
		{Subject: "COMPSCI", Number: "61B", Title: "Data Structures", Units: 4, Terms: fallSpring},
		{Subject: "COMPSCI", Number: "170", Title: "Efficient Algorithms and Intractable Problems", Units: 4, Terms: fallSpring},
		{Subject: "COMPSCI", Number: "188", Title: "Introduction to Artificial Intelligence", Units: 4, Terms: []model.Term{model.TermFall}},
		{Subject: "DATA", Number: "100", Title: "Principles and Techniques of Data Science", Units: 4, Terms: fallSpring},
		{Subject: "MATH", Number: "1A", Title: "Calculus", Units: 4, Terms: fallSpring},
		{Subject: "MATH", Number: "1B", Title: "Calculus", Units: 4, Terms: fallSpring},
		{Subject: "ENGLISH", Number: "1A", Title: "Reading and Composition", Units: 4, Terms: fallSpring},
		{Subject: "HISTORY", Number: "1A", Title: "Introduction to History", Units: 4, Terms: []model.Term{model.TermFall}},
	}
}

func setupTestPlanService(ai AIService) PlanService {
	cat := catalog.New(testCourses())
	reg := registry.New()
	return NewPlanService(cat, reg, ai, zap.NewNop())
}

// stubAIService 固定返回文本或错误
type stubAIService struct {
	text string
	err  error
}

func (s *stubAIService) EnrichPlan(_ context.Context, _ *model.Plan, _ map[string]interface{}) (string, error) {
	return s.text, s.err
}

func (s *stubAIService) SuggestCourses(_ context.Context, _ *dto.AISuggestionsRequest) (*dto.AISuggestionsResponse, error) {
	return nil, s.err
}

func csRequest() *dto.GeneratePlanRequest {
	return &dto.GeneratePlanRequest{
		Major:              "Computer Science",
		GraduationYear:     2028,
		GraduationSemester: "Spring",
		CurrentYear:        2024,
	}
}

// ── 骨架构建测试 ──

func TestPlanService_Generate_SpringSkeleton(t *testing.T) {
	svc := setupTestPlanService(nil)

	plan, err := svc.Generate(context.Background(), csRequest())
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if len(plan.Semesters) != 8 {
		t.Fatalf("期望8个学期，实际=%d", len(plan.Semesters))
	}

	first := plan.Semesters[0]
	if first.Term != model.TermFall || first.Year != 2024 {
		t.Errorf("期望首学期 Fall 2024，实际=%s %d", first.Term, first.Year)
	}
	last := plan.Semesters[7]
	if last.Term != model.TermSpring || last.Year != 2028 {
		t.Errorf("期望末学期 Spring 2028，实际=%s %d", last.Term, last.Year)
	}
	for i, sem := range plan.Semesters {
		if sem.Index != i {
			t.Errorf("学期下标应连续，位置%d实际=%d", i, sem.Index)
		}
	}
}

func TestPlanService_Generate_FallGraduationAddsSemester(t *testing.T) {
	svc := setupTestPlanService(nil)

	req := csRequest()
	req.GraduationSemester = "Fall"

	plan, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if len(plan.Semesters) != 9 {
		t.Fatalf("Fall 毕业期望9个学期，实际=%d", len(plan.Semesters))
	}
	last := plan.Semesters[8]
	if last.Term != model.TermFall || last.Year != 2028 {
		t.Errorf("期望末学期 Fall 2028，实际=%s %d", last.Term, last.Year)
	}
}

func TestPlanService_Generate_DefaultTimeline(t *testing.T) {
	svc := setupTestPlanService(nil)

	// 不给 current_year / graduation_semester，应回退为 Spring 毕业、毕业前4年入学
	req := &dto.GeneratePlanRequest{Major: "Computer Science", GraduationYear: 2030}

	plan, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if len(plan.Semesters) != 8 {
		t.Errorf("默认时间轴期望8个学期，实际=%d", len(plan.Semesters))
	}
	if plan.GraduationSemester != model.TermSpring {
		t.Errorf("期望默认 Spring 毕业，实际=%s", plan.GraduationSemester)
	}
}

// ── 参数校验测试 ──

func TestPlanService_Generate_MajorNotFound(t *testing.T) {
	svc := setupTestPlanService(nil)

	req := csRequest()
	req.Major = "Underwater Basket Weaving"

	_, err := svc.Generate(context.Background(), req)
	if !errors.Is(err, ErrMajorNotFound) {
		t.Errorf("期望 ErrMajorNotFound，实际: %v", err)
	}
}

func TestPlanService_Generate_InvalidTimeline(t *testing.T) {
	svc := setupTestPlanService(nil)

	req := csRequest()
	req.GraduationYear = 2024

	_, err := svc.Generate(context.Background(), req)
	if !errors.Is(err, ErrInvalidTimeline) {
		t.Errorf("期望 ErrInvalidTimeline，实际: %v", err)
	}
}

func TestPlanService_Generate_ExcessiveSpanRejected(t *testing.T) {
	svc := setupTestPlanService(nil)

	// 跨度设上限：恶意的 current_year 不能任意撑大骨架
	req := csRequest()
	req.CurrentYear = -100000

	_, err := svc.Generate(context.Background(), req)
	if !errors.Is(err, ErrInvalidTimeline) {
		t.Errorf("超长跨度期望 ErrInvalidTimeline，实际: %v", err)
	}

	req = csRequest()
	req.CurrentYear = req.GraduationYear - 11
	if _, err := svc.Generate(context.Background(), req); !errors.Is(err, ErrInvalidTimeline) {
		t.Errorf("11年跨度期望 ErrInvalidTimeline，实际: %v", err)
	}

	// 上限以内仍然放行
	req = csRequest()
	req.CurrentYear = req.GraduationYear - 10
	plan, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("10年跨度应成功: %v", err)
	}
	if len(plan.Semesters) != 20 {
		t.Errorf("期望20个学期，实际=%d", len(plan.Semesters))
	}
}

// ── 排课语义测试 ──

func TestPlanService_Generate_CompletedCourseSatisfiesRequirement(t *testing.T) {
	svc := setupTestPlanService(nil)

	req := csRequest()
	req.CompletedCourses = []string{"math 1a"} // 大小写不敏感

	plan, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}

	var mathStatus *model.RequirementStatus
	for i := range plan.Requirements.LowerDivision {
		if plan.Requirements.LowerDivision[i].Name == "Mathematics" {
			mathStatus = &plan.Requirements.LowerDivision[i]
		}
	}
	if mathStatus == nil {
		t.Fatal("快照应包含 Mathematics 要求")
	}
	if !mathStatus.Satisfied {
		t.Error("已修 MATH 1A 应标记 Mathematics 为 satisfied")
	}
	for _, sem := range plan.Semesters {
		for _, c := range sem.Courses {
			if c.Subject == "MATH" {
				t.Errorf("已满足的要求不应再排课，%s %d 出现 MATH %s", sem.Term, sem.Year, c.Number)
			}
		}
	}
}

func TestPlanService_Generate_UnitsConsistency(t *testing.T) {
	svc := setupTestPlanService(nil)

	plan, err := svc.Generate(context.Background(), csRequest())
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}

	total := 0
	for _, sem := range plan.Semesters {
		sum := 0
		for _, c := range sem.Courses {
			sum += c.Units
		}
		if sem.Units != sum {
			t.Errorf("%s %d 学分不一致: 字段=%d 求和=%d", sem.Term, sem.Year, sem.Units, sum)
		}
		total += sem.Units
	}
	if plan.TotalUnits != total {
		t.Errorf("TotalUnits 不一致: 字段=%d 求和=%d", plan.TotalUnits, total)
	}
}

func TestPlanService_Generate_CategoryWindows(t *testing.T) {
	svc := setupTestPlanService(nil)

	plan, err := svc.Generate(context.Background(), csRequest())
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}

	n := len(plan.Semesters)
	for _, sem := range plan.Semesters {
		for _, c := range sem.Courses {
			switch c.RequirementType {
			case model.CategoryLowerDivision:
				if sem.Index >= (n+1)/2 {
					t.Errorf("低年级课程 %s %s 排入了后半段学期 %d", c.Subject, c.Number, sem.Index)
				}
			case model.CategoryUpperDivision:
				if sem.Index < n/2 {
					t.Errorf("高年级课程 %s %s 排入了前半段学期 %d", c.Subject, c.Number, sem.Index)
				}
			}
		}
	}
}

func TestPlanService_Generate_TermOfferingRespected(t *testing.T) {
	svc := setupTestPlanService(nil)

	// History 专业的通识要求首选 HISTORY 1A（仅秋季开课）
	req := &dto.GeneratePlanRequest{
		Major:              "History",
		GraduationYear:     2028,
		GraduationSemester: "Spring",
		CurrentYear:        2024,
	}

	plan, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}

	found := false
	for _, sem := range plan.Semesters {
		for _, c := range sem.Courses {
			if c.Subject == "HISTORY" && c.Number == "1A" {
				found = true
				if sem.Term != model.TermFall {
					t.Errorf("HISTORY 1A 仅秋季开课，却排入 %s %d", sem.Term, sem.Year)
				}
			}
		}
	}
	if !found {
		t.Error("HISTORY 1A 应被排入计划")
	}
}

func TestPlanService_Generate_CatalogGapProducesWarning(t *testing.T) {
	svc := setupTestPlanService(nil)

	// 通用模板专业的 "HISTORY 100/101" 不在测试目录中，应告警而非报错
	req := &dto.GeneratePlanRequest{
		Major:              "History",
		GraduationYear:     2028,
		GraduationSemester: "Spring",
		CurrentYear:        2024,
	}

	plan, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("目录缺口不应使生成失败: %v", err)
	}
	if len(plan.Warnings) == 0 {
		t.Fatal("无法解析的要求应产生警告")
	}
	for _, sem := range plan.Semesters {
		for _, c := range sem.Courses {
			if c.RequirementName == "Major Requirements" {
				t.Errorf("无法解析的要求不应产生排课: %s %s", c.Subject, c.Number)
			}
		}
	}
}

func TestPlanService_Generate_Deterministic(t *testing.T) {
	svc := setupTestPlanService(nil)

	first, err := svc.Generate(context.Background(), csRequest())
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	second, err := svc.Generate(context.Background(), csRequest())
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("相同输入应产生逐字节相同的计划")
	}
}

// ── AI 增强测试 ──

func TestPlanService_Generate_AIEnrichment(t *testing.T) {
	svc := setupTestPlanService(&stubAIService{text: "Consider spreading upper-division work across both years."})

	plan, err := svc.Generate(context.Background(), csRequest())
	if err != nil {
		t.Fatalf("Generate 应成功: %v", err)
	}
	if plan.AIRecommendations == "" {
		t.Error("AI 可用时应附带建议文本")
	}
}

func TestPlanService_Generate_AIFailureDoesNotFail(t *testing.T) {
	svc := setupTestPlanService(&stubAIService{err: errors.New("upstream exploded")})

	plan, err := svc.Generate(context.Background(), csRequest())
	if err != nil {
		t.Fatalf("AI 失败不应影响基础计划: %v", err)
	}
	if plan.AIRecommendations != "" {
		t.Error("AI 失败时不应产生建议文本")
	}
	if len(plan.Semesters) != 8 {
		t.Errorf("基础计划应完整，期望8个学期，实际=%d", len(plan.Semesters))
	}
}
