package model

// CourseAssignment 排入某学期的课程
// 保留来源要求的类别与名称，便于客户端回查"还有哪些课能满足这条要求"
type CourseAssignment struct {
	Subject         string              `json:"subject"`
	Number          string              `json:"number"`
	Title           string              `json:"title"`
	Units           int                 `json:"units"`
	RequirementType RequirementCategory `json:"requirement_type"`
	RequirementName string              `json:"requirement_name"`
}

// PlanSemester 计划中的一个学期
// Units 恒等于 Courses 的学分之和
type PlanSemester struct {
	Index   int                `json:"index"`
	Year    int                `json:"year"`
	Term    Term               `json:"term"`
	Courses []CourseAssignment `json:"courses"`
	Units   int                `json:"units"`
}

// RequirementStatus 单条要求的完成度快照（展示用）
type RequirementStatus struct {
	Name      string   `json:"name"`
	Courses   []string `json:"courses"`
	Units     int      `json:"units"`
	Satisfied bool     `json:"satisfied"` // 已由既修课程满足，不再排入学期
}

// RequirementsSnapshot 按类别归组的要求快照
type RequirementsSnapshot struct {
	LowerDivision []RequirementStatus `json:"lower_division"`
	UpperDivision []RequirementStatus `json:"upper_division"`
	Breadth       []RequirementStatus `json:"breadth"`
	Elective      []RequirementStatus `json:"elective,omitempty"`
}

// Plan 生成的四年计划
// 请求级值对象：除非用户显式保存，否则不落库
type Plan struct {
	Major              string               `json:"major"`
	College            string               `json:"college"`
	GraduationYear     int                  `json:"graduation_year"`
	GraduationSemester Term                 `json:"graduation_semester"`
	TotalUnits         int                  `json:"total_units"`
	Semesters          []PlanSemester       `json:"semesters"`
	Requirements       RequirementsSnapshot `json:"requirements"`
	Warnings           []string             `json:"warnings,omitempty"`
	AIRecommendations  string               `json:"ai_recommendations,omitempty"`
}
