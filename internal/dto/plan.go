package dto

// ── 计划生成模块 DTO ──

// GeneratePlanRequest 生成四年计划请求
// graduation_semester 缺省为 Spring；current_year 缺省为毕业年份减 4，
// 与既有前端的调用约定保持一致
type GeneratePlanRequest struct {
	Major              string                 `json:"major"               binding:"required"`
	GraduationYear     int                    `json:"graduation_year"     binding:"required"`
	GraduationSemester string                 `json:"graduation_semester" binding:"omitempty,oneof=Fall Spring"`
	CurrentYear        int                    `json:"current_year"`
	CompletedCourses   []string               `json:"completed_courses"`
	Preferences        map[string]interface{} `json:"preferences"`
}

// Normalize 填充缺省字段
func (r *GeneratePlanRequest) Normalize() {
	if r.GraduationSemester == "" {
		r.GraduationSemester = "Spring"
	}
	if r.CurrentYear == 0 {
		r.CurrentYear = r.GraduationYear - 4
	}
}
