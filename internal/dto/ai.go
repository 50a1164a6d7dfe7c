package dto

// ── AI 建议模块 DTO ──

// SemesterRef 指向计划中的某个学期
type SemesterRef struct {
	Year int    `json:"year" binding:"required"`
	Term string `json:"term" binding:"required,oneof=Fall Spring Summer"`
}

// AISuggestionsRequest 单学期选课建议请求
type AISuggestionsRequest struct {
	Major          string      `json:"major"    binding:"required"`
	Semester       SemesterRef `json:"semester" binding:"required"`
	CurrentCourses []string    `json:"current_courses"`
}

// CourseSuggestion AI 推荐的课程
type CourseSuggestion struct {
	Subject string `json:"subject"`
	Number  string `json:"number"`
	Title   string `json:"title"`
	Units   int    `json:"units"`
	Reason  string `json:"reason"`
}

// AISuggestionsResponse 单学期选课建议
// AI 不可用时 Suggestions 为空，Advice 给出降级提示
type AISuggestionsResponse struct {
	Suggestions []CourseSuggestion `json:"suggestions"`
	Advice      string             `json:"advice"`
}
