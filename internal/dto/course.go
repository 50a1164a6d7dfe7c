package dto

// ── 课程目录模块 DTO ──

// CourseOptionsRequest 查询某条要求的候选课程
type CourseOptionsRequest struct {
	Major           string `json:"major"            binding:"required"`
	RequirementType string `json:"requirement_type" binding:"required,oneof=lower_division upper_division breadth elective"`
	RequirementName string `json:"requirement_name" binding:"required"`
}

// CourseOptionResponse 候选课程
type CourseOptionResponse struct {
	Subject      string   `json:"subject"`
	Number       string   `json:"number"`
	Title        string   `json:"title"`
	Units        int      `json:"units"`
	TermsOffered []string `json:"terms_offered,omitempty"`
}

// CourseOptionsResponse 候选课程列表（保持培养方案声明顺序，首项为默认选择）
type CourseOptionsResponse struct {
	RequirementType string                 `json:"requirement_type"`
	RequirementName string                 `json:"requirement_name"`
	Options         []CourseOptionResponse `json:"options"`
}

// SearchCoursesRequest 课程搜索请求（自动补全）
type SearchCoursesRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchCourseResponse 搜索结果条目
type SearchCourseResponse struct {
	Code  string   `json:"code"`
	Title string   `json:"title"`
	Units int      `json:"units"`
	Terms []string `json:"terms"`
}
