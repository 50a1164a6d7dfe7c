package dto

// ── 专业模块 DTO ──

// RequirementSlotResponse 培养方案中的单条要求
type RequirementSlotResponse struct {
	Name        string   `json:"name"`
	Courses     []string `json:"courses"`
	Units       int      `json:"units"`
	Description string   `json:"description,omitempty"`
}

// MajorRequirementsResponse 按类别归组的培养方案要求
type MajorRequirementsResponse struct {
	LowerDivision []RequirementSlotResponse `json:"lower_division"`
	UpperDivision []RequirementSlotResponse `json:"upper_division"`
	Breadth       []RequirementSlotResponse `json:"breadth"`
	Elective      []RequirementSlotResponse `json:"elective,omitempty"`
}

// MajorDetailResponse 专业详情
type MajorDetailResponse struct {
	Name         string                    `json:"name"`
	College      string                    `json:"college"`
	TotalUnits   int                       `json:"total_units"`
	Requirements MajorRequirementsResponse `json:"requirements"`
}
