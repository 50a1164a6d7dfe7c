package model

// RequirementCategory 培养方案要求类别
// 控制该要求可排入时间轴的哪一段（低年级段/高年级段/全程）
type RequirementCategory string

const (
	CategoryLowerDivision RequirementCategory = "lower_division"
	CategoryUpperDivision RequirementCategory = "upper_division"
	CategoryBreadth       RequirementCategory = "breadth"
	CategoryElective      RequirementCategory = "elective"
)

// RequirementSlot 单条毕业要求
// Courses 为可满足该要求的课程代码，按优先级排列，首项为默认选择
type RequirementSlot struct {
	Category    RequirementCategory `json:"category"`
	Name        string              `json:"name"`
	Courses     []string            `json:"courses"`
	Units       int                 `json:"units"`
	Description string              `json:"description,omitempty"`
}

// MajorProfile 专业培养方案
// Slots 按 lower_division → upper_division → breadth → elective 顺序排列，
// 该顺序即排课时的处理顺序，保证生成结果确定
type MajorProfile struct {
	Name       string            `json:"name"`
	College    string            `json:"college"`
	TotalUnits int               `json:"total_units"`
	Slots      []RequirementSlot `json:"slots"`
}

// SlotsByCategory 返回指定类别下的要求（保持声明顺序）
func (p *MajorProfile) SlotsByCategory(cat RequirementCategory) []RequirementSlot {
	var out []RequirementSlot
	for _, s := range p.Slots {
		if s.Category == cat {
			out = append(out, s)
		}
	}
	return out
}
