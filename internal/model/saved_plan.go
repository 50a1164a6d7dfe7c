package model

import "gorm.io/datatypes"

// SavedPlan 用户保存的四年计划 — 对应 saved_plans
// Plan 字段保存生成结果的完整 JSON 快照（jsonb），
// 目录/培养方案后续变动不影响已保存的计划
type SavedPlan struct {
	PlanID             string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"plan_id"`
	UserID             string         `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Name               string         `gorm:"type:varchar(120);not null"                     json:"name"`
	Major              string         `gorm:"type:varchar(120);not null"                     json:"major"`
	GraduationYear     int            `gorm:"not null"                                       json:"graduation_year"`
	GraduationSemester string         `gorm:"type:varchar(10);not null"                      json:"graduation_semester"`
	Plan               datatypes.JSON `gorm:"type:jsonb;not null"                            json:"plan"`
	SoftDeleteModel
}

// TableName 指定表名
func (SavedPlan) TableName() string { return "saved_plans" }
