package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"fouryearplan/backend/internal/model"
)

// ExportService 计划导出业务接口
type ExportService interface {
	// ExportPlan 将已保存的计划渲染为 xlsx，返回文件内容与建议文件名
	ExportPlan(ctx context.Context, callerID, planID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	plans SavedPlanService
}

// NewExportService 创建 ExportService 实例
func NewExportService(plans SavedPlanService) ExportService {
	return &exportService{plans: plans}
}

func (s *exportService) ExportPlan(ctx context.Context, callerID, planID string) (*bytes.Buffer, string, error) {
	saved, err := s.plans.Get(ctx, callerID, planID)
	if err != nil {
		return nil, "", err
	}

	plan := saved.Plan
	if plan == nil {
		// Get 总是会填充正文；兜底防御快照损坏
		return nil, "", fmt.Errorf("计划快照为空: %s", planID)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Four-Year Plan"
	f.SetSheetName("Sheet1", sheet)

	// ── 样式 ──

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("创建标题样式失败: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", fmt.Errorf("创建表头样式失败: %w", err)
	}
	subtotalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Italic: true},
	})
	if err != nil {
		return nil, "", fmt.Errorf("创建小计样式失败: %w", err)
	}

	// ── 标题与表头 ──

	f.MergeCell(sheet, "A1", "E1")
	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s — Four-Year Plan (%s %d)",
		plan.Major, plan.GraduationSemester, plan.GraduationYear))
	f.SetCellStyle(sheet, "A1", "E1", titleStyle)

	headers := []string{"Semester", "Course", "Title", "Units", "Requirement"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A3", "E3", headerStyle)

	// ── 按学期填充课程行 ──

	row := 4
	for _, sem := range plan.Semesters {
		label := fmt.Sprintf("%s %d", sem.Term, sem.Year)
		for _, c := range sem.Courses {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), c.Subject+" "+c.Number)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), c.Title)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), c.Units)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(c.RequirementType))
			row++
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label+" subtotal")
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), sem.Units)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), subtotalStyle)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), plan.TotalUnits)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row), headerStyle)

	f.SetColWidth(sheet, "A", "A", 18)
	f.SetColWidth(sheet, "B", "B", 16)
	f.SetColWidth(sheet, "C", "C", 44)
	f.SetColWidth(sheet, "D", "D", 8)
	f.SetColWidth(sheet, "E", "E", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("生成 xlsx 失败: %w", err)
	}
	return buf, exportFilename(plan), nil
}

// exportFilename 由专业与毕业学期构造下载文件名
func exportFilename(plan *model.Plan) string {
	major := strings.ReplaceAll(plan.Major, " ", "_")
	return fmt.Sprintf("four_year_plan_%s_%s_%d.xlsx", major, plan.GraduationSemester, plan.GraduationYear)
}
