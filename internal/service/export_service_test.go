package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"fouryearplan/backend/internal/dto"
)

func setupTestExportService(t *testing.T) (ExportService, string) {
	t.Helper()
	svc, _ := setupTestSavedPlanService()
	saved, err := svc.Save(context.Background(), testUserID, &dto.SavePlanRequest{
		Name: "export me",
		Plan: generateTestPlan(t),
	})
	if err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}
	return NewExportService(svc), saved.ID
}

func TestExportService_ExportPlan(t *testing.T) {
	svc, planID := setupTestExportService(t)

	buf, filename, err := svc.ExportPlan(context.Background(), testUserID, planID)
	if err != nil {
		t.Fatalf("ExportPlan 应成功: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("导出内容不应为空")
	}
	if !strings.HasSuffix(filename, ".xlsx") || !strings.Contains(filename, "Computer_Science") {
		t.Errorf("文件名应含专业与扩展名，实际=%s", filename)
	}

	// 回读工作簿校验结构
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 xlsx: %v", err)
	}
	defer f.Close()

	title, err := f.GetCellValue("Four-Year Plan", "A1")
	if err != nil {
		t.Fatalf("读取标题失败: %v", err)
	}
	if !strings.Contains(title, "Computer Science") {
		t.Errorf("标题应含专业名，实际=%s", title)
	}

	rows, err := f.GetRows("Four-Year Plan")
	if err != nil {
		t.Fatalf("读取行失败: %v", err)
	}
	// 标题 + 表头 + 至少一行课程
	if len(rows) < 4 {
		t.Errorf("工作表至少应有4行，实际=%d", len(rows))
	}
}

func TestExportService_ExportPlan_NotOwned(t *testing.T) {
	svc, planID := setupTestExportService(t)

	_, _, err := svc.ExportPlan(context.Background(), "user-002", planID)
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("期望 ErrPlanNotFound，实际: %v", err)
	}
}
