package catalog

import (
	"bytes"
	"encoding/csv"
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"fouryearplan/backend/internal/model"
)

// 校方课程报表的列名（与导出工具保持一致）
const (
	colSubject = "Subject"
	colNumber  = "Course Number"
	colTitle   = "Course Description"
	colUnits   = "Credits - Units - Minimum Units"
	colTerms   = "Terms Offered"
)

//go:embed sample_courses.csv
var sampleCoursesCSV []byte

// Load 从校方课程报表 CSV 构建目录
// 报表文件不存在或不可读时回退到内置示例数据，保证服务可启动
func Load(csvPath string, logger *zap.Logger) *Catalog {
	f, err := os.Open(csvPath)
	if err != nil {
		logger.Warn("课程报表不可用，使用内置示例数据",
			zap.String("path", csvPath),
			zap.Error(err),
		)
		return loadEmbedded(logger)
	}
	defer f.Close()

	courses, err := parseCSV(f)
	if err != nil {
		logger.Warn("课程报表解析失败，使用内置示例数据",
			zap.String("path", csvPath),
			zap.Error(err),
		)
		return loadEmbedded(logger)
	}

	logger.Info("课程目录载入完成",
		zap.String("path", csvPath),
		zap.Int("courses", len(courses)),
	)
	return New(courses)
}

func loadEmbedded(logger *zap.Logger) *Catalog {
	courses, err := parseCSV(bytes.NewReader(sampleCoursesCSV))
	if err != nil {
		// 内置数据在构建期固定，解析失败属于打包错误
		panic(fmt.Sprintf("内置示例课程数据损坏: %v", err))
	}
	logger.Info("内置示例课程载入完成", zap.Int("courses", len(courses)))
	return New(courses)
}

// parseCSV 按表头定位各列并逐行解析
// 单行数据异常（缺列、学分非数字）时跳过该行而非整体失败
func parseCSV(r io.Reader) ([]model.Course, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colSubject, colNumber, colTitle, colUnits, colTerms} {
		if _, ok := colIdx[required]; !ok {
			return nil, fmt.Errorf("表头缺少必需列 %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx := colIdx[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var courses []model.Course
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取数据行失败: %w", err)
		}

		subject := field(record, colSubject)
		number := field(record, colNumber)
		if subject == "" || number == "" {
			continue
		}

		// 学分列可能是 "4"、"4.0" 甚至 "0.5"，四舍五入后仍非正数才跳过
		raw, err := strconv.ParseFloat(field(record, colUnits), 64)
		if err != nil {
			continue
		}
		units := int(math.Round(raw))
		if units <= 0 {
			continue
		}

		courses = append(courses, model.Course{
			Subject: subject,
			Number:  number,
			Title:   field(record, colTitle),
			Units:   units,
			Terms:   parseTerms(field(record, colTerms)),
		})
	}

	return courses, nil
}

// parseTerms 解析 "Fall, Spring, Summer" 形式的开课学期列
func parseTerms(raw string) []model.Term {
	var terms []model.Term
	for _, part := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "fall":
			terms = append(terms, model.TermFall)
		case "spring":
			terms = append(terms, model.TermSpring)
		case "summer":
			terms = append(terms, model.TermSummer)
		}
	}
	return terms
}
