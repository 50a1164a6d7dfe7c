package catalog

import (
	"strings"

	"fouryearplan/backend/internal/model"
)

// searchLimit 搜索结果上限，保证自动补全响应足够小
const searchLimit = 20

// Catalog 课程目录
// 启动时构建一次，此后只读，可被任意多请求并发访问
type Catalog struct {
	courses []model.Course // 保持载入顺序，作为搜索同级排序的依据
	byCode  map[string]int // 代码 → courses 下标
}

// New 从已规范化的课程记录构建目录
// 同一课程代码出现多次时保留首条
func New(courses []model.Course) *Catalog {
	c := &Catalog{
		courses: make([]model.Course, 0, len(courses)),
		byCode:  make(map[string]int, len(courses)),
	}
	for _, course := range courses {
		code := course.Code()
		if _, exists := c.byCode[code]; exists {
			continue
		}
		c.byCode[code] = len(c.courses)
		c.courses = append(c.courses, course)
	}
	return c
}

// Len 目录内课程数量
func (c *Catalog) Len() int {
	return len(c.courses)
}

// ByCode 按课程代码精确查找
func (c *Catalog) ByCode(code string) (*model.Course, bool) {
	idx, ok := c.byCode[code]
	if !ok {
		return nil, false
	}
	return &c.courses[idx], true
}

// Search 大小写不敏感的排名搜索
// 排名规则：代码精确匹配 > 学科/代码前缀匹配 > 标题子串匹配；
// 同级按目录载入顺序排列，结果截断到 searchLimit 条
func (c *Catalog) Search(query string) []*model.Course {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var exact, prefix, substr []*model.Course
	for i := range c.courses {
		course := &c.courses[i]
		code := strings.ToUpper(course.Code())
		subject := strings.ToUpper(course.Subject)
		title := strings.ToUpper(course.Title)

		switch {
		case code == q:
			exact = append(exact, course)
		case strings.HasPrefix(subject, q) || strings.HasPrefix(code, q):
			prefix = append(prefix, course)
		case strings.Contains(title, q):
			substr = append(substr, course)
		}
	}

	result := make([]*model.Course, 0, len(exact)+len(prefix)+len(substr))
	result = append(result, exact...)
	result = append(result, prefix...)
	result = append(result, substr...)
	if len(result) > searchLimit {
		result = result[:searchLimit]
	}
	return result
}
