package model

// Term 开课学期
type Term string

const (
	TermFall   Term = "Fall"
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
)

// Course 课程目录记录
// 启动时由 Catalog 载入，进程内只读；身份 = Subject + Number
type Course struct {
	Subject string `json:"subject"`
	Number  string `json:"number"`
	Title   string `json:"title"`
	Units   int    `json:"units"`
	Terms   []Term `json:"terms"`
}

// Code 课程代码，如 "COMPSCI 61A"
func (c *Course) Code() string {
	return c.Subject + " " + c.Number
}

// OfferedIn 判断课程在指定学期是否开课
func (c *Course) OfferedIn(term Term) bool {
	for _, t := range c.Terms {
		if t == term {
			return true
		}
	}
	return false
}
