package registry

import (
	"strings"

	"fouryearplan/backend/internal/model"
)

// defaultTotalUnits 本科毕业默认总学分
const defaultTotalUnits = 120

// collegeMajors 各学院开设的本科专业
// 顺序即注册表的声明顺序，保证 MajorNames 输出稳定
var collegeMajors = []struct {
	college string
	majors  []string
}{
	{
		college: "College of Letters and Science",
		majors: []string{
			// Arts and Humanities
			"Ancient Greek and Roman Studies", "Art History", "Art Practice", "Celtic Studies",
			"Comparative Literature", "Dutch Studies", "East Asian Languages and Cultures",
			"English", "Film and Media", "French", "German", "Italian Studies",
			"Middle Eastern Languages and Cultures", "Music", "Near Eastern Civilizations",
			"Philosophy", "Rhetoric", "Scandinavian", "Slavic", "South and Southeast Asian Studies",
			"Spanish and Portuguese", "Theater, Dance, and Performance Studies",
			// Biological Sciences
			"Integrative Biology", "Molecular and Cell Biology", "Neuroscience", "Public Health",
			"Robinson Life Science, Business, and Entrepreneurship Program",
			// Interdisciplinary Studies
			"American Studies", "Interdisciplinary Studies", "Legal Studies", "Media Studies",
			// Mathematical and Physical Sciences
			"Analytics", "Astrophysics", "Chemistry", "Earth and Planetary Science",
			"Mathematics", "Physics",
			// Social Sciences
			"African American Studies", "Anthropology", "Asian American and Asian Diaspora Studies",
			"Chicano Studies", "Chicanx Latinx Studies", "Cognitive Science", "Economics",
			"Educational Sciences", "Ethnic Studies", "Gender and Women's Studies", "Geography",
			"Global Studies", "History", "Linguistics", "Native American Studies",
			"Political Economy", "Political Science", "Psychology", "Social Welfare", "Sociology",
		},
	},
	{
		college: "College of Computing, Data Science, and Society",
		majors:  []string{"Computer Science", "Data Science", "Statistics"},
	},
	{
		college: "College of Chemistry",
		majors:  []string{"Chemical Biology", "Chemical Engineering"},
	},
	{
		college: "College of Engineering",
		majors: []string{
			"Aerospace Engineering", "Bioengineering", "Civil Engineering",
			"Electrical and Computer Engineering", "Environmental Engineering Sciences",
			"Energy Engineering", "Engineering Mathematics and Statistics", "Engineering Physics",
			"Environmental Engineering Science", "Industrial Engineering and Operations Research",
			"Materials Science and Engineering", "Mechanical Engineering", "Nuclear Engineering",
		},
	},
	{
		college: "College of Environmental Design",
		majors:  []string{"Architecture", "Landscape Architecture", "Sustainable Environmental Design", "Urban Studies"},
	},
	{
		college: "Rausser College of Natural Resources",
		majors: []string{
			"Conservation and Resource Studies", "Ecosystem Management and Forestry",
			"Environmental Economics and Policy", "Environmental Sciences", "Genetics and Plant Biology",
			"Microbial Biology", "Molecular Environmental Biology", "Nutrition & Metabolic Biology",
			"Society and Environment",
		},
	},
	{
		college: "Haas School of Business",
		majors:  []string{"Business Administration"},
	},
}

// genericProfile 尚未录入详细培养方案的专业使用的通用模板
// 上层专业课代码按专业名推导（大写去空格取前 8 字符），与爬取脚本的命名约定一致
func genericProfile(major, college string) *model.MajorProfile {
	abbrev := strings.ReplaceAll(strings.ToUpper(major), " ", "")
	if len(abbrev) > 8 {
		abbrev = abbrev[:8]
	}

	return &model.MajorProfile{
		Name:       major,
		College:    college,
		TotalUnits: defaultTotalUnits,
		Slots: []model.RequirementSlot{
			{
				Category:    model.CategoryLowerDivision,
				Name:        "Core Requirements",
				Courses:     []string{"MATH 1A", "ENGLISH 1A"},
				Units:       8,
				Description: "Core mathematics and composition courses",
			},
			{
				Category:    model.CategoryUpperDivision,
				Name:        "Major Requirements",
				Courses:     []string{abbrev + " 100", abbrev + " 101"},
				Units:       8,
				Description: "Upper division " + major + " courses",
			},
			{
				Category:    model.CategoryBreadth,
				Name:        "General Education",
				Courses:     []string{"HISTORY 1A", "PHYSICS 7A"},
				Units:       8,
				Description: "Breadth requirements",
			},
		},
	}
}

// detailedProfiles 已录入详细培养方案的热门专业，覆盖通用模板
var detailedProfiles = []*model.MajorProfile{
	{
		Name:       "Computer Science",
		College:    "College of Engineering",
		TotalUnits: defaultTotalUnits,
		Slots: []model.RequirementSlot{
			{
				Category:    model.CategoryLowerDivision,
				Name:        "Programming Fundamentals",
				Courses:     []string{"COMPSCI 61A", "COMPSCI 61B"},
				Units:       8,
				Description: "Core programming courses",
			},
			{
				Category:    model.CategoryLowerDivision,
				Name:        "Mathematics",
				Courses:     []string{"MATH 1A", "MATH 1B"},
				Units:       8,
				Description: "Calculus sequence",
			},
			{
				Category:    model.CategoryUpperDivision,
				Name:        "Advanced Computer Science",
				Courses:     []string{"COMPSCI 170", "COMPSCI 188"},
				Units:       8,
				Description: "Upper division CS courses",
			},
			{
				Category:    model.CategoryBreadth,
				Name:        "Humanities",
				Courses:     []string{"ENGLISH 1A"},
				Units:       4,
				Description: "Humanities breadth requirement",
			},
		},
	},
	{
		Name:       "Data Science",
		College:    "College of Computing, Data Science, and Society",
		TotalUnits: defaultTotalUnits,
		Slots: []model.RequirementSlot{
			{
				Category:    model.CategoryLowerDivision,
				Name:        "Programming Fundamentals",
				Courses:     []string{"COMPSCI 61A", "COMPSCI 61B"},
				Units:       8,
				Description: "Core programming courses",
			},
			{
				Category:    model.CategoryLowerDivision,
				Name:        "Mathematics",
				Courses:     []string{"MATH 1A", "MATH 1B"},
				Units:       8,
				Description: "Calculus sequence",
			},
			{
				Category:    model.CategoryUpperDivision,
				Name:        "Data Science Core",
				Courses:     []string{"DATA 100", "DATA 102"},
				Units:       8,
				Description: "Core data science courses",
			},
			{
				Category:    model.CategoryBreadth,
				Name:        "Humanities",
				Courses:     []string{"ENGLISH 1A"},
				Units:       4,
				Description: "Humanities breadth requirement",
			},
		},
	},
}
