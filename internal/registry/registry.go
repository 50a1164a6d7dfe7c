// Package registry 维护专业培养方案注册表。
// 注册表在进程启动时构建一次，此后只读，可被任意多请求并发访问。
package registry

import "fouryearplan/backend/internal/model"

// Registry 专业培养方案注册表
type Registry struct {
	profiles map[string]*model.MajorProfile
	names    []string // 声明顺序
}

// New 构建注册表：先按学院展开通用模板，再用详细培养方案覆盖
func New() *Registry {
	r := &Registry{
		profiles: make(map[string]*model.MajorProfile),
	}

	for _, group := range collegeMajors {
		for _, major := range group.majors {
			if _, exists := r.profiles[major]; exists {
				continue
			}
			r.profiles[major] = genericProfile(major, group.college)
			r.names = append(r.names, major)
		}
	}

	for _, p := range detailedProfiles {
		if _, exists := r.profiles[p.Name]; !exists {
			r.names = append(r.names, p.Name)
		}
		r.profiles[p.Name] = p
	}

	return r
}

// Profile 按专业名精确查找培养方案
func (r *Registry) Profile(major string) (*model.MajorProfile, bool) {
	p, ok := r.profiles[major]
	return p, ok
}

// MajorNames 全部专业名（声明顺序）
func (r *Registry) MajorNames() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len 注册表内专业数量
func (r *Registry) Len() int {
	return len(r.names)
}
