package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"fouryearplan/backend/internal/model"
)

// ── Mock SavedPlanRepository ──

type mockSavedPlanRepo struct {
	plans map[string]*model.SavedPlan
	seq   int
}

func newMockSavedPlanRepo() *mockSavedPlanRepo {
	return &mockSavedPlanRepo{plans: make(map[string]*model.SavedPlan)}
}

func (m *mockSavedPlanRepo) Create(_ context.Context, plan *model.SavedPlan) error {
	m.seq++
	if plan.PlanID == "" {
		plan.PlanID = fmt.Sprintf("plan-%03d", m.seq)
	}
	// 递增时间戳，保证 ListByUser 的排序可断言
	plan.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	plan.UpdatedAt = plan.CreatedAt
	m.plans[plan.PlanID] = plan
	return nil
}

func (m *mockSavedPlanRepo) GetByID(_ context.Context, id string) (*model.SavedPlan, error) {
	if p, ok := m.plans[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSavedPlanRepo) ListByUser(_ context.Context, userID string) ([]model.SavedPlan, error) {
	var result []model.SavedPlan
	for _, p := range m.plans {
		if p.UserID == userID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockSavedPlanRepo) Delete(_ context.Context, id string, _ string) error {
	if _, ok := m.plans[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.plans, id)
	return nil
}
