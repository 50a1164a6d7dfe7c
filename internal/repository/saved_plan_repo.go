package repository

import (
	"context"

	"gorm.io/gorm"

	"fouryearplan/backend/internal/model"
)

// SavedPlanRepository 已保存计划数据访问接口
type SavedPlanRepository interface {
	Create(ctx context.Context, plan *model.SavedPlan) error
	GetByID(ctx context.Context, id string) (*model.SavedPlan, error)
	ListByUser(ctx context.Context, userID string) ([]model.SavedPlan, error)
	Delete(ctx context.Context, id string, deletedBy string) error
}

type savedPlanRepo struct {
	db *gorm.DB
}

// NewSavedPlanRepo 创建 SavedPlanRepository 实例
func NewSavedPlanRepo(db *gorm.DB) SavedPlanRepository {
	return &savedPlanRepo{db: db}
}

func (r *savedPlanRepo) Create(ctx context.Context, plan *model.SavedPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *savedPlanRepo) GetByID(ctx context.Context, id string) (*model.SavedPlan, error) {
	var plan model.SavedPlan
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *savedPlanRepo) ListByUser(ctx context.Context, userID string) ([]model.SavedPlan, error) {
	var plans []model.SavedPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *savedPlanRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.SavedPlan{}).
		Where("plan_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_by": deletedBy,
			"deleted_at": gorm.Expr("NOW()"),
		}).Error
}
