package repository

import (
	"context"

	"learner_insights_backend/internal/model"

	"gorm.io/gorm"
)

type FeatureRepository struct {
	DB *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{DB: db}
}

// ListLatest 按 user×course 取最新一次计算的特征
func (r *FeatureRepository) ListLatest(ctx context.Context, filter model.FeatureFilter) ([]model.UserFeatures, error) {
	var rows []model.UserFeatures

	query := r.DB.WithContext(ctx).Model(&model.UserFeatures{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}

	if err := query.Order("computed_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	seen := make(map[[2]string]bool, len(rows))
	latest := make([]model.UserFeatures, 0, len(rows))
	for _, f := range rows {
		key := [2]string{f.UserID, courseKey(f.CourseID)}
		if seen[key] {
			continue
		}
		seen[key] = true
		latest = append(latest, f)
	}
	return latest, nil
}

// Save 特征通常由外部任务写入，这里用于导入和本地调试
func (r *FeatureRepository) Save(ctx context.Context, features []model.UserFeatures) error {
	if len(features) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(&features, 100).Error
}
