package repository

import (
	"context"
	"time"

	"learner_insights_backend/internal/model"

	"gorm.io/gorm"
)

type PredictionRepository struct {
	DB *gorm.DB
}

func NewPredictionRepository(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{DB: db}
}

// CreateBatch 一次运行的预测在同一事务中写入，要么全部成功要么全部失败
func (r *PredictionRepository) CreateBatch(ctx context.Context, predictions []model.LearnerPrediction) error {
	if len(predictions) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&predictions, 100).Error
	})
}

// LatestForLearner 每种预测类型取最新一条未过期记录
func (r *PredictionRepository) LatestForLearner(ctx context.Context, userID string, courseID *string, now time.Time) (map[model.PredictionType]model.LearnerPrediction, error) {
	var rows []model.LearnerPrediction
	err := r.DB.WithContext(ctx).
		Scopes(courseScope(courseID)).
		Where("user_id = ? AND valid_until > ?", userID, now).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	latest := make(map[model.PredictionType]model.LearnerPrediction, 4)
	for _, p := range rows {
		if _, ok := latest[p.PredictionType]; !ok {
			latest[p.PredictionType] = p
		}
	}
	return latest, nil
}

// RiskDistribution 统计每个学习者最新一条 at_risk 预测的等级分布
func (r *PredictionRepository) RiskDistribution(ctx context.Context, courseID *string, now time.Time) (map[model.RiskLevel]int, int, error) {
	var rows []model.LearnerPrediction
	query := r.DB.WithContext(ctx).
		Select("user_id", "course_id", "risk_level", "created_at").
		Where("prediction_type = ? AND valid_until > ?", model.PredictionAtRisk, now)
	if courseID != nil {
		query = query.Where("course_id = ?", *courseID)
	}
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	levels := map[model.RiskLevel]int{
		model.RiskLow:      0,
		model.RiskMedium:   0,
		model.RiskHigh:     0,
		model.RiskCritical: 0,
	}
	seen := make(map[[2]string]bool, len(rows))
	for _, p := range rows {
		key := [2]string{p.UserID, courseKey(p.CourseID)}
		if seen[key] || p.RiskLevel == nil {
			continue
		}
		seen[key] = true
		levels[*p.RiskLevel]++
	}
	return levels, len(seen), nil
}
