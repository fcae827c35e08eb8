package repository

import (
	"context"

	"learner_insights_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

// Create 同一会话重复提交时保留第一次写入的记录
func (r *QuizResultRepository) Create(ctx context.Context, result *model.QuizSessionResult) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "session_id"}}, DoNothing: true}).
		Create(result).Error
}

// ListByUser 按完成时间倒序，quizID 为空时不过滤
func (r *QuizResultRepository) ListByUser(ctx context.Context, userID, quizID string, page, limit int) ([]model.QuizSessionResult, int64, error) {
	query := r.DB.WithContext(ctx).Model(&model.QuizSessionResult{}).Where("user_id = ?", userID)
	if quizID != "" {
		query = query.Where("quiz_id = ?", quizID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []model.QuizSessionResult
	err := query.Scopes(paginate(page, limit)).
		Order("completed_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}
