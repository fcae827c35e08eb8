package repository

import (
	"context"
	"errors"
	"time"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"

	"gorm.io/gorm"
)

type AlertRepository struct {
	DB *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{DB: db}
}

func (r *AlertRepository) CreateBatch(ctx context.Context, alerts []model.AtRiskAlert) error {
	if len(alerts) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(&alerts, 100).Error
}

func (r *AlertRepository) FindByID(ctx context.Context, id string) (*model.AtRiskAlert, error) {
	var alert model.AtRiskAlert
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAlertNotFound
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

// List 按严重程度和时间倒序
func (r *AlertRepository) List(ctx context.Context, filter model.AlertFilter) ([]model.AtRiskAlert, int64, error) {
	query := r.DB.WithContext(ctx).Model(&model.AtRiskAlert{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", *filter.Severity)
	}
	if filter.CourseID != nil {
		query = query.Where("course_id = ?", *filter.CourseID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var alerts []model.AtRiskAlert
	err := query.Scopes(paginate(filter.Page, filter.Limit)).
		Order("risk_score DESC").
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

// Dismiss 只允许关闭 open 状态的预警，并发关闭时只有一个成功
func (r *AlertRepository) Dismiss(ctx context.Context, id, operatorID, note string, at time.Time) (*model.AtRiskAlert, error) {
	var alert *model.AtRiskAlert
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.AtRiskAlert{}).
			Where("id = ? AND status = ?", id, model.AlertOpen).
			Updates(map[string]interface{}{
				"status":          model.AlertDismissed,
				"dismissed_at":    at,
				"dismissed_by":    operatorID,
				"resolution_note": note,
			})
		if res.Error != nil {
			return res.Error
		}

		var found model.AtRiskAlert
		if err := tx.Where("id = ?", id).First(&found).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrAlertNotFound
			}
			return err
		}
		if res.RowsAffected == 0 {
			return util.ErrAlertAlreadyDismissed
		}
		alert = &found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return alert, nil
}
