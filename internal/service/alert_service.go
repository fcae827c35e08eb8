package service

import (
	"context"
	"time"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
	"learner_insights_backend/pkg/logger"

	"go.uber.org/zap"
)

type AlertService struct {
	Alerts AlertStore
	Now    func() time.Time
}

func NewAlertService(alerts AlertStore) *AlertService {
	return &AlertService{Alerts: alerts, Now: time.Now}
}

// ListOpen 默认只列出未处理的预警
func (s *AlertService) ListOpen(ctx context.Context, filter model.AlertFilter) (*util.PageResponse, error) {
	if filter.Status == "" {
		filter.Status = model.AlertOpen
	}
	if filter.Page < 1 {
		filter.Page = util.DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = util.DefaultLimit
	}
	if filter.Limit > util.MaxLimit {
		filter.Limit = util.MaxLimit
	}

	alerts, total, err := s.Alerts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []model.AtRiskAlert{}
	}
	return &util.PageResponse{List: alerts, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *AlertService) Dismiss(ctx context.Context, alertID, operatorID, note string) (*model.AtRiskAlert, error) {
	alert, err := s.Alerts.Dismiss(ctx, alertID, operatorID, note, s.Now())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("At-risk alert dismissed",
		zap.String("alertId", alertID),
		zap.String("operatorId", operatorID),
	)
	return alert, nil
}
