package service

import (
	"context"
	"errors"
	"time"

	"learner_insights_backend/internal/util"
	"learner_insights_backend/pkg/logger"

	"go.uber.org/zap"
)

// PredictionScheduler 按配置的间隔对全部学习者执行默认批量预测
type PredictionScheduler struct {
	Service *PredictionService
}

func NewPredictionScheduler(svc *PredictionService) *PredictionScheduler {
	return &PredictionScheduler{Service: svc}
}

// Run 阻塞直到 ctx 取消；间隔在每轮结束后重新读取，配置热更新可以生效
func (s *PredictionScheduler) Run(ctx context.Context) {
	for {
		settings := s.Service.Settings()
		interval := time.Duration(settings.BatchIntervalMinutes) * time.Minute
		if interval <= 0 {
			interval = time.Hour
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Log.Info("Prediction scheduler stopped")
			return
		case <-timer.C:
		}

		if !s.Service.Settings().BatchEnabled {
			continue
		}
		s.RunOnce(ctx)
	}
}

func (s *PredictionScheduler) RunOnce(ctx context.Context) {
	result, err := s.Service.Generate(ctx, GenerateRequest{})
	switch {
	case errors.Is(err, util.ErrNoFeatureData):
		logger.Log.Info("Scheduled prediction run skipped: no feature data")
	case err != nil:
		logger.Log.Error("Scheduled prediction run failed", zap.Error(err))
	default:
		logger.Log.Info("Scheduled prediction run completed",
			zap.Int("predictions", result.PredictionsGenerated),
			zap.Int("alerts", result.AlertsCreated),
		)
	}
}
