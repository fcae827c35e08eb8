package service

import (
	"context"
	"time"

	"learner_insights_backend/internal/model"
)

// 服务层依赖的存储接口，由 repository 包实现，测试中用内存 fake 替代

type FeatureStore interface {
	ListLatest(ctx context.Context, filter model.FeatureFilter) ([]model.UserFeatures, error)
}

type PredictionStore interface {
	CreateBatch(ctx context.Context, predictions []model.LearnerPrediction) error
}

type PredictionQuery interface {
	LatestForLearner(ctx context.Context, userID string, courseID *string, now time.Time) (map[model.PredictionType]model.LearnerPrediction, error)
	RiskDistribution(ctx context.Context, courseID *string, now time.Time) (map[model.RiskLevel]int, int, error)
}

type AlertStore interface {
	CreateBatch(ctx context.Context, alerts []model.AtRiskAlert) error
	List(ctx context.Context, filter model.AlertFilter) ([]model.AtRiskAlert, int64, error)
	Dismiss(ctx context.Context, id, operatorID, note string, at time.Time) (*model.AtRiskAlert, error)
}

// AlertNotifier 新预警的推送通道，调用方不等待结果
type AlertNotifier interface {
	NotifyAlerts(ctx context.Context, alerts []model.AtRiskAlert)
}

type RoadmapStore interface {
	Replace(ctx context.Context, roadmap *model.StoredRoadmap) error
	Get(ctx context.Context, assessmentID string) (*model.StoredRoadmap, error)
}

type QuizSessionStore interface {
	Save(ctx context.Context, state *model.AbilityState, ttl time.Duration) error
	Get(ctx context.Context, id string) (*model.AbilityState, error)
	Delete(ctx context.Context, id string) error
}

type QuizResultStore interface {
	Create(ctx context.Context, result *model.QuizSessionResult) error
	ListByUser(ctx context.Context, userID, quizID string, page, limit int) ([]model.QuizSessionResult, int64, error)
}

type ReportArchiver interface {
	ArchiveRun(ctx context.Context, report *model.PredictionRunReport) (string, error)
}
