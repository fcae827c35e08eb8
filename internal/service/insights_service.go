package service

import (
	"context"
	"time"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
)

const insufficientDataMessage = "insufficient historical data"

// InsightsService 读取已生成的预测，不触发新的计算
type InsightsService struct {
	Predictions PredictionQuery
	Now         func() time.Time
}

func NewInsightsService(predictions PredictionQuery) *InsightsService {
	return &InsightsService{Predictions: predictions, Now: time.Now}
}

func (s *InsightsService) LearnerInsights(ctx context.Context, userID string, courseID *string) (*model.LearnerInsights, error) {
	latest, err := s.Predictions.LatestForLearner(ctx, userID, courseID, s.Now())
	if err != nil {
		return nil, err
	}

	out := &model.LearnerInsights{UserID: userID, CourseID: courseID}
	if len(latest) == 0 {
		out.Message = insufficientDataMessage
		return out, nil
	}
	out.HasData = true

	pick := func(t model.PredictionType) *model.LearnerPrediction {
		if p, ok := latest[t]; ok {
			return &p
		}
		return nil
	}
	out.Engagement = pick(model.PredictionEngagement)
	out.AtRisk = pick(model.PredictionAtRisk)
	out.Completion = pick(model.PredictionCompletion)
	out.SkillsGap = pick(model.PredictionSkillsGap)
	return out, nil
}

// ViewLearnerInsights 学习者只能查看自己的洞察，教师和管理员可以查看任何人
func (s *InsightsService) ViewLearnerInsights(ctx context.Context, viewer *util.Claims, userID string, courseID *string) (*model.LearnerInsights, error) {
	if viewer == nil {
		return nil, util.ErrPermissionDenied
	}
	if viewer.Role != model.Teacher && viewer.Role != model.Admin && viewer.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return s.LearnerInsights(ctx, userID, courseID)
}

func (s *InsightsService) RiskDistribution(ctx context.Context, courseID *string) (*model.RiskDistribution, error) {
	levels, total, err := s.Predictions.RiskDistribution(ctx, courseID, s.Now())
	if err != nil {
		return nil, err
	}
	return &model.RiskDistribution{CourseID: courseID, Total: total, Levels: levels}, nil
}
