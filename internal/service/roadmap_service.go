package service

import (
	"context"
	"fmt"

	"learner_insights_backend/internal/engine"
	"learner_insights_backend/internal/model"
	"learner_insights_backend/pkg/logger"
	"learner_insights_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type RoadmapService struct {
	Roadmaps RoadmapStore
}

func NewRoadmapService(roadmaps RoadmapStore) *RoadmapService {
	return &RoadmapService{Roadmaps: roadmaps}
}

// Generate 计算路线图并替换该评估之前保存的版本
func (s *RoadmapService) Generate(ctx context.Context, assessmentID string, data model.AssessmentFormData) (roadmap *engine.Roadmap, err error) {
	ctx, span := tracing.StartSpan(ctx, "RoadmapService.Generate", attribute.String("assessment.id", assessmentID))
	defer func() {
		tracing.RecordError(span, err)
		span.End()
	}()

	r := engine.ComputeRoadmap(data)
	span.SetAttributes(
		attribute.Int("roadmap.complexity", r.Complexity),
		attribute.Int("roadmap.items", len(r.Items)),
	)

	stored := &model.StoredRoadmap{
		AssessmentID: assessmentID,
		Phases:       r.Phases,
		Items:        r.Items,
		Milestones:   r.Milestones,
	}
	if err := s.Roadmaps.Replace(ctx, stored); err != nil {
		logger.Log.Error("Failed to store roadmap", zap.String("assessmentId", assessmentID), zap.Error(err))
		return nil, fmt.Errorf("store roadmap: %w", err)
	}

	r.Phases, r.Items, r.Milestones = stored.Phases, stored.Items, stored.Milestones
	logger.WithTrace(ctx).Info("Roadmap generated",
		zap.String("assessmentId", assessmentID),
		zap.Int("complexity", r.Complexity),
		zap.Int("totalWeeks", r.TotalTimelineWeeks),
	)
	return &r, nil
}

func (s *RoadmapService) Get(ctx context.Context, assessmentID string) (*model.StoredRoadmap, error) {
	return s.Roadmaps.Get(ctx, assessmentID)
}
