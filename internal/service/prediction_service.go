package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"learner_insights_backend/internal/config"
	"learner_insights_backend/internal/engine"
	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
	"learner_insights_backend/pkg/logger"
	"learner_insights_backend/pkg/monitoring"
	"learner_insights_backend/pkg/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// GenerateRequest UserID/CourseID 为空表示不过滤；PredictionTypes 为空时使用默认三种
type GenerateRequest struct {
	UserID          *string                `json:"userId"`
	CourseID        *string                `json:"courseId"`
	PredictionTypes []model.PredictionType `json:"predictionTypes"`
}

type LearnerFailure struct {
	UserID   string  `json:"userId"`
	CourseID *string `json:"courseId"`
	Reason   string  `json:"reason"`
}

type GenerateResult struct {
	Success              bool                      `json:"success"`
	PredictionsGenerated int                       `json:"predictionsGenerated"`
	AlertsCreated        int                       `json:"alertsCreated"`
	Predictions          []model.LearnerPrediction `json:"predictions"`
	Failures             []LearnerFailure          `json:"failures"`
	ReportURL            string                    `json:"reportUrl,omitempty"`
}

// learnerOutcome 单个学习者的计算结果，alert 的 PredictionID 在写入前回填
type learnerOutcome struct {
	predictions []model.LearnerPrediction
	alert       *model.AtRiskAlert
	riskIndex   int
	failure     *LearnerFailure
}

type PredictionService struct {
	Features    FeatureStore
	Predictions PredictionStore
	Alerts      AlertStore
	Notifier    AlertNotifier
	Archive     ReportArchiver
	Now         func() time.Time

	mu       sync.RWMutex
	settings config.PredictionConfig
}

func NewPredictionService(
	features FeatureStore,
	predictions PredictionStore,
	alerts AlertStore,
	notifier AlertNotifier,
	archive ReportArchiver,
	cfg config.PredictionConfig,
) *PredictionService {
	return &PredictionService{
		Features:    features,
		Predictions: predictions,
		Alerts:      alerts,
		Notifier:    notifier,
		Archive:     archive,
		Now:         time.Now,
		settings:    cfg,
	}
}

func (s *PredictionService) Settings() config.PredictionConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings 配置热更新时调用
func (s *PredictionService) UpdateSettings(cfg config.PredictionConfig) {
	s.mu.Lock()
	s.settings = cfg
	s.mu.Unlock()
}

func resolveTypes(types []model.PredictionType) ([]model.PredictionType, error) {
	if len(types) == 0 {
		return append([]model.PredictionType(nil), model.DefaultPredictionTypes...), nil
	}
	seen := make(map[model.PredictionType]bool, len(types))
	out := make([]model.PredictionType, 0, len(types))
	for _, t := range types {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q", util.ErrInvalidPredictionType, t)
		}
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out, nil
}

// Generate 为匹配的学习者批量生成预测。
// 预测写入失败时整体失败；预警写入失败只记录日志，预测结果仍然返回。
func (s *PredictionService) Generate(ctx context.Context, req GenerateRequest) (result *GenerateResult, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "PredictionService.Generate")
	defer func() {
		tracing.RecordError(span, err)
		span.End()
		monitoring.ObserveBatch(start, err)
	}()

	types, err := resolveTypes(req.PredictionTypes)
	if err != nil {
		return nil, err
	}

	settings := s.Settings()
	now := s.Now()
	startedAt := now

	features, err := s.Features.ListLatest(ctx, model.FeatureFilter{UserID: req.UserID, CourseID: req.CourseID})
	if err != nil {
		return nil, fmt.Errorf("load learner features: %w", err)
	}
	if len(features) == 0 {
		return nil, util.ErrNoFeatureData
	}
	span.SetAttributes(attribute.Int("learners", len(features)))

	outcomes := make([]learnerOutcome, len(features))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(settings.BatchConcurrency, 1))
	for i := range features {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.predictLearner(features[i], types, settings, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result = &GenerateResult{
		Predictions: make([]model.LearnerPrediction, 0, len(features)*len(types)),
		Failures:    []LearnerFailure{},
	}
	var alerts []model.AtRiskAlert
	for _, o := range outcomes {
		if o.failure != nil {
			result.Failures = append(result.Failures, *o.failure)
			continue
		}
		offset := len(result.Predictions)
		result.Predictions = append(result.Predictions, o.predictions...)
		if o.alert != nil {
			predictionID := result.Predictions[offset+o.riskIndex].ID
			o.alert.PredictionID = &predictionID
			alerts = append(alerts, *o.alert)
		}
	}
	for _, f := range result.Failures {
		logger.Log.Warn("Skipped learner in prediction run",
			zap.String("userId", f.UserID),
			zap.String("reason", f.Reason),
		)
	}

	if err := s.Predictions.CreateBatch(ctx, result.Predictions); err != nil {
		logger.Log.Error("Failed to store predictions", zap.Int("count", len(result.Predictions)), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", util.ErrPredictionsWrite, err)
	}
	result.PredictionsGenerated = len(result.Predictions)
	for _, p := range result.Predictions {
		monitoring.PredictionsGenerated.WithLabelValues(string(p.PredictionType)).Inc()
	}

	alertWriteFailed := false
	if len(alerts) > 0 {
		if err := s.Alerts.CreateBatch(ctx, alerts); err != nil {
			alertWriteFailed = true
			logger.Log.Error("Failed to store at-risk alerts, continuing", zap.Int("count", len(alerts)), zap.Error(err))
		} else {
			result.AlertsCreated = len(alerts)
			for _, a := range alerts {
				monitoring.AtRiskAlerts.WithLabelValues(string(a.Severity)).Inc()
			}
		}
	}

	if result.AlertsCreated > 0 && s.Notifier != nil {
		notifier := s.Notifier
		go notifier.NotifyAlerts(context.Background(), alerts)
	}

	result.Success = true
	if s.Archive != nil && settings.ArchiveReports {
		report := buildRunReport(result, types, len(features), alertWriteFailed, startedAt, s.Now())
		url, err := s.Archive.ArchiveRun(ctx, report)
		if err != nil {
			logger.Log.Warn("Failed to archive prediction run report", zap.String("runId", report.RunID), zap.Error(err))
		} else {
			result.ReportURL = url
		}
	}

	logger.WithTrace(ctx).Info("Prediction run finished",
		zap.Int("learners", len(features)),
		zap.Int("predictions", result.PredictionsGenerated),
		zap.Int("alerts", result.AlertsCreated),
		zap.Int("failures", len(result.Failures)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (s *PredictionService) predictLearner(f model.UserFeatures, types []model.PredictionType, settings config.PredictionConfig, now time.Time) learnerOutcome {
	if f.UserID == "" {
		return learnerOutcome{failure: &LearnerFailure{CourseID: f.CourseID, Reason: "missing user_id"}}
	}

	var out learnerOutcome
	for _, t := range types {
		p := model.LearnerPrediction{
			UUIDBase:       model.UUIDBase{ID: uuid.New().String()},
			UserID:         f.UserID,
			CourseID:       f.CourseID,
			PredictionType: t,
			ModelVersion:   settings.ModelVersion,
			ValidUntil:     now.Add(settings.ValidFor(string(t))),
		}

		switch t {
		case model.PredictionEngagement:
			e := engine.PredictEngagement(f)
			p.EngagementScore = &e.Current
			p.PredictedEngagement7d = &e.Predicted7d
			p.PredictedEngagement30d = &e.Predicted30d
			p.EngagementTrend = &e.Trend

		case model.PredictionAtRisk:
			risk := engine.ScoreRisk(f)
			actions := engine.RecommendInterventions(risk.Factors)
			priority := engine.InterventionPriority(risk.Level)
			p.RiskScore = &risk.Score
			p.RiskLevel = &risk.Level
			p.RiskFactors = risk.Factors
			p.DropoutProbability = &risk.DropoutProbability
			p.RecommendedInterventions = actions
			p.InterventionPriority = &priority

			if alert, ok := engine.BuildAlert(f.UserID, f.CourseID, risk, actions, now); ok {
				out.alert = alert
				out.riskIndex = len(out.predictions)
			}

		case model.PredictionCompletion:
			c := engine.ForecastCompletion(f, now)
			p.PredictedCompletionDate = &c.PredictedDate
			p.CompletionProbability = &c.Probability
			p.EstimatedDaysToComplete = &c.EstimatedDays
			p.CompletionConfidence = &c.Confidence

		case model.PredictionSkillsGap:
			g := engine.PredictSkillsGap(f)
			p.SkillGaps = g.SkillGaps
			p.HoursNeededToCloseGaps = &g.HoursNeeded
		}

		out.predictions = append(out.predictions, p)
	}
	return out
}

func buildRunReport(result *GenerateResult, types []model.PredictionType, learners int, alertWriteFailed bool, startedAt, finishedAt time.Time) *model.PredictionRunReport {
	levels := map[model.RiskLevel]int{}
	for _, p := range result.Predictions {
		if p.RiskLevel != nil {
			levels[*p.RiskLevel]++
		}
	}
	return &model.PredictionRunReport{
		RunID:                uuid.New().String(),
		StartedAt:            startedAt.UTC().Format(time.RFC3339),
		FinishedAt:           finishedAt.UTC().Format(time.RFC3339),
		PredictionTypes:      types,
		LearnersProcessed:    learners,
		PredictionsGenerated: result.PredictionsGenerated,
		AlertsCreated:        result.AlertsCreated,
		AlertWriteFailed:     alertWriteFailed,
		Failures:             len(result.Failures),
		RiskLevels:           levels,
	}
}
