package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/config"
	"learner_insights_backend/internal/engine"
	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
)

var fixedNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func testPredictionConfig() config.PredictionConfig {
	return config.PredictionConfig{
		ModelVersion:        "1.0",
		EngagementValidDays: 7,
		RiskValidDays:       7,
		CompletionValidDays: 30,
		SkillsGapValidDays:  30,
		BatchConcurrency:    4,
		ArchiveReports:      true,
	}
}

func atRiskLearner(id string) model.UserFeatures {
	return model.UserFeatures{
		UserID:                    id,
		CourseID:                  strPtr("c1"),
		DaysSinceLastActivity:     20,
		ProgressPercentage:        10,
		AvgAssessmentScore:        30,
		AssignmentsSubmitted:      1,
		AssignmentsOverdue:        4,
		EngagementMomentum:        -10,
		LongestInactivePeriodDays: 30,
	}
}

func healthyLearner(id string) model.UserFeatures {
	return model.UserFeatures{
		UserID:                id,
		CourseID:              strPtr("c1"),
		ProgressPercentage:    80,
		ProgressVelocity:      2,
		AvgAssessmentScore:    90,
		AssignmentsSubmitted:  5,
		EngagementMomentum:    3,
		ActiveDaysLast7d:      6,
		LoginStreakDays:       4,
		SessionsCount:         12,
		ActiveDaysCount:       20,
		DaysSinceLastActivity: 0,
	}
}

func strPtr(s string) *string { return &s }

type predictionFixture struct {
	svc      *PredictionService
	preds    *fakePredictionStore
	alerts   *fakeAlertStore
	notifier *fakeNotifier
	archive  *fakeArchive
}

func newPredictionFixture(features ...model.UserFeatures) *predictionFixture {
	f := &predictionFixture{
		preds:    &fakePredictionStore{},
		alerts:   &fakeAlertStore{},
		notifier: newFakeNotifier(),
		archive:  &fakeArchive{},
	}
	f.svc = NewPredictionService(&fakeFeatureStore{features: features}, f.preds, f.alerts, f.notifier, f.archive, testPredictionConfig())
	f.svc.Now = func() time.Time { return fixedNow }
	return f
}

func TestGenerateDefaultTypes(t *testing.T) {
	f := newPredictionFixture(atRiskLearner("u1"), healthyLearner("u2"))

	result, err := f.svc.Generate(context.Background(), GenerateRequest{})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 6, result.PredictionsGenerated)
	assert.Equal(t, 1, result.AlertsCreated)
	assert.Empty(t, result.Failures)
	assert.Len(t, f.preds.written, 6)

	// 输出顺序与输入一致，每个学习者按 completion, engagement, at_risk 排列
	assert.Equal(t, "u1", result.Predictions[0].UserID)
	assert.Equal(t, model.PredictionCompletion, result.Predictions[0].PredictionType)
	assert.Equal(t, model.PredictionAtRisk, result.Predictions[2].PredictionType)
	assert.Equal(t, "u2", result.Predictions[3].UserID)

	risk := result.Predictions[2]
	assert.Equal(t, 100, *risk.RiskScore)
	assert.Equal(t, model.RiskCritical, *risk.RiskLevel)
	assert.Equal(t, 5, *risk.InterventionPriority)
	assert.Len(t, risk.RecommendedInterventions, 8)
	assert.Equal(t, fixedNow.Add(7*24*time.Hour), risk.ValidUntil)
	assert.Equal(t, fixedNow.Add(30*24*time.Hour), result.Predictions[0].ValidUntil)
	assert.Equal(t, "1.0", risk.ModelVersion)

	require.Len(t, f.alerts.written, 1)
	alert := f.alerts.written[0]
	require.NotNil(t, alert.PredictionID)
	assert.Equal(t, risk.ID, *alert.PredictionID)
	assert.Equal(t, engine.FactorInactive14d, alert.AlertType)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), alert.NextFollowUpDate)

	select {
	case notified := <-f.notifier.calls:
		assert.Len(t, notified, 1)
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}

	require.Len(t, f.archive.reports, 1)
	assert.Equal(t, 2, f.archive.reports[0].LearnersProcessed)
	assert.NotEmpty(t, result.ReportURL)
}

func TestGenerateNoFeatureData(t *testing.T) {
	f := newPredictionFixture()

	_, err := f.svc.Generate(context.Background(), GenerateRequest{})
	assert.ErrorIs(t, err, util.ErrNoFeatureData)
	assert.Empty(t, f.preds.written)
}

func TestGenerateRejectsUnknownType(t *testing.T) {
	f := newPredictionFixture(healthyLearner("u1"))

	_, err := f.svc.Generate(context.Background(), GenerateRequest{PredictionTypes: []model.PredictionType{"mood"}})
	assert.ErrorIs(t, err, util.ErrInvalidPredictionType)
}

func TestGeneratePredictionWriteFailureIsFatal(t *testing.T) {
	f := newPredictionFixture(atRiskLearner("u1"))
	f.preds.err = errStoreDown

	_, err := f.svc.Generate(context.Background(), GenerateRequest{})
	assert.ErrorIs(t, err, util.ErrPredictionsWrite)
	assert.Empty(t, f.alerts.written, "alerts must not be written without predictions")
	assert.Empty(t, f.notifier.calls)
}

func TestGenerateAlertWriteFailureIsNotFatal(t *testing.T) {
	f := newPredictionFixture(atRiskLearner("u1"))
	f.alerts.err = errStoreDown

	result, err := f.svc.Generate(context.Background(), GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.PredictionsGenerated)
	assert.Equal(t, 0, result.AlertsCreated)
	assert.Empty(t, f.notifier.calls)
	require.Len(t, f.archive.reports, 1)
	assert.True(t, f.archive.reports[0].AlertWriteFailed)
}

func TestGenerateNoNotificationWithoutAlerts(t *testing.T) {
	f := newPredictionFixture(healthyLearner("u1"))

	result, err := f.svc.Generate(context.Background(), GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.AlertsCreated)

	select {
	case <-f.notifier.calls:
		t.Fatal("notifier must not be called when no alerts were created")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGenerateIsolatesMalformedLearner(t *testing.T) {
	f := newPredictionFixture(healthyLearner(""), healthyLearner("u2"))

	result, err := f.svc.Generate(context.Background(), GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.PredictionsGenerated)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "missing user_id", result.Failures[0].Reason)
}

func TestGenerateSkillsGapOnly(t *testing.T) {
	f := newPredictionFixture(healthyLearner("u1"))

	result, err := f.svc.Generate(context.Background(), GenerateRequest{
		UserID:          strPtr("u1"),
		PredictionTypes: []model.PredictionType{model.PredictionSkillsGap, model.PredictionSkillsGap},
	})
	require.NoError(t, err)
	require.Len(t, result.Predictions, 1)
	assert.InDelta(t, 2.0, *result.Predictions[0].HoursNeededToCloseGaps, 1e-9)
	assert.NotNil(t, result.Predictions[0].SkillGaps)
}

func TestGenerateArchiveFailureIsNotFatal(t *testing.T) {
	f := newPredictionFixture(healthyLearner("u1"))
	f.archive.err = errStoreDown

	result, err := f.svc.Generate(context.Background(), GenerateRequest{})
	require.NoError(t, err)
	assert.Empty(t, result.ReportURL)
}

func TestGenerateFeatureStoreError(t *testing.T) {
	svc := NewPredictionService(&fakeFeatureStore{err: errStoreDown}, &fakePredictionStore{}, &fakeAlertStore{}, nil, nil, testPredictionConfig())

	_, err := svc.Generate(context.Background(), GenerateRequest{})
	assert.ErrorIs(t, err, errStoreDown)
}

func TestUpdateSettings(t *testing.T) {
	f := newPredictionFixture(healthyLearner("u1"))
	cfg := testPredictionConfig()
	cfg.ModelVersion = "2.0"
	f.svc.UpdateSettings(cfg)

	result, err := f.svc.Generate(context.Background(), GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2.0", result.Predictions[0].ModelVersion)
}
