package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/model"
)

func riskRow(userID string, level model.RiskLevel, created, validUntil time.Time) model.LearnerPrediction {
	score := 60
	return model.LearnerPrediction{
		UUIDBase:       model.UUIDBase{CreatedAt: created},
		UserID:         userID,
		CourseID:       strPtr("c1"),
		PredictionType: model.PredictionAtRisk,
		ModelVersion:   "1.0",
		ValidUntil:     validUntil,
		RiskScore:      &score,
		RiskLevel:      &level,
		RiskFactors:    []string{"inactive_7d"},
	}
}

func TestPredictionRepositoryLatestForLearner(t *testing.T) {
	repo := NewPredictionRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	engagement := 42
	require.NoError(t, repo.CreateBatch(ctx, []model.LearnerPrediction{
		riskRow("u1", model.RiskLow, now.Add(-2*time.Hour), now.Add(24*time.Hour)),
		riskRow("u1", model.RiskHigh, now.Add(-time.Hour), now.Add(24*time.Hour)),
		{
			UUIDBase:        model.UUIDBase{CreatedAt: now.Add(-time.Hour)},
			UserID:          "u1",
			CourseID:        strPtr("c1"),
			PredictionType:  model.PredictionEngagement,
			ValidUntil:      now.Add(-time.Minute),
			EngagementScore: &engagement,
		},
	}))

	latest, err := repo.LatestForLearner(ctx, "u1", strPtr("c1"), now)
	require.NoError(t, err)

	require.Contains(t, latest, model.PredictionAtRisk)
	assert.Equal(t, model.RiskHigh, *latest[model.PredictionAtRisk].RiskLevel)
	assert.Equal(t, []string{"inactive_7d"}, latest[model.PredictionAtRisk].RiskFactors)
	assert.NotContains(t, latest, model.PredictionEngagement, "expired rows are ignored")

	other, err := repo.LatestForLearner(ctx, "u1", nil, now)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPredictionRepositoryRiskDistribution(t *testing.T) {
	repo := NewPredictionRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()
	valid := now.Add(24 * time.Hour)

	require.NoError(t, repo.CreateBatch(ctx, []model.LearnerPrediction{
		riskRow("u1", model.RiskLow, now.Add(-2*time.Hour), valid),
		riskRow("u1", model.RiskCritical, now.Add(-time.Hour), valid),
		riskRow("u2", model.RiskMedium, now.Add(-time.Hour), valid),
		riskRow("u3", model.RiskMedium, now.Add(-time.Hour), valid),
	}))

	levels, total, err := repo.RiskDistribution(ctx, nil, now)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, 0, levels[model.RiskLow])
	assert.Equal(t, 2, levels[model.RiskMedium])
	assert.Equal(t, 1, levels[model.RiskCritical])
}
