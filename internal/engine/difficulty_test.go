package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"learner_insights_backend/internal/model"
)

func TestClassifyAbility(t *testing.T) {
	tests := []struct {
		ability float64
		label   string
	}{
		{-3, "Beginner"},
		{-1.4, "Elementary"},
		{-0.5, "Elementary"},
		{0.49, "Intermediate"},
		{0.5, "Intermediate"},
		{1.51, "Expert"},
		{3, "Expert"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.label, ClassifyAbility(tt.ability).Label, "ability %v", tt.ability)
	}
}

func TestRecommendAdjustment(t *testing.T) {
	tests := []struct {
		name     string
		ability  float64
		accuracy float64
		dir      AdjustmentDirection
		message  string
	}{
		{"excellent", 1, 90, AdjustIncrease, "Excellent performance (90.0%)! Ready for more challenging content."},
		{"high accuracy low ability", 0.2, 90, AdjustMaintain, "Maintain current difficulty. Performance is appropriate (90.0%)."},
		{"struggling", -1, 40, AdjustDecrease, "Consider reviewing fundamentals (40.0% accuracy). Easier content recommended."},
		{"good", 0, 75, AdjustIncrease, "Good progress (75.0%)! You're ready to advance."},
		{"maintain", 0, 60, AdjustMaintain, "Maintain current difficulty. Performance is appropriate (60.0%)."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendAdjustment(tt.ability, tt.accuracy)
			assert.Equal(t, tt.dir, got.Direction)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestApplyDifficultyOverride(t *testing.T) {
	state := &model.AbilityState{CurrentAbility: 0.5, Accuracy: 70, QuestionsAnswered: 4}

	assert.False(t, ApplyDifficultyOverride(state, 0.5))
	assert.True(t, ApplyDifficultyOverride(state, -1.5))
	assert.Equal(t, -1.5, state.CurrentAbility)
	assert.Equal(t, 70.0, state.Accuracy)
	assert.Equal(t, 4, state.QuestionsAnswered)
}

func TestRecentPerformanceTrend(t *testing.T) {
	points := func(results ...bool) []model.PerformancePoint {
		out := make([]model.PerformancePoint, len(results))
		for i, r := range results {
			out[i] = model.PerformancePoint{QuestionNumber: i + 1, WasCorrect: r}
		}
		return out
	}

	assert.Equal(t, RecentInsufficient, RecentPerformanceTrend(points(true, true)))
	assert.Equal(t, RecentImproving, RecentPerformanceTrend(points(false, false, true, true, true, true)))
	assert.Equal(t, RecentDeclining, RecentPerformanceTrend(points(true, false, false, true, false)))
	assert.Equal(t, RecentSteady, RecentPerformanceTrend(points(true, false, true)))
}

func TestBuildDifficultyPanel(t *testing.T) {
	panel := BuildDifficultyPanel(model.AbilityState{CurrentAbility: 0, Accuracy: 0})

	assert.Equal(t, 50.0, panel.AbilityPercentage)
	assert.Equal(t, "Intermediate", panel.Level.Label)
	assert.Equal(t, RecentInsufficient, panel.RecentTrend)
	assert.NotNil(t, panel.PerformanceTrend)
	assert.Equal(t, AdjustMaintain, panel.Recommendation.Direction)
}
