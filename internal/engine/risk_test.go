package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/model"
)

// healthyFeatures 不触发任何风险维度
func healthyFeatures() model.UserFeatures {
	return model.UserFeatures{
		UserID:                "u-1",
		DaysSinceLastActivity: 0,
		ProgressPercentage:    80,
		AvgAssessmentScore:    90,
		AssignmentsSubmitted:  10,
		EngagementMomentum:    3,
	}
}

func TestScoreRiskHealthyLearner(t *testing.T) {
	got := ScoreRisk(healthyFeatures())

	assert.Equal(t, 0, got.Score)
	assert.Equal(t, model.RiskLow, got.Level)
	assert.Empty(t, got.Factors)
	assert.Equal(t, 0.0, got.DropoutProbability)
}

func TestScoreRiskWorstCase(t *testing.T) {
	f := model.UserFeatures{
		DaysSinceLastActivity:     20,
		ProgressPercentage:        10,
		AvgAssessmentScore:        30,
		AssignmentsSubmitted:      1,
		AssignmentsOverdue:        4,
		EngagementMomentum:        -10,
		LongestInactivePeriodDays: 30,
	}
	got := ScoreRisk(f)

	assert.Equal(t, 100, got.Score)
	assert.Equal(t, model.RiskCritical, got.Level)
	assert.Equal(t, []string{
		FactorInactive14d,
		FactorVeryLowProgress,
		FactorPoorPerformance,
		FactorLowAssignmentCompletion,
		FactorDecliningEngagement,
	}, got.Factors)
	assert.Equal(t, 100.0, got.DropoutProbability)

	actions := RecommendInterventions(got.Factors)
	assert.Equal(t, []string{
		ActionSendEngagementEmail, ActionInstructorOutreach,
		ActionOfferTutoring, ActionRecommendSupplementalMaterials,
		ActionDeadlineExtension, ActionAssignmentReminder,
		ActionPeerMentorAssignment, ActionStudyGroupInvitation,
	}, actions)
	assert.Equal(t, 5, InterventionPriority(got.Level))
}

func TestScoreRiskCappedLearnerEndToEnd(t *testing.T) {
	f := model.UserFeatures{
		UserID:                "u-7",
		DaysSinceLastActivity: 20,
		ProgressPercentage:    15,
		AvgAssessmentScore:    40,
		AssignmentsSubmitted:  1,
		AssignmentsOverdue:    3,
		AssignmentsLate:       1,
		EngagementMomentum:    -8,
	}
	got := ScoreRisk(f)

	// 25+25+20+15+15
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, model.RiskCritical, got.Level)
	assert.ElementsMatch(t, []string{
		FactorInactive14d,
		FactorVeryLowProgress,
		FactorPoorPerformance,
		FactorLowAssignmentCompletion,
		FactorDecliningEngagement,
	}, got.Factors)
	assert.InDelta(t, 80.0, got.DropoutProbability, 1e-9)

	actions := RecommendInterventions(got.Factors)
	require.NotEmpty(t, actions)
	for _, want := range []string{
		ActionSendEngagementEmail,
		ActionInstructorOutreach,
		ActionOfferTutoring,
		ActionDeadlineExtension,
		ActionPeerMentorAssignment,
	} {
		assert.Contains(t, actions, want)
	}
	seen := map[string]bool{}
	for _, a := range actions {
		assert.False(t, seen[a], "duplicate action %s", a)
		seen[a] = true
	}
}

func TestScoreRiskTierBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *model.UserFeatures)
		score  int
		factor string
	}{
		{"14 days not yet inactive_14d", func(f *model.UserFeatures) { f.DaysSinceLastActivity = 14 }, 15, FactorInactive7d},
		{"15 days", func(f *model.UserFeatures) { f.DaysSinceLastActivity = 15 }, 25, FactorInactive14d},
		{"7 days", func(f *model.UserFeatures) { f.DaysSinceLastActivity = 7 }, 8, FactorLowRecentActivity},
		{"progress 20 is low only", func(f *model.UserFeatures) { f.ProgressPercentage = 20 }, 15, FactorLowProgress},
		{"progress 19.9", func(f *model.UserFeatures) { f.ProgressPercentage = 19.9 }, 25, FactorVeryLowProgress},
		{"score 50", func(f *model.UserFeatures) { f.AvgAssessmentScore = 50 }, 10, FactorBelowAveragePerformance},
		{"ratio 0.5", func(f *model.UserFeatures) { f.AssignmentsSubmitted = 1; f.AssignmentsLate = 1 }, 8, FactorModerateAssignmentIssues},
		{"no assignments at all", func(f *model.UserFeatures) { f.AssignmentsSubmitted = 0 }, 15, FactorLowAssignmentCompletion},
		{"momentum -5 is stagnant", func(f *model.UserFeatures) { f.EngagementMomentum = -5 }, 8, FactorStagnantEngagement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := healthyFeatures()
			tt.mutate(&f)
			got := ScoreRisk(f)
			assert.Equal(t, tt.score, got.Score)
			require.Len(t, got.Factors, 1)
			assert.Equal(t, tt.factor, got.Factors[0])
		})
	}
}

func TestRiskLevelFor(t *testing.T) {
	cases := map[int]model.RiskLevel{
		0:   model.RiskLow,
		24:  model.RiskLow,
		25:  model.RiskMedium,
		49:  model.RiskMedium,
		50:  model.RiskHigh,
		74:  model.RiskHigh,
		75:  model.RiskCritical,
		100: model.RiskCritical,
	}
	for score, level := range cases {
		assert.Equal(t, level, RiskLevelFor(score), "score %d", score)
	}
}

func TestScoreRiskMonotonicInInactivity(t *testing.T) {
	prev := -1
	for days := 0; days <= 30; days++ {
		f := healthyFeatures()
		f.DaysSinceLastActivity = days
		got := ScoreRisk(f).Score
		assert.GreaterOrEqual(t, got, prev, "days %d", days)
		prev = got
	}
}

func TestScoreRiskIdempotent(t *testing.T) {
	f := healthyFeatures()
	f.DaysSinceLastActivity = 9
	f.AvgAssessmentScore = 60
	assert.Equal(t, ScoreRisk(f), ScoreRisk(f))
}

func TestDropoutProbability(t *testing.T) {
	assert.InDelta(t, 40+10, DropoutProbability(50, 15), 1e-9)
	assert.Equal(t, 100.0, DropoutProbability(100, 90))
	assert.Equal(t, 0.0, DropoutProbability(0, -3))
}

func TestAssignmentCompletionRatio(t *testing.T) {
	assert.Equal(t, 0.0, AssignmentCompletionRatio(model.UserFeatures{}))
	assert.InDelta(t, 0.75, AssignmentCompletionRatio(model.UserFeatures{AssignmentsSubmitted: 3, AssignmentsLate: 1}), 1e-9)
}
