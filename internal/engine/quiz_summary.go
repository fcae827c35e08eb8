package engine

import "learner_insights_backend/internal/model"

// SessionSummary 测验结束时的成绩汇总
type SessionSummary struct {
	ScorePercentage    float64                  `json:"scorePercentage"`
	QuestionsAnswered  int                      `json:"questionsAnswered"`
	Accuracy           float64                  `json:"accuracy"`
	TotalTimeSeconds   int                      `json:"totalTimeSeconds"`
	AverageTimeSeconds float64                  `json:"averageTimeSeconds"`
	FinalAbility       float64                  `json:"finalAbility"`
	FinalLevel         string                   `json:"finalLevel"`
	BestStreak         int                      `json:"bestStreak"`
	HintsUsed          int                      `json:"hintsUsed"`
	PointsEarned       int                      `json:"pointsEarned"`
	MaxPoints          int                      `json:"maxPoints"`
	DifficultyChart    []model.PerformancePoint `json:"difficultyChart"`
	Adjustment         Recommendation           `json:"adjustment"`
}

// SummarizeSession 未作答或满分为 0 时得分率与平均用时均为 0
func SummarizeSession(state model.AbilityState) SessionSummary {
	chart := state.PerformanceTrend
	if chart == nil {
		chart = []model.PerformancePoint{}
	}
	return SessionSummary{
		ScorePercentage:    Clamp0To100(SafeDivide(float64(state.PointsEarned), float64(state.MaxPointsPossible)) * 100),
		QuestionsAnswered:  state.QuestionsAnswered,
		Accuracy:           state.Accuracy,
		TotalTimeSeconds:   state.TotalTimeSeconds,
		AverageTimeSeconds: SafeDivide(float64(state.TotalTimeSeconds), float64(state.QuestionsAnswered)),
		FinalAbility:       state.CurrentAbility,
		FinalLevel:         ClassifyAbility(state.CurrentAbility).Label,
		BestStreak:         state.BestStreak,
		HintsUsed:          state.HintsUsed,
		PointsEarned:       state.PointsEarned,
		MaxPoints:          state.MaxPointsPossible,
		DifficultyChart:    chart,
		Adjustment:         RecommendAdjustment(state.CurrentAbility, state.Accuracy),
	}
}
