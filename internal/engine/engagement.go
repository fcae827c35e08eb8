package engine

import (
	"math"

	"learner_insights_backend/internal/model"
)

// EngagementPrediction 当前参与度及基于动量的线性外推
type EngagementPrediction struct {
	Current      int                   `json:"current"`
	Predicted7d  float64               `json:"predicted7d"`
	Predicted30d float64               `json:"predicted30d"`
	Trend        model.EngagementTrend `json:"trend"`
}

func PredictEngagement(f model.UserFeatures) EngagementPrediction {
	current := CurrentEngagement(f)
	momentum := finite(f.EngagementMomentum)

	return EngagementPrediction{
		Current:      current,
		Predicted7d:  projectEngagement(current, momentum, 7),
		Predicted30d: projectEngagement(current, momentum, 30),
		Trend:        EngagementTrendFor(momentum),
	}
}

// CurrentEngagement 四项加权求和，每项先截到非负再相加
func CurrentEngagement(f model.UserFeatures) int {
	score := recencyPoints(f.DaysSinceLastActivity)

	score += Clamp(finite(f.ProgressVelocity)*engagementVelocityFactor, 0, EngagementVelocityMax)

	activeDays := clampInt(f.ActiveDaysLast7d, 0, 7)
	score += float64(activeDays) / 7 * EngagementFrequencyMax

	score += Clamp(float64(f.LoginStreakDays)*engagementStreakFactor, 0, EngagementStreakMax)

	return roundInt(Clamp0To100(score))
}

func recencyPoints(days int) float64 {
	days = nonNegativeInt(days)
	for _, step := range engagementRecencySteps {
		if days <= step.MaxDays {
			return step.Points
		}
	}
	return 0
}

func projectEngagement(current int, momentum float64, days int) float64 {
	return Clamp0To100(float64(current) + momentum*float64(days))
}

// EngagementTrendFor 注意 |momentum|<=1 时标记为 critical，而小幅负动量反而是 stable。
// 产品确认前保持现有口径。
func EngagementTrendFor(momentum float64) model.EngagementTrend {
	switch {
	case momentum > TrendMomentumStrong:
		return model.TrendIncreasing
	case momentum < -TrendMomentumStrong:
		return model.TrendDeclining
	case math.Abs(momentum) > TrendMomentumWeak:
		return model.TrendStable
	default:
		return model.TrendCritical
	}
}
