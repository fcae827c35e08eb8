package engine

import (
	"math"
	"time"

	"learner_insights_backend/internal/model"
)

// maxEstimatedDays 极小正速度下的上限，避免整数溢出
const maxEstimatedDays = 36500

type CompletionForecast struct {
	Probability   int       `json:"completionProbability"`
	EstimatedDays int       `json:"estimatedDays"`
	PredictedDate time.Time `json:"predictedDate"`
	Confidence    int       `json:"confidence"`
}

// EffectiveVelocity 速度缺失（0/NaN）时按慢速 0.5 处理，而不是视为永不完成
func EffectiveVelocity(f model.UserFeatures) float64 {
	v := finite(f.ProgressVelocity)
	if v == 0 {
		return DefaultProgressVelocity
	}
	return v
}

func ForecastCompletion(f model.UserFeatures, now time.Time) CompletionForecast {
	progress := Clamp0To100(f.ProgressPercentage)
	velocity := EffectiveVelocity(f)

	probability := progress
	if velocity > fastVelocityThreshold {
		probability += fastVelocityBonus
	}
	if f.LoginStreakDays > consistencyStreakDays {
		probability += consistencyBonus
	}
	if Clamp0To100(f.AvgAssessmentScore) > highPerformanceScore {
		probability += highPerformanceBonus
	}
	probability = math.Min(100, probability)

	days := EstimateDaysToComplete(progress, velocity)

	confidence := float64(nonNegativeInt(f.SessionsCount)) / confidenceSessionsUnit * confidenceSessionsScale
	if velocity > 0 {
		confidence += confidenceActiveBonus
	}
	if f.ActiveDaysCount > establishedActiveDays {
		confidence += confidencePatternBonus
	}

	return CompletionForecast{
		Probability:   roundInt(probability),
		EstimatedDays: days,
		PredictedDate: startOfDay(now).AddDate(0, 0, days),
		Confidence:    roundInt(Clamp0To100(confidence)),
	}
}

// EstimateDaysToComplete 速度 <=0 返回哨兵值 999
func EstimateDaysToComplete(progress, velocity float64) int {
	if velocity <= 0 {
		return NoProgressSentinelDays
	}
	days := math.Ceil((100 - Clamp0To100(progress)) / velocity)
	if days > maxEstimatedDays {
		return maxEstimatedDays
	}
	return int(days)
}
