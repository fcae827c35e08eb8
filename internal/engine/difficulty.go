package engine

import (
	"fmt"
	"math"

	"learner_insights_backend/internal/model"
)

type DifficultyLevel struct {
	Value       float64 `json:"value"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
}

// DifficultyLevels 五个固定档位，按 Value 升序
var DifficultyLevels = []DifficultyLevel{
	{Value: -2, Label: "Beginner", Description: "Foundational concepts"},
	{Value: -1, Label: "Elementary", Description: "Basic application"},
	{Value: 0, Label: "Intermediate", Description: "Standard complexity"},
	{Value: 1, Label: "Advanced", Description: "Complex scenarios"},
	{Value: 2, Label: "Expert", Description: "Strategic thinking"},
}

// ClassifyAbility 取距离最近的档位，距离相同时保留较低的档位
func ClassifyAbility(ability float64) DifficultyLevel {
	best := DifficultyLevels[0]
	for _, level := range DifficultyLevels[1:] {
		if math.Abs(level.Value-ability) < math.Abs(best.Value-ability) {
			best = level
		}
	}
	return best
}

type AdjustmentDirection string

const (
	AdjustIncrease AdjustmentDirection = "increase"
	AdjustDecrease AdjustmentDirection = "decrease"
	AdjustMaintain AdjustmentDirection = "maintain"
)

type Recommendation struct {
	Direction AdjustmentDirection `json:"direction"`
	Message   string              `json:"message"`
}

// RecommendAdjustment 规则按优先级依次判断
func RecommendAdjustment(ability, accuracy float64) Recommendation {
	switch {
	case accuracy >= excellentAccuracy && ability > excellentAbility:
		return Recommendation{
			Direction: AdjustIncrease,
			Message:   fmt.Sprintf("Excellent performance (%.1f%%)! Ready for more challenging content.", accuracy),
		}
	case accuracy <= strugglingAccuracy && ability < strugglingAbility:
		return Recommendation{
			Direction: AdjustDecrease,
			Message:   fmt.Sprintf("Consider reviewing fundamentals (%.1f%% accuracy). Easier content recommended.", accuracy),
		}
	case accuracy >= goodAccuracy && accuracy < excellentAccuracy:
		return Recommendation{
			Direction: AdjustIncrease,
			Message:   fmt.Sprintf("Good progress (%.1f%%)! You're ready to advance.", accuracy),
		}
	default:
		return Recommendation{
			Direction: AdjustMaintain,
			Message:   fmt.Sprintf("Maintain current difficulty. Performance is appropriate (%.1f%%).", accuracy),
		}
	}
}

// ApplyDifficultyOverride 手动调整难度。值相同时不做任何修改；范围由调用方校验。
func ApplyDifficultyOverride(state *model.AbilityState, selected float64) bool {
	if state.CurrentAbility == selected {
		return false
	}
	state.CurrentAbility = selected
	return true
}

type RecentTrend string

const (
	RecentImproving    RecentTrend = "improving"
	RecentDeclining    RecentTrend = "declining"
	RecentSteady       RecentTrend = "steady"
	RecentInsufficient RecentTrend = "insufficient_data"
)

// RecentPerformanceTrend 看最近 5 题的正确率，至少 3 题才有结论
func RecentPerformanceTrend(points []model.PerformancePoint) RecentTrend {
	if len(points) < recentTrendMinAnswers {
		return RecentInsufficient
	}

	recent := points
	if len(recent) > recentTrendWindow {
		recent = recent[len(recent)-recentTrendWindow:]
	}

	correct := 0
	for _, p := range recent {
		if p.WasCorrect {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(recent)) * 100

	switch {
	case accuracy >= recentImprovingAt:
		return RecentImproving
	case accuracy <= recentDecliningAt:
		return RecentDeclining
	default:
		return RecentSteady
	}
}

// AbilityPercentage 把 [-3,3] 映射到 0-100
func AbilityPercentage(ability float64) float64 {
	return Clamp0To100((ability - AbilityMin) / (AbilityMax - AbilityMin) * 100)
}

// DifficultyPanel 难度面板的完整视图
type DifficultyPanel struct {
	CurrentAbility    float64                  `json:"currentAbility"`
	AbilityPercentage float64                  `json:"abilityPercentage"`
	Level             DifficultyLevel          `json:"level"`
	Accuracy          float64                  `json:"accuracy"`
	QuestionsAnswered int                      `json:"questionsAnswered"`
	Recommendation    Recommendation           `json:"recommendation"`
	RecentTrend       RecentTrend              `json:"recentTrend"`
	PerformanceTrend  []model.PerformancePoint `json:"performanceTrend"`
}

func BuildDifficultyPanel(state model.AbilityState) DifficultyPanel {
	trend := state.PerformanceTrend
	if trend == nil {
		trend = []model.PerformancePoint{}
	}
	return DifficultyPanel{
		CurrentAbility:    state.CurrentAbility,
		AbilityPercentage: AbilityPercentage(state.CurrentAbility),
		Level:             ClassifyAbility(state.CurrentAbility),
		Accuracy:          state.Accuracy,
		QuestionsAnswered: state.QuestionsAnswered,
		Recommendation:    RecommendAdjustment(state.CurrentAbility, state.Accuracy),
		RecentTrend:       RecentPerformanceTrend(trend),
		PerformanceTrend:  trend,
	}
}
