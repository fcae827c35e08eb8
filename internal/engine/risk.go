package engine

import "learner_insights_backend/internal/model"

// RiskAssessment 风险评分结果，Factors 按维度顺序排列
type RiskAssessment struct {
	Score              int             `json:"riskScore"`
	Level              model.RiskLevel `json:"riskLevel"`
	Factors            []string        `json:"riskFactors"`
	DropoutProbability float64         `json:"dropoutProbability"`
}

// ScoreRisk 五个维度各自最多命中一档，分值累加后封顶 100
func ScoreRisk(f model.UserFeatures) RiskAssessment {
	factors := make([]string, 0, 5)
	score := 0

	hit := func(t *riskTier) {
		if t == nil {
			return
		}
		score += t.Points
		factors = append(factors, t.Label)
	}

	hit(firstAbove(inactivityTiers, float64(nonNegativeInt(f.DaysSinceLastActivity))))
	hit(firstBelow(progressTiers, Clamp0To100(f.ProgressPercentage)))
	hit(firstBelow(performanceTiers, Clamp0To100(f.AvgAssessmentScore)))
	hit(firstBelow(assignmentTiers, AssignmentCompletionRatio(f)))
	hit(firstBelow(momentumTiers, finite(f.EngagementMomentum)))

	if score > MaxRiskScore {
		score = MaxRiskScore
	}

	return RiskAssessment{
		Score:              score,
		Level:              RiskLevelFor(score),
		Factors:            factors,
		DropoutProbability: DropoutProbability(score, f.LongestInactivePeriodDays),
	}
}

// AssignmentCompletionRatio 已提交 / (已提交+迟交+逾期)，全部为 0 时分母取 1
func AssignmentCompletionRatio(f model.UserFeatures) float64 {
	submitted := float64(nonNegativeInt(f.AssignmentsSubmitted))
	total := submitted + float64(nonNegativeInt(f.AssignmentsLate)) + float64(nonNegativeInt(f.AssignmentsOverdue))
	return SafeDivide(submitted, total)
}

func RiskLevelFor(score int) model.RiskLevel {
	switch {
	case score >= RiskCriticalAt:
		return model.RiskCritical
	case score >= RiskHighAt:
		return model.RiskHigh
	case score >= RiskMediumAt:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

func DropoutProbability(score, longestInactiveDays int) float64 {
	p := float64(score)*dropoutRiskWeight +
		float64(nonNegativeInt(longestInactiveDays))/dropoutInactivityWindow*dropoutInactivityWeight
	return Clamp0To100(p)
}

// firstAbove tiers 按阈值降序
func firstAbove(tiers []riskTier, v float64) *riskTier {
	for i := range tiers {
		if v > tiers[i].Threshold {
			return &tiers[i]
		}
	}
	return nil
}

// firstBelow tiers 按阈值升序
func firstBelow(tiers []riskTier, v float64) *riskTier {
	for i := range tiers {
		if v < tiers[i].Threshold {
			return &tiers[i]
		}
	}
	return nil
}
