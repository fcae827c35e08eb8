package engine

import (
	"fmt"
	"strings"
	"time"

	"learner_insights_backend/internal/model"
)

const FollowUpDays = 3

// NeedsAlert 只有 high/critical 才生成预警
func NeedsAlert(level model.RiskLevel) bool {
	return level == model.RiskHigh || level == model.RiskCritical
}

// BuildAlert 根据风险结果构造预警，不满足条件时返回 false
func BuildAlert(userID string, courseID *string, risk RiskAssessment, actions []string, now time.Time) (*model.AtRiskAlert, bool) {
	if !NeedsAlert(risk.Level) {
		return nil, false
	}

	alertType := GeneralRiskAlertType
	if len(risk.Factors) > 0 {
		alertType = risk.Factors[0]
	}

	return &model.AtRiskAlert{
		UserID:              userID,
		CourseID:            courseID,
		AlertType:           alertType,
		Severity:            risk.Level,
		RiskScore:           risk.Score,
		Title:               fmt.Sprintf("At-Risk Learner: %s priority", strings.ToUpper(string(risk.Level))),
		Description:         fmt.Sprintf("Learner showing %s. Dropout probability: %.1f%%", strings.Join(risk.Factors, ", "), risk.DropoutProbability),
		ContributingFactors: append([]string(nil), risk.Factors...),
		RecommendedActions:  append([]string(nil), actions...),
		FollowUpRequired:    true,
		NextFollowUpDate:    startOfDay(now).AddDate(0, 0, FollowUpDays),
		Status:              model.AlertOpen,
	}, true
}
