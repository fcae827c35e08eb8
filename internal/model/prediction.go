package model

import "time"

type PredictionType string

const (
	PredictionEngagement PredictionType = "engagement"
	PredictionAtRisk     PredictionType = "at_risk"
	PredictionCompletion PredictionType = "completion"
	PredictionSkillsGap  PredictionType = "skills_gap"
)

// AllPredictionTypes 固定顺序
var AllPredictionTypes = []PredictionType{
	PredictionCompletion,
	PredictionEngagement,
	PredictionAtRisk,
	PredictionSkillsGap,
}

// DefaultPredictionTypes 请求未指定类型时使用
var DefaultPredictionTypes = []PredictionType{
	PredictionCompletion,
	PredictionEngagement,
	PredictionAtRisk,
}

func (t PredictionType) Valid() bool {
	switch t {
	case PredictionEngagement, PredictionAtRisk, PredictionCompletion, PredictionSkillsGap:
		return true
	}
	return false
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

type EngagementTrend string

const (
	TrendIncreasing EngagementTrend = "increasing"
	TrendDeclining  EngagementTrend = "declining"
	TrendStable     EngagementTrend = "stable"
	TrendCritical   EngagementTrend = "critical"
)

// LearnerPrediction 预测结果，按 PredictionType 区分使用哪组字段。
// 写入后不再修改，新的一行覆盖旧结果。
type LearnerPrediction struct {
	UUIDBase
	UserID         string         `gorm:"size:36;not null;index:idx_pred_lookup" json:"userId"`
	CourseID       *string        `gorm:"size:36;index:idx_pred_lookup" json:"courseId"`
	PredictionType PredictionType `gorm:"size:20;not null;index:idx_pred_lookup" json:"predictionType"`
	ModelVersion   string         `gorm:"size:20" json:"modelVersion"`
	ValidUntil     time.Time      `gorm:"index" json:"validUntil"`

	// engagement
	EngagementScore        *int             `json:"engagementScore,omitempty"`
	PredictedEngagement7d  *float64         `gorm:"column:predicted_engagement_7d" json:"predictedEngagement7d,omitempty"`
	PredictedEngagement30d *float64         `gorm:"column:predicted_engagement_30d" json:"predictedEngagement30d,omitempty"`
	EngagementTrend        *EngagementTrend `gorm:"size:20" json:"engagementTrend,omitempty"`

	// at_risk
	RiskScore                *int       `json:"riskScore,omitempty"`
	RiskLevel                *RiskLevel `gorm:"size:20;index" json:"riskLevel,omitempty"`
	RiskFactors              []string   `gorm:"serializer:json" json:"riskFactors,omitempty"`
	DropoutProbability       *float64   `json:"dropoutProbability,omitempty"`
	RecommendedInterventions []string   `gorm:"serializer:json" json:"recommendedInterventions,omitempty"`
	InterventionPriority     *int       `json:"interventionPriority,omitempty"`

	// completion
	PredictedCompletionDate *time.Time `json:"predictedCompletionDate,omitempty"`
	CompletionProbability   *int       `json:"completionProbability,omitempty"`
	EstimatedDaysToComplete *int       `json:"estimatedDaysToComplete,omitempty"`
	CompletionConfidence    *int       `json:"completionConfidence,omitempty"`

	// skills_gap
	SkillGaps              map[string]float64 `gorm:"serializer:json" json:"skillGaps,omitempty"`
	HoursNeededToCloseGaps *float64           `json:"hoursNeededToCloseGaps,omitempty"`
}

func (LearnerPrediction) TableName() string {
	return "learner_predictions"
}
