package model

import "time"

type AlertStatus string

const (
	AlertOpen      AlertStatus = "open"
	AlertDismissed AlertStatus = "dismissed"
)

// AtRiskAlert 高风险预警，由批量预测生成，教师/管理员处理后关闭
type AtRiskAlert struct {
	UUIDBase
	UserID       string  `gorm:"size:36;not null;index" json:"userId"`
	CourseID     *string `gorm:"size:36;index" json:"courseId"`
	PredictionID *string `gorm:"size:36;index" json:"predictionId"`

	AlertType           string    `gorm:"size:50;not null" json:"alertType"`
	Severity            RiskLevel `gorm:"size:20;index" json:"severity"`
	RiskScore           int       `json:"riskScore"`
	Title               string    `gorm:"size:255" json:"title"`
	Description         string    `gorm:"type:text" json:"description"`
	ContributingFactors []string  `gorm:"serializer:json" json:"contributingFactors"`
	RecommendedActions  []string  `gorm:"serializer:json" json:"recommendedActions"`
	FollowUpRequired    bool      `json:"followUpRequired"`
	NextFollowUpDate    time.Time `json:"nextFollowUpDate"`

	Status         AlertStatus `gorm:"size:20;default:'open';index" json:"status"`
	DismissedAt    *time.Time  `json:"dismissedAt,omitempty"`
	DismissedBy    *string     `gorm:"size:36" json:"dismissedBy,omitempty"`
	ResolutionNote string      `gorm:"type:text" json:"resolutionNote,omitempty"`
}

func (AtRiskAlert) TableName() string {
	return "at_risk_alerts"
}

type AlertFilter struct {
	Severity *RiskLevel
	CourseID *string
	Status   AlertStatus
	Page     int
	Limit    int
}
