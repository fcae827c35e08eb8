package model

// LearnerInsights 学习者最新预测汇总
type LearnerInsights struct {
	UserID     string             `json:"userId"`
	CourseID   *string            `json:"courseId"`
	HasData    bool               `json:"hasData"`
	Message    string             `json:"message,omitempty"`
	Engagement *LearnerPrediction `json:"engagement,omitempty"`
	AtRisk     *LearnerPrediction `json:"atRisk,omitempty"`
	Completion *LearnerPrediction `json:"completion,omitempty"`
	SkillsGap  *LearnerPrediction `json:"skillsGap,omitempty"`
}

// RiskDistribution 风险等级分布
type RiskDistribution struct {
	CourseID *string           `json:"courseId"`
	Total    int               `json:"total"`
	Levels   map[RiskLevel]int `json:"levels"`
}

// PredictionRunReport 一次批量预测的摘要，归档到对象存储
type PredictionRunReport struct {
	RunID                string            `json:"runId"`
	StartedAt            string            `json:"startedAt"`
	FinishedAt           string            `json:"finishedAt"`
	PredictionTypes      []PredictionType  `json:"predictionTypes"`
	LearnersProcessed    int               `json:"learnersProcessed"`
	PredictionsGenerated int               `json:"predictionsGenerated"`
	AlertsCreated        int               `json:"alertsCreated"`
	AlertWriteFailed     bool              `json:"alertWriteFailed"`
	Failures             int               `json:"failures"`
	RiskLevels           map[RiskLevel]int `json:"riskLevels"`
}
