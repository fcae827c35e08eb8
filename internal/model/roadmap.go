package model

type RoadmapPhaseName string

const (
	PhaseQuickWins  RoadmapPhaseName = "quick_wins"
	PhaseShortTerm  RoadmapPhaseName = "short_term"
	PhaseMediumTerm RoadmapPhaseName = "medium_term"
	PhaseLongTerm   RoadmapPhaseName = "long_term"
)

type RoadmapPriority string

const (
	PriorityCritical RoadmapPriority = "critical"
	PriorityHigh     RoadmapPriority = "high"
	PriorityMedium   RoadmapPriority = "medium"
	PriorityLow      RoadmapPriority = "low"
)

// AssessmentFormData 评估问卷中与路线图相关的部分
type AssessmentFormData struct {
	PainPoints           []PainPointInput  `json:"painPoints" binding:"dive"`
	Risks                []RiskInput       `json:"risks"`
	UserImpacts          []UserImpactInput `json:"userImpacts" binding:"dive"`
	Benefits             []BenefitInput    `json:"benefits" binding:"dive"`
	RecommendedNextSteps []string          `json:"recommendedNextSteps"`
}

type PainPointInput struct {
	PainPoint             string `json:"painPoint"`
	CurrentImpact         int    `json:"currentImpact" binding:"min=0,max=5"`
	ImpactAfterAI         int    `json:"impactAfterAI" binding:"min=0,max=5"`
	AICapabilityToAddress string `json:"aiCapabilityToAddress"`
}

type RiskInput struct {
	Risk       string `json:"risk"`
	Mitigation string `json:"mitigation"`
}

type UserImpactInput struct {
	UserGroup          string `json:"userGroup"`
	AIImprovements     string `json:"aiImprovements"`
	SatisfactionRating int    `json:"satisfactionRating" binding:"min=0,max=5"`
	ImpactRating       int    `json:"impactRating" binding:"min=0,max=5"`
}

type BenefitInput struct {
	BenefitArea   string `json:"benefitArea"`
	AIImprovement string `json:"aiImprovement"`
	CurrentStatus string `json:"currentStatus"`
	ImpactRating  int    `json:"impactRating" binding:"min=0,max=5"`
}

type RoadmapPhase struct {
	UUIDBase
	AssessmentID       string           `gorm:"size:36;not null;index" json:"assessmentId"`
	Phase              RoadmapPhaseName `gorm:"size:20;not null" json:"phase"`
	StartWeek          int              `json:"startWeek"`
	DurationWeeks      int              `json:"durationWeeks"`
	TotalCostUSD       int              `gorm:"column:total_cost_usd" json:"totalCostUsd"`
	CompletionCriteria []string         `gorm:"serializer:json" json:"completionCriteria"`
}

func (RoadmapPhase) TableName() string {
	return "roadmap_phases"
}

type RoadmapItem struct {
	UUIDBase
	AssessmentID      string           `gorm:"size:36;not null;index" json:"assessmentId"`
	Phase             RoadmapPhaseName `gorm:"size:20;not null" json:"phase"`
	PhaseOrder        int              `json:"phaseOrder"`
	Title             string           `gorm:"size:255" json:"title"`
	Description       string           `gorm:"type:text" json:"description"`
	Priority          RoadmapPriority  `gorm:"size:20" json:"priority"`
	EstimatedWeeks    int              `json:"estimatedWeeks"`
	EstimatedCostUSD  int              `gorm:"column:estimated_cost_usd" json:"estimatedCostUsd"`
	RequiredResources []string         `gorm:"serializer:json" json:"requiredResources"`
	Dependencies      []string         `gorm:"serializer:json" json:"dependencies"`
	SuccessMetrics    []string         `gorm:"serializer:json" json:"successMetrics"`
}

func (RoadmapItem) TableName() string {
	return "roadmap_items"
}

type RoadmapMilestone struct {
	UUIDBase
	AssessmentID       string           `gorm:"size:36;not null;index" json:"assessmentId"`
	Phase              RoadmapPhaseName `gorm:"size:20" json:"phase"`
	MilestoneName      string           `gorm:"size:255" json:"milestoneName"`
	TargetWeek         int              `json:"targetWeek"`
	Deliverables       []string         `gorm:"serializer:json" json:"deliverables"`
	ValidationCriteria []string         `gorm:"serializer:json" json:"validationCriteria"`
}

func (RoadmapMilestone) TableName() string {
	return "roadmap_milestones"
}

// StoredRoadmap 某次评估已保存的路线图
type StoredRoadmap struct {
	AssessmentID string             `json:"assessmentId"`
	Phases       []RoadmapPhase     `json:"phases"`
	Items        []RoadmapItem      `json:"items"`
	Milestones   []RoadmapMilestone `json:"milestones"`
}
