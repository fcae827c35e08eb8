package engine

// 参与度评分权重
const (
	EngagementRecencyMax   = 40.0
	EngagementVelocityMax  = 30.0
	EngagementFrequencyMax = 20.0
	EngagementStreakMax    = 10.0

	engagementVelocityFactor = 10.0
	engagementStreakFactor   = 2.0

	TrendMomentumStrong = 5.0
	TrendMomentumWeak   = 1.0
)

// recencyStep 最近活跃天数分档，按 MaxDays 升序匹配
type recencyStep struct {
	MaxDays int
	Points  float64
}

var engagementRecencySteps = []recencyStep{
	{MaxDays: 0, Points: 40},
	{MaxDays: 1, Points: 35},
	{MaxDays: 3, Points: 25},
	{MaxDays: 7, Points: 15},
	{MaxDays: 14, Points: 5},
}

// riskTier 单个风险维度的一档，比较方向由所在表决定
type riskTier struct {
	Threshold float64
	Points    int
	Label     string
}

// 风险因子标签
const (
	FactorInactive14d              = "inactive_14d"
	FactorInactive7d               = "inactive_7d"
	FactorLowRecentActivity        = "low_recent_activity"
	FactorVeryLowProgress          = "very_low_progress"
	FactorLowProgress              = "low_progress"
	FactorPoorPerformance          = "poor_performance"
	FactorBelowAveragePerformance  = "below_average_performance"
	FactorLowAssignmentCompletion  = "low_assignment_completion"
	FactorModerateAssignmentIssues = "moderate_assignment_issues"
	FactorDecliningEngagement      = "declining_engagement"
	FactorStagnantEngagement       = "stagnant_engagement"
	GeneralRiskAlertType           = "general_risk"
)

// 不活跃天数：严格大于阈值时命中，按降序检查
var inactivityTiers = []riskTier{
	{Threshold: 14, Points: 25, Label: FactorInactive14d},
	{Threshold: 7, Points: 15, Label: FactorInactive7d},
	{Threshold: 3, Points: 8, Label: FactorLowRecentActivity},
}

// 以下维度：严格小于阈值时命中，按升序检查
var progressTiers = []riskTier{
	{Threshold: 20, Points: 25, Label: FactorVeryLowProgress},
	{Threshold: 40, Points: 15, Label: FactorLowProgress},
}

var performanceTiers = []riskTier{
	{Threshold: 50, Points: 20, Label: FactorPoorPerformance},
	{Threshold: 70, Points: 10, Label: FactorBelowAveragePerformance},
}

var assignmentTiers = []riskTier{
	{Threshold: 0.5, Points: 15, Label: FactorLowAssignmentCompletion},
	{Threshold: 0.7, Points: 8, Label: FactorModerateAssignmentIssues},
}

var momentumTiers = []riskTier{
	{Threshold: -5, Points: 15, Label: FactorDecliningEngagement},
	{Threshold: 0, Points: 8, Label: FactorStagnantEngagement},
}

// 风险等级分界
const (
	RiskCriticalAt = 75
	RiskHighAt     = 50
	RiskMediumAt   = 25

	MaxRiskScore = 100

	dropoutRiskWeight       = 0.8
	dropoutInactivityWeight = 20.0
	dropoutInactivityWindow = 30.0
)

// 完成度预测参数
const (
	DefaultProgressVelocity = 0.5
	NoProgressSentinelDays  = 999

	fastVelocityThreshold   = 1.0
	fastVelocityBonus       = 20.0
	consistencyStreakDays   = 7
	consistencyBonus        = 10.0
	highPerformanceScore    = 80.0
	highPerformanceBonus    = 10.0
	confidenceSessionsUnit  = 10.0
	confidenceSessionsScale = 50.0
	confidenceActiveBonus   = 30.0
	establishedActiveDays   = 7
	confidencePatternBonus  = 20.0

	skillsGapHoursDivisor = 10.0
)

// 能力/难度调整参数
const (
	AbilityMin = -3.0
	AbilityMax = 3.0

	excellentAccuracy  = 85.0
	excellentAbility   = 0.5
	strugglingAccuracy = 50.0
	strugglingAbility  = -0.5
	goodAccuracy       = 70.0

	recentTrendWindow     = 5
	recentTrendMinAnswers = 3
	recentImprovingAt     = 80.0
	recentDecliningAt     = 40.0
)

// 答题计分参数
const (
	DefaultBasePoints        = 10
	DefaultQuestionTimeLimit = 120
	hintPenaltyPerHint       = 10
	fastAnswerBonus          = 10
	moderateAnswerBonus      = 5
	streakBonusPoints        = 5
	streakBonusEvery         = 3
)

// 路线图参数
const (
	QuickWinsWeeks = 4

	shortTermFactor = 2.0
	shortTermMin    = 12
	shortTermMax    = 28

	mediumTermFactor = 1.5
	mediumTermMin    = 8
	mediumTermMax    = 20

	longTermFactor = 0.5
	longTermMin    = 4
	longTermMax    = 24

	TimelineMinWeeks = 24
	TimelineMaxWeeks = 104

	quickWinMinImpact       = 4
	maxImpactRating         = 5.0
	longTermAssumedImpact   = 4
	milestoneMaxDeliverable = 5
	painPointTitleRunes     = 60
	nextStepTitleRunes      = 50
)
