package model

import "time"

// UserFeatures 学习者特征快照，由外部特征提取任务按 user×course 周期性写入。
// CourseID 为空表示不区分课程的整体特征。
type UserFeatures struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"-" yaml:"-"`
	UserID   string  `gorm:"size:36;not null;index:idx_features_user_course" json:"user_id" yaml:"user_id"`
	CourseID *string `gorm:"size:36;index:idx_features_user_course" json:"course_id" yaml:"course_id"`

	DaysSinceLastActivity int `json:"days_since_last_activity" yaml:"days_since_last_activity"`

	TotalTimeSpentMinutes     float64 `json:"total_time_spent_minutes" yaml:"total_time_spent_minutes"`
	AvgSessionDurationMinutes float64 `json:"avg_session_duration_minutes" yaml:"avg_session_duration_minutes"`
	SessionsCount             int     `json:"sessions_count" yaml:"sessions_count"`

	ActiveDaysCount   int `json:"active_days_count" yaml:"active_days_count"`
	ActiveDaysLast7d  int `gorm:"column:active_days_last_7d" json:"active_days_last_7d" yaml:"active_days_last_7d"`
	ActiveDaysLast30d int `gorm:"column:active_days_last_30d" json:"active_days_last_30d" yaml:"active_days_last_30d"`

	ProgressPercentage float64 `json:"progress_percentage" yaml:"progress_percentage"`
	ProgressVelocity   float64 `json:"progress_velocity" yaml:"progress_velocity"`

	ModulesCompleted   int     `json:"modules_completed" yaml:"modules_completed"`
	ModulesTotal       int     `json:"modules_total" yaml:"modules_total"`
	AvgAssessmentScore float64 `json:"avg_assessment_score" yaml:"avg_assessment_score"`
	AssessmentTrend    string  `gorm:"size:50" json:"assessment_trend" yaml:"assessment_trend"`

	AssignmentsSubmitted int `json:"assignments_submitted" yaml:"assignments_submitted"`
	AssignmentsOnTime    int `json:"assignments_on_time" yaml:"assignments_on_time"`
	AssignmentsLate      int `json:"assignments_late" yaml:"assignments_late"`
	AssignmentsOverdue   int `json:"assignments_overdue" yaml:"assignments_overdue"`

	LoginStreakDays           int     `json:"login_streak_days" yaml:"login_streak_days"`
	LongestInactivePeriodDays int     `json:"longest_inactive_period_days" yaml:"longest_inactive_period_days"`
	EngagementMomentum        float64 `json:"engagement_momentum" yaml:"engagement_momentum"`
	PerformanceConsistency    float64 `json:"performance_consistency" yaml:"performance_consistency"`
	LearningEfficiency        float64 `json:"learning_efficiency" yaml:"learning_efficiency"`

	ComputedAt time.Time `gorm:"index" json:"computed_at" yaml:"computed_at"`
}

func (UserFeatures) TableName() string {
	return "learner_features"
}

// FeatureFilter 两个字段都为空表示全部学习者
type FeatureFilter struct {
	UserID   *string
	CourseID *string
}
