package model

import "time"

type PerformancePoint struct {
	QuestionNumber int     `json:"questionNumber"`
	Difficulty     float64 `json:"difficulty"`
	WasCorrect     bool    `json:"wasCorrect"`
}

// AbilityState 一次自适应测验会话的状态，只在会话期间存在（Redis）
type AbilityState struct {
	SessionID         string             `json:"sessionId"`
	UserID            string             `json:"userId"`
	QuizID            string             `json:"quizId"`
	CurrentAbility    float64            `json:"currentAbility"`
	Accuracy          float64            `json:"accuracy"`
	QuestionsAnswered int                `json:"questionsAnswered"`
	CorrectAnswers    int                `json:"correctAnswers"`
	PerformanceTrend  []PerformancePoint `json:"performanceTrend"`
	CurrentStreak     int                `json:"currentStreak"`
	BestStreak        int                `json:"bestStreak"`
	PointsEarned      int                `json:"pointsEarned"`
	MaxPointsPossible int                `json:"maxPointsPossible"`
	HintsUsed         int                `json:"hintsUsed"`
	TotalTimeSeconds  int                `json:"totalTimeSeconds"`
	StartedAt         time.Time          `json:"startedAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// QuizSessionResult 测验结束时落库的成绩记录，Redis 中的会话状态随后删除
type QuizSessionResult struct {
	UUIDBase
	SessionID           string             `gorm:"size:36;not null;uniqueIndex" json:"sessionId"`
	UserID              string             `gorm:"size:36;not null;index:idx_quiz_result_user" json:"userId"`
	QuizID              string             `gorm:"size:36;not null;index" json:"quizId"`
	QuestionsAnswered   int                `json:"questionsAnswered"`
	PointsEarned        int                `json:"pointsEarned"`
	MaxPointsPossible   int                `json:"maxPointsPossible"`
	ScorePercentage     float64            `json:"scorePercentage"`
	Accuracy            float64            `json:"accuracy"`
	TotalTimeSeconds    int                `json:"totalTimeSeconds"`
	AverageTimeSeconds  float64            `json:"averageTimeSeconds"`
	FinalAbility        float64            `json:"finalAbility"`
	FinalLevel          string             `gorm:"size:20" json:"finalLevel"`
	BestStreak          int                `json:"bestStreak"`
	HintsUsed           int                `json:"hintsUsed"`
	DifficultyChart     []PerformancePoint `gorm:"serializer:json" json:"difficultyChart"`
	AdjustmentDirection string             `gorm:"size:20" json:"adjustmentDirection"`
	AdjustmentMessage   string             `gorm:"size:255" json:"adjustmentMessage"`
	StartedAt           time.Time          `json:"startedAt"`
	CompletedAt         time.Time          `gorm:"index:idx_quiz_result_user" json:"completedAt"`
}

func (QuizSessionResult) TableName() string {
	return "quiz_session_results"
}
