package service

import (
	"context"
	"fmt"
	"time"

	"learner_insights_backend/internal/config"
	"learner_insights_backend/internal/engine"
	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
	"learner_insights_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionView struct {
	SessionID         string                 `json:"sessionId"`
	QuizID            string                 `json:"quizId"`
	PointsEarned      int                    `json:"pointsEarned"`
	MaxPointsPossible int                    `json:"maxPointsPossible"`
	CurrentStreak     int                    `json:"currentStreak"`
	BestStreak        int                    `json:"bestStreak"`
	Panel             engine.DifficultyPanel `json:"panel"`
}

type AnswerResult struct {
	Score   engine.AnswerScore `json:"score"`
	Session SessionView        `json:"session"`
}

type DifficultyChange struct {
	Changed bool        `json:"changed"`
	Session SessionView `json:"session"`
}

// SessionEnd 结束会话时返回的最终状态与成绩汇总
type SessionEnd struct {
	ResultID string                `json:"resultId"`
	Session  SessionView           `json:"session"`
	Summary  engine.SessionSummary `json:"summary"`
}

// QuizSessionService 自适应测验会话。能力估计由外部给出，这里只负责记录、计分和难度面板
type QuizSessionService struct {
	Sessions QuizSessionStore
	Results  QuizResultStore
	TTL      time.Duration
	Rules    engine.ScoringRules
	Now      func() time.Time
}

func NewQuizSessionService(sessions QuizSessionStore, results QuizResultStore, cfg config.QuizConfig) *QuizSessionService {
	rules := engine.DefaultScoringRules()
	if cfg.BasePoints > 0 {
		rules.BasePoints = cfg.BasePoints
	}
	if cfg.QuestionTimeLimitSeconds > 0 {
		rules.TimeLimitSeconds = cfg.QuestionTimeLimitSeconds
	}
	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &QuizSessionService{Sessions: sessions, Results: results, TTL: ttl, Rules: rules, Now: time.Now}
}

func viewOf(state *model.AbilityState) SessionView {
	return SessionView{
		SessionID:         state.SessionID,
		QuizID:            state.QuizID,
		PointsEarned:      state.PointsEarned,
		MaxPointsPossible: state.MaxPointsPossible,
		CurrentStreak:     state.CurrentStreak,
		BestStreak:        state.BestStreak,
		Panel:             engine.BuildDifficultyPanel(*state),
	}
}

func (s *QuizSessionService) Start(ctx context.Context, userID, quizID string, initialAbility float64) (*SessionView, error) {
	now := s.Now()
	state := &model.AbilityState{
		SessionID:        uuid.New().String(),
		UserID:           userID,
		QuizID:           quizID,
		CurrentAbility:   initialAbility,
		PerformanceTrend: []model.PerformancePoint{},
		StartedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Sessions.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	v := viewOf(state)
	return &v, nil
}

// load 会话不属于当前用户时按不存在处理
func (s *QuizSessionService) load(ctx context.Context, sessionID, userID string) (*model.AbilityState, error) {
	state, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.UserID != userID {
		return nil, util.ErrSessionNotFound
	}
	return state, nil
}

func (s *QuizSessionService) Get(ctx context.Context, sessionID, userID string) (*SessionView, error) {
	state, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	v := viewOf(state)
	return &v, nil
}

func (s *QuizSessionService) SubmitAnswer(ctx context.Context, sessionID, userID string, in engine.AnswerInput) (*AnswerResult, error) {
	state, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	score := engine.RecordAnswer(state, in, s.Rules)
	state.UpdatedAt = s.Now()
	if err := s.Sessions.Save(ctx, state, s.TTL); err != nil {
		return nil, err
	}
	return &AnswerResult{Score: score, Session: viewOf(state)}, nil
}

// SetDifficulty 手动调整难度，取值范围由接口层校验
func (s *QuizSessionService) SetDifficulty(ctx context.Context, sessionID, userID string, difficulty float64) (*DifficultyChange, error) {
	state, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	changed := engine.ApplyDifficultyOverride(state, difficulty)
	if changed {
		state.UpdatedAt = s.Now()
		if err := s.Sessions.Save(ctx, state, s.TTL); err != nil {
			return nil, err
		}
		logger.Log.Debug("Quiz difficulty overridden",
			zap.String("sessionId", sessionID),
			zap.Float64("difficulty", difficulty),
		)
	}
	return &DifficultyChange{Changed: changed, Session: viewOf(state)}, nil
}

// End 先写入成绩记录再删除 Redis 中的会话，写入失败时会话保留以便重试
func (s *QuizSessionService) End(ctx context.Context, sessionID, userID string) (*SessionEnd, error) {
	state, err := s.load(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}

	summary := engine.SummarizeSession(*state)
	result := &model.QuizSessionResult{
		SessionID:           state.SessionID,
		UserID:              state.UserID,
		QuizID:              state.QuizID,
		QuestionsAnswered:   summary.QuestionsAnswered,
		PointsEarned:        summary.PointsEarned,
		MaxPointsPossible:   summary.MaxPoints,
		ScorePercentage:     summary.ScorePercentage,
		Accuracy:            summary.Accuracy,
		TotalTimeSeconds:    summary.TotalTimeSeconds,
		AverageTimeSeconds:  summary.AverageTimeSeconds,
		FinalAbility:        summary.FinalAbility,
		FinalLevel:          summary.FinalLevel,
		BestStreak:          summary.BestStreak,
		HintsUsed:           summary.HintsUsed,
		DifficultyChart:     summary.DifficultyChart,
		AdjustmentDirection: string(summary.Adjustment.Direction),
		AdjustmentMessage:   summary.Adjustment.Message,
		StartedAt:           state.StartedAt,
		CompletedAt:         s.Now(),
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("save quiz result: %w", err)
	}
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	logger.WithTrace(ctx).Info("Quiz session completed",
		zap.String("sessionId", sessionID),
		zap.String("userId", userID),
		zap.Float64("scorePercentage", summary.ScorePercentage),
		zap.Float64("accuracy", summary.Accuracy),
	)
	return &SessionEnd{ResultID: result.ID, Session: viewOf(state), Summary: summary}, nil
}

// History 当前用户已完成的测验记录
func (s *QuizSessionService) History(ctx context.Context, userID, quizID string, page, limit int) (*util.PageResponse, error) {
	if page < 1 {
		page = util.DefaultPage
	}
	if limit < 1 {
		limit = util.DefaultLimit
	}
	if limit > util.MaxLimit {
		limit = util.MaxLimit
	}

	results, total, err := s.Results.ListByUser(ctx, userID, quizID, page, limit)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.QuizSessionResult{}
	}
	return &util.PageResponse{List: results, Total: total, Page: page, Limit: limit}, nil
}
