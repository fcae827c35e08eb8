package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/config"
	"learner_insights_backend/internal/engine"
	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
)

func newQuizService() (*QuizSessionService, *fakeSessionStore, *fakeQuizResultStore) {
	store := newFakeSessionStore()
	results := &fakeQuizResultStore{}
	svc := NewQuizSessionService(store, results, config.QuizConfig{SessionTTLMinutes: 30})
	svc.Now = func() time.Time { return fixedNow }
	return svc, store, results
}

func TestQuizSessionDefaults(t *testing.T) {
	svc := NewQuizSessionService(newFakeSessionStore(), &fakeQuizResultStore{}, config.QuizConfig{})
	assert.Equal(t, 2*time.Hour, svc.TTL)
	assert.Equal(t, engine.DefaultScoringRules(), svc.Rules)
}

func TestQuizSessionLifecycle(t *testing.T) {
	svc, store, results := newQuizService()
	ctx := context.Background()

	started, err := svc.Start(ctx, "u1", "quiz-1", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, started.SessionID)
	assert.Equal(t, "Intermediate", started.Panel.Level.Label)
	assert.Equal(t, 30*time.Minute, store.ttls[started.SessionID])

	for i := 0; i < 3; i++ {
		_, err := svc.SubmitAnswer(ctx, started.SessionID, "u1", engine.AnswerInput{Correct: true, TimeSpentSeconds: 10})
		require.NoError(t, err)
	}

	view, err := svc.Get(ctx, started.SessionID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 65, view.PointsEarned)
	assert.Equal(t, 65, view.MaxPointsPossible)
	assert.Equal(t, 3, view.CurrentStreak)
	assert.Equal(t, engine.RecentImproving, view.Panel.RecentTrend)

	ended, err := svc.End(ctx, started.SessionID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, ended.Session.BestStreak)
	assert.Equal(t, 100.0, ended.Summary.ScorePercentage)
	assert.InDelta(t, 10.0, ended.Summary.AverageTimeSeconds, 1e-9)
	assert.Equal(t, 30, ended.Summary.TotalTimeSeconds)
	assert.NotEmpty(t, ended.ResultID)

	require.Len(t, results.results, 1)
	saved := results.results[0]
	assert.Equal(t, started.SessionID, saved.SessionID)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, "quiz-1", saved.QuizID)
	assert.Equal(t, 65, saved.PointsEarned)
	assert.Equal(t, 65, saved.MaxPointsPossible)
	assert.Equal(t, 3, saved.BestStreak)
	assert.Len(t, saved.DifficultyChart, 3)
	assert.Equal(t, string(engine.AdjustMaintain), saved.AdjustmentDirection)
	assert.Equal(t, fixedNow, saved.CompletedAt)
	assert.Equal(t, fixedNow, saved.StartedAt)

	_, err = svc.Get(ctx, started.SessionID, "u1")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestQuizSessionAbilityUpdate(t *testing.T) {
	svc, _, _ := newQuizService()
	ctx := context.Background()
	started, err := svc.Start(ctx, "u1", "quiz-1", 0)
	require.NoError(t, err)

	ability := 1.2
	res, err := svc.SubmitAnswer(ctx, started.SessionID, "u1", engine.AnswerInput{Correct: true, Ability: &ability, TimeSpentSeconds: 100})
	require.NoError(t, err)
	assert.Equal(t, 10, res.Score.Points)
	assert.Equal(t, 1.2, res.Session.Panel.CurrentAbility)
	assert.Equal(t, 0.0, res.Session.Panel.PerformanceTrend[0].Difficulty)
	assert.Equal(t, "Advanced", res.Session.Panel.Level.Label)
}

func TestQuizSessionOtherUserCannotAccess(t *testing.T) {
	svc, _, _ := newQuizService()
	ctx := context.Background()
	started, err := svc.Start(ctx, "u1", "quiz-1", 0)
	require.NoError(t, err)

	_, err = svc.Get(ctx, started.SessionID, "u2")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	_, err = svc.SubmitAnswer(ctx, started.SessionID, "u2", engine.AnswerInput{Correct: true})
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	_, err = svc.End(ctx, started.SessionID, "u2")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestQuizSessionSetDifficulty(t *testing.T) {
	svc, store, _ := newQuizService()
	ctx := context.Background()
	started, err := svc.Start(ctx, "u1", "quiz-1", 0)
	require.NoError(t, err)

	change, err := svc.SetDifficulty(ctx, started.SessionID, "u1", 0)
	require.NoError(t, err)
	assert.False(t, change.Changed)

	change, err = svc.SetDifficulty(ctx, started.SessionID, "u1", -1.5)
	require.NoError(t, err)
	assert.True(t, change.Changed)
	assert.Equal(t, -1.5, change.Session.Panel.CurrentAbility)
	assert.Equal(t, -1.5, store.sessions[started.SessionID].CurrentAbility)
}

func TestQuizSessionEndKeepsSessionWhenResultWriteFails(t *testing.T) {
	svc, store, results := newQuizService()
	ctx := context.Background()
	started, err := svc.Start(ctx, "u1", "quiz-1", 0)
	require.NoError(t, err)

	results.err = errStoreDown
	_, err = svc.End(ctx, started.SessionID, "u1")
	assert.ErrorIs(t, err, errStoreDown)
	assert.Contains(t, store.sessions, started.SessionID)

	// 存储恢复后可以重试
	results.err = nil
	ended, err := svc.End(ctx, started.SessionID, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, ended.Summary.ScorePercentage)
	assert.NotContains(t, store.sessions, started.SessionID)
}

func TestQuizSessionHistory(t *testing.T) {
	svc, _, _ := newQuizService()
	ctx := context.Background()

	for _, quiz := range []string{"quiz-1", "quiz-2"} {
		started, err := svc.Start(ctx, "u1", quiz, 0)
		require.NoError(t, err)
		_, err = svc.End(ctx, started.SessionID, "u1")
		require.NoError(t, err)
	}

	page, err := svc.History(ctx, "u1", "", 0, 500)
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, util.MaxLimit, page.Limit)

	page, err = svc.History(ctx, "u1", "quiz-2", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	page, err = svc.History(ctx, "u2", "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []model.QuizSessionResult{}, page.List)
}
