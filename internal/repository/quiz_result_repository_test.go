package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/model"
)

func sampleQuizResult(sessionID, userID, quizID string, completed time.Time) *model.QuizSessionResult {
	return &model.QuizSessionResult{
		SessionID:         sessionID,
		UserID:            userID,
		QuizID:            quizID,
		QuestionsAnswered: 2,
		PointsEarned:      30,
		MaxPointsPossible: 40,
		ScorePercentage:   75,
		Accuracy:          50,
		DifficultyChart: []model.PerformancePoint{
			{QuestionNumber: 1, Difficulty: 0, WasCorrect: true},
			{QuestionNumber: 2, Difficulty: 0.5, WasCorrect: false},
		},
		AdjustmentDirection: "maintain",
		CompletedAt:         completed,
	}
}

func TestQuizResultRepositoryCreateAndList(t *testing.T) {
	repo := NewQuizResultRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, sampleQuizResult("s1", "u1", "q1", base)))
	require.NoError(t, repo.Create(ctx, sampleQuizResult("s2", "u1", "q2", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, sampleQuizResult("s3", "u2", "q1", base)))

	results, total, err := repo.ListByUser(ctx, "u1", "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, results, 2)
	assert.Equal(t, "s2", results[0].SessionID)
	assert.Len(t, results[1].DifficultyChart, 2)
	assert.False(t, results[1].DifficultyChart[1].WasCorrect)

	results, total, err = repo.ListByUser(ctx, "u1", "q1", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "s1", results[0].SessionID)
}

func TestQuizResultRepositoryDuplicateSessionKeepsFirst(t *testing.T) {
	repo := NewQuizResultRepository(newTestDB(t))
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, sampleQuizResult("s1", "u1", "q1", at)))
	again := sampleQuizResult("s1", "u1", "q1", at)
	again.PointsEarned = 99
	require.NoError(t, repo.Create(ctx, again))

	results, total, err := repo.ListByUser(ctx, "u1", "", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, 30, results[0].PointsEarned)
}
