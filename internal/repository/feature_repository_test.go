package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/model"
)

func TestFeatureRepositoryListLatest(t *testing.T) {
	repo := NewFeatureRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Save(ctx, []model.UserFeatures{
		{UserID: "u1", CourseID: strPtr("c1"), ProgressPercentage: 10, ComputedAt: now.Add(-48 * time.Hour)},
		{UserID: "u1", CourseID: strPtr("c1"), ProgressPercentage: 30, ComputedAt: now},
		{UserID: "u1", CourseID: strPtr("c2"), ProgressPercentage: 50, ComputedAt: now},
		{UserID: "u2", CourseID: strPtr("c1"), ProgressPercentage: 70, ComputedAt: now},
	}))

	all, err := repo.ListLatest(ctx, model.FeatureFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	one, err := repo.ListLatest(ctx, model.FeatureFilter{UserID: strPtr("u1"), CourseID: strPtr("c1")})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, 30.0, one[0].ProgressPercentage)

	none, err := repo.ListLatest(ctx, model.FeatureFilter{UserID: strPtr("nobody")})
	require.NoError(t, err)
	assert.Empty(t, none)
}
