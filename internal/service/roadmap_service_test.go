package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
)

func roadmapForm() model.AssessmentFormData {
	return model.AssessmentFormData{
		PainPoints: []model.PainPointInput{
			{PainPoint: "Manual grading takes too long", CurrentImpact: 5, ImpactAfterAI: 2, AICapabilityToAddress: "ML model for grading"},
		},
		RecommendedNextSteps: []string{"Pilot with one department"},
	}
}

func TestRoadmapGenerateStoresResult(t *testing.T) {
	store := &fakeRoadmapStore{}
	svc := NewRoadmapService(store)

	r, err := svc.Generate(context.Background(), "assess-1", roadmapForm())
	require.NoError(t, err)
	assert.Len(t, r.Phases, 4)
	assert.NotEmpty(t, r.Items)

	stored, err := svc.Get(context.Background(), "assess-1")
	require.NoError(t, err)
	assert.Equal(t, "assess-1", stored.AssessmentID)
	assert.Len(t, stored.Phases, 4)
	assert.Equal(t, len(r.Items), len(stored.Items))
}

func TestRoadmapGenerateStoreFailure(t *testing.T) {
	svc := NewRoadmapService(&fakeRoadmapStore{err: errStoreDown})

	_, err := svc.Generate(context.Background(), "assess-1", roadmapForm())
	assert.ErrorIs(t, err, errStoreDown)
}

func TestRoadmapGetMissing(t *testing.T) {
	svc := NewRoadmapService(&fakeRoadmapStore{})

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, util.ErrAssessmentNotFound)
}
