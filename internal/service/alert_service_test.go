package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
)

func seededAlerts() *fakeAlertStore {
	store := &fakeAlertStore{}
	store.written = []model.AtRiskAlert{
		{UUIDBase: model.UUIDBase{ID: "a1"}, UserID: "u1", Severity: model.RiskCritical, RiskScore: 90, Status: model.AlertOpen},
		{UUIDBase: model.UUIDBase{ID: "a2"}, UserID: "u2", Severity: model.RiskHigh, RiskScore: 60, Status: model.AlertDismissed},
	}
	return store
}

func TestAlertServiceListDefaults(t *testing.T) {
	svc := NewAlertService(seededAlerts())

	page, err := svc.ListOpen(context.Background(), model.AlertFilter{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, util.DefaultPage, page.Page)
	assert.Equal(t, util.MaxLimit, page.Limit)
	assert.Equal(t, int64(1), page.Total)

	alerts := page.List.([]model.AtRiskAlert)
	require.Len(t, alerts, 1)
	assert.Equal(t, "a1", alerts[0].ID)
}

func TestAlertServiceListEmptyIsNotNil(t *testing.T) {
	svc := NewAlertService(&fakeAlertStore{})

	page, err := svc.ListOpen(context.Background(), model.AlertFilter{})
	require.NoError(t, err)
	assert.Equal(t, util.DefaultLimit, page.Limit)
	assert.NotNil(t, page.List)
	assert.Empty(t, page.List)
}

func TestAlertServiceDismiss(t *testing.T) {
	store := seededAlerts()
	svc := NewAlertService(store)
	at := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return at }

	alert, err := svc.Dismiss(context.Background(), "a1", "teacher-1", "called the learner")
	require.NoError(t, err)
	assert.Equal(t, model.AlertDismissed, alert.Status)
	assert.Equal(t, at, *alert.DismissedAt)
	assert.Equal(t, "teacher-1", *alert.DismissedBy)

	_, err = svc.Dismiss(context.Background(), "a1", "teacher-1", "")
	assert.ErrorIs(t, err, util.ErrAlertAlreadyDismissed)

	_, err = svc.Dismiss(context.Background(), "missing", "teacher-1", "")
	assert.ErrorIs(t, err, util.ErrAlertNotFound)
}
