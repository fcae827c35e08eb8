package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"learner_insights_backend/internal/model"
	"learner_insights_backend/internal/util"
)

type fakeFeatureStore struct {
	features []model.UserFeatures
	err      error
}

func (f *fakeFeatureStore) ListLatest(ctx context.Context, filter model.FeatureFilter) ([]model.UserFeatures, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.UserFeatures
	for _, row := range f.features {
		if filter.UserID != nil && row.UserID != *filter.UserID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

type fakePredictionStore struct {
	mu      sync.Mutex
	written []model.LearnerPrediction
	err     error
}

func (f *fakePredictionStore) CreateBatch(ctx context.Context, predictions []model.LearnerPrediction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, predictions...)
	return nil
}

type fakeAlertStore struct {
	mu      sync.Mutex
	written []model.AtRiskAlert
	err     error
}

func (f *fakeAlertStore) CreateBatch(ctx context.Context, alerts []model.AtRiskAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, alerts...)
	return nil
}

func (f *fakeAlertStore) List(ctx context.Context, filter model.AlertFilter) ([]model.AtRiskAlert, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AtRiskAlert
	for _, a := range f.written {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAlertStore) Dismiss(ctx context.Context, id, operatorID, note string, at time.Time) (*model.AtRiskAlert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.written {
		if f.written[i].ID != id {
			continue
		}
		if f.written[i].Status == model.AlertDismissed {
			return nil, util.ErrAlertAlreadyDismissed
		}
		f.written[i].Status = model.AlertDismissed
		f.written[i].DismissedAt = &at
		f.written[i].DismissedBy = &operatorID
		f.written[i].ResolutionNote = note
		a := f.written[i]
		return &a, nil
	}
	return nil, util.ErrAlertNotFound
}

type fakeNotifier struct {
	calls chan []model.AtRiskAlert
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan []model.AtRiskAlert, 4)}
}

func (f *fakeNotifier) NotifyAlerts(ctx context.Context, alerts []model.AtRiskAlert) {
	f.calls <- alerts
}

type fakeArchive struct {
	reports []*model.PredictionRunReport
	err     error
}

func (f *fakeArchive) ArchiveRun(ctx context.Context, report *model.PredictionRunReport) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.reports = append(f.reports, report)
	return "/uploads/reports/predictions/" + report.RunID + ".json", nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]model.AbilityState
	ttls     map[string]time.Duration
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]model.AbilityState{}, ttls: map[string]time.Duration{}}
}

func (f *fakeSessionStore) Save(ctx context.Context, state *model.AbilityState, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *state
	cp.PerformanceTrend = append([]model.PerformancePoint(nil), state.PerformanceTrend...)
	f.sessions[state.SessionID] = cp
	f.ttls[state.SessionID] = ttl
	return nil
}

func (f *fakeSessionStore) Get(ctx context.Context, id string) (*model.AbilityState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[id]; !ok {
		return util.ErrSessionNotFound
	}
	delete(f.sessions, id)
	return nil
}

type fakeQuizResultStore struct {
	mu      sync.Mutex
	results []model.QuizSessionResult
	err     error
}

func (f *fakeQuizResultStore) Create(ctx context.Context, result *model.QuizSessionResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if result.ID == "" {
		result.ID = fmt.Sprintf("result-%d", len(f.results)+1)
	}
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeQuizResultStore) ListByUser(ctx context.Context, userID, quizID string, page, limit int) ([]model.QuizSessionResult, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []model.QuizSessionResult
	for _, r := range f.results {
		if r.UserID == userID && (quizID == "" || r.QuizID == quizID) {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

type fakeRoadmapStore struct {
	saved map[string]*model.StoredRoadmap
	err   error
}

func (f *fakeRoadmapStore) Replace(ctx context.Context, roadmap *model.StoredRoadmap) error {
	if f.err != nil {
		return f.err
	}
	if f.saved == nil {
		f.saved = map[string]*model.StoredRoadmap{}
	}
	f.saved[roadmap.AssessmentID] = roadmap
	return nil
}

func (f *fakeRoadmapStore) Get(ctx context.Context, assessmentID string) (*model.StoredRoadmap, error) {
	r, ok := f.saved[assessmentID]
	if !ok {
		return nil, util.ErrAssessmentNotFound
	}
	return r, nil
}

type fakePredictionQuery struct {
	latest map[model.PredictionType]model.LearnerPrediction
	levels map[model.RiskLevel]int
	total  int
}

func (f *fakePredictionQuery) LatestForLearner(ctx context.Context, userID string, courseID *string, now time.Time) (map[model.PredictionType]model.LearnerPrediction, error) {
	if f.latest == nil {
		return map[model.PredictionType]model.LearnerPrediction{}, nil
	}
	return f.latest, nil
}

func (f *fakePredictionQuery) RiskDistribution(ctx context.Context, courseID *string, now time.Time) (map[model.RiskLevel]int, int, error) {
	return f.levels, f.total, nil
}

var errStoreDown = errors.New("store down")
