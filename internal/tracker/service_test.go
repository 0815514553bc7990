package tracker

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/store"
	"github.com/abhisek/certplan/internal/studyplan"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	gen := studyplan.NewGenerator(certification.Default())
	gen.Now = func() time.Time { return testNow }
	return NewService(gen, st.PlanRepo(), st.EventRepo(), nil), st
}

func TestCreate_SavesPlanAndEvent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	require.NoError(t, err)
	require.NotEmpty(t, plan.ID)
	assert.Equal(t, 4, plan.TotalWeeks)

	got, err := svc.Get(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.Name, got.Name)

	events, err := svc.History(ctx, plan.ID, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, store.ActionCreated, events[0].Action)
}

func TestCreate_InvalidRequestStoresNothing(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 0})
	assert.ErrorIs(t, err, studyplan.ErrInvalidWeeklyHours)

	plans, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestGet_EmptyIDUsesLatest(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrNoPlan)

	_, err = svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	require.NoError(t, err)
	second, err := svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-saa"}, WeeklyHours: 10})
	require.NoError(t, err)

	latest, err := svc.Get(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestRecordProgress(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	require.NoError(t, err)

	updated, err := svc.RecordProgress(ctx, plan.ID, "aws-ccp-topic-3", 50, "", "halfway")
	require.NoError(t, err)
	topic, ok := updated.Topic("aws-ccp-topic-3")
	require.True(t, ok)
	assert.Equal(t, studyplan.StatusInProgress, topic.Status)
	assert.Equal(t, 18, updated.Progress.Percentage) // 6 of 34 hours

	stored, err := svc.Get(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 18, stored.Progress.Percentage)

	events, err := svc.History(ctx, plan.ID, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	last := events[1]
	assert.Equal(t, store.ActionProgress, last.Action)
	assert.Equal(t, "aws-ccp-topic-3", last.TopicID)
	assert.Equal(t, 50, last.Progress)
	assert.Equal(t, 18, last.Percentage)
	assert.Equal(t, "halfway", last.Notes)
}

func TestRecordProgress_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.RecordProgress(ctx, "", "x", 10, "", "")
	assert.ErrorIs(t, err, ErrNoPlan)

	plan, err := svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	require.NoError(t, err)

	_, err = svc.RecordProgress(ctx, plan.ID, "nope", 10, "", "")
	assert.ErrorIs(t, err, studyplan.ErrTopicNotFound)

	_, err = svc.RecordProgress(ctx, plan.ID, "aws-ccp-topic-1", 101, "", "")
	assert.ErrorIs(t, err, studyplan.ErrInvalidProgress)

	_, err = svc.RecordProgress(ctx, "missing", "aws-ccp-topic-1", 10, "", "")
	assert.ErrorIs(t, err, store.ErrPlanNotFound)

	events, err := svc.History(ctx, plan.ID, store.QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, events, 1, "failed updates must not be recorded")
}

func TestToggleMilestone(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	require.NoError(t, err)

	updated, err := svc.ToggleMilestone(ctx, plan.ID, studyplan.MilestoneStart)
	require.NoError(t, err)
	next, ok := updated.NextMilestone()
	require.True(t, ok)
	assert.Equal(t, studyplan.MilestoneMidpoint, next.ID)

	events, err := svc.History(ctx, plan.ID, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, store.ActionMilestone, events[1].Action)
	assert.True(t, events[1].Completed)

	_, err = svc.ToggleMilestone(ctx, plan.ID, "bogus")
	assert.ErrorIs(t, err, studyplan.ErrMilestoneNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, plan.ID))

	_, err = svc.Get(ctx, plan.ID)
	assert.ErrorIs(t, err, store.ErrPlanNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, plan.ID), store.ErrPlanNotFound)
}

type failingEvents struct{}

func (failingEvents) AppendProgressEvent(context.Context, store.ProgressEventData) error {
	return errors.New("disk full")
}

func (failingEvents) QueryProgressEvents(context.Context, string, store.QueryOpts) ([]store.ProgressEvent, error) {
	return nil, nil
}

func TestEventFailureIsLoggedNotReturned(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	defer st.Close()

	core, logs := observer.New(zapcore.WarnLevel)
	svc := NewService(studyplan.NewGenerator(certification.Default()), st.PlanRepo(), failingEvents{}, zap.New(core))

	plan, err := svc.Create(context.Background(), studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)

	entries := logs.FilterMessage("append progress event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
}
