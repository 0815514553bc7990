package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/store"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
)

func newTestService(t *testing.T) *tracker.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return tracker.NewService(studyplan.NewGenerator(certification.Default()), st.PlanRepo(), st.EventRepo(), nil)
}

func loaded(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	s.Update(cmd())
}

func TestHistoryScreen_NewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.RecordProgress(ctx, plan.ID, "aws-ccp-topic-1", 50, "", "read the whitepaper"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ToggleMilestone(ctx, plan.ID, studyplan.MilestoneStart); err != nil {
		t.Fatal(err)
	}

	s := New(svc, plan.ID)
	loaded(t, s)

	if len(s.events) != 3 {
		t.Fatalf("got %d events, want 3", len(s.events))
	}
	wantActions := []string{store.ActionMilestone, store.ActionProgress, store.ActionCreated}
	for i, want := range wantActions {
		if s.events[i].Action != want {
			t.Errorf("event %d action = %s, want %s", i, s.events[i].Action, want)
		}
	}

	view := s.View(100, 30)
	for _, want := range []string{"Start studying reached", "Cloud Concepts → 50%", "Plan created"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "read the whitepaper") {
		t.Error("expanded event should show its notes")
	}
}

func TestHistoryScreen_NoPlan(t *testing.T) {
	s := New(newTestService(t), "")
	loaded(t, s)

	if s.errMsg == "" {
		t.Error("expected an error without any plan")
	}
	if !strings.Contains(s.View(80, 24), "Error") {
		t.Error("expected error in view")
	}
}

func TestDescribe(t *testing.T) {
	plan := &studyplan.StudyPlan{
		Topics:     []studyplan.Topic{{ID: "t1", Name: "Networking"}},
		Milestones: []studyplan.Milestone{{ID: studyplan.MilestoneFinal, Name: "Final review"}},
	}
	ev := func(d store.ProgressEventData) store.ProgressEvent {
		return store.ProgressEvent{ProgressEventData: d}
	}

	tests := []struct {
		ev   store.ProgressEvent
		want string
	}{
		{ev(store.ProgressEventData{Action: store.ActionCreated}), "Plan created"},
		{ev(store.ProgressEventData{Action: store.ActionProgress, TopicID: "t1", Progress: 75}), "Networking → 75%"},
		{ev(store.ProgressEventData{Action: store.ActionProgress, TopicID: "gone", Progress: 10}), "gone → 10%"},
		{ev(store.ProgressEventData{Action: store.ActionMilestone, MilestoneID: studyplan.MilestoneFinal, Completed: true}), "Final review reached"},
		{ev(store.ProgressEventData{Action: store.ActionMilestone, MilestoneID: studyplan.MilestoneFinal}), "Final review reopened"},
	}
	for _, tt := range tests {
		if got := Describe(tt.ev, plan); got != tt.want {
			t.Errorf("Describe(%+v) = %q, want %q", tt.ev.ProgressEventData, got, tt.want)
		}
	}
}
