package planview

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screens/history"
	"github.com/abhisek/certplan/internal/store"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
)

var testNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newTestService(t *testing.T) *tracker.Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "plan.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	gen := studyplan.NewGenerator(certification.Default())
	gen.Now = func() time.Time { return testNow }
	return tracker.NewService(gen, st.PlanRepo(), st.EventRepo(), nil)
}

func newLoadedScreen(t *testing.T) (*PlanScreen, *tracker.Service) {
	t.Helper()
	svc := newTestService(t)
	plan, err := svc.Create(context.Background(), studyplan.Request{
		CertificationIDs: []string{"aws-ccp"},
		WeeklyHours:      10,
	})
	if err != nil {
		t.Fatalf("create plan: %v", err)
	}

	s := New(svc, plan.ID, func() time.Time { return testNow })
	run(t, s, s.Init())
	if s.plan == nil {
		t.Fatalf("plan not loaded: %s", s.errMsg)
	}
	return s, svc
}

// run executes cmd and feeds its message back into the screen.
func run(t *testing.T, s *PlanScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	s.Update(cmd())
}

func TestPlanScreen_Loads(t *testing.T) {
	s, _ := newLoadedScreen(t)

	if got, want := s.Title(), "AWS Certified Cloud Practitioner Study Plan"; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	if s.week != 1 {
		t.Errorf("week = %d, want 1", s.week)
	}
	view := s.View(100, 40)
	for _, want := range []string{"Topics", "Milestones", "Week 1 of 4", "Cloud Concepts"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPlanScreen_LatestWhenNoID(t *testing.T) {
	svc := newTestService(t)
	plan, err := svc.Create(context.Background(), studyplan.Request{CertificationIDs: []string{"aws-ccp"}, WeeklyHours: 10})
	if err != nil {
		t.Fatal(err)
	}

	s := New(svc, "", nil)
	run(t, s, s.Init())
	if s.plan == nil || s.plan.ID != plan.ID {
		t.Fatalf("expected latest plan %s to load", plan.ID)
	}
}

func TestPlanScreen_IncreaseProgress(t *testing.T) {
	s, svc := newLoadedScreen(t)

	_, cmd := s.Update(keyPress('+'))
	run(t, s, cmd)

	topic := s.plan.Topics[0]
	if topic.Progress != 25 {
		t.Errorf("progress = %d, want 25", topic.Progress)
	}
	if topic.Status != studyplan.StatusInProgress {
		t.Errorf("status = %s, want in-progress", topic.Status)
	}

	stored, err := svc.Get(context.Background(), s.plan.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Topics[0].Progress != 25 {
		t.Errorf("stored progress = %d, want 25", stored.Topics[0].Progress)
	}
}

func TestPlanScreen_DecreaseAtZeroIsNoop(t *testing.T) {
	s, _ := newLoadedScreen(t)

	if _, cmd := s.Update(keyPress('-')); cmd != nil {
		t.Error("expected no command when progress is already 0")
	}
}

func TestPlanScreen_CompleteSelectedTopic(t *testing.T) {
	s, _ := newLoadedScreen(t)

	s.Update(keyPress('j'))
	_, cmd := s.Update(keyPress('c'))
	run(t, s, cmd)

	if s.selected != 1 {
		t.Fatalf("selected = %d, want 1", s.selected)
	}
	topic := s.plan.Topics[1]
	if topic.Progress != 100 || topic.Status != studyplan.StatusCompleted {
		t.Errorf("topic = %d%% %s, want 100%% completed", topic.Progress, topic.Status)
	}
	if s.plan.Progress.CompletedTopics != 1 {
		t.Errorf("completed topics = %d, want 1", s.plan.Progress.CompletedTopics)
	}
}

func TestPlanScreen_ToggleMilestones(t *testing.T) {
	s, _ := newLoadedScreen(t)

	_, cmd := s.Update(keyPress('m'))
	run(t, s, cmd)
	next, _ := s.plan.NextMilestone()
	if next.ID != studyplan.MilestoneMidpoint {
		t.Errorf("next milestone = %s, want midpoint", next.ID)
	}

	_, cmd = s.Update(keyPress('m'))
	run(t, s, cmd)
	next, _ = s.plan.NextMilestone()
	if next.ID != studyplan.MilestonePracticeExam {
		t.Errorf("next milestone = %s, want practice exam", next.ID)
	}
}

func TestPlanScreen_WeekNavigationClamps(t *testing.T) {
	s, _ := newLoadedScreen(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.week != 1 {
		t.Errorf("week = %d, want 1", s.week)
	}
	for range 10 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if s.week != s.plan.TotalWeeks {
		t.Errorf("week = %d, want %d", s.week, s.plan.TotalWeeks)
	}
}

func TestPlanScreen_HistoryPushesScreen(t *testing.T) {
	s, _ := newLoadedScreen(t)

	_, cmd := s.Update(keyPress('h'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("expected history screen, got %T", push.Screen)
	}
}

func TestPlanScreen_MissingPlan(t *testing.T) {
	s := New(newTestService(t), "missing", nil)
	run(t, s, s.Init())

	if s.plan != nil {
		t.Fatal("expected no plan")
	}
	if !strings.Contains(s.View(80, 24), "Error") {
		t.Error("expected error message in view")
	}
	if _, cmd := s.Update(keyPress('+')); cmd != nil {
		t.Error("keys should be ignored without a plan")
	}
}

func TestPlanScreen_ResumeReloads(t *testing.T) {
	s, svc := newLoadedScreen(t)

	if _, err := svc.RecordProgress(context.Background(), s.plan.ID, s.plan.Topics[2].ID, 50, "", ""); err != nil {
		t.Fatal(err)
	}
	run(t, s, s.Resume())
	if s.plan.Topics[2].Progress != 50 {
		t.Errorf("progress after resume = %d, want 50", s.plan.Topics[2].Progress)
	}
}

func TestPlanScreen_HeaderStatus(t *testing.T) {
	s, _ := newLoadedScreen(t)
	if got := s.HeaderStatus(); got != "0% complete" {
		t.Errorf("HeaderStatus = %q", got)
	}
	if got := New(nil, "", nil).HeaderStatus(); got != "" {
		t.Errorf("unloaded HeaderStatus = %q, want empty", got)
	}
}
