package wizard

import (
	"reflect"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/roadmap"
	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screens/roadmapview"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

var enter = tea.KeyPressMsg{Code: tea.KeyEnter}

func newTestWizard() *WizardScreen {
	return New(Options{Catalog: certification.Default(), WeeklyHours: 10})
}

// answer picks option n (1-based) on the current choice step.
func answer(w *WizardScreen, n rune) {
	w.Update(keyPress(n))
	w.Update(enter)
}

func answerAll(w *WizardScreen) {
	for range roadmap.AllDomains() {
		answer(w, '2') // Beginner
	}
	answer(w, '1') // Cloud Architect
	answer(w, '2') // AWS
	answer(w, '1') // No deadline
}

func TestWizard_StepCount(t *testing.T) {
	w := newTestWizard()
	if got, want := len(w.steps), len(roadmap.AllDomains())+4; got != want {
		t.Errorf("steps = %d, want %d", got, want)
	}
	if !strings.Contains(w.View(100, 30), "Step 1 of") {
		t.Error("expected step counter in view")
	}
}

func TestWizard_RecordsAnswers(t *testing.T) {
	w := newTestWizard()
	answerAll(w)

	if w.steps[w.current].kind != stepHours {
		t.Fatalf("expected to reach the hours step, at %d", w.current)
	}
	for _, d := range roadmap.AllDomains() {
		if w.ratings[d] != 1 {
			t.Errorf("rating[%s] = %d, want 1", d, w.ratings[d])
		}
	}
	if w.role != certification.RoleCloudArchitect {
		t.Errorf("role = %s", w.role)
	}
	if w.provider != certification.ProviderAWS {
		t.Errorf("provider = %s", w.provider)
	}
	if w.deadline != 0 {
		t.Errorf("deadline = %d, want 0", w.deadline)
	}
	if got := w.Assessment().WeeklyHours; got != 10 {
		t.Errorf("prefilled hours = %g, want 10", got)
	}
}

func TestWizard_FinishReplacesWithRoadmap(t *testing.T) {
	w := newTestWizard()
	answerAll(w)

	_, cmd := w.Update(enter)
	if cmd == nil {
		t.Fatalf("expected navigation, error: %s", w.errMsg)
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := replace.Screen.(*roadmapview.RoadmapScreen); !ok {
		t.Errorf("expected roadmap screen, got %T", replace.Screen)
	}

	want := []string{"aws-ccp", "aws-saa", "aws-sap"}
	if got := w.generated.CertificationIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("roadmap = %v, want %v", got, want)
	}
}

func TestWizard_RejectsBadHours(t *testing.T) {
	w := newTestWizard()
	answerAll(w)

	for _, v := range []string{"", "0", "200"} {
		w.hours.SetValue(v)
		if _, cmd := w.Update(enter); cmd != nil {
			t.Errorf("hours %q: expected no navigation", v)
		}
		if w.hours.Error() == "" {
			t.Errorf("hours %q: expected validation error", v)
		}
	}
}

func TestWizard_HoursInputIgnoresLetters(t *testing.T) {
	w := newTestWizard()
	answerAll(w)

	w.Update(keyPress('x'))
	if got := w.hours.Value(); got != "10" {
		t.Errorf("hours = %q, want 10", got)
	}
}

func TestWizard_ShiftTabGoesBack(t *testing.T) {
	w := newTestWizard()
	answer(w, '4')
	answer(w, '3')

	w.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if w.current != 1 {
		t.Fatalf("current = %d, want 1", w.current)
	}
	answer(w, '1')
	if w.current != 2 {
		t.Errorf("current = %d, want 2", w.current)
	}
	if got := w.ratings[roadmap.AllDomains()[1]]; got != 0 {
		t.Errorf("re-answered rating = %d, want 0", got)
	}
	if got := w.ratings[roadmap.AllDomains()[0]]; got != 3 {
		t.Errorf("first rating = %d, want 3", got)
	}

	// Shift+Tab on the first step stays put.
	w.current = 0
	w.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if w.current != 0 {
		t.Errorf("current = %d, want 0", w.current)
	}
}

func TestWizard_KeyHints(t *testing.T) {
	w := newTestWizard()
	if got := len(w.KeyHints()); got != 3 {
		t.Errorf("first step hints = %d, want 3", got)
	}
	answerAll(w)
	for _, h := range w.KeyHints() {
		if h.Key == "↑↓" {
			t.Error("hours step should not offer choice navigation")
		}
	}
}
