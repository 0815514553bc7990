// Package wizard implements the skill assessment that produces a roadmap.
package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/roadmap"
	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screen"
	"github.com/abhisek/certplan/internal/screens/roadmapview"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/abhisek/certplan/internal/ui/components"
	"github.com/abhisek/certplan/internal/ui/layout"
	"github.com/abhisek/certplan/internal/ui/theme"
)

// maxWeeklyHours is the number of hours in a week.
const maxWeeklyHours = 168

// Deadline options offered for the career goal, in months. Zero means none.
var deadlineMonths = []int{0, 3, 6, 12, 18, 24}

type stepKind int

const (
	stepRating stepKind = iota
	stepRole
	stepProvider
	stepDeadline
	stepHours
)

type step struct {
	kind   stepKind
	domain roadmap.Domain
	choice components.Choice
}

// Options configures the wizard.
type Options struct {
	Catalog     roadmap.Catalog
	Service     *tracker.Service // may be nil
	WeeklyHours float64          // prefilled answer
	Now         func() time.Time
}

// WizardScreen asks for domain ratings, a career goal and weekly hours,
// then replaces itself with the generated roadmap.
type WizardScreen struct {
	opts    Options
	steps   []step
	current int
	hours   components.TextInput

	ratings   map[roadmap.Domain]int
	role      certification.Role
	provider  certification.Provider
	deadline  int
	errMsg    string
	generated *roadmap.Roadmap
}

var _ screen.Screen = (*WizardScreen)(nil)
var _ screen.KeyHintProvider = (*WizardScreen)(nil)

// New creates a WizardScreen.
func New(opts Options) *WizardScreen {
	var steps []step
	for _, d := range roadmap.AllDomains() {
		steps = append(steps, step{
			kind:   stepRating,
			domain: d,
			choice: components.NewChoice(
				fmt.Sprintf("How would you rate your %s experience?", strings.ToLower(roadmap.DomainDisplayName(d))),
				roadmap.RatingLabels[:], 0),
		})
	}

	roles := certification.AllRoles()
	roleLabels := make([]string, len(roles))
	for i, r := range roles {
		roleLabels[i] = certification.RoleDisplayName(r)
	}
	steps = append(steps, step{kind: stepRole, choice: components.NewChoice("Which role are you working towards?", roleLabels, 0)})

	providerLabels := []string{"Any major cloud"}
	for _, p := range certification.AllProviders() {
		providerLabels = append(providerLabels, certification.ProviderDisplayName(p))
	}
	steps = append(steps, step{kind: stepProvider, choice: components.NewChoice("Which provider do you prefer?", providerLabels, 0)})

	deadlineLabels := make([]string, len(deadlineMonths))
	for i, m := range deadlineMonths {
		if m == 0 {
			deadlineLabels[i] = "No deadline"
		} else {
			deadlineLabels[i] = fmt.Sprintf("%d months", m)
		}
	}
	steps = append(steps, step{kind: stepDeadline, choice: components.NewChoice("When do you want to get there?", deadlineLabels, 0)})
	steps = append(steps, step{kind: stepHours})

	hours := components.NewTextInput("hours per week", true, 5)
	if opts.WeeklyHours > 0 {
		hours.SetValue(strconv.FormatFloat(opts.WeeklyHours, 'f', -1, 64))
	}

	return &WizardScreen{
		opts:    opts,
		steps:   steps,
		hours:   hours,
		ratings: make(map[roadmap.Domain]int),
	}
}

func (w *WizardScreen) Init() tea.Cmd {
	return nil
}

func (w *WizardScreen) Title() string {
	return "Skill Assessment"
}

func (w *WizardScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	if w.steps[w.current].kind != stepHours {
		hints = append([]layout.KeyHint{{Key: "↑↓", Description: "Choose"}}, hints...)
	}
	if w.current > 0 {
		hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel"})
}

func (w *WizardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	if kmsg.String() == "shift+tab" {
		if w.current > 0 {
			w.current--
			w.steps[w.current].choice.Reset()
			w.errMsg = ""
		}
		return w, nil
	}

	st := &w.steps[w.current]
	if st.kind == stepHours {
		if kmsg.String() == "enter" {
			return w, w.finish()
		}
		var cmd tea.Cmd
		w.hours, cmd = w.hours.Update(msg)
		return w, cmd
	}

	st.choice, _ = st.choice.Update(msg)
	if !st.choice.Submitted {
		return w, nil
	}
	w.record(*st)
	w.current++
	return w, nil
}

func (w *WizardScreen) record(st step) {
	idx := st.choice.Selected
	switch st.kind {
	case stepRating:
		w.ratings[st.domain] = idx
	case stepRole:
		w.role = certification.AllRoles()[idx]
	case stepProvider:
		w.provider = ""
		if idx > 0 {
			w.provider = certification.AllProviders()[idx-1]
		}
	case stepDeadline:
		w.deadline = deadlineMonths[idx]
	}
}

func (w *WizardScreen) finish() tea.Cmd {
	hours, err := w.hours.FloatValue()
	if err != nil || hours <= 0 || hours > maxWeeklyHours {
		w.hours.SetError(fmt.Sprintf("enter between 0 and %d hours", maxWeeklyHours))
		return nil
	}

	a := roadmap.Assessment{
		Ratings:           w.ratings,
		PreferredProvider: w.provider,
		WeeklyHours:       hours,
	}
	rm, err := roadmap.Generate(w.opts.Catalog, a, roadmap.CareerGoal{Role: w.role, TargetMonths: w.deadline})
	if err != nil {
		w.errMsg = err.Error()
		return nil
	}
	w.generated = &rm

	next := roadmapview.New(rm, w.opts.Service, hours, w.opts.Now)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// Assessment returns the answers collected so far.
func (w *WizardScreen) Assessment() roadmap.Assessment {
	hours, _ := w.hours.FloatValue()
	return roadmap.Assessment{
		Ratings:           w.ratings,
		PreferredProvider: w.provider,
		WeeklyHours:       hours,
	}
}

func (w *WizardScreen) View(width, height int) string {
	var b strings.Builder

	bar := components.NewProgressBar(
		fmt.Sprintf("Step %d of %d", w.current+1, len(w.steps)),
		float64(w.current)/float64(len(w.steps)), false, min(width-8, 60))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	st := w.steps[w.current]
	if st.kind == stepHours {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("How many hours per week can you study?"))
		b.WriteString("\n\n")
		b.WriteString(w.hours.View())
	} else {
		b.WriteString(st.choice.View())
	}

	if w.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("✗ " + w.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
