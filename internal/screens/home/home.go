package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/resources"
	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screen"
	"github.com/abhisek/certplan/internal/screens/catalog"
	"github.com/abhisek/certplan/internal/screens/history"
	"github.com/abhisek/certplan/internal/screens/placeholder"
	"github.com/abhisek/certplan/internal/screens/planview"
	"github.com/abhisek/certplan/internal/screens/wizard"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/abhisek/certplan/internal/ui/components"
	"github.com/abhisek/certplan/internal/ui/theme"
)

// Menu labels.
const (
	LabelRoadmap = "Plan my roadmap"
	LabelPlan    = "My study plan"
	LabelCatalog = "Browse certifications"
	LabelHistory = "Plan history"
	LabelQuit    = "Quit"
)

const noPlanMessage = "No study plan yet.\n\nPlan a roadmap or pick a certification to get started."

// Options holds what the home screen hands to the screens it opens.
type Options struct {
	Catalog     *certification.Catalog
	Library     *resources.Library
	Service     *tracker.Service // nil disables stored plans
	WeeklyHours float64
	Now         func() time.Time
}

type latestLoadedMsg struct {
	Plan *studyplan.StudyPlan
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts   Options
	menu   components.Menu
	latest *studyplan.StudyPlan
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	h := &HomeScreen{opts: opts}

	push := func(s screen.Screen) tea.Cmd {
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}

	items := []components.MenuItem{
		{Label: LabelRoadmap, Hint: "assess your skills and pick a path", Action: func() tea.Cmd {
			return push(wizard.New(wizard.Options{
				Catalog:     opts.Catalog,
				Service:     opts.Service,
				WeeklyHours: opts.WeeklyHours,
				Now:         opts.Now,
			}))
		}},
		{Label: LabelPlan, Action: func() tea.Cmd {
			if opts.Service == nil || h.latest == nil {
				return push(placeholder.New("Study Plan", noPlanMessage))
			}
			return push(planview.New(opts.Service, h.latest.ID, opts.Now))
		}},
		{Label: LabelCatalog, Action: func() tea.Cmd {
			return push(catalog.New(catalog.Options{
				Catalog:     opts.Catalog,
				Library:     opts.Library,
				Service:     opts.Service,
				WeeklyHours: opts.WeeklyHours,
				Now:         opts.Now,
			}))
		}},
		{Label: LabelHistory, Action: func() tea.Cmd {
			if opts.Service == nil || h.latest == nil {
				return push(placeholder.New("History", noPlanMessage))
			}
			return push(history.New(opts.Service, h.latest.ID))
		}},
		{Label: LabelQuit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLatest()
}

// Resume refreshes the plan summary after returning from another screen.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadLatest()
}

func (h *HomeScreen) loadLatest() tea.Cmd {
	if h.opts.Service == nil {
		return nil
	}
	svc := h.opts.Service
	return func() tea.Msg {
		plan, err := svc.Get(context.Background(), "")
		if err != nil {
			return latestLoadedMsg{}
		}
		return latestLoadedMsg{Plan: plan}
	}
}

// Latest returns the most recent plan, if one has been loaded.
func (h *HomeScreen) Latest() *studyplan.StudyPlan {
	return h.latest
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(latestLoadedMsg); ok {
		h.latest = m.Plan
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(width-4, 64)

	var sections []string
	sections = append(sections,
		theme.Title.Width(cw).Render("certplan"),
		theme.Subtitle.Width(cw).Render("cloud certification study planner"),
	)
	sections = append(sections, h.renderStats(cw))
	sections = append(sections, theme.Card.Width(cw).Render(strings.TrimRight(h.menu.View(), "\n")))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n\n"))
}

func (h *HomeScreen) renderStats(width int) string {
	p := h.latest
	if p == nil {
		return theme.Subtitle.Width(width).Render("No active plan")
	}

	var b strings.Builder
	b.WriteString(theme.Selected.Render(p.Name))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(p.Progress.Percentage)/100, true, width-6)
	b.WriteString(bar.View())
	b.WriteString("\n")

	week := p.CurrentWeek(h.opts.Now())
	line := fmt.Sprintf("Week %d of %d", week, p.TotalWeeks)
	if m, ok := p.NextMilestone(); ok {
		line += fmt.Sprintf("  ·  next: %s (week %d)", m.Name, m.Week)
	}
	b.WriteString(theme.Dim.Render(line))

	return theme.Card.Width(width).Render(b.String())
}

// HeaderStatus shows the latest plan's completion.
func (h *HomeScreen) HeaderStatus() string {
	if h.latest == nil {
		return ""
	}
	return fmt.Sprintf("%d%% complete", h.latest.Progress.Percentage)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
