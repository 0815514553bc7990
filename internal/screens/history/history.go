package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screen"
	"github.com/abhisek/certplan/internal/store"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/abhisek/certplan/internal/ui/layout"
	"github.com/abhisek/certplan/internal/ui/theme"
)

// eventLimit caps how many events are loaded.
const eventLimit = 200

type historyLoadedMsg struct {
	Plan   *studyplan.StudyPlan
	Events []store.ProgressEvent
	Err    error
}

// HistoryScreen lists the recorded changes of a study plan, newest first.
type HistoryScreen struct {
	svc      *tracker.Service
	planID   string
	plan     *studyplan.StudyPlan
	events   []store.ProgressEvent
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for planID, or the latest plan when planID
// is empty.
func New(svc *tracker.Service, planID string) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		planID:   planID,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	svc, id := s.svc, s.planID
	return func() tea.Msg {
		ctx := context.Background()

		plan, err := svc.Get(ctx, id)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		events, err := svc.History(ctx, plan.ID, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Plan: plan, Err: err}
		}

		// Newest first.
		reversed := make([]store.ProgressEvent, 0, min(len(events), eventLimit))
		for i := len(events) - 1; i >= 0 && len(reversed) < eventLimit; i-- {
			reversed = append(reversed, events[i])
		}
		return historyLoadedMsg{Plan: plan, Events: reversed}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.plan = msg.Plan
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing recorded yet.")
	}

	var b strings.Builder
	b.WriteString(theme.Hint.Render("  " + s.plan.Name))
	b.WriteString("\n\n")

	for i, ev := range s.events {
		if i >= height-3 && i > s.selected {
			break
		}
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-44s %3d%%",
			prefix, ev.Timestamp.Local().Format("Jan 02 15:04"), Describe(ev, s.plan), ev.Percentage)

		style := lipgloss.NewStyle().Foreground(actionColor(ev.Action))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(theme.Dim.Render("      " + detail(ev)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Describe renders a one-line summary of an event, resolving topic and
// milestone names through plan when possible.
func Describe(ev store.ProgressEvent, plan *studyplan.StudyPlan) string {
	switch ev.Action {
	case store.ActionCreated:
		return "Plan created"
	case store.ActionProgress:
		name := ev.TopicID
		if plan != nil {
			if t, ok := plan.Topic(ev.TopicID); ok {
				name = t.Name
			}
		}
		return fmt.Sprintf("%s → %d%%", name, ev.Progress)
	case store.ActionMilestone:
		name := ev.MilestoneID
		if plan != nil {
			for _, m := range plan.Milestones {
				if m.ID == ev.MilestoneID {
					name = m.Name
				}
			}
		}
		if ev.Completed {
			return name + " reached"
		}
		return name + " reopened"
	default:
		return ev.Action
	}
}

func detail(ev store.ProgressEvent) string {
	parts := []string{fmt.Sprintf("#%d", ev.Sequence)}
	if ev.Status != "" {
		parts = append(parts, ev.Status.Label())
	}
	if ev.Notes != "" {
		parts = append(parts, fmt.Sprintf("%q", ev.Notes))
	}
	return strings.Join(parts, "  ·  ")
}

func actionColor(action string) color.Color {
	switch action {
	case store.ActionCreated:
		return theme.Secondary
	case store.ActionMilestone:
		return theme.Accent
	default:
		return theme.Text
	}
}
