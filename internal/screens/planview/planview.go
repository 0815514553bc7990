package planview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screen"
	"github.com/abhisek/certplan/internal/screens/history"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/abhisek/certplan/internal/ui/components"
	"github.com/abhisek/certplan/internal/ui/layout"
	"github.com/abhisek/certplan/internal/ui/theme"
)

// progressStep is how far one +/- keypress moves a topic.
const progressStep = 25

type planLoadedMsg struct {
	Plan *studyplan.StudyPlan
	Err  error
}

// PlanScreen shows one study plan and records progress against it.
type PlanScreen struct {
	svc    *tracker.Service
	planID string
	now    func() time.Time

	plan     *studyplan.StudyPlan
	selected int
	week     int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)
var _ screen.Resumer = (*PlanScreen)(nil)
var _ screen.StatusProvider = (*PlanScreen)(nil)

// New creates a PlanScreen for planID, or the latest plan when planID is
// empty.
func New(svc *tracker.Service, planID string, now func() time.Time) *PlanScreen {
	if now == nil {
		now = time.Now
	}
	return &PlanScreen{svc: svc, planID: planID, now: now}
}

func (s *PlanScreen) Init() tea.Cmd {
	return s.load()
}

// Resume reloads the plan in case it changed underneath.
func (s *PlanScreen) Resume() tea.Cmd {
	return s.load()
}

func (s *PlanScreen) load() tea.Cmd {
	svc, id := s.svc, s.planID
	return func() tea.Msg {
		plan, err := svc.Get(context.Background(), id)
		return planLoadedMsg{Plan: plan, Err: err}
	}
}

func (s *PlanScreen) Title() string {
	if s.plan != nil {
		return s.plan.Name
	}
	return "Study Plan"
}

// HeaderStatus shows the plan's completion.
func (s *PlanScreen) HeaderStatus() string {
	if s.plan == nil {
		return ""
	}
	return fmt.Sprintf("%d%% complete", s.plan.Progress.Percentage)
}

func (s *PlanScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Topic"},
		{Key: "+/-", Description: "Progress"},
		{Key: "c", Description: "Complete"},
		{Key: "m", Description: "Milestone"},
		{Key: "←→", Description: "Week"},
		{Key: "h", Description: "History"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.setPlan(msg.Plan)
		return s, nil

	case tea.KeyMsg:
		if s.plan == nil {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.plan.Topics)-1 {
				s.selected++
			}
		case "left":
			if s.week > 1 {
				s.week--
			}
		case "right":
			if s.week < s.plan.TotalWeeks {
				s.week++
			}
		case "+", "=":
			return s, s.adjust(progressStep)
		case "-":
			return s, s.adjust(-progressStep)
		case "c":
			return s, s.setTopicProgress(100)
		case "m":
			return s, s.toggleMilestone()
		case "h":
			h := history.New(s.svc, s.plan.ID)
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
		}
	}
	return s, nil
}

func (s *PlanScreen) setPlan(p *studyplan.StudyPlan) {
	first := s.plan == nil || s.plan.ID != p.ID
	s.plan = p
	s.planID = p.ID
	if first {
		s.week = p.CurrentWeek(s.now())
		s.selected = 0
	}
	if s.selected >= len(p.Topics) {
		s.selected = max(len(p.Topics)-1, 0)
	}
}

func (s *PlanScreen) adjust(delta int) tea.Cmd {
	if len(s.plan.Topics) == 0 {
		return nil
	}
	t := s.plan.Topics[s.selected]
	next := min(max(t.Progress+delta, 0), 100)
	if next == t.Progress {
		return nil
	}
	return s.setTopicProgress(next)
}

func (s *PlanScreen) setTopicProgress(progress int) tea.Cmd {
	if len(s.plan.Topics) == 0 {
		return nil
	}
	svc, planID, topicID := s.svc, s.plan.ID, s.plan.Topics[s.selected].ID
	return func() tea.Msg {
		plan, err := svc.RecordProgress(context.Background(), planID, topicID, progress, "", "")
		return planLoadedMsg{Plan: plan, Err: err}
	}
}

func (s *PlanScreen) toggleMilestone() tea.Cmd {
	m, ok := s.plan.NextMilestone()
	if !ok {
		return nil
	}
	svc, planID := s.svc, s.plan.ID
	return func() tea.Msg {
		plan, err := svc.ToggleMilestone(context.Background(), planID, m.ID)
		return planLoadedMsg{Plan: plan, Err: err}
	}
}

func (s *PlanScreen) View(width, height int) string {
	if s.errMsg != "" && s.plan == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading plan...")
	}

	p := s.plan
	cw := min(width-4, 96)
	var b strings.Builder

	b.WriteString(theme.Title.Render("  " + p.Name))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s → %s  ·  %d weeks at %gh/week",
		p.StartDate.Format("Jan 02, 2006"), p.TargetEndDate.Format("Jan 02, 2006"),
		p.TotalWeeks, p.WeeklyHours)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("  Overall", float64(p.Progress.Percentage)/100, true, cw)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d/%d topics complete  ·  %.1f of %.1f hours",
		p.Progress.CompletedTopics, p.Progress.TotalTopics, p.Progress.CompletedHours, p.Progress.TotalHours)))
	b.WriteString("\n")
	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Section.Render("  Topics"))
	b.WriteString("\n")
	for i, t := range p.Topics {
		b.WriteString(s.renderTopic(t, i == s.selected, cw))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.renderWeek())
	b.WriteString("\n")
	b.WriteString(renderMilestones(p.Milestones))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, b.String())
}

func statusIcon(st studyplan.Status) string {
	switch st {
	case studyplan.StatusCompleted:
		return "●"
	case studyplan.StatusInProgress:
		return "◐"
	default:
		return "○"
	}
}

func (s *PlanScreen) renderTopic(t studyplan.Topic, selected bool, width int) string {
	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		cursor = "▸ "
		nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
	}

	nameWidth := max(width-40, 16)
	name := t.Name
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	icon := lipgloss.NewStyle().Foreground(theme.StatusColor(string(t.Status))).Render(statusIcon(t.Status))
	weeks := fmt.Sprintf("wk %d-%d", t.StartWeek, t.EndWeek)
	if t.StartWeek == t.EndWeek {
		weeks = fmt.Sprintf("wk %d", t.StartWeek)
	}

	return fmt.Sprintf("  %s%s %s  %s  %s",
		cursor, icon,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		theme.Dim.Render(fmt.Sprintf("%5.1fh  %-9s", t.DurationHours, weeks)),
		lipgloss.NewStyle().Foreground(theme.StatusColor(string(t.Status))).Render(fmt.Sprintf("%3d%%", t.Progress)))
}

func (s *PlanScreen) renderWeek() string {
	p := s.plan
	var b strings.Builder
	if p.TotalWeeks == 0 {
		return ""
	}

	label := fmt.Sprintf("  Week %d of %d", s.week, p.TotalWeeks)
	if s.week == p.CurrentWeek(s.now()) {
		label += "  (this week)"
	}
	b.WriteString(theme.Section.Render(label))
	b.WriteString("\n")
	for _, e := range p.EntriesForWeek(s.week) {
		b.WriteString(theme.Body.Render(fmt.Sprintf("    %-40s %5.1fh", e.Topic, e.Hours)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderMilestones(ms []studyplan.Milestone) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render("  Milestones"))
	b.WriteString("\n")
	for _, m := range ms {
		mark := theme.Dim.Render("[ ]")
		style := theme.Body
		if m.Completed {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("[✓]")
			style = theme.Dim
		}
		b.WriteString(fmt.Sprintf("    %s %s", mark, style.Render(fmt.Sprintf("Week %-3d %s", m.Week, m.Name))))
		b.WriteString("\n")
	}
	return b.String()
}
