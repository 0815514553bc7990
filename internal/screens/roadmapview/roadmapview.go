package roadmapview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/roadmap"
	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screen"
	"github.com/abhisek/certplan/internal/screens/planview"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/abhisek/certplan/internal/ui/layout"
	"github.com/abhisek/certplan/internal/ui/theme"
)

type planCreatedMsg struct {
	Plan *studyplan.StudyPlan
	Err  error
}

// RoadmapScreen reviews a generated roadmap and turns steps into study plans.
type RoadmapScreen struct {
	rm          roadmap.Roadmap
	svc         *tracker.Service
	weeklyHours float64
	now         func() time.Time
	selected    int
	errMsg      string
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates a RoadmapScreen. svc may be nil, which disables plan creation.
func New(rm roadmap.Roadmap, svc *tracker.Service, weeklyHours float64, now func() time.Time) *RoadmapScreen {
	return &RoadmapScreen{rm: rm, svc: svc, weeklyHours: weeklyHours, now: now}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return nil
}

func (s *RoadmapScreen) Title() string {
	return "Your Roadmap"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	if s.svc == nil || len(s.rm.Steps) == 0 {
		return []layout.KeyHint{{Key: "Esc", Description: "Home"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Step"},
		{Key: "Enter", Description: "Plan step"},
		{Key: "a", Description: "Plan all"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planCreatedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		next := planview.New(s.svc, msg.Plan.ID, s.now)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rm.Steps)-1 {
				s.selected++
			}
		case "enter":
			if len(s.rm.Steps) > 0 {
				return s, s.createPlan([]string{s.rm.Steps[s.selected].Certification.ID}, "")
			}
		case "a":
			if len(s.rm.Steps) > 0 {
				name := fmt.Sprintf("%s Roadmap", certification.RoleDisplayName(s.rm.Goal.Role))
				return s, s.createPlan(s.rm.CertificationIDs(), name)
			}
		}
	}
	return s, nil
}

func (s *RoadmapScreen) createPlan(ids []string, name string) tea.Cmd {
	if s.svc == nil {
		return nil
	}
	svc, hours := s.svc, s.weeklyHours
	return func() tea.Msg {
		plan, err := svc.Create(context.Background(), studyplan.Request{
			CertificationIDs: ids,
			WeeklyHours:      hours,
			Name:             name,
		})
		return planCreatedMsg{Plan: plan, Err: err}
	}
}

func (s *RoadmapScreen) View(width, height int) string {
	rm := s.rm
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(certification.RoleDisplayName(rm.Goal.Role)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s learner  ·  %.0f hours over %d weeks at %gh/week",
			rm.Experience.Label(), rm.TotalHours, rm.TotalWeeks, s.weeklyHours)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, deadlineLine(rm)))
	b.WriteString("\n\n")

	if len(rm.Steps) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing left to earn for this goal."))
		b.WriteString("\n")
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 72), 0)))

	for i, step := range rm.Steps {
		c := step.Certification
		prefix := "  "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			nameStyle = nameStyle.Foreground(theme.Primary).Bold(true)
		}
		marker := lipgloss.NewStyle().Foreground(theme.ProviderColor(string(c.Provider))).Render("■")
		target := ""
		if step.Target {
			target = lipgloss.NewStyle().Foreground(theme.Accent).Render("  ★ target")
		}

		b.WriteString(fmt.Sprintf("  %s%d. %s %s%s\n", prefix, i+1, marker, nameStyle.Render(c.Name), target))
		b.WriteString(theme.Dim.Render(fmt.Sprintf("        weeks %d-%d  ·  %.0fh  ·  %s",
			step.StartWeek, step.EndWeek, step.Hours, step.Reason)))
		b.WriteString("\n")
	}

	if len(rm.Skipped) > 0 {
		b.WriteString("\n")
		b.WriteString("  " + divider + "\n")
		b.WriteString(theme.Section.Render("  Skipped"))
		b.WriteString("\n")
		for _, sk := range rm.Skipped {
			b.WriteString(theme.Dim.Render(fmt.Sprintf("    %s: %s", sk.CertificationID, sk.Reason)))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func deadlineLine(rm roadmap.Roadmap) string {
	switch {
	case rm.Goal.TargetMonths == 0:
		return theme.Dim.Render("No deadline set")
	case rm.FitsTarget:
		return lipgloss.NewStyle().Foreground(theme.Success).Render(
			fmt.Sprintf("✓ Fits your %d-month target (%d weeks)", rm.Goal.TargetMonths, rm.TargetWeeks))
	default:
		return theme.Warning.Render(
			fmt.Sprintf("! Needs %d weeks, %d more than your %d-month target",
				rm.TotalWeeks, rm.TotalWeeks-rm.TargetWeeks, rm.Goal.TargetMonths))
	}
}
