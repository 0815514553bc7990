package catalog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/resources"
	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screen"
	"github.com/abhisek/certplan/internal/screens/planview"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/ui/layout"
	"github.com/abhisek/certplan/internal/ui/theme"
)

const detailResources = 3

type planCreatedMsg struct {
	Plan *studyplan.StudyPlan
	Err  error
}

// CertDetailScreen shows details for a single certification.
type CertDetailScreen struct {
	cert   certification.Certification
	opts   Options
	topics []studyplan.Topic
	recs   []resources.Recommendation
	errMsg string
}

var _ screen.Screen = (*CertDetailScreen)(nil)
var _ screen.KeyHintProvider = (*CertDetailScreen)(nil)

func newCertDetail(cert certification.Certification, opts Options) *CertDetailScreen {
	return &CertDetailScreen{
		cert:   cert,
		opts:   opts,
		topics: studyplan.EstimateTopics(cert.ID, cert.ExamTopics, cert.Difficulty),
		recs:   opts.Library.Recommend(cert, resources.DefaultPreferences(), detailResources),
	}
}

func (d *CertDetailScreen) Init() tea.Cmd { return nil }
func (d *CertDetailScreen) Title() string { return d.cert.Name }

func (d *CertDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planCreatedMsg:
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			return d, nil
		}
		next := planview.New(d.opts.Service, msg.Plan.ID, d.opts.Now)
		return d, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }

	case tea.KeyMsg:
		if msg.String() == "p" && d.opts.Service != nil {
			return d, d.startPlan()
		}
	}
	return d, nil
}

func (d *CertDetailScreen) startPlan() tea.Cmd {
	svc, id, hours := d.opts.Service, d.cert.ID, d.opts.WeeklyHours
	return func() tea.Msg {
		plan, err := svc.Create(context.Background(), studyplan.Request{
			CertificationIDs: []string{id},
			WeeklyHours:      hours,
		})
		return planCreatedMsg{Plan: plan, Err: err}
	}
}

func (d *CertDetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if d.opts.Service != nil {
		hints = append([]layout.KeyHint{{Key: "p", Description: "Start plan"}}, hints...)
	}
	return hints
}

func (d *CertDetailScreen) View(width, height int) string {
	c := d.cert
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.ProviderColor(string(c.Provider))).
		Bold(true).
		Render("  " + c.Name))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s · %s · difficulty %d/5",
		certification.ProviderDisplayName(c.Provider), c.Level.Label(), c.Difficulty)))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	if c.ExamCostUSD > 0 {
		b.WriteString(dimStyle.Render("  Exam:      ") + valStyle.Render(fmt.Sprintf("$%d, %d minutes", c.ExamCostUSD, c.ExamMinutes)) + "\n")
	}
	if c.ValidityYears > 0 {
		b.WriteString(dimStyle.Render("  Valid for: ") + valStyle.Render(fmt.Sprintf("%d years", c.ValidityYears)) + "\n")
	}
	if len(c.Roles) > 0 {
		roles := make([]string, len(c.Roles))
		for i, r := range c.Roles {
			roles[i] = certification.RoleDisplayName(r)
		}
		b.WriteString(dimStyle.Render("  Roles:     ") + valStyle.Render(strings.Join(roles, ", ")) + "\n")
	}
	b.WriteString("\n")

	// Exam topics with estimated hours.
	var total float64
	b.WriteString(theme.Section.Render("  Exam Topics"))
	b.WriteString("\n")
	for i, t := range d.topics {
		total += t.DurationHours
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %3.0f%%  %-48s %5.1fh", c.ExamTopics[i].Weight, t.Name, t.DurationHours)))
		b.WriteString("\n")
	}
	b.WriteString(valStyle.Render(fmt.Sprintf("  %-54s %5.1fh", "Estimated total", total)))
	b.WriteString("\n\n")

	if d.opts.Catalog != nil {
		if chain, err := d.opts.Catalog.PrerequisiteChain(c.ID); err == nil && len(chain) > 0 {
			b.WriteString(theme.Section.Render("  Prerequisites"))
			b.WriteString("\n")
			for _, p := range chain {
				b.WriteString(dimStyle.Render("  ○ " + p.Name))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}

		if deps := d.opts.Catalog.Dependents(c.ID); len(deps) > 0 {
			b.WriteString(theme.Section.Render("  Unlocks"))
			b.WriteString("\n")
			for _, id := range deps {
				name := id
				if dep, ok := d.opts.Catalog.Lookup(id); ok {
					name = dep.Name
				}
				b.WriteString(dimStyle.Render("  → " + name))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	if len(d.recs) > 0 {
		b.WriteString(theme.Section.Render("  Recommended Resources"))
		b.WriteString("\n")
		for _, rec := range d.recs {
			cost := "free"
			if !rec.Resource.Free() {
				cost = fmt.Sprintf("$%.0f", rec.Resource.CostUSD)
			}
			b.WriteString(valStyle.Render(fmt.Sprintf("  • %s", rec.Resource.Title)))
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s, %s", rec.Resource.Kind.Label(), cost)))
			b.WriteString("\n")
		}
	}

	if d.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + d.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
