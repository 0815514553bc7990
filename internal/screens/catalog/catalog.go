package catalog

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/resources"
	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screen"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/abhisek/certplan/internal/ui/layout"
	"github.com/abhisek/certplan/internal/ui/theme"
)

type rowKind int

const (
	rowProviderHeader rowKind = iota
	rowCert
)

type row struct {
	kind     rowKind
	provider certification.Provider
	cert     *certification.Certification
	hours    float64
}

// Options configures the catalog browser. Service may be nil, in which
// case plans cannot be started from the detail screen.
type Options struct {
	Catalog     *certification.Catalog
	Library     *resources.Library
	Service     *tracker.Service
	WeeklyHours float64
	Now         func() time.Time
}

// CatalogScreen lists certifications grouped by provider.
type CatalogScreen struct {
	opts         Options
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates a new CatalogScreen.
func New(opts Options) *CatalogScreen {
	if opts.Library == nil {
		opts.Library = resources.DefaultLibrary()
	}

	var rows []row
	for _, p := range certification.AllProviders() {
		certs := opts.Catalog.ByProvider(p)
		if len(certs) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowProviderHeader, provider: p})
		for i := range certs {
			c := &certs[i]
			rows = append(rows, row{
				kind:     rowCert,
				provider: p,
				cert:     c,
				hours:    topicHours(*c),
			})
		}
	}

	s := &CatalogScreen{opts: opts, rows: rows}

	// Set cursor to first certification row
	for i, r := range s.rows {
		if r.kind == rowCert {
			s.cursor = i
			break
		}
	}

	return s
}

func topicHours(c certification.Certification) float64 {
	var total float64
	for _, t := range studyplan.EstimateTopics(c.ID, c.ExamTopics, c.Difficulty) {
		total += t.DurationHours
	}
	return total
}

func (s *CatalogScreen) Init() tea.Cmd {
	return nil
}

func (s *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextProvider()
		case "shift+tab":
			s.prevProvider()
		case "enter":
			return s, s.selectCert()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CatalogScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowProviderHeader:
			lines = append(lines, s.renderProviderHeader(r.provider, width))
		case rowCert:
			lines = append(lines, s.renderCertRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *CatalogScreen) Title() string {
	return "Certifications"
}

// KeyHints returns the key binding hints for the footer.
func (s *CatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Provider"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the certification under the cursor.
func (s *CatalogScreen) Selected() (certification.Certification, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].cert == nil {
		return certification.Certification{}, false
	}
	return *s.rows[s.cursor].cert, true
}

// moveCursor moves the cursor by delta, skipping provider headers.
func (s *CatalogScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowCert {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextProvider jumps the cursor to the first certification of the next provider.
func (s *CatalogScreen) nextProvider() {
	current := s.rows[s.cursor].provider
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowCert && s.rows[i].provider != current {
			s.cursor = i
			return
		}
	}
}

// prevProvider jumps the cursor to the first certification of the previous
// provider, or to the top of the current one.
func (s *CatalogScreen) prevProvider() {
	current := s.rows[s.cursor].provider
	target := current
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowCert && s.rows[i].provider != current {
			target = s.rows[i].provider
			break
		}
	}
	for i, r := range s.rows {
		if r.kind == rowCert && r.provider == target {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor (and its provider header when possible)
// inside the visible window.
func (s *CatalogScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowProviderHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *CatalogScreen) selectCert() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowCert || r.cert == nil {
		return nil
	}
	detail := newCertDetail(*r.cert, s.opts)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *CatalogScreen) renderProviderHeader(p certification.Provider, width int) string {
	name := strings.ToUpper(certification.ProviderDisplayName(p))
	return lipgloss.NewStyle().
		Foreground(theme.ProviderColor(string(p))).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

func (s *CatalogScreen) renderCertRow(r row, selected bool, width int) string {
	if r.cert == nil {
		return ""
	}

	level := r.cert.Level.Label()
	hours := fmt.Sprintf("~%3.0fh", r.hours)

	// Column widths
	levelWidth := 13
	hoursWidth := 6
	nameWidth := max(width-4-2-levelWidth-hoursWidth-6, 10)

	name := r.cert.Name
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "…"
	}

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	metaStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		metaStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s  %s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)),
		metaStyle.Render(fmt.Sprintf("%-*s", levelWidth, level)),
		metaStyle.Render(hours),
	)
}
