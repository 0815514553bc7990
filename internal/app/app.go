package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/resources"
	"github.com/abhisek/certplan/internal/router"
	"github.com/abhisek/certplan/internal/screen"
	"github.com/abhisek/certplan/internal/screens/home"
	"github.com/abhisek/certplan/internal/screens/welcome"
	"github.com/abhisek/certplan/internal/tracker"
	"github.com/abhisek/certplan/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Catalog     *certification.Catalog
	Library     *resources.Library
	Service     *tracker.Service // nil runs without stored plans
	WeeklyHours float64
	Now         func() time.Time
	Logger      *zap.Logger
	SkipSplash  bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *zap.Logger
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash screen, or at
// home when the splash is skipped.
func newAppModel(opts Options) AppModel {
	if opts.Catalog == nil {
		opts.Catalog = certification.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	homeFactory := func() screen.Screen {
		return home.New(home.Options{
			Catalog:     opts.Catalog,
			Library:     opts.Library,
			Service:     opts.Service,
			WeeklyHours: opts.WeeklyHours,
			Now:         opts.Now,
		})
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(initial),
		log:    opts.Logger.Named("tui"),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case router.PushScreenMsg:
		m.log.Debug("push screen", zap.String("screen", msg.Screen.Title()), zap.Int("depth", m.router.Depth()+1))
	case router.ReplaceScreenMsg:
		m.log.Debug("replace screen", zap.String("screen", msg.Screen.Title()))
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.log.Info("starting tui", zap.Bool("storage", opts.Service != nil))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
