package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certplan/internal/ui/theme"
)

// Choice is a single-answer selector for a question.
type Choice struct {
	Question  string
	Options   []string
	Selected  int
	Submitted bool
}

// NewChoice creates a selector with the cursor on initial.
func NewChoice(question string, options []string, initial int) Choice {
	if initial < 0 || initial >= len(options) {
		initial = 0
	}
	return Choice{
		Question: question,
		Options:  options,
		Selected: initial,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Number keys jump to
// an option.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Submitted = true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(c.Options) {
				c.Selected = idx
			}
		}
	}

	return c, nil
}

// View renders the question and options.
func (c Choice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Question))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Selected {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}

// Reset clears the submitted state so the choice can be answered again.
func (c *Choice) Reset() {
	c.Submitted = false
}
