package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: cool blues for structure, warm accents for progress.
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Provider colors.
var (
	AWS           = lipgloss.Color("#FF9900")
	Azure         = lipgloss.Color("#0089D6")
	GCP           = lipgloss.Color("#34A853")
	VendorNeutral = lipgloss.Color("#A78BFA")
)

// ProviderColor returns the brand color for a provider ID.
func ProviderColor(provider string) color.Color {
	switch provider {
	case "aws":
		return AWS
	case "azure":
		return Azure
	case "gcp":
		return GCP
	default:
		return VendorNeutral
	}
}

// StatusColor returns the color for a topic status ID.
func StatusColor(status string) color.Color {
	switch status {
	case "completed":
		return Success
	case "in-progress":
		return Accent
	default:
		return TextDim
	}
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Dim = lipgloss.NewStyle().
		Foreground(TextDim)

	Warning = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Danger = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)
