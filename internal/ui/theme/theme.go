package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette — calm writing-desk tones
var (
	Primary   = lipgloss.Color("#6366F1") // Indigo
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#EAB308") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F5F5F4") // Warm White
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Near Black
	BgCard    = lipgloss.Color("#292524") // Dark Stone
	Border    = lipgloss.Color("#44403C") // Stone
)

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
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
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

	Good = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Bad = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// RankColor returns the display color for a rank letter group.
func RankColor(r string) color.Color {
	switch {
	case r == "S":
		return Accent
	case len(r) > 0 && r[0] == 'A':
		return Success
	case len(r) > 0 && r[0] == 'B':
		return Secondary
	case len(r) > 0 && r[0] == 'C':
		return TextDim
	default:
		return Error
	}
}
