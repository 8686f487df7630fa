// Package theme holds the lipgloss styles the deal inspector renders
// with. Trimmed from a full game-UI theme (menu items, lesson-visual
// annotations, suit-selector highlights) down to what a read-only
// solved-deal viewer actually uses.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual styling for the inspector.
type Theme struct {
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style

	Primary lipgloss.Style
	Muted   lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style

	Border   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Help     lipgloss.Style

	WinnerHighlight lipgloss.Style
}

// Default returns the default theme.
func Default() *Theme {
	return &Theme{
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E74C3C")),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2C3E50")),

		Primary: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95A5A6")),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#27AE60")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E74C3C")),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3498DB")).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3498DB")).
			Bold(true).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7F8C8D")).
			Italic(true),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2C3E50")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95A5A6")).
			Italic(true),

		WinnerHighlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#27AE60")).
			Bold(true),
	}
}

// Current holds the active theme.
var Current = Default()
