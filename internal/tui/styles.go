package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the quiz views
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Progress lipgloss.Style
	Score    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
}

func DefaultStyles() Styles {
	primary := lipgloss.Color("#7C3AED")
	muted := lipgloss.Color("#6B7280")

	return Styles{
		Header: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2).
			Bold(true),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1F2937")).
			Bold(true).
			MarginBottom(1),
		Option: lipgloss.NewStyle().
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Progress: lipgloss.NewStyle().
			Foreground(primary),
		Score: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16A34A")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC2626")),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#DDD6FE")).
			Padding(0, 1),
	}
}
