package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles degrade to plain text when stdout is not a color terminal.
var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
)

func renderBanner(title string) string {
	return bannerStyle.Render(title)
}

func renderSuccess(msg string) string {
	return successStyle.Render(msg)
}
