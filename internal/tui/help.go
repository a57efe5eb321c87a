package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model.
type HelpModel struct{}

type keyHelp struct {
	key  string
	desc string
}

// View renders the help screen.
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	sections = append(sections, renderHelpSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Recommendations"},
		{"3", "Trends"},
		{"4", "Sleep analysis"},
		{"?", "Help (this screen)"},
		{"esc", "Close help"},
		{"q", "Quit"},
	}))

	sections = append(sections, renderHelpSection("Data", []keyHelp{
		{"r", "Refresh (cache allowed)"},
		{"f", "Force refresh (bypass cache)"},
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHelpSection(name string, keys []keyHelp) string {
	var lines []string
	lines = append(lines, tableHeaderStyle.Render(name))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s %s",
			metricValueStyle.Width(10).Render(k.key),
			statusStyle.Render(k.desc)))
	}
	return strings.Join(lines, "\n") + "\n"
}
