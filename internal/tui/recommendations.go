package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"vitals/internal/scoring"
	"vitals/internal/service"
)

// RecommendationsModel renders the generated recommendations.
type RecommendationsModel struct {
	result *service.RunResult
}

// View renders the recommendations screen.
func (m RecommendationsModel) View() string {
	if m.result == nil {
		return "\n  No data yet. Press 'r' to run an assessment."
	}

	recs := m.result.Assessment.Recommendations
	if len(recs) == 0 {
		return successStyle.Render("\n  All domains at or above target. Nothing to recommend.\n")
	}

	var sections []string
	for _, rec := range recs {
		sections = append(sections, renderRecommendation(rec))
	}
	sections = append(sections, statusStyle.Render("Press '1' for dashboard"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderRecommendation(rec scoring.Recommendation) string {
	prioStyle := warnStyle
	if rec.Priority == scoring.PriorityHigh {
		prioStyle = errorStyle
	}

	title := cardTitleStyle.Render(rec.Title) +
		prioStyle.Render(fmt.Sprintf("  [%s]", rec.Priority)) +
		statusStyle.Render("  "+domainLabel(rec.Domain))

	lines := []string{
		rec.Description,
		"",
		RenderMetric("Expected impact", rec.ExpectedImpact, ""),
		RenderMetric("Timeframe", rec.Timeframe, ""),
		"",
	}
	for _, action := range rec.Actions {
		lines = append(lines, "  • "+action)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(72).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}
