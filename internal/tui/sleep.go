package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"vitals/internal/health"
	"vitals/internal/service"
)

// SleepModel is the sleep-only analysis screen, backed by the
// intermediate stats surface rather than a full assessment.
type SleepModel struct {
	assessments *service.AssessmentService
	report      *service.SleepReport
	loading     bool
	err         error
}

// NewSleepModel creates the sleep screen.
func NewSleepModel(assessments *service.AssessmentService) SleepModel {
	return SleepModel{assessments: assessments}
}

type sleepReportMsg struct {
	report *service.SleepReport
	err    error
}

func (m *SleepModel) load(force bool) tea.Cmd {
	m.loading = true
	m.err = nil
	assessments := m.assessments
	return func() tea.Msg {
		report, err := assessments.SleepReport(context.Background(), health.PeriodWeek, force)
		return sleepReportMsg{report: report, err: err}
	}
}

// Update handles messages.
func (m SleepModel) Update(msg tea.Msg) (SleepModel, tea.Cmd) {
	if msg, ok := msg.(sleepReportMsg); ok {
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.report = msg.report
		}
	}
	return m, nil
}

// View renders the sleep screen.
func (m SleepModel) View(sp spinner.Model) string {
	if m.loading {
		return fmt.Sprintf("\n  %s Analyzing sleep...", sp.View())
	}
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err)) +
			statusStyle.Render("\n  Press 'r' to retry")
	}
	if m.report == nil || m.report.Nights == 0 {
		return "\n  No sleep data recorded for this period."
	}

	stats := m.report.Stats
	var lines []string

	lines = append(lines,
		RenderMetric("Nights", fmt.Sprintf("%d", m.report.Nights), ""),
		RenderMetric("Last night", fmt.Sprintf("%.1f h", stats.Latest), ""),
		RenderMetric("Average", fmt.Sprintf("%.1f h", stats.Avg), ""),
		RenderMetric("Range", fmt.Sprintf("%.1f - %.1f h", stats.Min, stats.Max), ""),
	)

	if stats.SleepQuality != nil {
		lines = append(lines, RenderMetric("Quality",
			fmt.Sprintf("%.0f / 100", *stats.SleepQuality), ""))
	}
	if stats.SleepDebt != nil {
		style := successStyle
		if *stats.SleepDebt > 2 {
			style = warnStyle
		}
		lines = append(lines, metricLabelStyle.Render("Debt (7d)")+
			style.Render(fmt.Sprintf("%.1f h", *stats.SleepDebt)))
	}
	if stats.Consistency != nil {
		lines = append(lines, RenderMetric("Consistency",
			fmt.Sprintf("%.0f / 100", *stats.Consistency), ""))
	}
	lines = append(lines, RenderMetric("Trend", trendLabel(m.report.Trend), ""))

	title := cardTitleStyle.Render("Sleep Analysis")
	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	card := cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))

	footer := statusStyle.Render("Press 'r' to refresh, 'f' to force refresh")
	return lipgloss.JoinVertical(lipgloss.Left, card, footer)
}
