package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"vitals/internal/analysis"
	"vitals/internal/health"
	"vitals/internal/service"
)

// historyChartLimit caps how many stored runs the chart shows.
const historyChartLimit = 30

// TrendsModel renders metric trend labels and the score history chart.
type TrendsModel struct {
	result      *service.RunResult
	assessments *service.AssessmentService
}

// NewTrendsModel creates the trends view.
func NewTrendsModel(result *service.RunResult, assessments *service.AssessmentService) TrendsModel {
	return TrendsModel{result: result, assessments: assessments}
}

// View renders the trends screen.
func (m TrendsModel) View() string {
	if m.result == nil {
		return "\n  No data yet. Press 'r' to run an assessment."
	}

	var sections []string

	if chart := m.renderHistoryChart(); chart != "" {
		sections = append(sections, chart)
	}
	sections = append(sections, m.renderMetricTrends())
	sections = append(sections, statusStyle.Render("Press '1' for dashboard"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m TrendsModel) renderHistoryChart() string {
	snaps, err := m.assessments.History(historyChartLimit)
	if err != nil || len(snaps) < 3 {
		return ""
	}

	// Oldest first for plotting.
	scores := make([]float64, 0, len(snaps))
	for i := len(snaps) - 1; i >= 0; i-- {
		if snaps[i].OverallScore != nil {
			scores = append(scores, *snaps[i].OverallScore)
		}
	}
	if len(scores) < 3 {
		return ""
	}

	title := cardTitleStyle.Render("Overall Score History")
	graph := asciigraph.Plot(scores,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m TrendsModel) renderMetricTrends() string {
	title := cardTitleStyle.Render("Metric Trends")

	trends := m.result.Assessment.Trends
	if len(trends) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title,
			statusStyle.Render("Not enough history for trend labels")))
	}

	order := []health.MetricType{
		health.MetricHeartRate,
		health.MetricHRV,
		health.MetricVO2Max,
		health.MetricSteps,
		health.MetricExerciseMinutes,
		health.MetricSleep,
		health.MetricWeight,
		health.MetricBodyFat,
	}

	var rows []string
	for _, metric := range order {
		trend, ok := trends[metric]
		if !ok {
			continue
		}
		rows = append(rows, RenderMetric(string(metric), trendLabel(trend), ""))
	}
	for metric, trend := range trends {
		if !contains(order, metric) {
			rows = append(rows, RenderMetric(string(metric), trendLabel(trend), ""))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func trendLabel(t analysis.Trend) string {
	switch t {
	case analysis.TrendImproving:
		return successStyle.Render("↑ improving")
	case analysis.TrendDeclining:
		return errorStyle.Render("↓ declining")
	default:
		return statusStyle.Render("→ stable")
	}
}

func contains(list []health.MetricType, m health.MetricType) bool {
	for _, v := range list {
		if v == m {
			return true
		}
	}
	return false
}
