package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"vitals/internal/health"
	"vitals/internal/scoring"
	"vitals/internal/service"
)

// DashboardModel renders the assessment overview.
type DashboardModel struct {
	result *service.RunResult
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.result == nil {
		return "\n  No data yet. Press 'r' to run an assessment."
	}

	assessment := m.result.Assessment
	if assessment.Status == scoring.StatusNoData {
		return errorStyle.Render("\n  No usable data across any metric.") +
			statusStyle.Render("\n  Check the vendor connection, then press 'f' to force a refresh.\n")
	}

	var sections []string

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderScoreCard(assessment), "  ", m.renderKeyMetricsCard())
	sections = append(sections, topRow)

	sections = append(sections, m.renderDomains(assessment))

	if line := m.renderDegradation(); line != "" {
		sections = append(sections, line)
	}

	sections = append(sections, statusStyle.Render(
		"Press 'r' to refresh, 'f' to force refresh, '2' for recommendations"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderScoreCard(a scoring.Assessment) string {
	title := cardTitleStyle.Render("Overall Fitness")

	score := *a.OverallScore
	lines := []string{
		scoreColorStyle(score).Render(fmt.Sprintf("%.0f / 100", score)) +
			statusStyle.Render("  "+string(a.Category)),
	}

	if m.result.PreviousScore != nil {
		delta := score - *m.result.PreviousScore
		note := fmt.Sprintf("%+.1f since last run", delta)
		if delta >= 0 {
			lines = append(lines, successStyle.Render(note))
		} else {
			lines = append(lines, warnStyle.Render(note))
		}
	}

	if a.Comparison != nil {
		lines = append(lines, "",
			RenderMetric("Age group", fmt.Sprintf("~p%d", a.Comparison.AgeGroup), "estimated"),
			RenderMetric("Gender", fmt.Sprintf("~p%d", a.Comparison.Gender), "estimated"),
			RenderMetric("Global", fmt.Sprintf("~p%d", a.Comparison.Global), "estimated"),
		)
	}

	if len(a.Strengths) > 0 {
		lines = append(lines, "", successStyle.Render("Strong: "+joinDomains(a.Strengths)))
	}
	if len(a.Weaknesses) > 0 {
		lines = append(lines, warnStyle.Render("Weak:   "+joinDomains(a.Weaknesses)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderKeyMetricsCard() string {
	title := cardTitleStyle.Render("Key Metrics")
	stats := m.result.Stats

	var lines []string

	if hr := stats[health.MetricHeartRate]; hr.RestingRate != nil {
		lines = append(lines, RenderMetric("Resting HR", fmt.Sprintf("%.0f bpm", *hr.RestingRate), ""))
	}
	if steps := stats[health.MetricSteps]; steps.WeeklyAvg != nil {
		lines = append(lines, RenderMetric("Steps/day",
			humanize.Comma(int64(*steps.WeeklyAvg)), ""))
	}
	if sleep := stats[health.MetricSleep]; sleep.SleepQuality != nil {
		lines = append(lines, RenderMetric("Sleep quality", fmt.Sprintf("%.0f / 100", *sleep.SleepQuality), ""))
	}
	if vo2 := stats[health.MetricVO2Max]; vo2.Count > 0 {
		lines = append(lines, RenderMetric("VO2max", fmt.Sprintf("%.1f", vo2.Latest), "ml/kg/min"))
	}
	if hrv := stats[health.MetricHRV]; hrv.Count > 0 {
		lines = append(lines, RenderMetric("HRV", fmt.Sprintf("%.0f ms", hrv.Recent.Avg), "7d avg"))
	}

	if len(lines) == 0 {
		lines = append(lines, statusStyle.Render("No metric data"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderDomains(a scoring.Assessment) string {
	title := cardTitleStyle.Render("Domains")

	header := tableHeaderStyle.Render(fmt.Sprintf("%-18s  %5s  %-14s  %s",
		"Domain", "Score", "Category", "Sub-scores"))

	rows := []string{header}
	for _, domain := range scoring.DomainOrder {
		ds, ok := a.Domains[domain]
		if !ok {
			rows = append(rows, statusStyle.Render(fmt.Sprintf("%-18s  %5s  %-14s  %s",
				domainLabel(domain), "-", "no data", "")))
			continue
		}

		names := make([]string, 0, len(ds.SubScores))
		for name := range ds.SubScores {
			names = append(names, name)
		}
		sort.Strings(names)

		subs := make([]string, len(names))
		for i, name := range names {
			subs[i] = fmt.Sprintf("%s %.0f", name, ds.SubScores[name])
		}

		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-18s  %5.0f  %-14s  %s",
			domainLabel(domain), ds.Score, string(ds.Category), strings.Join(subs, ", "))))
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

func (m DashboardModel) renderDegradation() string {
	var parts []string
	if n := len(m.result.FetchErrors); n > 0 {
		parts = append(parts, fmt.Sprintf("%d metric(s) unavailable", n))
	}

	var hard int
	for _, issue := range m.result.Issues {
		if issue.Severity == health.SeverityError {
			hard++
		}
	}
	if hard > 0 {
		parts = append(parts, fmt.Sprintf("%d sample(s) rejected as implausible", hard))
	}
	if soft := len(m.result.Issues) - hard; soft > 0 {
		parts = append(parts, fmt.Sprintf("%d sample(s) dropped as malformed", soft))
	}

	if len(parts) == 0 {
		return ""
	}
	return warnStyle.Render("Degraded: " + strings.Join(parts, ", "))
}

func domainLabel(d scoring.Domain) string {
	return strings.ReplaceAll(string(d), "_", " ")
}

func joinDomains(domains []scoring.Domain) string {
	parts := make([]string, len(domains))
	for i, d := range domains {
		parts[i] = domainLabel(d)
	}
	return strings.Join(parts, ", ")
}
