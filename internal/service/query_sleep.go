package service

import (
	"context"

	"vitals/internal/analysis"
	"vitals/internal/health"
)

// SleepReport is the sleep-only analysis view for callers that want
// per-metric statistics without a full assessment.
type SleepReport struct {
	Stats  analysis.Stats
	Trend  analysis.Trend
	Issues []health.Issue

	// Nights actually recorded in the period.
	Nights int
}

// SleepReport fetches and analyzes just the sleep series.
func (s *AssessmentService) SleepReport(ctx context.Context, period health.Period, forceRefresh bool) (*SleepReport, error) {
	if !period.Valid() {
		period = health.PeriodWeek
	}

	series, issues, err := s.fetchSeries(ctx, health.MetricSleep, period, forceRefresh)
	if err != nil {
		return nil, err
	}

	report := &SleepReport{
		Stats:  analysis.Compute(series, s.profile, s.now()),
		Issues: issues,
		Nights: series.Len(),
	}
	if series.Len() >= 4 {
		report.Trend = analysis.ClassifyTrend(series.ChronologicalValues())
	} else {
		report.Trend = analysis.TrendStable
	}

	return report, nil
}
