package analysis

import (
	"math"
	"time"

	"vitals/internal/health"
)

// ConsistencyScore measures day-to-day regularity as 100 minus the
// coefficient of variation (stddev/mean x 100) of per-day totals,
// floored at zero. Identical totals every day score 100. Nil when
// fewer than MinDaysConsistency calendar days have data.
func ConsistencyScore(series health.Series) *float64 {
	totals := dailyTotals(series)
	if len(totals) < MinDaysConsistency {
		return nil
	}

	var sum float64
	for _, t := range totals {
		sum += t
	}
	mean := sum / float64(len(totals))
	if mean == 0 {
		return ptr(0)
	}

	var sq float64
	for _, t := range totals {
		d := t - mean
		sq += d * d
	}
	stddev := math.Sqrt(sq / float64(len(totals)))

	cv := stddev / mean * 100
	score := 100 - cv
	if score < 0 {
		score = 0
	}
	return ptr(score)
}

// dailyTotals groups samples by calendar day and sums each day.
func dailyTotals(series health.Series) []float64 {
	byDay := make(map[string]float64)
	for _, sample := range series.Samples {
		byDay[sample.Date.Format("2006-01-02")] += sample.Value
	}
	totals := make([]float64, 0, len(byDay))
	for _, t := range byDay {
		totals = append(totals, t)
	}
	return totals
}

// DailyTotal sums the samples dated on the same calendar day as now.
func DailyTotal(series health.Series, now time.Time) float64 {
	day := now.Format("2006-01-02")
	var total float64
	for _, sample := range series.Samples {
		if sample.Date.Format("2006-01-02") == day {
			total += sample.Value
		}
	}
	return total
}

// WeeklyTotals sums the rolling last-7-day window and averages it over
// the days that actually have data.
func WeeklyTotals(series health.Series, now time.Time) (total, perDay float64) {
	recent := series.Since(now.AddDate(0, 0, -7))
	days := make(map[string]bool)
	for _, sample := range recent {
		total += sample.Value
		days[sample.Date.Format("2006-01-02")] = true
	}
	if len(days) > 0 {
		perDay = total / float64(len(days))
	}
	return total, perDay
}
