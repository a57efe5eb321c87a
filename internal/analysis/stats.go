package analysis

import (
	"time"

	"vitals/internal/health"
)

// Minimum series sizes for the specialized computations. A series below
// the minimum yields a nil field, never an error.
const (
	MinSamplesResting  = 5
	MinSamplesZones    = 10
	MinSamplesRecovery = 20
	MinDaysConsistency = 7
)

// RecentWindow summarizes the rolling last-7-day slice of a series.
type RecentWindow struct {
	Count int
	Avg   float64
}

// Stats is the derived record for one metric series. The common fields
// are always populated for a non-empty series; specialized fields are
// pointers and stay nil when the series is too small for them. A nil
// field means "unknown", not "zero".
type Stats struct {
	Metric health.MetricType
	Count  int
	Latest float64
	Min    float64
	Max    float64
	Avg    float64
	Recent RecentWindow

	RestingRate  *float64   // heart rate, respiratory rate
	Zones        []ZoneTime // heart rate
	RecoveryDrop *float64   // heart rate, bpm
	CardioLoad   *float64   // heart rate, 0-100
	SleepQuality *float64   // sleep, 0-100
	SleepDebt    *float64   // sleep, hours over last 7 days
	Consistency  *float64   // cumulative metrics and sleep, 0-100
	DailyTotal   *float64   // cumulative metrics, today
	WeeklyTotal  *float64   // cumulative metrics, last 7 days
	WeeklyAvg    *float64   // cumulative metrics, per day with data
}

// Compute derives all statistics for a validated, newest-first series.
// now anchors the rolling windows. Pure function: the same series and
// clock always produce the same Stats.
func Compute(series health.Series, profile health.Profile, now time.Time) Stats {
	stats := Stats{Metric: series.Metric, Count: series.Len()}
	if series.Empty() {
		return stats
	}

	stats.Latest = series.Samples[0].Value
	stats.Min, stats.Max, stats.Avg = minMaxAvg(series.Values())
	stats.Recent = recentWindow(series, now)

	switch series.Metric {
	case health.MetricHeartRate:
		stats.RestingRate = RestingEstimate(series, RestingPercentileHR)
		stats.Zones = HeartRateZones(series, profile.MaxHeartRate())
		stats.RecoveryDrop = RecoveryDrop(series)
		stats.CardioLoad = CardioLoad(series)
	case health.MetricRespiratoryRate:
		stats.RestingRate = RestingEstimate(series, RestingPercentileResp)
	case health.MetricSleep:
		stats.SleepQuality = SleepQualityScore(series.Latest())
		stats.SleepDebt = SleepDebt(series, now)
		stats.Consistency = ConsistencyScore(series)
	default:
		if series.Metric.Cumulative() {
			stats.Consistency = ConsistencyScore(series)
			daily := DailyTotal(series, now)
			stats.DailyTotal = &daily
			weekly, avg := WeeklyTotals(series, now)
			stats.WeeklyTotal = &weekly
			stats.WeeklyAvg = &avg
		}
	}

	return stats
}

func minMaxAvg(values []float64) (min, max, avg float64) {
	min, max = values[0], values[0]
	var sum float64
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float64(len(values))
}

// recentWindow averages the samples from the last 7 days.
func recentWindow(series health.Series, now time.Time) RecentWindow {
	recent := series.Since(now.AddDate(0, 0, -7))
	if len(recent) == 0 {
		return RecentWindow{}
	}
	var sum float64
	for _, s := range recent {
		sum += s.Value
	}
	return RecentWindow{Count: len(recent), Avg: sum / float64(len(recent))}
}

func ptr(v float64) *float64 { return &v }
