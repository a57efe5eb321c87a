package analysis

import (
	"time"

	"vitals/internal/health"
)

// Sleep scoring constants.
const (
	IdealSleepHours = 8.0 // nightly target used for debt
	SleepDebtDays   = 7   // rolling window for debt accumulation
)

// SleepQualityScore rates a single night of sleep on a 0-100 scale.
// Base 50, with banded bonuses for duration around the 7-9h optimum,
// efficiency when reported, and deep/REM stage minutes when stage data
// is present. Nil when the sample is missing.
func SleepQualityScore(sample *health.Sample) *float64 {
	if sample == nil {
		return nil
	}

	score := 50.0
	hours := sample.Value

	switch {
	case hours >= 7 && hours <= 9:
		score += 25
	case (hours >= 6 && hours < 7) || (hours > 9 && hours <= 10):
		score += 15
	default:
		score += 5
	}

	detail := sample.Sleep
	if detail != nil && detail.Efficiency != nil {
		switch eff := *detail.Efficiency; {
		case eff >= 90:
			score += 25
		case eff >= 85:
			score += 20
		case eff >= 80:
			score += 15
		case eff >= 70:
			score += 10
		default:
			score += 5
		}
	}

	if detail != nil && detail.Stages != nil {
		score += stageBonus(detail.Stages.Deep * 60)
		score += stageBonus(detail.Stages.REM * 60)
	}

	if score > 100 {
		score = 100
	}
	return ptr(score)
}

// stageBonus rewards deep and REM minutes on the same band.
func stageBonus(minutes float64) float64 {
	switch {
	case minutes >= 90:
		return 15
	case minutes >= 60:
		return 10
	case minutes >= 30:
		return 5
	default:
		return 0
	}
}

// SleepDebt returns the shortfall against IdealSleepHours per night over
// the last SleepDebtDays days of available data, floored at zero. Nil
// when the window holds no samples.
func SleepDebt(series health.Series, now time.Time) *float64 {
	recent := series.Since(now.AddDate(0, 0, -SleepDebtDays))
	if len(recent) == 0 {
		return nil
	}

	days := make(map[string]bool)
	var slept float64
	for _, sample := range recent {
		days[sample.Date.Format("2006-01-02")] = true
		slept += sample.Value
	}

	debt := IdealSleepHours*float64(len(days)) - slept
	if debt < 0 {
		debt = 0
	}
	return ptr(debt)
}
