package analysis

// Trend labels a series direction by comparing the first and second
// half of a chronologically ordered value list.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// TrendThresholdPct is the half-over-half change needed before a series
// is labeled anything other than stable.
const TrendThresholdPct = 5.0

// ClassifyTrend compares the mean of the first half of values against
// the second half. values must be ordered oldest first. Fewer than four
// values, or a zero first-half mean, classify as stable.
func ClassifyTrend(values []float64) Trend {
	if len(values) < 4 {
		return TrendStable
	}

	mid := len(values) / 2
	firstAvg := mean(values[:mid])
	secondAvg := mean(values[mid:])

	if firstAvg == 0 {
		return TrendStable
	}

	changePct := (secondAvg - firstAvg) / firstAvg * 100
	switch {
	case changePct > TrendThresholdPct:
		return TrendImproving
	case changePct < -TrendThresholdPct:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
