package analysis

import (
	"math"
	"sort"

	"vitals/internal/health"
)

// Resting-estimate percentiles: the share of lowest samples averaged to
// infer the baseline of a noisy physiological series.
const (
	RestingPercentileHR   = 0.05
	RestingPercentileResp = 0.10
)

// RestingEstimate averages the lowest percentile of the series (at
// least one sample) to estimate the resting value. Returns nil for
// series with fewer than MinSamplesResting samples.
func RestingEstimate(series health.Series, percentile float64) *float64 {
	if series.Len() < MinSamplesResting {
		return nil
	}

	values := series.Values()
	sort.Float64s(values)

	n := int(math.Ceil(float64(len(values)) * percentile))
	if n < 1 {
		n = 1
	}

	var sum float64
	for _, v := range values[:n] {
		sum += v
	}
	return ptr(sum / float64(n))
}
