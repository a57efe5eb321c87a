package analysis

import (
	"testing"

	"vitals/internal/health"
)

func TestRestingEstimate(t *testing.T) {
	t.Run("averages lowest percentile", func(t *testing.T) {
		series := seriesOf(health.MetricHeartRate,
			55, 57, 54, 56, 58, 90, 92, 95, 110, 120,
			130, 125, 88, 72, 64, 61, 59, 66, 70, 75)

		got := RestingEstimate(series, RestingPercentileHR)
		if got == nil {
			t.Fatal("RestingEstimate = nil, want value")
		}
		// ceil(20 * 0.05) = 1 sample: the single lowest reading.
		approx(t, "resting estimate", *got, 54, 0.001)
	})

	t.Run("too few samples", func(t *testing.T) {
		series := seriesOf(health.MetricHeartRate, 60, 62, 58, 61)
		if got := RestingEstimate(series, RestingPercentileHR); got != nil {
			t.Errorf("RestingEstimate = %v, want nil for %d samples", *got, series.Len())
		}
	})

	t.Run("wider percentile averages more samples", func(t *testing.T) {
		series := seriesOf(health.MetricRespiratoryRate,
			12, 13, 14, 15, 16, 17, 18, 19, 20, 21)
		got := RestingEstimate(series, RestingPercentileResp)
		if got == nil {
			t.Fatal("RestingEstimate = nil, want value")
		}
		// ceil(10 * 0.10) = 1 sample.
		approx(t, "resting estimate", *got, 12, 0.001)
	})
}

func TestHeartRateZones(t *testing.T) {
	maxHR := testProfile.MaxHeartRate() // 190 for age 30

	series := seriesOf(health.MetricHeartRate,
		90, 100, 120, 140, 155, 175, 96, 115, 135, 172)

	zones := HeartRateZones(series, maxHR)
	if zones == nil {
		t.Fatal("HeartRateZones = nil, want 5 zones")
	}
	if len(zones) != 5 {
		t.Fatalf("len(zones) = %d, want 5", len(zones))
	}

	// Bounds at 50/60/70/80/90% of 190: 95, 114, 133, 152, 171.
	wantSamples := []int{3, 2, 2, 1, 2}
	var totalPct float64
	for i, zone := range zones {
		if zone.Zone != i+1 {
			t.Errorf("zones[%d].Zone = %d, want %d", i, zone.Zone, i+1)
		}
		if zone.Samples != wantSamples[i] {
			t.Errorf("zone %d samples = %d, want %d", zone.Zone, zone.Samples, wantSamples[i])
		}
		totalPct += zone.Percent
	}
	approx(t, "total percent", totalPct, 100, 0.001)
}

func TestHeartRateZonesTooFewSamples(t *testing.T) {
	series := seriesOf(health.MetricHeartRate, 100, 120, 140)
	if zones := HeartRateZones(series, 190); zones != nil {
		t.Errorf("HeartRateZones = %v, want nil for a short series", zones)
	}
}

func TestRecoveryDrop(t *testing.T) {
	t.Run("single event", func(t *testing.T) {
		values := []float64{150, 120, 118, 116, 114, 112}
		for len(values) < 20 {
			values = append(values, 80)
		}
		series := seriesOf(health.MetricHeartRate, values...)

		got := RecoveryDrop(series)
		if got == nil {
			t.Fatal("RecoveryDrop = nil, want value")
		}
		approx(t, "recovery drop", *got, 30, 0.001)
	})

	t.Run("no peak reaches the threshold", func(t *testing.T) {
		values := make([]float64, 20)
		for i := range values {
			values[i] = 120
		}
		series := seriesOf(health.MetricHeartRate, values...)
		if got := RecoveryDrop(series); got != nil {
			t.Errorf("RecoveryDrop = %v, want nil without a qualifying peak", *got)
		}
	})

	t.Run("rebound disqualifies the event", func(t *testing.T) {
		// Interval work: the rate climbs back to the peak within
		// every window, so no peak qualifies.
		values := make([]float64, 20)
		for i := range values {
			if i%2 == 0 {
				values[i] = 150
			} else {
				values[i] = 130
			}
		}
		series := seriesOf(health.MetricHeartRate, values...)
		if got := RecoveryDrop(series); got != nil {
			t.Errorf("RecoveryDrop = %v, want nil when the rate rebounds", *got)
		}
	})
}

func TestCardioLoad(t *testing.T) {
	t.Run("mixed intensities", func(t *testing.T) {
		series := seriesOf(health.MetricHeartRate,
			80, 110, 130, 160, 180, 90, 95, 100, 105, 175)
		got := CardioLoad(series)
		if got == nil {
			t.Fatal("CardioLoad = nil, want value")
		}
		// Weights: 110->1, 130->2, 160->3, 180->4, 105->1, 175->4 = 15.
		// 15 / (10 * 4) * 100 = 37.5.
		approx(t, "cardio load", *got, 37.5, 0.001)
	})

	t.Run("all top band scores 100", func(t *testing.T) {
		values := make([]float64, 10)
		for i := range values {
			values[i] = 180
		}
		got := CardioLoad(seriesOf(health.MetricHeartRate, values...))
		if got == nil {
			t.Fatal("CardioLoad = nil, want value")
		}
		approx(t, "cardio load", *got, 100, 0.001)
	})

	t.Run("all sedentary scores 0", func(t *testing.T) {
		got := CardioLoad(seriesOf(health.MetricHeartRate, 70, 75, 80, 85, 90))
		if got == nil {
			t.Fatal("CardioLoad = nil, want value")
		}
		approx(t, "cardio load", *got, 0, 0.001)
	})
}
