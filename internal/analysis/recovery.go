package analysis

import "vitals/internal/health"

// Heart-rate recovery detection constants.
const (
	RecoveryPeakThreshold = 140 // bpm, a sample must reach this to count as a peak
	RecoveryWindow        = 5   // samples after the peak that must all be lower
)

// RecoveryDrop scans the series in chronological order for peak events:
// a sample at or above RecoveryPeakThreshold whose next RecoveryWindow
// samples are all strictly lower than it. For each event the single-step
// drop to the following sample is recorded; the average drop across all
// events is returned. Nil when the series has fewer than
// MinSamplesRecovery samples or no event is found.
func RecoveryDrop(series health.Series) *float64 {
	if series.Len() < MinSamplesRecovery {
		return nil
	}

	values := series.ChronologicalValues()

	var totalDrop float64
	var events int

	for i := 0; i+RecoveryWindow < len(values); i++ {
		peak := values[i]
		if peak < RecoveryPeakThreshold {
			continue
		}

		descending := true
		for j := i + 1; j <= i+RecoveryWindow; j++ {
			if values[j] >= peak {
				descending = false
				break
			}
		}
		if !descending {
			continue
		}

		totalDrop += peak - values[i+1]
		events++
	}

	if events == 0 {
		return nil
	}
	return ptr(totalDrop / float64(events))
}
