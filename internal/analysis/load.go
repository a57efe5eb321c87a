package analysis

import "vitals/internal/health"

// Cardio-load intensity bands and their weights. Samples at or below
// ActiveThreshold contribute no load.
const ActiveThreshold = 100 // bpm

type intensityBand struct {
	lower  float64 // inclusive
	weight float64
}

var intensityBands = []intensityBand{
	{100, 1},
	{120, 2},
	{150, 3},
	{170, 4},
}

const maxIntensityWeight = 4

// CardioLoad computes an intensity-weighted load score in [0,100].
// Active samples (>100 bpm) are bucketed into four bands weighted
// 1/2/3/4; the score is the weighted count normalized so a series spent
// entirely in the top band scores 100. Nil for an empty series.
func CardioLoad(series health.Series) *float64 {
	if series.Empty() {
		return nil
	}

	var weighted float64
	for _, sample := range series.Samples {
		if sample.Value <= ActiveThreshold {
			continue
		}
		for i := len(intensityBands) - 1; i >= 0; i-- {
			if sample.Value > intensityBands[i].lower || i == 0 {
				weighted += intensityBands[i].weight
				break
			}
		}
	}

	score := weighted / (float64(series.Len()) * maxIntensityWeight) * 100
	if score > 100 {
		score = 100
	}
	return ptr(score)
}
