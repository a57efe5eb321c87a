package analysis

import "vitals/internal/health"

// ZoneTime reports how much of a heart-rate series fell into one
// training zone. Time in zone is approximated by sample count.
type ZoneTime struct {
	Zone     int
	Name     string
	LowerBPM float64
	Samples  int
	Percent  float64
}

// zoneFractions are the lower bounds of the five zones as fractions of
// estimated max heart rate.
var zoneFractions = [5]float64{0.50, 0.60, 0.70, 0.80, 0.90}

var zoneNames = [5]string{"Recovery", "Endurance", "Tempo", "Threshold", "Max"}

// HeartRateZones buckets every sample into the highest zone whose lower
// bound it meets. Samples below the zone 1 bound count toward zone 1.
// Returns nil for series with fewer than MinSamplesZones samples.
func HeartRateZones(series health.Series, maxHR float64) []ZoneTime {
	if series.Len() < MinSamplesZones || maxHR <= 0 {
		return nil
	}

	zones := make([]ZoneTime, 5)
	for i := range zones {
		zones[i] = ZoneTime{
			Zone:     i + 1,
			Name:     zoneNames[i],
			LowerBPM: zoneFractions[i] * maxHR,
		}
	}

	for _, sample := range series.Samples {
		bucket := 0
		for i := len(zones) - 1; i >= 0; i-- {
			if sample.Value >= zones[i].LowerBPM {
				bucket = i
				break
			}
		}
		zones[bucket].Samples++
	}

	total := float64(series.Len())
	for i := range zones {
		zones[i].Percent = float64(zones[i].Samples) / total * 100
	}

	return zones
}
