package scoring

import "vitals/internal/health"

// band is one step of a piecewise normalization function: values at or
// above min earn score.
type band struct {
	min   float64
	score float64
}

// higherIsBetter evaluates descending-ordered bands and returns the
// score of the first band the value reaches, or floor below all bands.
func higherIsBetter(value float64, bands []band, floor float64) float64 {
	for _, b := range bands {
		if value >= b.min {
			return b.score
		}
	}
	return floor
}

// corridor is an ideal-range normalization: highest inside [lo, hi],
// decaying outward through the listed steps.
type corridorStep struct {
	within float64 // distance beyond the corridor edge
	score  float64
}

func corridorScore(value, lo, hi float64, steps []corridorStep, floor float64) float64 {
	var dist float64
	switch {
	case value >= lo && value <= hi:
		return 100
	case value < lo:
		dist = lo - value
	default:
		dist = value - hi
	}
	for _, s := range steps {
		if dist <= s.within {
			return s.score
		}
	}
	return floor
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// NormalizeRestingHR scores a resting heart rate; lower is better with
// a floor of 25.
func NormalizeRestingHR(value *float64) float64 {
	if value == nil {
		return 0
	}
	v := *value
	switch {
	case v <= 50:
		return 100
	case v <= 55:
		return 90
	case v <= 60:
		return 80
	case v <= 65:
		return 70
	case v <= 70:
		return 60
	case v <= 80:
		return 45
	default:
		return 25
	}
}

var hrvBands = []band{{100, 100}, {80, 90}, {60, 80}, {45, 65}, {30, 50}}

// NormalizeHRV scores heart rate variability in ms; higher is better.
func NormalizeHRV(value *float64) float64 {
	if value == nil {
		return 0
	}
	return higherIsBetter(*value, hrvBands, 30)
}

var spo2Bands = []band{{98, 100}, {96, 90}, {95, 80}, {92, 60}}

// NormalizeSpO2 scores blood oxygen saturation percent.
func NormalizeSpO2(value *float64) float64 {
	if value == nil {
		return 0
	}
	return higherIsBetter(*value, spo2Bands, 40)
}

var stepsBands = []band{{12000, 100}, {10000, 90}, {7500, 75}, {5000, 55}, {2500, 35}}

// NormalizeSteps scores an average daily step count.
func NormalizeSteps(value *float64) float64 {
	if value == nil {
		return 0
	}
	return higherIsBetter(*value, stepsBands, 15)
}

var exerciseBands = []band{{60, 100}, {45, 90}, {30, 75}, {20, 60}, {10, 40}}

// NormalizeExerciseMinutes scores average daily exercise minutes.
func NormalizeExerciseMinutes(value *float64) float64 {
	if value == nil {
		return 0
	}
	return higherIsBetter(*value, exerciseBands, 20)
}

var activeEnergyBands = []band{{600, 100}, {450, 85}, {300, 70}, {150, 50}}

// NormalizeActiveEnergy scores average daily active energy burn (kcal).
func NormalizeActiveEnergy(value *float64) float64 {
	if value == nil {
		return 0
	}
	return higherIsBetter(*value, activeEnergyBands, 30)
}

var bmiSteps = []corridorStep{{2, 80}, {4, 60}, {7, 40}}

// NormalizeBMI scores body mass index against the 18.5-24.9 corridor.
func NormalizeBMI(value *float64) float64 {
	if value == nil {
		return 0
	}
	return corridorScore(*value, 18.5, 24.9, bmiSteps, 20)
}

var bodyFatSteps = []corridorStep{{3, 80}, {6, 60}, {10, 40}}

// NormalizeBodyFat scores body fat percent against a gender-specific
// ideal corridor (male 10-20%, female 18-28%).
func NormalizeBodyFat(value *float64, gender health.Gender) float64 {
	if value == nil {
		return 0
	}
	lo, hi := 10.0, 20.0
	if gender == health.GenderFemale {
		lo, hi = 18.0, 28.0
	}
	return corridorScore(*value, lo, hi, bodyFatSteps, 25)
}

var muscleMassMaleBands = []band{{45, 100}, {40, 85}, {35, 70}, {30, 50}}
var muscleMassFemaleBands = []band{{38, 100}, {33, 85}, {28, 70}, {24, 50}}

// NormalizeMuscleMass scores skeletal muscle as a percent of body
// weight; higher is better, with gender-specific bands.
func NormalizeMuscleMass(pctOfWeight *float64, gender health.Gender) float64 {
	if pctOfWeight == nil {
		return 0
	}
	bands := muscleMassMaleBands
	if gender == health.GenderFemale {
		bands = muscleMassFemaleBands
	}
	return higherIsBetter(*pctOfWeight, bands, 30)
}

var proteinSteps = []corridorStep{{0.3, 80}, {0.6, 60}, {1.0, 40}}

// NormalizeProtein scores protein intake in g per kg body weight
// against the 1.2-2.2 g/kg corridor.
func NormalizeProtein(gPerKG *float64) float64 {
	if gPerKG == nil {
		return 0
	}
	return corridorScore(*gPerKG, 1.2, 2.2, proteinSteps, 20)
}

var hydrationSteps = []corridorStep{{5, 80}, {10, 60}, {15, 40}}

// NormalizeHydration scores water intake in ml per kg body weight
// against the 30-45 ml/kg corridor.
func NormalizeHydration(mlPerKG *float64) float64 {
	if mlPerKG == nil {
		return 0
	}
	return corridorScore(*mlPerKG, 30, 45, hydrationSteps, 20)
}

var energyIntakeSteps = []corridorStep{{300, 80}, {600, 60}, {1000, 40}}

// NormalizeEnergyIntake scores average daily dietary energy (kcal)
// against an 1800-2600 kcal corridor.
func NormalizeEnergyIntake(kcal *float64) float64 {
	if kcal == nil {
		return 0
	}
	return corridorScore(*kcal, 1800, 2600, energyIntakeSteps, 25)
}

var hrRecoveryBands = []band{{25, 100}, {20, 85}, {15, 70}, {10, 55}, {5, 40}}

// NormalizeHRRecovery scores the average post-peak heart rate drop in
// bpm; a bigger drop is better.
func NormalizeHRRecovery(dropBPM *float64) float64 {
	if dropBPM == nil {
		return 0
	}
	return higherIsBetter(*dropBPM, hrRecoveryBands, 25)
}

// NormalizeScore passes through a value that is already on the 0-100
// scale (sleep quality, consistency), clamped to range.
func NormalizeScore(value *float64) float64 {
	if value == nil {
		return 0
	}
	return clampScore(*value)
}
