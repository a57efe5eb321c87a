package health

// canonicalUnits maps each metric type to the unit assigned when a
// provider omits one. Unknown types map to "".
var canonicalUnits = map[MetricType]string{
	MetricHeartRate:        "bpm",
	MetricRestingHeartRate: "bpm",
	MetricHRV:              "ms",
	MetricVO2Max:           "ml/kg/min",
	MetricOxygenSaturation: "%",
	MetricRespiratoryRate:  "breaths/min",
	MetricSteps:            "count",
	MetricExerciseMinutes:  "min",
	MetricActiveEnergy:     "kcal",
	MetricWeight:           "kg",
	MetricBodyFat:          "%",
	MetricMuscleMass:       "kg",
	MetricSleep:            "hr",
	MetricProtein:          "g",
	MetricWater:            "ml",
	MetricDietaryEnergy:    "kcal",
}

// DefaultUnit returns the canonical unit for a metric type, or ""
// when the type is unknown.
func DefaultUnit(t MetricType) string {
	return canonicalUnits[t]
}
