package health

import "time"

// MetricType identifies one kind of tracked measurement.
type MetricType string

const (
	MetricHeartRate        MetricType = "heart_rate"
	MetricRestingHeartRate MetricType = "resting_heart_rate"
	MetricHRV              MetricType = "heart_rate_variability"
	MetricVO2Max           MetricType = "vo2_max"
	MetricOxygenSaturation MetricType = "oxygen_saturation"
	MetricRespiratoryRate  MetricType = "respiratory_rate"
	MetricSteps            MetricType = "steps"
	MetricExerciseMinutes  MetricType = "exercise_minutes"
	MetricActiveEnergy     MetricType = "active_energy"
	MetricWeight           MetricType = "weight"
	MetricBodyFat          MetricType = "body_fat"
	MetricMuscleMass       MetricType = "muscle_mass"
	MetricSleep            MetricType = "sleep"
	MetricProtein          MetricType = "protein"
	MetricWater            MetricType = "water"
	MetricDietaryEnergy    MetricType = "dietary_energy"
)

// Cumulative reports whether samples of this type add up over a day
// (steps, energy, nutrition) rather than being point measurements.
func (t MetricType) Cumulative() bool {
	switch t {
	case MetricSteps, MetricExerciseMinutes, MetricActiveEnergy,
		MetricProtein, MetricWater, MetricDietaryEnergy:
		return true
	}
	return false
}

// Period is the time window of a fetch request.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Start returns the beginning of the period relative to now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return now.AddDate(0, 0, -1)
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Sample is one validated, timestamped measurement.
type Sample struct {
	Date   time.Time
	Value  float64
	Unit   string
	Source string

	// Sleep carries stage/efficiency detail for sleep samples only.
	Sleep *SleepDetail
}

// SleepStages holds per-stage durations in hours.
type SleepStages struct {
	Deep  float64
	Core  float64
	REM   float64
	Awake float64
}

// Sum returns the total of all stage durations.
func (s SleepStages) Sum() float64 {
	return s.Deep + s.Core + s.REM + s.Awake
}

// SleepDetail is the extra payload of a sleep sample. The sample's Value
// is the total asleep duration in hours.
type SleepDetail struct {
	EndDate    time.Time
	TimeInBed  *float64 // hours
	Efficiency *float64 // percent
	Stages     *SleepStages
}

// RawSample is an unvalidated candidate as delivered by a provider.
// Optional fields are pointers so absence is distinguishable from zero.
type RawSample struct {
	Date     string   `json:"date"`
	Value    *float64 `json:"value"`
	Unit     string   `json:"unit,omitempty"`
	Source   string   `json:"source,omitempty"`
	Category string   `json:"category,omitempty"`
	Type     string   `json:"type,omitempty"`

	// Sleep-only fields.
	EndDate         string          `json:"endDate,omitempty"`
	TimeInBed       *float64        `json:"timeInBed,omitempty"`
	SleepEfficiency *float64        `json:"sleepEfficiency,omitempty"`
	Stages          *RawSleepStages `json:"stages,omitempty"`
}

// RawSleepStages mirrors SleepStages on the wire.
type RawSleepStages struct {
	Deep  float64 `json:"deep"`
	Core  float64 `json:"core"`
	REM   float64 `json:"rem"`
	Awake float64 `json:"awake"`
}

// Series is an immutable run of validated samples for one metric type,
// ordered newest-first.
type Series struct {
	Metric  MetricType
	Samples []Sample
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.Samples) }

// Empty reports whether the series has no samples.
func (s Series) Empty() bool { return len(s.Samples) == 0 }

// Latest returns the most recent sample, or nil for an empty series.
func (s Series) Latest() *Sample {
	if len(s.Samples) == 0 {
		return nil
	}
	return &s.Samples[0]
}

// Values returns sample values in series order (newest first).
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Value
	}
	return out
}

// ChronologicalValues returns sample values oldest first.
func (s Series) ChronologicalValues() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[len(s.Samples)-1-i] = smp.Value
	}
	return out
}

// Since returns the samples dated at or after cutoff, preserving order.
func (s Series) Since(cutoff time.Time) []Sample {
	var out []Sample
	for _, smp := range s.Samples {
		if !smp.Date.Before(cutoff) {
			out = append(out, smp)
		}
	}
	return out
}
