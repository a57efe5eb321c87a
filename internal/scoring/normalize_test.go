package scoring

import (
	"testing"

	"vitals/internal/health"
)

func fp(v float64) *float64 { return &v }

func TestNormalizeRestingHR(t *testing.T) {
	tests := []struct {
		bpm  float64
		want float64
	}{
		{45, 100},
		{50, 100},
		{55, 90},
		{62, 70},
		{70, 60},
		{78, 45},
		{95, 25},
	}
	for _, tt := range tests {
		if got := NormalizeRestingHR(fp(tt.bpm)); got != tt.want {
			t.Errorf("NormalizeRestingHR(%v) = %v, want %v", tt.bpm, got, tt.want)
		}
	}
}

func TestCorridorNormalizers(t *testing.T) {
	t.Run("bmi", func(t *testing.T) {
		tests := []struct {
			bmi  float64
			want float64
		}{
			{22, 100},   // inside the corridor
			{18.5, 100}, // corridor edge
			{26, 80},    // 1.1 over
			{28, 60},    // 3.1 over
			{17, 80},    // 1.5 under
			{35, 20},    // far outside
		}
		for _, tt := range tests {
			if got := NormalizeBMI(fp(tt.bmi)); got != tt.want {
				t.Errorf("NormalizeBMI(%v) = %v, want %v", tt.bmi, got, tt.want)
			}
		}
	})

	t.Run("body fat is gender specific", func(t *testing.T) {
		// 22% is 2 over the male corridor but inside the female one.
		if got := NormalizeBodyFat(fp(22), health.GenderMale); got != 80 {
			t.Errorf("male 22%% = %v, want 80", got)
		}
		if got := NormalizeBodyFat(fp(22), health.GenderFemale); got != 100 {
			t.Errorf("female 22%% = %v, want 100", got)
		}
	})

	t.Run("protein", func(t *testing.T) {
		if got := NormalizeProtein(fp(1.6)); got != 100 {
			t.Errorf("NormalizeProtein(1.6) = %v, want 100", got)
		}
		if got := NormalizeProtein(fp(1.0)); got != 80 {
			t.Errorf("NormalizeProtein(1.0) = %v, want 80", got)
		}
		if got := NormalizeProtein(fp(0.2)); got != 40 {
			t.Errorf("NormalizeProtein(0.2) = %v, want 40", got)
		}
	})
}

func TestNormalizersHandleAbsentAndStayInRange(t *testing.T) {
	profile := health.Profile{Age: 35, Gender: health.GenderMale}

	normalizers := map[string]func(*float64) float64{
		"vo2max":        func(v *float64) float64 { return NormalizeVO2Max(v, profile) },
		"resting_hr":    NormalizeRestingHR,
		"hrv":           NormalizeHRV,
		"spo2":          NormalizeSpO2,
		"steps":         NormalizeSteps,
		"exercise":      NormalizeExerciseMinutes,
		"active_energy": NormalizeActiveEnergy,
		"bmi":           NormalizeBMI,
		"body_fat":      func(v *float64) float64 { return NormalizeBodyFat(v, profile.Gender) },
		"muscle_mass":   func(v *float64) float64 { return NormalizeMuscleMass(v, profile.Gender) },
		"protein":       NormalizeProtein,
		"hydration":     NormalizeHydration,
		"energy_intake": NormalizeEnergyIntake,
		"hr_recovery":   NormalizeHRRecovery,
		"passthrough":   NormalizeScore,
	}

	probes := []float64{-50, 0, 1, 25, 60, 98, 150, 5000, 20000}

	for name, fn := range normalizers {
		if got := fn(nil); got != 0 {
			t.Errorf("%s(nil) = %v, want 0", name, got)
		}
		for _, probe := range probes {
			got := fn(fp(probe))
			if got < 0 || got > 100 {
				t.Errorf("%s(%v) = %v, outside [0,100]", name, probe, got)
			}
		}
	}
}

func TestNormalizeScoreClamps(t *testing.T) {
	if got := NormalizeScore(fp(130)); got != 100 {
		t.Errorf("NormalizeScore(130) = %v, want 100", got)
	}
	if got := NormalizeScore(fp(-10)); got != 0 {
		t.Errorf("NormalizeScore(-10) = %v, want 0", got)
	}
	if got := NormalizeScore(fp(72.5)); got != 72.5 {
		t.Errorf("NormalizeScore(72.5) = %v, want 72.5", got)
	}
}
