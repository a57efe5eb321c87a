package scoring

import (
	"testing"

	"vitals/internal/health"
)

func TestVO2MaxTier(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		profile health.Profile
		want    Tier
	}{
		{
			name:    "male 35 at 50 is good",
			value:   50,
			profile: health.Profile{Age: 35, Gender: health.GenderMale},
			want:    TierGood,
		},
		{
			name:    "male 35 at 55 is excellent",
			value:   55,
			profile: health.Profile{Age: 35, Gender: health.GenderMale},
			want:    TierExcellent,
		},
		{
			name:    "male 35 at 30 is poor",
			value:   30,
			profile: health.Profile{Age: 35, Gender: health.GenderMale},
			want:    TierPoor,
		},
		{
			name:    "female 28 at 52 is excellent",
			value:   52,
			profile: health.Profile{Age: 28, Gender: health.GenderFemale},
			want:    TierExcellent,
		},
		{
			name:    "female 45 at 50 is superior",
			value:   50,
			profile: health.Profile{Age: 45, Gender: health.GenderFemale},
			want:    TierSuperior,
		},
		{
			name:    "age above the table snaps to the oldest decade",
			value:   33,
			profile: health.Profile{Age: 75, Gender: health.GenderMale},
			want:    TierExcellent,
		},
		{
			name:    "age below the table snaps to the youngest decade",
			value:   47,
			profile: health.Profile{Age: 18, Gender: health.GenderMale},
			want:    TierGood,
		},
		{
			name:    "unknown gender uses the male rows",
			value:   50,
			profile: health.Profile{Age: 35},
			want:    TierGood,
		},
		{
			name:    "zero age uses the default age",
			value:   50,
			profile: health.Profile{Gender: health.GenderMale},
			want:    TierGood, // default age 30, good band 43-52
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VO2MaxTier(tt.value, tt.profile); got != tt.want {
				t.Errorf("VO2MaxTier(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizeVO2Max(t *testing.T) {
	profile := health.Profile{Age: 35, Gender: health.GenderMale}

	v := 50.0
	if got := NormalizeVO2Max(&v, profile); got != 70 {
		t.Errorf("NormalizeVO2Max(50) = %v, want 70 (good)", got)
	}
	if got := NormalizeVO2Max(nil, profile); got != 0 {
		t.Errorf("NormalizeVO2Max(nil) = %v, want 0", got)
	}
}
