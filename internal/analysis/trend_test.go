package analysis

import "testing"

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Trend
	}{
		{
			name:   "rising values",
			values: []float64{100, 100, 100, 100, 120, 120, 120, 120},
			want:   TrendImproving,
		},
		{
			name:   "falling values",
			values: []float64{120, 120, 120, 120, 100, 100, 100, 100},
			want:   TrendDeclining,
		},
		{
			name:   "change under the threshold",
			values: []float64{100, 101, 100, 102},
			want:   TrendStable,
		},
		{
			name:   "exactly at the threshold stays stable",
			values: []float64{100, 100, 105, 105},
			want:   TrendStable,
		},
		{
			name:   "too few values",
			values: []float64{100, 200, 300},
			want:   TrendStable,
		},
		{
			name:   "empty",
			values: nil,
			want:   TrendStable,
		},
		{
			name:   "zero first half",
			values: []float64{0, 0, 50, 50},
			want:   TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTrend(tt.values); got != tt.want {
				t.Errorf("ClassifyTrend(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
