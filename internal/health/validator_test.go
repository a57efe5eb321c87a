package health

import (
	"testing"
	"time"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateSample(t *testing.T) {
	tests := []struct {
		name       string
		raw        RawSample
		metric     MetricType
		wantReject bool
		wantSev    Severity
	}{
		{
			name:   "valid heart rate",
			raw:    RawSample{Date: "2026-08-20T07:30:00Z", Value: floatPtr(62)},
			metric: MetricHeartRate,
		},
		{
			name:       "missing value",
			raw:        RawSample{Date: "2026-08-20T07:30:00Z"},
			metric:     MetricHeartRate,
			wantReject: true,
			wantSev:    SeverityWarning,
		},
		{
			name:       "unparseable date",
			raw:        RawSample{Date: "not-a-date", Value: floatPtr(62)},
			metric:     MetricHeartRate,
			wantReject: true,
			wantSev:    SeverityWarning,
		},
		{
			name:       "implausible heart rate",
			raw:        RawSample{Date: "2026-08-20T07:30:00Z", Value: floatPtr(300)},
			metric:     MetricHeartRate,
			wantReject: true,
			wantSev:    SeverityError,
		},
		{
			name:       "negative steps",
			raw:        RawSample{Date: "2026-08-20T07:30:00Z", Value: floatPtr(-100)},
			metric:     MetricSteps,
			wantReject: true,
			wantSev:    SeverityError,
		},
		{
			name:       "SpO2 below plausible floor",
			raw:        RawSample{Date: "2026-08-20T07:30:00Z", Value: floatPtr(40)},
			metric:     MetricOxygenSaturation,
			wantReject: true,
			wantSev:    SeverityError,
		},
		{
			name: "sleep stages disagree with total",
			raw: RawSample{
				Date:  "2026-08-19T22:00:00Z",
				Value: floatPtr(8),
				Stages: &RawSleepStages{
					Deep: 1.5, Core: 4.2, REM: 1.8, Awake: 0.5,
				},
			},
			metric:     MetricSleep,
			wantReject: true,
			wantSev:    SeverityWarning,
		},
		{
			name: "sleep stages agree with total",
			raw: RawSample{
				Date:  "2026-08-19T22:00:00Z",
				Value: floatPtr(8),
				Stages: &RawSleepStages{
					Deep: 1.6, Core: 4.6, REM: 1.8, Awake: 0,
				},
			},
			metric: MetricSleep,
		},
		{
			name: "time in bed less than sleep",
			raw: RawSample{
				Date:      "2026-08-19T22:00:00Z",
				Value:     floatPtr(8),
				TimeInBed: floatPtr(7.5),
			},
			metric:     MetricSleep,
			wantReject: true,
			wantSev:    SeverityWarning,
		},
		{
			name: "span disagrees with stated duration",
			raw: RawSample{
				Date:    "2026-08-19T22:00:00Z",
				Value:   floatPtr(8),
				EndDate: "2026-08-20T08:00:00Z", // 10h span for 8h stated
			},
			metric:     MetricSleep,
			wantReject: true,
			wantSev:    SeverityWarning,
		},
		{
			name: "span within tolerance",
			raw: RawSample{
				Date:    "2026-08-19T22:00:00Z",
				Value:   floatPtr(8),
				EndDate: "2026-08-20T06:15:00Z", // 8.25h span
			},
			metric: MetricSleep,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sample, issue := ValidateSample(tt.raw, tt.metric)
			if tt.wantReject {
				if issue == nil {
					t.Fatalf("ValidateSample() accepted, want rejection")
				}
				if issue.Severity != tt.wantSev {
					t.Errorf("severity = %v, want %v", issue.Severity, tt.wantSev)
				}
				return
			}
			if issue != nil {
				t.Fatalf("ValidateSample() rejected: %v", issue)
			}
			if sample.Date.IsZero() {
				t.Error("validated sample has zero date")
			}
		})
	}
}

func TestValidateSampleAssignsCanonicalUnit(t *testing.T) {
	tests := []struct {
		metric   MetricType
		unit     string
		wantUnit string
	}{
		{MetricHeartRate, "", "bpm"},
		{MetricSteps, "", "count"},
		{MetricWater, "", "ml"},
		{MetricHeartRate, "beats/min", "beats/min"}, // source unit wins
		{MetricType("unknown_metric"), "", ""},
	}

	for _, tt := range tests {
		raw := RawSample{Date: "2026-08-20T07:30:00Z", Value: floatPtr(60), Unit: tt.unit}
		sample, issue := ValidateSample(raw, tt.metric)
		if issue != nil {
			t.Fatalf("ValidateSample(%s) rejected: %v", tt.metric, issue)
		}
		if sample.Unit != tt.wantUnit {
			t.Errorf("unit for %s = %q, want %q", tt.metric, sample.Unit, tt.wantUnit)
		}
	}
}

func TestValidateSeries(t *testing.T) {
	raws := []RawSample{
		{Date: "2026-08-18T08:00:00Z", Value: floatPtr(60)},
		{Date: "2026-08-20T08:00:00Z", Value: floatPtr(64)},
		{Date: "bad-date", Value: floatPtr(70)},
		{Date: "2026-08-19T08:00:00Z", Value: floatPtr(999)}, // implausible
		{Date: "2026-08-19T09:00:00Z", Value: floatPtr(58)},
	}

	series, issues := ValidateSeries(raws, MetricHeartRate)

	if series.Len() != 3 {
		t.Fatalf("series.Len() = %d, want 3", series.Len())
	}
	if len(issues) != 2 {
		t.Fatalf("len(issues) = %d, want 2", len(issues))
	}

	// Newest first.
	for i := 1; i < series.Len(); i++ {
		if series.Samples[i].Date.After(series.Samples[i-1].Date) {
			t.Errorf("series not sorted newest-first at index %d", i)
		}
	}
	if series.Latest().Value != 64 {
		t.Errorf("Latest().Value = %v, want 64", series.Latest().Value)
	}

	// One soft, one hard.
	var warnings, errors int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityWarning:
			warnings++
		case SeverityError:
			errors++
		}
	}
	if warnings != 1 || errors != 1 {
		t.Errorf("warnings = %d, errors = %d, want 1 and 1", warnings, errors)
	}
}

func TestSeriesChronologicalValues(t *testing.T) {
	series := Series{
		Metric: MetricHeartRate,
		Samples: []Sample{
			{Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), Value: 3},
			{Date: time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC), Value: 2},
			{Date: time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC), Value: 1},
		},
	}

	got := series.ChronologicalValues()
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ChronologicalValues()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
