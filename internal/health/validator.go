package health

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Validation tolerances and physiological plausibility bounds.
const (
	StageSumTolerance = 0.1 // hours, stage sum vs total sleep
	DurationTolerance = 0.5 // hours, end-start span vs stated value
	MinPlausibleHR    = 25  // bpm
	MaxPlausibleHR    = 250 // bpm
	MinPlausibleSpO2  = 50  // percent
	MaxPlausibleSpO2  = 100 // percent
)

// Severity distinguishes malformed data (warning) from physiologically
// impossible data (error). Either way the sample is dropped; the split
// lets a caller surface a series as degraded instead of discarding it.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue describes why a single raw sample was rejected.
type Issue struct {
	Metric   MetricType
	Date     string
	Reason   string
	Severity Severity
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s [%s]: %s", i.Metric, i.Date, i.Severity, i.Reason)
}

// dateFormats are the accepted sample timestamp layouts, tried in order.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateSample checks a raw candidate against the structural and
// plausibility rules for its metric type. It returns the validated
// sample, or a non-nil Issue describing the rejection. The canonical
// unit is assigned when the source omits one. Pure function.
func ValidateSample(raw RawSample, metric MetricType) (Sample, *Issue) {
	reject := func(sev Severity, format string, args ...any) (Sample, *Issue) {
		return Sample{}, &Issue{
			Metric:   metric,
			Date:     raw.Date,
			Reason:   fmt.Sprintf(format, args...),
			Severity: sev,
		}
	}

	if raw.Value == nil {
		return reject(SeverityWarning, "missing value")
	}
	value := *raw.Value
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return reject(SeverityWarning, "non-finite value")
	}

	date, ok := parseDate(raw.Date)
	if !ok {
		return reject(SeverityWarning, "unparseable date %q", raw.Date)
	}

	// Plausibility bounds. Violations are hard errors: the data is
	// well-formed but cannot describe a living subject.
	switch metric {
	case MetricHeartRate, MetricRestingHeartRate:
		if value < MinPlausibleHR || value > MaxPlausibleHR {
			return reject(SeverityError, "heart rate %.0f bpm outside plausible range", value)
		}
	case MetricOxygenSaturation:
		if value < MinPlausibleSpO2 || value > MaxPlausibleSpO2 {
			return reject(SeverityError, "SpO2 %.0f%% outside plausible range", value)
		}
	default:
		if metric.Cumulative() && value < 0 {
			return reject(SeverityError, "negative %s value %.0f", metric, value)
		}
	}

	sample := Sample{
		Date:   date,
		Value:  value,
		Unit:   raw.Unit,
		Source: raw.Source,
	}
	if sample.Unit == "" {
		sample.Unit = DefaultUnit(metric)
	}

	if metric == MetricSleep {
		detail, issue := validateSleepDetail(raw, value, date)
		if issue != nil {
			issue.Metric = metric
			issue.Date = raw.Date
			return Sample{}, issue
		}
		sample.Sleep = detail
	}

	return sample, nil
}

// validateSleepDetail applies the sleep consistency rules: stage sums
// must agree with the stated total within StageSumTolerance, time in
// bed cannot be shorter than sleep, and the end-start span must agree
// with the stated value within DurationTolerance.
func validateSleepDetail(raw RawSample, value float64, date time.Time) (*SleepDetail, *Issue) {
	detail := &SleepDetail{
		TimeInBed:  raw.TimeInBed,
		Efficiency: raw.SleepEfficiency,
	}

	if raw.Stages != nil {
		stages := SleepStages{
			Deep:  raw.Stages.Deep,
			Core:  raw.Stages.Core,
			REM:   raw.Stages.REM,
			Awake: raw.Stages.Awake,
		}
		asleep := stages.Deep + stages.Core + stages.REM
		if math.Abs(asleep-value) > StageSumTolerance {
			return nil, &Issue{
				Reason:   fmt.Sprintf("stage sum %.1fh disagrees with total %.1fh", asleep, value),
				Severity: SeverityWarning,
			}
		}
		detail.Stages = &stages
	}

	if raw.TimeInBed != nil && *raw.TimeInBed < value {
		return nil, &Issue{
			Reason:   fmt.Sprintf("time in bed %.1fh less than sleep %.1fh", *raw.TimeInBed, value),
			Severity: SeverityWarning,
		}
	}

	if raw.EndDate != "" {
		end, ok := parseDate(raw.EndDate)
		if !ok {
			return nil, &Issue{
				Reason:   fmt.Sprintf("unparseable end date %q", raw.EndDate),
				Severity: SeverityWarning,
			}
		}
		span := end.Sub(date).Hours()
		if math.Abs(span-value) > DurationTolerance {
			return nil, &Issue{
				Reason:   fmt.Sprintf("span %.1fh disagrees with stated %.1fh", span, value),
				Severity: SeverityWarning,
			}
		}
		detail.EndDate = end
	}

	return detail, nil
}

// ValidateSeries validates every candidate, drops rejects, and returns
// the surviving samples sorted newest-first along with the accumulated
// issues. A rejected sample never aborts the series.
func ValidateSeries(raws []RawSample, metric MetricType) (Series, []Issue) {
	series := Series{Metric: metric}
	var issues []Issue

	for _, raw := range raws {
		sample, issue := ValidateSample(raw, metric)
		if issue != nil {
			issues = append(issues, *issue)
			continue
		}
		series.Samples = append(series.Samples, sample)
	}

	sort.SliceStable(series.Samples, func(i, j int) bool {
		return series.Samples[i].Date.After(series.Samples[j].Date)
	})

	return series, issues
}
