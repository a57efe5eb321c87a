package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"vitals/internal/analysis"
	"vitals/internal/health"
	"vitals/internal/provider"
	"vitals/internal/scoring"
	"vitals/internal/store"
)

// Fetcher supplies raw samples for a metric type over a period. The
// vendor API client satisfies this.
type Fetcher interface {
	FetchSamples(ctx context.Context, metric health.MetricType, period health.Period) ([]health.RawSample, error)
}

// SampleCache is the optional read/write cache collaborator, keyed by
// (metric type, period). Both the sqlite store and the Redis cache
// satisfy this.
type SampleCache interface {
	GetSamples(metric health.MetricType, period health.Period) ([]health.RawSample, time.Time, error)
	PutSamples(metric health.MetricType, period health.Period, samples []health.RawSample) error
}

// assessmentMetrics are the metric types fetched for a full assessment.
// Resting heart rate is derived from the heart rate series, not fetched.
var assessmentMetrics = []health.MetricType{
	health.MetricHeartRate,
	health.MetricHRV,
	health.MetricVO2Max,
	health.MetricOxygenSaturation,
	health.MetricRespiratoryRate,
	health.MetricSteps,
	health.MetricExerciseMinutes,
	health.MetricActiveEnergy,
	health.MetricWeight,
	health.MetricBodyFat,
	health.MetricMuscleMass,
	health.MetricSleep,
	health.MetricProtein,
	health.MetricWater,
	health.MetricDietaryEnergy,
}

// cacheTTL is how long a cached payload stays fresh per period.
func cacheTTL(period health.Period) time.Duration {
	switch period {
	case health.PeriodDay:
		return 15 * time.Minute
	case health.PeriodWeek:
		return time.Hour
	default:
		return 6 * time.Hour
	}
}

// AssessmentService orchestrates the pipeline: concurrent fetch fan-out
// per metric, then Validate -> Stats -> Normalize -> Score ->
// Recommend -> Trend over the joined results.
type AssessmentService struct {
	fetcher Fetcher
	cache   SampleCache  // optional
	history *store.Store // optional
	profile health.Profile
	retry   provider.RetryPolicy
	now     func() time.Time
}

// NewAssessmentService creates the orchestrator. cache and history may
// be nil; the pipeline then always fetches and keeps no snapshots.
func NewAssessmentService(fetcher Fetcher, cache SampleCache, history *store.Store, profile health.Profile) *AssessmentService {
	return &AssessmentService{
		fetcher: fetcher,
		cache:   cache,
		history: history,
		profile: profile,
		retry:   provider.DefaultRetryPolicy(),
		now:     time.Now,
	}
}

// RunOptions controls a single assessment run.
type RunOptions struct {
	Period       health.Period
	ForceRefresh bool // bypass the cache
}

// RunResult is the full output of one pipeline run: the assessment,
// the intermediate per-metric stats for callers that want them, and
// the degradation report.
type RunResult struct {
	Assessment  scoring.Assessment
	Stats       map[health.MetricType]analysis.Stats
	Issues      []health.Issue
	FetchErrors map[health.MetricType]error

	// PreviousScore is the overall score of the last stored run,
	// for delta display. Nil when there is no history.
	PreviousScore *float64
}

// RunAssessment drives the whole pipeline for one request. A metric
// that cannot be fetched degrades to an empty series and is reported
// in FetchErrors; the run fails outright only on context cancellation.
func (s *AssessmentService) RunAssessment(ctx context.Context, opts RunOptions) (*RunResult, error) {
	period := opts.Period
	if !period.Valid() {
		period = health.PeriodWeek
	}

	type fetched struct {
		series health.Series
		issues []health.Issue
		err    error
	}
	results := make([]fetched, len(assessmentMetrics))

	g, gctx := errgroup.WithContext(ctx)
	for i, metric := range assessmentMetrics {
		g.Go(func() error {
			series, issues, err := s.fetchSeries(gctx, metric, period, opts.ForceRefresh)
			results[i] = fetched{series: series, issues: issues, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	result := &RunResult{
		Stats:       make(map[health.MetricType]analysis.Stats, len(assessmentMetrics)),
		FetchErrors: make(map[health.MetricType]error),
	}

	series := make(map[health.MetricType]health.Series, len(assessmentMetrics))
	for i, metric := range assessmentMetrics {
		r := results[i]
		if r.err != nil {
			result.FetchErrors[metric] = r.err
		}
		result.Issues = append(result.Issues, r.issues...)
		series[metric] = r.series
		result.Stats[metric] = analysis.Compute(r.series, s.profile, now)
	}

	input := s.buildInput(result.Stats)

	if s.history != nil {
		if prev, err := s.history.LatestAssessment(); err == nil && prev.OverallScore != nil {
			result.PreviousScore = prev.OverallScore
		}
	}

	assessment := scoring.Score(input, s.profile)
	assessment.GeneratedAt = now
	assessment.Trends = metricTrends(series)
	result.Assessment = assessment

	if s.history != nil && assessment.Status == scoring.StatusOK {
		s.saveSnapshot(assessment)
	}

	return result, nil
}

// fetchSeries resolves one metric: consult the cache unless bypassed,
// otherwise fetch with retries, cache the payload, and validate. On
// retry exhaustion it returns an empty series and the fetch error.
func (s *AssessmentService) fetchSeries(ctx context.Context, metric health.MetricType, period health.Period, force bool) (health.Series, []health.Issue, error) {
	if s.cache != nil && !force {
		if raws, fetchedAt, err := s.cache.GetSamples(metric, period); err == nil {
			if s.now().Sub(fetchedAt) <= cacheTTL(period) {
				valid, issues := health.ValidateSeries(raws, metric)
				return valid, issues, nil
			}
		}
	}

	var raws []health.RawSample
	err := s.retry.Do(ctx, func(ctx context.Context) error {
		var fetchErr error
		raws, fetchErr = s.fetcher.FetchSamples(ctx, metric, period)
		return fetchErr
	})
	if err != nil {
		// No data for this metric; the assessment degrades.
		return health.Series{Metric: metric}, nil, err
	}

	if s.cache != nil {
		// Cache failures are not worth failing a fetch that succeeded.
		_ = s.cache.PutSamples(metric, period, raws)
	}

	valid, issues := health.ValidateSeries(raws, metric)
	return valid, issues, nil
}

// buildInput translates per-metric stats into the optional raw values
// the normalizer consumes. Absent data stays nil so the composite
// scorer can exclude it from weighting.
func (s *AssessmentService) buildInput(stats map[health.MetricType]analysis.Stats) scoring.Input {
	input := scoring.Input{
		VO2Max:    representative(stats[health.MetricVO2Max]),
		RestingHR: stats[health.MetricHeartRate].RestingRate,
		HRV:       representative(stats[health.MetricHRV]),
		SpO2:      representative(stats[health.MetricOxygenSaturation]),

		DailySteps:      stats[health.MetricSteps].WeeklyAvg,
		ExerciseMinutes: stats[health.MetricExerciseMinutes].WeeklyAvg,
		ActiveEnergy:    stats[health.MetricActiveEnergy].WeeklyAvg,

		SleepQuality:     stats[health.MetricSleep].SleepQuality,
		HRRecovery:       stats[health.MetricHeartRate].RecoveryDrop,
		SleepConsistency: stats[health.MetricSleep].Consistency,

		EnergyIntake: stats[health.MetricDietaryEnergy].WeeklyAvg,
	}

	weight := s.profile.WeightKG
	if ws := stats[health.MetricWeight]; ws.Count > 0 {
		weight = ws.Latest
	}

	if weight > 0 {
		if bmi := s.profile.BMI(weight); bmi > 0 {
			input.BMI = &bmi
		}
		if ms := stats[health.MetricMuscleMass]; ms.Count > 0 {
			pct := ms.Latest / weight * 100
			input.MusclePctOfWt = &pct
		}
		if protein := stats[health.MetricProtein].WeeklyAvg; protein != nil {
			perKG := *protein / weight
			input.ProteinGPerKG = &perKG
		}
		if water := stats[health.MetricWater].WeeklyAvg; water != nil {
			perKG := *water / weight
			input.WaterMLPerKG = &perKG
		}
	}

	if bf := stats[health.MetricBodyFat]; bf.Count > 0 {
		v := bf.Latest
		input.BodyFatPct = &v
	}

	return input
}

// representative picks the value a point-measurement metric feeds into
// normalization: the recent-window average when there is one, the
// latest sample otherwise, nil for an empty series.
func representative(stats analysis.Stats) *float64 {
	if stats.Count == 0 {
		return nil
	}
	if stats.Recent.Count > 0 {
		v := stats.Recent.Avg
		return &v
	}
	v := stats.Latest
	return &v
}

// metricTrends labels every series with enough history.
func metricTrends(series map[health.MetricType]health.Series) map[health.MetricType]analysis.Trend {
	trends := make(map[health.MetricType]analysis.Trend)
	for metric, s := range series {
		if s.Len() < 4 {
			continue
		}
		trends[metric] = analysis.ClassifyTrend(s.ChronologicalValues())
	}
	return trends
}

func (s *AssessmentService) saveSnapshot(a scoring.Assessment) {
	domains := make(map[string]float64, len(a.Domains))
	for domain, ds := range a.Domains {
		domains[string(domain)] = ds.Score
	}
	// Snapshot persistence is an optimization; a failure here must not
	// fail the assessment that was already computed.
	_, _ = s.history.SaveAssessment(store.AssessmentSnapshot{
		GeneratedAt:  a.GeneratedAt,
		Status:       string(a.Status),
		OverallScore: a.OverallScore,
		Category:     string(a.Category),
		DomainScores: domains,
	})
}

// History returns stored assessment snapshots, newest first. Empty when
// no history store is configured.
func (s *AssessmentService) History(limit int) ([]store.AssessmentSnapshot, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListAssessments(limit)
}
