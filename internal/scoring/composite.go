package scoring

import (
	"time"

	"vitals/internal/analysis"
	"vitals/internal/health"
)

// Domain is one scoring category aggregating several metrics.
type Domain string

const (
	DomainCardiovascular  Domain = "cardiovascular"
	DomainActivity        Domain = "activity"
	DomainBodyComposition Domain = "body_composition"
	DomainRecovery        Domain = "recovery"
	DomainNutrition       Domain = "nutrition"
)

// DomainOrder fixes iteration order wherever deterministic output
// matters.
var DomainOrder = []Domain{
	DomainCardiovascular,
	DomainActivity,
	DomainBodyComposition,
	DomainRecovery,
	DomainNutrition,
}

// domainWeights are the overall-score weights. Missing domains are
// excluded and the remaining weights re-normalized.
var domainWeights = map[Domain]float64{
	DomainCardiovascular:  0.35,
	DomainActivity:        0.25,
	DomainBodyComposition: 0.15,
	DomainRecovery:        0.15,
	DomainNutrition:       0.10,
}

// Category is the 7-tier label ladder for composite scores.
type Category string

const (
	CategoryElite        Category = "elite"
	CategoryExcellent    Category = "excellent"
	CategoryGood         Category = "good"
	CategoryFair         Category = "fair"
	CategoryBelowAverage Category = "below_average"
	CategoryPoor         Category = "poor"
	CategoryVeryPoor     Category = "very_poor"
)

// CategoryFor maps a 0-100 score onto the category ladder.
func CategoryFor(score float64) Category {
	switch {
	case score >= 90:
		return CategoryElite
	case score >= 80:
		return CategoryExcellent
	case score >= 70:
		return CategoryGood
	case score >= 60:
		return CategoryFair
	case score >= 50:
		return CategoryBelowAverage
	case score >= 40:
		return CategoryPoor
	default:
		return CategoryVeryPoor
	}
}

// Status reports whether an assessment could be computed at all.
type Status string

const (
	StatusOK     Status = "ok"
	StatusNoData Status = "no_data"
)

// DomainScore is the normalized result for one domain.
type DomainScore struct {
	Score     float64
	Category  Category
	SubScores map[string]float64
}

// Input carries the optional raw values feeding the normalizer. A nil
// field means the metric was unavailable and its sub-score is excluded
// from weighting rather than scored as zero.
type Input struct {
	VO2Max    *float64
	RestingHR *float64
	HRV       *float64
	SpO2      *float64

	DailySteps      *float64
	ExerciseMinutes *float64
	ActiveEnergy    *float64

	BMI           *float64
	BodyFatPct    *float64
	MusclePctOfWt *float64

	SleepQuality     *float64
	HRRecovery       *float64
	SleepConsistency *float64

	ProteinGPerKG *float64
	WaterMLPerKG  *float64
	EnergyIntake  *float64
}

// Assessment is the composite result of one pipeline run. It is a pure
// function of its inputs and the user profile, with no persisted
// identity of its own.
type Assessment struct {
	GeneratedAt     time.Time
	Status          Status
	OverallScore    *float64
	Category        Category
	Domains         map[Domain]DomainScore
	Strengths       []Domain
	Weaknesses      []Domain
	Recommendations []Recommendation
	Trends          map[health.MetricType]analysis.Trend
	Comparison      *Comparison
}

// component is one weighted sub-score; nil score marks an absent input.
type component struct {
	name   string
	weight float64
	score  *float64
}

// combine computes the weighted average over present components,
// re-normalizing the weights so they sum to 1 across what is present.
// ok is false when every component is absent.
func combine(components []component) (score float64, subs map[string]float64, ok bool) {
	subs = make(map[string]float64)
	var weightSum, total float64
	for _, c := range components {
		if c.score == nil {
			continue
		}
		subs[c.name] = *c.score
		weightSum += c.weight
		total += c.weight * *c.score
	}
	if weightSum == 0 {
		return 0, nil, false
	}
	return clampScore(total / weightSum), subs, true
}

func norm(raw *float64, fn func(*float64) float64) *float64 {
	if raw == nil {
		return nil
	}
	s := fn(raw)
	return &s
}

// Score combines the normalized sub-scores into per-domain scores and a
// weighted overall score. Domains with no available inputs are left out
// of the Domains map and the overall weighting. When nothing at all is
// available the result carries StatusNoData and a nil OverallScore
// instead of a misleading zero.
func Score(input Input, profile health.Profile) Assessment {
	domains := make(map[Domain]DomainScore)

	vo2 := func(v *float64) float64 { return NormalizeVO2Max(v, profile) }
	fat := func(v *float64) float64 { return NormalizeBodyFat(v, profile.Gender) }
	muscle := func(v *float64) float64 { return NormalizeMuscleMass(v, profile.Gender) }

	domainComponents := map[Domain][]component{
		DomainCardiovascular: {
			{"vo2max", 0.40, norm(input.VO2Max, vo2)},
			{"resting_hr", 0.25, norm(input.RestingHR, NormalizeRestingHR)},
			{"hrv", 0.20, norm(input.HRV, NormalizeHRV)},
			{"spo2", 0.15, norm(input.SpO2, NormalizeSpO2)},
		},
		DomainActivity: {
			{"steps", 0.40, norm(input.DailySteps, NormalizeSteps)},
			{"exercise_minutes", 0.40, norm(input.ExerciseMinutes, NormalizeExerciseMinutes)},
			{"active_energy", 0.20, norm(input.ActiveEnergy, NormalizeActiveEnergy)},
		},
		DomainBodyComposition: {
			{"body_fat", 0.40, norm(input.BodyFatPct, fat)},
			{"bmi", 0.30, norm(input.BMI, NormalizeBMI)},
			{"muscle_mass", 0.30, norm(input.MusclePctOfWt, muscle)},
		},
		DomainRecovery: {
			{"sleep_quality", 0.45, norm(input.SleepQuality, NormalizeScore)},
			{"hr_recovery", 0.30, norm(input.HRRecovery, NormalizeHRRecovery)},
			{"sleep_consistency", 0.25, norm(input.SleepConsistency, NormalizeScore)},
		},
		DomainNutrition: {
			{"protein", 0.40, norm(input.ProteinGPerKG, NormalizeProtein)},
			{"hydration", 0.35, norm(input.WaterMLPerKG, NormalizeHydration)},
			{"energy_intake", 0.25, norm(input.EnergyIntake, NormalizeEnergyIntake)},
		},
	}

	for domain, components := range domainComponents {
		score, subs, ok := combine(components)
		if !ok {
			continue
		}
		domains[domain] = DomainScore{
			Score:     score,
			Category:  CategoryFor(score),
			SubScores: subs,
		}
	}

	assessment := Assessment{
		GeneratedAt: time.Now(),
		Domains:     domains,
	}

	if len(domains) == 0 {
		assessment.Status = StatusNoData
		return assessment
	}

	var overallComponents []component
	for domain, ds := range domains {
		score := ds.Score
		overallComponents = append(overallComponents, component{
			name:   string(domain),
			weight: domainWeights[domain],
			score:  &score,
		})
	}
	overall, _, _ := combine(overallComponents)

	assessment.Status = StatusOK
	assessment.OverallScore = &overall
	assessment.Category = CategoryFor(overall)
	assessment.Strengths, assessment.Weaknesses = classifyDomains(domains)
	assessment.Recommendations = Recommendations(domains)
	comparison := EstimatePercentiles(overall)
	assessment.Comparison = &comparison

	return assessment
}

// Strength and weakness cutoffs for domain classification.
const (
	strengthCutoff = 80
	weaknessCutoff = 70
)

func classifyDomains(domains map[Domain]DomainScore) (strengths, weaknesses []Domain) {
	for _, domain := range DomainOrder {
		ds, ok := domains[domain]
		if !ok {
			continue
		}
		switch {
		case ds.Score >= strengthCutoff:
			strengths = append(strengths, domain)
		case ds.Score < weaknessCutoff:
			weaknesses = append(weaknesses, domain)
		}
	}
	return strengths, weaknesses
}
