package scoring

// Priority orders recommendations by urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one actionable suggestion derived from a weak
// domain score.
type Recommendation struct {
	Domain         Domain
	Priority       Priority
	Title          string
	Description    string
	ExpectedImpact string
	Timeframe      string
	Actions        []string
}

// RecommendationThreshold is the domain score below which a
// recommendation is emitted.
const RecommendationThreshold = 70

// recommendationTemplates are the fixed per-domain suggestions.
var recommendationTemplates = map[Domain]Recommendation{
	DomainCardiovascular: {
		Domain:         DomainCardiovascular,
		Priority:       PriorityHigh,
		Title:          "Build aerobic capacity",
		Description:    "Cardiovascular markers are below target. Regular zone 2 endurance work raises VO2max and lowers resting heart rate.",
		ExpectedImpact: "+5-10 VO2max points over a training block",
		Timeframe:      "8-12 weeks",
		Actions: []string{
			"Add three 30-45 minute zone 2 sessions per week",
			"Include one interval session (4x4 minutes hard) weekly",
			"Track morning resting heart rate for a downward trend",
			"Keep easy days genuinely easy to allow adaptation",
		},
	},
	DomainActivity: {
		Domain:         DomainActivity,
		Priority:       PriorityMedium,
		Title:          "Move more through the day",
		Description:    "Daily movement volume is below target. Consistent step counts and exercise minutes matter more than occasional big days.",
		ExpectedImpact: "Meets daily activity guidelines within a month",
		Timeframe:      "4-6 weeks",
		Actions: []string{
			"Set a floor of 7,500 steps per day",
			"Schedule a 20-30 minute brisk walk at a fixed time",
			"Break up sitting with short movement breaks each hour",
		},
	},
	DomainBodyComposition: {
		Domain:         DomainBodyComposition,
		Priority:       PriorityMedium,
		Title:          "Improve body composition",
		Description:    "Body composition is outside the ideal range. Combining resistance training with a moderate energy adjustment shifts it sustainably.",
		ExpectedImpact: "1-2% body fat change per month",
		Timeframe:      "12-16 weeks",
		Actions: []string{
			"Strength train two to three times per week",
			"Prioritize protein at every meal",
			"Adjust energy intake by no more than 300-500 kcal/day",
		},
	},
	DomainRecovery: {
		Domain:         DomainRecovery,
		Priority:       PriorityHigh,
		Title:          "Protect sleep and recovery",
		Description:    "Recovery markers are below target. Sleep regularity drives most of the gains; the schedule matters as much as the duration.",
		ExpectedImpact: "Noticeably better sleep quality scores",
		Timeframe:      "2-4 weeks",
		Actions: []string{
			"Fix a consistent bedtime and wake time, including weekends",
			"Target 7-9 hours in bed per night",
			"Avoid screens and heavy meals in the last hour before bed",
			"Keep hard training at least 3 hours before bedtime",
		},
	},
	DomainNutrition: {
		Domain:         DomainNutrition,
		Priority:       PriorityMedium,
		Title:          "Tighten up nutrition basics",
		Description:    "Nutrition markers are below target. Hitting protein and hydration floors covers most of the gap before any finer tuning.",
		ExpectedImpact: "Better recovery and steadier energy",
		Timeframe:      "2-3 weeks",
		Actions: []string{
			"Aim for 1.2-2.2 g protein per kg body weight daily",
			"Drink 30-45 ml water per kg body weight daily",
			"Log meals for two weeks to find the actual gaps",
		},
	},
}

// Recommendations emits one fixed-template recommendation for every
// scored domain below RecommendationThreshold, high-priority domains
// first. Deterministic for the same inputs.
func Recommendations(domains map[Domain]DomainScore) []Recommendation {
	var high, medium []Recommendation
	for _, domain := range DomainOrder {
		ds, ok := domains[domain]
		if !ok || ds.Score >= RecommendationThreshold {
			continue
		}
		rec := recommendationTemplates[domain]
		if rec.Priority == PriorityHigh {
			high = append(high, rec)
		} else {
			medium = append(medium, rec)
		}
	}
	return append(high, medium...)
}
