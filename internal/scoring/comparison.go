package scoring

// Comparison holds estimated percentile standings along three axes.
// These are monotone mappings of the overall score, not calibrated
// against a population sample.
type Comparison struct {
	AgeGroup int
	Gender   int
	Global   int
}

// Percentile offsets per comparison axis.
const (
	ageGroupOffset = 10
	genderOffset   = 5
)

// EstimatePercentiles maps an overall score to percentile bands,
// clamped to [1, 99].
func EstimatePercentiles(overall float64) Comparison {
	return Comparison{
		AgeGroup: clampPercentile(int(overall) + ageGroupOffset),
		Gender:   clampPercentile(int(overall) + genderOffset),
		Global:   clampPercentile(int(overall)),
	}
}

func clampPercentile(p int) int {
	if p < 1 {
		return 1
	}
	if p > 99 {
		return 99
	}
	return p
}
