package scoring

import "vitals/internal/health"

// Tier is a fitness classification against the VO2max standards table.
type Tier string

const (
	TierPoor      Tier = "poor"
	TierFair      Tier = "fair"
	TierGood      Tier = "good"
	TierExcellent Tier = "excellent"
	TierSuperior  Tier = "superior"
)

// vo2maxRow holds the tier lower bounds (ml/kg/min) for one gender and
// age decade. A value below the fair bound classifies as poor.
type vo2maxRow struct {
	gender    health.Gender
	minAge    int
	maxAge    int
	fair      float64
	good      float64
	excellent float64
	superior  float64
}

// vo2maxTable covers ages 20-69 per gender. Out-of-table ages snap to
// the nearest defined decade; unknown gender uses the male rows.
var vo2maxTable = []vo2maxRow{
	{health.GenderMale, 20, 29, 38, 46, 56, 62},
	{health.GenderMale, 30, 39, 35, 43, 53, 59},
	{health.GenderMale, 40, 49, 32, 40, 48, 55},
	{health.GenderMale, 50, 59, 29, 36, 44, 51},
	{health.GenderMale, 60, 69, 26, 32, 40, 47},
	{health.GenderFemale, 20, 29, 32, 40, 50, 57},
	{health.GenderFemale, 30, 39, 30, 37, 46, 53},
	{health.GenderFemale, 40, 49, 27, 34, 43, 50},
	{health.GenderFemale, 50, 59, 24, 30, 38, 45},
	{health.GenderFemale, 60, 69, 22, 27, 34, 42},
}

// tierScores maps each tier to its normalized sub-score.
var tierScores = map[Tier]float64{
	TierPoor:      30,
	TierFair:      50,
	TierGood:      70,
	TierExcellent: 85,
	TierSuperior:  100,
}

func vo2maxRowFor(profile health.Profile) vo2maxRow {
	gender := profile.Gender
	if gender != health.GenderFemale {
		gender = health.GenderMale
	}

	age := profile.AgeOrDefault()
	var best vo2maxRow
	bestDist := -1
	for _, row := range vo2maxTable {
		if row.gender != gender {
			continue
		}
		dist := 0
		if age < row.minAge {
			dist = row.minAge - age
		} else if age > row.maxAge {
			dist = age - row.maxAge
		}
		if bestDist < 0 || dist < bestDist {
			best = row
			bestDist = dist
		}
	}
	return best
}

// VO2MaxTier classifies a VO2max value against the age/gender standards
// table.
func VO2MaxTier(value float64, profile health.Profile) Tier {
	row := vo2maxRowFor(profile)
	switch {
	case value >= row.superior:
		return TierSuperior
	case value >= row.excellent:
		return TierExcellent
	case value >= row.good:
		return TierGood
	case value >= row.fair:
		return TierFair
	default:
		return TierPoor
	}
}

// NormalizeVO2Max maps a VO2max reading to a 0-100 sub-score via the
// standards table. Absent values score 0.
func NormalizeVO2Max(value *float64, profile health.Profile) float64 {
	if value == nil {
		return 0
	}
	return tierScores[VO2MaxTier(*value, profile)]
}
