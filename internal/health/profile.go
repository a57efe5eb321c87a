package health

// Gender as tracked by the user profile.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel is the self-reported baseline activity of the user.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// DefaultAge is assumed when the profile has no age.
const DefaultAge = 30

// Profile holds the caller-supplied user attributes consumed read-only
// for personalization. The core never mutates it.
type Profile struct {
	Age           int
	Gender        Gender
	HeightCM      float64
	WeightKG      float64
	ActivityLevel ActivityLevel
}

// AgeOrDefault returns the profile age, or DefaultAge when unset.
func (p Profile) AgeOrDefault() int {
	if p.Age <= 0 {
		return DefaultAge
	}
	return p.Age
}

// MaxHeartRate estimates maximum heart rate as 220 minus age.
func (p Profile) MaxHeartRate() float64 {
	return 220 - float64(p.AgeOrDefault())
}

// BMI derives body mass index from a body weight in kilograms and the
// profile height. Returns 0 when height is unknown.
func (p Profile) BMI(weightKG float64) float64 {
	if p.HeightCM <= 0 || weightKG <= 0 {
		return 0
	}
	m := p.HeightCM / 100
	return weightKG / (m * m)
}
