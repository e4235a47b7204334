// Package user provides the user entity, its activity metrics and the in-memory
// registry for the Eco-Wellness tracker.
package user

// Badge names awarded by the top performer rankings.
const (
	HealthChampion = "Health Champion"
	EcoChampion    = "Eco Champion"
)

// Badge descriptions matching the names above.
const (
	HealthChampionDescription = "Awarded for excellent health habits!"
	EcoChampionDescription    = "Awarded for outstanding environmental impact reduction!"
)

// HealthMetrics accumulates a user's logged health activity.
type HealthMetrics struct {
	ExerciseMinutes   int
	WaterIntakeLiters int
	SleepHours        int
}

// AddExercise adds minutes of exercise. Negative values are accepted.
func (m *HealthMetrics) AddExercise(minutes int) { m.ExerciseMinutes += minutes }

// AddWater adds liters of water intake.
func (m *HealthMetrics) AddWater(liters int) { m.WaterIntakeLiters += liters }

// AddSleep adds hours of sleep.
func (m *HealthMetrics) AddSleep(hours int) { m.SleepHours += hours }

// EnvironmentalMetrics accumulates a user's logged environmental activity.
type EnvironmentalMetrics struct {
	PlasticReductionKg float64
	CarbonReductionKg  float64
}

// AddPlastic adds kilograms of plastic reduction.
func (m *EnvironmentalMetrics) AddPlastic(kg float64) { m.PlasticReductionKg += kg }

// AddCarbon adds kilograms of carbon reduction.
func (m *EnvironmentalMetrics) AddCarbon(kg float64) { m.CarbonReductionKg += kg }

// Badge is an achievement attached to a user. Badges are never persisted.
type Badge struct {
	Name        string
	Description string
}

// NewBadge creates a badge. Neither field is validated.
func NewBadge(name, description string) Badge {
	return Badge{Name: name, Description: description}
}

// User is one tracked identity. A User owns its metrics and badges.
type User struct {
	// Username is the registry key. Exact lookups are case-sensitive.
	Username string

	Health      HealthMetrics
	Environment EnvironmentalMetrics

	// Badges in award order. Duplicates are allowed.
	Badges []Badge
}

// New returns a user with zeroed metrics and no badges.
func New(username string) *User {
	return &User{Username: username}
}

// HealthScore is exercise minutes plus water liters times 10 plus sleep hours times 5.
func (u *User) HealthScore() int {
	h := u.Health
	return h.ExerciseMinutes + h.WaterIntakeLiters*10 + h.SleepHours*5
}

// EcoScore truncates each reduction to whole kilograms before weighting, so
// fractions below 1kg contribute nothing.
func (u *User) EcoScore() int {
	e := u.Environment
	return int(e.PlasticReductionKg)*10 + int(e.CarbonReductionKg)*20
}

// AwardBadge appends a new badge.
func (u *User) AwardBadge(name, description string) {
	u.Badges = append(u.Badges, NewBadge(name, description))
}

// BadgeCount returns how many times a badge with the given name was awarded.
func (u *User) BadgeCount(name string) int {
	n := 0
	for _, b := range u.Badges {
		if b.Name == name {
			n++
		}
	}
	return n
}
