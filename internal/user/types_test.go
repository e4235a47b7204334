package user

import (
	"testing"
)

func TestHealthScore(t *testing.T) {
	u := New("alice")
	u.Health.AddExercise(30)
	u.Health.AddWater(2)
	u.Health.AddSleep(8)

	if got := u.HealthScore(); got != 90 {
		t.Errorf("HealthScore = %d, want 90", got)
	}
}

func TestEcoScore_Truncates(t *testing.T) {
	tests := []struct {
		plastic, carbon float64
		want            int
	}{
		{2.7, 1.2, 40},
		{2.9, 0, 20},
		{0.99, 0.99, 0},
		{0, 3, 60},
	}

	for _, tt := range tests {
		u := New("eco")
		u.Environment.AddPlastic(tt.plastic)
		u.Environment.AddCarbon(tt.carbon)
		if got := u.EcoScore(); got != tt.want {
			t.Errorf("EcoScore(plastic=%v, carbon=%v) = %d, want %d", tt.plastic, tt.carbon, got, tt.want)
		}
	}
}

func TestMetrics_Accumulate(t *testing.T) {
	u := New("alice")
	u.Health.AddExercise(30)
	u.Health.AddExercise(15)
	u.Health.AddExercise(-50)

	if u.Health.ExerciseMinutes != -5 {
		t.Errorf("ExerciseMinutes = %d, want -5 (negative deltas are accepted)", u.Health.ExerciseMinutes)
	}

	u.Environment.AddCarbon(0.5)
	u.Environment.AddCarbon(0.75)
	if u.Environment.CarbonReductionKg != 1.25 {
		t.Errorf("CarbonReductionKg = %v, want 1.25", u.Environment.CarbonReductionKg)
	}
}

func TestAwardBadge(t *testing.T) {
	u := New("alice")
	u.AwardBadge(HealthChampion, HealthChampionDescription)
	u.AwardBadge(HealthChampion, HealthChampionDescription)
	u.AwardBadge("", "")

	if len(u.Badges) != 3 {
		t.Fatalf("badges = %d, want 3", len(u.Badges))
	}
	if u.Badges[0] != NewBadge(HealthChampion, HealthChampionDescription) {
		t.Errorf("badge[0] = %+v", u.Badges[0])
	}
	if got := u.BadgeCount(HealthChampion); got != 2 {
		t.Errorf("BadgeCount = %d, want 2", got)
	}
}

func TestNew_Zeroed(t *testing.T) {
	u := New("")
	if u.HealthScore() != 0 || u.EcoScore() != 0 || len(u.Badges) != 0 {
		t.Errorf("New user not zeroed: %+v", u)
	}
}
