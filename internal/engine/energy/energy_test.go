package energy

import (
	"math"
	"testing"

	"Fitforge_V1.0/internal/model"
)

func baseProfile() model.Profile {
	return model.Profile{
		Age:           30,
		WeightKg:      70,
		HeightCm:      175,
		Gender:        model.GenderMale,
		Goal:          model.GoalGeneralFitness,
		AvailableDays: 4,
	}
}

func TestBMR(t *testing.T) {
	tests := []struct {
		name   string
		gender model.Gender
		want   float64
	}{
		{"male 70kg 175cm 30y", model.GenderMale, 1648.75}, // 10*70 + 6.25*175 - 5*30 + 5
		{"female 70kg 175cm 30y", model.GenderFemale, 1482.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseProfile()
			p.Gender = tt.gender
			got := BMR(p)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("BMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTDEE_MultiplierKeysOffAvailableDays(t *testing.T) {
	tests := []struct {
		days int
		mult float64
	}{
		{0, 1.2},
		{1, 1.2},
		{2, 1.375},
		{3, 1.375},
		{4, 1.55},
		{5, 1.55},
		{6, 1.725},
		{7, 1.9},
	}

	for _, tt := range tests {
		p := baseProfile()
		p.AvailableDays = tt.days
		// ActivityLevel must not influence the multiplier.
		p.ActivityLevel = model.ActivityHigh
		want := BMR(p) * tt.mult
		if got := TDEE(p); math.Abs(got-want) > 0.01 {
			t.Errorf("TDEE(days=%d) = %v, want %v", tt.days, got, want)
		}
	}
}

func TestTargetCalories(t *testing.T) {
	tests := []struct {
		name string
		goal model.Goal
		want float64
	}{
		{"general fitness keeps TDEE", model.GoalGeneralFitness, 2555.5625}, // 1648.75 * 1.55
		{"fat loss deficit", model.GoalFatLoss, 2055.5625},
		{"muscle gain surplus", model.GoalMuscleGain, 2855.5625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseProfile()
			p.Goal = tt.goal
			if got := TargetCalories(p); math.Abs(got-tt.want) > 0.01 {
				t.Errorf("TargetCalories() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetProtein(t *testing.T) {
	p := baseProfile()
	if got := TargetProtein(p); math.Abs(got-126.0) > 0.01 {
		t.Errorf("TargetProtein() = %v, want 126", got)
	}
}
