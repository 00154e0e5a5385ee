/*
Package energy computes the calorie and macro targets a plan is generated
against: BMR (Mifflin-St Jeor), TDEE and the goal-adjusted daily target.
All functions are pure and total over a valid profile.
*/
package energy

import "Fitforge_V1.0/internal/model"

// activityMultipliers maps training days per week to the TDEE multiplier.
// The lookup intentionally keys off AvailableDays rather than the profile's
// separate ActivityLevel field; persisted plans were generated with this
// table and it is kept as-is for compatibility.
var activityMultipliers = map[int]float64{
	0: 1.2,
	1: 1.2,
	2: 1.375,
	3: 1.375,
	4: 1.55,
	5: 1.55,
	6: 1.725,
	7: 1.9,
}

// BMR returns the basal metabolic rate in kcal via Mifflin-St Jeor.
func BMR(p model.Profile) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == model.GenderFemale {
		return base - 161
	}
	return base + 5
}

// TDEE returns the total daily energy expenditure in kcal.
func TDEE(p model.Profile) float64 {
	mult, ok := activityMultipliers[p.AvailableDays]
	if !ok {
		mult = activityMultipliers[7]
	}
	return BMR(p) * mult
}

// TargetCalories returns the goal-shifted daily calorie target.
func TargetCalories(p model.Profile) float64 {
	tdee := TDEE(p)
	switch p.Goal {
	case model.GoalFatLoss:
		return tdee - 500
	case model.GoalMuscleGain:
		return tdee + 300
	default:
		return tdee
	}
}

// TargetProtein returns the daily protein target in grams (1.8 g per kg of
// body weight). Used for display and as the macro floor in plan generation.
func TargetProtein(p model.Profile) float64 {
	return p.WeightKg * 1.8
}
