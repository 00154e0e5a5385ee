package nutrition

import (
	"math"

	"Fitforge_V1.0/internal/model"
)

// ScaleDay rescales every present slot of a day so the day's calorie total
// lands on target (within per-slot rounding). No slot is exempt; the factor
// is applied uniformly to all four macros. Day totals are recomputed from
// the slots afterwards.
func ScaleDay(day *model.DailyMealPlan, target float64) {
	unscaled := 0
	for _, meal := range day.Meals() {
		unscaled += meal.Calories
	}
	if unscaled > 0 {
		factor := target / float64(unscaled)
		for _, meal := range day.Meals() {
			scaleMeal(meal, factor)
		}
	}
	RecomputeTotals(day)
}

// ScaleMealAmortized rescales one ad-hoc meal against a 7-day amortization:
// a single added meal is assumed to recur daily, so its share of the target
// is target / (calories x 7).
func ScaleMealAmortized(meal *model.PlanMeal, target float64) {
	if meal.Calories <= 0 {
		return
	}
	factor := target / (float64(meal.Calories) * 7)
	scaleMeal(meal, factor)
}

func scaleMeal(meal *model.PlanMeal, factor float64) {
	meal.Calories = int(math.Round(float64(meal.Calories) * factor))
	meal.Protein = round1(meal.Protein * factor)
	meal.Carbs = round1(meal.Carbs * factor)
	meal.Fats = round1(meal.Fats * factor)
}

// RecomputeTotals rewrites the day's rolled-up totals as the sum of present
// slots. Totals are derived state; every mutation must call this before the
// day is persisted.
func RecomputeTotals(day *model.DailyMealPlan) {
	day.TotalCalories = 0
	day.TotalProtein = 0
	day.TotalCarbs = 0
	day.TotalFats = 0
	for _, meal := range day.Meals() {
		day.TotalCalories += meal.Calories
		day.TotalProtein += meal.Protein
		day.TotalCarbs += meal.Carbs
		day.TotalFats += meal.Fats
	}
	day.TotalProtein = round1(day.TotalProtein)
	day.TotalCarbs = round1(day.TotalCarbs)
	day.TotalFats = round1(day.TotalFats)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
