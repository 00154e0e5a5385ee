package nutrition

import (
	"Fitforge_V1.0/internal/model"
	"github.com/rs/zerolog/log"
)

// ToggleMealCompletion flips the completion bit for the slot holding the
// given meal id. Unknown ids no-op.
func ToggleMealCompletion(plan *model.WeeklyMealPlan, dayID, mealID string) {
	day := plan.Day(dayID)
	if day == nil {
		return
	}

	switch {
	case day.Breakfast != nil && day.Breakfast.ID == mealID:
		day.Completed.Breakfast = !day.Completed.Breakfast
	case day.Lunch != nil && day.Lunch.ID == mealID:
		day.Completed.Lunch = !day.Completed.Lunch
	case day.Dinner != nil && day.Dinner.ID == mealID:
		day.Completed.Dinner = !day.Completed.Dinner
	default:
		for i := range day.Snacks {
			if day.Snacks[i].ID == mealID && i < len(day.Completed.Snacks) {
				day.Completed.Snacks[i] = !day.Completed.Snacks[i]
				return
			}
		}
	}
}

// AddMealToDay attaches one ad-hoc meal (custom or favorite) to a day. The
// meal is scaled against the 7-day amortization rule before it lands: a
// single added meal is assumed to recur daily. Non-snack meals fill their
// slot only when it is empty; everything else joins the snack list so no
// existing selection is silently replaced.
func AddMealToDay(plan *model.WeeklyMealPlan, dayID string, cat model.CatalogMeal, targetCalories float64) *model.PlanMeal {
	day := plan.Day(dayID)
	if day == nil {
		return nil
	}

	meal := materializeMeal(cat)
	ScaleMealAmortized(&meal, targetCalories)

	var placed *model.PlanMeal
	switch {
	case cat.MealType == model.MealBreakfast && day.Breakfast == nil:
		day.Breakfast = &meal
		placed = day.Breakfast
	case cat.MealType == model.MealLunch && day.Lunch == nil:
		day.Lunch = &meal
		placed = day.Lunch
	case cat.MealType == model.MealDinner && day.Dinner == nil:
		day.Dinner = &meal
		placed = day.Dinner
	default:
		day.Snacks = append(day.Snacks, meal)
		day.Completed.Snacks = append(day.Completed.Snacks, false)
		placed = &day.Snacks[len(day.Snacks)-1]
	}

	RecomputeTotals(day)
	log.Info().Str("day_id", dayID).Str("meal", cat.Name).Msg("Added ad-hoc meal to day")
	return placed
}

// RemoveMealFromDay clears the slot holding the given meal id and recomputes
// the day's totals. Snack removal keeps the completion array parallel.
// Unknown ids no-op.
func RemoveMealFromDay(plan *model.WeeklyMealPlan, dayID, mealID string) {
	day := plan.Day(dayID)
	if day == nil {
		return
	}

	switch {
	case day.Breakfast != nil && day.Breakfast.ID == mealID:
		day.Breakfast = nil
		day.Completed.Breakfast = false
	case day.Lunch != nil && day.Lunch.ID == mealID:
		day.Lunch = nil
		day.Completed.Lunch = false
	case day.Dinner != nil && day.Dinner.ID == mealID:
		day.Dinner = nil
		day.Completed.Dinner = false
	default:
		for i := range day.Snacks {
			if day.Snacks[i].ID != mealID {
				continue
			}
			day.Snacks = append(day.Snacks[:i], day.Snacks[i+1:]...)
			if i < len(day.Completed.Snacks) {
				day.Completed.Snacks = append(day.Completed.Snacks[:i], day.Completed.Snacks[i+1:]...)
			}
			break
		}
	}

	RecomputeTotals(day)
}

// ReplaceMeal swaps the slot holding mealID for a new catalog meal, then
// rescales the whole day back to the calorie target (the uniform rule; a
// replacement changes the day's unscaled total). Completion for the slot is
// reset. Unknown ids no-op.
func ReplaceMeal(plan *model.WeeklyMealPlan, dayID, mealID string, cat model.CatalogMeal, targetCalories float64) {
	day := plan.Day(dayID)
	if day == nil {
		return
	}

	meal := materializeMeal(cat)
	replaced := false
	switch {
	case day.Breakfast != nil && day.Breakfast.ID == mealID:
		day.Breakfast = &meal
		day.Completed.Breakfast = false
		replaced = true
	case day.Lunch != nil && day.Lunch.ID == mealID:
		day.Lunch = &meal
		day.Completed.Lunch = false
		replaced = true
	case day.Dinner != nil && day.Dinner.ID == mealID:
		day.Dinner = &meal
		day.Completed.Dinner = false
		replaced = true
	default:
		for i := range day.Snacks {
			if day.Snacks[i].ID != mealID {
				continue
			}
			day.Snacks[i] = meal
			if i < len(day.Completed.Snacks) {
				day.Completed.Snacks[i] = false
			}
			replaced = true
			break
		}
	}
	if !replaced {
		return
	}

	// The swap moved the day's total off target, so every slot is rescaled
	// by the same factor. Untouched meals shift with the new one, keeping
	// the slot proportions uniform.
	ScaleDay(day, targetCalories)
}
