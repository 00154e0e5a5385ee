/*
Package catalog ships the static exercise and meal reference data. The
tables are loaded once at init and never mutated; accessors hand out copies
so callers cannot corrupt the shared data.
*/
package catalog

import "Fitforge_V1.0/internal/model"

// MuscleGroups lists the groups the weekly templates draw from, in the
// order the catalog defines them.
func MuscleGroups() []string {
	groups := make([]string, len(muscleGroupOrder))
	copy(groups, muscleGroupOrder)
	return groups
}

// ExercisesFor returns the exercise pool for one muscle group. The returned
// slice is a copy; an unknown group yields an empty pool.
func ExercisesFor(group string) []model.CatalogExercise {
	pool := exercisesByGroup[group]
	out := make([]model.CatalogExercise, len(pool))
	copy(out, pool)
	return out
}

// WarmupExercises returns the fixed warm-up block prepended to every session.
func WarmupExercises() []model.CatalogExercise {
	out := make([]model.CatalogExercise, len(warmupExercises))
	copy(out, warmupExercises)
	return out
}

// CooldownExercises returns the fixed cool-down block appended to every session.
func CooldownExercises() []model.CatalogExercise {
	out := make([]model.CatalogExercise, len(cooldownExercises))
	copy(out, cooldownExercises)
	return out
}

// HomeVideoOverride returns the bodyweight-appropriate video for an exercise
// id when training away from a gym, or "" when no variant exists.
func HomeVideoOverride(exerciseID string) string {
	return homeVideoOverrides[exerciseID]
}

// MealsFor returns the meal pool for one slot type. The returned slice is a
// copy; an unknown type yields an empty pool.
func MealsFor(mealType model.MealType) []model.CatalogMeal {
	pool := mealsByType[mealType]
	out := make([]model.CatalogMeal, len(pool))
	copy(out, pool)
	return out
}
