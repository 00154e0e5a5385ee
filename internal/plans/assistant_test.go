package plans

import (
	"math/rand"
	"testing"
	"time"

	"Fitforge_V1.0/internal/engine/nutrition"
	"Fitforge_V1.0/internal/engine/workout"
	"Fitforge_V1.0/internal/model"
	"github.com/stretchr/testify/require"
)

func importTestProfile() model.Profile {
	return model.Profile{
		UserID:           "user-1",
		Age:              30,
		WeightKg:         70,
		HeightCm:         175,
		Gender:           model.GenderMale,
		Goal:             model.GoalGeneralFitness,
		FitnessLevel:     model.LevelIntermediate,
		TrainingLocation: model.LocationGym,
		ActivityLevel:    model.ActivityModerate,
		AvailableDays:    4,
		SessionDuration:  60,
	}
}

func importTestWorkoutPlan(t *testing.T) *model.WeeklyPlan {
	t.Helper()
	gen := workout.New(rand.New(rand.NewSource(42)))
	return gen.Generate(importTestProfile(), 1, time.Now())
}

func importTestMealPlan(t *testing.T) *model.WeeklyMealPlan {
	t.Helper()
	assessment := model.NutritionAssessment{
		UserID:        "user-1",
		MealStructure: model.StructureThreeMeals,
		FFQ:           map[string]model.FFQFrequency{},
		Completed:     true,
	}
	gen := nutrition.New(rand.New(rand.NewSource(42)))
	plan, err := gen.Generate(importTestProfile(), assessment, 1, time.Now())
	require.NoError(t, err)
	return plan
}

func TestMergeAssistantSessions_ReplacesMatchingDay(t *testing.T) {
	plan := importTestWorkoutPlan(t)
	before := len(plan.Sessions)
	oldID := plan.Sessions[0].ID
	day := plan.Sessions[0].Day

	merged := mergeAssistantSessions(plan, []AssistantSession{{
		Day:  day,
		Name: "Coach Special",
		Exercises: []AssistantExercise{
			{Name: "Farmer Carry", MuscleGroup: "core", Sets: 4, RepsLow: 1, RepsHigh: 1, RestSeconds: 90},
		},
	}})

	require.Equal(t, 1, merged)
	require.Len(t, plan.Sessions, before)
	require.NotEqual(t, oldID, plan.Sessions[0].ID)
	require.Equal(t, "Coach Special", plan.Sessions[0].Name)
	require.False(t, plan.Sessions[0].Completed)
	require.Empty(t, plan.Sessions[0].CompletedExercises)
}

func TestMergeAssistantSessions_AppendsUnknownDay(t *testing.T) {
	plan := importTestWorkoutPlan(t)
	before := len(plan.Sessions)

	merged := mergeAssistantSessions(plan, []AssistantSession{{
		Day:       "Extra Day",
		Exercises: []AssistantExercise{{Name: "Hill Sprints", MuscleGroup: "legs"}},
	}})

	require.Equal(t, 1, merged)
	require.Len(t, plan.Sessions, before+1)

	added := plan.Sessions[before]
	require.Equal(t, "Extra Day", added.Day)
	require.NotEmpty(t, added.ID)
	require.NotEmpty(t, added.Exercises[0].ID)
	// inline entries with no figures fall back to a plain 3x10
	require.Equal(t, 3, added.Exercises[0].Sets)
	require.Equal(t, 10, added.Exercises[0].RepsLow)
}

func TestMergeAssistantSessions_CatalogReferenceFillsFields(t *testing.T) {
	plan := importTestWorkoutPlan(t)

	merged := mergeAssistantSessions(plan, []AssistantSession{{
		Day:       "Bonus",
		Exercises: []AssistantExercise{{CatalogID: "pushup"}},
	}})
	require.Equal(t, 1, merged)

	added := plan.Sessions[len(plan.Sessions)-1].Exercises[0]
	require.Equal(t, "pushup", added.CatalogID)
	require.NotEmpty(t, added.Name)
	require.NotEmpty(t, added.MuscleGroup)
	require.Positive(t, added.Sets)
	require.Positive(t, added.RestSeconds)
}

func TestMergeAssistantSessions_DropsUnusableFragments(t *testing.T) {
	plan := importTestWorkoutPlan(t)
	before := len(plan.Sessions)

	merged := mergeAssistantSessions(plan, []AssistantSession{
		{Day: "Monday", Exercises: []AssistantExercise{{MuscleGroup: "chest"}}},     // no name, no catalog id
		{Day: "Tuesday", Exercises: []AssistantExercise{{CatalogID: "no-such-id"}}}, // unknown catalog id
	})

	require.Zero(t, merged)
	require.Len(t, plan.Sessions, before)
}

func TestMergeAssistantMeals_RescalesLikeNativeAdd(t *testing.T) {
	plan := importTestMealPlan(t)
	day := &plan.Days[0]
	snacksBefore := len(day.Snacks)

	merged := mergeAssistantMeals(plan, []AssistantMeal{{
		Day:      day.Day,
		Name:     "Protein Shake",
		Calories: 220,
		Protein:  30,
	}}, 2310)

	require.Equal(t, 1, merged)
	require.Len(t, day.Snacks, snacksBefore+1)

	// same amortized factor as the native ad-hoc add: 2310 / (220 * 7)
	added := day.Snacks[snacksBefore]
	require.Equal(t, 330, added.Calories)
	require.NotEmpty(t, added.ID)

	// day totals are recomputed from the slots
	sum := 0
	for _, meal := range day.Meals() {
		sum += meal.Calories
	}
	require.Equal(t, sum, day.TotalCalories)
}

func TestMergeAssistantMeals_UnknownDayDropped(t *testing.T) {
	plan := importTestMealPlan(t)

	merged := mergeAssistantMeals(plan, []AssistantMeal{{
		Day:      "Someday",
		Name:     "Protein Shake",
		Calories: 220,
	}}, 2310)

	require.Zero(t, merged)
}

func TestMergeAssistantMeals_InlineNeedsCalories(t *testing.T) {
	plan := importTestMealPlan(t)
	day := &plan.Days[0]
	snacksBefore := len(day.Snacks)

	merged := mergeAssistantMeals(plan, []AssistantMeal{{
		Day:  day.Day,
		Name: "Mystery Meal",
	}}, 2310)

	require.Zero(t, merged)
	require.Len(t, day.Snacks, snacksBefore)
}
