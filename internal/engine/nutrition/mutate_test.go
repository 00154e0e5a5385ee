package nutrition

import (
	"testing"
	"time"

	"Fitforge_V1.0/internal/engine/energy"
	"Fitforge_V1.0/internal/model"
	"github.com/stretchr/testify/require"
)

func generateTestPlan(t *testing.T) (*model.WeeklyMealPlan, model.Profile) {
	t.Helper()
	p := testProfile()
	plan, err := testSynthesizer().Generate(p, testAssessment(model.StructureThreeMeals), 1, time.Now())
	require.NoError(t, err)
	return plan, p
}

func adhocMeal() model.CatalogMeal {
	return model.CatalogMeal{
		ID: "custom-rice-cakes", Name: "Rice Cakes with Labneh", NameAr: "كعك الأرز باللبنة",
		MealType: model.MealSnack, Calories: 180, Protein: 8, Carbs: 26, Fats: 5,
		Ingredients: []model.Ingredient{{Name: "rice cakes"}, {Name: "labneh"}},
	}
}

func TestToggleMealCompletion(t *testing.T) {
	plan, _ := generateTestPlan(t)
	day := &plan.Days[0]

	ToggleMealCompletion(plan, day.ID, day.Lunch.ID)
	require.True(t, day.Completed.Lunch)
	ToggleMealCompletion(plan, day.ID, day.Lunch.ID)
	require.False(t, day.Completed.Lunch)

	ToggleMealCompletion(plan, day.ID, day.Snacks[1].ID)
	require.True(t, day.Completed.Snacks[1])
	require.False(t, day.Completed.Snacks[0])

	// unknown ids are a no-op
	ToggleMealCompletion(plan, day.ID, "missing")
	ToggleMealCompletion(plan, "missing-day", day.Lunch.ID)
	require.False(t, day.Completed.Lunch)
}

func TestAddMealToDay_SnackAppends(t *testing.T) {
	plan, p := generateTestPlan(t)
	day := &plan.Days[0]
	target := energy.TargetCalories(p)
	snacksBefore := len(day.Snacks)

	added := AddMealToDay(plan, day.ID, adhocMeal(), target)
	require.NotNil(t, added)
	require.Len(t, day.Snacks, snacksBefore+1)
	require.Len(t, day.Completed.Snacks, snacksBefore+1)
	require.False(t, day.Completed.Snacks[snacksBefore])

	// amortized scaling: the added meal carries 1/7 of its weekly share
	wantCal := int(float64(adhocMeal().Calories) * target / (float64(adhocMeal().Calories) * 7))
	require.InDelta(t, float64(wantCal), float64(added.Calories), 1)

	assertTotalsDerived(t, day)
}

func TestAddMealToDay_FillsEmptySlot(t *testing.T) {
	p := testProfile()
	plan, err := testSynthesizer().Generate(p, testAssessment(model.StructureTwoMeals), 1, time.Now())
	require.NoError(t, err)

	day := &plan.Days[0]
	require.Nil(t, day.Breakfast) // 2_meals has no breakfast slot filled

	breakfast := adhocMeal()
	breakfast.MealType = model.MealBreakfast
	added := AddMealToDay(plan, day.ID, breakfast, energy.TargetCalories(p))
	require.NotNil(t, added)
	require.NotNil(t, day.Breakfast)
	assertTotalsDerived(t, day)
}

func TestRemoveMealFromDay(t *testing.T) {
	plan, _ := generateTestPlan(t)
	day := &plan.Days[0]

	ToggleMealCompletion(plan, day.ID, day.Dinner.ID)
	dinnerID := day.Dinner.ID
	RemoveMealFromDay(plan, day.ID, dinnerID)

	require.Nil(t, day.Dinner)
	require.False(t, day.Completed.Dinner)
	assertTotalsDerived(t, day)

	// snack removal keeps the completion array parallel
	ToggleMealCompletion(plan, day.ID, day.Snacks[1].ID)
	firstSnackID := day.Snacks[0].ID
	RemoveMealFromDay(plan, day.ID, firstSnackID)
	require.Len(t, day.Snacks, 1)
	require.Len(t, day.Completed.Snacks, 1)
	require.True(t, day.Completed.Snacks[0]) // the completed snack shifted down
	assertTotalsDerived(t, day)

	// unknown id no-ops but still leaves totals derived
	RemoveMealFromDay(plan, day.ID, "missing")
	assertTotalsDerived(t, day)
}

func TestReplaceMeal_RescalesDayToTarget(t *testing.T) {
	plan, p := generateTestPlan(t)
	day := &plan.Days[3]
	target := energy.TargetCalories(p)

	ToggleMealCompletion(plan, day.ID, day.Lunch.ID)

	replacement := model.CatalogMeal{
		ID: "custom-big-bowl", Name: "Chicken Burrito Bowl", MealType: model.MealLunch,
		Calories: 900, Protein: 50, Carbs: 90, Fats: 35,
		Ingredients: []model.Ingredient{{Name: "chicken breast"}, {Name: "rice"}},
	}
	oldID := day.Lunch.ID
	ReplaceMeal(plan, day.ID, oldID, replacement, target)

	require.Equal(t, "custom-big-bowl", day.Lunch.CatalogID)
	require.NotEqual(t, oldID, day.Lunch.ID)
	require.False(t, day.Completed.Lunch)
	assertTotalsDerived(t, day)
	require.InDelta(t, target, float64(day.TotalCalories), float64(len(day.Meals()))+1)
}
