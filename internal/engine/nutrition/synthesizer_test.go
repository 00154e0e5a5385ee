package nutrition

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"Fitforge_V1.0/internal/engine/energy"
	"Fitforge_V1.0/internal/model"
	"github.com/stretchr/testify/require"
)

func testProfile() model.Profile {
	return model.Profile{
		UserID:        "user-1",
		Age:           30,
		WeightKg:      70,
		HeightCm:      175,
		Gender:        model.GenderMale,
		Goal:          model.GoalGeneralFitness,
		AvailableDays: 4,
	}
}

func testAssessment(structure model.MealStructure) model.NutritionAssessment {
	return model.NutritionAssessment{
		UserID:        "user-1",
		MealStructure: structure,
		FFQ:           map[string]model.FFQFrequency{},
		Completed:     true,
	}
}

func testSynthesizer() *Synthesizer {
	return New(rand.New(rand.NewSource(42)))
}

func TestGenerate_RefusesIncompleteAssessment(t *testing.T) {
	assessment := testAssessment(model.StructureThreeMeals)
	assessment.Completed = false

	_, err := testSynthesizer().Generate(testProfile(), assessment, 1, time.Now())
	require.ErrorIs(t, err, ErrAssessmentIncomplete)
}

func TestGenerate_SlotLayouts(t *testing.T) {
	tests := []struct {
		structure model.MealStructure
		breakfast bool
		lunch     bool
		dinner    bool
		snacks    int
	}{
		{model.StructureOneMealSnacks, false, true, false, 4},
		{model.StructureTwoMeals, false, true, false, 3},
		{model.StructureThreeMeals, true, true, true, 2},
		{model.StructureThreeMealSnacks, true, true, true, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.structure), func(t *testing.T) {
			plan, err := testSynthesizer().Generate(testProfile(), testAssessment(tt.structure), 1, time.Now())
			require.NoError(t, err)
			require.Len(t, plan.Days, 7)

			for _, day := range plan.Days {
				require.Equal(t, tt.breakfast, day.Breakfast != nil)
				require.Equal(t, tt.lunch, day.Lunch != nil)
				require.Equal(t, tt.dinner, day.Dinner != nil)
				require.Len(t, day.Snacks, tt.snacks)
				require.Len(t, day.Completed.Snacks, tt.snacks)
			}
		})
	}
}

// 70kg/175cm/30y male, general fitness, 4 days: BMR 1648.75 by
// Mifflin-St Jeor, TDEE 1648.75*1.55 = 2555.56, target unchanged.
func TestGenerate_CalorieRescalingExactness(t *testing.T) {
	p := testProfile()
	target := energy.TargetCalories(p)
	require.InDelta(t, 2555.5625, target, 0.01)

	plan, err := testSynthesizer().Generate(p, testAssessment(model.StructureThreeMeals), 1, time.Now())
	require.NoError(t, err)

	for _, day := range plan.Days {
		slots := len(day.Meals())
		require.InDelta(t, target, float64(day.TotalCalories), float64(slots)+1,
			"day %s total %d misses target %.1f", day.Day, day.TotalCalories, target)
	}
}

func TestGenerate_TotalsMatchSlots(t *testing.T) {
	plan, err := testSynthesizer().Generate(testProfile(), testAssessment(model.StructureThreeMealSnacks), 1, time.Now())
	require.NoError(t, err)

	for i := range plan.Days {
		assertTotalsDerived(t, &plan.Days[i])
	}
}

func assertTotalsDerived(t *testing.T, day *model.DailyMealPlan) {
	t.Helper()
	var cal int
	var protein, carbs, fats float64
	for _, meal := range day.Meals() {
		cal += meal.Calories
		protein += meal.Protein
		carbs += meal.Carbs
		fats += meal.Fats
	}
	require.Equal(t, cal, day.TotalCalories)
	require.InDelta(t, protein, day.TotalProtein, 0.1)
	require.InDelta(t, carbs, day.TotalCarbs, 0.1)
	require.InDelta(t, fats, day.TotalFats, 0.1)
}

func TestGenerate_FFQWeighting(t *testing.T) {
	assessment := testAssessment(model.StructureThreeMeals)
	assessment.FFQ["chicken"] = model.FFQDaily

	plan, err := testSynthesizer().Generate(testProfile(), assessment, 1, time.Now())
	require.NoError(t, err)

	// Preferred candidates exist for lunch and dinner, so every pick must
	// contain chicken regardless of the random draw.
	for _, day := range plan.Days {
		for _, meal := range []*model.PlanMeal{day.Lunch, day.Dinner} {
			require.NotNil(t, meal)
			found := false
			for _, ing := range meal.Ingredients {
				if strings.Contains(strings.ToLower(ing.Name), "chicken") {
					found = true
				}
			}
			require.True(t, found, "%s meal %s does not contain chicken", day.Day, meal.Name)
		}
	}
}

func TestGenerate_FFQFallbackToFullPool(t *testing.T) {
	assessment := testAssessment(model.StructureThreeMeals)
	// No breakfast meal contains chicken; the preferred set is empty and the
	// slot must still be filled from the full pool.
	assessment.FFQ["chicken"] = model.FFQDaily

	plan, err := testSynthesizer().Generate(testProfile(), assessment, 1, time.Now())
	require.NoError(t, err)
	for _, day := range plan.Days {
		require.NotNil(t, day.Breakfast)
	}
}

func TestGenerate_FavoriteMealsJoinPool(t *testing.T) {
	favorite := model.CatalogMeal{
		ID: "fav-chicken-wrap", Name: "Chicken Wrap", MealType: model.MealLunch,
		Calories: 500, Protein: 35, Carbs: 45, Fats: 18,
		Ingredients: []model.Ingredient{{Name: "chicken breast"}, {Name: "tortilla"}},
	}
	assessment := testAssessment(model.StructureThreeMeals)
	assessment.FavoriteMeals = []model.CatalogMeal{favorite}
	assessment.FFQ["chicken"] = model.FFQDaily

	// With enough draws the favorite shows up among the preferred lunches.
	seen := false
	for seed := int64(0); seed < 20 && !seen; seed++ {
		plan, err := New(rand.New(rand.NewSource(seed))).Generate(testProfile(), assessment, 1, time.Now())
		require.NoError(t, err)
		for _, day := range plan.Days {
			if day.Lunch != nil && day.Lunch.CatalogID == favorite.ID {
				seen = true
			}
		}
	}
	require.True(t, seen, "favorite meal never selected across seeds")
}

func TestScaleMealAmortized(t *testing.T) {
	meal := model.PlanMeal{Calories: 220, Protein: 6, Carbs: 28, Fats: 11}
	ScaleMealAmortized(&meal, 2310) // factor = 2310 / (220*7) = 1.5

	require.Equal(t, 330, meal.Calories)
	require.InDelta(t, 9.0, meal.Protein, 0.01)
	require.InDelta(t, 42.0, meal.Carbs, 0.01)
	require.InDelta(t, 16.5, meal.Fats, 0.01)
}

func TestScaleDay_ZeroUnscaledTotal(t *testing.T) {
	day := model.DailyMealPlan{}
	ScaleDay(&day, 2000) // must not divide by zero
	require.Equal(t, 0, day.TotalCalories)
}

func TestRegenerateDay(t *testing.T) {
	p := testProfile()
	assessment := testAssessment(model.StructureThreeMeals)
	syn := testSynthesizer()

	plan, err := syn.Generate(p, assessment, 1, time.Now())
	require.NoError(t, err)

	day := &plan.Days[2]
	dayID := day.ID
	ToggleMealCompletion(plan, dayID, day.Lunch.ID)

	syn.RegenerateDay(plan, dayID, p, assessment)

	day = plan.Day(dayID)
	require.NotNil(t, day)
	require.False(t, day.Completed.Lunch)
	require.NotNil(t, day.Lunch)
	assertTotalsDerived(t, day)

	target := energy.TargetCalories(p)
	require.InDelta(t, target, float64(day.TotalCalories), float64(len(day.Meals()))+1)
}

func TestMath_Round1(t *testing.T) {
	if got := round1(12.34); math.Abs(got-12.3) > 1e-9 {
		t.Errorf("round1(12.34) = %v", got)
	}
	if got := round1(12.36); math.Abs(got-12.4) > 1e-9 {
		t.Errorf("round1(12.36) = %v", got)
	}
}
