package grocery

import (
	"testing"

	"Fitforge_V1.0/internal/model"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want model.GroceryCategory
	}{
		{"chicken breast", model.CategoryProtein},
		{"ground beef", model.CategoryProtein},
		{"lentils", model.CategoryProtein},
		{"rice", model.CategoryCarbs},
		{"whole wheat bread", model.CategoryCarbs},
		{"sweet potato", model.CategoryCarbs},
		{"bell pepper", model.CategoryVegFruits},
		{"banana", model.CategoryVegFruits},
		{"greek yogurt", model.CategoryDairy},
		{"feta cheese", model.CategoryDairy},
		{"black pepper", model.CategorySpices},
		{"cumin", model.CategorySpices},
		{"honey", model.CategoryOther},
		{"olive oil", model.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.name); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

// Ordered matching: protein keywords are checked before everything else, so
// an ingredient matching two rules classifies by the earlier one.
func TestClassify_OrderedRules(t *testing.T) {
	// "chicken rice soup" contains both a protein and a carb keyword.
	require.Equal(t, model.CategoryProtein, Classify("chicken rice soup"))
}

func mealWith(ings ...model.Ingredient) *model.PlanMeal {
	return &model.PlanMeal{ID: "m", Ingredients: ings}
}

func TestAggregate_DeduplicatesAcrossDays(t *testing.T) {
	plan := &model.WeeklyMealPlan{
		UserID: "user-1",
		Days: []model.DailyMealPlan{
			{Lunch: mealWith(model.Ingredient{Name: "chicken", NameAr: "دجاج"}, model.Ingredient{Name: "rice"})},
			{Dinner: mealWith(model.Ingredient{Name: "Chicken"}, model.Ingredient{Name: "broccoli"})},
		},
	}

	list := Aggregate(plan)
	require.Len(t, list.Items, 3)

	var chicken *model.GroceryItem
	for i := range list.Items {
		if list.Items[i].Name == "chicken" {
			chicken = &list.Items[i]
		}
		require.False(t, list.Items[i].Checked)
		require.Equal(t, "1", list.Items[i].Quantity)
	}
	require.NotNil(t, chicken, "exactly one chicken item expected")
	require.Equal(t, model.CategoryProtein, chicken.Category)
	// first occurrence wins, including its Arabic name
	require.Equal(t, "دجاج", chicken.NameAr)
}

func TestAggregate_WalksAllSlots(t *testing.T) {
	plan := &model.WeeklyMealPlan{
		Days: []model.DailyMealPlan{
			{
				Breakfast: mealWith(model.Ingredient{Name: "oats"}),
				Lunch:     mealWith(model.Ingredient{Name: "tuna"}),
				Dinner:    mealWith(model.Ingredient{Name: "zucchini"}),
				Snacks: []model.PlanMeal{
					{ID: "s1", Ingredients: []model.Ingredient{{Name: "almonds"}}},
					{ID: "s2", Ingredients: []model.Ingredient{{Name: "dates"}}},
				},
			},
		},
	}

	list := Aggregate(plan)
	require.Len(t, list.Items, 5)
}

func TestAggregate_EmptyPlan(t *testing.T) {
	list := Aggregate(&model.WeeklyMealPlan{UserID: "user-1"})
	require.Empty(t, list.Items)
	require.Equal(t, "user-1", list.UserID)
}
