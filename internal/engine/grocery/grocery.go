/*
Package grocery derives a categorized, deduplicated shopping list from a
weekly meal plan. The list is regenerated wholesale after meal-plan edits;
there is no incremental diffing.
*/
package grocery

import (
	"strings"
	"time"

	"Fitforge_V1.0/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// placeholderQuantity is attached to every generated item; the user adjusts
// amounts on the list itself.
const placeholderQuantity = "1"

// categoryRule is one row of the ordered classification table. Rules are
// checked top to bottom and the first keyword hit wins, so protein keywords
// shadow everything below them.
type categoryRule struct {
	category model.GroceryCategory
	keywords []string
}

var categoryRules = []categoryRule{
	{model.CategoryProtein, []string{
		"chicken", "beef", "meat", "lamb", "fish", "salmon", "tuna", "shrimp",
		"egg", "protein", "lentil", "chickpea", "bean", "fava", "nuts", "almond", "walnut", "cashew",
	}},
	{model.CategoryCarbs, []string{
		"rice", "bread", "pasta", "oats", "potato", "quinoa", "noodles", "granola", "tortilla",
	}},
	{model.CategoryVegFruits, []string{
		"tomato", "onion", "carrot", "spinach", "broccoli", "lettuce", "cucumber",
		"bell pepper", "zucchini", "asparagus", "celery", "parsley", "pickles",
		"banana", "apple", "berries", "lemon", "dates",
	}},
	{model.CategoryDairy, []string{
		"milk", "yogurt", "cheese", "butter", "labneh",
	}},
	{model.CategorySpices, []string{
		"salt", "black pepper", "cumin", "paprika", "thyme", "rosemary", "ginger",
		"garlic", "cinnamon", "soy sauce", "tahini",
	}},
}

// Classify maps an ingredient name to its grocery category via the ordered
// keyword pass; anything unmatched lands in "other".
func Classify(name string) model.GroceryCategory {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return model.CategoryOther
}

// Aggregate walks every present meal slot across all days of the plan and
// emits one unchecked GroceryItem per unique ingredient name. The first
// occurrence of a name wins, so later duplicates keep the original spelling
// of the bilingual pair.
func Aggregate(plan *model.WeeklyMealPlan) *model.GroceryList {
	list := &model.GroceryList{
		ID:        uuid.New().String(),
		UserID:    plan.UserID,
		CreatedAt: time.Now(),
	}

	seen := map[string]bool{}
	for i := range plan.Days {
		for _, meal := range plan.Days[i].Meals() {
			for _, ing := range meal.Ingredients {
				key := strings.ToLower(ing.Name)
				if key == "" || seen[key] {
					continue
				}
				seen[key] = true
				list.Items = append(list.Items, model.GroceryItem{
					ID:       uuid.New().String(),
					Name:     ing.Name,
					NameAr:   ing.NameAr,
					Quantity: placeholderQuantity,
					Category: Classify(ing.Name),
				})
			}
		}
	}

	log.Info().
		Str("user_id", plan.UserID).
		Int("items", len(list.Items)).
		Msg("Aggregated grocery list from meal plan")

	return list
}
