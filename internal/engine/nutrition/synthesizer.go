/*
Package nutrition turns a user profile and completed dietary assessment into
a weekly meal plan: slot layout from the assessed meal structure, meal
selection weighted by the food-frequency questionnaire and uniform calorie
rescaling toward the energy model's daily target.
*/
package nutrition

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"Fitforge_V1.0/internal/catalog"
	"Fitforge_V1.0/internal/engine/energy"
	"Fitforge_V1.0/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrAssessmentIncomplete is returned when nutrition generation is requested
// before the dietary assessment has been completed.
var ErrAssessmentIncomplete = errors.New("nutrition assessment not completed")

// slotLayout describes which slots a day has under one meal structure.
type slotLayout struct {
	Breakfast bool
	Lunch     bool
	Dinner    bool
	Snacks    int
}

var slotLayouts = map[model.MealStructure]slotLayout{
	model.StructureOneMealSnacks:   {Lunch: true, Snacks: 4},
	model.StructureTwoMeals:        {Lunch: true, Snacks: 3},
	model.StructureThreeMeals:      {Breakfast: true, Lunch: true, Dinner: true, Snacks: 2},
	model.StructureThreeMealSnacks: {Breakfast: true, Lunch: true, Dinner: true, Snacks: 3},
}

// ffqSynonyms maps each questionnaire key to the ingredient-name substrings
// that mark a meal as containing that food.
var ffqSynonyms = map[string][]string{
	"chicken":    {"chicken"},
	"meat":       {"beef", "meat", "lamb"},
	"fish":       {"fish", "salmon", "tuna", "shrimp"},
	"eggs":       {"egg"},
	"dairy":      {"milk", "yogurt", "cheese"},
	"legumes":    {"lentil", "chickpea", "bean", "fava"},
	"vegetables": {"spinach", "broccoli", "carrot", "zucchini", "lettuce", "cucumber", "tomato", "pepper", "asparagus"},
	"fruits":     {"banana", "apple", "berries", "dates", "lemon"},
}

var dayLabels = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Synthesizer generates weekly meal plans with an injected random source.
type Synthesizer struct {
	rng *rand.Rand
}

func New(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

func NewSeeded() *Synthesizer {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Generate builds a 7-day WeeklyMealPlan scaled to the profile's calorie
// target. It refuses to generate until the assessment is completed.
func (s *Synthesizer) Generate(p model.Profile, assessment model.NutritionAssessment, weekNumber int, startDate time.Time) (*model.WeeklyMealPlan, error) {
	if !assessment.Completed {
		return nil, ErrAssessmentIncomplete
	}

	target := energy.TargetCalories(p)
	plan := &model.WeeklyMealPlan{
		ID:         uuid.New().String(),
		UserID:     p.UserID,
		WeekNumber: weekNumber,
		StartDate:  startDate,
		EndDate:    startDate.AddDate(0, 0, 6),
		CreatedAt:  time.Now(),
	}

	for i := 0; i < 7; i++ {
		day := s.buildDay(assessment, i, startDate.AddDate(0, 0, i), target)
		plan.Days = append(plan.Days, day)
	}

	log.Info().
		Str("user_id", p.UserID).
		Str("meal_structure", string(assessment.MealStructure)).
		Float64("target_calories", target).
		Msg("Generated weekly meal plan")

	return plan, nil
}

// buildDay selects every slot's meal independently, then rescales the whole
// day so its total hits the calorie target.
func (s *Synthesizer) buildDay(assessment model.NutritionAssessment, index int, date time.Time, target float64) model.DailyMealPlan {
	layout, ok := slotLayouts[assessment.MealStructure]
	if !ok {
		layout = slotLayouts[model.StructureThreeMeals]
	}

	day := model.DailyMealPlan{
		ID:   uuid.New().String(),
		Day:  dayLabels[index%len(dayLabels)],
		Date: date,
	}

	if layout.Breakfast {
		if m := s.pickMeal(model.MealBreakfast, assessment); m != nil {
			day.Breakfast = m
		}
	}
	if layout.Lunch {
		if m := s.pickMeal(model.MealLunch, assessment); m != nil {
			day.Lunch = m
		}
	}
	if layout.Dinner {
		if m := s.pickMeal(model.MealDinner, assessment); m != nil {
			day.Dinner = m
		}
	}
	for i := 0; i < layout.Snacks; i++ {
		if m := s.pickMeal(model.MealSnack, assessment); m != nil {
			day.Snacks = append(day.Snacks, *m)
		}
	}
	day.Completed.Snacks = make([]bool, len(day.Snacks))

	ScaleDay(&day, target)
	return day
}

// pickMeal draws one meal for a slot: uniform among FFQ-preferred candidates
// when any exist, else uniform among the whole pool. The pool is the catalog
// plus the user's favorite meals of that type; an empty pool yields nil.
func (s *Synthesizer) pickMeal(mealType model.MealType, assessment model.NutritionAssessment) *model.PlanMeal {
	pool := catalog.MealsFor(mealType)
	for _, fav := range assessment.FavoriteMeals {
		if fav.MealType == mealType {
			pool = append(pool, fav)
		}
	}
	if len(pool) == 0 {
		log.Warn().Str("meal_type", string(mealType)).Msg("Meal pool empty, leaving slot unfilled")
		return nil
	}

	var preferred []model.CatalogMeal
	for _, meal := range pool {
		if mealPreferred(meal, assessment.FFQ) {
			preferred = append(preferred, meal)
		}
	}

	candidates := pool
	if len(preferred) > 0 {
		candidates = preferred
	}

	chosen := candidates[s.rng.Intn(len(candidates))]
	planMeal := materializeMeal(chosen)
	return &planMeal
}

// mealPreferred reports whether any ingredient matches a questionnaire item
// the user eats daily or 3-5 times a week.
func mealPreferred(meal model.CatalogMeal, ffq map[string]model.FFQFrequency) bool {
	for key, freq := range ffq {
		if !freq.Frequent() {
			continue
		}
		for _, synonym := range ffqSynonyms[key] {
			for _, ing := range meal.Ingredients {
				if strings.Contains(strings.ToLower(ing.Name), synonym) {
					return true
				}
			}
		}
	}
	return false
}

// materializeMeal attaches a fresh unique id to a catalog meal, carrying the
// unscaled macros; ScaleDay rewrites them afterwards.
func materializeMeal(cat model.CatalogMeal) model.PlanMeal {
	return model.PlanMeal{
		ID:          uuid.New().String(),
		CatalogID:   cat.ID,
		Name:        cat.Name,
		NameAr:      cat.NameAr,
		MealType:    cat.MealType,
		Calories:    cat.Calories,
		Protein:     cat.Protein,
		Carbs:       cat.Carbs,
		Fats:        cat.Fats,
		Ingredients: cat.Ingredients,
	}
}

// RegenerateDay re-runs slot selection and rescaling for a single day,
// clearing its completion state. Unknown day ids no-op.
func (s *Synthesizer) RegenerateDay(plan *model.WeeklyMealPlan, dayID string, p model.Profile, assessment model.NutritionAssessment) {
	day := plan.Day(dayID)
	if day == nil {
		return
	}

	rebuilt := s.buildDay(assessment, dayIndex(day.Day), day.Date, energy.TargetCalories(p))
	rebuilt.ID = day.ID
	*day = rebuilt

	log.Info().Str("user_id", p.UserID).Str("day_id", dayID).Msg("Regenerated meal plan day")
}

func dayIndex(label string) int {
	for i, l := range dayLabels {
		if l == label {
			return i
		}
	}
	return 0
}
