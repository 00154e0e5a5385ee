package plans

import (
	"net/http"
	"strings"

	"Fitforge_V1.0/internal/engine/energy"
	"Fitforge_V1.0/internal/engine/nutrition"
	"Fitforge_V1.0/internal/model"
	"Fitforge_V1.0/internal/utility"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// AssistantExercise is an exercise proposed by the conversational assistant.
// The assistant never assigns plan ids; it may reference a catalog entry or
// describe the exercise inline.
type AssistantExercise struct {
	CatalogID   string `json:"catalog_id,omitempty"`
	Name        string `json:"name,omitempty"`
	NameAr      string `json:"name_ar,omitempty"`
	MuscleGroup string `json:"muscle_group,omitempty"`
	Sets        int    `json:"sets,omitempty"`
	RepsLow     int    `json:"reps_low,omitempty"`
	RepsHigh    int    `json:"reps_high,omitempty"`
	RestSeconds int    `json:"rest_seconds,omitempty"`
	Weight      string `json:"assigned_weight,omitempty"`
}

// AssistantSession is a workout-like structure proposed for one day.
type AssistantSession struct {
	Day       string              `json:"day" validate:"required"`
	Name      string              `json:"name,omitempty"`
	Exercises []AssistantExercise `json:"exercises" validate:"required,min=1"`
}

// AssistantMeal is a meal-like structure proposed for one day.
type AssistantMeal struct {
	Day         string             `json:"day" validate:"required"`
	CatalogID   string             `json:"catalog_id,omitempty"`
	Name        string             `json:"name,omitempty"`
	NameAr      string             `json:"name_ar,omitempty"`
	MealType    model.MealType     `json:"meal_type,omitempty"`
	Calories    int                `json:"calories,omitempty"`
	Protein     float64            `json:"protein,omitempty"`
	Carbs       float64            `json:"carbs,omitempty"`
	Fats        float64            `json:"fats,omitempty"`
	Ingredients []model.Ingredient `json:"ingredients,omitempty"`
}

// AssistantImportRequest is the tool-boundary payload: workout-like and
// meal-like structures the assistant wants merged into the current plans.
type AssistantImportRequest struct {
	Sessions []AssistantSession `json:"workout_sessions,omitempty"`
	Meals    []AssistantMeal    `json:"meals,omitempty"`
}

// AssistantImportResponse reports what was accepted and returns the merged
// plans so the assistant can ground its next turn.
type AssistantImportResponse struct {
	ImportedSessions int                   `json:"imported_sessions"`
	ImportedMeals    int                   `json:"imported_meals"`
	WorkoutPlan      *model.WeeklyPlan     `json:"workout_plan,omitempty"`
	MealPlan         *model.WeeklyMealPlan `json:"meal_plan,omitempty"`
}

/* =================================================================================
									HANDLERS
=================================================================================*/

// AssistantImportHandler accepts plan fragments from the assistant tool
// boundary. Before merging, every entry goes through the same id-assignment
// and (for meals) calorie-rescaling rules as native generation, so imported
// and engine-sourced entries are indistinguishable afterwards.
func AssistantImportHandler(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. Resolve caller identity
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	// 2. Parse and validate the payload
	var req AssistantImportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if len(req.Sessions) == 0 && len(req.Meals) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Nothing to import"})
	}

	var resp AssistantImportResponse

	// Both merges are load-mutate-commit cycles on the user's plans
	unlock := lockUser(userID)
	defer unlock()

	// 3. Merge workout fragments into the current plan
	if len(req.Sessions) > 0 {
		plan, err := workoutPlanFor(ctx, userID)
		if err != nil {
			if notFound(err) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "No workout plan to merge into"})
			}
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to load workout plan")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load workout plan"})
		}

		resp.ImportedSessions = mergeAssistantSessions(plan, req.Sessions)
		resp.WorkoutPlan = plan
		commitWorkoutPlan(userID, plan, "assistant_import")
	}

	// 4. Merge meal fragments, rescaled against the profile target
	if len(req.Meals) > 0 {
		plan, err := mealPlanFor(ctx, userID)
		if err != nil {
			if notFound(err) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "No meal plan to merge into"})
			}
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to load meal plan")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load meal plan"})
		}

		profile, err := st.LoadProfile(ctx, userID)
		if err != nil && !notFound(err) {
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
		}

		resp.ImportedMeals = mergeAssistantMeals(plan, req.Meals, energy.TargetCalories(profile))
		resp.MealPlan = plan
		commitMealPlan(userID, plan, "assistant_import")
	}

	log.Info().
		Str("user_id", userID).
		Int("sessions", resp.ImportedSessions).
		Int("meals", resp.ImportedMeals).
		Msg("Assistant import merged")
	return c.JSON(http.StatusOK, resp)
}

/* =================================================================================
							INTERNAL LOGIC & HELPERS
=================================================================================*/

// mergeAssistantSessions converts assistant session fragments into native
// sessions with fresh ids and merges them into the plan. A fragment whose day
// matches an existing session replaces that session in place; anything else
// is appended. Fragments with no usable exercise are dropped. Returns the
// number of sessions merged.
func mergeAssistantSessions(plan *model.WeeklyPlan, sessions []AssistantSession) int {
	merged := 0
	for _, frag := range sessions {
		exercises := make([]model.PlanExercise, 0, len(frag.Exercises))
		for _, fx := range frag.Exercises {
			ex, ok := assistantExercise(fx)
			if !ok {
				log.Warn().Str("name", fx.Name).Str("catalog_id", fx.CatalogID).Msg("Dropping unusable assistant exercise")
				continue
			}
			exercises = append(exercises, ex)
		}
		if len(exercises) == 0 {
			continue
		}

		name := frag.Name
		if name == "" {
			name = "Assistant Session"
		}
		session := model.WorkoutSession{
			ID:                 uuid.NewString(),
			Day:                frag.Day,
			Name:               name,
			Exercises:          exercises,
			CompletedExercises: map[string]bool{},
		}

		replaced := false
		for i := range plan.Sessions {
			if strings.EqualFold(plan.Sessions[i].Day, frag.Day) {
				plan.Sessions[i] = session
				replaced = true
				break
			}
		}
		if !replaced {
			plan.Sessions = append(plan.Sessions, session)
		}
		merged++
	}
	return merged
}

// assistantExercise materializes one fragment. A catalog reference wins over
// the inline description; inline entries need at least a name. Missing
// numeric fields fall back to the catalog entry or to a plain 3x10.
func assistantExercise(fx AssistantExercise) (model.PlanExercise, bool) {
	ex := model.PlanExercise{
		ID:             uuid.NewString(),
		CatalogID:      fx.CatalogID,
		Name:           fx.Name,
		NameAr:         fx.NameAr,
		MuscleGroup:    fx.MuscleGroup,
		Block:          model.BlockMain,
		Sets:           fx.Sets,
		RepsLow:        fx.RepsLow,
		RepsHigh:       fx.RepsHigh,
		RestSeconds:    fx.RestSeconds,
		AssignedWeight: fx.Weight,
	}

	if fx.CatalogID != "" {
		cat, ok := lookupExercise(fx.CatalogID)
		if !ok {
			return model.PlanExercise{}, false
		}
		if ex.Name == "" {
			ex.Name = cat.Name
			ex.NameAr = cat.NameAr
		}
		if ex.MuscleGroup == "" {
			ex.MuscleGroup = cat.MuscleGroup
		}
		if ex.Sets == 0 {
			ex.Sets = cat.Sets
		}
		if ex.RepsLow == 0 {
			ex.RepsLow = cat.RepsLow
		}
		if ex.RepsHigh == 0 {
			ex.RepsHigh = cat.RepsHigh
		}
		if ex.RestSeconds == 0 {
			ex.RestSeconds = cat.RestSeconds
		}
	} else if ex.Name == "" {
		return model.PlanExercise{}, false
	}

	if ex.Sets == 0 {
		ex.Sets = 3
	}
	if ex.RepsLow == 0 {
		ex.RepsLow = 10
	}
	if ex.RepsHigh == 0 {
		ex.RepsHigh = 12
	}
	if ex.RestSeconds == 0 {
		ex.RestSeconds = 60
	}
	return ex, true
}

// mergeAssistantMeals routes meal fragments through the native ad-hoc add
// path, which assigns the id and applies the seven-day amortized rescaling.
// Returns the number of meals merged.
func mergeAssistantMeals(plan *model.WeeklyMealPlan, meals []AssistantMeal, targetCalories float64) int {
	merged := 0
	for _, frag := range meals {
		day := dayByLabel(plan, frag.Day)
		if day == nil {
			log.Warn().Str("day", frag.Day).Msg("Dropping assistant meal for unknown day")
			continue
		}

		cat, ok := assistantMeal(frag)
		if !ok {
			log.Warn().Str("name", frag.Name).Str("catalog_id", frag.CatalogID).Msg("Dropping unusable assistant meal")
			continue
		}

		if nutrition.AddMealToDay(plan, day.ID, cat, targetCalories) != nil {
			merged++
		}
	}
	return merged
}

// assistantMeal resolves one fragment to a catalog-shaped meal. A catalog
// reference wins over the inline description; inline entries need a name and
// a positive calorie figure for the rescaling to be meaningful.
func assistantMeal(frag AssistantMeal) (model.CatalogMeal, bool) {
	if frag.CatalogID != "" {
		return lookupMeal(frag.CatalogID)
	}
	if frag.Name == "" || frag.Calories <= 0 {
		return model.CatalogMeal{}, false
	}

	mealType := frag.MealType
	if mealType == "" {
		mealType = model.MealSnack
	}
	return model.CatalogMeal{
		ID:          "assistant-" + uuid.NewString(),
		Name:        frag.Name,
		NameAr:      frag.NameAr,
		MealType:    mealType,
		Calories:    frag.Calories,
		Protein:     frag.Protein,
		Carbs:       frag.Carbs,
		Fats:        frag.Fats,
		Ingredients: frag.Ingredients,
	}, true
}

// dayByLabel finds a day by its weekday label, case-insensitively.
func dayByLabel(plan *model.WeeklyMealPlan, label string) *model.DailyMealPlan {
	for i := range plan.Days {
		if strings.EqualFold(plan.Days[i].Day, label) {
			return &plan.Days[i]
		}
	}
	return nil
}
