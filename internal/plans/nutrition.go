package plans

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"Fitforge_V1.0/internal/engine/energy"
	"Fitforge_V1.0/internal/engine/grocery"
	"Fitforge_V1.0/internal/engine/nutrition"
	"Fitforge_V1.0/internal/model"
	"Fitforge_V1.0/internal/store"
	"Fitforge_V1.0/internal/utility"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// AddMealRequest names the catalog meal to materialize into a day.
type AddMealRequest struct {
	CatalogID string `json:"catalog_id" validate:"required"`
}

/* =================================================================================
									HANDLERS
=================================================================================*/

// GenerateMealPlanHandler builds a fresh weekly meal plan from the user's
// profile and nutrition assessment, replacing any existing one.
func GenerateMealPlanHandler(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. Resolve caller identity
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	// 2. Parse optional generation parameters (body or ?week= query)
	var req GeneratePlanRequest
	_ = c.Bind(&req)
	if req.WeekNumber == 0 {
		req.WeekNumber = utility.ParseIntParam(c.QueryParam("week"), 0)
	}

	// 3. Fetch profile and assessment in parallel
	profile, assessment, err := loadNutritionInputs(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile not found, complete onboarding first"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load nutrition inputs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile data"})
	}

	// 4. Synthesize; an unfinished assessment blocks generation
	plan, err := nutritionGen.Generate(profile, assessment, req.week(), req.weekStart())
	if err != nil {
		if errors.Is(err, nutrition.ErrAssessmentIncomplete) {
			return c.JSON(http.StatusPreconditionFailed, map[string]string{"error": "Nutrition assessment not completed"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Meal plan generation failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate meal plan"})
	}

	// 5. Commit under the user's mutation lock and respond
	unlock := lockUser(userID)
	commitMealPlan(userID, plan, "generated")
	unlock()
	log.Info().Str("user_id", userID).Msg("Generated meal plan")
	return c.JSON(http.StatusCreated, plan)
}

// GetMealPlanHandler returns the user's current weekly meal plan.
func GetMealPlanHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	plan, err := mealPlanFor(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No meal plan generated yet"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load meal plan")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load meal plan"})
	}

	return c.JSON(http.StatusOK, plan)
}

// AddMealHandler materializes a catalog meal into a day. The meal is scaled
// against a seventh of the weekly target so an ad-hoc addition never distorts
// the other slots.
func AddMealHandler(c echo.Context) error {
	var req AddMealRequest
	if err := c.Bind(&req); err != nil || req.CatalogID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "catalog_id is required"})
	}

	cat, ok := lookupMeal(req.CatalogID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown catalog meal"})
	}

	return mutateMealPlan(c, "meal_added", func(mc mealMutation) {
		nutrition.AddMealToDay(mc.plan, mc.dayID, cat, mc.targetCalories)
	})
}

// RemoveMealHandler clears one meal from a day, keeping its slot structure.
func RemoveMealHandler(c echo.Context) error {
	return mutateMealPlan(c, "meal_removed", func(mc mealMutation) {
		nutrition.RemoveMealFromDay(mc.plan, mc.dayID, mc.mealID)
	})
}

// ToggleMealCompletionHandler flips one meal's completion mark.
func ToggleMealCompletionHandler(c echo.Context) error {
	return mutateMealPlan(c, "meal_toggled", func(mc mealMutation) {
		nutrition.ToggleMealCompletion(mc.plan, mc.dayID, mc.mealID)
	})
}

// ReplaceMealHandler swaps one slot meal for a fresh catalog pick and
// rescales the day back to the calorie target.
func ReplaceMealHandler(c echo.Context) error {
	var req AddMealRequest
	if err := c.Bind(&req); err != nil || req.CatalogID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "catalog_id is required"})
	}

	cat, ok := lookupMeal(req.CatalogID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown catalog meal"})
	}

	return mutateMealPlan(c, "meal_replaced", func(mc mealMutation) {
		nutrition.ReplaceMeal(mc.plan, mc.dayID, mc.mealID, cat, mc.targetCalories)
	})
}

// RegenerateDayHandler redraws every slot of one day from the preference
// pool, keeping the day id stable.
func RegenerateDayHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	unlock := lockUser(userID)
	defer unlock()

	plan, err := mealPlanFor(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No meal plan generated yet"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load meal plan")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load meal plan"})
	}

	profile, assessment, err := loadNutritionInputs(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load nutrition inputs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile data"})
	}

	nutritionGen.RegenerateDay(plan, c.Param("day_id"), profile, assessment)
	commitMealPlan(userID, plan, "day_regenerated")
	return c.JSON(http.StatusOK, plan)
}

// GetGroceryListHandler rebuilds the shopping list wholesale from the current
// meal plan.
func GetGroceryListHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	plan, err := mealPlanFor(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No meal plan to build a grocery list from"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load meal plan")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load meal plan"})
	}

	list := grocery.Aggregate(plan)
	st.PersistAsync("grocery_list", userID, func(ctx context.Context) error {
		return st.SaveGroceryList(ctx, list)
	})

	return c.JSON(http.StatusOK, list)
}

/* =================================================================================
							INTERNAL LOGIC & HELPERS
=================================================================================*/

// loadNutritionInputs fetches the profile and the assessment in parallel.
// A missing profile is an error; a missing assessment degrades to the empty
// (incomplete) assessment, which the synthesizer refuses on its own terms.
func loadNutritionInputs(ctx context.Context, userID string) (model.Profile, model.NutritionAssessment, error) {
	var (
		profile    model.Profile
		assessment model.NutritionAssessment
		mu         sync.Mutex
	)

	g, grpCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := st.LoadProfile(grpCtx, userID)
		if err != nil {
			return err
		}
		mu.Lock()
		profile = p
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		a, err := st.LoadAssessment(grpCtx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		mu.Lock()
		assessment = a
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Profile{}, model.NutritionAssessment{}, err
	}
	return profile, assessment, nil
}

// mealMutation bundles everything a nutrition mutator needs from the request.
type mealMutation struct {
	plan           *model.WeeklyMealPlan
	dayID          string
	mealID         string
	targetCalories float64
}

// mutateMealPlan factors the shared load / mutate / commit / respond cycle of
// every nutrition mutation endpoint. Mutators no-op on unknown ids.
func mutateMealPlan(c echo.Context, action string, mutate func(mealMutation)) error {
	ctx := c.Request().Context()

	// 1. Resolve caller identity
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	// 2. Load the current plan, holding the user's mutation lock through the
	// commit so concurrent edits cannot interleave
	unlock := lockUser(userID)
	defer unlock()

	plan, err := mealPlanFor(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No meal plan generated yet"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load meal plan")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load meal plan"})
	}

	// 3. Load the profile for the calorie target
	profile, err := st.LoadProfile(ctx, userID)
	if err != nil && !notFound(err) {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	// 4. Apply the mutation in place
	mutate(mealMutation{
		plan:           plan,
		dayID:          c.Param("day_id"),
		mealID:         c.Param("meal_id"),
		targetCalories: energy.TargetCalories(profile),
	})

	// 5. Commit and respond with the full plan
	commitMealPlan(userID, plan, action)
	return c.JSON(http.StatusOK, plan)
}
