package plans

import (
	"errors"
	"fmt"
	"net/http"

	"Fitforge_V1.0/internal/engine/nutrition"
	"Fitforge_V1.0/internal/model"
	"Fitforge_V1.0/internal/utility"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// GenerateAllRequest selects which plans a combined generation run produces.
type GenerateAllRequest struct {
	GeneratePlanRequest
	Include []string `json:"include" validate:"required,min=1"` // 'workout', 'nutrition'
}

// GenerateAllResponse carries the generated plans plus any per-part refusal.
type GenerateAllResponse struct {
	WorkoutPlan    *model.WeeklyPlan     `json:"workout_plan,omitempty"`
	MealPlan       *model.WeeklyMealPlan `json:"meal_plan,omitempty"`
	NutritionError string                `json:"nutrition_error,omitempty"`
}

/* =================================================================================
									HANDLERS
=================================================================================*/

// GenerateAllPlansHandler runs the workout and nutrition synthesizers in
// parallel for a single onboarding round trip. A blocked nutrition side
// (assessment not completed) degrades to a partial response instead of
// failing the workout side with it.
func GenerateAllPlansHandler(c echo.Context) error {
	ctx := c.Request().Context()

	// 1. Resolve caller identity
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	// 2. Parse and validate the request body
	var req GenerateAllRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}
	if len(req.Include) == 0 {
		req.Include = []string{"workout", "nutrition"}
	}

	wantWorkout, wantNutrition := false, false
	for _, part := range req.Include {
		switch part {
		case "workout":
			wantWorkout = true
		case "nutrition":
			wantNutrition = true
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("Invalid include value '%s'. Must be 'workout' or 'nutrition'", part),
			})
		}
	}

	// 3. Load the shared inputs once
	profile, assessment, err := loadNutritionInputs(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile not found, complete onboarding first"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load generation inputs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile data"})
	}

	// 4. Generate both sides in parallel
	var resp GenerateAllResponse
	g, _ := errgroup.WithContext(ctx)

	if wantWorkout {
		g.Go(func() error {
			resp.WorkoutPlan = workoutGen.Generate(profile, req.week(), req.weekStart())
			return nil
		})
	}

	if wantNutrition {
		g.Go(func() error {
			plan, genErr := nutritionGen.Generate(profile, assessment, req.week(), req.weekStart())
			if genErr != nil {
				if errors.Is(genErr, nutrition.ErrAssessmentIncomplete) {
					resp.NutritionError = "Nutrition assessment not completed"
					return nil
				}
				return genErr
			}
			resp.MealPlan = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Combined plan generation failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate plans"})
	}

	// 5. Commit whatever was produced under the user's mutation lock
	unlock := lockUser(userID)
	if resp.WorkoutPlan != nil {
		commitWorkoutPlan(userID, resp.WorkoutPlan, "generated")
	}
	if resp.MealPlan != nil {
		commitMealPlan(userID, resp.MealPlan, "generated")
	}
	unlock()

	log.Info().
		Str("user_id", userID).
		Bool("workout", resp.WorkoutPlan != nil).
		Bool("nutrition", resp.MealPlan != nil).
		Msg("Combined plan generation finished")
	return c.JSON(http.StatusCreated, resp)
}
