package plans

import (
	"net/http"
	"time"

	"Fitforge_V1.0/internal/engine/workout"
	"Fitforge_V1.0/internal/model"
	"Fitforge_V1.0/internal/utility"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

/* =================================================================================
							DTOs (Data Transfer Objects)
=================================================================================*/

// GeneratePlanRequest is the optional payload of the generation endpoints.
type GeneratePlanRequest struct {
	WeekNumber int    `json:"week_number,omitempty"`
	StartDate  string `json:"start_date,omitempty"` // RFC3339 date; defaults to today
}

// AddExerciseRequest names the catalog exercise to materialize into a session.
type AddExerciseRequest struct {
	CatalogID string `json:"catalog_id" validate:"required"`
}

// weekStart resolves the requested start date, defaulting to today at
// midnight UTC.
func (r GeneratePlanRequest) weekStart() time.Time {
	if t, err := time.Parse("2006-01-02", r.StartDate); err == nil {
		return t
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (r GeneratePlanRequest) week() int {
	if r.WeekNumber > 0 {
		return r.WeekNumber
	}
	return 1
}

/* =================================================================================
									HANDLERS
=================================================================================*/

// GenerateWorkoutPlanHandler builds a fresh weekly plan from the user's
// profile, replacing any existing one.
func GenerateWorkoutPlanHandler(c echo.Context) error {
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

	// 3. Load the profile; no profile means nothing to generate from
	profile, err := st.LoadProfile(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile not found, complete onboarding first"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	// 4. Synthesize and commit under the user's mutation lock
	plan := workoutGen.Generate(profile, req.week(), req.weekStart())
	unlock := lockUser(userID)
	commitWorkoutPlan(userID, plan, "generated")
	unlock()

	log.Info().Str("user_id", userID).Int("sessions", len(plan.Sessions)).Msg("Generated workout plan")
	return c.JSON(http.StatusCreated, plan)
}

// GetWorkoutPlanHandler returns the user's current weekly plan.
func GetWorkoutPlanHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	plan, err := workoutPlanFor(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No workout plan generated yet"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load workout plan")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load workout plan"})
	}

	return c.JSON(http.StatusOK, plan)
}

// ToggleSessionCompletionHandler flips a whole session's completed flag.
func ToggleSessionCompletionHandler(c echo.Context) error {
	return mutateWorkoutPlan(c, "session_toggled", func(mc workoutMutation) {
		workout.ToggleSessionCompletion(mc.plan, mc.sessionID)
	})
}

// ToggleExerciseCompletionHandler flips one exercise in the session's
// completed set.
func ToggleExerciseCompletionHandler(c echo.Context) error {
	return mutateWorkoutPlan(c, "exercise_toggled", func(mc workoutMutation) {
		workout.ToggleExerciseCompletion(mc.plan, mc.sessionID, mc.exerciseID)
	})
}

// UpdateExerciseHandler overwrites the tunable fields of one exercise.
func UpdateExerciseHandler(c echo.Context) error {
	var update workout.ExerciseUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	return mutateWorkoutPlan(c, "exercise_updated", func(mc workoutMutation) {
		workout.UpdateExercise(mc.plan, mc.sessionID, mc.exerciseID, update)
	})
}

// AddExerciseHandler materializes a catalog exercise into the session's main
// block.
func AddExerciseHandler(c echo.Context) error {
	var req AddExerciseRequest
	if err := c.Bind(&req); err != nil || req.CatalogID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "catalog_id is required"})
	}

	cat, ok := lookupExercise(req.CatalogID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown catalog exercise"})
	}

	return mutateWorkoutPlan(c, "exercise_added", func(mc workoutMutation) {
		workout.AddExerciseToSession(mc.plan, mc.sessionID, cat, mc.profile)
	})
}

// RemoveExerciseHandler deletes one exercise from a session.
func RemoveExerciseHandler(c echo.Context) error {
	return mutateWorkoutPlan(c, "exercise_removed", func(mc workoutMutation) {
		workout.RemoveExerciseFromSession(mc.plan, mc.sessionID, mc.exerciseID)
	})
}

// RegenerateSessionHandler redraws the session's main exercises while
// keeping its muscle groups, warm-ups and cool-downs.
func RegenerateSessionHandler(c echo.Context) error {
	return mutateWorkoutPlan(c, "session_regenerated", func(mc workoutMutation) {
		workoutGen.RegenerateSession(mc.plan, mc.sessionID, mc.profile)
	})
}

/* =================================================================================
							INTERNAL LOGIC & HELPERS
=================================================================================*/

// workoutMutation bundles everything a workout mutator needs from the request.
type workoutMutation struct {
	plan       *model.WeeklyPlan
	sessionID  string
	exerciseID string
	profile    model.Profile
}

// mutateWorkoutPlan factors the shared load / mutate / commit / respond cycle
// of every workout mutation endpoint. Mutators are id-keyed and no-op on
// unknown ids, so the handler always responds with the (possibly unchanged)
// plan.
func mutateWorkoutPlan(c echo.Context, action string, mutate func(workoutMutation)) error {
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

	plan, err := workoutPlanFor(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "No workout plan generated yet"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load workout plan")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load workout plan"})
	}

	// 3. Load the profile; regenerate/add need goal and level context
	profile, err := st.LoadProfile(ctx, userID)
	if err != nil && !notFound(err) {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	// 4. Apply the mutation in place
	mutate(workoutMutation{
		plan:       plan,
		sessionID:  c.Param("session_id"),
		exerciseID: c.Param("exercise_id"),
		profile:    profile,
	})

	// 5. Commit and respond with the full plan
	commitWorkoutPlan(userID, plan, action)
	return c.JSON(http.StatusOK, plan)
}
