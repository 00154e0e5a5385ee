package plans

import (
	"net/http"
	"time"

	"Fitforge_V1.0/internal/engine/energy"
	"Fitforge_V1.0/internal/model"
	"Fitforge_V1.0/internal/utility"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

/* =================================================================================
									HANDLERS
=================================================================================*/

// UpsertProfileHandler stores the caller's training profile. Writes are
// synchronous: the profile is the input of every generator and must be
// durable before generation is offered.
func UpsertProfileHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var profile model.Profile
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	// Validate the enum fields before anything touches the engine.
	if !profile.Goal.IsValid() || !profile.FitnessLevel.IsValid() ||
		!profile.TrainingLocation.IsValid() || !profile.ActivityLevel.IsValid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid goal, level, location or activity value"})
	}
	if profile.AvailableDays < 2 || profile.AvailableDays > 7 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "available_days must be between 2 and 7"})
	}
	if profile.WeightKg <= 0 || profile.HeightCm <= 0 || profile.Age <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "age, weight_kg and height_cm must be positive"})
	}

	profile.UserID = userID
	profile.UpdatedAt = time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = profile.UpdatedAt
	}

	if err := st.SaveProfile(ctx, profile); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to save profile")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save profile"})
	}

	return c.JSON(http.StatusOK, profile)
}

// UpsertAssessmentHandler stores the caller's nutrition assessment from
// onboarding. Generation stays blocked until Completed is set.
func UpsertAssessmentHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	var assessment model.NutritionAssessment
	if err := c.Bind(&assessment); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	assessment.UserID = userID
	assessment.UpdatedAt = time.Now()

	if err := st.SaveAssessment(ctx, assessment); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to save assessment")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save assessment"})
	}

	return c.JSON(http.StatusOK, assessment)
}

// GetEnergyTargetsHandler returns the derived energy figures for display.
func GetEnergyTargetsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	profile, err := st.LoadProfile(ctx, userID)
	if err != nil {
		if notFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Profile not found, complete onboarding first"})
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load profile")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load profile"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"bmr":             energy.BMR(profile),
		"tdee":            energy.TDEE(profile),
		"target_calories": energy.TargetCalories(profile),
		"target_protein":  energy.TargetProtein(profile),
		"goal":            profile.Goal,
	})
}
