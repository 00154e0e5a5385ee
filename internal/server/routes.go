package server

import (
	"net/http"

	"Fitforge_V1.0/internal/admin"
	"Fitforge_V1.0/internal/plans"
	"Fitforge_V1.0/internal/utility"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-User-ID", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Wire the handlers to the connection pool.
	plans.InitPlansPackage(s.db.Pool())

	// Public routes
	e.GET("/health", s.healthHandler)
	e.GET("/admin/system", admin.GetSystemStatusHandler(s.db))

	e.Use(LoggerMiddleware)

	// Identity-scoped routes. Authentication lives in front of this service;
	// the gateway forwards the verified user id in X-User-ID.
	protected := e.Group("")
	protected.Use(IdentityMiddleware)

	// Onboarding inputs
	protected.PUT("/profile", plans.UpsertProfileHandler)
	protected.PUT("/nutrition/assessment", plans.UpsertAssessmentHandler)
	protected.GET("/energy/targets", plans.GetEnergyTargetsHandler)

	// Combined generation
	protected.POST("/plans/generate", plans.GenerateAllPlansHandler)

	// Workout plan routes
	protected.POST("/plans/workout/generate", plans.GenerateWorkoutPlanHandler)
	protected.GET("/plans/workout", plans.GetWorkoutPlanHandler)
	protected.POST("/plans/workout/sessions/:session_id/toggle", plans.ToggleSessionCompletionHandler)
	protected.POST("/plans/workout/sessions/:session_id/regenerate", plans.RegenerateSessionHandler)
	protected.POST("/plans/workout/sessions/:session_id/exercises", plans.AddExerciseHandler)
	protected.POST("/plans/workout/sessions/:session_id/exercises/:exercise_id/toggle", plans.ToggleExerciseCompletionHandler)
	protected.PUT("/plans/workout/sessions/:session_id/exercises/:exercise_id", plans.UpdateExerciseHandler)
	protected.DELETE("/plans/workout/sessions/:session_id/exercises/:exercise_id", plans.RemoveExerciseHandler)

	// Nutrition plan routes
	protected.POST("/plans/nutrition/generate", plans.GenerateMealPlanHandler)
	protected.GET("/plans/nutrition", plans.GetMealPlanHandler)
	protected.POST("/plans/nutrition/days/:day_id/regenerate", plans.RegenerateDayHandler)
	protected.POST("/plans/nutrition/days/:day_id/meals", plans.AddMealHandler)
	protected.POST("/plans/nutrition/days/:day_id/meals/:meal_id/toggle", plans.ToggleMealCompletionHandler)
	protected.PUT("/plans/nutrition/days/:day_id/meals/:meal_id", plans.ReplaceMealHandler)
	protected.DELETE("/plans/nutrition/days/:day_id/meals/:meal_id", plans.RemoveMealHandler)

	// Grocery list (regenerated wholesale from the current meal plan)
	protected.GET("/plans/grocery", plans.GetGroceryListHandler)

	// AI assistant tool boundary
	protected.POST("/plans/assistant/import", plans.AssistantImportHandler)

	// Websocket for plan-update pushes
	protected.GET("/plans/ws", PlanSocketHandler)

	return e
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.db.Health())
}

// IdentityMiddleware resolves the caller from the X-User-ID header set by the
// auth gateway and stores it on the context for the handlers.
func IdentityMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := c.Request().Header.Get("X-User-ID")
		if !utility.ValidUserID(userID) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing or invalid X-User-ID header"})
		}
		c.Set("user_id", userID)
		return next(c)
	}
}

func LoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Response().Header().Set("X-Request-ID", requestID)

		logger := log.With().
			Str("request_id", requestID).
			Str("ip", utility.GetRealIP(c)).
			Logger()

		c.Set("logger", &logger)

		return next(c)
	}
}

// PlanSocketHandler maintains the persistent connection used to push plan
// change events to the client.
func PlanSocketHandler(c echo.Context) error {
	// 1. Get the user from the context (set by IdentityMiddleware)
	userID, err := utility.GetUserIDFromContext(c)
	if err != nil {
		return echo.ErrUnauthorized
	}

	// 2. Upgrade HTTP request to WebSocket
	ws, err := utility.Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	// 3. Register the client
	utility.RegisterClient(userID, ws)
	defer utility.UnregisterClient(userID)

	// 4. Listen loop (keep connection alive)
	// We don't expect messages FROM the client, but we need to read to keep the socket open
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	return nil
}
