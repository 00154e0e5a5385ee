/*
Package plans is the HTTP layer over the plan engine. Handlers resolve the
caller from the X-User-ID identity middleware, run the synthesizers and
mutators, and hand the results to the store and the websocket hub.
*/
package plans

import (
	"context"
	"errors"
	"sync"

	"Fitforge_V1.0/internal/catalog"
	"Fitforge_V1.0/internal/engine/nutrition"
	"Fitforge_V1.0/internal/engine/workout"
	"Fitforge_V1.0/internal/model"
	"Fitforge_V1.0/internal/store"
	"Fitforge_V1.0/internal/utility"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// planCacheSize bounds the per-plan LRU caches; one entry per active user.
const planCacheSize = 512

var (
	st           *store.Store
	workoutGen   *workout.Synthesizer
	nutritionGen *nutrition.Synthesizer

	workoutCache *lru.Cache[string, *model.WeeklyPlan]
	mealCache    *lru.Cache[string, *model.WeeklyMealPlan]

	userLocks sync.Map // user id -> *sync.Mutex
)

// InitPlansPackage is called by the server package to wire the database pool
// into the handlers.
func InitPlansPackage(dbpool *pgxpool.Pool) {
	st = store.New(dbpool)
	workoutGen = workout.NewSeeded()
	nutritionGen = nutrition.NewSeeded()

	workoutCache, _ = lru.New[string, *model.WeeklyPlan](planCacheSize)
	mealCache, _ = lru.New[string, *model.WeeklyMealPlan](planCacheSize)

	log.Info().Msg("Plans package initialized with database pool.")
}

/* =================================================================================
							PLAN ACCESS & PERSISTENCE
=================================================================================*/

// lockUser serializes load-mutate-commit cycles for one user so concurrent
// requests cannot interleave on the same plan. Returns the unlock func.
func lockUser(userID string) func() {
	mu, _ := userLocks.LoadOrStore(userID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// workoutPlanFor returns a private copy of the user's current workout plan,
// preferring the LRU cache over a store round trip. Cached plans are never
// handed out directly: a pointer in the cache may still be json-encoded by a
// background persist, so callers always mutate their own copy.
func workoutPlanFor(ctx context.Context, userID string) (*model.WeeklyPlan, error) {
	if plan, ok := workoutCache.Get(userID); ok {
		return plan.Clone(), nil
	}
	plan, err := st.LoadWorkoutPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	workoutCache.Add(userID, plan)
	return plan.Clone(), nil
}

// mealPlanFor returns a private copy of the user's current meal plan,
// preferring the LRU cache.
func mealPlanFor(ctx context.Context, userID string) (*model.WeeklyMealPlan, error) {
	if plan, ok := mealCache.Get(userID); ok {
		return plan.Clone(), nil
	}
	plan, err := st.LoadMealPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	mealCache.Add(userID, plan)
	return plan.Clone(), nil
}

// commitWorkoutPlan caches the mutated plan, persists it optimistically and
// pushes an update event to the user's websocket, if any. After the commit the
// published pointer is read-only: every read path clones it before mutating.
func commitWorkoutPlan(userID string, plan *model.WeeklyPlan, action string) {
	workoutCache.Add(userID, plan)
	st.PersistAsync("workout_plan", userID, func(ctx context.Context) error {
		return st.SaveWorkoutPlan(ctx, plan)
	})
	utility.NotifyPlanChanged(userID, "workout", action)
}

// commitMealPlan is commitWorkoutPlan for the nutrition side.
func commitMealPlan(userID string, plan *model.WeeklyMealPlan, action string) {
	mealCache.Add(userID, plan)
	st.PersistAsync("meal_plan", userID, func(ctx context.Context) error {
		return st.SaveMealPlan(ctx, plan)
	})
	utility.NotifyPlanChanged(userID, "nutrition", action)
}

/* =================================================================================
							CATALOG LOOKUPS
=================================================================================*/

// lookupExercise scans the catalog for an exercise id across every muscle
// group, warm-ups and cool-downs included.
func lookupExercise(catalogID string) (model.CatalogExercise, bool) {
	for _, group := range catalog.MuscleGroups() {
		for _, ex := range catalog.ExercisesFor(group) {
			if ex.ID == catalogID {
				return ex, true
			}
		}
	}
	for _, ex := range catalog.WarmupExercises() {
		if ex.ID == catalogID {
			return ex, true
		}
	}
	for _, ex := range catalog.CooldownExercises() {
		if ex.ID == catalogID {
			return ex, true
		}
	}
	return model.CatalogExercise{}, false
}

// lookupMeal scans the catalog for a meal id across every meal type.
func lookupMeal(catalogID string) (model.CatalogMeal, bool) {
	for _, mealType := range []model.MealType{model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack} {
		for _, meal := range catalog.MealsFor(mealType) {
			if meal.ID == catalogID {
				return meal, true
			}
		}
	}
	return model.CatalogMeal{}, false
}

// notFound reports whether err is the store's absence sentinel.
func notFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
