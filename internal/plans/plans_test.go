package plans

import (
	"context"
	"sync"
	"testing"

	"Fitforge_V1.0/internal/engine/workout"
	"Fitforge_V1.0/internal/model"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/stretchr/testify/require"
)

func initTestCaches(t *testing.T) {
	t.Helper()
	var err error
	workoutCache, err = lru.New[string, *model.WeeklyPlan](planCacheSize)
	require.NoError(t, err)
	mealCache, err = lru.New[string, *model.WeeklyMealPlan](planCacheSize)
	require.NoError(t, err)
}

// Cached plans stay visible to the background persister after a commit, so
// the read path must hand every request its own copy.
func TestWorkoutPlanFor_ReturnsIsolatedCopy(t *testing.T) {
	initTestCaches(t)
	seed := importTestWorkoutPlan(t)
	workoutCache.Add(seed.UserID, seed)

	got, err := workoutPlanFor(context.Background(), seed.UserID)
	require.NoError(t, err)
	require.NotSame(t, seed, got)

	first := &got.Sessions[0]
	first.CompletedExercises[first.Exercises[0].ID] = true
	first.Exercises[0].Sets = 99

	cached, ok := workoutCache.Get(seed.UserID)
	require.True(t, ok)
	require.Empty(t, cached.Sessions[0].CompletedExercises)
	require.NotEqual(t, 99, cached.Sessions[0].Exercises[0].Sets)
}

func TestMealPlanFor_ReturnsIsolatedCopy(t *testing.T) {
	initTestCaches(t)
	seed := importTestMealPlan(t)
	mealCache.Add(seed.UserID, seed)

	got, err := mealPlanFor(context.Background(), seed.UserID)
	require.NoError(t, err)
	require.NotSame(t, seed, got)

	got.Days[0].Completed.Lunch = true
	got.Days[0].Lunch.Calories = 1

	cached, ok := mealCache.Get(seed.UserID)
	require.True(t, ok)
	require.False(t, cached.Days[0].Completed.Lunch)
	require.NotEqual(t, 1, cached.Days[0].Lunch.Calories)
}

// One goroutine per exercise toggles completion on the same session. With the
// per-user lock serializing each load-edit-publish cycle, every toggle must
// land and the seeded cache entry must stay untouched.
func TestConcurrentExerciseToggles_AllRecorded(t *testing.T) {
	initTestCaches(t)
	seed := importTestWorkoutPlan(t)
	workoutCache.Add(seed.UserID, seed)

	sessionID := seed.Sessions[0].ID
	exercises := seed.Sessions[0].Exercises

	var wg sync.WaitGroup
	for _, ex := range exercises {
		wg.Add(1)
		go func(exerciseID string) {
			defer wg.Done()
			unlock := lockUser(seed.UserID)
			defer unlock()

			plan, err := workoutPlanFor(context.Background(), seed.UserID)
			if err != nil {
				t.Error(err)
				return
			}
			workout.ToggleExerciseCompletion(plan, sessionID, exerciseID)
			workoutCache.Add(seed.UserID, plan)
		}(ex.ID)
	}
	wg.Wait()

	final, ok := workoutCache.Get(seed.UserID)
	require.True(t, ok)
	require.Len(t, final.Session(sessionID).CompletedExercises, len(exercises))
	require.True(t, final.Session(sessionID).Completed)
	require.Empty(t, seed.Sessions[0].CompletedExercises)
}

// An even number of serialized toggles on the same slot must round-trip back
// to its starting state; lost updates would leave it flipped.
func TestConcurrentMealToggles_Serialized(t *testing.T) {
	initTestCaches(t)
	seed := importTestMealPlan(t)
	mealCache.Add(seed.UserID, seed)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lockUser(seed.UserID)
			defer unlock()

			plan, err := mealPlanFor(context.Background(), seed.UserID)
			if err != nil {
				t.Error(err)
				return
			}
			plan.Days[0].Completed.Lunch = !plan.Days[0].Completed.Lunch
			mealCache.Add(seed.UserID, plan)
		}()
	}
	wg.Wait()

	final, ok := mealCache.Get(seed.UserID)
	require.True(t, ok)
	require.False(t, final.Days[0].Completed.Lunch)
	require.False(t, seed.Days[0].Completed.Lunch)
}
