package workout

import (
	"time"

	"Fitforge_V1.0/internal/model"
	"github.com/rs/zerolog/log"
)

// ExerciseUpdate carries the tunable fields of one plan exercise. Nil means
// "leave unchanged". Completion state is never touched by an update.
type ExerciseUpdate struct {
	Sets           *int    `json:"sets,omitempty"`
	RepsLow        *int    `json:"reps_low,omitempty"`
	RepsHigh       *int    `json:"reps_high,omitempty"`
	RestSeconds    *int    `json:"rest_seconds,omitempty"`
	AssignedWeight *string `json:"assigned_weight,omitempty"`
}

// ToggleExerciseCompletion flips one exercise's membership in the session's
// completed set and reconciles the session-level flag. Unknown ids no-op.
func ToggleExerciseCompletion(plan *model.WeeklyPlan, sessionID, exerciseID string) {
	session := plan.Session(sessionID)
	if session == nil || !hasExercise(session, exerciseID) {
		return
	}

	if session.CompletedExercises == nil {
		session.CompletedExercises = map[string]bool{}
	}
	if session.CompletedExercises[exerciseID] {
		delete(session.CompletedExercises, exerciseID)
	} else {
		session.CompletedExercises[exerciseID] = true
	}

	reconcileCompletion(session)
}

// ToggleSessionCompletion flips the session-level flag directly. Setting it
// true forces the completed set to cover every exercise; setting it false
// clears the set. Both fields are always written together so this path and
// the per-exercise path cannot drift apart.
func ToggleSessionCompletion(plan *model.WeeklyPlan, sessionID string) {
	session := plan.Session(sessionID)
	if session == nil {
		return
	}

	if session.Completed {
		session.Completed = false
		session.CompletedExercises = map[string]bool{}
		session.CompletedAt = nil
		return
	}

	session.Completed = true
	session.CompletedExercises = map[string]bool{}
	for _, ex := range session.Exercises {
		session.CompletedExercises[ex.ID] = true
	}
	now := time.Now()
	session.CompletedAt = &now
}

// UpdateExercise replaces the tunable fields of one exercise in place.
func UpdateExercise(plan *model.WeeklyPlan, sessionID, exerciseID string, update ExerciseUpdate) {
	session := plan.Session(sessionID)
	if session == nil {
		return
	}

	for i := range session.Exercises {
		ex := &session.Exercises[i]
		if ex.ID != exerciseID {
			continue
		}
		if update.Sets != nil {
			ex.Sets = *update.Sets
		}
		if update.RepsLow != nil {
			ex.RepsLow = *update.RepsLow
		}
		if update.RepsHigh != nil {
			ex.RepsHigh = *update.RepsHigh
		}
		if update.RestSeconds != nil {
			ex.RestSeconds = *update.RestSeconds
		}
		if update.AssignedWeight != nil {
			ex.AssignedWeight = *update.AssignedWeight
		}
		return
	}
}

// AddExerciseToSession materializes a catalog exercise into the session's
// main block. The new entry is inserted after the last main exercise (or
// after the warm-up block when the main block is empty) so warm-up-first,
// cool-down-last ordering survives.
func AddExerciseToSession(plan *model.WeeklyPlan, sessionID string, cat model.CatalogExercise, p model.Profile) *model.PlanExercise {
	session := plan.Session(sessionID)
	if session == nil {
		return nil
	}

	ex := materialize(cat, model.BlockMain, p, true)
	idx := mainInsertIndex(session)
	session.Exercises = append(session.Exercises, model.PlanExercise{})
	copy(session.Exercises[idx+1:], session.Exercises[idx:])
	session.Exercises[idx] = ex

	// A previously fully-completed session is no longer complete.
	reconcileCompletion(session)
	return &session.Exercises[idx]
}

// RemoveExerciseFromSession deletes one exercise by id and drops it from the
// completed set. Unknown ids no-op.
func RemoveExerciseFromSession(plan *model.WeeklyPlan, sessionID, exerciseID string) {
	session := plan.Session(sessionID)
	if session == nil {
		return
	}

	for i := range session.Exercises {
		if session.Exercises[i].ID != exerciseID {
			continue
		}
		session.Exercises = append(session.Exercises[:i], session.Exercises[i+1:]...)
		delete(session.CompletedExercises, exerciseID)
		reconcileCompletion(session)
		return
	}
}

// RegenerateSession re-runs selection and goal adjustment for the session's
// existing main muscle groups. Warm-up and cool-down entries are preserved
// and completion state is cleared.
func (s *Synthesizer) RegenerateSession(plan *model.WeeklyPlan, sessionID string, p model.Profile) {
	session := plan.Session(sessionID)
	if session == nil {
		return
	}

	groups := mainMuscleGroups(session)
	var warmups, cooldowns []model.PlanExercise
	for _, ex := range session.Exercises {
		switch ex.Block {
		case model.BlockWarmup:
			warmups = append(warmups, ex)
		case model.BlockCooldown:
			cooldowns = append(cooldowns, ex)
		}
	}

	rebuilt := make([]model.PlanExercise, 0, len(session.Exercises))
	rebuilt = append(rebuilt, warmups...)
	rebuilt = append(rebuilt, s.selectMainExercises(p, groups)...)
	rebuilt = append(rebuilt, cooldowns...)

	session.Exercises = rebuilt
	session.Completed = false
	session.CompletedExercises = map[string]bool{}
	session.CompletedAt = nil

	log.Info().
		Str("user_id", p.UserID).
		Str("session_id", sessionID).
		Strs("muscle_groups", groups).
		Msg("Regenerated workout session")
}

// reconcileCompletion derives the session flag from the completed set:
// completed is true exactly when the set covers every exercise id.
func reconcileCompletion(session *model.WorkoutSession) {
	all := len(session.Exercises) > 0
	for _, ex := range session.Exercises {
		if !session.CompletedExercises[ex.ID] {
			all = false
			break
		}
	}

	if all && !session.Completed {
		now := time.Now()
		session.CompletedAt = &now
	}
	if !all {
		session.CompletedAt = nil
	}
	session.Completed = all
}

func hasExercise(session *model.WorkoutSession, exerciseID string) bool {
	for _, ex := range session.Exercises {
		if ex.ID == exerciseID {
			return true
		}
	}
	return false
}

// mainInsertIndex returns the position just after the last main exercise,
// or after the warm-up block when no main exercises remain.
func mainInsertIndex(session *model.WorkoutSession) int {
	idx := 0
	for i, ex := range session.Exercises {
		switch ex.Block {
		case model.BlockWarmup, model.BlockMain:
			idx = i + 1
		}
	}
	return idx
}

// mainMuscleGroups returns the distinct muscle groups of the session's main
// block in first-seen order.
func mainMuscleGroups(session *model.WorkoutSession) []string {
	seen := map[string]bool{}
	var out []string
	for _, ex := range session.Exercises {
		if ex.Block != model.BlockMain || seen[ex.MuscleGroup] {
			continue
		}
		seen[ex.MuscleGroup] = true
		out = append(out, ex.MuscleGroup)
	}
	return out
}
