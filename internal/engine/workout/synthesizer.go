/*
Package workout turns a user profile into a weekly training plan: template
selection, equipment/injury pool filtering, goal-adjusted exercise
parameters and weight assignment. It also owns the incremental mutation
operations that keep an existing plan consistent after partial edits.
*/
package workout

import (
	"math/rand"
	"strings"
	"time"

	"Fitforge_V1.0/internal/catalog"
	"Fitforge_V1.0/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// exercisesPerLevel is how many main exercises each muscle group gets.
var exercisesPerLevel = map[model.FitnessLevel]int{
	model.LevelBeginner:     2,
	model.LevelIntermediate: 3,
	model.LevelAdvanced:     4,
}

// goalAdjustment is one row of the per-goal parameter table applied to every
// selected main exercise.
type goalAdjustment struct {
	SetDelta     int
	SetCap       int
	RepLowDelta  int
	RepHighDelta int
	RepLowFloor  int
	RepHighFloor int
	RestDelta    int
	RestFloor    int
}

var goalAdjustments = map[model.Goal]goalAdjustment{
	model.GoalFatLoss: {
		SetDelta: 1, SetCap: 5,
		RepLowDelta: 2, RepHighDelta: 5,
		RestDelta: -15, RestFloor: 45,
	},
	model.GoalMuscleGain: {
		RepLowDelta: -2, RepHighDelta: -2,
		RepLowFloor: 6, RepHighFloor: 8,
		RestDelta: 15,
	},
	model.GoalGeneralFitness: {},
}

// Synthesizer generates weekly plans. The random source is injected so
// generation is reproducible under test while staying random in production.
type Synthesizer struct {
	rng *rand.Rand
}

// New returns a Synthesizer backed by the given random source.
func New(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// NewSeeded returns a Synthesizer seeded from the wall clock.
func NewSeeded() *Synthesizer {
	return New(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Generate builds a full WeeklyPlan for the profile. The week starts at
// startDate and always spans 7 calendar days regardless of session count.
func (s *Synthesizer) Generate(p model.Profile, weekNumber int, startDate time.Time) *model.WeeklyPlan {
	template := selectTemplate(p)
	days := cycleDays(template, p.AvailableDays)

	plan := &model.WeeklyPlan{
		ID:         uuid.New().String(),
		UserID:     p.UserID,
		WeekNumber: weekNumber,
		StartDate:  startDate,
		EndDate:    startDate.AddDate(0, 0, 6),
		CreatedAt:  time.Now(),
	}

	for i, groups := range days {
		session := s.buildSession(p, i, len(days), groups)
		plan.Sessions = append(plan.Sessions, session)
	}

	log.Info().
		Str("user_id", p.UserID).
		Str("template", template.Name).
		Int("sessions", len(plan.Sessions)).
		Msg("Generated weekly workout plan")

	return plan
}

// buildSession assembles one training day: warm-up block, main block from
// the day's muscle groups, cool-down block, plus the advisory rest note.
func (s *Synthesizer) buildSession(p model.Profile, dayIndex, totalDays int, groups []string) model.WorkoutSession {
	session := model.WorkoutSession{
		ID:                 uuid.New().String(),
		Day:                dayLabel(dayIndex),
		Name:               sessionName(groups),
		DurationMinutes:    p.SessionDuration,
		CompletedExercises: map[string]bool{},
		RestNote:           restNote(dayIndex, totalDays, p),
	}

	for _, warm := range catalog.WarmupExercises() {
		session.Exercises = append(session.Exercises, materialize(warm, model.BlockWarmup, p, false))
	}
	for _, ex := range s.selectMainExercises(p, groups) {
		session.Exercises = append(session.Exercises, ex)
	}
	for _, cool := range catalog.CooldownExercises() {
		session.Exercises = append(session.Exercises, materialize(cool, model.BlockCooldown, p, false))
	}

	return session
}

// selectMainExercises runs the filter/shuffle/take/adjust pipeline for each
// muscle group of a session. A group whose filtered pool is empty simply
// contributes nothing.
func (s *Synthesizer) selectMainExercises(p model.Profile, groups []string) []model.PlanExercise {
	take := exercisesPerLevel[p.FitnessLevel]
	if take == 0 {
		take = 2
	}

	var out []model.PlanExercise
	for _, group := range groups {
		pool := filterPool(catalog.ExercisesFor(group), p)
		if len(pool) == 0 {
			log.Warn().
				Str("user_id", p.UserID).
				Str("muscle_group", group).
				Str("location", string(p.TrainingLocation)).
				Msg("Exercise pool empty after filters, skipping muscle group")
			continue
		}

		s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		n := take
		if n > len(pool) {
			n = len(pool)
		}
		for _, cat := range pool[:n] {
			out = append(out, materialize(cat, model.BlockMain, p, true))
		}
	}
	return out
}

// materialize instantiates a catalog exercise into a session with a fresh
// id, a weight resolved for the profile's gender/level and, for main
// exercises, goal-adjusted parameters. Warm-up and cool-down entries are
// never adjusted.
func materialize(cat model.CatalogExercise, block model.ExerciseBlock, p model.Profile, adjust bool) model.PlanExercise {
	ex := model.PlanExercise{
		ID:          uuid.New().String(),
		CatalogID:   cat.ID,
		Name:        cat.Name,
		NameAr:      cat.NameAr,
		MuscleGroup: cat.MuscleGroup,
		Block:       block,
		Sets:        cat.Sets,
		RepsLow:     cat.RepsLow,
		RepsHigh:    cat.RepsHigh,
		RestSeconds: cat.RestSeconds,
		VideoURL:    cat.VideoURL,
	}

	if byLevel, ok := cat.Weights[p.Gender]; ok {
		ex.AssignedWeight = byLevel[p.FitnessLevel]
	}

	if adjust {
		applyGoalAdjustment(&ex, p.Goal)
	}

	if p.TrainingLocation == model.LocationHome || p.TrainingLocation == model.LocationMinimalEquipment {
		if override := catalog.HomeVideoOverride(cat.ID); override != "" {
			ex.VideoURL = override
		}
	}

	return ex
}

// applyGoalAdjustment rewrites sets/reps/rest in place per the goal table.
func applyGoalAdjustment(ex *model.PlanExercise, goal model.Goal) {
	adj, ok := goalAdjustments[goal]
	if !ok {
		return
	}

	ex.Sets += adj.SetDelta
	if adj.SetCap > 0 && ex.Sets > adj.SetCap {
		ex.Sets = adj.SetCap
	}

	ex.RepsLow += adj.RepLowDelta
	ex.RepsHigh += adj.RepHighDelta
	if ex.RepsLow < adj.RepLowFloor {
		ex.RepsLow = adj.RepLowFloor
	}
	if ex.RepsHigh < adj.RepHighFloor {
		ex.RepsHigh = adj.RepHighFloor
	}

	ex.RestSeconds += adj.RestDelta
	if adj.RestFloor > 0 && ex.RestSeconds < adj.RestFloor {
		ex.RestSeconds = adj.RestFloor
	}
}

// restNote returns the advisory note attached to certain sessions, or "".
// It never removes a session. High ambient activity suppresses all notes;
// the remaining rules nudge recovery on dense schedules.
func restNote(dayIndex, totalDays int, p model.Profile) string {
	if p.ActivityLevel == model.ActivityHigh {
		return ""
	}

	const note = "Consider making this a lighter session or an active-recovery day."

	switch p.FitnessLevel {
	case model.LevelBeginner:
		if totalDays >= 6 && (dayIndex == 2 || dayIndex == 5) {
			return note
		}
		if totalDays == 5 && dayIndex == 2 {
			return note
		}
	case model.LevelIntermediate:
		if totalDays >= 6 && dayIndex == 3 {
			return note
		}
	}

	if p.Goal == model.GoalMuscleGain && totalDays == 7 && dayIndex == 6 {
		return "Recovery drives growth: keep this session short if the week felt heavy."
	}

	return ""
}

func dayLabel(i int) string {
	labels := []string{"Day 1", "Day 2", "Day 3", "Day 4", "Day 5", "Day 6", "Day 7"}
	if i < len(labels) {
		return labels[i]
	}
	return "Day"
}

// sessionName derives a readable session title from its muscle groups.
func sessionName(groups []string) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if g == "" {
			continue
		}
		parts = append(parts, strings.ToUpper(g[:1])+g[1:])
	}
	return strings.Join(parts, " & ")
}
