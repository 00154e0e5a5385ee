package workout

import (
	"math/rand"
	"testing"
	"time"

	"Fitforge_V1.0/internal/catalog"
	"Fitforge_V1.0/internal/model"
	"github.com/stretchr/testify/require"
)

func testProfile() model.Profile {
	return model.Profile{
		UserID:           "user-1",
		Age:              30,
		WeightKg:         70,
		HeightCm:         175,
		Gender:           model.GenderMale,
		Goal:             model.GoalGeneralFitness,
		FitnessLevel:     model.LevelIntermediate,
		TrainingLocation: model.LocationGym,
		ActivityLevel:    model.ActivityModerate,
		AvailableDays:    4,
		SessionDuration:  60,
	}
}

func testSynthesizer() *Synthesizer {
	return New(rand.New(rand.NewSource(42)))
}

func TestSelectTemplate(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		level    model.FitnessLevel
		activity model.ActivityLevel
		want     string
	}{
		{"2 days full body", 2, model.LevelBeginner, model.ActivityLight, "full_body"},
		{"3 days full body", 3, model.LevelAdvanced, model.ActivityHigh, "full_body"},
		{"4 days upper lower", 4, model.LevelIntermediate, model.ActivityModerate, "upper_lower"},
		{"5 days default upper lower", 5, model.LevelIntermediate, model.ActivityHigh, "upper_lower"},
		{"6 days advanced moderate still upper lower", 6, model.LevelAdvanced, model.ActivityModerate, "upper_lower"},
		{"5 days advanced high is PPL", 5, model.LevelAdvanced, model.ActivityHigh, "push_pull_legs"},
		{"7 days advanced high is PPL", 7, model.LevelAdvanced, model.ActivityHigh, "push_pull_legs"},
		{"out of range falls back to full body", 1, model.LevelBeginner, model.ActivityNone, "full_body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			p.AvailableDays = tt.days
			p.FitnessLevel = tt.level
			p.ActivityLevel = tt.activity
			if got := selectTemplate(p); got.Name != tt.want {
				t.Errorf("selectTemplate() = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestCycleDays_Wraparound(t *testing.T) {
	days := cycleDays(fullBodyTemplate, 5)
	if len(days) != 5 {
		t.Fatalf("cycleDays length = %d, want 5", len(days))
	}
	// Entries 3 and 4 wrap back to the template start.
	require.Equal(t, fullBodyTemplate.Days[0], days[3])
	require.Equal(t, fullBodyTemplate.Days[1], days[4])
}

// Scenario from the product requirements: fat-loss beginner, 3 days, home.
func TestGenerate_FatLossBeginnerHome(t *testing.T) {
	p := testProfile()
	p.Goal = model.GoalFatLoss
	p.FitnessLevel = model.LevelBeginner
	p.TrainingLocation = model.LocationHome
	p.AvailableDays = 3

	plan := testSynthesizer().Generate(p, 1, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	require.Len(t, plan.Sessions, 3)
	require.Equal(t, plan.StartDate.AddDate(0, 0, 6), plan.EndDate)

	base := map[string]model.CatalogExercise{}
	for _, group := range catalog.MuscleGroups() {
		for _, ex := range catalog.ExercisesFor(group) {
			base[ex.ID] = ex
		}
	}

	for _, session := range plan.Sessions {
		for _, ex := range session.Exercises {
			if ex.Block != model.BlockMain {
				continue
			}
			cat, ok := base[ex.CatalogID]
			require.True(t, ok, "unknown catalog id %s", ex.CatalogID)

			// home location: bodyweight only
			require.Empty(t, cat.Equipment, "exercise %s has equipment at home", ex.CatalogID)

			// fat loss: +1 set (cap 5), rest -15s (floor 45)
			wantSets := cat.Sets + 1
			if wantSets > 5 {
				wantSets = 5
			}
			require.Equal(t, wantSets, ex.Sets)

			wantRest := cat.RestSeconds - 15
			if wantRest < 45 {
				wantRest = 45
			}
			require.Equal(t, wantRest, ex.RestSeconds)

			require.Equal(t, cat.RepsLow+2, ex.RepsLow)
			require.Equal(t, cat.RepsHigh+5, ex.RepsHigh)
		}
	}
}

func TestGenerate_BlockOrdering(t *testing.T) {
	plan := testSynthesizer().Generate(testProfile(), 1, time.Now())

	for _, session := range plan.Sessions {
		assertBlockOrdering(t, session)
	}
}

func assertBlockOrdering(t *testing.T, session model.WorkoutSession) {
	t.Helper()
	rank := map[model.ExerciseBlock]int{model.BlockWarmup: 0, model.BlockMain: 1, model.BlockCooldown: 2}
	last := 0
	for _, ex := range session.Exercises {
		r := rank[ex.Block]
		if r < last {
			t.Fatalf("session %s: block %s out of order", session.ID, ex.Block)
		}
		last = r
	}
}

func TestGenerate_FreshIDsPerInstance(t *testing.T) {
	p := testProfile()
	p.AvailableDays = 7 // wraps the template, repeating catalog exercises
	plan := testSynthesizer().Generate(p, 1, time.Now())

	seen := map[string]bool{}
	for _, session := range plan.Sessions {
		for _, ex := range session.Exercises {
			require.False(t, seen[ex.ID], "duplicate plan exercise id %s", ex.ID)
			seen[ex.ID] = true
		}
	}
}

func TestGenerate_WeightAssignment(t *testing.T) {
	p := testProfile() // gym, intermediate, male
	plan := testSynthesizer().Generate(p, 1, time.Now())

	weightTables := map[string]map[model.Gender]map[model.FitnessLevel]string{}
	for _, group := range catalog.MuscleGroups() {
		for _, ex := range catalog.ExercisesFor(group) {
			weightTables[ex.ID] = ex.Weights
		}
	}

	for _, session := range plan.Sessions {
		for _, ex := range session.Exercises {
			if ex.Block != model.BlockMain {
				continue
			}
			table := weightTables[ex.CatalogID]
			if table == nil {
				require.Empty(t, ex.AssignedWeight)
				continue
			}
			require.Equal(t, table[model.GenderMale][model.LevelIntermediate], ex.AssignedWeight)
		}
	}
}

func TestGenerate_InjuryFilter(t *testing.T) {
	p := testProfile()
	p.Injuries = "Recovering from a knee injury"
	plan := testSynthesizer().Generate(p, 1, time.Now())

	for _, session := range plan.Sessions {
		for _, ex := range session.Exercises {
			if ex.Block != model.BlockMain {
				continue
			}
			for _, sub := range injuryExclusions["knee"] {
				require.NotContains(t, ex.CatalogID, sub)
			}
		}
	}
}

func TestGenerate_HomeVideoOverride(t *testing.T) {
	p := testProfile()
	p.TrainingLocation = model.LocationMinimalEquipment
	plan := testSynthesizer().Generate(p, 1, time.Now())

	for _, session := range plan.Sessions {
		for _, ex := range session.Exercises {
			if override := catalog.HomeVideoOverride(ex.CatalogID); override != "" {
				require.Equal(t, override, ex.VideoURL)
			}
		}
	}
}

func TestRestNote(t *testing.T) {
	tests := []struct {
		name     string
		dayIndex int
		total    int
		level    model.FitnessLevel
		activity model.ActivityLevel
		wantNote bool
	}{
		{"beginner 6 days index 2", 2, 6, model.LevelBeginner, model.ActivityLight, true},
		{"beginner 6 days index 5", 5, 6, model.LevelBeginner, model.ActivityLight, true},
		{"beginner 6 days index 0", 0, 6, model.LevelBeginner, model.ActivityLight, false},
		{"beginner 5 days index 2", 2, 5, model.LevelBeginner, model.ActivityLight, true},
		{"intermediate 6 days index 3", 3, 6, model.LevelIntermediate, model.ActivityModerate, true},
		{"high activity suppresses notes", 2, 6, model.LevelBeginner, model.ActivityHigh, false},
		{"three day week has no notes", 1, 3, model.LevelBeginner, model.ActivityLight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProfile()
			p.FitnessLevel = tt.level
			p.ActivityLevel = tt.activity
			got := restNote(tt.dayIndex, tt.total, p)
			if (got != "") != tt.wantNote {
				t.Errorf("restNote() = %q, wantNote %v", got, tt.wantNote)
			}
		})
	}
}
