package workout

import (
	"strings"

	"Fitforge_V1.0/internal/catalog"
	"Fitforge_V1.0/internal/model"
)

// minimalEquipment is what a minimal_equipment location is assumed to own.
var minimalEquipment = map[string]bool{
	catalog.EquipDumbbells: true,
	catalog.EquipBands:     true,
	catalog.EquipPullupBar: true,
}

// injuryExclusions maps a keyword found in the free-text injuries field to
// exercise-id substrings that are excluded from the pool. The substring
// heuristic is intentionally broad (e.g. "lunge" catches every lunge
// variant) and is kept bug-compatible with the plans already in the field.
var injuryExclusions = map[string][]string{
	"knee":     {"squat", "lunge", "jump", "leg-press"},
	"shoulder": {"press", "raise", "handstand", "pushup"},
	"back":     {"deadlift", "row", "superman"},
	"wrist":    {"pushup", "plank", "handstand"},
	"ankle":    {"jump", "calf", "lunge"},
}

// allowedByLocation reports whether an exercise's equipment is available at
// the profile's training location.
func allowedByLocation(ex model.CatalogExercise, loc model.TrainingLocation) bool {
	switch loc {
	case model.LocationHome:
		return len(ex.Equipment) == 0
	case model.LocationMinimalEquipment:
		for _, eq := range ex.Equipment {
			if !minimalEquipment[eq] {
				return false
			}
		}
		return true
	default: // gym
		return true
	}
}

// excludedByInjury reports whether the exercise id matches any exclusion
// substring derived from the profile's free-text injuries.
func excludedByInjury(ex model.CatalogExercise, injuries string) bool {
	if injuries == "" {
		return false
	}
	text := strings.ToLower(injuries)
	for keyword, substrings := range injuryExclusions {
		if !strings.Contains(text, keyword) {
			continue
		}
		for _, sub := range substrings {
			if strings.Contains(ex.ID, sub) {
				return true
			}
		}
	}
	return false
}

// filterPool applies the location then injury filters to one muscle group's
// catalog pool. The result may be empty; the caller degrades gracefully.
func filterPool(pool []model.CatalogExercise, p model.Profile) []model.CatalogExercise {
	out := make([]model.CatalogExercise, 0, len(pool))
	for _, ex := range pool {
		if !allowedByLocation(ex, p.TrainingLocation) {
			continue
		}
		if excludedByInjury(ex, p.Injuries) {
			continue
		}
		out = append(out, ex)
	}
	return out
}
