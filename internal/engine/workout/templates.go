package workout

import "Fitforge_V1.0/internal/model"

// WeeklyTemplate maps training days to the muscle groups trained on each.
// A template shorter than the requested day count is cycled with wraparound.
type WeeklyTemplate struct {
	Name string
	Days [][]string
}

var (
	fullBodyTemplate = WeeklyTemplate{
		Name: "full_body",
		Days: [][]string{
			{"chest", "back", "legs"},
			{"shoulders", "arms", "core"},
			{"legs", "chest", "core"},
		},
	}

	upperLowerTemplate = WeeklyTemplate{
		Name: "upper_lower",
		Days: [][]string{
			{"chest", "back", "shoulders"},
			{"legs", "core"},
			{"back", "arms", "shoulders"},
			{"legs", "core"},
		},
	}

	pushPullLegsTemplate = WeeklyTemplate{
		Name: "push_pull_legs",
		Days: [][]string{
			{"chest", "shoulders", "arms"},
			{"back", "arms"},
			{"legs", "core"},
			{"chest", "shoulders", "arms"},
			{"back", "arms"},
			{"legs", "core"},
		},
	}
)

// templateRule is one row of the template decision table, checked in order.
type templateRule struct {
	minDays  int
	maxDays  int
	level    model.FitnessLevel // "" matches any
	activity model.ActivityLevel
	template WeeklyTemplate
}

// templateRules resolves (availableDays, fitnessLevel, activityLevel) to a
// weekly template. Push/pull/legs is reserved for advanced lifters training
// at high activity; everything else at 4+ days runs upper/lower, and 2-3
// days (or anything below) falls back to full-body.
var templateRules = []templateRule{
	{minDays: 5, maxDays: 7, level: model.LevelAdvanced, activity: model.ActivityHigh, template: pushPullLegsTemplate},
	{minDays: 5, maxDays: 7, template: upperLowerTemplate},
	{minDays: 4, maxDays: 4, template: upperLowerTemplate},
	{minDays: 2, maxDays: 3, template: fullBodyTemplate},
}

// selectTemplate picks the weekly template for a profile. Out-of-range day
// counts fall back to full-body.
func selectTemplate(p model.Profile) WeeklyTemplate {
	for _, rule := range templateRules {
		if p.AvailableDays < rule.minDays || p.AvailableDays > rule.maxDays {
			continue
		}
		if rule.level != "" && rule.level != p.FitnessLevel {
			continue
		}
		if rule.activity != "" && rule.activity != p.ActivityLevel {
			continue
		}
		return rule.template
	}
	return fullBodyTemplate
}

// cycleDays expands a template to exactly n day entries, wrapping when n
// exceeds the template length.
func cycleDays(t WeeklyTemplate, n int) [][]string {
	out := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, t.Days[i%len(t.Days)])
	}
	return out
}
