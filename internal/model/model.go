/*
Package model holds the domain types shared by the plan engine, the HTTP
layer and the store: the user profile, the generated workout and meal plans,
the nutrition assessment and the grocery list.
*/
package model

import "time"

/* =================================================================================
								Profile enums
=================================================================================*/

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalFatLoss        Goal = "fat_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalGeneralFitness Goal = "general_fitness"
)

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

type TrainingLocation string

const (
	LocationGym              TrainingLocation = "gym"
	LocationHome             TrainingLocation = "home"
	LocationMinimalEquipment TrainingLocation = "minimal_equipment"
)

type ActivityLevel string

const (
	ActivityNone     ActivityLevel = "none"
	ActivityLight    ActivityLevel = "light"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

func (g Goal) IsValid() bool {
	return g == GoalFatLoss || g == GoalMuscleGain || g == GoalGeneralFitness
}

func (l FitnessLevel) IsValid() bool {
	return l == LevelBeginner || l == LevelIntermediate || l == LevelAdvanced
}

func (t TrainingLocation) IsValid() bool {
	return t == LocationGym || t == LocationHome || t == LocationMinimalEquipment
}

func (a ActivityLevel) IsValid() bool {
	return a == ActivityNone || a == ActivityLight || a == ActivityModerate || a == ActivityHigh
}

// Profile is the user's fixed input to both generators. It is owned by the
// persistence layer and passed by value into the engine; the engine never
// mutates it.
type Profile struct {
	UserID           string           `json:"user_id"`
	Age              int              `json:"age"`
	WeightKg         float64          `json:"weight_kg"`
	HeightCm         float64          `json:"height_cm"`
	Gender           Gender           `json:"gender"`
	Goal             Goal             `json:"goal"`
	FitnessLevel     FitnessLevel     `json:"fitness_level"`
	TrainingLocation TrainingLocation `json:"training_location"`
	ActivityLevel    ActivityLevel    `json:"activity_level"`
	AvailableDays    int              `json:"available_days"`   // 2..7
	SessionDuration  int              `json:"session_duration"` // minutes
	Injuries         string           `json:"injuries"`         // free text, substring-matched denylist
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

/* =================================================================================
								Workout side
=================================================================================*/

// ExerciseBlock tags where an exercise sits inside a session. Ordering is
// significant: warmup entries precede all main entries, which precede all
// cooldown entries.
type ExerciseBlock string

const (
	BlockWarmup   ExerciseBlock = "warmup"
	BlockMain     ExerciseBlock = "main"
	BlockCooldown ExerciseBlock = "cooldown"
)

// CatalogExercise is static reference data: one exercise keyed by muscle
// group with equipment tags and an optional per-gender/per-level
// recommended-weight table. An empty Equipment slice means bodyweight only.
type CatalogExercise struct {
	ID          string                                 `json:"id"`
	Name        string                                 `json:"name"`
	NameAr      string                                 `json:"name_ar,omitempty"`
	MuscleGroup string                                 `json:"muscle_group"`
	Equipment   []string                               `json:"equipment,omitempty"`
	Sets        int                                    `json:"sets"`
	RepsLow     int                                    `json:"reps_low"`
	RepsHigh    int                                    `json:"reps_high"`
	RestSeconds int                                    `json:"rest_seconds"`
	Weights     map[Gender]map[FitnessLevel]string     `json:"weights,omitempty"`
	Description string                                 `json:"description,omitempty"`
	VideoURL    string                                 `json:"video_url,omitempty"`
}

// PlanExercise is a CatalogExercise materialized into a session with a fresh
// unique id, a resolved weight and goal-adjusted sets/reps/rest.
type PlanExercise struct {
	ID             string        `json:"id"`
	CatalogID      string        `json:"catalog_id"`
	Name           string        `json:"name"`
	NameAr         string        `json:"name_ar,omitempty"`
	MuscleGroup    string        `json:"muscle_group"`
	Block          ExerciseBlock `json:"block"`
	Sets           int           `json:"sets"`
	RepsLow        int           `json:"reps_low"`
	RepsHigh       int           `json:"reps_high"`
	RestSeconds    int           `json:"rest_seconds"`
	AssignedWeight string        `json:"assigned_weight,omitempty"`
	VideoURL       string        `json:"video_url,omitempty"`
}

// WorkoutSession is one training day. Completed and CompletedExercises are a
// redundant pair kept reconciled by the mutator: Completed is true exactly
// when CompletedExercises covers every exercise id in the session.
type WorkoutSession struct {
	ID                 string          `json:"id"`
	Day                string          `json:"day"`
	Name               string          `json:"name"`
	Exercises          []PlanExercise  `json:"exercises"`
	DurationMinutes    int             `json:"duration_minutes"`
	Completed          bool            `json:"completed"`
	CompletedExercises map[string]bool `json:"completed_exercises"`
	CompletedAt        *time.Time      `json:"completed_at,omitempty"`
	RestNote           string          `json:"rest_note,omitempty"`
}

// WeeklyPlan is a full generated training week, one session per active day.
type WeeklyPlan struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	WeekNumber int              `json:"week_number"`
	StartDate  time.Time        `json:"start_date"`
	EndDate    time.Time        `json:"end_date"` // start + 6 days
	Sessions   []WorkoutSession `json:"sessions"`
	CreatedAt  time.Time        `json:"created_at"`
}

// Session returns the session with the given id, or nil if absent.
func (p *WeeklyPlan) Session(sessionID string) *WorkoutSession {
	for i := range p.Sessions {
		if p.Sessions[i].ID == sessionID {
			return &p.Sessions[i]
		}
	}
	return nil
}

// Clone returns a deep copy sharing no memory with p. Mutating the copy, its
// exercise slices or its completion maps leaves p untouched.
func (p *WeeklyPlan) Clone() *WeeklyPlan {
	if p == nil {
		return nil
	}
	out := *p
	out.Sessions = make([]WorkoutSession, len(p.Sessions))
	for i, s := range p.Sessions {
		out.Sessions[i] = s
		out.Sessions[i].Exercises = append([]PlanExercise(nil), s.Exercises...)
		if s.CompletedExercises != nil {
			done := make(map[string]bool, len(s.CompletedExercises))
			for id, v := range s.CompletedExercises {
				done[id] = v
			}
			out.Sessions[i].CompletedExercises = done
		}
		if s.CompletedAt != nil {
			at := *s.CompletedAt
			out.Sessions[i].CompletedAt = &at
		}
	}
	return &out
}

/* =================================================================================
								Nutrition side
=================================================================================*/

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealStructure governs which slots exist in a day and how many snacks.
type MealStructure string

const (
	StructureOneMealSnacks   MealStructure = "1_meal_snacks"  // lunch + 4 snacks
	StructureTwoMeals        MealStructure = "2_meals"        // lunch + 3 snacks
	StructureThreeMeals      MealStructure = "3_meals"        // B/L/D + 2 snacks
	StructureThreeMealSnacks MealStructure = "3_meals_snacks" // B/L/D + 3 snacks
)

// FFQFrequency is one answer on the 8-item food-frequency questionnaire.
type FFQFrequency string

const (
	FFQDaily  FFQFrequency = "daily"
	FFQOften  FFQFrequency = "3-5_weekly"
	FFQSome   FFQFrequency = "1-2_weekly"
	FFQRarely FFQFrequency = "rarely"
	FFQNever  FFQFrequency = "never"
)

// Frequent reports whether the answer marks the food as a regular part of
// the diet, which is what makes a meal "preferred" during selection.
func (f FFQFrequency) Frequent() bool {
	return f == FFQDaily || f == FFQOften
}

// FFQKeys are the fixed questionnaire items; each key doubles as the
// ingredient keyword it weights during meal selection.
var FFQKeys = []string{"chicken", "meat", "fish", "eggs", "dairy", "legumes", "vegetables", "fruits"}

// NutritionAssessment is the dietary intake produced by onboarding. The
// engine refuses nutrition generation until Completed is set.
type NutritionAssessment struct {
	UserID        string                  `json:"user_id"`
	MealStructure MealStructure           `json:"meal_structure"`
	DietHistory   map[MealType]string     `json:"diet_history,omitempty"` // free text per slot family
	FFQ           map[string]FFQFrequency `json:"ffq"`                    // keyed by FFQKeys
	FavoriteMeals []CatalogMeal           `json:"favorite_meals,omitempty"`
	Completed     bool                    `json:"completed"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// Ingredient is one bilingual ingredient entry on a catalog meal.
type Ingredient struct {
	Name   string `json:"name"`
	NameAr string `json:"name_ar,omitempty"`
}

// CatalogMeal is static reference data: one meal with a macro profile and an
// ingredient list.
type CatalogMeal struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	NameAr      string       `json:"name_ar,omitempty"`
	MealType    MealType     `json:"meal_type"`
	Calories    int          `json:"calories"`
	Protein     float64      `json:"protein"`
	Carbs       float64      `json:"carbs"`
	Fats        float64      `json:"fats"`
	Ingredients []Ingredient `json:"ingredients"`
}

// PlanMeal is a CatalogMeal after calorie/macro rescaling, attached to a day
// with a fresh unique id.
type PlanMeal struct {
	ID          string       `json:"id"`
	CatalogID   string       `json:"catalog_id"`
	Name        string       `json:"name"`
	NameAr      string       `json:"name_ar,omitempty"`
	MealType    MealType     `json:"meal_type"`
	Calories    int          `json:"calories"`
	Protein     float64      `json:"protein"`
	Carbs       float64      `json:"carbs"`
	Fats        float64      `json:"fats"`
	Ingredients []Ingredient `json:"ingredients"`
}

// CompletedMeals mirrors the slot structure of a day; Snacks is a parallel
// index array over DailyMealPlan.Snacks.
type CompletedMeals struct {
	Breakfast bool   `json:"breakfast"`
	Lunch     bool   `json:"lunch"`
	Dinner    bool   `json:"dinner"`
	Snacks    []bool `json:"snacks"`
}

// DailyMealPlan is one day of the meal plan. The Total* fields are always
// recomputed from the present slots, never stored independently.
type DailyMealPlan struct {
	ID            string         `json:"id"`
	Day           string         `json:"day"`
	Date          time.Time      `json:"date"`
	Breakfast     *PlanMeal      `json:"breakfast,omitempty"`
	Lunch         *PlanMeal      `json:"lunch,omitempty"`
	Dinner        *PlanMeal      `json:"dinner,omitempty"`
	Snacks        []PlanMeal     `json:"snacks"`
	TotalCalories int            `json:"total_calories"`
	TotalProtein  float64        `json:"total_protein"`
	TotalCarbs    float64        `json:"total_carbs"`
	TotalFats     float64        `json:"total_fats"`
	Completed     CompletedMeals `json:"completed_meals"`
}

// Meals returns the present non-snack slots followed by the snacks, in slot
// order. Callers must not hold the pointers across a slot mutation.
func (d *DailyMealPlan) Meals() []*PlanMeal {
	var out []*PlanMeal
	if d.Breakfast != nil {
		out = append(out, d.Breakfast)
	}
	if d.Lunch != nil {
		out = append(out, d.Lunch)
	}
	if d.Dinner != nil {
		out = append(out, d.Dinner)
	}
	for i := range d.Snacks {
		out = append(out, &d.Snacks[i])
	}
	return out
}

// WeeklyMealPlan is a full generated nutrition week, 7 days.
type WeeklyMealPlan struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	WeekNumber int             `json:"week_number"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	Days       []DailyMealPlan `json:"days"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Day returns the day with the given id, or nil if absent.
func (p *WeeklyMealPlan) Day(dayID string) *DailyMealPlan {
	for i := range p.Days {
		if p.Days[i].ID == dayID {
			return &p.Days[i]
		}
	}
	return nil
}

// Clone returns a deep copy sharing no memory with p.
func (p *WeeklyMealPlan) Clone() *WeeklyMealPlan {
	if p == nil {
		return nil
	}
	out := *p
	out.Days = make([]DailyMealPlan, len(p.Days))
	for i, d := range p.Days {
		out.Days[i] = d
		out.Days[i].Breakfast = d.Breakfast.clone()
		out.Days[i].Lunch = d.Lunch.clone()
		out.Days[i].Dinner = d.Dinner.clone()
		out.Days[i].Snacks = make([]PlanMeal, len(d.Snacks))
		for j, s := range d.Snacks {
			out.Days[i].Snacks[j] = s
			out.Days[i].Snacks[j].Ingredients = append([]Ingredient(nil), s.Ingredients...)
		}
		out.Days[i].Completed.Snacks = append([]bool(nil), d.Completed.Snacks...)
	}
	return &out
}

func (m *PlanMeal) clone() *PlanMeal {
	if m == nil {
		return nil
	}
	out := *m
	out.Ingredients = append([]Ingredient(nil), m.Ingredients...)
	return &out
}

/* =================================================================================
								Grocery side
=================================================================================*/

type GroceryCategory string

const (
	CategoryProtein   GroceryCategory = "protein"
	CategoryCarbs     GroceryCategory = "carbs"
	CategoryVegFruits GroceryCategory = "vegetables_fruits"
	CategoryDairy     GroceryCategory = "dairy"
	CategorySpices    GroceryCategory = "spices"
	CategoryOther     GroceryCategory = "other"
)

// GroceryItem is one deduplicated ingredient on the shopping list.
type GroceryItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	NameAr   string          `json:"name_ar,omitempty"`
	Quantity string          `json:"quantity"`
	Category GroceryCategory `json:"category"`
	Checked  bool            `json:"checked"`
}

// GroceryList is the categorized shopping list derived from one
// WeeklyMealPlan. It is replaced wholesale on regeneration.
type GroceryList struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Items     []GroceryItem `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
}
