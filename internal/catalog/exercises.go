package catalog

import "Fitforge_V1.0/internal/model"

// Equipment tags used by the location filter. An exercise with no tags is
// bodyweight only.
const (
	EquipBarbell    = "barbell"
	EquipDumbbells  = "dumbbells"
	EquipMachine    = "machine"
	EquipCable      = "cable"
	EquipBands      = "resistance_bands"
	EquipPullupBar  = "pullup_bar"
	EquipBench      = "bench"
	EquipKettlebell = "kettlebell"
)

var muscleGroupOrder = []string{"chest", "back", "legs", "shoulders", "arms", "core"}

func videoFor(id string) string {
	return "https://videos.fitforge.app/exercises/" + id + ".mp4"
}

// wtable builds a per-gender/per-level recommended-weight table from six
// display strings ordered male beginner/intermediate/advanced then female.
func wtable(mb, mi, ma, fb, fi, fa string) map[model.Gender]map[model.FitnessLevel]string {
	return map[model.Gender]map[model.FitnessLevel]string{
		model.GenderMale: {
			model.LevelBeginner:     mb,
			model.LevelIntermediate: mi,
			model.LevelAdvanced:     ma,
		},
		model.GenderFemale: {
			model.LevelBeginner:     fb,
			model.LevelIntermediate: fi,
			model.LevelAdvanced:     fa,
		},
	}
}

var exercisesByGroup = map[string][]model.CatalogExercise{
	"chest": {
		{ID: "pushup", Name: "Push-Up", NameAr: "تمرين الضغط", MuscleGroup: "chest",
			Sets: 3, RepsLow: 10, RepsHigh: 15, RestSeconds: 60, VideoURL: videoFor("pushup")},
		{ID: "incline-pushup", Name: "Incline Push-Up", NameAr: "تمرين الضغط المائل", MuscleGroup: "chest",
			Sets: 3, RepsLow: 10, RepsHigh: 15, RestSeconds: 60, VideoURL: videoFor("incline-pushup")},
		{ID: "wide-pushup", Name: "Wide-Grip Push-Up", NameAr: "تمرين الضغط الواسع", MuscleGroup: "chest",
			Sets: 3, RepsLow: 8, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("wide-pushup")},
		{ID: "dumbbell-bench-press", Name: "Dumbbell Bench Press", NameAr: "ضغط الصدر بالدمبل", MuscleGroup: "chest",
			Equipment: []string{EquipDumbbells, EquipBench},
			Sets:      3, RepsLow: 8, RepsHigh: 12, RestSeconds: 90, VideoURL: videoFor("dumbbell-bench-press"),
			Weights: wtable("10-14 kg", "16-22 kg", "24-32 kg", "4-6 kg", "8-12 kg", "14-18 kg")},
		{ID: "dumbbell-fly", Name: "Dumbbell Fly", NameAr: "تمرين الفراشة بالدمبل", MuscleGroup: "chest",
			Equipment: []string{EquipDumbbells, EquipBench},
			Sets:      3, RepsLow: 10, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("dumbbell-fly"),
			Weights: wtable("6-8 kg", "10-12 kg", "14-18 kg", "3-4 kg", "5-7 kg", "8-10 kg")},
		{ID: "barbell-bench-press", Name: "Barbell Bench Press", NameAr: "ضغط الصدر بالبار", MuscleGroup: "chest",
			Equipment: []string{EquipBarbell, EquipBench},
			Sets:      4, RepsLow: 6, RepsHigh: 10, RestSeconds: 120, VideoURL: videoFor("barbell-bench-press"),
			Weights: wtable("30-40 kg", "50-70 kg", "80-100 kg", "15-20 kg", "25-35 kg", "40-55 kg")},
		{ID: "cable-crossover", Name: "Cable Crossover", NameAr: "تجميع الكيبل", MuscleGroup: "chest",
			Equipment: []string{EquipCable},
			Sets:      3, RepsLow: 12, RepsHigh: 15, RestSeconds: 60, VideoURL: videoFor("cable-crossover"),
			Weights: wtable("10-15 kg", "15-20 kg", "20-30 kg", "5-8 kg", "10-12 kg", "12-18 kg")},
	},
	"back": {
		{ID: "superman-hold", Name: "Superman Hold", NameAr: "تمرين سوبرمان", MuscleGroup: "back",
			Sets: 3, RepsLow: 10, RepsHigh: 15, RestSeconds: 45, VideoURL: videoFor("superman-hold")},
		{ID: "reverse-snow-angel", Name: "Reverse Snow Angel", NameAr: "الملاك العكسي", MuscleGroup: "back",
			Sets: 3, RepsLow: 10, RepsHigh: 12, RestSeconds: 45, VideoURL: videoFor("reverse-snow-angel")},
		{ID: "doorframe-row", Name: "Doorframe Row", NameAr: "سحب إطار الباب", MuscleGroup: "back",
			Sets: 3, RepsLow: 10, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("doorframe-row")},
		{ID: "pullup", Name: "Pull-Up", NameAr: "العقلة", MuscleGroup: "back",
			Equipment: []string{EquipPullupBar},
			Sets:      3, RepsLow: 5, RepsHigh: 10, RestSeconds: 90, VideoURL: videoFor("pullup")},
		{ID: "band-pull-apart", Name: "Band Pull-Apart", NameAr: "فتح الحزام المطاطي", MuscleGroup: "back",
			Equipment: []string{EquipBands},
			Sets:      3, RepsLow: 12, RepsHigh: 15, RestSeconds: 45, VideoURL: videoFor("band-pull-apart")},
		{ID: "one-arm-dumbbell-row", Name: "One-Arm Dumbbell Row", NameAr: "سحب الدمبل بذراع واحدة", MuscleGroup: "back",
			Equipment: []string{EquipDumbbells, EquipBench},
			Sets:      3, RepsLow: 8, RepsHigh: 12, RestSeconds: 90, VideoURL: videoFor("one-arm-dumbbell-row"),
			Weights: wtable("10-14 kg", "16-22 kg", "24-32 kg", "5-7 kg", "8-12 kg", "14-18 kg")},
		{ID: "barbell-deadlift", Name: "Barbell Deadlift", NameAr: "الرفعة الميتة بالبار", MuscleGroup: "back",
			Equipment: []string{EquipBarbell},
			Sets:      4, RepsLow: 5, RepsHigh: 8, RestSeconds: 150, VideoURL: videoFor("barbell-deadlift"),
			Weights: wtable("40-50 kg", "70-90 kg", "100-140 kg", "25-35 kg", "45-60 kg", "70-90 kg")},
		{ID: "lat-pulldown", Name: "Lat Pulldown", NameAr: "سحب الظهر العلوي", MuscleGroup: "back",
			Equipment: []string{EquipMachine, EquipCable},
			Sets:      3, RepsLow: 8, RepsHigh: 12, RestSeconds: 90, VideoURL: videoFor("lat-pulldown"),
			Weights: wtable("30-40 kg", "45-55 kg", "60-75 kg", "20-25 kg", "30-35 kg", "40-50 kg")},
	},
	"legs": {
		{ID: "bodyweight-squat", Name: "Bodyweight Squat", NameAr: "سكوات بوزن الجسم", MuscleGroup: "legs",
			Sets: 3, RepsLow: 12, RepsHigh: 15, RestSeconds: 60, VideoURL: videoFor("bodyweight-squat")},
		{ID: "forward-lunge", Name: "Forward Lunge", NameAr: "الاندفاع الأمامي", MuscleGroup: "legs",
			Sets: 3, RepsLow: 10, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("forward-lunge")},
		{ID: "glute-bridge", Name: "Glute Bridge", NameAr: "جسر المؤخرة", MuscleGroup: "legs",
			Sets: 3, RepsLow: 12, RepsHigh: 15, RestSeconds: 45, VideoURL: videoFor("glute-bridge")},
		{ID: "calf-raise", Name: "Standing Calf Raise", NameAr: "رفع السمانة واقفاً", MuscleGroup: "legs",
			Sets: 3, RepsLow: 15, RepsHigh: 20, RestSeconds: 45, VideoURL: videoFor("calf-raise")},
		{ID: "goblet-squat", Name: "Goblet Squat", NameAr: "سكوات الكأس", MuscleGroup: "legs",
			Equipment: []string{EquipDumbbells},
			Sets:      3, RepsLow: 10, RepsHigh: 12, RestSeconds: 90, VideoURL: videoFor("goblet-squat"),
			Weights: wtable("10-14 kg", "16-22 kg", "24-32 kg", "6-8 kg", "10-14 kg", "16-20 kg")},
		{ID: "dumbbell-romanian-deadlift", Name: "Dumbbell Romanian Deadlift", NameAr: "الرفعة الرومانية بالدمبل", MuscleGroup: "legs",
			Equipment: []string{EquipDumbbells},
			Sets:      3, RepsLow: 10, RepsHigh: 12, RestSeconds: 90, VideoURL: videoFor("dumbbell-romanian-deadlift"),
			Weights: wtable("12-16 kg", "18-24 kg", "26-34 kg", "8-10 kg", "12-16 kg", "18-24 kg")},
		{ID: "barbell-back-squat", Name: "Barbell Back Squat", NameAr: "سكوات خلفي بالبار", MuscleGroup: "legs",
			Equipment: []string{EquipBarbell},
			Sets:      4, RepsLow: 6, RepsHigh: 10, RestSeconds: 150, VideoURL: videoFor("barbell-back-squat"),
			Weights: wtable("40-50 kg", "60-80 kg", "90-120 kg", "20-30 kg", "40-50 kg", "60-80 kg")},
		{ID: "leg-press", Name: "Leg Press", NameAr: "دفع الأرجل", MuscleGroup: "legs",
			Equipment: []string{EquipMachine},
			Sets:      3, RepsLow: 10, RepsHigh: 12, RestSeconds: 120, VideoURL: videoFor("leg-press"),
			Weights: wtable("60-80 kg", "100-140 kg", "160-220 kg", "40-60 kg", "70-100 kg", "110-150 kg")},
	},
	"shoulders": {
		{ID: "pike-pushup", Name: "Pike Push-Up", NameAr: "ضغط بايك", MuscleGroup: "shoulders",
			Sets: 3, RepsLow: 8, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("pike-pushup")},
		{ID: "wall-handstand-hold", Name: "Wall Handstand Hold", NameAr: "الوقوف على اليدين على الحائط", MuscleGroup: "shoulders",
			Sets: 3, RepsLow: 20, RepsHigh: 40, RestSeconds: 60, VideoURL: videoFor("wall-handstand-hold")},
		{ID: "arm-circles", Name: "Arm Circles", NameAr: "دوائر الذراعين", MuscleGroup: "shoulders",
			Sets: 3, RepsLow: 15, RepsHigh: 20, RestSeconds: 30, VideoURL: videoFor("arm-circles")},
		{ID: "dumbbell-shoulder-press", Name: "Dumbbell Shoulder Press", NameAr: "ضغط الكتف بالدمبل", MuscleGroup: "shoulders",
			Equipment: []string{EquipDumbbells},
			Sets:      3, RepsLow: 8, RepsHigh: 12, RestSeconds: 90, VideoURL: videoFor("dumbbell-shoulder-press"),
			Weights: wtable("6-10 kg", "12-16 kg", "18-24 kg", "3-5 kg", "6-8 kg", "10-14 kg")},
		{ID: "lateral-raise", Name: "Lateral Raise", NameAr: "الرفرفة الجانبية", MuscleGroup: "shoulders",
			Equipment: []string{EquipDumbbells},
			Sets:      3, RepsLow: 12, RepsHigh: 15, RestSeconds: 45, VideoURL: videoFor("lateral-raise"),
			Weights: wtable("4-6 kg", "7-9 kg", "10-14 kg", "2-3 kg", "4-5 kg", "6-8 kg")},
		{ID: "band-face-pull", Name: "Band Face Pull", NameAr: "سحب الوجه بالحزام", MuscleGroup: "shoulders",
			Equipment: []string{EquipBands},
			Sets:      3, RepsLow: 12, RepsHigh: 15, RestSeconds: 45, VideoURL: videoFor("band-face-pull")},
		{ID: "barbell-overhead-press", Name: "Barbell Overhead Press", NameAr: "الضغط العسكري بالبار", MuscleGroup: "shoulders",
			Equipment: []string{EquipBarbell},
			Sets:      4, RepsLow: 6, RepsHigh: 10, RestSeconds: 120, VideoURL: videoFor("barbell-overhead-press"),
			Weights: wtable("20-30 kg", "35-45 kg", "50-65 kg", "12-15 kg", "18-25 kg", "28-38 kg")},
	},
	"arms": {
		{ID: "diamond-pushup", Name: "Diamond Push-Up", NameAr: "تمرين الضغط الماسي", MuscleGroup: "arms",
			Sets: 3, RepsLow: 8, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("diamond-pushup")},
		{ID: "chair-dip", Name: "Chair Dip", NameAr: "تمرين الغطس على الكرسي", MuscleGroup: "arms",
			Sets: 3, RepsLow: 10, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("chair-dip")},
		{ID: "chinup", Name: "Chin-Up", NameAr: "العقلة الضيقة", MuscleGroup: "arms",
			Equipment: []string{EquipPullupBar},
			Sets:      3, RepsLow: 5, RepsHigh: 10, RestSeconds: 90, VideoURL: videoFor("chinup")},
		{ID: "dumbbell-bicep-curl", Name: "Dumbbell Bicep Curl", NameAr: "مرجحة البايسبس بالدمبل", MuscleGroup: "arms",
			Equipment: []string{EquipDumbbells},
			Sets:      3, RepsLow: 10, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("dumbbell-bicep-curl"),
			Weights: wtable("6-8 kg", "10-12 kg", "14-18 kg", "3-4 kg", "5-7 kg", "8-10 kg")},
		{ID: "band-tricep-extension", Name: "Band Tricep Extension", NameAr: "تمديد الترايسبس بالحزام", MuscleGroup: "arms",
			Equipment: []string{EquipBands},
			Sets:      3, RepsLow: 12, RepsHigh: 15, RestSeconds: 45, VideoURL: videoFor("band-tricep-extension")},
		{ID: "cable-tricep-pushdown", Name: "Cable Tricep Pushdown", NameAr: "دفع الترايسبس بالكيبل", MuscleGroup: "arms",
			Equipment: []string{EquipCable},
			Sets:      3, RepsLow: 10, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("cable-tricep-pushdown"),
			Weights: wtable("15-20 kg", "25-30 kg", "35-45 kg", "10-12 kg", "15-20 kg", "22-28 kg")},
		{ID: "barbell-curl", Name: "Barbell Curl", NameAr: "مرجحة البار", MuscleGroup: "arms",
			Equipment: []string{EquipBarbell},
			Sets:      3, RepsLow: 8, RepsHigh: 12, RestSeconds: 60, VideoURL: videoFor("barbell-curl"),
			Weights: wtable("15-20 kg", "25-30 kg", "35-45 kg", "10-12 kg", "15-18 kg", "20-26 kg")},
	},
	"core": {
		{ID: "plank", Name: "Plank", NameAr: "البلانك", MuscleGroup: "core",
			Sets: 3, RepsLow: 30, RepsHigh: 60, RestSeconds: 45, VideoURL: videoFor("plank")},
		{ID: "crunch", Name: "Crunch", NameAr: "تمرين البطن", MuscleGroup: "core",
			Sets: 3, RepsLow: 15, RepsHigh: 20, RestSeconds: 45, VideoURL: videoFor("crunch")},
		{ID: "mountain-climber", Name: "Mountain Climber", NameAr: "متسلق الجبال", MuscleGroup: "core",
			Sets: 3, RepsLow: 20, RepsHigh: 30, RestSeconds: 45, VideoURL: videoFor("mountain-climber")},
		{ID: "leg-raise", Name: "Lying Leg Raise", NameAr: "رفع الأرجل مستلقياً", MuscleGroup: "core",
			Sets: 3, RepsLow: 12, RepsHigh: 15, RestSeconds: 45, VideoURL: videoFor("leg-raise")},
		{ID: "russian-twist", Name: "Russian Twist", NameAr: "الالتفاف الروسي", MuscleGroup: "core",
			Equipment: []string{EquipDumbbells},
			Sets:      3, RepsLow: 20, RepsHigh: 30, RestSeconds: 45, VideoURL: videoFor("russian-twist"),
			Weights: wtable("4-6 kg", "8-10 kg", "12-16 kg", "2-4 kg", "5-7 kg", "8-10 kg")},
		{ID: "hanging-knee-raise", Name: "Hanging Knee Raise", NameAr: "رفع الركبة معلقاً", MuscleGroup: "core",
			Equipment: []string{EquipPullupBar},
			Sets:      3, RepsLow: 10, RepsHigh: 15, RestSeconds: 60, VideoURL: videoFor("hanging-knee-raise")},
		{ID: "cable-woodchopper", Name: "Cable Woodchopper", NameAr: "الحطاب بالكيبل", MuscleGroup: "core",
			Equipment: []string{EquipCable},
			Sets:      3, RepsLow: 12, RepsHigh: 15, RestSeconds: 60, VideoURL: videoFor("cable-woodchopper"),
			Weights: wtable("10-15 kg", "15-20 kg", "25-30 kg", "5-8 kg", "10-12 kg", "15-20 kg")},
	},
}

// Fixed blocks around every session. They bypass the location and injury
// filters and keep their catalog parameters regardless of goal.
var warmupExercises = []model.CatalogExercise{
	{ID: "jumping-jacks", Name: "Jumping Jacks", NameAr: "القفز المفتوح", MuscleGroup: "warmup",
		Sets: 1, RepsLow: 30, RepsHigh: 30, RestSeconds: 30, VideoURL: videoFor("jumping-jacks")},
	{ID: "dynamic-stretching", Name: "Dynamic Stretching", NameAr: "الإطالة الديناميكية", MuscleGroup: "warmup",
		Sets: 1, RepsLow: 1, RepsHigh: 1, RestSeconds: 0, VideoURL: videoFor("dynamic-stretching")},
}

var cooldownExercises = []model.CatalogExercise{
	{ID: "static-stretching", Name: "Static Stretching", NameAr: "الإطالة الثابتة", MuscleGroup: "cooldown",
		Sets: 1, RepsLow: 1, RepsHigh: 1, RestSeconds: 0, VideoURL: videoFor("static-stretching")},
	{ID: "deep-breathing", Name: "Deep Breathing", NameAr: "التنفس العميق", MuscleGroup: "cooldown",
		Sets: 1, RepsLow: 10, RepsHigh: 10, RestSeconds: 0, VideoURL: videoFor("deep-breathing")},
}

// homeVideoOverrides maps gym exercise ids to bodyweight-variant videos used
// when the training location has no gym access.
var homeVideoOverrides = map[string]string{
	"dumbbell-bench-press":   videoFor("pushup-variations"),
	"barbell-bench-press":    videoFor("pushup-variations"),
	"lat-pulldown":           videoFor("towel-row"),
	"barbell-deadlift":       videoFor("hip-hinge-bodyweight"),
	"leg-press":              videoFor("squat-variations"),
	"barbell-back-squat":     videoFor("squat-variations"),
	"barbell-overhead-press": videoFor("pike-pushup-progression"),
	"cable-tricep-pushdown":  videoFor("chair-dip-progression"),
	"barbell-curl":           videoFor("towel-curl"),
	"cable-crossover":        videoFor("wide-pushup"),
	"cable-woodchopper":      videoFor("standing-twist"),
}
