package catalog

import "Fitforge_V1.0/internal/model"

func ing(name, nameAr string) model.Ingredient {
	return model.Ingredient{Name: name, NameAr: nameAr}
}

var mealsByType = map[model.MealType][]model.CatalogMeal{
	model.MealBreakfast: {
		{ID: "bf-oatmeal-banana", Name: "Oatmeal with Banana and Honey", NameAr: "شوفان بالموز والعسل",
			MealType: model.MealBreakfast, Calories: 380, Protein: 12, Carbs: 68, Fats: 8,
			Ingredients: []model.Ingredient{ing("oats", "شوفان"), ing("banana", "موز"), ing("honey", "عسل"), ing("milk", "حليب")}},
		{ID: "bf-eggs-toast", Name: "Scrambled Eggs with Whole Wheat Toast", NameAr: "بيض مخفوق مع توست أسمر",
			MealType: model.MealBreakfast, Calories: 420, Protein: 24, Carbs: 36, Fats: 20,
			Ingredients: []model.Ingredient{ing("eggs", "بيض"), ing("whole wheat bread", "خبز أسمر"), ing("butter", "زبدة"), ing("tomato", "طماطم")}},
		{ID: "bf-greek-yogurt-bowl", Name: "Greek Yogurt Bowl with Berries", NameAr: "زبادي يوناني بالتوت",
			MealType: model.MealBreakfast, Calories: 340, Protein: 22, Carbs: 42, Fats: 9,
			Ingredients: []model.Ingredient{ing("greek yogurt", "زبادي يوناني"), ing("berries", "توت"), ing("granola", "جرانولا"), ing("honey", "عسل")}},
		{ID: "bf-foul-medames", Name: "Foul Medames with Olive Oil", NameAr: "فول مدمس بزيت الزيتون",
			MealType: model.MealBreakfast, Calories: 390, Protein: 18, Carbs: 52, Fats: 13,
			Ingredients: []model.Ingredient{ing("fava beans", "فول"), ing("olive oil", "زيت زيتون"), ing("pita bread", "خبز بلدي"), ing("cumin", "كمون"), ing("lemon", "ليمون")}},
		{ID: "bf-cheese-omelette", Name: "Cheese and Vegetable Omelette", NameAr: "أومليت بالجبن والخضار",
			MealType: model.MealBreakfast, Calories: 410, Protein: 26, Carbs: 12, Fats: 29,
			Ingredients: []model.Ingredient{ing("eggs", "بيض"), ing("cheese", "جبن"), ing("spinach", "سبانخ"), ing("bell pepper", "فلفل رومي")}},
		{ID: "bf-peanut-butter-toast", Name: "Peanut Butter Banana Toast", NameAr: "توست بزبدة الفول السوداني والموز",
			MealType: model.MealBreakfast, Calories: 430, Protein: 15, Carbs: 50, Fats: 19,
			Ingredients: []model.Ingredient{ing("whole wheat bread", "خبز أسمر"), ing("peanut butter", "زبدة فول سوداني"), ing("banana", "موز")}},
	},
	model.MealLunch: {
		{ID: "ln-grilled-chicken-rice", Name: "Grilled Chicken with Rice", NameAr: "دجاج مشوي مع أرز",
			MealType: model.MealLunch, Calories: 620, Protein: 45, Carbs: 65, Fats: 16,
			Ingredients: []model.Ingredient{ing("chicken breast", "صدر دجاج"), ing("rice", "أرز"), ing("broccoli", "بروكلي"), ing("olive oil", "زيت زيتون"), ing("garlic", "ثوم")}},
		{ID: "ln-beef-pasta", Name: "Beef Bolognese Pasta", NameAr: "مكرونة باللحم المفروم",
			MealType: model.MealLunch, Calories: 680, Protein: 38, Carbs: 72, Fats: 24,
			Ingredients: []model.Ingredient{ing("ground beef", "لحم مفروم"), ing("pasta", "مكرونة"), ing("tomato", "طماطم"), ing("onion", "بصل"), ing("black pepper", "فلفل أسود")}},
		{ID: "ln-salmon-quinoa", Name: "Baked Salmon with Quinoa", NameAr: "سلمون مشوي مع كينوا",
			MealType: model.MealLunch, Calories: 590, Protein: 40, Carbs: 48, Fats: 24,
			Ingredients: []model.Ingredient{ing("salmon", "سلمون"), ing("quinoa", "كينوا"), ing("asparagus", "هليون"), ing("lemon", "ليمون")}},
		{ID: "ln-chicken-shawarma", Name: "Chicken Shawarma Plate", NameAr: "صحن شاورما دجاج",
			MealType: model.MealLunch, Calories: 650, Protein: 42, Carbs: 58, Fats: 25,
			Ingredients: []model.Ingredient{ing("chicken thigh", "فخذ دجاج"), ing("pita bread", "خبز بلدي"), ing("garlic sauce", "ثومية"), ing("pickles", "مخلل"), ing("paprika", "بابريكا")}},
		{ID: "ln-lentil-bowl", Name: "Lentil and Vegetable Bowl", NameAr: "طبق عدس بالخضار",
			MealType: model.MealLunch, Calories: 520, Protein: 24, Carbs: 74, Fats: 12,
			Ingredients: []model.Ingredient{ing("lentils", "عدس"), ing("rice", "أرز"), ing("carrot", "جزر"), ing("onion", "بصل"), ing("cumin", "كمون")}},
		{ID: "ln-tuna-salad", Name: "Tuna Salad with Chickpeas", NameAr: "سلطة تونة بالحمص",
			MealType: model.MealLunch, Calories: 480, Protein: 36, Carbs: 38, Fats: 19,
			Ingredients: []model.Ingredient{ing("tuna", "تونة"), ing("chickpeas", "حمص"), ing("lettuce", "خس"), ing("cucumber", "خيار"), ing("olive oil", "زيت زيتون")}},
	},
	model.MealDinner: {
		{ID: "dn-grilled-fish-vegetables", Name: "Grilled Fish with Roasted Vegetables", NameAr: "سمك مشوي مع خضار",
			MealType: model.MealDinner, Calories: 480, Protein: 38, Carbs: 32, Fats: 21,
			Ingredients: []model.Ingredient{ing("white fish", "سمك أبيض"), ing("zucchini", "كوسة"), ing("carrot", "جزر"), ing("olive oil", "زيت زيتون"), ing("thyme", "زعتر")}},
		{ID: "dn-chicken-sweet-potato", Name: "Chicken Breast with Sweet Potato", NameAr: "صدر دجاج مع بطاطا حلوة",
			MealType: model.MealDinner, Calories: 540, Protein: 44, Carbs: 48, Fats: 17,
			Ingredients: []model.Ingredient{ing("chicken breast", "صدر دجاج"), ing("sweet potato", "بطاطا حلوة"), ing("green beans", "فاصوليا خضراء"), ing("rosemary", "إكليل الجبل")}},
		{ID: "dn-kofta-salad", Name: "Beef Kofta with Green Salad", NameAr: "كفتة لحم مع سلطة خضراء",
			MealType: model.MealDinner, Calories: 560, Protein: 36, Carbs: 28, Fats: 33,
			Ingredients: []model.Ingredient{ing("ground beef", "لحم مفروم"), ing("parsley", "بقدونس"), ing("onion", "بصل"), ing("lettuce", "خس"), ing("tomato", "طماطم")}},
		{ID: "dn-shakshuka", Name: "Shakshuka with Feta", NameAr: "شكشوكة بالجبنة الفيتا",
			MealType: model.MealDinner, Calories: 430, Protein: 22, Carbs: 26, Fats: 27,
			Ingredients: []model.Ingredient{ing("eggs", "بيض"), ing("tomato", "طماطم"), ing("feta cheese", "جبنة فيتا"), ing("bell pepper", "فلفل رومي"), ing("paprika", "بابريكا")}},
		{ID: "dn-vegetable-soup-bread", Name: "Vegetable Soup with Whole Grain Bread", NameAr: "شوربة خضار مع خبز حبوب كاملة",
			MealType: model.MealDinner, Calories: 380, Protein: 14, Carbs: 58, Fats: 10,
			Ingredients: []model.Ingredient{ing("potato", "بطاطس"), ing("carrot", "جزر"), ing("celery", "كرفس"), ing("whole wheat bread", "خبز أسمر"), ing("black pepper", "فلفل أسود")}},
		{ID: "dn-shrimp-stirfry", Name: "Shrimp Stir-Fry with Noodles", NameAr: "روبيان مقلي مع نودلز",
			MealType: model.MealDinner, Calories: 510, Protein: 32, Carbs: 56, Fats: 16,
			Ingredients: []model.Ingredient{ing("shrimp", "روبيان"), ing("noodles", "نودلز"), ing("bell pepper", "فلفل رومي"), ing("soy sauce", "صلصة الصويا"), ing("ginger", "زنجبيل")}},
	},
	model.MealSnack: {
		{ID: "sn-apple-peanut-butter", Name: "Apple with Peanut Butter", NameAr: "تفاح مع زبدة الفول السوداني",
			MealType: model.MealSnack, Calories: 220, Protein: 6, Carbs: 28, Fats: 11,
			Ingredients: []model.Ingredient{ing("apple", "تفاح"), ing("peanut butter", "زبدة فول سوداني")}},
		{ID: "sn-mixed-nuts", Name: "Mixed Nuts", NameAr: "مكسرات مشكلة",
			MealType: model.MealSnack, Calories: 200, Protein: 6, Carbs: 8, Fats: 17,
			Ingredients: []model.Ingredient{ing("almonds", "لوز"), ing("walnuts", "جوز"), ing("cashews", "كاجو")}},
		{ID: "sn-protein-shake", Name: "Protein Shake with Milk", NameAr: "مخفوق البروتين بالحليب",
			MealType: model.MealSnack, Calories: 250, Protein: 28, Carbs: 16, Fats: 7,
			Ingredients: []model.Ingredient{ing("whey protein", "بروتين مصل اللبن"), ing("milk", "حليب"), ing("banana", "موز")}},
		{ID: "sn-yogurt-honey", Name: "Yogurt with Honey and Walnuts", NameAr: "زبادي بالعسل والجوز",
			MealType: model.MealSnack, Calories: 210, Protein: 10, Carbs: 24, Fats: 9,
			Ingredients: []model.Ingredient{ing("yogurt", "زبادي"), ing("honey", "عسل"), ing("walnuts", "جوز")}},
		{ID: "sn-hummus-carrots", Name: "Hummus with Carrot Sticks", NameAr: "حمص مع أصابع الجزر",
			MealType: model.MealSnack, Calories: 180, Protein: 7, Carbs: 22, Fats: 8,
			Ingredients: []model.Ingredient{ing("chickpeas", "حمص"), ing("tahini", "طحينة"), ing("carrot", "جزر"), ing("lemon", "ليمون")}},
		{ID: "sn-boiled-eggs", Name: "Boiled Eggs", NameAr: "بيض مسلوق",
			MealType: model.MealSnack, Calories: 160, Protein: 13, Carbs: 2, Fats: 11,
			Ingredients: []model.Ingredient{ing("eggs", "بيض"), ing("salt", "ملح")}},
		{ID: "sn-dates-almonds", Name: "Dates with Almonds", NameAr: "تمر باللوز",
			MealType: model.MealSnack, Calories: 190, Protein: 4, Carbs: 36, Fats: 5,
			Ingredients: []model.Ingredient{ing("dates", "تمر"), ing("almonds", "لوز")}},
	},
}
