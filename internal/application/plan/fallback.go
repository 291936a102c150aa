package plan

import (
	"strings"

	"github.com/wellplate/v1/internal/domain/recipe"
)

// FallbackDietRecommendation is the deterministic diet plan used when
// the live generation path is disabled or the completion contains no
// JSON. Deliberately three meals, not five.
func FallbackDietRecommendation() *recipe.DietRecommendation {
	return &recipe.DietRecommendation{
		DietType:      "Balanced Diet",
		NumberOfMeals: "3 meals",
		MealSchedule:  "Breakfast (8 AM), Lunch (1 PM), Dinner (7 PM)",
		RecommendedFoods: []string{
			"Lean proteins", "Whole grains", "Fresh vegetables", "Fruits",
			"Nuts", "Legumes", "Healthy fats", "Low-fat dairy",
		},
		FoodsToAvoid: []string{
			"Processed foods", "Added sugar", "Excessive salt", "Trans fats", "Refined carbs",
		},
		Rationale: "A balanced diet with 3 main meals focusing on whole foods, lean proteins, and plenty of vegetables for optimal health and nutrition.",
	}
}

// FallbackMealPlan builds a meal plan from the static catalog for the
// given meal types, in the given order. Meal types with no catalog
// entry reuse the closest snack or main-meal section so every requested
// key is always populated. The dataset is allergy-naive. Output is
// deterministic and recipes are deep-copied so callers can mutate them.
func FallbackMealPlan(mealTypes []string) *recipe.MealPlan {
	if len(mealTypes) == 0 {
		mealTypes = []string{"Breakfast", "Lunch", "Dinner"}
	}

	catalog := fallbackCatalog()
	plan := recipe.NewMealPlan()
	for _, mealType := range mealTypes {
		source, ok := catalog[mealType]
		if !ok {
			source = catalog[nearestCatalogKey(mealType)]
		}
		recipes := make([]*recipe.Recipe, 0, len(source))
		for _, r := range source {
			clone := r.Clone()
			clone.MealType = mealType
			recipes = append(recipes, clone)
		}
		plan.Set(mealType, recipes)
	}
	return plan
}

func nearestCatalogKey(mealType string) string {
	lower := strings.ToLower(mealType)
	switch {
	case strings.Contains(lower, "snack") && strings.Contains(lower, "morning"):
		return "Mid-morning snack"
	case strings.Contains(lower, "snack"):
		return "Afternoon snack"
	case strings.Contains(lower, "breakfast") || strings.Contains(lower, "brunch"):
		return "Breakfast"
	case strings.Contains(lower, "dinner") || strings.Contains(lower, "supper"):
		return "Dinner"
	default:
		return "Lunch"
	}
}

func basicNutrients() []recipe.Nutrient {
	return []recipe.Nutrient{
		{Name: "Protein", Value: "20g"},
		{Name: "Carbs", Value: "25g"},
		{Name: "Fat", Value: "15g"},
		{Name: "Fiber", Value: "5g"},
		{Name: "Vitamin A", Value: "120mcg"},
		{Name: "Vitamin C", Value: "15mg"},
		{Name: "Vitamin D", Value: "3mcg"},
		{Name: "Zinc", Value: "2mg"},
		{Name: "Magnesium", Value: "50mg"},
		{Name: "Iron", Value: "2.5mg"},
		{Name: "Calcium", Value: "80mg"},
	}
}

func fallbackCatalog() map[string][]*recipe.Recipe {
	return map[string][]*recipe.Recipe{
		"Breakfast": {
			{
				Name:     "Poached Eggs on Sprouted Grain Toast",
				Calories: 320,
				PrepTime: "15 mins",
				Ingredients: []string{
					"2 large organic eggs",
					"1 slice sprouted grain ezekiel bread",
					"1 tsp extra virgin olive oil",
					"1/4 tsp sea salt",
					"1/4 tsp freshly ground black pepper",
					"Fresh parsley for garnish",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "20g"},
					{Name: "Carbs", Value: "18g"},
					{Name: "Fat", Value: "15g"},
					{Name: "Fiber", Value: "3g"},
					{Name: "Vitamin A", Value: "120mcg"},
					{Name: "Vitamin C", Value: "5mg"},
					{Name: "Vitamin D", Value: "3mcg"},
					{Name: "Zinc", Value: "2mg"},
					{Name: "Magnesium", Value: "40mg"},
					{Name: "Iron", Value: "2.5mg"},
					{Name: "Calcium", Value: "70mg"},
				},
				Instructions: []string{
					"Bring a pot of water to a gentle simmer (not boiling)",
					"Crack eggs gently into the water and poach for 3-4 minutes until whites are set",
					"While eggs cook, toast the sprouted grain bread until golden brown",
					"Remove eggs with a slotted spoon and drain excess water",
					"Drizzle toast with olive oil, place poached eggs on top",
					"Season with salt and pepper, garnish with fresh parsley and serve immediately",
				},
			},
			{
				Name:     "Avocado Toast with Seeds",
				Calories: 280,
				PrepTime: "10 mins",
				Ingredients: []string{
					"1/2 ripe avocado, mashed",
					"1 slice whole grain bread",
					"1 tbsp pumpkin seeds",
					"1 tsp hemp seeds",
					"1/4 tsp red pepper flakes",
					"Squeeze of fresh lemon juice",
					"Sea salt and black pepper to taste",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "10g"},
					{Name: "Carbs", Value: "24g"},
					{Name: "Fat", Value: "18g"},
					{Name: "Fiber", Value: "10g"},
					{Name: "Vitamin A", Value: "80mcg"},
					{Name: "Vitamin C", Value: "15mg"},
					{Name: "Vitamin D", Value: "1mcg"},
					{Name: "Zinc", Value: "2mg"},
					{Name: "Magnesium", Value: "85mg"},
					{Name: "Iron", Value: "2mg"},
					{Name: "Calcium", Value: "60mg"},
				},
				Instructions: []string{
					"Toast the bread until golden and crispy",
					"In a small bowl, mash avocado with lemon juice, salt, and pepper",
					"Spread mashed avocado generously on toasted bread",
					"Sprinkle pumpkin seeds and hemp seeds evenly on top",
					"Add a pinch of red pepper flakes for a slight kick",
					"Serve immediately while toast is still warm",
				},
			},
			{
				Name:     "Greek Yogurt Parfait",
				Calories: 290,
				PrepTime: "8 mins",
				Ingredients: []string{
					"1 cup plain Greek yogurt",
					"1/2 cup mixed berries (blueberries, strawberries)",
					"2 tbsp chopped walnuts",
					"1 tbsp chia seeds",
					"1 tsp raw honey",
					"1/4 tsp ground cinnamon",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "22g"},
					{Name: "Carbs", Value: "28g"},
					{Name: "Fat", Value: "12g"},
					{Name: "Fiber", Value: "6g"},
					{Name: "Vitamin A", Value: "45mcg"},
					{Name: "Vitamin C", Value: "25mg"},
					{Name: "Vitamin D", Value: "2mcg"},
					{Name: "Zinc", Value: "1.5mg"},
					{Name: "Magnesium", Value: "55mg"},
					{Name: "Iron", Value: "1.8mg"},
					{Name: "Calcium", Value: "280mg"},
				},
				Instructions: []string{
					"Place Greek yogurt in a serving bowl",
					"Wash and pat dry the berries, slice strawberries if using",
					"Layer half the berries on top of yogurt",
					"Sprinkle chia seeds and chopped walnuts over berries",
					"Add remaining berries and drizzle honey on top",
					"Finish with a sprinkle of cinnamon and serve chilled",
				},
			},
			{
				Name:     "Vegetable Omelet",
				Calories: 310,
				PrepTime: "12 mins",
				Ingredients: []string{
					"3 large eggs",
					"1/2 cup baby spinach, chopped",
					"1/4 cup diced bell peppers (red and yellow)",
					"2 tbsp diced onions",
					"1 tbsp olive oil",
					"1/4 tsp turmeric powder",
					"Salt and pepper to taste",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "24g"},
					{Name: "Carbs", Value: "8g"},
					{Name: "Fat", Value: "20g"},
					{Name: "Fiber", Value: "2g"},
					{Name: "Vitamin A", Value: "350mcg"},
					{Name: "Vitamin C", Value: "75mg"},
					{Name: "Vitamin D", Value: "4mcg"},
					{Name: "Zinc", Value: "2.5mg"},
					{Name: "Magnesium", Value: "45mg"},
					{Name: "Iron", Value: "3.5mg"},
					{Name: "Calcium", Value: "120mg"},
				},
				Instructions: []string{
					"Heat olive oil in a non-stick pan over medium heat",
					"Saute onions until translucent, about 2 minutes",
					"Add bell peppers and cook for another 2 minutes",
					"Whisk eggs with turmeric, salt, and pepper in a bowl",
					"Pour eggs into pan, add spinach, cook until edges set (2-3 min)",
					"Fold omelet in half, cook for 1 more minute, and serve hot",
				},
			},
			{
				Name:        "Oatmeal with Berries",
				Calories:    300,
				PrepTime:    "10 mins",
				Ingredients: []string{"1/2 cup rolled oats", "1 cup almond milk", "1/2 cup mixed berries", "1 tbsp chia seeds", "1 tsp honey"},
				Nutrients:   basicNutrients(),
				Instructions: []string{
					"Cook oats in almond milk for 5 minutes",
					"Top with berries, chia seeds, and honey",
					"Serve warm",
				},
			},
			{
				Name:        "Smoothie Bowl",
				Calories:    280,
				PrepTime:    "8 mins",
				Ingredients: []string{"1 frozen banana", "1/2 cup spinach", "1/2 cup berries", "1/2 cup yogurt", "Granola topping"},
				Nutrients:   basicNutrients(),
				Instructions: []string{
					"Blend banana, spinach, berries, and yogurt",
					"Pour into bowl",
					"Top with granola and serve",
				},
			},
			{
				Name:        "Whole Grain Pancakes",
				Calories:    320,
				PrepTime:    "20 mins",
				Ingredients: []string{"1 cup whole wheat flour", "1 egg", "3/4 cup milk", "1 tbsp honey", "Berries for topping"},
				Nutrients:   basicNutrients(),
				Instructions: []string{
					"Mix flour, egg, milk, and honey",
					"Cook on griddle until golden",
					"Top with berries",
				},
			},
		},
		"Mid-morning snack": {
			{
				Name:         "Apple with Almond Butter",
				Calories:     180,
				PrepTime:     "5 mins",
				Ingredients:  []string{"1 medium apple, sliced", "2 tbsp almond butter"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Slice apple", "Serve with almond butter for dipping"},
			},
			{
				Name:         "Greek Yogurt with Honey",
				Calories:     150,
				PrepTime:     "3 mins",
				Ingredients:  []string{"1 cup Greek yogurt", "1 tbsp honey", "Handful of nuts"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Place yogurt in bowl", "Drizzle with honey", "Top with nuts"},
			},
			{
				Name:         "Protein Smoothie",
				Calories:     200,
				PrepTime:     "5 mins",
				Ingredients:  []string{"1 scoop protein powder", "1 banana", "1 cup almond milk", "Ice cubes"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Blend all ingredients until smooth", "Pour into glass and serve"},
			},
			{
				Name:         "Hummus with Veggies",
				Calories:     160,
				PrepTime:     "8 mins",
				Ingredients:  []string{"1/4 cup hummus", "3 medium carrots, cut into sticks", "1 medium cucumber, sliced", "1 bell pepper, cut into strips"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Slice vegetables", "Serve with hummus for dipping"},
			},
			{
				Name:         "Trail Mix",
				Calories:     190,
				PrepTime:     "3 mins",
				Ingredients:  []string{"1/4 cup almonds", "1/4 cup walnuts", "2 tbsp dried cranberries", "2 tbsp dark chocolate chips"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Mix all ingredients in a bowl", "Portion into snack bag"},
			},
			{
				Name:         "Cottage Cheese with Fruit",
				Calories:     170,
				PrepTime:     "5 mins",
				Ingredients:  []string{"1 cup cottage cheese", "1/2 cup pineapple chunks", "Sprinkle of cinnamon"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Place cottage cheese in bowl", "Top with pineapple", "Sprinkle cinnamon"},
			},
			{
				Name:         "Rice Cakes with Avocado",
				Calories:     185,
				PrepTime:     "7 mins",
				Ingredients:  []string{"2 rice cakes", "1/2 avocado, mashed", "4 cherry tomatoes, halved", "Pinch of sea salt"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Spread avocado on rice cakes", "Top with tomato slices", "Season with salt"},
			},
		},
		"Lunch": {
			{
				Name:     "Grilled Chicken Salad Bowl",
				Calories: 380,
				PrepTime: "25 mins",
				Ingredients: []string{
					"150g grilled chicken breast, sliced",
					"1 cup baby spinach",
					"1 cup romaine lettuce, chopped",
					"1/2 cup cherry tomatoes, halved",
					"1/4 medium cucumber, sliced",
					"2 tbsp balsamic vinaigrette",
					"1 tbsp pumpkin seeds",
					"2 tbsp fresh basil, chopped",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "35g"},
					{Name: "Carbs", Value: "12g"},
					{Name: "Fat", Value: "18g"},
					{Name: "Fiber", Value: "4g"},
					{Name: "Vitamin A", Value: "450mcg"},
					{Name: "Vitamin C", Value: "45mg"},
					{Name: "Vitamin D", Value: "1mcg"},
					{Name: "Zinc", Value: "2mg"},
					{Name: "Magnesium", Value: "65mg"},
					{Name: "Iron", Value: "2.8mg"},
					{Name: "Calcium", Value: "95mg"},
				},
				Instructions: []string{
					"Season chicken breast with salt, pepper, and herbs",
					"Grill chicken on medium-high heat for 5-6 minutes per side",
					"Let chicken rest for 5 minutes, then slice into strips",
					"Arrange spinach and romaine lettuce in a large bowl",
					"Top with cherry tomatoes, cucumber, and sliced chicken",
					"Drizzle with balsamic vinaigrette, sprinkle pumpkin seeds and serve",
				},
			},
			{
				Name:     "Quinoa Buddha Bowl",
				Calories: 420,
				PrepTime: "30 mins",
				Ingredients: []string{
					"3/4 cup cooked quinoa",
					"1/2 cup roasted chickpeas",
					"1 cup steamed broccoli florets",
					"1/2 avocado, sliced",
					"2 tbsp tahini dressing",
					"1 tbsp sesame seeds",
					"Pinch of sea salt",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "18g"},
					{Name: "Carbs", Value: "52g"},
					{Name: "Fat", Value: "22g"},
					{Name: "Fiber", Value: "14g"},
					{Name: "Vitamin A", Value: "180mcg"},
					{Name: "Vitamin C", Value: "95mg"},
					{Name: "Vitamin D", Value: "0mcg"},
					{Name: "Zinc", Value: "3mg"},
					{Name: "Magnesium", Value: "155mg"},
					{Name: "Iron", Value: "5.5mg"},
					{Name: "Calcium", Value: "145mg"},
				},
				Instructions: []string{
					"Cook quinoa according to package directions, fluff with fork",
					"Drain and rinse chickpeas, toss with olive oil and spices",
					"Roast chickpeas at 400F for 20-25 minutes until crispy",
					"Steam broccoli until tender but still bright green, about 5 minutes",
					"Arrange quinoa in a bowl, top with broccoli, chickpeas, and avocado",
					"Drizzle tahini dressing, sprinkle sesame seeds and serve warm",
				},
			},
			{
				Name:     "Salmon with Steamed Vegetables",
				Calories: 410,
				PrepTime: "25 mins",
				Ingredients: []string{
					"150g wild-caught salmon fillet",
					"1/2 cup diced carrots",
					"1/2 cup diced zucchini",
					"1/3 cup diced bell peppers",
					"1 tbsp olive oil",
					"1 tsp fresh dill",
					"1 clove garlic, minced",
					"Lemon wedges",
					"Salt and pepper to taste",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "32g"},
					{Name: "Carbs", Value: "15g"},
					{Name: "Fat", Value: "25g"},
					{Name: "Fiber", Value: "5g"},
					{Name: "Vitamin A", Value: "520mcg"},
					{Name: "Vitamin C", Value: "65mg"},
					{Name: "Vitamin D", Value: "15mcg"},
					{Name: "Zinc", Value: "1.5mg"},
					{Name: "Magnesium", Value: "75mg"},
					{Name: "Iron", Value: "2.2mg"},
					{Name: "Calcium", Value: "85mg"},
				},
				Instructions: []string{
					"Preheat oven to 400F and line baking sheet with parchment",
					"Rub salmon with olive oil, minced garlic, salt, and pepper",
					"Bake salmon for 12-15 minutes until it flakes easily",
					"Meanwhile, steam vegetables until tender-crisp, about 6-8 minutes",
					"Remove salmon from oven and sprinkle fresh dill on top",
					"Serve salmon with steamed vegetables and lemon wedges",
				},
			},
			{
				Name:     "Lentil and Vegetable Soup",
				Calories: 340,
				PrepTime: "35 mins",
				Ingredients: []string{
					"1 cup cooked green lentils",
					"2 cups vegetable broth",
					"1/2 cup diced carrots",
					"1/2 cup diced celery",
					"1/4 cup diced onions",
					"2 cloves garlic, minced",
					"1 tsp cumin powder",
					"Fresh cilantro for garnish",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "20g"},
					{Name: "Carbs", Value: "48g"},
					{Name: "Fat", Value: "4g"},
					{Name: "Fiber", Value: "18g"},
					{Name: "Vitamin A", Value: "380mcg"},
					{Name: "Vitamin C", Value: "28mg"},
					{Name: "Vitamin D", Value: "0mcg"},
					{Name: "Zinc", Value: "3.5mg"},
					{Name: "Magnesium", Value: "95mg"},
					{Name: "Iron", Value: "6.5mg"},
					{Name: "Calcium", Value: "75mg"},
				},
				Instructions: []string{
					"Heat olive oil in a large pot over medium heat",
					"Saute onions, carrots, and celery until softened, about 5 minutes",
					"Add minced garlic and cumin, cook for 1 minute until fragrant",
					"Pour in vegetable broth and bring to a boil",
					"Add cooked lentils, reduce heat and simmer for 15 minutes",
					"Season with salt and pepper, garnish with cilantro and serve hot",
				},
			},
			{
				Name:         "Turkey Wrap",
				Calories:     350,
				PrepTime:     "10 mins",
				Ingredients:  []string{"Whole wheat tortilla", "100g sliced turkey", "Lettuce", "Tomato", "Avocado", "Mustard"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Layer turkey, lettuce, tomato, and avocado on tortilla", "Spread mustard", "Roll up and serve"},
			},
			{
				Name:         "Tuna Salad",
				Calories:     320,
				PrepTime:     "12 mins",
				Ingredients:  []string{"1 can tuna", "Mixed greens", "Cherry tomatoes", "Cucumber", "Olive oil", "Lemon juice"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Drain tuna", "Mix with greens, tomatoes, and cucumber", "Dress with olive oil and lemon"},
			},
			{
				Name:         "Veggie Burger Bowl",
				Calories:     380,
				PrepTime:     "20 mins",
				Ingredients:  []string{"1 veggie burger patty", "Quinoa", "Roasted vegetables", "Tahini sauce"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Cook veggie burger as directed", "Serve over quinoa with roasted vegetables", "Drizzle with tahini"},
			},
		},
		"Afternoon snack": {
			{
				Name:         "Protein Bar",
				Calories:     200,
				PrepTime:     "2 mins",
				Ingredients:  []string{"1 homemade or store-bought protein bar", "Piece of fruit"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Enjoy protein bar with fruit"},
			},
			{
				Name:         "Edamame",
				Calories:     150,
				PrepTime:     "8 mins",
				Ingredients:  []string{"1 cup steamed edamame", "Sea salt"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Steam edamame for 5 minutes", "Sprinkle with sea salt"},
			},
			{
				Name:         "Dark Chocolate and Almonds",
				Calories:     180,
				PrepTime:     "2 mins",
				Ingredients:  []string{"10 almonds", "2 squares dark chocolate (70% cacao)"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Enjoy almonds with dark chocolate"},
			},
			{
				Name:         "Veggie Sticks with Guacamole",
				Calories:     160,
				PrepTime:     "10 mins",
				Ingredients:  []string{"2 medium carrots, cut into sticks", "2 celery stalks, cut into sticks", "1/4 cup guacamole"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Cut vegetables into sticks", "Serve with guacamole"},
			},
			{
				Name:         "Boiled Eggs",
				Calories:     140,
				PrepTime:     "12 mins",
				Ingredients:  []string{"2 hard-boiled eggs", "Pinch of paprika"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Boil eggs for 10 minutes", "Peel and season with paprika"},
			},
			{
				Name:         "Fruit and Nut Mix",
				Calories:     170,
				PrepTime:     "5 mins",
				Ingredients:  []string{"1/2 apple, sliced", "10 cashews", "5 dried apricots"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Slice apple", "Mix with nuts and dried fruit"},
			},
			{
				Name:         "Cheese and Crackers",
				Calories:     180,
				PrepTime:     "4 mins",
				Ingredients:  []string{"4 whole grain crackers", "2 oz cheddar cheese slices", "1/2 cup red grapes"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Arrange crackers with cheese", "Serve with grapes"},
			},
		},
		"Dinner": {
			{
				Name:     "Grilled Fish with Roasted Vegetables",
				Calories: 390,
				PrepTime: "30 mins",
				Ingredients: []string{
					"180g white fish fillet (cod or tilapia)",
					"1/2 cup zucchini, diced",
					"1/2 cup bell peppers (red and yellow), diced",
					"1/4 cup red onion, sliced",
					"2 tbsp olive oil",
					"1 tsp paprika",
					"1 tsp garlic powder",
					"1 tbsp fresh lemon juice",
					"2 tbsp fresh parsley, chopped",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "38g"},
					{Name: "Carbs", Value: "18g"},
					{Name: "Fat", Value: "18g"},
					{Name: "Fiber", Value: "6g"},
					{Name: "Vitamin A", Value: "420mcg"},
					{Name: "Vitamin C", Value: "85mg"},
					{Name: "Vitamin D", Value: "8mcg"},
					{Name: "Zinc", Value: "1.8mg"},
					{Name: "Magnesium", Value: "70mg"},
					{Name: "Iron", Value: "1.5mg"},
					{Name: "Calcium", Value: "90mg"},
				},
				Instructions: []string{
					"Preheat oven to 425F and line baking sheet with foil",
					"Toss vegetables with 1 tbsp olive oil, salt, and pepper",
					"Roast vegetables for 15 minutes until slightly charred",
					"Season fish with paprika, garlic powder, salt, and remaining oil",
					"Grill or pan-sear fish for 4-5 minutes per side until opaque",
					"Squeeze fresh lemon juice over fish, garnish with parsley and serve with vegetables",
				},
			},
			{
				Name:     "Chicken Stir-Fry with Brown Rice",
				Calories: 445,
				PrepTime: "25 mins",
				Ingredients: []string{
					"150g chicken breast, cut into strips",
					"3/4 cup cooked brown rice",
					"1/2 cup broccoli florets",
					"1/3 cup sliced carrots",
					"1/4 cup snap peas",
					"2 tbsp low-sodium soy sauce",
					"1 tbsp sesame oil",
					"2 cloves garlic, minced",
					"1 tsp fresh ginger, grated",
					"1 tbsp sesame seeds",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "36g"},
					{Name: "Carbs", Value: "42g"},
					{Name: "Fat", Value: "16g"},
					{Name: "Fiber", Value: "5g"},
					{Name: "Vitamin A", Value: "280mcg"},
					{Name: "Vitamin C", Value: "55mg"},
					{Name: "Vitamin D", Value: "1mcg"},
					{Name: "Zinc", Value: "2.5mg"},
					{Name: "Magnesium", Value: "85mg"},
					{Name: "Iron", Value: "2.8mg"},
					{Name: "Calcium", Value: "110mg"},
				},
				Instructions: []string{
					"Heat sesame oil in a wok or large skillet over high heat",
					"Add chicken strips and stir-fry for 5-6 minutes until cooked through",
					"Remove chicken and set aside, keep pan hot",
					"Add garlic and ginger, stir for 30 seconds until aromatic",
					"Toss in vegetables, stir-fry for 3-4 minutes until tender-crisp",
					"Return chicken to pan, add soy sauce, toss well, serve over brown rice with sesame seeds",
				},
			},
			{
				Name:     "Turkey Meatballs with Zucchini Noodles",
				Calories: 370,
				PrepTime: "35 mins",
				Ingredients: []string{
					"150g ground turkey",
					"2 medium zucchinis, spiralized",
					"1/4 cup breadcrumbs",
					"1 egg",
					"2 cloves garlic, minced",
					"1 cup marinara sauce (sugar-free)",
					"Italian herbs (basil, oregano)",
					"Parmesan cheese for garnish",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "34g"},
					{Name: "Carbs", Value: "22g"},
					{Name: "Fat", Value: "18g"},
					{Name: "Fiber", Value: "6g"},
					{Name: "Vitamin A", Value: "380mcg"},
					{Name: "Vitamin C", Value: "45mg"},
					{Name: "Vitamin D", Value: "2mcg"},
					{Name: "Zinc", Value: "3mg"},
					{Name: "Magnesium", Value: "65mg"},
					{Name: "Iron", Value: "3.2mg"},
					{Name: "Calcium", Value: "155mg"},
				},
				Instructions: []string{
					"In a bowl, mix ground turkey, breadcrumbs, egg, garlic, and herbs",
					"Form mixture into 8-10 meatballs and place on baking sheet",
					"Bake at 400F for 20-25 minutes until cooked through",
					"Heat marinara sauce in a pan over medium heat",
					"Spiralize zucchini and lightly saute for 2-3 minutes until just tender",
					"Serve meatballs over zucchini noodles, top with marinara and parmesan",
				},
			},
			{
				Name:     "Vegetable Curry with Chickpeas",
				Calories: 400,
				PrepTime: "30 mins",
				Ingredients: []string{
					"1 cup cooked chickpeas",
					"1/2 cup cauliflower florets",
					"1/3 cup diced carrots",
					"1/4 cup green peas",
					"1/2 cup coconut milk (light)",
					"1 tbsp curry powder",
					"1 tsp turmeric",
					"2 cloves garlic, minced",
					"1 tsp grated ginger",
					"2 tbsp fresh cilantro, chopped",
				},
				Nutrients: []recipe.Nutrient{
					{Name: "Protein", Value: "16g"},
					{Name: "Carbs", Value: "54g"},
					{Name: "Fat", Value: "14g"},
					{Name: "Fiber", Value: "14g"},
					{Name: "Vitamin A", Value: "480mcg"},
					{Name: "Vitamin C", Value: "65mg"},
					{Name: "Vitamin D", Value: "0mcg"},
					{Name: "Zinc", Value: "2.8mg"},
					{Name: "Magnesium", Value: "105mg"},
					{Name: "Iron", Value: "5.5mg"},
					{Name: "Calcium", Value: "125mg"},
				},
				Instructions: []string{
					"Heat oil in a large pan over medium heat",
					"Saute garlic and ginger until fragrant, about 1 minute",
					"Add curry powder and turmeric, toast spices for 30 seconds",
					"Add mixed vegetables and stir to coat with spices",
					"Pour in coconut milk and add chickpeas, bring to simmer",
					"Cook for 15-20 minutes until vegetables are tender, garnish with cilantro and serve",
				},
			},
			{
				Name:         "Baked Chicken with Sweet Potato",
				Calories:     420,
				PrepTime:     "35 mins",
				Ingredients:  []string{"150g chicken breast", "1 medium sweet potato", "Olive oil", "Rosemary", "Garlic"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Season chicken with rosemary and garlic", "Bake at 400F for 25 minutes", "Serve with baked sweet potato"},
			},
			{
				Name:         "Shrimp Tacos",
				Calories:     390,
				PrepTime:     "20 mins",
				Ingredients:  []string{"150g shrimp", "2 corn tortillas", "Cabbage slaw", "Avocado", "Lime", "Cilantro"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Saute shrimp with spices", "Warm tortillas", "Fill with shrimp, slaw, and avocado"},
			},
			{
				Name:         "Beef and Broccoli Stir-Fry",
				Calories:     410,
				PrepTime:     "22 mins",
				Ingredients:  []string{"150g lean beef", "2 cups broccoli", "Soy sauce", "Garlic", "Ginger", "Sesame oil"},
				Nutrients:    basicNutrients(),
				Instructions: []string{"Stir-fry beef until browned", "Add broccoli, garlic, and ginger", "Season with soy sauce and sesame oil"},
			},
		},
	}
}
