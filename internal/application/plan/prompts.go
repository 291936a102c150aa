// Package plan implements the recommendation pipeline: prompt
// construction, completion parsing and repair, fallback generation, and
// the derived nutrition, grocery, and swap views.
package plan

import (
	"fmt"
	"strings"

	"github.com/wellplate/v1/internal/domain/profile"
	"github.com/wellplate/v1/internal/domain/schedule"
)

// dietFrameworks are the named frameworks the model chooses from.
var dietFrameworks = []string{
	"LCHF (Low Carb High Fat)",
	"Keto (Ketogenic Diet)",
	"Zero Carb",
	"Low Fat",
	"Zero Fat",
	"Mediterranean Diet",
	"Intermittent Fasting",
	"Juice Diet",
	"Plant-Based",
	"Whole30",
	"Paleo",
	"Anti-Inflammatory Diet",
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func joinOrDefault(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}

// BuildDietPrompt renders the diet recommendation prompt for a profile.
// The prompt instructs the model to pick a diet framework from a fixed
// list, suggest only meal types and timing in the schedule, recommend
// therapeutic foods excluding all allergens, and answer in JSON.
func BuildDietPrompt(p *profile.Profile) string {
	var b strings.Builder

	name := orDefault(p.Name, "User")
	age := "Not specified"
	if p.Age > 0 {
		age = fmt.Sprintf("%d", p.Age)
	}
	allergies := joinOrDefault(p.AllAllergies(), "None")

	fmt.Fprintf(&b, `Create a personalized diet plan for a person with the following profile:

Name: %s
Age: %s
Gender: %s
Current Weight: %g kg
Goal Weight: %g kg
Height: %g cm
Days to Achieve Goal: %d days
Goals: %s
Health Conditions: %s
Diet Preference: %s
Food Preferences: %s
Allergies/Dislikes: %s

IMPORTANT INSTRUCTIONS:

1. DIET FRAMEWORK: Recommend a specific diet framework based on their health conditions and goals. Choose from:
`,
		name, age, orDefault(p.Gender, "Not specified"),
		p.CurrentWeightKG, p.GoalWeightKG, p.HeightCM, p.DaysToAchieve,
		joinOrDefault(p.AllGoals(), "General wellness"),
		joinOrDefault(p.AllConditions(), "None"),
		orDefault(p.DietType, "No preference"),
		joinOrDefault(p.AllFoodPreferences(), "None specified"),
		allergies)

	for _, framework := range dietFrameworks {
		fmt.Fprintf(&b, "   - %s\n", framework)
	}

	fmt.Fprintf(&b, `   - Or suggest "Normal diet with modifications" if no specific framework is needed

   Base your recommendation PRIMARILY on their health conditions and goals, not just preferences.

2. MEAL SCHEDULE: Only suggest meal TYPES and TIMING. DO NOT suggest specific foods or dishes here.
   Example: "Breakfast at 8 AM, Mid-morning snack at 10:30 AM, Lunch at 1 PM, Evening snack at 4 PM, Dinner at 7 PM"
   Do NOT say things like "Breakfast: Eggs and toast" - just say "Breakfast"

3. RECOMMENDED FOODS: Focus on HEALING and THERAPEUTIC foods based on their health conditions.
   - Prioritize foods that help manage/improve their specific conditions
   - These should be foods medically beneficial for their conditions
   - CRITICAL: Do NOT recommend ANY items listed in their Allergies/Dislikes section: %s
   - Exclude ALL foods from their Allergies/Dislikes list completely
   - Consider their age and gender for age-appropriate nutritional needs
   - Do NOT just recommend foods they prefer - recommend what's BEST for their health
   - Include at least 8-10 specific food items
   - IMPORTANT: Carefully check each recommended food against the Allergies/Dislikes list before including it

4. FOODS TO AVOID: List foods that are HARMFUL or COUNTERPRODUCTIVE for their health conditions and goals.
   - Base this on their medical conditions and health goals
   - Do NOT base this on their dislikes or preferences
   - Focus on foods that worsen their conditions or hinder goal achievement
   - Include at least 5-7 specific food items

Please provide a JSON response with the following structure:
{
  "dietType": "Specific diet framework name",
  "numberOfMeals": "Number of meals per day with portion control guidance",
  "mealSchedule": "Only meal types and timing - e.g., 'Breakfast (8 AM), Mid-morning snack (10:30 AM), Lunch (1 PM), Evening snack (4 PM), Dinner (7 PM)'",
  "recommendedFoods": ["healing food 1", "healing food 2", "healing food 3", "healing food 4", "healing food 5", "healing food 6", "healing food 7", "healing food 8"],
  "foodsToAvoid": ["harmful food 1", "harmful food 2", "harmful food 3", "harmful food 4", "harmful food 5"],
  "rationale": "Brief explanation of why this diet framework and these specific foods will help their conditions and achieve their goals"
}

Remember: Prioritize HEALTH and HEALING over preferences. Be medically sound and evidence-based.`, allergies)

	return b.String()
}

// BuildMealPlanPrompt renders the meal recommendation prompt. The meal
// types extracted from the current diet recommendation's schedule are
// embedded verbatim as the JSON keys the model must use.
func BuildMealPlanPrompt(p *profile.Profile) string {
	mealSchedule := "Breakfast, Lunch, Dinner"
	dietType := orDefault(p.DietType, "Balanced Diet")
	numberOfMeals := "3 meals + snacks"
	recommendedFoods := "Healthy whole foods"
	foodsToAvoid := "Processed foods"
	if rec := p.Recommendations; rec != nil {
		if rec.MealSchedule != "" {
			mealSchedule = rec.MealSchedule
		}
		if rec.DietType != "" {
			dietType = rec.DietType
		}
		if rec.NumberOfMeals != "" {
			numberOfMeals = rec.NumberOfMeals
		}
		if len(rec.RecommendedFoods) > 0 {
			recommendedFoods = strings.Join(rec.RecommendedFoods, ", ")
		}
		if len(rec.FoodsToAvoid) > 0 {
			foodsToAvoid = strings.Join(rec.FoodsToAvoid, ", ")
		}
	}

	mealTypes := schedule.ExtractMealTypes(mealSchedule)
	allConditions := joinOrDefault(p.AllConditions(), "None")
	allGoals := joinOrDefault(p.AllGoals(), "General wellness")

	var b strings.Builder
	fmt.Fprintf(&b, `Generate a daily meal plan with specific recipe recommendations.

User Profile:
- Goals: %s
- Health Conditions: %s
- Diet Framework: %s
- Number of Meals: %s
- Meal Schedule: %s
- Recommended Healing Foods: %s
- Foods to Avoid: %s
- Allergies/Dislikes: %s
- Food Preferences: %s
- Diet Type: %s

CRITICAL INSTRUCTIONS FOR JSON FORMAT:
- You MUST return COMPLETE and valid JSON
- Ensure ALL brackets and braces are properly closed
- Do NOT truncate the response
- If you run out of space, prioritize completing the JSON structure

MEAL TYPES TO GENERATE (USE THESE EXACT NAMES AS JSON KEYS):
Meal types from schedule: %s
Generate exactly 7 recipe options for EACH of these meal types.
IMPORTANT: Use these EXACT meal type names as your JSON keys (case-sensitive).

RECIPE REQUIREMENTS:
1. Each recipe must:
   - Align with the diet framework (%s)
   - Use THERAPEUTIC foods from the "Recommended Healing Foods" list
   - Help achieve their goals: %s
   - Help manage their conditions: %s
   - Avoid ALL foods in the "Foods to Avoid" list
   - Avoid ALL allergies/dislikes
   - Be practical and easy to prepare
   - Include realistic meal prep time (e.g., "10-15 mins", "20-25 mins", "30-40 mins")
   - Include complete nutrition information

2. INGREDIENTS - BE DETAILED:
   - List 4-6 ingredients (keep concise for token limits)
   - Include EXACT quantities (e.g., "2 large eggs", "150g salmon fillet")
   - Specify types clearly (e.g., "1 cup fresh baby spinach")
   - Detail spices (e.g., "1 tsp ground turmeric", "2 cloves fresh garlic, minced")
   - Mention cooking oils (e.g., "1 tbsp extra virgin olive oil")

3. INSTRUCTIONS - BE DETAILED:
   - Provide 4-5 detailed steps (keep concise for token limits)
   - Include cooking temperatures and times
   - Describe techniques (e.g., "Saute garlic until fragrant, about 30 seconds")
   - Include serving instructions

4. NUTRIENTS - Complete nutritional profile:
   - MUST include: Protein, Carbs, Fat, Fiber
   - MUST include: Vitamin A, Vitamin C, Vitamin D
   - MUST include: Zinc, Magnesium, Iron, Calcium

JSON STRUCTURE (MUST BE COMPLETE - NO TRUNCATION):
{
`,
		allGoals, allConditions, dietType, numberOfMeals, mealSchedule,
		recommendedFoods, foodsToAvoid,
		joinOrDefault(p.AllAllergies(), "None"),
		joinOrDefault(p.AllFoodPreferences(), "No specific preferences"),
		orDefault(p.DietType, "No preference"),
		strings.Join(mealTypes, ", "),
		dietType, allGoals, allConditions)

	for i, mealType := range mealTypes {
		fmt.Fprintf(&b, `  "%s": [
    {
      "name": "Recipe name",
      "calories": 350,
      "prepTime": "15-20 mins",
      "ingredients": ["ingredient 1", "ingredient 2", "..."],
      "nutrients": [
        {"name": "Protein", "value": "20g"},
        {"name": "Carbs", "value": "25g"},
        {"name": "Fat", "value": "18g"},
        {"name": "Fiber", "value": "8g"},
        {"name": "Vitamin A", "value": "150mcg"},
        {"name": "Vitamin C", "value": "12mg"},
        {"name": "Vitamin D", "value": "3mcg"},
        {"name": "Zinc", "value": "2mg"},
        {"name": "Magnesium", "value": "50mg"},
        {"name": "Iron", "value": "3mg"},
        {"name": "Calcium", "value": "80mg"}
      ],
      "instructions": ["step 1", "step 2", "step 3", "step 4"]
    }
  ]`, mealType)
		if i < len(mealTypes)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `}

CRITICAL REQUIREMENTS:
1. Generate EXACTLY 7 recipes per meal type (not more, not less)
2. Keep recipes CONCISE to fit within token limits (3-4 ingredients, 3-4 instructions each)
3. MUST properly close ALL JSON brackets and braces
4. DO NOT truncate - complete the entire JSON structure
5. Use THERAPEUTIC ingredients for: %s
6. Prioritize HEALING foods from recommended list
7. Create variety across all 7 recipes per meal type

FINAL REMINDER: Your response MUST be complete, valid JSON with 7 recipes for EACH meal type. If running out of space, reduce recipe detail slightly but COMPLETE the JSON structure for all meal types: %s`,
		allConditions, strings.Join(mealTypes, ", "))

	return b.String()
}
