// Package nutrition provides local nutrition math: per-ingredient macro
// estimation and daily calorie/macro targets. Everything here is pure and
// never fails — malformed input degrades to fixed defaults.
package nutrition

import (
	"fmt"
	"strings"
)

// Macros is an approximate macro profile for one ingredient.
type Macros struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// estimatorRule pairs a set of keywords with the macro profile returned on
// the first substring match. Rules are evaluated in order; keep them as
// data so the table stays independently testable and extensible.
type estimatorRule struct {
	keywords []string
	macros   Macros
}

var estimatorRules = []estimatorRule{
	{[]string{"egg"}, Macros{Calories: 78, Protein: 6, Carbs: 0.6, Fat: 5, Fiber: 0}},
	{[]string{"chicken"}, Macros{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0}},
	{[]string{"salmon"}, Macros{Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Fiber: 0}},
	{[]string{"rice"}, Macros{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4}},
	{[]string{"quinoa"}, Macros{Calories: 120, Protein: 4.4, Carbs: 21, Fat: 1.9, Fiber: 2.8}},
	{[]string{"avocado"}, Macros{Calories: 160, Protein: 2, Carbs: 9, Fat: 15, Fiber: 7}},
	{[]string{"spinach"}, Macros{Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2}},
	{[]string{"bread", "toast"}, Macros{Calories: 80, Protein: 4, Carbs: 14, Fat: 1, Fiber: 2}},
	{[]string{"pasta"}, Macros{Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1, Fiber: 1.8}},
	{[]string{"oil", "butter"}, Macros{Calories: 120, Protein: 0, Carbs: 0, Fat: 14, Fiber: 0}},
	{[]string{"milk"}, Macros{Calories: 103, Protein: 8, Carbs: 12, Fat: 2.4, Fiber: 0}},
	{[]string{"yogurt"}, Macros{Calories: 100, Protein: 17, Carbs: 6, Fat: 0.7, Fiber: 0}},
	{[]string{"cheese"}, Macros{Calories: 113, Protein: 7, Carbs: 0.9, Fat: 9, Fiber: 0}},
	{[]string{"nut", "almond"}, Macros{Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Fiber: 3.5}},
	{[]string{"berr", "apple", "banana", "fruit", "orange"}, Macros{Calories: 70, Protein: 0.8, Carbs: 18, Fat: 0.3, Fiber: 3}},
	{[]string{"vegetable", "broccoli", "carrot", "pepper", "zucchini", "tomato"}, Macros{Calories: 35, Protein: 1.5, Carbs: 7, Fat: 0.3, Fiber: 2.5}},
}

// defaultMacros is returned for ingredients matching no rule.
var defaultMacros = Macros{Calories: 50, Protein: 2, Carbs: 8, Fat: 1, Fiber: 1}

// EstimateIngredient maps a free-text ingredient line to an approximate
// macro profile by keyword lookup. First matching rule wins.
func EstimateIngredient(ingredient string) Macros {
	lower := strings.ToLower(ingredient)
	for _, rule := range estimatorRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.macros
			}
		}
	}
	return defaultMacros
}

// RecipeEstimate is the summed nutrition for a custom recipe plus a prep
// time derived from its size.
type RecipeEstimate struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	PrepTime string
}

// EstimateRecipe sums per-ingredient estimates and derives prep time
// linearly from ingredient and instruction counts. Recomputed on every
// ingredient-list change by the caller.
func EstimateRecipe(ingredients, instructions []string) RecipeEstimate {
	var est RecipeEstimate
	for _, ing := range ingredients {
		m := EstimateIngredient(ing)
		est.Calories += m.Calories
		est.Protein += m.Protein
		est.Carbs += m.Carbs
		est.Fat += m.Fat
		est.Fiber += m.Fiber
	}

	minutes := 5 + 2*len(ingredients) + 3*len(instructions)
	est.PrepTime = fmt.Sprintf("%d mins", minutes)
	return est
}
