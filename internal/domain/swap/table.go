// Package swap suggests healthier ingredient substitutions for a recipe
// and recomputes its nutrition facts when swaps are toggled on.
package swap

import "strings"

// Suggestion describes a single healthier alternative for an ingredient,
// with the approximate per-recipe nutrition deltas applying it causes.
type Suggestion struct {
	Original     string `json:"original"`
	Replacement  string `json:"replacement"`
	Reason       string `json:"reason"`
	CalorieDelta int    `json:"calorieDelta"`
	ProteinDelta int    `json:"proteinDelta"`
	FiberDelta   int    `json:"fiberDelta"`
}

type substitution struct {
	replacement  string
	reason       string
	calorieDelta int
	proteinDelta int
	fiberDelta   int
}

// substitutions maps a lowercase ingredient keyword to its preferred
// alternative. First matching keyword wins, so more specific entries
// come before family-level ones.
var substitutionOrder = []string{
	"white rice",
	"sour cream",
	"ground beef",
	"bacon",
	"white bread",
	"white pasta",
	"sugar",
	"honey",
	"butter",
	"vegetable oil",
	"mayonnaise",
	"whole milk",
	"heavy cream",
	"cream cheese",
	"cheddar cheese",
	"iceberg lettuce",
	"potato",
	"flour tortilla",
	"croutons",
	"ketchup",
}

var substitutions = map[string]substitution{
	"white rice": {
		replacement:  "brown rice",
		reason:       "More fiber and a lower glycemic index",
		calorieDelta: -10, proteinDelta: 1, fiberDelta: 2,
	},
	"sour cream": {
		replacement:  "Greek yogurt",
		reason:       "More protein with less saturated fat",
		calorieDelta: -30, proteinDelta: 6, fiberDelta: 0,
	},
	"ground beef": {
		replacement:  "ground turkey",
		reason:       "Leaner protein with fewer calories",
		calorieDelta: -50, proteinDelta: 2, fiberDelta: 0,
	},
	"bacon": {
		replacement:  "turkey bacon",
		reason:       "Significantly less fat and fewer calories",
		calorieDelta: -60, proteinDelta: 0, fiberDelta: 0,
	},
	"white bread": {
		replacement:  "whole grain bread",
		reason:       "More fiber and nutrients per slice",
		calorieDelta: -5, proteinDelta: 1, fiberDelta: 2,
	},
	"white pasta": {
		replacement:  "whole wheat pasta",
		reason:       "More fiber keeps you fuller for longer",
		calorieDelta: -10, proteinDelta: 2, fiberDelta: 3,
	},
	"sugar": {
		replacement:  "stevia",
		reason:       "Zero-calorie natural sweetener",
		calorieDelta: -45, proteinDelta: 0, fiberDelta: 0,
	},
	"honey": {
		replacement:  "cinnamon",
		reason:       "Adds sweetness perception without the sugar",
		calorieDelta: -60, proteinDelta: 0, fiberDelta: 0,
	},
	"butter": {
		replacement:  "olive oil",
		reason:       "Heart-healthy unsaturated fats",
		calorieDelta: -15, proteinDelta: 0, fiberDelta: 0,
	},
	"vegetable oil": {
		replacement:  "avocado oil",
		reason:       "Better fat profile at high cooking temperatures",
		calorieDelta: 0, proteinDelta: 0, fiberDelta: 0,
	},
	"mayonnaise": {
		replacement:  "mashed avocado",
		reason:       "Healthy fats plus fiber",
		calorieDelta: -40, proteinDelta: 0, fiberDelta: 2,
	},
	"whole milk": {
		replacement:  "almond milk",
		reason:       "Far fewer calories per cup",
		calorieDelta: -80, proteinDelta: -4, fiberDelta: 0,
	},
	"heavy cream": {
		replacement:  "coconut milk",
		reason:       "Lighter with a similar texture",
		calorieDelta: -70, proteinDelta: 0, fiberDelta: 0,
	},
	"cream cheese": {
		replacement:  "cottage cheese",
		reason:       "More protein, less fat",
		calorieDelta: -40, proteinDelta: 8, fiberDelta: 0,
	},
	"cheddar cheese": {
		replacement:  "reduced-fat cheddar",
		reason:       "Same flavor with less saturated fat",
		calorieDelta: -30, proteinDelta: 0, fiberDelta: 0,
	},
	"iceberg lettuce": {
		replacement:  "baby spinach",
		reason:       "Much denser in vitamins and minerals",
		calorieDelta: 0, proteinDelta: 1, fiberDelta: 1,
	},
	"potato": {
		replacement:  "sweet potato",
		reason:       "More fiber and vitamin A",
		calorieDelta: -10, proteinDelta: 0, fiberDelta: 2,
	},
	"flour tortilla": {
		replacement:  "corn tortilla",
		reason:       "Fewer calories and more whole grain",
		calorieDelta: -40, proteinDelta: 0, fiberDelta: 1,
	},
	"croutons": {
		replacement:  "toasted nuts",
		reason:       "Healthy fats and protein instead of refined carbs",
		calorieDelta: 20, proteinDelta: 3, fiberDelta: 1,
	},
	"ketchup": {
		replacement:  "salsa",
		reason:       "Far less added sugar",
		calorieDelta: -15, proteinDelta: 0, fiberDelta: 1,
	},
}

// SuggestFor returns a substitution suggestion for each ingredient line.
// Ingredients with no table match get a generic fresh/organic upgrade
// so the swap list always covers the full recipe.
func SuggestFor(ingredients []string) []Suggestion {
	out := make([]Suggestion, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, suggest(ing))
	}
	return out
}

func suggest(ingredient string) Suggestion {
	lower := strings.ToLower(ingredient)
	for _, key := range substitutionOrder {
		if strings.Contains(lower, key) {
			sub := substitutions[key]
			return Suggestion{
				Original:     ingredient,
				Replacement:  strings.Replace(lower, key, sub.replacement, 1),
				Reason:       sub.reason,
				CalorieDelta: sub.calorieDelta,
				ProteinDelta: sub.proteinDelta,
				FiberDelta:   sub.fiberDelta,
			}
		}
	}
	return Suggestion{
		Original:    ingredient,
		Replacement: "fresh organic " + lower,
		Reason:      "Fresher produce carries more nutrients",
		FiberDelta:  1,
	}
}
