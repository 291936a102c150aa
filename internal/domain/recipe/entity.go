// Package recipe contains the core domain model for recipes and meal plans.
package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

// Nutrient is a named nutrient with a value stored as a string carrying a
// trailing unit suffix, e.g. "20g" or "150mcg". All arithmetic must parse
// the leading number and preserve the unit on write-back.
type Nutrient struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

var leadingNumber = regexp.MustCompile(`^-?\d+(?:\.\d+)?`)

// Amount returns the numeric portion of the nutrient value.
// Unparseable values degrade to zero rather than erroring.
func (n Nutrient) Amount() float64 {
	match := leadingNumber.FindString(strings.TrimSpace(n.Value))
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return v
}

// Unit returns the unit suffix of the nutrient value, e.g. "g" for "20g".
func (n Nutrient) Unit() string {
	trimmed := strings.TrimSpace(n.Value)
	return strings.TrimSpace(leadingNumber.ReplaceAllString(trimmed, ""))
}

// WithAmount returns a copy of the nutrient with a new numeric amount and
// the original unit suffix preserved.
func (n Nutrient) WithAmount(amount float64) Nutrient {
	return Nutrient{
		Name:  n.Name,
		Value: FormatAmount(amount, n.Unit()),
	}
}

// FormatAmount renders a numeric amount with a unit suffix, trimming
// trailing zeros so 20.0 prints as "20g" and 2.5 as "2.5g".
func FormatAmount(amount float64, unit string) string {
	s := strconv.FormatFloat(amount, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + unit
}

// Recipe represents a single meal recommendation. Ingredients are free-text
// lines that may embed quantity, unit and name ("150g chicken breast").
type Recipe struct {
	Name               string     `json:"name"`
	Calories           int        `json:"calories"`
	PrepTime           string     `json:"prepTime"`
	Ingredients        []string   `json:"ingredients"`
	Nutrients          []Nutrient `json:"nutrients"`
	Instructions       []string   `json:"instructions"`
	MealType           string     `json:"mealType,omitempty"`
	IsCustom           bool       `json:"isCustom,omitempty"`
	IsModified         bool       `json:"isModified,omitempty"`
	OriginalRecipeName string     `json:"originalRecipeName,omitempty"`
}

// Nutrient returns the named nutrient and whether it was found.
// Lookup is case-insensitive.
func (r *Recipe) Nutrient(name string) (Nutrient, bool) {
	for _, n := range r.Nutrients {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return Nutrient{}, false
}

// SetNutrient replaces the named nutrient value, appending when absent.
func (r *Recipe) SetNutrient(n Nutrient) {
	for i, existing := range r.Nutrients {
		if strings.EqualFold(existing.Name, n.Name) {
			r.Nutrients[i] = n
			return
		}
	}
	r.Nutrients = append(r.Nutrients, n)
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	out := *r
	out.Ingredients = append([]string(nil), r.Ingredients...)
	out.Nutrients = append([]Nutrient(nil), r.Nutrients...)
	out.Instructions = append([]string(nil), r.Instructions...)
	return &out
}

// DietRecommendation is the structured diet plan returned by the model
// (or the fallback). NumberOfMeals is always overwritten after parsing to
// match the meal types actually present in MealSchedule.
type DietRecommendation struct {
	DietType         string   `json:"dietType"`
	NumberOfMeals    string   `json:"numberOfMeals"`
	MealSchedule     string   `json:"mealSchedule"`
	RecommendedFoods []string `json:"recommendedFoods"`
	FoodsToAvoid     []string `json:"foodsToAvoid"`
	Rationale        string   `json:"rationale"`
}
