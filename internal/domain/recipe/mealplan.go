package recipe

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// MealPlan maps canonical meal-type labels to recipe lists. Key order
// follows the order meal types appear in the schedule, so the zero map
// type is not enough: keys are tracked separately.
type MealPlan struct {
	keys    []string
	recipes map[string][]*Recipe
}

// NewMealPlan creates an empty meal plan.
func NewMealPlan() *MealPlan {
	return &MealPlan{recipes: make(map[string][]*Recipe)}
}

// MealTypes returns the meal-type keys in insertion order.
func (p *MealPlan) MealTypes() []string {
	return append([]string(nil), p.keys...)
}

// Recipes returns the recipes for a meal type, or nil when the type is
// absent. Callers must treat absent types as "no section", not an error.
func (p *MealPlan) Recipes(mealType string) []*Recipe {
	return p.recipes[mealType]
}

// Set replaces the recipe list for a meal type, registering the key on
// first use.
func (p *MealPlan) Set(mealType string, recipes []*Recipe) {
	if _, exists := p.recipes[mealType]; !exists {
		p.keys = append(p.keys, mealType)
	}
	p.recipes[mealType] = recipes
}

// Len returns the number of meal types in the plan.
func (p *MealPlan) Len() int {
	return len(p.keys)
}

// MarshalJSON encodes the plan as a JSON object with keys in insertion
// order.
func (p *MealPlan) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(p.recipes[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the plan, preserving the key
// order of the document. gjson iterates object members in document order,
// which encoding/json maps cannot do.
func (p *MealPlan) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("meal plan: invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return fmt.Errorf("meal plan: expected JSON object")
	}

	p.keys = nil
	p.recipes = make(map[string][]*Recipe)

	var iterErr error
	root.ForEach(func(key, value gjson.Result) bool {
		var recipes []*Recipe
		if err := json.Unmarshal([]byte(value.Raw), &recipes); err != nil {
			iterErr = fmt.Errorf("meal plan: meal type %q: %w", key.String(), err)
			return false
		}
		p.Set(key.String(), recipes)
		return true
	})
	return iterErr
}
