package recipe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutrientAmount(t *testing.T) {
	tests := []struct {
		value  string
		amount float64
		unit   string
	}{
		{"20g", 20, "g"},
		{"2.5mg", 2.5, "mg"},
		{"150mcg", 150, "mcg"},
		{"0g", 0, "g"},
		{" 18g ", 18, "g"},
		{"garbage", 0, "garbage"},
		{"", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			n := Nutrient{Name: "Protein", Value: tt.value}
			assert.Equal(t, tt.amount, n.Amount())
			assert.Equal(t, tt.unit, n.Unit())
		})
	}
}

func TestNutrientWithAmountPreservesUnit(t *testing.T) {
	n := Nutrient{Name: "Fiber", Value: "8g"}

	updated := n.WithAmount(12)

	assert.Equal(t, "12g", updated.Value)
	assert.Equal(t, "Fiber", updated.Name)
	// original untouched
	assert.Equal(t, "8g", n.Value)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "20g", FormatAmount(20, "g"))
	assert.Equal(t, "2.5mg", FormatAmount(2.5, "mg"))
	assert.Equal(t, "0g", FormatAmount(0, "g"))
}

func TestRecipeSetNutrient(t *testing.T) {
	r := &Recipe{Nutrients: []Nutrient{{Name: "Protein", Value: "20g"}}}

	r.SetNutrient(Nutrient{Name: "protein", Value: "25g"})
	r.SetNutrient(Nutrient{Name: "Fiber", Value: "5g"})

	require.Len(t, r.Nutrients, 2)
	assert.Equal(t, "25g", r.Nutrients[0].Value)
	assert.Equal(t, "Fiber", r.Nutrients[1].Name)
}

func TestRecipeCloneIsDeep(t *testing.T) {
	original := &Recipe{
		Name:        "Veggie Omelet",
		Ingredients: []string{"3 large eggs"},
		Nutrients:   []Nutrient{{Name: "Protein", Value: "24g"}},
	}

	clone := original.Clone()
	clone.Ingredients[0] = "2 large eggs"
	clone.Nutrients[0].Value = "18g"

	assert.Equal(t, "3 large eggs", original.Ingredients[0])
	assert.Equal(t, "24g", original.Nutrients[0].Value)
}

func TestMealPlanPreservesKeyOrder(t *testing.T) {
	plan := NewMealPlan()
	plan.Set("Breakfast", []*Recipe{{Name: "Oatmeal"}})
	plan.Set("Mid-morning snack", []*Recipe{{Name: "Trail Mix"}})
	plan.Set("Lunch", []*Recipe{{Name: "Quinoa Bowl"}})

	assert.Equal(t, []string{"Breakfast", "Mid-morning snack", "Lunch"}, plan.MealTypes())

	data, err := json.Marshal(plan)
	require.NoError(t, err)

	decoded := NewMealPlan()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, plan.MealTypes(), decoded.MealTypes())
	require.Len(t, decoded.Recipes("Lunch"), 1)
	assert.Equal(t, "Quinoa Bowl", decoded.Recipes("Lunch")[0].Name)
}

func TestMealPlanAbsentTypeReturnsNil(t *testing.T) {
	plan := NewMealPlan()
	plan.Set("Breakfast", []*Recipe{{Name: "Oatmeal"}})

	assert.Nil(t, plan.Recipes("Dinner"))
}

func TestMealPlanUnmarshalRejectsInvalidJSON(t *testing.T) {
	plan := NewMealPlan()
	assert.Error(t, json.Unmarshal([]byte(`{"Breakfast": [`), plan))
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), plan))
}
