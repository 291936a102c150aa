package swap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellplate/v1/internal/domain/recipe"
)

func testRecipe() *recipe.Recipe {
	return &recipe.Recipe{
		Name:     "Chicken Rice Bowl",
		Calories: 550,
		PrepTime: "25 mins",
		Ingredients: []string{
			"200g chicken breast",
			"1 cup white rice",
			"2 tbsp sour cream",
		},
		Nutrients: []recipe.Nutrient{
			{Name: "Protein", Value: "35g"},
			{Name: "Carbs", Value: "60g"},
			{Name: "Fat", Value: "15g"},
			{Name: "Fiber", Value: "3g"},
		},
		Instructions: []string{
			"Grill the chicken breast until cooked through.",
			"Serve over white rice and top with sour cream.",
		},
	}
}

func TestSuggestForMatchesTable(t *testing.T) {
	suggestions := SuggestFor([]string{"1 cup white rice", "2 tbsp sour cream"})

	require.Len(t, suggestions, 2)
	assert.Contains(t, suggestions[0].Replacement, "brown rice")
	assert.Equal(t, -10, suggestions[0].CalorieDelta)
	assert.Contains(t, suggestions[1].Replacement, "Greek yogurt")
	assert.Equal(t, 6, suggestions[1].ProteinDelta)
}

func TestSuggestForGenericFallback(t *testing.T) {
	suggestions := SuggestFor([]string{"1 dragon fruit"})

	require.Len(t, suggestions, 1)
	assert.Equal(t, "fresh organic 1 dragon fruit", suggestions[0].Replacement)
	assert.Equal(t, 0, suggestions[0].CalorieDelta)
	assert.Equal(t, 1, suggestions[0].FiberDelta)
}

func TestRecalculateAllOffReproducesOriginal(t *testing.T) {
	original := testRecipe()
	suggestions := SuggestFor(original.Ingredients)

	updated := Recalculate(original, suggestions, []bool{false, false, false})

	assert.Equal(t, original, updated)
	assert.NotSame(t, original, updated)
}

func TestRecalculateAppliesDeltas(t *testing.T) {
	original := testRecipe()
	suggestions := SuggestFor(original.Ingredients)

	updated := Recalculate(original, suggestions, []bool{true, true, true})

	// chicken has no table entry (generic, 0 cal), rice -10, sour cream -30.
	assert.Equal(t, 510, updated.Calories)

	protein, ok := updated.Nutrient("Protein")
	require.True(t, ok)
	assert.Equal(t, "42g", protein.Value) // 35 + 0 + 1 + 6

	fiber, ok := updated.Nutrient("Fiber")
	require.True(t, ok)
	assert.Equal(t, "6g", fiber.Value) // 3 + 1 + 2 + 0

	carbs, ok := updated.Nutrient("Carbs")
	require.True(t, ok)
	assert.Equal(t, "56g", carbs.Value) // 60 - floor(-40/-10)

	assert.Equal(t, "31 mins", updated.PrepTime)
	assert.True(t, updated.IsModified)
	assert.Equal(t, "Chicken Rice Bowl", updated.OriginalRecipeName)
}

func TestRecalculateFloors(t *testing.T) {
	original := &recipe.Recipe{
		Name:        "Tiny Snack",
		Calories:    120,
		PrepTime:    "5 mins",
		Ingredients: []string{"1 tbsp honey", "1 cup whole milk"},
		Nutrients: []recipe.Nutrient{
			{Name: "Protein", Value: "5g"},
			{Name: "Fiber", Value: "1g"},
		},
		Instructions: []string{"Stir honey into whole milk."},
	}
	suggestions := SuggestFor(original.Ingredients)

	updated := Recalculate(original, suggestions, []bool{true, true})

	// honey -60, whole milk -80: raw sum would be -20 calories.
	assert.Equal(t, 100, updated.Calories)

	protein, _ := updated.Nutrient("Protein")
	assert.GreaterOrEqual(t, protein.Amount(), 5.0) // milk delta is -4

	fiber, _ := updated.Nutrient("Fiber")
	assert.GreaterOrEqual(t, fiber.Amount(), 1.0)
}

func TestRecalculateRewritesInstructions(t *testing.T) {
	original := testRecipe()
	suggestions := SuggestFor(original.Ingredients)

	updated := Recalculate(original, suggestions, []bool{false, true, true})

	assert.Contains(t, updated.Instructions[1], "brown rice")
	assert.Contains(t, updated.Instructions[1], "Greek yogurt")
	assert.NotContains(t, updated.Instructions[1], "sour cream")
	// untouched ingredient keeps its original instruction text
	assert.Contains(t, updated.Instructions[0], "chicken breast")
}

func TestRecalculateDeterministic(t *testing.T) {
	original := testRecipe()
	suggestions := SuggestFor(original.Ingredients)
	toggles := []bool{true, false, true}

	first := Recalculate(original, suggestions, toggles)
	second := Recalculate(original, suggestions, toggles)

	assert.Equal(t, first, second)
}
