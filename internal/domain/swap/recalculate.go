package swap

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/wellplate/v1/internal/domain/recipe"
)

const (
	calorieFloor = 100
	proteinFloor = 5
	fiberFloor   = 1

	// Swapped ingredients often need slightly different handling, so a
	// couple of minutes of prep time are added per applied swap.
	prepMinutesPerSwap = 2
)

var prepMinutes = regexp.MustCompile(`^\d+`)

// Recalculate applies the toggled-on suggestions to a copy of the recipe
// and recomputes its calories, macros, prep time, ingredient list, and
// instructions. The original recipe is never mutated; with every toggle
// off the result matches the original exactly. Toggle indexes beyond the
// suggestion list are ignored.
func Recalculate(original *recipe.Recipe, suggestions []Suggestion, toggles []bool) *recipe.Recipe {
	updated := original.Clone()

	var calorieSum, proteinSum, fiberSum, applied int
	for i, sug := range suggestions {
		if i >= len(toggles) || !toggles[i] || i >= len(updated.Ingredients) {
			continue
		}
		applied++
		calorieSum += sug.CalorieDelta
		proteinSum += sug.ProteinDelta
		fiberSum += sug.FiberDelta

		updated.Ingredients[i] = sug.Replacement
		rewriteInstructions(updated, sug.Original, sug.Replacement)
	}

	if applied == 0 {
		return updated
	}

	updated.Calories = maxInt(calorieFloor, original.Calories+calorieSum)
	adjustNutrient(updated, "Protein", float64(proteinSum), proteinFloor)
	adjustNutrient(updated, "Fiber", float64(fiberSum), fiberFloor)

	// Carbs have no per-swap delta in the table; approximate them from the
	// overall calorie movement at roughly 10 calories per gram shifted.
	carbShift := int(math.Floor(float64(calorieSum) / -10))
	adjustNutrient(updated, "Carbs", float64(-carbShift), 0)

	updated.PrepTime = adjustPrepTime(original.PrepTime, applied)
	updated.IsModified = true
	if updated.OriginalRecipeName == "" {
		updated.OriginalRecipeName = original.Name
	}

	return updated
}

func adjustNutrient(r *recipe.Recipe, name string, delta, floor float64) {
	current, ok := r.Nutrient(name)
	if !ok {
		return
	}
	value := current.Amount() + delta
	if value < floor {
		value = floor
	}
	r.SetNutrient(current.WithAmount(value))
}

// rewriteInstructions keeps the cooking steps textually consistent with
// the swapped ingredient list.
func rewriteInstructions(r *recipe.Recipe, original, replacement string) {
	name := ingredientName(original)
	if name == "" {
		return
	}
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(name))
	if err != nil {
		return
	}
	target := ingredientName(replacement)
	for i, step := range r.Instructions {
		r.Instructions[i] = re.ReplaceAllString(step, target)
	}
}

// ingredientName strips a leading quantity and unit so instruction text
// like "Grill the chicken breast" still matches "200g chicken breast".
func ingredientName(line string) string {
	fields := strings.Fields(line)
	for len(fields) > 0 && looksLikeQuantity(fields[0]) {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

func looksLikeQuantity(token string) bool {
	lower := strings.ToLower(strings.TrimSuffix(token, "."))
	if prepMinutes.MatchString(lower) {
		return true
	}
	switch lower {
	case "cup", "cups", "tbsp", "tsp", "g", "kg", "ml", "l", "oz", "of",
		"slice", "slices", "clove", "cloves", "scoop", "scoops":
		return true
	}
	return false
}

func adjustPrepTime(original string, applied int) string {
	match := prepMinutes.FindString(strings.TrimSpace(original))
	if match == "" {
		return original
	}
	var minutes int
	fmt.Sscanf(match, "%d", &minutes)
	minutes += applied * prepMinutesPerSwap
	return fmt.Sprintf("%d mins", minutes)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
