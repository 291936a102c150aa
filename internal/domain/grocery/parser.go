// Package grocery derives an aggregated grocery list from the free-text
// ingredient lines of saved recipes.
package grocery

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedIngredient is a (quantity, unit, name) triple parsed from one
// free-text ingredient line. Quantity stays a decimal string because the
// stored recipe data is string-typed throughout.
type ParsedIngredient struct {
	Quantity string
	Unit     string
	Name     string
}

var (
	// "150g chicken breast", "30ml olive oil"
	attachedUnit = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s?(g|kg|mg|ml|l|oz|lb|lbs)\b\.?\s+(.+)$`)
	// "2 cups spinach", "1 tbsp olive oil", "3 cloves garlic"
	namedUnit = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s+(cups?|tbsp|tsp|teaspoons?|tablespoons?|slices?|cloves?|pieces?|cans?|scoops?|stalks?|handfuls?|squares?|pinch(?:es)?)\s+(?:of\s+)?(.+)$`)
	// "1/2 avocado", "3/4 cup quinoa" is caught by namedUnit first via fraction? No:
	// fractions are their own pattern and default the unit to "whole".
	fraction = regexp.MustCompile(`^(\d+)/(\d+)\s+(.+)$`)
	// "1 medium apple", "2 large eggs"
	sizeWord = regexp.MustCompile(`^(\d+)\s+(small|medium|large|ripe|whole|fresh)\s+(.+)$`)
)

// ParseIngredient splits one ingredient line into quantity, unit and name.
// Patterns are tried in order and the first match wins; a line matching
// nothing degrades to quantity "1" of unit "item" rather than being
// rejected.
func ParseIngredient(line string) ParsedIngredient {
	trimmed := strings.TrimSpace(line)

	if m := attachedUnit.FindStringSubmatch(trimmed); m != nil {
		return ParsedIngredient{Quantity: m[1], Unit: m[2], Name: cleanName(m[3])}
	}
	if m := namedUnit.FindStringSubmatch(trimmed); m != nil {
		return ParsedIngredient{Quantity: m[1], Unit: strings.ToLower(m[2]), Name: cleanName(m[3])}
	}
	if m := fraction.FindStringSubmatch(trimmed); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		qty := "1"
		if den != 0 {
			qty = formatQuantity(num / den)
		}
		// A fraction followed by a named unit ("1/2 cup flour") keeps it.
		if um := namedUnit.FindStringSubmatch("1 " + m[3]); um != nil {
			return ParsedIngredient{Quantity: qty, Unit: strings.ToLower(um[2]), Name: cleanName(um[3])}
		}
		return ParsedIngredient{Quantity: qty, Unit: "whole", Name: cleanName(m[3])}
	}
	if m := sizeWord.FindStringSubmatch(trimmed); m != nil {
		return ParsedIngredient{Quantity: m[1], Unit: "whole", Name: cleanName(m[3])}
	}

	return ParsedIngredient{Quantity: "1", Unit: "item", Name: trimmed}
}

// cleanName trims descriptors that follow a comma, e.g.
// "chicken breast, sliced" -> "chicken breast".
func cleanName(name string) string {
	if idx := strings.Index(name, ","); idx >= 0 {
		name = name[:idx]
	}
	return strings.TrimSpace(name)
}

// formatQuantity renders a float quantity rounded to one decimal place,
// trimming a trailing ".0".
func formatQuantity(q float64) string {
	s := strconv.FormatFloat(q, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
