package grocery

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/wellplate/v1/internal/domain/recipe"
)

// Item is one aggregated grocery line. Identity is the normalized name,
// with a secondary name+unit key when the same ingredient appears with
// incompatible units — those coexist as separate lines, never merged.
type Item struct {
	Name     string   `json:"name"`
	Quantity string   `json:"quantity"`
	Unit     string   `json:"unit"`
	Recipes  []string `json:"recipes"`
}

// Recipe is the display label for the contributing recipe(s): the single
// recipe name, or "Multiple recipes" when more than one contributed.
func (i Item) Recipe() string {
	if len(i.Recipes) > 1 {
		return "Multiple recipes"
	}
	if len(i.Recipes) == 1 {
		return i.Recipes[0]
	}
	return ""
}

// MarshalJSON serializes the derived display label alongside the raw
// contributor list.
func (i Item) MarshalJSON() ([]byte, error) {
	type plain Item
	return json.Marshal(struct {
		plain
		Recipe string `json:"recipe"`
	}{plain(i), i.Recipe()})
}

// Aggregate regenerates the grocery list from the current saved-recipes
// snapshot. Items keep the insertion order of the first-seen ingredient
// key; quantities with matching units are summed, mismatched units create
// separate entries.
func Aggregate(recipes []*recipe.Recipe) []Item {
	var order []string
	items := make(map[string]*Item)

	for _, r := range recipes {
		for _, line := range r.Ingredients {
			parsed := ParseIngredient(line)
			if parsed.Name == "" {
				continue
			}

			key := strings.ToLower(strings.TrimSpace(parsed.Name))
			existing, ok := items[key]
			if ok && !strings.EqualFold(existing.Unit, parsed.Unit) {
				// Same ingredient, different unit: keep a separate line.
				key = key + "_" + strings.ToLower(parsed.Unit)
				existing, ok = items[key]
			}

			if !ok {
				items[key] = &Item{
					Name:     parsed.Name,
					Quantity: parsed.Quantity,
					Unit:     parsed.Unit,
					Recipes:  []string{r.Name},
				}
				order = append(order, key)
				continue
			}

			existing.Quantity = sumQuantities(existing.Quantity, parsed.Quantity)
			if !containsString(existing.Recipes, r.Name) {
				existing.Recipes = append(existing.Recipes, r.Name)
			}
		}
	}

	out := make([]Item, 0, len(order))
	for _, key := range order {
		out = append(out, *items[key])
	}
	return out
}

// sumQuantities adds two decimal quantity strings, rounding the result to
// one decimal place. Unparseable quantities count as zero.
func sumQuantities(a, b string) string {
	av, _ := strconv.ParseFloat(a, 64)
	bv, _ := strconv.ParseFloat(b, 64)
	return formatQuantity(math.Round((av+bv)*10) / 10)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
