package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/wellplate/v1/internal/domain/recipe"
	"github.com/wellplate/v1/internal/domain/schedule"
)

// ErrNoJSON is returned when the completion text contains no JSON
// object at all. Callers treat it as a signal to fall back rather than
// as a hard failure.
var ErrNoJSON = errors.New("no JSON object in completion")

var (
	codeFence     = regexp.MustCompile("```(?:json)?\n?")
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// extractJSONObject returns the span from the first "{" to the last "}"
// in the text, with markdown code fences stripped first.
func extractJSONObject(content string) (string, error) {
	cleaned := codeFence.ReplaceAllString(content, "")
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}
	return cleaned[start : end+1], nil
}

// repairJSON removes trailing commas before closing brackets, the most
// common structural defect in model output.
func repairJSON(raw string) string {
	return trailingComma.ReplaceAllString(raw, "$1")
}

// ParseDietRecommendation extracts the diet recommendation JSON from a
// completion. After parsing, numberOfMeals is always overwritten to
// "<N> meal(s)" where N is the number of meal types actually extracted
// from the schedule, regardless of what the model declared.
func ParseDietRecommendation(content string) (*recipe.DietRecommendation, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}

	var rec recipe.DietRecommendation
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		if repairErr := json.Unmarshal([]byte(repairJSON(raw)), &rec); repairErr != nil {
			return nil, fmt.Errorf("parse diet recommendation: %w", err)
		}
	}

	if rec.MealSchedule != "" {
		types := schedule.ExtractMealTypes(rec.MealSchedule)
		rec.NumberOfMeals = FormatMealCount(len(types))
	}
	return &rec, nil
}

// FormatMealCount renders a meal count as "<N> meal(s)".
func FormatMealCount(n int) string {
	if n == 1 {
		return "1 meal"
	}
	return fmt.Sprintf("%d meals", n)
}

// ParseMealPlan extracts a meal plan from a completion. Keys are kept in
// document order. The parsed JSON is treated as untrusted: keys whose
// value is not an array of recipe objects are skipped, and recipes
// without a name are dropped. A plan with no usable recipes at all is an
// error so the caller falls back.
func ParseMealPlan(content string) (*recipe.MealPlan, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return nil, err
	}

	if !gjson.Valid(raw) {
		raw = repairJSON(raw)
		if !gjson.Valid(raw) {
			return nil, errors.New("parse meal plan: invalid JSON after repair")
		}
	}

	plan := recipe.NewMealPlan()
	gjson.Parse(raw).ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			return true
		}
		var recipes []*recipe.Recipe
		for _, item := range value.Array() {
			if !item.IsObject() {
				continue
			}
			var r recipe.Recipe
			if err := json.Unmarshal([]byte(item.Raw), &r); err != nil {
				continue
			}
			if r.Name == "" {
				continue
			}
			r.MealType = key.String()
			recipes = append(recipes, &r)
		}
		if len(recipes) > 0 {
			plan.Set(key.String(), recipes)
		}
		return true
	})

	if plan.Len() == 0 {
		return nil, errors.New("parse meal plan: no recipes found")
	}
	return plan, nil
}
