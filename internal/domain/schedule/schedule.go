// Package schedule parses human-readable meal schedules into canonical
// meal-type labels. It is shared by prompt construction and response
// validation, which must agree exactly on segmentation.
package schedule

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMealTypes is returned when a schedule yields no labels at all.
var DefaultMealTypes = []string{"Breakfast", "Lunch", "Dinner"}

var (
	segmentSplit  = regexp.MustCompile(`[,;+]`)
	parenthetical = regexp.MustCompile(`\([^)]*\)`)
	atSuffix      = regexp.MustCompile(`(?i)\bat\b.*`)
	timeToken     = regexp.MustCompile(`(?i)\d+:?\d*\s*(AM|PM)`)
)

// ExtractMealTypes extracts canonical meal-type labels from a schedule
// string such as "Breakfast (8 AM), Mid-morning snack (10:30 AM), Lunch (1 PM)".
// Segments split on comma, semicolon and plus; times and parentheticals are
// stripped; common snack variants are normalized. Duplicates are dropped,
// first-seen order is preserved. An empty result falls back to
// Breakfast/Lunch/Dinner.
func ExtractMealTypes(mealSchedule string) []string {
	var types []string
	seen := make(map[string]bool)

	for _, part := range segmentSplit.Split(mealSchedule, -1) {
		mealType := parenthetical.ReplaceAllString(part, "")
		mealType = atSuffix.ReplaceAllString(mealType, "")
		mealType = timeToken.ReplaceAllString(mealType, "")
		mealType = strings.TrimSpace(mealType)
		if mealType == "" {
			continue
		}

		mealType = capitalize(mealType)
		mealType = normalize(mealType)

		if !seen[mealType] {
			seen[mealType] = true
			types = append(types, mealType)
		}
	}

	if len(types) == 0 {
		out := make([]string, len(DefaultMealTypes))
		copy(out, DefaultMealTypes)
		return out
	}
	return types
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(s[:size]) + strings.ToLower(s[size:])
}

// normalize maps common meal-type variations onto canonical labels.
func normalize(mealType string) string {
	lower := strings.ToLower(mealType)
	switch {
	case strings.Contains(lower, "mid-morning") || strings.Contains(lower, "mid morning"):
		return "Mid-morning snack"
	case strings.Contains(lower, "morning") && strings.Contains(lower, "snack"):
		return "Morning snack"
	case strings.Contains(lower, "evening") && strings.Contains(lower, "snack"):
		return "Evening snack"
	case strings.Contains(lower, "afternoon") && strings.Contains(lower, "snack"):
		return "Afternoon snack"
	case lower == "snack" || lower == "snacks":
		return "Snacks"
	}
	return mealType
}
