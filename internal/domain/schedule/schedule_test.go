package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMealTypes(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		expected []string
	}{
		{
			name:     "ScheduleWithParenthesizedTimes",
			schedule: "Breakfast (8 AM), Mid-morning snack (10:30 AM), Lunch (1 PM)",
			expected: []string{"Breakfast", "Mid-morning snack", "Lunch"},
		},
		{
			name:     "AtTimePhrases",
			schedule: "Breakfast at 8 AM, Lunch at 1 PM, Dinner at 7 PM",
			expected: []string{"Breakfast", "Lunch", "Dinner"},
		},
		{
			name:     "BareTimeTokens",
			schedule: "Breakfast 8AM; Lunch 1 PM; Dinner 7:30 PM",
			expected: []string{"Breakfast", "Lunch", "Dinner"},
		},
		{
			name:     "PlusSeparator",
			schedule: "Breakfast + Lunch + Dinner",
			expected: []string{"Breakfast", "Lunch", "Dinner"},
		},
		{
			name:     "MidMorningWithoutHyphen",
			schedule: "Breakfast, mid morning snack, Lunch",
			expected: []string{"Breakfast", "Mid-morning snack", "Lunch"},
		},
		{
			name:     "SnackVariants",
			schedule: "morning snack, afternoon snack, evening snack, snacks",
			expected: []string{"Morning snack", "Afternoon snack", "Evening snack", "Snacks"},
		},
		{
			name:     "MixedCaseNormalized",
			schedule: "BREAKFAST (8 AM), lunch (1 PM)",
			expected: []string{"Breakfast", "Lunch"},
		},
		{
			name:     "DuplicatesDropped",
			schedule: "Breakfast (8 AM), Breakfast (9 AM), Lunch (1 PM)",
			expected: []string{"Breakfast", "Lunch"},
		},
		{
			name:     "MultiByteFirstRune",
			schedule: "éarly breakfast (6 AM), Lunch (1 PM)",
			expected: []string{"Éarly breakfast", "Lunch"},
		},
		{
			name:     "EmptyScheduleFallsBack",
			schedule: "",
			expected: []string{"Breakfast", "Lunch", "Dinner"},
		},
		{
			name:     "OnlyTimesFallsBack",
			schedule: "8 AM, 1 PM, 7 PM",
			expected: []string{"Breakfast", "Lunch", "Dinner"},
		},
		{
			name:     "FiveSlotSchedule",
			schedule: "Breakfast (8 AM), Mid-morning snack (10:30 AM), Lunch (1 PM), Evening snack (4 PM), Dinner (7 PM)",
			expected: []string{"Breakfast", "Mid-morning snack", "Lunch", "Evening snack", "Dinner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractMealTypes(tt.schedule))
		})
	}
}

func TestExtractMealTypesIsPure(t *testing.T) {
	schedule := "Breakfast (8 AM), Lunch (1 PM), Dinner (7 PM)"

	first := ExtractMealTypes(schedule)
	second := ExtractMealTypes(schedule)

	assert.Equal(t, first, second)
}

func TestExtractMealTypesDoesNotShareDefaultSlice(t *testing.T) {
	out := ExtractMealTypes("")
	out[0] = "Brunch"

	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, ExtractMealTypes(""))
}
