// Package profile models the user profile the planning pipeline reads
// from and writes derived recommendations back into.
package profile

import (
	"strings"

	"github.com/wellplate/v1/internal/domain/recipe"
)

// Profile is the full user profile blob. The recommendation fields are
// derived state: they are replaced wholesale on regeneration and nulled
// whenever an upstream input they depend on changes.
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`

	CurrentWeightKG float64 `json:"currentWeight"`
	GoalWeightKG    float64 `json:"goalWeight"`
	HeightCM        float64 `json:"height"`
	DaysToAchieve   int     `json:"daysToAchieve"`

	Goals            []string `json:"goals"`
	CustomGoals      string   `json:"customGoals"`
	Conditions       []string `json:"conditions"`
	CustomConditions string   `json:"customConditions"`

	DietType              string   `json:"dietType"`
	FoodPreferences       []string `json:"foodPreferences"`
	CustomFoodPreferences string   `json:"customFoodPreferences"`
	Allergies             []string `json:"allergies"`
	CustomAllergies       string   `json:"customAllergies"`

	Recommendations     *recipe.DietRecommendation `json:"recommendations,omitempty"`
	MealRecommendations *recipe.MealPlan           `json:"mealRecommendations,omitempty"`

	SavedRecipes []*recipe.Recipe `json:"savedRecipes,omitempty"`
}

// Patch is a partial profile update. Nil fields are left untouched.
type Patch struct {
	Name   *string `json:"name,omitempty"`
	Age    *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=130"`
	Gender *string `json:"gender,omitempty"`

	CurrentWeightKG *float64 `json:"currentWeight,omitempty" validate:"omitempty,gt=0"`
	GoalWeightKG    *float64 `json:"goalWeight,omitempty" validate:"omitempty,gt=0"`
	HeightCM        *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
	DaysToAchieve   *int     `json:"daysToAchieve,omitempty" validate:"omitempty,gt=0"`

	Goals            *[]string `json:"goals,omitempty"`
	CustomGoals      *string   `json:"customGoals,omitempty"`
	Conditions       *[]string `json:"conditions,omitempty"`
	CustomConditions *string   `json:"customConditions,omitempty"`

	DietType              *string   `json:"dietType,omitempty"`
	FoodPreferences       *[]string `json:"foodPreferences,omitempty"`
	CustomFoodPreferences *string   `json:"customFoodPreferences,omitempty"`
	Allergies             *[]string `json:"allergies,omitempty"`
	CustomAllergies       *string   `json:"customAllergies,omitempty"`
}

// Apply merges the patch into the profile. Changing any input the
// recommendation pipeline depends on (goals, conditions, biometrics,
// diet type, preferences, allergies) invalidates both derived
// recommendation fields. This is the single entry point for profile
// mutation; callers must not null the derived fields themselves.
func (p *Profile) Apply(patch Patch) {
	invalidate := false

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Age != nil && *patch.Age != p.Age {
		p.Age = *patch.Age
		invalidate = true
	}
	if patch.Gender != nil && *patch.Gender != p.Gender {
		p.Gender = *patch.Gender
		invalidate = true
	}
	if patch.CurrentWeightKG != nil && *patch.CurrentWeightKG != p.CurrentWeightKG {
		p.CurrentWeightKG = *patch.CurrentWeightKG
		invalidate = true
	}
	if patch.GoalWeightKG != nil && *patch.GoalWeightKG != p.GoalWeightKG {
		p.GoalWeightKG = *patch.GoalWeightKG
		invalidate = true
	}
	if patch.HeightCM != nil && *patch.HeightCM != p.HeightCM {
		p.HeightCM = *patch.HeightCM
		invalidate = true
	}
	if patch.DaysToAchieve != nil && *patch.DaysToAchieve != p.DaysToAchieve {
		p.DaysToAchieve = *patch.DaysToAchieve
		invalidate = true
	}
	if patch.Goals != nil {
		p.Goals = append([]string(nil), (*patch.Goals)...)
		invalidate = true
	}
	if patch.CustomGoals != nil && *patch.CustomGoals != p.CustomGoals {
		p.CustomGoals = *patch.CustomGoals
		invalidate = true
	}
	if patch.Conditions != nil {
		p.Conditions = append([]string(nil), (*patch.Conditions)...)
		invalidate = true
	}
	if patch.CustomConditions != nil && *patch.CustomConditions != p.CustomConditions {
		p.CustomConditions = *patch.CustomConditions
		invalidate = true
	}
	if patch.DietType != nil && *patch.DietType != p.DietType {
		p.DietType = *patch.DietType
		invalidate = true
	}
	if patch.FoodPreferences != nil {
		p.FoodPreferences = append([]string(nil), (*patch.FoodPreferences)...)
		invalidate = true
	}
	if patch.CustomFoodPreferences != nil && *patch.CustomFoodPreferences != p.CustomFoodPreferences {
		p.CustomFoodPreferences = *patch.CustomFoodPreferences
		invalidate = true
	}
	if patch.Allergies != nil {
		p.Allergies = append([]string(nil), (*patch.Allergies)...)
		invalidate = true
	}
	if patch.CustomAllergies != nil && *patch.CustomAllergies != p.CustomAllergies {
		p.CustomAllergies = *patch.CustomAllergies
		invalidate = true
	}

	if invalidate {
		p.Recommendations = nil
		p.MealRecommendations = nil
	}
}

// AllGoals returns the selected goals plus any comma-separated custom
// goals, trimmed, with empties dropped.
func (p *Profile) AllGoals() []string {
	return combine(p.Goals, p.CustomGoals)
}

// AllConditions returns selected plus custom health conditions.
func (p *Profile) AllConditions() []string {
	return combine(p.Conditions, p.CustomConditions)
}

// AllFoodPreferences returns selected plus custom food preferences.
func (p *Profile) AllFoodPreferences() []string {
	return combine(p.FoodPreferences, p.CustomFoodPreferences)
}

// AllAllergies returns selected plus custom allergies.
func (p *Profile) AllAllergies() []string {
	return combine(p.Allergies, p.CustomAllergies)
}

func combine(selected []string, custom string) []string {
	out := make([]string, 0, len(selected)+1)
	for _, s := range selected {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	for _, s := range strings.Split(custom, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
