package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellplate/v1/internal/domain/recipe"
)

func ptr[T any](v T) *T { return &v }

func seededProfile() *Profile {
	return &Profile{
		ID:              "u1",
		Name:            "Dana",
		Age:             30,
		Gender:          "female",
		CurrentWeightKG: 70,
		GoalWeightKG:    65,
		HeightCM:        170,
		DaysToAchieve:   90,
		Goals:           []string{"Weight loss"},
		DietType:        "Mediterranean",
		Recommendations: &recipe.DietRecommendation{DietType: "Mediterranean Diet"},
		MealRecommendations: func() *recipe.MealPlan {
			mp := recipe.NewMealPlan()
			mp.Set("Breakfast", []*recipe.Recipe{{Name: "Oatmeal"}})
			return mp
		}(),
	}
}

func TestApplyInvalidatesOnGoalChange(t *testing.T) {
	p := seededProfile()

	p.Apply(Patch{Goals: ptr([]string{"Muscle gain"})})

	assert.Equal(t, []string{"Muscle gain"}, p.Goals)
	assert.Nil(t, p.Recommendations)
	assert.Nil(t, p.MealRecommendations)
}

func TestApplyInvalidatesOnBiometricChange(t *testing.T) {
	p := seededProfile()

	p.Apply(Patch{CurrentWeightKG: ptr(72.5)})

	assert.Nil(t, p.Recommendations)
	assert.Nil(t, p.MealRecommendations)
}

func TestApplyNameChangeKeepsRecommendations(t *testing.T) {
	p := seededProfile()

	p.Apply(Patch{Name: ptr("Sam")})

	assert.Equal(t, "Sam", p.Name)
	assert.NotNil(t, p.Recommendations)
	assert.NotNil(t, p.MealRecommendations)
}

func TestApplyUnchangedValueKeepsRecommendations(t *testing.T) {
	p := seededProfile()

	p.Apply(Patch{CurrentWeightKG: ptr(70.0), DietType: ptr("Mediterranean")})

	assert.NotNil(t, p.Recommendations)
	assert.NotNil(t, p.MealRecommendations)
}

func TestCombineCustomEntries(t *testing.T) {
	p := &Profile{
		Allergies:       []string{"Peanuts", " "},
		CustomAllergies: "shellfish, kiwi , ,",
	}

	assert.Equal(t, []string{"Peanuts", "shellfish", "kiwi"}, p.AllAllergies())
}

func TestCombineEmpty(t *testing.T) {
	p := &Profile{}
	assert.Empty(t, p.AllGoals())
}
