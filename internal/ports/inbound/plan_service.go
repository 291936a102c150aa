// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/wellplate/v1/internal/domain/grocery"
	"github.com/wellplate/v1/internal/domain/nutrition"
	"github.com/wellplate/v1/internal/domain/profile"
	"github.com/wellplate/v1/internal/domain/recipe"
	"github.com/wellplate/v1/internal/domain/swap"
)

// PlanService defines the use cases of the planning pipeline.
// This is the primary port that HTTP handlers and other driving adapters will use.
type PlanService interface {
	// Commands - operations that modify state
	CreateProfile(ctx context.Context, patch profile.Patch) (*profile.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, patch profile.Patch) (*profile.Profile, error)
	GenerateDietPlan(ctx context.Context, profileID string) (*recipe.DietRecommendation, error)
	GenerateMealPlan(ctx context.Context, profileID string) (*recipe.MealPlan, error)
	SaveRecipe(ctx context.Context, profileID string, r *recipe.Recipe) error
	CreateCustomRecipe(ctx context.Context, profileID string, cmd CustomRecipeCommand) (*recipe.Recipe, error)

	// Queries - operations that read state
	GetProfile(ctx context.Context, profileID string) (*profile.Profile, error)
	DailyTargets(ctx context.Context, profileID string) (nutrition.DailyTargets, error)
	GroceryList(ctx context.Context, profileID string) ([]grocery.Item, error)

	// Swap operations - pure recomputation, state changes only via SaveRecipe
	SwapSuggestions(ctx context.Context, profileID, recipeName string) (*SwapView, error)
	ApplySwaps(ctx context.Context, profileID string, cmd ApplySwapsCommand) (*recipe.Recipe, error)
}

// CustomRecipeCommand contains the user-entered fields of a custom
// recipe. Nutrition facts are estimated from the ingredient list.
type CustomRecipeCommand struct {
	Name         string   `json:"name" validate:"required"`
	MealType     string   `json:"mealType" validate:"required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1"`
	Instructions []string `json:"instructions"`
}

// ApplySwapsCommand selects which suggested substitutions to apply to a
// saved recipe. Toggles align with the recipe's ingredient indexes.
type ApplySwapsCommand struct {
	RecipeName string `json:"recipeName" validate:"required"`
	Toggles    []bool `json:"toggles" validate:"required"`
}

// SwapView pairs a recipe with one suggestion per ingredient.
type SwapView struct {
	Recipe      *recipe.Recipe    `json:"recipe"`
	Suggestions []swap.Suggestion `json:"suggestions"`
}
