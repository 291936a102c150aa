package plan

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wellplate/v1/internal/domain/profile"
	"github.com/wellplate/v1/internal/domain/recipe"
	"github.com/wellplate/v1/internal/ports/inbound"
	"github.com/wellplate/v1/internal/ports/outbound"
	apperrors "github.com/wellplate/v1/pkg/errors"
)

type stubRepo struct {
	mu       sync.Mutex
	profiles map[string]*profile.Profile
}

func newStubRepo(profiles ...*profile.Profile) *stubRepo {
	repo := &stubRepo{profiles: make(map[string]*profile.Profile)}
	for _, p := range profiles {
		repo.profiles[p.ID] = p
	}
	return repo
}

func (r *stubRepo) FindByID(_ context.Context, id string) (*profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, apperrors.NewProfileNotFoundError(id)
	}
	return p, nil
}

func (r *stubRepo) Save(_ context.Context, p *profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

type stubAI struct {
	response string
	err      error
	prompts  []string
}

func (a *stubAI) Complete(_ context.Context, _ outbound.CompletionKind, prompt string) (string, error) {
	a.prompts = append(a.prompts, prompt)
	if a.err != nil {
		return "", a.err
	}
	return a.response, nil
}

// blockingAI parks diet completions on a channel so tests can hold a
// generation in flight. Meal completions pass straight through.
type blockingAI struct {
	started  chan struct{}
	release  chan struct{}
	response string
}

func newBlockingAI(response string) *blockingAI {
	return &blockingAI{
		started:  make(chan struct{}, 2),
		release:  make(chan struct{}),
		response: response,
	}
}

func (a *blockingAI) Complete(_ context.Context, kind outbound.CompletionKind, _ string) (string, error) {
	if kind == outbound.CompletionDietPlan {
		a.started <- struct{}{}
		<-a.release
	}
	return a.response, nil
}

func dietJSON(t *testing.T, mealSchedule string) string {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"dietType":         "Mediterranean Diet",
		"numberOfMeals":    "who knows",
		"mealSchedule":     mealSchedule,
		"recommendedFoods": []string{"Olive oil", "Salmon"},
		"foodsToAvoid":     []string{"Refined sugar"},
		"rationale":        "Heart health.",
	})
	require.NoError(t, err)
	return string(raw)
}

func newTestService(repo *stubRepo, ai outbound.AIService, opts Options) *Service {
	return NewService(repo, ai, opts, zap.NewNop())
}

func baseProfile() *profile.Profile {
	return &profile.Profile{
		ID:              "u1",
		Name:            "Dana",
		Age:             30,
		Gender:          "female",
		CurrentWeightKG: 70,
		GoalWeightKG:    65,
		HeightCM:        170,
		DaysToAchieve:   90,
		Goals:           []string{"Weight loss"},
		Allergies:       []string{"Shrimp"},
	}
}

func TestGenerateDietPlanStoresAndCorrectsCount(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := &stubAI{response: dietJSON(t, "Breakfast (8 AM), Mid-morning snack (10:30 AM), Lunch (1 PM)")}
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	rec, err := svc.GenerateDietPlan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Mediterranean Diet", rec.DietType)
	assert.Equal(t, "3 meals", rec.NumberOfMeals)

	stored, _ := repo.FindByID(context.Background(), "u1")
	assert.Equal(t, rec, stored.Recommendations)
}

func TestGenerateDietPlanTransportErrorSurfaces(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := &stubAI{err: errors.New("connection refused")}
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	_, err := svc.GenerateDietPlan(context.Background(), "u1")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeRecommendationFailed, appErr.Code)
	assert.Equal(t, "Failed to generate recommendations. Please try again.", appErr.Message)

	stored, _ := repo.FindByID(context.Background(), "u1")
	assert.Nil(t, stored.Recommendations)
}

func TestGenerateDietPlanNoJSONFallsBack(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := &stubAI{response: "Sorry, I can only answer questions about cooking."}
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	rec, err := svc.GenerateDietPlan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Balanced Diet", rec.DietType)
	assert.Equal(t, "3 meals", rec.NumberOfMeals)
}

func TestGenerateDietPlanInvalidatesMealPlan(t *testing.T) {
	p := baseProfile()
	p.MealRecommendations = FallbackMealPlan([]string{"Breakfast"})
	repo := newStubRepo(p)
	ai := &stubAI{response: dietJSON(t, "Breakfast, Lunch, Dinner")}
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	_, err := svc.GenerateDietPlan(context.Background(), "u1")
	require.NoError(t, err)

	stored, _ := repo.FindByID(context.Background(), "u1")
	assert.Nil(t, stored.MealRecommendations)
}

func TestGenerateDietPlanLiveDisabled(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := &stubAI{}
	svc := newTestService(repo, ai, Options{})

	rec, err := svc.GenerateDietPlan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Balanced Diet", rec.DietType)
	assert.Empty(t, ai.prompts)
}

func TestGenerateMealPlanNeverFailsOnCompletion(t *testing.T) {
	p := baseProfile()
	p.Recommendations = &recipe.DietRecommendation{
		MealSchedule: "Breakfast (8 AM), Evening snack (4 PM), Dinner (7 PM)",
	}
	repo := newStubRepo(p)
	ai := &stubAI{err: errors.New("timeout")}
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	mealPlan, err := svc.GenerateMealPlan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Breakfast", "Evening snack", "Dinner"}, mealPlan.MealTypes())
	for _, mealType := range mealPlan.MealTypes() {
		assert.NotEmpty(t, mealPlan.Recipes(mealType))
	}
}

func TestGenerateMealPlanUnparseableFallsBack(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := &stubAI{response: "no json here at all"}
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	mealPlan, err := svc.GenerateMealPlan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, mealPlan.MealTypes())
}

func TestGenerateMealPlanParsesLiveResponse(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := &stubAI{response: `{"Breakfast": [{"name": "Shakshuka", "calories": 330}]}`}
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	mealPlan, err := svc.GenerateMealPlan(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, mealPlan.Recipes("Breakfast"), 1)
	assert.Equal(t, "Shakshuka", mealPlan.Recipes("Breakfast")[0].Name)

	stored, _ := repo.FindByID(context.Background(), "u1")
	assert.Same(t, mealPlan, stored.MealRecommendations)
}

func TestGenerateMealPlanAllergenFilter(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := &stubAI{response: `{
		"Dinner": [
			{"name": "Shrimp Tacos", "calories": 390},
			{"name": "Lentil Soup", "calories": 340, "ingredients": ["1 cup lentils"]}
		]
	}`}
	svc := newTestService(repo, ai, Options{LiveGeneration: true, AllergenFilter: true})

	mealPlan, err := svc.GenerateMealPlan(context.Background(), "u1")
	require.NoError(t, err)
	dinner := mealPlan.Recipes("Dinner")
	require.Len(t, dinner, 1)
	assert.Equal(t, "Lentil Soup", dinner[0].Name)
}

func TestFallbackMealPlanDeterministic(t *testing.T) {
	types := []string{"Breakfast", "Mid-morning snack", "Lunch", "Afternoon snack", "Dinner"}

	first, err := json.Marshal(FallbackMealPlan(types))
	require.NoError(t, err)
	second, err := json.Marshal(FallbackMealPlan(types))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFallbackMealPlanUnknownTypeReusesNearestSection(t *testing.T) {
	mealPlan := FallbackMealPlan([]string{"Evening snack", "Supper"})

	assert.Equal(t, []string{"Evening snack", "Supper"}, mealPlan.MealTypes())
	assert.NotEmpty(t, mealPlan.Recipes("Evening snack"))
	assert.NotEmpty(t, mealPlan.Recipes("Supper"))
	assert.Equal(t, "Evening snack", mealPlan.Recipes("Evening snack")[0].MealType)
}

func TestGenerateDietPlanRejectsConcurrentRun(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := newBlockingAI(dietJSON(t, "Breakfast (8 AM), Lunch (1 PM), Dinner (7 PM)"))
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	done := make(chan error, 1)
	go func() {
		_, err := svc.GenerateDietPlan(context.Background(), "u1")
		done <- err
	}()
	<-ai.started

	_, err := svc.GenerateDietPlan(context.Background(), "u1")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeGenerationInFlight, appErr.Code)

	close(ai.release)
	require.NoError(t, <-done)

	// guard released: a fresh generation goes through
	rec, err := svc.GenerateDietPlan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Mediterranean Diet", rec.DietType)
}

func TestMealPlanNotBlockedByDietGeneration(t *testing.T) {
	repo := newStubRepo(baseProfile())
	ai := newBlockingAI(dietJSON(t, "Breakfast (8 AM), Lunch (1 PM), Dinner (7 PM)"))
	svc := newTestService(repo, ai, Options{LiveGeneration: true})

	done := make(chan error, 1)
	go func() {
		_, err := svc.GenerateDietPlan(context.Background(), "u1")
		done <- err
	}()
	<-ai.started

	// the diet completion text is not a meal plan, so this degrades to
	// the fallback catalog, but it must not see the in-flight error
	mealPlan, err := svc.GenerateMealPlan(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Breakfast", "Lunch", "Dinner"}, mealPlan.MealTypes())

	close(ai.release)
	require.NoError(t, <-done)
}

func TestCreateProfileGeneratesID(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubAI{}, Options{})

	name := "Dana"
	weight := 70.0
	created, err := svc.CreateProfile(context.Background(), profile.Patch{Name: &name, CurrentWeightKG: &weight})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Dana", created.Name)

	stored, err := svc.GetProfile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 70.0, stored.CurrentWeightKG)

	second, err := svc.CreateProfile(context.Background(), profile.Patch{})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestUpdateProfileInvalidatesThroughService(t *testing.T) {
	p := baseProfile()
	p.Recommendations = FallbackDietRecommendation()
	repo := newStubRepo(p)
	svc := newTestService(repo, &stubAI{}, Options{})

	weight := 72.0
	updated, err := svc.UpdateProfile(context.Background(), "u1", profile.Patch{CurrentWeightKG: &weight})
	require.NoError(t, err)
	assert.Nil(t, updated.Recommendations)
}

func TestDailyTargetsFromProfile(t *testing.T) {
	repo := newStubRepo(baseProfile())
	svc := newTestService(repo, &stubAI{}, Options{})

	targets, err := svc.DailyTargets(context.Background(), "u1")
	require.NoError(t, err)
	// 30y female, 70kg -> 65kg over 90 days: BMR 1451.5, TDEE ~2249.8,
	// deficit ~427.8/day
	assert.Equal(t, 1822, targets.Calories)
	assert.Equal(t, 112, targets.Protein)
	assert.GreaterOrEqual(t, targets.Calories, 1200)
}

func TestSaveRecipeDedupesBySlot(t *testing.T) {
	repo := newStubRepo(baseProfile())
	svc := newTestService(repo, &stubAI{}, Options{})
	ctx := context.Background()

	first := &recipe.Recipe{Name: "Oatmeal", MealType: "Breakfast", Calories: 300}
	require.NoError(t, svc.SaveRecipe(ctx, "u1", first))
	second := &recipe.Recipe{Name: "oatmeal", MealType: "breakfast", Calories: 320}
	require.NoError(t, svc.SaveRecipe(ctx, "u1", second))

	stored, _ := repo.FindByID(ctx, "u1")
	require.Len(t, stored.SavedRecipes, 1)
	assert.Equal(t, 320, stored.SavedRecipes[0].Calories)
}

func TestSaveRecipeModifiedReplacesOriginal(t *testing.T) {
	p := baseProfile()
	p.SavedRecipes = []*recipe.Recipe{{Name: "Chicken Rice Bowl", MealType: "Lunch", Calories: 550}}
	repo := newStubRepo(p)
	svc := newTestService(repo, &stubAI{}, Options{})

	modified := &recipe.Recipe{
		Name:               "Chicken Rice Bowl (Healthier)",
		MealType:           "Lunch",
		Calories:           510,
		IsModified:         true,
		OriginalRecipeName: "Chicken Rice Bowl",
	}
	require.NoError(t, svc.SaveRecipe(context.Background(), "u1", modified))

	stored, _ := repo.FindByID(context.Background(), "u1")
	require.Len(t, stored.SavedRecipes, 1)
	assert.Equal(t, "Chicken Rice Bowl (Healthier)", stored.SavedRecipes[0].Name)
}

func TestCreateCustomRecipeEstimatesNutrition(t *testing.T) {
	repo := newStubRepo(baseProfile())
	svc := newTestService(repo, &stubAI{}, Options{})

	r, err := svc.CreateCustomRecipe(context.Background(), "u1", inbound.CustomRecipeCommand{
		Name:         "Egg and Toast",
		MealType:     "Breakfast",
		Ingredients:  []string{"2 eggs", "1 slice toast"},
		Instructions: []string{"Fry eggs", "Toast bread", "Serve"},
	})
	require.NoError(t, err)
	assert.True(t, r.IsCustom)
	assert.Equal(t, 158, r.Calories) // egg 78 + toast 80
	assert.Equal(t, "18 mins", r.PrepTime)

	protein, ok := r.Nutrient("Protein")
	require.True(t, ok)
	assert.Equal(t, "10g", protein.Value)

	stored, _ := repo.FindByID(context.Background(), "u1")
	require.Len(t, stored.SavedRecipes, 1)
}

func TestSwapFlow(t *testing.T) {
	p := baseProfile()
	p.SavedRecipes = []*recipe.Recipe{{
		Name:        "Chicken Rice Bowl",
		Calories:    550,
		PrepTime:    "25 mins",
		Ingredients: []string{"1 cup white rice", "2 tbsp sour cream"},
		Nutrients: []recipe.Nutrient{
			{Name: "Protein", Value: "35g"},
			{Name: "Carbs", Value: "60g"},
			{Name: "Fiber", Value: "3g"},
		},
		Instructions: []string{"Serve over white rice with sour cream"},
	}}
	repo := newStubRepo(p)
	svc := newTestService(repo, &stubAI{}, Options{})
	ctx := context.Background()

	view, err := svc.SwapSuggestions(ctx, "u1", "Chicken Rice Bowl")
	require.NoError(t, err)
	require.Len(t, view.Suggestions, 2)

	updated, err := svc.ApplySwaps(ctx, "u1", inbound.ApplySwapsCommand{
		RecipeName: "Chicken Rice Bowl",
		Toggles:    []bool{true, true},
	})
	require.NoError(t, err)
	assert.Equal(t, 510, updated.Calories)

	// recomputation must not touch the stored recipe
	stored, _ := repo.FindByID(ctx, "u1")
	assert.Equal(t, 550, stored.SavedRecipes[0].Calories)
}

func TestSwapSuggestionsUnknownRecipe(t *testing.T) {
	repo := newStubRepo(baseProfile())
	svc := newTestService(repo, &stubAI{}, Options{})

	_, err := svc.SwapSuggestions(context.Background(), "u1", "Mystery Dish")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestProfileNotFound(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubAI{}, Options{})

	_, err := svc.GenerateDietPlan(context.Background(), "missing")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeProfileNotFound, appErr.Code)
}
