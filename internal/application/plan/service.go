package plan

import (
	"context"
	stderrors "errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wellplate/v1/internal/domain/grocery"
	"github.com/wellplate/v1/internal/domain/nutrition"
	"github.com/wellplate/v1/internal/domain/profile"
	"github.com/wellplate/v1/internal/domain/recipe"
	"github.com/wellplate/v1/internal/domain/schedule"
	"github.com/wellplate/v1/internal/domain/swap"
	"github.com/wellplate/v1/internal/ports/inbound"
	"github.com/wellplate/v1/internal/ports/outbound"
	"github.com/wellplate/v1/pkg/errors"
)

// Options tune the pipeline's optional behaviors.
type Options struct {
	// LiveGeneration enables the AI call. When false both paths use the
	// static fallbacks directly.
	LiveGeneration bool

	// AllergenFilter drops meal-plan recipes whose name or ingredients
	// mention a profile allergen. Off by default: the source data never
	// enforced this and enabling it can thin out meal sections.
	AllergenFilter bool
}

// Service implements inbound.PlanService. It owns the derivation of all
// recommendation and nutrition state from a profile.
type Service struct {
	profiles outbound.ProfileRepository
	ai       outbound.AIService
	opts     Options
	logger   *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ inbound.PlanService = (*Service)(nil)

// NewService creates the planning service.
func NewService(profiles outbound.ProfileRepository, ai outbound.AIService, opts Options, logger *zap.Logger) *Service {
	return &Service{
		profiles: profiles,
		ai:       ai,
		opts:     opts,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// acquire registers an in-flight generation for a profile. Concurrent
// regenerations for the same profile are rejected instead of racing to a
// last-write-wins save.
func (s *Service) acquire(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[key]; busy {
		return errors.NewGenerationInFlightError(key)
	}
	s.inFlight[key] = struct{}{}
	return nil
}

func (s *Service) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

// GetProfile returns the stored profile.
func (s *Service) GetProfile(ctx context.Context, profileID string) (*profile.Profile, error) {
	return s.profiles.FindByID(ctx, profileID)
}

// CreateProfile creates a profile with a generated ID and the initial
// patch applied.
func (s *Service) CreateProfile(ctx context.Context, patch profile.Patch) (*profile.Profile, error) {
	p := &profile.Profile{ID: uuid.New().String()}
	p.Apply(patch)
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("profile created", zap.String("profile_id", p.ID))
	return p, nil
}

// UpdateProfile applies a partial patch. Any change to an input of the
// recommendation pipeline invalidates both derived recommendation
// fields; that rule lives in profile.Apply, not here.
func (s *Service) UpdateProfile(ctx context.Context, profileID string, patch profile.Patch) (*profile.Profile, error) {
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	p.Apply(patch)
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GenerateDietPlan builds the diet prompt, runs the completion, and
// parses the result. Transport and JSON-shape failures surface to the
// caller as a retryable error; a completion carrying no JSON at all
// degrades to the static fallback plan. The new plan replaces the old
// one wholesale and invalidates the meal plan derived from it.
func (s *Service) GenerateDietPlan(ctx context.Context, profileID string) (*recipe.DietRecommendation, error) {
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if err := s.acquire(profileID); err != nil {
		return nil, err
	}
	defer s.release(profileID)

	rec, err := s.dietRecommendation(ctx, p)
	if err != nil {
		return nil, err
	}

	p.Recommendations = rec
	p.MealRecommendations = nil
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("diet plan generated",
		zap.String("profile_id", profileID),
		zap.String("diet_type", rec.DietType),
		zap.String("number_of_meals", rec.NumberOfMeals))
	return rec, nil
}

func (s *Service) dietRecommendation(ctx context.Context, p *profile.Profile) (*recipe.DietRecommendation, error) {
	if !s.opts.LiveGeneration {
		return FallbackDietRecommendation(), nil
	}

	raw, err := s.ai.Complete(ctx, outbound.CompletionDietPlan, BuildDietPrompt(p))
	if err != nil {
		s.logger.Error("diet plan completion failed", zap.Error(err))
		return nil, errors.NewRecommendationFailedError(err)
	}

	rec, err := ParseDietRecommendation(raw)
	switch {
	case err == nil:
		return rec, nil
	case stderrors.Is(err, ErrNoJSON):
		s.logger.Warn("diet plan completion had no JSON, using fallback")
		return FallbackDietRecommendation(), nil
	default:
		s.logger.Error("diet plan completion unparseable", zap.Error(err))
		return nil, errors.NewRecommendationFailedError(err)
	}
}

// GenerateMealPlan builds the meal plan for the profile's current meal
// schedule. This path never fails on generation problems: any error in
// the completion or its parsing silently degrades to the static catalog
// keyed by the same meal types.
func (s *Service) GenerateMealPlan(ctx context.Context, profileID string) (*recipe.MealPlan, error) {
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	key := profileID + ":meal"
	if err := s.acquire(key); err != nil {
		return nil, err
	}
	defer s.release(key)

	mealSchedule := "Breakfast, Lunch, Dinner"
	if p.Recommendations != nil && p.Recommendations.MealSchedule != "" {
		mealSchedule = p.Recommendations.MealSchedule
	}
	mealTypes := schedule.ExtractMealTypes(mealSchedule)

	mealPlan := s.mealPlan(ctx, p, mealTypes)
	if s.opts.AllergenFilter {
		mealPlan = filterAllergens(mealPlan, p.AllAllergies(), s.logger)
	}

	p.MealRecommendations = mealPlan
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("meal plan generated",
		zap.String("profile_id", profileID),
		zap.Strings("meal_types", mealPlan.MealTypes()))
	return mealPlan, nil
}

func (s *Service) mealPlan(ctx context.Context, p *profile.Profile, mealTypes []string) *recipe.MealPlan {
	if !s.opts.LiveGeneration {
		return FallbackMealPlan(mealTypes)
	}

	raw, err := s.ai.Complete(ctx, outbound.CompletionMealPlan, BuildMealPlanPrompt(p))
	if err != nil {
		s.logger.Warn("meal plan completion failed, using fallback", zap.Error(err))
		return FallbackMealPlan(mealTypes)
	}

	mealPlan, err := ParseMealPlan(raw)
	if err != nil {
		s.logger.Warn("meal plan completion unparseable, using fallback", zap.Error(err))
		return FallbackMealPlan(mealTypes)
	}
	return mealPlan
}

// filterAllergens drops recipes whose name or ingredient text mentions
// any allergen, matching by lowercase substring.
func filterAllergens(mealPlan *recipe.MealPlan, allergens []string, logger *zap.Logger) *recipe.MealPlan {
	if len(allergens) == 0 {
		return mealPlan
	}
	lowered := make([]string, 0, len(allergens))
	for _, a := range allergens {
		lowered = append(lowered, strings.ToLower(a))
	}

	filtered := recipe.NewMealPlan()
	for _, mealType := range mealPlan.MealTypes() {
		var kept []*recipe.Recipe
		for _, r := range mealPlan.Recipes(mealType) {
			if allergen := matchAllergen(r, lowered); allergen != "" {
				logger.Debug("filtered recipe containing allergen",
					zap.String("recipe", r.Name),
					zap.String("allergen", allergen))
				continue
			}
			kept = append(kept, r)
		}
		filtered.Set(mealType, kept)
	}
	return filtered
}

func matchAllergen(r *recipe.Recipe, allergens []string) string {
	haystack := strings.ToLower(r.Name + " " + strings.Join(r.Ingredients, " "))
	for _, allergen := range allergens {
		if strings.Contains(haystack, allergen) {
			return allergen
		}
	}
	return ""
}

// DailyTargets recomputes the daily nutrition goals from the current
// biometrics. Nothing is persisted.
func (s *Service) DailyTargets(ctx context.Context, profileID string) (nutrition.DailyTargets, error) {
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nutrition.DailyTargets{}, err
	}
	return nutrition.CalculateDailyTargets(nutrition.TargetInput{
		Age:           p.Age,
		Gender:        p.Gender,
		WeightKG:      p.CurrentWeightKG,
		GoalWeightKG:  p.GoalWeightKG,
		HeightCM:      p.HeightCM,
		DaysToAchieve: p.DaysToAchieve,
	}), nil
}

// GroceryList regenerates the aggregated grocery view from the current
// saved-recipes snapshot.
func (s *Service) GroceryList(ctx context.Context, profileID string) ([]grocery.Item, error) {
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return grocery.Aggregate(p.SavedRecipes), nil
}

// SaveRecipe stores a recipe in the profile's collection, deduplicating
// by (name, meal type). A modified recipe replaces the original it was
// derived from when the original is still present.
func (s *Service) SaveRecipe(ctx context.Context, profileID string, r *recipe.Recipe) error {
	if r == nil || r.Name == "" {
		return errors.NewValidationError("recipe name is required")
	}
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return err
	}

	saved := r.Clone()
	replaced := false
	for i, existing := range p.SavedRecipes {
		sameSlot := strings.EqualFold(existing.Name, saved.Name) &&
			strings.EqualFold(existing.MealType, saved.MealType)
		replacesOriginal := saved.IsModified && saved.OriginalRecipeName != "" &&
			strings.EqualFold(existing.Name, saved.OriginalRecipeName)
		if sameSlot || replacesOriginal {
			p.SavedRecipes[i] = saved
			replaced = true
			break
		}
	}
	if !replaced {
		p.SavedRecipes = append(p.SavedRecipes, saved)
	}
	return s.profiles.Save(ctx, p)
}

// CreateCustomRecipe builds a recipe from user-entered ingredients and
// instructions, estimating calories, macros, and prep time, then saves
// it to the profile.
func (s *Service) CreateCustomRecipe(ctx context.Context, profileID string, cmd inbound.CustomRecipeCommand) (*recipe.Recipe, error) {
	if cmd.Name == "" || len(cmd.Ingredients) == 0 {
		return nil, errors.NewValidationError("name and at least one ingredient are required")
	}

	est := nutrition.EstimateRecipe(cmd.Ingredients, cmd.Instructions)
	r := &recipe.Recipe{
		Name:         cmd.Name,
		Calories:     est.Calories,
		PrepTime:     est.PrepTime,
		Ingredients:  append([]string(nil), cmd.Ingredients...),
		Instructions: append([]string(nil), cmd.Instructions...),
		Nutrients: []recipe.Nutrient{
			{Name: "Protein", Value: recipe.FormatAmount(est.Protein, "g")},
			{Name: "Carbs", Value: recipe.FormatAmount(est.Carbs, "g")},
			{Name: "Fat", Value: recipe.FormatAmount(est.Fat, "g")},
			{Name: "Fiber", Value: recipe.FormatAmount(est.Fiber, "g")},
		},
		MealType: cmd.MealType,
		IsCustom: true,
	}

	if err := s.SaveRecipe(ctx, profileID, r); err != nil {
		return nil, err
	}
	return r, nil
}

// SwapSuggestions proposes one substitution per ingredient for a saved
// or recommended recipe.
func (s *Service) SwapSuggestions(ctx context.Context, profileID, recipeName string) (*inbound.SwapView, error) {
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	r := findRecipe(p, recipeName)
	if r == nil {
		return nil, errors.NewAppError(errors.CodeNotFound, "Recipe not found", recipeName)
	}
	return &inbound.SwapView{
		Recipe:      r.Clone(),
		Suggestions: swap.SuggestFor(r.Ingredients),
	}, nil
}

// ApplySwaps recomputes a recipe with the toggled substitutions applied.
// The result is returned, not stored; persisting it is an explicit
// SaveRecipe call.
func (s *Service) ApplySwaps(ctx context.Context, profileID string, cmd inbound.ApplySwapsCommand) (*recipe.Recipe, error) {
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	r := findRecipe(p, cmd.RecipeName)
	if r == nil {
		return nil, errors.NewAppError(errors.CodeNotFound, "Recipe not found", cmd.RecipeName)
	}
	suggestions := swap.SuggestFor(r.Ingredients)
	return swap.Recalculate(r, suggestions, cmd.Toggles), nil
}

// findRecipe searches saved recipes first, then the current meal plan.
func findRecipe(p *profile.Profile, name string) *recipe.Recipe {
	for _, r := range p.SavedRecipes {
		if strings.EqualFold(r.Name, name) {
			return r
		}
	}
	if p.MealRecommendations != nil {
		for _, mealType := range p.MealRecommendations.MealTypes() {
			for _, r := range p.MealRecommendations.Recipes(mealType) {
				if strings.EqualFold(r.Name, name) {
					return r
				}
			}
		}
	}
	return nil
}
