package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellplate/v1/internal/domain/profile"
	"github.com/wellplate/v1/internal/domain/recipe"
	apperrors "github.com/wellplate/v1/pkg/errors"
)

func TestSaveAndFindRoundTrip(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()

	p := &profile.Profile{
		ID:              "u1",
		Name:            "Dana",
		CurrentWeightKG: 70,
		Recommendations: &recipe.DietRecommendation{DietType: "Keto", NumberOfMeals: "2 meals"},
	}
	require.NoError(t, repo.Save(ctx, p))

	found, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, p, found)
	assert.NotSame(t, p, found)
}

func TestFindReturnsIsolatedCopy(t *testing.T) {
	repo := NewProfileRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &profile.Profile{ID: "u1", Goals: []string{"Weight loss"}}))

	first, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	first.Goals[0] = "mutated"

	second, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Weight loss"}, second.Goals)
}

func TestFindMissingProfile(t *testing.T) {
	repo := NewProfileRepository()

	_, err := repo.FindByID(context.Background(), "nope")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeProfileNotFound, appErr.Code)
}

func TestSaveRequiresID(t *testing.T) {
	repo := NewProfileRepository()
	assert.Error(t, repo.Save(context.Background(), &profile.Profile{}))
}
