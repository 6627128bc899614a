package dish

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusGenerated, StatusCompleted, true},
		{StatusGenerated, StatusPending, true},
		{StatusPending, StatusFinished, true},
		{StatusPending, StatusCompleted, false},
		{StatusCompleted, StatusFinished, false},
		{StatusFinished, StatusPending, false},
		{StatusGenerated, StatusFinished, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestNewPendingDish(t *testing.T) {
	userID := uuid.New()
	ingredients := []UsedIngredient{{Name: "Arroz", Quantity: 0.5, Unit: "kilogramos"}}
	instructions := []string{"Recalentar a fuego medio"}

	t.Run("valid dish gets an expiration from its shelf life", func(t *testing.T) {
		d, err := NewPendingDish(userID, "Arroz con pollo", ingredients, instructions, 3)

		require.NoError(t, err)
		assert.Equal(t, "Arroz con pollo", d.Name())
		assert.False(t, d.IsExpired())
		assert.Equal(t, 3, d.DaysRemaining())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := NewPendingDish(userID, "  ", ingredients, instructions, 3)
		assert.Equal(t, ErrNameRequired, err)
	})

	t.Run("shelf life below one day is rejected", func(t *testing.T) {
		_, err := NewPendingDish(userID, "Sopa", ingredients, instructions, 0)
		assert.Equal(t, ErrInvalidShelfLifeDays, err)
	})
}

func TestNewHistoryEntry(t *testing.T) {
	userID := uuid.New()

	t.Run("servings default to two", func(t *testing.T) {
		entry, err := NewHistoryEntry(userID, "Tortilla", nil, []string{"Batir"}, nil, nil, 0)

		require.NoError(t, err)
		assert.Equal(t, 2, entry.Servings())
		assert.False(t, entry.IsFavorite())
	})

	t.Run("explicit servings are kept", func(t *testing.T) {
		entry, err := NewHistoryEntry(userID, "Tortilla", nil, []string{"Batir"}, nil, nil, 4)

		require.NoError(t, err)
		assert.Equal(t, 4, entry.Servings())
	})

	t.Run("favorite toggles both ways", func(t *testing.T) {
		entry, err := NewHistoryEntry(userID, "Tortilla", nil, []string{"Batir"}, nil, nil, 2)
		require.NoError(t, err)

		entry.ToggleFavorite()
		assert.True(t, entry.IsFavorite())
		entry.ToggleFavorite()
		assert.False(t, entry.IsFavorite())
	})
}

func TestGeneratedRecipeNormalize(t *testing.T) {
	t.Run("repairs nil slices", func(t *testing.T) {
		r := GeneratedRecipe{Name: " Paella ", Instructions: []string{"Sofreír"}}

		require.NoError(t, r.Normalize())
		assert.Equal(t, "Paella", r.Name)
		assert.NotNil(t, r.Categories)
		assert.NotNil(t, r.Ingredients)
		assert.NotNil(t, r.MissingIngredients)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		r := GeneratedRecipe{Name: "  ", Instructions: []string{"x"}}
		assert.Equal(t, ErrNameRequired, r.Normalize())
	})

	t.Run("missing instructions are rejected", func(t *testing.T) {
		r := GeneratedRecipe{Name: "Paella"}
		assert.Equal(t, ErrNoInstructions, r.Normalize())
	})
}

func TestMealTimeAndCategories(t *testing.T) {
	assert.True(t, MealTime("Comida").Valid())
	assert.True(t, MealBreakfast.Valid())
	assert.False(t, MealTime("Merienda").Valid())

	assert.True(t, ValidCategory("Mexicana"))
	assert.False(t, ValidCategory("Marciana"))
}
