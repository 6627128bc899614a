package gorm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/domain/pantry"
)

func TestIngredientMapperPinsDatesToNoon(t *testing.T) {
	purchase := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	exp := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.Local)

	item, err := pantry.NewIngredient(uuid.New(), "Aguacate", 2, pantry.Piezas, purchase, &exp)
	require.NoError(t, err)

	model := ingredientToModel(item)

	assert.Equal(t, 12, model.PurchaseDate.Hour())
	assert.Equal(t, 10, model.PurchaseDate.Day())
	require.NotNil(t, model.ExpirationDate)
	assert.Equal(t, 12, model.ExpirationDate.Hour())
	assert.Equal(t, 14, model.ExpirationDate.Day())
}

func TestIngredientMapperRoundtrip(t *testing.T) {
	exp := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.Local)
	item, err := pantry.NewIngredient(uuid.New(), "Leche", 0.5, pantry.Litros, time.Now(), &exp)
	require.NoError(t, err)

	restored := ingredientToDomain(ingredientToModel(item))

	assert.Equal(t, item.ID(), restored.ID())
	assert.Equal(t, item.Name(), restored.Name())
	assert.Equal(t, item.Quantity(), restored.Quantity())
	assert.Equal(t, item.Unit(), restored.Unit())
	assert.True(t, restored.IsFractioned())
	require.NotNil(t, restored.ExpiresOn())
	assert.Equal(t, exp, *restored.ExpiresOn())
}

func TestHistoryMapperRoundtrip(t *testing.T) {
	prep := 25
	entry, err := dish.NewHistoryEntry(
		uuid.New(),
		"Arroz con pollo",
		[]dish.UsedIngredient{{Name: "Arroz", Quantity: 0.5, Unit: "kilogramos"}},
		[]string{"Sofreír", "Añadir el pollo"},
		[]string{"Mexicana"},
		&prep,
		4,
	)
	require.NoError(t, err)
	entry.ToggleFavorite()

	restored := historyToDomain(historyToModel(entry))

	assert.Equal(t, entry.ID(), restored.ID())
	assert.Equal(t, entry.Name(), restored.Name())
	assert.Equal(t, entry.Ingredients(), restored.Ingredients())
	assert.Equal(t, entry.Categories(), restored.Categories())
	require.NotNil(t, restored.PrepTime())
	assert.Equal(t, 25, *restored.PrepTime())
	assert.Equal(t, 4, restored.Servings())
	assert.True(t, restored.IsFavorite())
}

func TestIngredientLinesScanValue(t *testing.T) {
	lines := IngredientLines{{Name: "Arroz", Quantity: 0.5, Unit: "kilogramos"}}

	raw, err := lines.Value()
	require.NoError(t, err)

	var scanned IngredientLines
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, lines, scanned)
}

func TestStringSliceScanNil(t *testing.T) {
	var s StringSlice
	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)
}
