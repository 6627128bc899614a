package pantry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// IngredientTestSuite provides a test suite for the Ingredient aggregate
type IngredientTestSuite struct {
	suite.Suite
	userID   uuid.UUID
	purchase time.Time
}

func (suite *IngredientTestSuite) SetupSuite() {
	suite.userID = uuid.New()
	suite.purchase = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
}

func (suite *IngredientTestSuite) TestCreation() {
	suite.Run("ValidIngredient_ShouldCreateSuccessfully", func() {
		exp := suite.purchase.AddDate(0, 0, 4)
		item, err := NewIngredient(suite.userID, "Aguacate", 2, Piezas, suite.purchase, &exp)

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), item)
		assert.NotEqual(suite.T(), uuid.Nil, item.ID())
		assert.Equal(suite.T(), "Aguacate", item.Name())
		assert.Equal(suite.T(), 2.0, item.Quantity())
		assert.False(suite.T(), item.IsFractioned())
	})

	suite.Run("NameGetsTrimmed", func() {
		item, err := NewIngredient(suite.userID, "  Leche  ", 1, Litros, suite.purchase, nil)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Leche", item.Name())
	})

	suite.Run("QuantityRoundsToTwoDecimals", func() {
		item, err := NewIngredient(suite.userID, "Arroz", 0.3333, Kilogramos, suite.purchase, nil)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.33, item.Quantity())
		assert.True(suite.T(), item.IsFractioned())
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		_, err := NewIngredient(suite.userID, "   ", 1, Piezas, suite.purchase, nil)
		assert.Equal(suite.T(), ErrNameRequired, err)
	})

	suite.Run("NonPositiveQuantity_ShouldReturnError", func() {
		_, err := NewIngredient(suite.userID, "Leche", 0, Litros, suite.purchase, nil)
		assert.Equal(suite.T(), ErrInvalidQuantity, err)
	})

	suite.Run("UnknownUnit_ShouldReturnError", func() {
		_, err := NewIngredient(suite.userID, "Leche", 1, Unit("galones"), suite.purchase, nil)
		assert.Equal(suite.T(), ErrInvalidUnit, err)
	})

	suite.Run("ZeroPurchaseDate_ShouldReturnError", func() {
		_, err := NewIngredient(suite.userID, "Leche", 1, Litros, time.Time{}, nil)
		assert.Equal(suite.T(), ErrZeroPurchaseDate, err)
	})
}

func (suite *IngredientTestSuite) TestConsume() {
	suite.Run("PartialUse_ShouldReduceQuantity", func() {
		item := suite.ingredient("Arroz", 2, Kilogramos)

		outcome, err := item.Consume(0.5)

		require.NoError(suite.T(), err)
		assert.False(suite.T(), outcome.Depleted)
		assert.False(suite.T(), outcome.BecameFractioned)
		assert.Equal(suite.T(), 1.5, item.Quantity())
	})

	suite.Run("UseEverything_ShouldReportDepleted", func() {
		item := suite.ingredient("Leche", 1, Litros)

		outcome, err := item.Consume(1)

		require.NoError(suite.T(), err)
		assert.True(suite.T(), outcome.Depleted)
	})

	suite.Run("OveruseAlsoDepletes", func() {
		item := suite.ingredient("Leche", 1, Litros)

		outcome, err := item.Consume(3)

		require.NoError(suite.T(), err)
		assert.True(suite.T(), outcome.Depleted)
	})

	suite.Run("CountableDropsBelowOnePiece_ShouldReportFractioned", func() {
		item := suite.ingredient("Aguacate", 1, Piezas)

		outcome, err := item.Consume(0.5)

		require.NoError(suite.T(), err)
		assert.True(suite.T(), outcome.BecameFractioned)
		assert.True(suite.T(), item.IsFractioned())
	})

	suite.Run("NonCountableBelowOne_ShouldNotReportFractioned", func() {
		item := suite.ingredient("Arroz", 1, Kilogramos)

		outcome, err := item.Consume(0.5)

		require.NoError(suite.T(), err)
		assert.False(suite.T(), outcome.BecameFractioned)
	})

	suite.Run("AlreadyFractioned_ShouldNotReportAgain", func() {
		item := suite.ingredient("Aguacate", 0.8, Piezas)

		outcome, err := item.Consume(0.3)

		require.NoError(suite.T(), err)
		assert.False(suite.T(), outcome.BecameFractioned)
	})

	suite.Run("NonPositiveAmount_ShouldReturnError", func() {
		item := suite.ingredient("Leche", 1, Litros)

		_, err := item.Consume(0)

		assert.Equal(suite.T(), ErrInvalidUsedAmount, err)
		assert.Equal(suite.T(), 1.0, item.Quantity())
	})
}

func (suite *IngredientTestSuite) TestMatchesName() {
	item := suite.ingredient("Pechuga de pollo", 1, Piezas)

	assert.True(suite.T(), item.MatchesName("pechuga DE pollo"))
	assert.True(suite.T(), item.MatchesName("  Pechuga de pollo  "))
	assert.False(suite.T(), item.MatchesName("Pechuga"))
}

func (suite *IngredientTestSuite) TestReschedule() {
	item := suite.ingredient("Aguacate", 1, Piezas)
	newExp := suite.purchase.AddDate(0, 0, 2)

	item.Reschedule(newExp)

	require.NotNil(suite.T(), item.ExpiresOn())
	assert.Equal(suite.T(), newExp, *item.ExpiresOn())
}

func (suite *IngredientTestSuite) ingredient(name string, qty float64, unit Unit) *Ingredient {
	item, err := NewIngredient(suite.userID, name, qty, unit, suite.purchase, nil)
	require.NoError(suite.T(), err)
	return item
}

func TestIngredientTestSuite(t *testing.T) {
	suite.Run(t, new(IngredientTestSuite))
}

func TestUnitValidation(t *testing.T) {
	for _, u := range []Unit{Piezas, Gramos, Kilogramos, Mililitros, Litros} {
		assert.True(t, u.Valid(), string(u))
	}
	assert.False(t, Unit("tazas").Valid())

	assert.True(t, Piezas.Countable())
	assert.False(t, Gramos.Countable())
	assert.False(t, Litros.Countable())
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"Piezas":     Piezas,
		"piezas":     Piezas,
		"KILOGRAMOS": Kilogramos,
		"litros":     Litros,
	} {
		got, ok := ParseUnit(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got)
	}

	_, ok := ParseUnit("tazas")
	assert.False(t, ok)
}
