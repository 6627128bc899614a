package pantry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/freshness"
	domainpantry "github.com/readytocook/v1/internal/domain/pantry"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/pkg/errors"
)

type memoryIngredientRepo struct {
	items map[uuid.UUID]*domainpantry.Ingredient
}

func newMemoryIngredientRepo() *memoryIngredientRepo {
	return &memoryIngredientRepo{items: make(map[uuid.UUID]*domainpantry.Ingredient)}
}

func (r *memoryIngredientRepo) Create(_ context.Context, i *domainpantry.Ingredient) error {
	r.items[i.ID()] = i
	return nil
}

func (r *memoryIngredientRepo) Update(_ context.Context, i *domainpantry.Ingredient) error {
	r.items[i.ID()] = i
	return nil
}

func (r *memoryIngredientRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return domainpantry.ErrIngredientNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memoryIngredientRepo) FindByID(_ context.Context, _, id uuid.UUID) (*domainpantry.Ingredient, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, domainpantry.ErrIngredientNotFound
	}
	return i, nil
}

func (r *memoryIngredientRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*domainpantry.Ingredient, error) {
	out := make([]*domainpantry.Ingredient, 0, len(r.items))
	for _, i := range r.items {
		out = append(out, i)
	}
	return out, nil
}

func TestRegisterIngredient(t *testing.T) {
	userID := uuid.New()
	today := freshness.ToISODateString(freshness.Today())

	t.Run("expiration comes from the shelf-life table", func(t *testing.T) {
		repo := newMemoryIngredientRepo()
		svc := NewService(repo, zap.NewNop())

		dto, err := svc.RegisterIngredient(context.Background(), inbound.RegisterIngredientCommand{
			UserID:       userID,
			Name:         "Aguacate",
			Quantity:     2,
			Unit:         "piezas",
			PurchaseDate: today,
		})

		require.NoError(t, err)
		require.NotNil(t, dto.ExpirationDate)
		want := freshness.ToISODateString(freshness.AddDays(freshness.Today(), 4))
		assert.Equal(t, want, *dto.ExpirationDate)
		assert.Len(t, repo.items, 1)
	})

	t.Run("explicit expiration wins over the table", func(t *testing.T) {
		svc := NewService(newMemoryIngredientRepo(), zap.NewNop())
		manual := freshness.ToISODateString(freshness.AddDays(freshness.Today(), 30))

		dto, err := svc.RegisterIngredient(context.Background(), inbound.RegisterIngredientCommand{
			UserID:         userID,
			Name:           "Aguacate",
			Quantity:       2,
			Unit:           "piezas",
			PurchaseDate:   today,
			ExpirationDate: manual,
		})

		require.NoError(t, err)
		require.NotNil(t, dto.ExpirationDate)
		assert.Equal(t, manual, *dto.ExpirationDate)
	})

	t.Run("unknown food demands a manual date", func(t *testing.T) {
		svc := NewService(newMemoryIngredientRepo(), zap.NewNop())

		_, err := svc.RegisterIngredient(context.Background(), inbound.RegisterIngredientCommand{
			UserID:       userID,
			Name:         "Ambrosía",
			Quantity:     1,
			Unit:         "piezas",
			PurchaseDate: today,
		})

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeManualExpirationNeeded, appErr.Code)
	})

	t.Run("fractioned purchase with no safe shelf life demands a manual date", func(t *testing.T) {
		svc := NewService(newMemoryIngredientRepo(), zap.NewNop())

		_, err := svc.RegisterIngredient(context.Background(), inbound.RegisterIngredientCommand{
			UserID:       userID,
			Name:         "Plátanos",
			Quantity:     0.5,
			Unit:         "piezas",
			PurchaseDate: today,
		})

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeManualExpirationNeeded, appErr.Code)
	})

	t.Run("unit labels parse regardless of casing", func(t *testing.T) {
		svc := NewService(newMemoryIngredientRepo(), zap.NewNop())

		dto, err := svc.RegisterIngredient(context.Background(), inbound.RegisterIngredientCommand{
			UserID:       userID,
			Name:         "Leche",
			Quantity:     1,
			Unit:         "LITROS",
			PurchaseDate: today,
		})

		require.NoError(t, err)
		assert.Equal(t, "Litros", dto.Unit)
	})

	t.Run("unknown unit is rejected", func(t *testing.T) {
		svc := NewService(newMemoryIngredientRepo(), zap.NewNop())

		_, err := svc.RegisterIngredient(context.Background(), inbound.RegisterIngredientCommand{
			UserID:       userID,
			Name:         "Leche",
			Quantity:     1,
			Unit:         "tazas",
			PurchaseDate: today,
		})

		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
	})

	t.Run("bad purchase date is rejected", func(t *testing.T) {
		svc := NewService(newMemoryIngredientRepo(), zap.NewNop())

		_, err := svc.RegisterIngredient(context.Background(), inbound.RegisterIngredientCommand{
			UserID:       userID,
			Name:         "Leche",
			Quantity:     1,
			Unit:         "litros",
			PurchaseDate: "10/03/2025",
		})

		assert.Error(t, err)
	})
}

func TestUpdateIngredient(t *testing.T) {
	userID := uuid.New()
	repo := newMemoryIngredientRepo()
	svc := NewService(repo, zap.NewNop())

	exp := freshness.AddDays(freshness.Today(), 3)
	item, err := domainpantry.NewIngredient(userID, "Leche", 1, domainpantry.Litros, freshness.Today(), &exp)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), item))

	t.Run("only present fields change", func(t *testing.T) {
		qty := 2.0
		dto, err := svc.UpdateIngredient(context.Background(), inbound.UpdateIngredientCommand{
			UserID:       userID,
			IngredientID: item.ID(),
			Quantity:     &qty,
		})

		require.NoError(t, err)
		assert.Equal(t, 2.0, dto.Quantity)
		assert.Equal(t, "Leche", dto.Name)
	})

	t.Run("missing ingredient reports not found", func(t *testing.T) {
		_, err := svc.UpdateIngredient(context.Background(), inbound.UpdateIngredientCommand{
			UserID:       userID,
			IngredientID: uuid.New(),
		})

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, errors.CodeIngredientNotFound, appErr.Code)
	})
}

func TestListIngredientsOrdersByUrgency(t *testing.T) {
	userID := uuid.New()
	repo := newMemoryIngredientRepo()
	svc := NewService(repo, zap.NewNop())

	mk := func(name string, daysOut int) {
		exp := freshness.AddDays(freshness.Today(), daysOut)
		item, err := domainpantry.NewIngredient(userID, name, 1, domainpantry.Piezas, freshness.Today(), &exp)
		require.NoError(t, err)
		require.NoError(t, repo.Create(context.Background(), item))
	}
	mk("caduca pronto", 1)
	mk("caducado", -2)
	mk("fresco", 15)

	list, err := svc.ListIngredients(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "caduca pronto", list[0].Name)
	assert.True(t, list[0].IsPriority)
	assert.Equal(t, "fresco", list[1].Name)
	assert.Equal(t, "caducado", list[2].Name)
	assert.True(t, list[2].IsExpired)
}

func TestSuggestNames(t *testing.T) {
	svc := NewService(newMemoryIngredientRepo(), zap.NewNop())

	names := svc.SuggestNames(context.Background(), "agua")
	assert.Contains(t, names, "Aguacate")

	assert.Empty(t, svc.SuggestNames(context.Background(), "a"))
}
