package recipes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/domain/freshness"
	"github.com/readytocook/v1/internal/domain/pantry"
	"github.com/readytocook/v1/internal/infrastructure/config"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/internal/ports/outbound"
	"github.com/readytocook/v1/pkg/errors"
)

type stubIngredientRepo struct {
	ingredients []*pantry.Ingredient
}

func (r *stubIngredientRepo) Create(context.Context, *pantry.Ingredient) error { return nil }
func (r *stubIngredientRepo) Update(context.Context, *pantry.Ingredient) error { return nil }
func (r *stubIngredientRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (r *stubIngredientRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*pantry.Ingredient, error) {
	return nil, pantry.ErrIngredientNotFound
}
func (r *stubIngredientRepo) FindByUser(context.Context, uuid.UUID) ([]*pantry.Ingredient, error) {
	return r.ingredients, nil
}

type recordingAIService struct {
	lastRequest *outbound.GenerationRequest
	calls       int
	recipes     []dish.GeneratedRecipe
}

func (s *recordingAIService) GenerateRecipes(_ context.Context, req outbound.GenerationRequest) ([]dish.GeneratedRecipe, error) {
	s.calls++
	s.lastRequest = &req
	return s.recipes, nil
}

func (s *recordingAIService) EstimateShelfLife(context.Context, []string) int { return 3 }

func (s *recordingAIService) ProxyChatCompletion(context.Context, []byte) (int, []byte, error) {
	return 200, nil, nil
}

type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{data: make(map[string][]byte)} }

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := c.data[key]
	if !ok {
		return errors.NewNotFoundError("cache key")
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.data[key]
	return ok, nil
}

func ingredientExpiring(t *testing.T, userID uuid.UUID, name string, daysOut int) *pantry.Ingredient {
	t.Helper()
	exp := freshness.AddDays(freshness.Today(), daysOut)
	item, err := pantry.NewIngredient(userID, name, 1, pantry.Piezas, freshness.Today(), &exp)
	require.NoError(t, err)
	return item
}

func testService(repo *stubIngredientRepo, ai *recordingAIService, cache outbound.CacheRepository, enableCache bool) inbound.RecipeService {
	return NewService(repo, nil, ai, cache, nil, config.AIConfig{
		EnableCache: enableCache,
		CacheTTL:    10 * time.Minute,
	}, zap.NewNop())
}

type stubPendingRepo struct {
	dishes []*dish.PendingDish
}

func (r *stubPendingRepo) Create(context.Context, *dish.PendingDish) error { return nil }
func (r *stubPendingRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return nil
}
func (r *stubPendingRepo) FindByID(context.Context, uuid.UUID, uuid.UUID) (*dish.PendingDish, error) {
	return nil, dish.ErrPendingDishNotFound
}
func (r *stubPendingRepo) FindByUser(context.Context, uuid.UUID) ([]*dish.PendingDish, error) {
	return r.dishes, nil
}

func pendingExpiring(userID uuid.UUID, name string, daysOut int) *dish.PendingDish {
	exp := freshness.AddDays(freshness.Today(), daysOut)
	return dish.RestorePendingDish(uuid.New(), userID, name, nil, nil, exp, freshness.Today())
}

func TestGenerateRecipesFiltering(t *testing.T) {
	userID := uuid.New()

	t.Run("only the selected items reach the model", func(t *testing.T) {
		milk := ingredientExpiring(t, userID, "Leche", 2)
		rice := ingredientExpiring(t, userID, "Arroz", 30)
		repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{milk, rice}}
		ai := &recordingAIService{recipes: []dish.GeneratedRecipe{{Name: "Batido"}}}
		svc := testService(repo, ai, nil, false)

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:        userID,
			IngredientIDs: []uuid.UUID{milk.ID()},
			Categories:    []string{"Saludable"},
			MealTime:      "Desayuno",
		})

		require.NoError(t, err)
		require.NotNil(t, ai.lastRequest)
		require.Len(t, ai.lastRequest.Items, 1)
		assert.Equal(t, "Leche", ai.lastRequest.Items[0].Name)
	})

	t.Run("expired items never reach the model even when selected", func(t *testing.T) {
		milk := ingredientExpiring(t, userID, "Leche", 2)
		yogurt := ingredientExpiring(t, userID, "Yogur", -1)
		repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{milk, yogurt}}
		ai := &recordingAIService{recipes: []dish.GeneratedRecipe{{Name: "Batido"}}}
		svc := testService(repo, ai, nil, false)

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:        userID,
			IngredientIDs: []uuid.UUID{milk.ID(), yogurt.ID()},
			Categories:    []string{"Saludable"},
			MealTime:      "Desayuno",
		})

		require.NoError(t, err)
		require.Len(t, ai.lastRequest.Items, 1)
		assert.Equal(t, "Leche", ai.lastRequest.Items[0].Name)
	})

	t.Run("empty selection is rejected before any call", func(t *testing.T) {
		repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{
			ingredientExpiring(t, userID, "Leche", 2),
		}}
		ai := &recordingAIService{}
		svc := testService(repo, ai, nil, false)

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:     userID,
			Categories: []string{"Saludable"},
			MealTime:   "Desayuno",
		})

		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
		assert.Equal(t, 0, ai.calls)
	})

	t.Run("missing categories are rejected before any call", func(t *testing.T) {
		milk := ingredientExpiring(t, userID, "Leche", 2)
		repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{milk}}
		ai := &recordingAIService{}
		svc := testService(repo, ai, nil, false)

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:        userID,
			IngredientIDs: []uuid.UUID{milk.ID()},
			MealTime:      "Desayuno",
		})

		assert.Equal(t, errors.CodeValidationFailed, errors.GetCode(err))
		assert.Equal(t, 0, ai.calls)
	})

	t.Run("selected leftovers enter the pool as single portions", func(t *testing.T) {
		milk := ingredientExpiring(t, userID, "Leche", 2)
		repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{milk}}
		soup := pendingExpiring(userID, "Sopa de fideo", 2)
		stale := pendingExpiring(userID, "Guisado", -1)
		pending := &stubPendingRepo{dishes: []*dish.PendingDish{soup, stale}}
		ai := &recordingAIService{recipes: []dish.GeneratedRecipe{{Name: "Sopa completa"}}}
		svc := NewService(repo, pending, ai, nil, nil, config.AIConfig{}, zap.NewNop())

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:         userID,
			IngredientIDs:  []uuid.UUID{milk.ID()},
			PendingDishIDs: []uuid.UUID{soup.ID(), stale.ID()},
			Categories:     []string{"Rápida"},
			MealTime:       "Comida",
		})

		require.NoError(t, err)
		require.Len(t, ai.lastRequest.Items, 2)
		assert.Equal(t, "Sopa de fideo", ai.lastRequest.Items[1].Name)
		assert.Equal(t, "1", ai.lastRequest.Items[1].Quantity)
		assert.Equal(t, "porción", ai.lastRequest.Items[1].Unit)
	})

	t.Run("priority-only narrows to the soon-to-expire", func(t *testing.T) {
		repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{
			ingredientExpiring(t, userID, "Leche", 2),
			ingredientExpiring(t, userID, "Arroz", 30),
		}}
		ai := &recordingAIService{recipes: []dish.GeneratedRecipe{{Name: "Arroz con leche"}}}
		svc := testService(repo, ai, nil, false)

		// Priority mode needs no explicit selection.
		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:       userID,
			Categories:   []string{"Saludable"},
			MealTime:     "Comida",
			PriorityOnly: true,
		})

		require.NoError(t, err)
		require.Len(t, ai.lastRequest.Items, 1)
		assert.Equal(t, "Leche", ai.lastRequest.Items[0].Name)
	})

	t.Run("selection of only expired items is rejected before any call", func(t *testing.T) {
		yogurt := ingredientExpiring(t, userID, "Yogur", -1)
		repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{yogurt}}
		ai := &recordingAIService{}
		svc := testService(repo, ai, nil, false)

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:        userID,
			IngredientIDs: []uuid.UUID{yogurt.ID()},
			Categories:    []string{"Saludable"},
			MealTime:      "Cena",
		})

		assert.Error(t, err)
		assert.Equal(t, 0, ai.calls)
	})

	t.Run("servings default to two", func(t *testing.T) {
		milk := ingredientExpiring(t, userID, "Leche", 2)
		repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{milk}}
		ai := &recordingAIService{recipes: []dish.GeneratedRecipe{{Name: "Batido"}}}
		svc := testService(repo, ai, nil, false)

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:        userID,
			IngredientIDs: []uuid.UUID{milk.ID()},
			Categories:    []string{"Saludable"},
			MealTime:      "Desayuno",
		})

		require.NoError(t, err)
		assert.Equal(t, 2, ai.lastRequest.Servings)
	})

	t.Run("unknown meal time is rejected", func(t *testing.T) {
		svc := testService(&stubIngredientRepo{}, &recordingAIService{}, nil, false)

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:     userID,
			Categories: []string{"Saludable"},
			MealTime:   "Merienda",
		})

		assert.Error(t, err)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		svc := testService(&stubIngredientRepo{}, &recordingAIService{}, nil, false)

		_, err := svc.GenerateRecipes(context.Background(), inbound.GenerateRecipesCommand{
			UserID:     userID,
			MealTime:   "Comida",
			Categories: []string{"Marciana"},
		})

		assert.Error(t, err)
	})
}

func TestGenerateRecipesCaching(t *testing.T) {
	userID := uuid.New()
	milk := ingredientExpiring(t, userID, "Leche", 2)
	repo := &stubIngredientRepo{ingredients: []*pantry.Ingredient{milk}}
	cmd := inbound.GenerateRecipesCommand{
		UserID:        userID,
		IngredientIDs: []uuid.UUID{milk.ID()},
		Categories:    []string{"Saludable"},
		MealTime:      "Desayuno",
	}

	t.Run("second identical request is served from cache", func(t *testing.T) {
		ai := &recordingAIService{recipes: []dish.GeneratedRecipe{{Name: "Batido", Instructions: []string{"Licuar"}}}}
		svc := testService(repo, ai, newMemoryCache(), true)

		_, err := svc.GenerateRecipes(context.Background(), cmd)
		require.NoError(t, err)
		_, err = svc.GenerateRecipes(context.Background(), cmd)
		require.NoError(t, err)

		assert.Equal(t, 1, ai.calls)
	})

	t.Run("regeneration bypasses the cache", func(t *testing.T) {
		ai := &recordingAIService{recipes: []dish.GeneratedRecipe{{Name: "Batido", Instructions: []string{"Licuar"}}}}
		svc := testService(repo, ai, newMemoryCache(), true)

		_, err := svc.GenerateRecipes(context.Background(), cmd)
		require.NoError(t, err)

		regen := cmd
		regen.Regenerate = true
		_, err = svc.GenerateRecipes(context.Background(), regen)
		require.NoError(t, err)

		assert.Equal(t, 2, ai.calls)
		assert.True(t, ai.lastRequest.Regenerate)
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(10, 2, time.Minute)
	userID := uuid.New()

	assert.True(t, limiter.Allow(userID))
	assert.True(t, limiter.Allow(userID))
	assert.False(t, limiter.Allow(userID))

	// A different user has an untouched budget.
	assert.True(t, limiter.Allow(uuid.New()))
}
