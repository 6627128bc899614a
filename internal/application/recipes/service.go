// Package recipes provides the application layer for AI recipe
// generation.
package recipes

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/infrastructure/config"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/internal/ports/outbound"
	"github.com/readytocook/v1/pkg/errors"
)

const defaultServings = 2

// Service implements the recipe generation use cases
type Service struct {
	ingredientRepo outbound.IngredientRepository
	pendingRepo    outbound.PendingDishRepository
	aiService      outbound.AIService
	cache          outbound.CacheRepository
	limiter        *RateLimiter
	cfg            config.AIConfig
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewService creates a new recipe service
func NewService(
	ingredientRepo outbound.IngredientRepository,
	pendingRepo outbound.PendingDishRepository,
	aiService outbound.AIService,
	cache outbound.CacheRepository,
	limiter *RateLimiter,
	cfg config.AIConfig,
	logger *zap.Logger,
) inbound.RecipeService {
	return &Service{
		ingredientRepo: ingredientRepo,
		pendingRepo:    pendingRepo,
		aiService:      aiService,
		cache:          cache,
		limiter:        limiter,
		cfg:            cfg,
		validate:       validator.New(),
		logger:         logger.Named("recipe-service"),
	}
}

// GenerateRecipes asks the model for recipe proposals built from the
// user's inventory. The request is validated before any network call so
// a bad request never spends tokens.
func (s *Service) GenerateRecipes(ctx context.Context, cmd inbound.GenerateRecipesCommand) ([]dish.GeneratedRecipe, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !dish.MealTime(cmd.MealTime).Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown meal time %q", cmd.MealTime))
	}
	for _, c := range cmd.Categories {
		if !dish.ValidCategory(c) {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown category %q", c))
		}
	}
	if !cmd.PriorityOnly && len(cmd.IngredientIDs)+len(cmd.PendingDishIDs) == 0 {
		return nil, errors.NewValidationError("select at least one ingredient or stored dish")
	}
	if cmd.Servings <= 0 {
		cmd.Servings = defaultServings
	}

	if s.limiter != nil && !s.limiter.Allow(cmd.UserID) {
		return nil, errors.NewAppError(errors.CodeTooManyRequests, "Too many generation requests", "Wait a moment before generating another recipe")
	}

	items, err := s.promptItems(ctx, cmd)
	if err != nil {
		return nil, err
	}

	req := outbound.GenerationRequest{
		Items:           items,
		Categories:      cmd.Categories,
		MealTime:        cmd.MealTime,
		Servings:        cmd.Servings,
		PriorityOnly:    cmd.PriorityOnly,
		Regenerate:      cmd.Regenerate,
		UsedRecipeNames: cmd.UsedRecipeNames,
	}

	// Regeneration must reach the model; a cache hit would hand back
	// the very recipe the user rejected.
	cacheKey := s.cacheKey(cmd, items)
	if s.cfg.EnableCache && !cmd.Regenerate && s.cache != nil {
		var cached []dish.GeneratedRecipe
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
			s.logger.Debug("recipe cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
	}

	recipes, err := s.aiService.GenerateRecipes(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.cfg.EnableCache && s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, recipes, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("failed to cache recipes", zap.Error(err))
		}
	}

	return recipes, nil
}

// promptItems builds the inventory lines for the prompt from the
// user's selection. Expired items never reach the model; priority-only
// mode takes every soon-to-expire ingredient instead of the selection.
func (s *Service) promptItems(ctx context.Context, cmd inbound.GenerateRecipesCommand) ([]outbound.PromptItem, error) {
	ingredients, err := s.ingredientRepo.FindByUser(ctx, cmd.UserID)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredients", err)
	}

	selected := make(map[uuid.UUID]bool, len(cmd.IngredientIDs))
	for _, id := range cmd.IngredientIDs {
		selected[id] = true
	}

	var items []outbound.PromptItem
	for _, ing := range ingredients {
		if ing.IsExpired() {
			continue
		}
		if cmd.PriorityOnly {
			if !ing.IsPriority() {
				continue
			}
		} else if !selected[ing.ID()] {
			continue
		}
		items = append(items, outbound.PromptItem{
			Name:     ing.Name(),
			Quantity: formatQuantity(ing.Quantity()),
			Unit:     string(ing.Unit()),
		})
	}

	// Selected leftovers count as one-portion items unless they have
	// already expired or the user asked for priority ingredients only.
	if !cmd.PriorityOnly && len(cmd.PendingDishIDs) > 0 && s.pendingRepo != nil {
		wanted := make(map[uuid.UUID]bool, len(cmd.PendingDishIDs))
		for _, id := range cmd.PendingDishIDs {
			wanted[id] = true
		}
		pending, err := s.pendingRepo.FindByUser(ctx, cmd.UserID)
		if err != nil {
			return nil, errors.NewDatabaseError("list pending dishes", err)
		}
		for _, p := range pending {
			if p.IsExpired() || !wanted[p.ID()] {
				continue
			}
			items = append(items, outbound.PromptItem{
				Name:     p.Name(),
				Quantity: "1",
				Unit:     "porción",
			})
		}
	}

	if len(items) == 0 {
		if cmd.PriorityOnly {
			return nil, errors.NewValidationError("no priority ingredients available")
		}
		return nil, errors.NewValidationError("no usable ingredients in the inventory")
	}

	return items, nil
}

func (s *Service) cacheKey(cmd inbound.GenerateRecipesCommand, items []outbound.PromptItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.Name)
		b.WriteString("|")
		b.WriteString(item.Quantity)
		b.WriteString("|")
	}
	b.WriteString(strings.Join(cmd.Categories, ","))
	b.WriteString("|")
	b.WriteString(cmd.MealTime)
	b.WriteString("|")
	b.WriteString(strconv.Itoa(cmd.Servings))
	b.WriteString("|")
	b.WriteString(strconv.FormatBool(cmd.PriorityOnly))

	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("recipes:%s:%s", cmd.UserID, hex.EncodeToString(sum[:8]))
}

// formatQuantity prints stored amounts without trailing zeros.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
