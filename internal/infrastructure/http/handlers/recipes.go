package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/ports/inbound"
)

// RecipeHandlers handles recipe generation endpoints
type RecipeHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		recipeService: recipeService,
		logger:        logger.Named("recipe-handlers"),
	}
}

type generateRecipesRequest struct {
	IngredientIDs   []uuid.UUID `json:"ingredientIds"`
	PendingDishIDs  []uuid.UUID `json:"pendingDishIds"`
	Categories      []string    `json:"categories"`
	MealTime        string      `json:"mealTime"`
	Servings        int         `json:"servings"`
	PriorityOnly    bool        `json:"priorityOnly"`
	Regenerate      bool        `json:"regenerate"`
	UsedRecipeNames []string    `json:"usedRecipeNames"`
}

// Generate handles POST /api/v1/recipes/generate
func (h *RecipeHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}

	var req generateRecipesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipes, err := h.recipeService.GenerateRecipes(r.Context(), inbound.GenerateRecipesCommand{
		UserID:          userID,
		IngredientIDs:   req.IngredientIDs,
		PendingDishIDs:  req.PendingDishIDs,
		Categories:      req.Categories,
		MealTime:        req.MealTime,
		Servings:        req.Servings,
		PriorityOnly:    req.PriorityOnly,
		Regenerate:      req.Regenerate,
		UsedRecipeNames: req.UsedRecipeNames,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: recipes})
}
