package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/ports/inbound"
)

// DishHandlers handles cooked-dish and history endpoints
type DishHandlers struct {
	dishService inbound.DishService
	logger      *zap.Logger
}

// NewDishHandlers creates a new dish handlers instance
func NewDishHandlers(dishService inbound.DishService, logger *zap.Logger) *DishHandlers {
	return &DishHandlers{
		dishService: dishService,
		logger:      logger.Named("dish-handlers"),
	}
}

type completeDishRequest struct {
	Recipe          dish.GeneratedRecipe         `json:"recipe"`
	UsedIngredients []inbound.UsedIngredientInput `json:"usedIngredients"`
}

// Complete handles POST /api/v1/dishes/complete
func (h *DishHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	h.finishRecipe(w, r, h.dishService.CompleteDish)
}

// SavePending handles POST /api/v1/dishes/pending
func (h *DishHandlers) SavePending(w http.ResponseWriter, r *http.Request) {
	h.finishRecipe(w, r, h.dishService.SavePendingDish)
}

func (h *DishHandlers) finishRecipe(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, cmd inbound.CompleteDishCommand) (*inbound.CompletionReport, error)) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}

	var req completeDishRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	report, err := action(r.Context(), inbound.CompleteDishCommand{
		UserID:          userID,
		Recipe:          req.Recipe,
		UsedIngredients: req.UsedIngredients,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: report})
}

// ListPending handles GET /api/v1/dishes/pending
func (h *DishHandlers) ListPending(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}

	dishes, err := h.dishService.ListPendingDishes(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: dishes})
}

// FinishPending handles POST /api/v1/dishes/pending/{id}/finish
func (h *DishHandlers) FinishPending(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}
	pendingID, ok := pathUUID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.dishService.FinishPendingDish(r.Context(), userID, pendingID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "dish finished"})
}

// DiscardPending handles DELETE /api/v1/dishes/pending/{id}
func (h *DishHandlers) DiscardPending(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}
	pendingID, ok := pathUUID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.dishService.DiscardPendingDish(r.Context(), userID, pendingID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "dish discarded"})
}

// ListHistory handles GET /api/v1/history
func (h *DishHandlers) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}

	entries, err := h.dishService.ListHistory(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: entries})
}

// ToggleFavorite handles POST /api/v1/history/{id}/favorite
func (h *DishHandlers) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}
	historyID, ok := pathUUID(w, r, h.logger, "id")
	if !ok {
		return
	}

	entry, err := h.dishService.ToggleFavorite(r.Context(), userID, historyID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: entry})
}

// DeleteHistory handles DELETE /api/v1/history/{id}
func (h *DishHandlers) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}
	historyID, ok := pathUUID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.dishService.DeleteHistoryEntry(r.Context(), userID, historyID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "history entry deleted"})
}
