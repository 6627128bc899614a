package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/freshness"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/pkg/errors"
)

// PantryHandlers handles inventory endpoints
type PantryHandlers struct {
	pantryService inbound.PantryService
	logger        *zap.Logger
}

// NewPantryHandlers creates a new pantry handlers instance
func NewPantryHandlers(pantryService inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{
		pantryService: pantryService,
		logger:        logger.Named("pantry-handlers"),
	}
}

type registerIngredientRequest struct {
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	PurchaseDate   string  `json:"purchaseDate"`
	ExpirationDate string  `json:"expirationDate"`
}

type updateIngredientRequest struct {
	Name           *string  `json:"name"`
	Quantity       *float64 `json:"quantity"`
	Unit           *string  `json:"unit"`
	ExpirationDate *string  `json:"expirationDate"`
}

// List handles GET /api/v1/ingredients
func (h *PantryHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}

	items, err := h.pantryService.ListIngredients(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// Create handles POST /api/v1/ingredients
func (h *PantryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}

	var req registerIngredientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	item, err := h.pantryService.RegisterIngredient(r.Context(), inbound.RegisterIngredientCommand{
		UserID:         userID,
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		PurchaseDate:   req.PurchaseDate,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: item})
}

// Update handles PATCH /api/v1/ingredients/{id}
func (h *PantryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}
	ingredientID, ok := pathUUID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req updateIngredientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	item, err := h.pantryService.UpdateIngredient(r.Context(), inbound.UpdateIngredientCommand{
		UserID:         userID,
		IngredientID:   ingredientID,
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: item})
}

// Delete handles DELETE /api/v1/ingredients/{id}
func (h *PantryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r, h.logger)
	if !ok {
		return
	}
	ingredientID, ok := pathUUID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.pantryService.DeleteIngredient(r.Context(), userID, ingredientID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "ingredient deleted"})
}

// Suggestions handles GET /api/v1/ingredients/suggestions?term=
func (h *PantryHandlers) Suggestions(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("term")
	names := h.pantryService.SuggestNames(r.Context(), term)
	if names == nil {
		names = []string{}
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: names})
}

// Expiration handles GET /api/v1/ingredients/expiration?name=&quantity=&purchaseDate=
func (h *PantryHandlers) Expiration(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		writeError(w, r, h.logger, errors.NewBadRequestError("name is required"))
		return
	}

	quantity := 1.0
	if raw := q.Get("quantity"); raw != "" {
		parsed, err := parseFloat(raw)
		if err != nil {
			writeError(w, r, h.logger, errors.NewBadRequestError("invalid quantity"))
			return
		}
		quantity = parsed
	}

	purchaseDate := q.Get("purchaseDate")
	if purchaseDate == "" {
		purchaseDate = freshness.ToISODateString(freshness.Today())
	}

	exp := h.pantryService.ResolveExpiration(r.Context(), inbound.ExpirationQuery{
		Name:         name,
		Quantity:     quantity,
		PurchaseDate: purchaseDate,
	})

	var data interface{}
	if exp != nil {
		data = map[string]string{"expirationDate": freshness.ToISODateString(*exp)}
	} else {
		data = map[string]interface{}{"expirationDate": nil}
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: data})
}
