// Package inbound defines the use-case interfaces the HTTP layer drives.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/readytocook/v1/internal/domain/dish"
)

// PantryService manages the kitchen inventory.
type PantryService interface {
	// Commands
	RegisterIngredient(ctx context.Context, cmd RegisterIngredientCommand) (*IngredientDTO, error)
	UpdateIngredient(ctx context.Context, cmd UpdateIngredientCommand) (*IngredientDTO, error)
	DeleteIngredient(ctx context.Context, userID, ingredientID uuid.UUID) error

	// Queries
	ListIngredients(ctx context.Context, userID uuid.UUID) ([]IngredientDTO, error)
	SuggestNames(ctx context.Context, term string) []string
	ResolveExpiration(ctx context.Context, q ExpirationQuery) *time.Time
}

// RecipeService generates recipe proposals from the inventory.
type RecipeService interface {
	GenerateRecipes(ctx context.Context, cmd GenerateRecipesCommand) ([]dish.GeneratedRecipe, error)
}

// DishService drives the cooked-dish lifecycle and the history.
type DishService interface {
	// Commands
	CompleteDish(ctx context.Context, cmd CompleteDishCommand) (*CompletionReport, error)
	SavePendingDish(ctx context.Context, cmd CompleteDishCommand) (*CompletionReport, error)
	FinishPendingDish(ctx context.Context, userID, pendingID uuid.UUID) error
	DiscardPendingDish(ctx context.Context, userID, pendingID uuid.UUID) error
	ToggleFavorite(ctx context.Context, userID, historyID uuid.UUID) (*HistoryEntryDTO, error)
	DeleteHistoryEntry(ctx context.Context, userID, historyID uuid.UUID) error

	// Queries
	ListPendingDishes(ctx context.Context, userID uuid.UUID) ([]PendingDishDTO, error)
	ListHistory(ctx context.Context, userID uuid.UUID) ([]HistoryEntryDTO, error)
}

// AuthService handles accounts and tokens.
type AuthService interface {
	Register(ctx context.Context, cmd RegisterUserCommand) (*AuthResultDTO, error)
	Login(ctx context.Context, email, password string) (*AuthResultDTO, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResultDTO, error)
	// RequestPasswordReset issues a short-lived reset token for the
	// account. Unknown emails yield an empty token, not an error, so
	// the endpoint cannot be used to probe for registered addresses.
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// RegisterIngredientCommand adds a food item to the inventory.
type RegisterIngredientCommand struct {
	UserID         uuid.UUID
	Name           string  `validate:"required"`
	Quantity       float64 `validate:"required,gt=0"`
	Unit           string  `validate:"required"`
	PurchaseDate   string  `validate:"required"`
	ExpirationDate string
}

// UpdateIngredientCommand edits a stored item.
type UpdateIngredientCommand struct {
	UserID         uuid.UUID
	IngredientID   uuid.UUID
	Name           *string
	Quantity       *float64 `validate:"omitempty,gt=0"`
	Unit           *string
	ExpirationDate *string
}

// ExpirationQuery asks for the auto-computed expiration of a food.
type ExpirationQuery struct {
	Name         string
	Quantity     float64
	PurchaseDate string
}

// GenerateRecipesCommand requests recipe proposals. The user picks the
// inventory items and stored dishes to cook from; priority-only mode
// selects every soon-to-expire ingredient instead.
type GenerateRecipesCommand struct {
	UserID          uuid.UUID
	IngredientIDs   []uuid.UUID
	PendingDishIDs  []uuid.UUID
	Categories      []string `validate:"required,min=1"`
	MealTime        string   `validate:"required"`
	Servings        int      `validate:"gte=0"`
	PriorityOnly    bool
	Regenerate      bool
	UsedRecipeNames []string
}

// CompleteDishCommand reports a cooked recipe and its ingredient usage.
type CompleteDishCommand struct {
	UserID          uuid.UUID
	Recipe          dish.GeneratedRecipe
	UsedIngredients []UsedIngredientInput `validate:"required,dive"`
}

// UsedIngredientInput is one consumed inventory line. Quantities are
// adjusted in quarter steps, so anything below 0.25 is a client bug.
type UsedIngredientInput struct {
	Name     string  `validate:"required"`
	Quantity float64 `validate:"gte=0.25"`
	Unit     string  `validate:"required"`
}

// RegisterUserCommand creates an account.
type RegisterUserCommand struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,min=2,max=100"`
	Password string `validate:"required,min=8,max=128"`
}

// IngredientDTO is the wire shape of an inventory item.
type IngredientDTO struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	PurchaseDate   string    `json:"purchaseDate"`
	ExpirationDate *string   `json:"expirationDate"`
	IsFractioned   bool      `json:"isFractioned"`
	IsExpired      bool      `json:"isExpired"`
	IsPriority     bool      `json:"isPriority"`
	DaysRemaining  *int      `json:"daysRemaining"`
}

// PendingDishDTO is the wire shape of a stored cooked dish.
type PendingDishDTO struct {
	ID             uuid.UUID             `json:"id"`
	Name           string                `json:"name"`
	Ingredients    []dish.UsedIngredient `json:"ingredients"`
	Instructions   []string              `json:"instructions"`
	ExpirationDate string                `json:"expirationDate"`
	DaysRemaining  int                   `json:"daysRemaining"`
	IsExpired      bool                  `json:"isExpired"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// HistoryEntryDTO is the wire shape of a cooked-history record.
type HistoryEntryDTO struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Ingredients  []dish.UsedIngredient `json:"ingredients"`
	Instructions []string              `json:"instructions"`
	Categories   []string              `json:"categories"`
	PrepTime     *int                  `json:"prepTime"`
	Servings     int                   `json:"servings"`
	CompletedAt  time.Time             `json:"completedAt"`
	Favorite     bool                  `json:"favorite"`
}

// CompletionReport summarizes what cooking a dish did to the inventory.
type CompletionReport struct {
	HistoryID     uuid.UUID `json:"historyId"`
	PendingDishID *uuid.UUID `json:"pendingDishId,omitempty"`
	ShelfLifeDays *int       `json:"shelfLifeDays,omitempty"`
	Lines         []string   `json:"lines"`
}

// AuthResultDTO carries a logged-in user and their tokens.
type AuthResultDTO struct {
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
}
