// Package outbound declares the interfaces the application layer needs
// from persistence, caching and external services.
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/domain/pantry"
	"github.com/readytocook/v1/internal/domain/user"
)

// IngredientRepository persists kitchen inventory items.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *pantry.Ingredient) error
	Update(ctx context.Context, ingredient *pantry.Ingredient) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*pantry.Ingredient, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.Ingredient, error)
}

// PendingDishRepository persists cooked dishes stored for later.
type PendingDishRepository interface {
	Create(ctx context.Context, d *dish.PendingDish) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*dish.PendingDish, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*dish.PendingDish, error)
}

// HistoryRepository persists the cooking history.
type HistoryRepository interface {
	Create(ctx context.Context, entry *dish.HistoryEntry) error
	Update(ctx context.Context, entry *dish.HistoryEntry) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*dish.HistoryEntry, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*dish.HistoryEntry, error)
}

// UserRepository persists accounts.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	Exists(ctx context.Context, email string) (bool, error)
}

// TxManager runs a function inside a database transaction. Repository
// calls made with the ctx it passes join that transaction, so inventory
// decrements and the matching history write commit or roll back as one.
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CacheRepository is a TTL key-value store.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// PromptItem is one inventory line handed to the recipe model.
type PromptItem struct {
	Name     string
	Quantity string
	Unit     string
}

// GenerationRequest carries everything the AI service needs to propose
// recipes.
type GenerationRequest struct {
	Items           []PromptItem
	Categories      []string
	MealTime        string
	Servings        int
	PriorityOnly    bool
	Regenerate      bool
	UsedRecipeNames []string
}

// AIService talks to the language model.
type AIService interface {
	// GenerateRecipes asks for recipe proposals built from the given
	// inventory.
	GenerateRecipes(ctx context.Context, req GenerationRequest) ([]dish.GeneratedRecipe, error)
	// EstimateShelfLife asks how many days a cooked dish keeps. It never
	// fails: any error or unparseable reply yields the default of 3 days.
	EstimateShelfLife(ctx context.Context, ingredientNames []string) int
	// ProxyChatCompletion forwards a raw chat-completion payload to the
	// provider under the server-held key and returns the provider's
	// status code and body untouched.
	ProxyChatCompletion(ctx context.Context, payload []byte) (int, []byte, error)
}
