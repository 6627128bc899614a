// Package pantry provides the application layer for inventory management
// This implements the use cases defined in the inbound ports
package pantry

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/foodref"
	"github.com/readytocook/v1/internal/domain/freshness"
	"github.com/readytocook/v1/internal/domain/pantry"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/internal/ports/outbound"
	"github.com/readytocook/v1/pkg/errors"
)

// Service implements the inventory use cases
type Service struct {
	ingredientRepo outbound.IngredientRepository
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewService creates a new inventory service
func NewService(ingredientRepo outbound.IngredientRepository, logger *zap.Logger) inbound.PantryService {
	return &Service{
		ingredientRepo: ingredientRepo,
		validate:       validator.New(),
		logger:         logger.Named("pantry-service"),
	}
}

// RegisterIngredient adds a food item to the inventory. When the command
// carries no expiration date the shelf-life table computes one; unknown
// foods and foods without a safe shelf life require a manual date.
func (s *Service) RegisterIngredient(ctx context.Context, cmd inbound.RegisterIngredientCommand) (*inbound.IngredientDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	purchaseDate, err := freshness.ParseISODate(cmd.PurchaseDate)
	if err != nil {
		return nil, errors.NewValidationError("purchaseDate must be a YYYY-MM-DD date")
	}

	var expiration *time.Time
	if cmd.ExpirationDate != "" {
		parsed, err := freshness.ParseISODate(cmd.ExpirationDate)
		if err != nil {
			return nil, errors.NewValidationError("expirationDate must be a YYYY-MM-DD date")
		}
		expiration = &parsed
	} else {
		expiration = foodref.ExpirationDate(purchaseDate, cmd.Name, cmd.Quantity)
		if expiration == nil {
			return nil, errors.NewManualExpirationNeededError(cmd.Name)
		}
	}

	unit, ok := pantry.ParseUnit(cmd.Unit)
	if !ok {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown unit %q", cmd.Unit))
	}

	ingredient, err := pantry.NewIngredient(cmd.UserID, cmd.Name, cmd.Quantity, unit, purchaseDate, expiration)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, errors.NewDatabaseError("create ingredient", err)
	}

	s.logger.Info("ingredient registered",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("name", ingredient.Name()),
		zap.Float64("quantity", ingredient.Quantity()),
	)

	dto := toDTO(ingredient)
	return &dto, nil
}

// UpdateIngredient edits a stored item. Only the fields present in the
// command change.
func (s *Service) UpdateIngredient(ctx context.Context, cmd inbound.UpdateIngredientCommand) (*inbound.IngredientDTO, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	ingredient, err := s.ingredientRepo.FindByID(ctx, cmd.UserID, cmd.IngredientID)
	if err != nil {
		if err == pantry.ErrIngredientNotFound {
			return nil, errors.NewIngredientNotFoundError(cmd.IngredientID.String())
		}
		return nil, errors.NewDatabaseError("find ingredient", err)
	}

	if cmd.Name != nil {
		if err := ingredient.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Quantity != nil {
		if err := ingredient.SetQuantity(*cmd.Quantity); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Unit != nil {
		unit, ok := pantry.ParseUnit(*cmd.Unit)
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown unit %q", *cmd.Unit))
		}
		if err := ingredient.ChangeUnit(unit); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.ExpirationDate != nil {
		parsed, err := freshness.ParseISODate(*cmd.ExpirationDate)
		if err != nil {
			return nil, errors.NewValidationError("expirationDate must be a YYYY-MM-DD date")
		}
		ingredient.Reschedule(parsed)
	}

	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		return nil, errors.NewDatabaseError("update ingredient", err)
	}

	dto := toDTO(ingredient)
	return &dto, nil
}

// DeleteIngredient removes a stored item
func (s *Service) DeleteIngredient(ctx context.Context, userID, ingredientID uuid.UUID) error {
	if err := s.ingredientRepo.Delete(ctx, userID, ingredientID); err != nil {
		if err == pantry.ErrIngredientNotFound {
			return errors.NewIngredientNotFoundError(ingredientID.String())
		}
		return errors.NewDatabaseError("delete ingredient", err)
	}
	return nil
}

// ListIngredients returns the inventory ordered by urgency: items to use
// soon first, expired items last.
func (s *Service) ListIngredients(ctx context.Context, userID uuid.UUID) ([]inbound.IngredientDTO, error) {
	ingredients, err := s.ingredientRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list ingredients", err)
	}

	freshness.SortByUrgency(ingredients)

	dtos := make([]inbound.IngredientDTO, len(ingredients))
	for i, ing := range ingredients {
		dtos[i] = toDTO(ing)
	}
	return dtos, nil
}

// SuggestNames returns shelf-life table names matching the search term
func (s *Service) SuggestNames(ctx context.Context, term string) []string {
	return foodref.Suggestions(term)
}

// ResolveExpiration computes the expiration date the shelf-life table
// would assign, or nil when a manual date is needed.
func (s *Service) ResolveExpiration(ctx context.Context, q inbound.ExpirationQuery) *time.Time {
	purchaseDate, err := freshness.ParseISODate(q.PurchaseDate)
	if err != nil {
		return nil
	}
	return foodref.ExpirationDate(purchaseDate, q.Name, q.Quantity)
}

func toDTO(i *pantry.Ingredient) inbound.IngredientDTO {
	var expStr *string
	var daysLeft *int
	if e := i.ExpiresOn(); e != nil {
		s := freshness.ToISODateString(*e)
		expStr = &s
		if days, ok := freshness.DaysRemaining(e); ok {
			daysLeft = &days
		}
	}
	return inbound.IngredientDTO{
		ID:             i.ID(),
		Name:           i.Name(),
		Quantity:       i.Quantity(),
		Unit:           string(i.Unit()),
		PurchaseDate:   freshness.ToISODateString(i.PurchaseDate()),
		ExpirationDate: expStr,
		IsFractioned:   i.IsFractioned(),
		IsExpired:      i.IsExpired(),
		IsPriority:     i.IsPriority(),
		DaysRemaining:  daysLeft,
	}
}
