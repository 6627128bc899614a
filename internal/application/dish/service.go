// Package dish provides the application layer for the cooked-dish
// lifecycle: completing recipes, storing leftovers and the history.
package dish

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/domain/freshness"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/internal/ports/outbound"
	"github.com/readytocook/v1/pkg/errors"
)

// Service implements the dish lifecycle use cases
type Service struct {
	ingredientRepo outbound.IngredientRepository
	pendingRepo    outbound.PendingDishRepository
	historyRepo    outbound.HistoryRepository
	aiService      outbound.AIService
	tx             outbound.TxManager
	validate       *validator.Validate
	logger         *zap.Logger
}

// NewService creates a new dish service
func NewService(
	ingredientRepo outbound.IngredientRepository,
	pendingRepo outbound.PendingDishRepository,
	historyRepo outbound.HistoryRepository,
	aiService outbound.AIService,
	tx outbound.TxManager,
	logger *zap.Logger,
) inbound.DishService {
	return &Service{
		ingredientRepo: ingredientRepo,
		pendingRepo:    pendingRepo,
		historyRepo:    historyRepo,
		aiService:      aiService,
		tx:             tx,
		validate:       validator.New(),
		logger:         logger.Named("dish-service"),
	}
}

// CompleteDish records a cooked recipe: the reported usage is subtracted
// from the inventory and a history entry is written, both inside one
// transaction so the inventory can never drift from the history.
func (s *Service) CompleteDish(ctx context.Context, cmd inbound.CompleteDishCommand) (*inbound.CompletionReport, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := cmd.Recipe.Normalize(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !dish.CanTransition(dish.StatusGenerated, dish.StatusCompleted) {
		return nil, errors.NewValidationError(dish.ErrInvalidStatusChange.Error())
	}

	report := &inbound.CompletionReport{}
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		lines, err := s.applyUsage(ctx, cmd.UserID, cmd.UsedIngredients)
		if err != nil {
			return err
		}
		report.Lines = lines

		entry, err := s.recordHistory(ctx, cmd)
		if err != nil {
			return err
		}
		report.HistoryID = entry.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("dish completed",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("dish", cmd.Recipe.Name),
	)
	return report, nil
}

// SavePendingDish records a cooked recipe and stores the dish for later.
// The model estimates how long the cooked dish keeps; the estimation
// never fails, so it happens before the transaction opens.
func (s *Service) SavePendingDish(ctx context.Context, cmd inbound.CompleteDishCommand) (*inbound.CompletionReport, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := cmd.Recipe.Normalize(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !dish.CanTransition(dish.StatusGenerated, dish.StatusPending) {
		return nil, errors.NewValidationError(dish.ErrInvalidStatusChange.Error())
	}

	names := make([]string, len(cmd.UsedIngredients))
	for i, u := range cmd.UsedIngredients {
		names[i] = u.Name
	}
	shelfLifeDays := s.aiService.EstimateShelfLife(ctx, names)

	report := &inbound.CompletionReport{ShelfLifeDays: &shelfLifeDays}
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		lines, err := s.applyUsage(ctx, cmd.UserID, cmd.UsedIngredients)
		if err != nil {
			return err
		}
		report.Lines = lines

		pending, err := dish.NewPendingDish(cmd.UserID, cmd.Recipe.Name, usedIngredients(cmd.UsedIngredients), cmd.Recipe.Instructions, shelfLifeDays)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := s.pendingRepo.Create(ctx, pending); err != nil {
			return errors.NewDatabaseError("create pending dish", err)
		}
		id := pending.ID()
		report.PendingDishID = &id

		// The cooked dish also enters the history right away so the
		// user's record stays complete even if the leftovers are
		// never marked as eaten.
		entry, err := s.recordHistory(ctx, cmd)
		if err != nil {
			return err
		}
		report.HistoryID = entry.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("dish stored for later",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("dish", cmd.Recipe.Name),
		zap.Int("shelf_life_days", shelfLifeDays),
	)
	return report, nil
}

// FinishPendingDish marks stored leftovers as eaten and removes them.
func (s *Service) FinishPendingDish(ctx context.Context, userID, pendingID uuid.UUID) error {
	if !dish.CanTransition(dish.StatusPending, dish.StatusFinished) {
		return errors.NewValidationError(dish.ErrInvalidStatusChange.Error())
	}
	if err := s.pendingRepo.Delete(ctx, userID, pendingID); err != nil {
		if err == dish.ErrPendingDishNotFound {
			return errors.NewPendingDishNotFoundError(pendingID.String())
		}
		return errors.NewDatabaseError("delete pending dish", err)
	}
	return nil
}

// DiscardPendingDish throws stored leftovers away.
func (s *Service) DiscardPendingDish(ctx context.Context, userID, pendingID uuid.UUID) error {
	if err := s.pendingRepo.Delete(ctx, userID, pendingID); err != nil {
		if err == dish.ErrPendingDishNotFound {
			return errors.NewPendingDishNotFoundError(pendingID.String())
		}
		return errors.NewDatabaseError("delete pending dish", err)
	}
	return nil
}

// ToggleFavorite flips the favorite mark on a history entry.
func (s *Service) ToggleFavorite(ctx context.Context, userID, historyID uuid.UUID) (*inbound.HistoryEntryDTO, error) {
	entry, err := s.historyRepo.FindByID(ctx, userID, historyID)
	if err != nil {
		if err == dish.ErrHistoryEntryNotFound {
			return nil, errors.NewHistoryEntryNotFoundError(historyID.String())
		}
		return nil, errors.NewDatabaseError("find history entry", err)
	}

	entry.ToggleFavorite()
	if err := s.historyRepo.Update(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("update history entry", err)
	}

	dto := historyDTO(entry)
	return &dto, nil
}

// DeleteHistoryEntry removes a record from the cooking history.
func (s *Service) DeleteHistoryEntry(ctx context.Context, userID, historyID uuid.UUID) error {
	if err := s.historyRepo.Delete(ctx, userID, historyID); err != nil {
		if err == dish.ErrHistoryEntryNotFound {
			return errors.NewHistoryEntryNotFoundError(historyID.String())
		}
		return errors.NewDatabaseError("delete history entry", err)
	}
	return nil
}

// ListPendingDishes returns stored dishes, soonest to expire first.
func (s *Service) ListPendingDishes(ctx context.Context, userID uuid.UUID) ([]inbound.PendingDishDTO, error) {
	dishes, err := s.pendingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list pending dishes", err)
	}

	dtos := make([]inbound.PendingDishDTO, len(dishes))
	for i, d := range dishes {
		dtos[i] = inbound.PendingDishDTO{
			ID:             d.ID(),
			Name:           d.Name(),
			Ingredients:    d.Ingredients(),
			Instructions:   d.Instructions(),
			ExpirationDate: freshness.ToISODateString(d.ExpirationDate()),
			DaysRemaining:  d.DaysRemaining(),
			IsExpired:      d.IsExpired(),
			CreatedAt:      d.CreatedAt(),
		}
	}
	return dtos, nil
}

// ListHistory returns the cooking history, most recent first.
func (s *Service) ListHistory(ctx context.Context, userID uuid.UUID) ([]inbound.HistoryEntryDTO, error) {
	entries, err := s.historyRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list history", err)
	}

	dtos := make([]inbound.HistoryEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = historyDTO(e)
	}
	return dtos, nil
}

func (s *Service) recordHistory(ctx context.Context, cmd inbound.CompleteDishCommand) (*dish.HistoryEntry, error) {
	var prepTime *int
	if cmd.Recipe.PrepTime > 0 {
		pt := cmd.Recipe.PrepTime
		prepTime = &pt
	}

	entry, err := dish.NewHistoryEntry(
		cmd.UserID,
		cmd.Recipe.Name,
		usedIngredients(cmd.UsedIngredients),
		cmd.Recipe.Instructions,
		cmd.Recipe.Categories,
		prepTime,
		cmd.Recipe.Servings,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.historyRepo.Create(ctx, entry); err != nil {
		return nil, errors.NewDatabaseError("create history entry", err)
	}
	return entry, nil
}

func usedIngredients(inputs []inbound.UsedIngredientInput) []dish.UsedIngredient {
	out := make([]dish.UsedIngredient, len(inputs))
	for i, in := range inputs {
		out[i] = dish.UsedIngredient{
			Name:     in.Name,
			Quantity: in.Quantity,
			Unit:     in.Unit,
		}
	}
	return out
}

func historyDTO(e *dish.HistoryEntry) inbound.HistoryEntryDTO {
	return inbound.HistoryEntryDTO{
		ID:           e.ID(),
		Name:         e.Name(),
		Ingredients:  e.Ingredients(),
		Instructions: e.Instructions(),
		Categories:   e.Categories(),
		PrepTime:     e.PrepTime(),
		Servings:     e.Servings(),
		CompletedAt:  e.CompletedAt(),
		Favorite:     e.IsFavorite(),
	}
}
