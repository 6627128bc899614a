package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/ports/outbound"
)

// PendingDishRepository implements the stored-dish repository using GORM
type PendingDishRepository struct {
	db *gorm.DB
}

// NewPendingDishRepository creates a new pending dish repository
func NewPendingDishRepository(db *gorm.DB) outbound.PendingDishRepository {
	return &PendingDishRepository{db: db}
}

// Create persists a new stored dish
func (r *PendingDishRepository) Create(ctx context.Context, d *dish.PendingDish) error {
	model := pendingDishToModel(d)

	result := dbFromContext(ctx, r.db).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes a stored dish
func (r *PendingDishRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&PendingDishModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return dish.ErrPendingDishNotFound
	}

	return nil
}

// FindByID finds a stored dish by ID
func (r *PendingDishRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*dish.PendingDish, error) {
	var model PendingDishModel

	result := dbFromContext(ctx, r.db).
		First(&model, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, dish.ErrPendingDishNotFound
		}
		return nil, result.Error
	}

	return pendingDishToDomain(&model), nil
}

// FindByUser returns every stored dish of a user, soonest to expire first
func (r *PendingDishRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*dish.PendingDish, error) {
	var models []PendingDishModel

	result := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("expiration_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	dishes := make([]*dish.PendingDish, len(models))
	for i := range models {
		dishes[i] = pendingDishToDomain(&models[i])
	}

	return dishes, nil
}

// HistoryRepository implements the cooking-history repository using GORM
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) outbound.HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create persists a new history entry
func (r *HistoryRepository) Create(ctx context.Context, entry *dish.HistoryEntry) error {
	model := historyToModel(entry)

	result := dbFromContext(ctx, r.db).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update saves changes to an existing history entry
func (r *HistoryRepository) Update(ctx context.Context, entry *dish.HistoryEntry) error {
	model := historyToModel(entry)

	result := dbFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return dish.ErrHistoryEntryNotFound
	}

	return nil
}

// Delete removes a history entry
func (r *HistoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&HistoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return dish.ErrHistoryEntryNotFound
	}

	return nil
}

// FindByID finds a history entry by ID
func (r *HistoryRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*dish.HistoryEntry, error) {
	var model HistoryModel

	result := dbFromContext(ctx, r.db).
		First(&model, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, dish.ErrHistoryEntryNotFound
		}
		return nil, result.Error
	}

	return historyToDomain(&model), nil
}

// FindByUser returns a user's cooking history, most recent first
func (r *HistoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*dish.HistoryEntry, error) {
	var models []HistoryModel

	result := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("completed_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*dish.HistoryEntry, len(models))
	for i := range models {
		entries[i] = historyToDomain(&models[i])
	}

	return entries, nil
}
