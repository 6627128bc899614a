package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/readytocook/v1/internal/domain/pantry"
	"github.com/readytocook/v1/internal/ports/outbound"
)

// IngredientRepository implements the inventory repository using GORM
type IngredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) outbound.IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create persists a new inventory item
func (r *IngredientRepository) Create(ctx context.Context, ingredient *pantry.Ingredient) error {
	model := ingredientToModel(ingredient)

	result := dbFromContext(ctx, r.db).Create(model)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Update saves changes to an existing inventory item
func (r *IngredientRepository) Update(ctx context.Context, ingredient *pantry.Ingredient) error {
	model := ingredientToModel(ingredient)

	result := dbFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrIngredientNotFound
	}

	return nil
}

// Delete removes an inventory item
func (r *IngredientRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Delete(&IngredientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return pantry.ErrIngredientNotFound
	}

	return nil
}

// FindByID finds an inventory item by ID
func (r *IngredientRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*pantry.Ingredient, error) {
	var model IngredientModel

	result := dbFromContext(ctx, r.db).
		First(&model, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, pantry.ErrIngredientNotFound
		}
		return nil, result.Error
	}

	return ingredientToDomain(&model), nil
}

// FindByUser returns every inventory item of a user
func (r *IngredientRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*pantry.Ingredient, error) {
	var models []IngredientModel

	result := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	ingredients := make([]*pantry.Ingredient, len(models))
	for i := range models {
		ingredients[i] = ingredientToDomain(&models[i])
	}

	return ingredients, nil
}
