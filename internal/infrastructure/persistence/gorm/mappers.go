package gorm

import (
	"time"

	"github.com/readytocook/v1/internal/domain/dish"
	"github.com/readytocook/v1/internal/domain/freshness"
	"github.com/readytocook/v1/internal/domain/pantry"
	"github.com/readytocook/v1/internal/domain/user"
)

// Dates are pinned to noon before they hit the database. A date stored
// at midnight flips to the previous day when serialized through UTC in
// a western timezone; noon leaves a 12 hour margin either way.

func ingredientToModel(i *pantry.Ingredient) *IngredientModel {
	var exp *time.Time
	if e := i.ExpiresOn(); e != nil {
		noon := freshness.NormalizeToNoon(*e)
		exp = &noon
	}
	return &IngredientModel{
		ID:             i.ID(),
		UserID:         i.UserID(),
		Name:           i.Name(),
		Quantity:       i.Quantity(),
		Unit:           string(i.Unit()),
		PurchaseDate:   freshness.NormalizeToNoon(i.PurchaseDate()),
		ExpirationDate: exp,
		IsFractioned:   i.IsFractioned(),
		CreatedAt:      i.CreatedAt(),
		UpdatedAt:      i.UpdatedAt(),
	}
}

func ingredientToDomain(m *IngredientModel) *pantry.Ingredient {
	return pantry.Restore(
		m.ID,
		m.UserID,
		m.Name,
		m.Quantity,
		pantry.Unit(m.Unit),
		m.PurchaseDate,
		m.ExpirationDate,
		m.IsFractioned,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func pendingDishToModel(d *dish.PendingDish) *PendingDishModel {
	return &PendingDishModel{
		ID:             d.ID(),
		UserID:         d.UserID(),
		Name:           d.Name(),
		Ingredients:    IngredientLines(d.Ingredients()),
		Instructions:   StringSlice(d.Instructions()),
		ExpirationDate: freshness.NormalizeToNoon(d.ExpirationDate()),
		CreatedAt:      d.CreatedAt(),
	}
}

func pendingDishToDomain(m *PendingDishModel) *dish.PendingDish {
	return dish.RestorePendingDish(
		m.ID,
		m.UserID,
		m.Name,
		[]dish.UsedIngredient(m.Ingredients),
		[]string(m.Instructions),
		m.ExpirationDate,
		m.CreatedAt,
	)
}

func historyToModel(h *dish.HistoryEntry) *HistoryModel {
	return &HistoryModel{
		ID:           h.ID(),
		UserID:       h.UserID(),
		Name:         h.Name(),
		Ingredients:  IngredientLines(h.Ingredients()),
		Instructions: StringSlice(h.Instructions()),
		Categories:   StringSlice(h.Categories()),
		PrepTime:     h.PrepTime(),
		Servings:     h.Servings(),
		CompletedAt:  h.CompletedAt(),
		Favorite:     h.IsFavorite(),
	}
}

func historyToDomain(m *HistoryModel) *dish.HistoryEntry {
	return dish.RestoreHistoryEntry(
		m.ID,
		m.UserID,
		m.Name,
		[]dish.UsedIngredient(m.Ingredients),
		[]string(m.Instructions),
		[]string(m.Categories),
		m.PrepTime,
		m.Servings,
		m.CompletedAt,
		m.Favorite,
	)
}

func userToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
		LastLoginAt:  u.LastLoginAt(),
	}
}

func userToDomain(m *UserModel) *user.User {
	return user.Restore(
		m.ID,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.IsActive,
		m.CreatedAt,
		m.UpdatedAt,
		m.LastLoginAt,
	)
}
