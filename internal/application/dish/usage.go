package dish

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readytocook/v1/internal/domain/foodref"
	"github.com/readytocook/v1/internal/domain/pantry"
	"github.com/readytocook/v1/internal/ports/inbound"
	"github.com/readytocook/v1/pkg/errors"
)

// applyUsage subtracts the reported amounts from the user's inventory
// and returns one Spanish report line per matched ingredient. Recipe
// lines that match nothing in the inventory are skipped without an
// error: the model sometimes names staples the user never registered.
func (s *Service) applyUsage(ctx context.Context, userID uuid.UUID, used []inbound.UsedIngredientInput) ([]string, error) {
	inventory, err := s.ingredientRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load inventory", err)
	}

	lines := make([]string, 0, len(used))
	for _, u := range used {
		item := matchByName(inventory, u.Name)
		if item == nil {
			s.logger.Debug("used ingredient not in inventory, skipping",
				zap.String("name", u.Name),
			)
			continue
		}

		outcome, err := item.Consume(u.Quantity)
		if err != nil {
			if err == pantry.ErrInvalidUsedAmount {
				return nil, errors.NewValidationError(fmt.Sprintf("invalid used amount for %s", u.Name))
			}
			return nil, err
		}

		if outcome.Depleted {
			if err := s.ingredientRepo.Delete(ctx, userID, item.ID()); err != nil {
				return nil, errors.NewDatabaseError("delete depleted ingredient", err)
			}
			lines = append(lines, fmt.Sprintf("%s: Usadas 🥳 (se acabó)", item.Name()))
			continue
		}

		if outcome.BecameFractioned {
			// An opened piece spoils on its own clock, counted from
			// the purchase date with the fractioned shelf life when
			// the reference table knows one.
			if exp := foodref.ExpirationDate(item.PurchaseDate(), item.Name(), item.Quantity()); exp != nil {
				item.Reschedule(*exp)
			}
		}

		if err := s.ingredientRepo.Update(ctx, item); err != nil {
			return nil, errors.NewDatabaseError("update ingredient", err)
		}
		lines = append(lines, fmt.Sprintf("%s: %s %s usadas", item.Name(), formatQuantity(u.Quantity), u.Unit))
	}
	return lines, nil
}

func matchByName(inventory []*pantry.Ingredient, name string) *pantry.Ingredient {
	for _, item := range inventory {
		if item.MatchesName(name) {
			return item
		}
	}
	return nil
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
