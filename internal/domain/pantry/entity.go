// Package pantry contains the ingredient aggregate and the rules for
// registering and consuming stored food.
package pantry

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/readytocook/v1/internal/domain/freshness"
)

// Ingredient is a food item held in a user's kitchen inventory.
type Ingredient struct {
	id             uuid.UUID
	userID         uuid.UUID
	name           string
	quantity       float64
	unit           Unit
	purchaseDate   time.Time
	expirationDate *time.Time
	isFractioned   bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewIngredient validates and builds a new inventory item. The expiration
// date may be nil when the caller has not resolved one yet.
func NewIngredient(userID uuid.UUID, name string, quantity float64, unit Unit, purchaseDate time.Time, expirationDate *time.Time) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !unit.Valid() {
		return nil, ErrInvalidUnit
	}
	if purchaseDate.IsZero() {
		return nil, ErrZeroPurchaseDate
	}
	quantity = roundQuantity(quantity)
	now := time.Now()
	return &Ingredient{
		id:             uuid.New(),
		userID:         userID,
		name:           name,
		quantity:       quantity,
		unit:           unit,
		purchaseDate:   purchaseDate,
		expirationDate: expirationDate,
		isFractioned:   quantity < 1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// Restore rehydrates an ingredient from persistence without validation.
func Restore(id, userID uuid.UUID, name string, quantity float64, unit Unit, purchaseDate time.Time, expirationDate *time.Time, isFractioned bool, createdAt, updatedAt time.Time) *Ingredient {
	return &Ingredient{
		id:             id,
		userID:         userID,
		name:           name,
		quantity:       quantity,
		unit:           unit,
		purchaseDate:   purchaseDate,
		expirationDate: expirationDate,
		isFractioned:   isFractioned,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (i *Ingredient) ID() uuid.UUID            { return i.id }
func (i *Ingredient) UserID() uuid.UUID        { return i.userID }
func (i *Ingredient) Name() string             { return i.name }
func (i *Ingredient) Quantity() float64        { return i.quantity }
func (i *Ingredient) Unit() Unit               { return i.unit }
func (i *Ingredient) PurchaseDate() time.Time  { return i.purchaseDate }
func (i *Ingredient) ExpiresOn() *time.Time    { return i.expirationDate }
func (i *Ingredient) IsFractioned() bool       { return i.isFractioned }
func (i *Ingredient) CreatedAt() time.Time     { return i.createdAt }
func (i *Ingredient) UpdatedAt() time.Time     { return i.updatedAt }

// IsExpired reports whether the ingredient's expiration date is past.
func (i *Ingredient) IsExpired() bool {
	return freshness.IsExpired(i.expirationDate)
}

// IsPriority reports whether the ingredient should be used soon.
func (i *Ingredient) IsPriority() bool {
	return freshness.IsPriority(i.expirationDate)
}

// MatchesName compares names ignoring case and surrounding whitespace.
func (i *Ingredient) MatchesName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(i.name), strings.TrimSpace(name))
}

// ConsumeOutcome reports what a Consume call did to the ingredient.
type ConsumeOutcome struct {
	// Depleted means the stock reached zero and the item must be removed.
	Depleted bool
	// BecameFractioned means a countable item dropped below one whole
	// piece, so its shelf life may need recomputing.
	BecameFractioned bool
}

// Consume subtracts the used amount from the stored quantity.
func (i *Ingredient) Consume(used float64) (ConsumeOutcome, error) {
	if used <= 0 {
		return ConsumeOutcome{}, ErrInvalidUsedAmount
	}
	remaining := roundQuantity(i.quantity - used)
	if remaining <= 0 {
		return ConsumeOutcome{Depleted: true}, nil
	}
	wasWhole := !i.isFractioned
	i.quantity = remaining
	i.isFractioned = remaining < 1
	i.updatedAt = time.Now()
	return ConsumeOutcome{
		BecameFractioned: i.unit.Countable() && i.isFractioned && wasWhole,
	}, nil
}

// Reschedule replaces the expiration date, typically after a countable
// item is opened and its fractioned shelf life applies.
func (i *Ingredient) Reschedule(expirationDate time.Time) {
	i.expirationDate = &expirationDate
	i.updatedAt = time.Now()
}

// Rename changes the item's name.
func (i *Ingredient) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	i.name = name
	i.updatedAt = time.Now()
	return nil
}

// SetQuantity replaces the stored amount.
func (i *Ingredient) SetQuantity(quantity float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.quantity = roundQuantity(quantity)
	i.isFractioned = i.quantity < 1
	i.updatedAt = time.Now()
	return nil
}

// ChangeUnit replaces the measurement unit.
func (i *Ingredient) ChangeUnit(unit Unit) error {
	if !unit.Valid() {
		return ErrInvalidUnit
	}
	i.unit = unit
	i.updatedAt = time.Now()
	return nil
}

// roundQuantity keeps stored amounts at two decimal places.
func roundQuantity(q float64) float64 {
	return math.Round(q*100) / 100
}
