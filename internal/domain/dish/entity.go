// Package dish models cooked dishes: AI-generated recipes, leftovers
// waiting in the fridge, and the cooking history.
package dish

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/readytocook/v1/internal/domain/freshness"
)

// Status is the lifecycle state of a dish.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFinished  Status = "finished"
)

var transitions = map[Status][]Status{
	StatusGenerated: {StatusCompleted, StatusPending},
	StatusPending:   {StatusFinished},
}

// CanTransition reports whether a dish may move from one status to
// another. Completed and finished are terminal.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// UsedIngredient records how much of an inventory item a dish consumed.
type UsedIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// PendingDish is a cooked dish stored in the fridge to be eaten later.
type PendingDish struct {
	id             uuid.UUID
	userID         uuid.UUID
	name           string
	ingredients    []UsedIngredient
	instructions   []string
	expirationDate time.Time
	createdAt      time.Time
}

// NewPendingDish stores a cooked dish with a shelf life of the given
// number of days counted from now.
func NewPendingDish(userID uuid.UUID, name string, ingredients []UsedIngredient, instructions []string, shelfLifeDays int) (*PendingDish, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if shelfLifeDays < 1 {
		return nil, ErrInvalidShelfLifeDays
	}
	now := time.Now()
	return &PendingDish{
		id:             uuid.New(),
		userID:         userID,
		name:           name,
		ingredients:    ingredients,
		instructions:   instructions,
		expirationDate: freshness.AddDays(now, shelfLifeDays),
		createdAt:      now,
	}, nil
}

// RestorePendingDish rehydrates a pending dish from persistence.
func RestorePendingDish(id, userID uuid.UUID, name string, ingredients []UsedIngredient, instructions []string, expirationDate, createdAt time.Time) *PendingDish {
	return &PendingDish{
		id:             id,
		userID:         userID,
		name:           name,
		ingredients:    ingredients,
		instructions:   instructions,
		expirationDate: expirationDate,
		createdAt:      createdAt,
	}
}

func (p *PendingDish) ID() uuid.UUID                 { return p.id }
func (p *PendingDish) UserID() uuid.UUID             { return p.userID }
func (p *PendingDish) Name() string                  { return p.name }
func (p *PendingDish) Ingredients() []UsedIngredient { return p.ingredients }
func (p *PendingDish) Instructions() []string        { return p.instructions }
func (p *PendingDish) ExpirationDate() time.Time     { return p.expirationDate }
func (p *PendingDish) CreatedAt() time.Time          { return p.createdAt }

// ExpiresOn satisfies the urgency-sorting contract shared with inventory
// items.
func (p *PendingDish) ExpiresOn() *time.Time {
	return &p.expirationDate
}

// IsExpired reports whether the stored dish is past its shelf life.
func (p *PendingDish) IsExpired() bool {
	return freshness.IsExpired(&p.expirationDate)
}

// DaysRemaining counts the days left before the dish expires.
func (p *PendingDish) DaysRemaining() int {
	days, _ := freshness.DaysRemaining(&p.expirationDate)
	return days
}

// HistoryEntry is a cooked dish recorded in the user's cooking history.
type HistoryEntry struct {
	id           uuid.UUID
	userID       uuid.UUID
	name         string
	ingredients  []UsedIngredient
	instructions []string
	categories   []string
	prepTime     *int
	servings     int
	completedAt  time.Time
	favorite     bool
}

// NewHistoryEntry records a cooked dish. Servings default to two when
// the recipe did not say.
func NewHistoryEntry(userID uuid.UUID, name string, ingredients []UsedIngredient, instructions []string, categories []string, prepTime *int, servings int) (*HistoryEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if servings <= 0 {
		servings = 2
	}
	return &HistoryEntry{
		id:           uuid.New(),
		userID:       userID,
		name:         name,
		ingredients:  ingredients,
		instructions: instructions,
		categories:   categories,
		prepTime:     prepTime,
		servings:     servings,
		completedAt:  time.Now(),
		favorite:     false,
	}, nil
}

// RestoreHistoryEntry rehydrates a history entry from persistence.
func RestoreHistoryEntry(id, userID uuid.UUID, name string, ingredients []UsedIngredient, instructions []string, categories []string, prepTime *int, servings int, completedAt time.Time, favorite bool) *HistoryEntry {
	return &HistoryEntry{
		id:           id,
		userID:       userID,
		name:         name,
		ingredients:  ingredients,
		instructions: instructions,
		categories:   categories,
		prepTime:     prepTime,
		servings:     servings,
		completedAt:  completedAt,
		favorite:     favorite,
	}
}

func (h *HistoryEntry) ID() uuid.UUID                 { return h.id }
func (h *HistoryEntry) UserID() uuid.UUID             { return h.userID }
func (h *HistoryEntry) Name() string                  { return h.name }
func (h *HistoryEntry) Ingredients() []UsedIngredient { return h.ingredients }
func (h *HistoryEntry) Instructions() []string        { return h.instructions }
func (h *HistoryEntry) Categories() []string          { return h.categories }
func (h *HistoryEntry) PrepTime() *int                { return h.prepTime }
func (h *HistoryEntry) Servings() int                 { return h.servings }
func (h *HistoryEntry) CompletedAt() time.Time        { return h.completedAt }
func (h *HistoryEntry) IsFavorite() bool              { return h.favorite }

// ToggleFavorite flips the favorite mark.
func (h *HistoryEntry) ToggleFavorite() {
	h.favorite = !h.favorite
}
