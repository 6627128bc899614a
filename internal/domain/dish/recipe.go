package dish

import "strings"

// RecipeLine is one ingredient of a generated recipe. Quantity stays a
// string because the model answers amounts like "Al gusto".
type RecipeLine struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// GeneratedRecipe is one recipe proposal as returned by the AI service.
type GeneratedRecipe struct {
	Name               string       `json:"name"`
	Categories         []string     `json:"categories"`
	Ingredients        []RecipeLine `json:"ingredients"`
	MissingIngredients []RecipeLine `json:"missingIngredients"`
	Instructions       []string     `json:"instructions"`
	PrepTime           int          `json:"prepTime"`
	Servings           int          `json:"servings"`
	PortionWarning     *string      `json:"portionWarning,omitempty"`
}

// Normalize validates the fields the rest of the app relies on and
// repairs nil slices so callers can range without nil checks.
func (r *GeneratedRecipe) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ErrNameRequired
	}
	if len(r.Instructions) == 0 {
		return ErrNoInstructions
	}
	if r.Categories == nil {
		r.Categories = []string{}
	}
	if r.Ingredients == nil {
		r.Ingredients = []RecipeLine{}
	}
	if r.MissingIngredients == nil {
		r.MissingIngredients = []RecipeLine{}
	}
	return nil
}

// MealTime selects which meal of the day a recipe is for.
type MealTime string

const (
	MealBreakfast MealTime = "Desayuno"
	MealLunch     MealTime = "Comida"
	MealDinner    MealTime = "Cena"
)

// Valid reports whether m is a recognized meal time.
func (m MealTime) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// Categories are the recipe styles a user may request.
var Categories = []string{
	"Snack",
	"Postre",
	"Saludable",
	"Rápida",
	"Internacional",
	"Mexicana",
	"Vegana",
	"Vegetariana",
	"Alta en proteína",
}

// ValidCategory reports whether c is one of the known recipe categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}
