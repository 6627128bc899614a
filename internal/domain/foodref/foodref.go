// Package foodref holds the static shelf-life reference table and the
// lookup rules built on top of it.
package foodref

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/readytocook/v1/internal/domain/freshness"
)

// Entry describes how long a food keeps, whole and once opened or cut.
// A count of zero means the food has no safe shelf life in that state and
// the expiration date must be entered manually.
type Entry struct {
	Name           string
	DaysWhole      int
	DaysFractioned int
	Category       string
}

const maxSuggestions = 5

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, trims and strips diacritics so that "Plátanos"
// and "platanos " compare equal.
func Normalize(name string) string {
	s, _, err := transform.String(stripDiacritics, name)
	if err != nil {
		s = name
	}
	return strings.TrimSpace(strings.ToLower(s))
}

// Search returns the table entry whose normalized name matches exactly,
// or nil when the food is unknown.
func Search(name string) *Entry {
	want := Normalize(name)
	for i := range table {
		if Normalize(table[i].Name) == want {
			return &table[i]
		}
	}
	return nil
}

// Suggestions returns up to five table names containing the search term.
// Terms shorter than two characters yield nothing.
func Suggestions(term string) []string {
	want := Normalize(term)
	if len([]rune(want)) < 2 {
		return nil
	}
	var out []string
	for i := range table {
		if strings.Contains(Normalize(table[i].Name), want) {
			out = append(out, table[i].Name)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// ExpirationDate computes the expiration date for a food bought on
// purchaseDate. Quantities below one unit use the fractioned shelf life.
// It returns nil when the food is unknown or has no safe shelf life, in
// which case the caller must ask for a manual date.
func ExpirationDate(purchaseDate time.Time, name string, quantity float64) *time.Time {
	entry := Search(name)
	if entry == nil {
		return nil
	}
	days := entry.DaysWhole
	if quantity < 1 {
		days = entry.DaysFractioned
	}
	if days <= 0 {
		return nil
	}
	d := freshness.AddDays(purchaseDate, days)
	return &d
}
