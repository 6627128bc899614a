package pantry

import "strings"

// Unit is a measurement unit for stored ingredients. The values are the
// Spanish labels used on the wire and in recipe payloads.
type Unit string

const (
	Piezas     Unit = "Piezas"
	Gramos     Unit = "Gramos"
	Kilogramos Unit = "Kilogramos"
	Mililitros Unit = "Mililitros"
	Litros     Unit = "Litros"
)

// ParseUnit resolves a unit label regardless of casing.
func ParseUnit(s string) (Unit, bool) {
	for _, u := range []Unit{Piezas, Gramos, Kilogramos, Mililitros, Litros} {
		if strings.EqualFold(s, string(u)) {
			return u, true
		}
	}
	return "", false
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	switch u {
	case Piezas, Gramos, Kilogramos, Mililitros, Litros:
		return true
	}
	return false
}

// Countable reports whether u counts whole items rather than a measured
// amount. Only countable units distinguish whole from fractioned stock.
func (u Unit) Countable() bool {
	return u == Piezas
}
