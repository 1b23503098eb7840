// Package units holds the process-wide weight unit policy. A Unit selects
// the default plate and bar denomination sets and the display suffix; it
// never changes resolver arithmetic, which treats weights as unit-agnostic
// numbers.
package units

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a weight display unit.
type Unit string

const (
	Kilograms Unit = "kg"
	Pounds    Unit = "lbs"
)

// PoundsPerKilogram is the conversion factor used by the unit converter.
const PoundsPerKilogram = 2.20462

// Suffix returns the display suffix for the unit.
func (u Unit) Suffix() string {
	return string(u)
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	return u == Kilograms || u == Pounds
}

// Parse maps a user-supplied unit name to a Unit.
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kgs", "kilogram", "kilograms":
		return Kilograms, nil
	case "lb", "lbs", "pound", "pounds":
		return Pounds, nil
	}
	return "", fmt.Errorf("unknown unit %q", s)
}

// Convert converts value between units, rounded to two decimal places.
// Converting a unit to itself returns the value unchanged.
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	var out float64
	if from == Kilograms {
		out = value * PoundsPerKilogram
	} else {
		out = value / PoundsPerKilogram
	}
	return math.Round(out*100) / 100
}
