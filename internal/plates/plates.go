// Package plates implements the barbell plate-loading calculator: a greedy
// bounded-supply resolver that turns a target total weight into the plates to
// load on each side of the bar, the reverse computation from loaded plates to
// total weight, and the plate inventory the resolver draws from.
package plates

import (
	"math"

	"github.com/claude/liftkit/internal/units"
)

// Denomination is one distinct plate weight in the inventory and how many
// physical plates of that weight are available. The count bounds usage on
// each side of the bar independently.
type Denomination struct {
	Weight    float64 `json:"weight"`
	Available int     `json:"available"`
}

// PlateCount is one entry of a resolved loadout: a plate weight and how many
// of it go on one side of the bar.
type PlateCount struct {
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
}

// Loadout is the result of a forward resolve. Plates lists per-side plate
// counts heaviest first. When the inventory cannot reach the target exactly,
// Achieved is the closest total the greedy pass reached and Approximate is
// set; Remainder is the per-side weight left unfilled.
type Loadout struct {
	Requested   float64      `json:"requested"`
	BarWeight   float64      `json:"bar_weight"`
	Plates      []PlateCount `json:"plates"`
	Achieved    float64      `json:"achieved"`
	Remainder   float64      `json:"remainder"`
	Approximate bool         `json:"approximate"`
}

// defaultAvailable is the per-denomination plate count a fresh inventory
// starts with, and the count assigned to newly added denominations.
const defaultAvailable = 10

// DefaultDenominations returns the stock plate set for a unit, heaviest
// first.
func DefaultDenominations(unit units.Unit) []Denomination {
	var weights []float64
	if unit == units.Pounds {
		weights = []float64{55, 45, 35, 25, 10, 5, 2.5}
	} else {
		weights = []float64{25, 20, 15, 10, 5, 2.5, 1.25}
	}
	denoms := make([]Denomination, len(weights))
	for i, w := range weights {
		denoms[i] = Denomination{Weight: w, Available: defaultAvailable}
	}
	return denoms
}

// DefaultBarWeight returns the stock bar weight for a unit: 20 kg or 45 lbs.
func DefaultBarWeight(unit units.Unit) float64 {
	if unit == units.Pounds {
		return 45
	}
	return 20
}

// round3 rounds to three decimal places. Applied after each greedy
// subtraction so repeated float64 arithmetic cannot drift the remainder.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
