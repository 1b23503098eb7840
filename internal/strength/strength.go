// Package strength implements the 1RM, RPE, and percentage calculators.
// All results are plain numbers in whatever unit the caller is working in.
package strength

import (
	"fmt"
	"math"
)

// rpePercentages maps RPE → reps → fraction of 1RM. Rows are RPE 6.5
// through 10 in half steps; columns are 1 through 10 reps. Values follow the
// standard RPE chart.
var rpePercentages = map[float64][10]float64{
	6.5: {0.86, 0.82, 0.79, 0.76, 0.73, 0.70, 0.67, 0.64, 0.61, 0.58},
	7:   {0.89, 0.85, 0.82, 0.79, 0.76, 0.73, 0.70, 0.67, 0.64, 0.61},
	7.5: {0.92, 0.88, 0.85, 0.82, 0.79, 0.76, 0.73, 0.70, 0.67, 0.64},
	8:   {0.95, 0.91, 0.88, 0.85, 0.82, 0.79, 0.76, 0.73, 0.70, 0.67},
	8.5: {0.97, 0.94, 0.91, 0.88, 0.85, 0.82, 0.79, 0.76, 0.73, 0.70},
	9:   {1.00, 0.97, 0.94, 0.91, 0.88, 0.85, 0.82, 0.79, 0.76, 0.73},
	9.5: {1.00, 1.00, 0.97, 0.94, 0.91, 0.88, 0.85, 0.82, 0.79, 0.76},
	10:  {1.00, 1.00, 1.00, 0.97, 0.94, 0.91, 0.88, 0.85, 0.82, 0.79},
}

// fallbackPercentage is used when the RPE/reps combination is outside the
// chart.
const fallbackPercentage = 0.70

// roundTenth rounds to one decimal place, the display precision of every
// calculator result.
func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}

// OneRepMax estimates a one-rep max from a working set using the Epley
// formula, weight × (1 + reps/30), scaled by RPE/10 to account for how hard
// the set actually was.
func OneRepMax(weight float64, reps int, rpe float64) (float64, error) {
	if weight <= 0 {
		return 0, fmt.Errorf("weight must be positive, got %v", weight)
	}
	if reps <= 0 {
		return 0, fmt.Errorf("reps must be positive, got %d", reps)
	}
	if rpe <= 0 || rpe > 10 {
		return 0, fmt.Errorf("rpe must be in (0, 10], got %v", rpe)
	}
	base := weight * (1 + float64(reps)/30)
	return roundTenth(base * rpe / 10), nil
}

// TargetWeight returns the working weight for a target rep count and RPE
// given a known 1RM, via the RPE percentage chart. Combinations outside the
// chart fall back to 70% of the 1RM.
func TargetWeight(oneRM float64, reps int, rpe float64) (float64, error) {
	if oneRM <= 0 {
		return 0, fmt.Errorf("one-rep max must be positive, got %v", oneRM)
	}
	if reps <= 0 {
		return 0, fmt.Errorf("reps must be positive, got %d", reps)
	}
	pct := fallbackPercentage
	if row, ok := rpePercentages[rpe]; ok && reps >= 1 && reps <= 10 {
		pct = row[reps-1]
	}
	return roundTenth(oneRM * pct), nil
}

// PercentEntry is one row of a training percentage table.
type PercentEntry struct {
	Percent int     `json:"percent"`
	Weight  float64 `json:"weight"`
}

// PercentTable returns the standard training percentages (100% down to 30%)
// of a 1RM.
func PercentTable(oneRM float64) []PercentEntry {
	percents := []int{100, 90, 80, 70, 60, 50, 40, 30}
	table := make([]PercentEntry, len(percents))
	for i, p := range percents {
		table[i] = PercentEntry{Percent: p, Weight: roundTenth(oneRM * float64(p) / 100)}
	}
	return table
}
