package plates

import (
	"errors"
	"sort"
)

// ErrTargetNotAboveBar is returned by ResolveForward when the requested
// total does not exceed the bar weight. Callers show the message and render
// no plate breakdown.
var ErrTargetNotAboveBar = errors.New("target weight must exceed bar weight")

// ResolveForward computes the plates to load on one side of the bar so that
// bar + 2×(side weight) best approximates targetTotal, without using more of
// any denomination than its available count.
//
// The fill is a greedy descending-weight pass: heaviest plates first, as many
// of each as fit. It does not backtrack, so a smaller-plate combination that
// lands closer to the target is deliberately never found; the greedy result
// is the contract the rest of the app (and a lifter standing at the rack)
// expects. An unreachable target is not an error: the loadout carries the
// achieved total and an approximate flag.
func ResolveForward(targetTotal, barWeight float64, inventory []Denomination) (Loadout, error) {
	if targetTotal <= barWeight {
		return Loadout{}, ErrTargetNotAboveBar
	}

	usable := make([]Denomination, 0, len(inventory))
	for _, d := range inventory {
		if d.Weight > 0 && d.Available > 0 {
			usable = append(usable, d)
		}
	}
	sort.Slice(usable, func(i, j int) bool { return usable[i].Weight > usable[j].Weight })

	perSide := (targetTotal - barWeight) / 2
	remaining := round3(perSide)

	var result []PlateCount
	for _, d := range usable {
		count := int(remaining / d.Weight)
		if count > d.Available {
			count = d.Available
		}
		if count == 0 {
			continue
		}
		result = append(result, PlateCount{Weight: d.Weight, Count: count})
		remaining = round3(remaining - float64(count)*d.Weight)
	}

	achieved := round3(barWeight + 2*(perSide-remaining))
	return Loadout{
		Requested:   targetTotal,
		BarWeight:   barWeight,
		Plates:      result,
		Achieved:    achieved,
		Remainder:   remaining,
		Approximate: remaining != 0,
	}, nil
}

// ResolveReverse computes the total bar weight from plates the user has
// placed on one side, mirrored symmetrically: bar + 2×Σ(weight×count).
func ResolveReverse(loaded ReverseLoad, barWeight float64) float64 {
	var side float64
	for weight, count := range loaded {
		side += weight * float64(count)
	}
	return round3(barWeight + 2*side)
}
