package plates

import (
	"sort"
	"sync"

	"github.com/claude/liftkit/internal/units"
)

// Inventory holds the plate denominations, the active bar weight, and the
// list of selectable bars. Mutations are last-write-wins from a single
// interactive user; a mutex covers the handful of places (HTTP handlers,
// async persistence) that touch it from different goroutines.
//
// Invalid mutations (non-positive weights, duplicates) are no-ops that leave
// the prior state unchanged; mutators return whether they applied so callers
// can decide what to persist.
type Inventory struct {
	mu     sync.Mutex
	denoms []Denomination // weight-descending
	bar    float64
	bars   []float64 // selectable bar weights, ascending
}

// State is the persistable snapshot of an Inventory.
type State struct {
	Denominations []Denomination `json:"denominations"`
	BarWeight     float64        `json:"bar_weight"`
	Bars          []float64      `json:"bars"`
}

// NewInventory creates an inventory with the unit's default plate set and
// bar.
func NewInventory(unit units.Unit) *Inventory {
	inv := &Inventory{}
	inv.reset(unit)
	return inv
}

func (inv *Inventory) reset(unit units.Unit) {
	inv.denoms = DefaultDenominations(unit)
	inv.bar = DefaultBarWeight(unit)
	inv.bars = []float64{DefaultBarWeight(unit)}
}

// ResetToDefaults replaces the entire denomination list, bar weight, and bar
// list with the unit's defaults. Custom denominations, counts, and bars are
// discarded, not converted.
func (inv *Inventory) ResetToDefaults(unit units.Unit) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.reset(unit)
}

// Denominations returns a copy of the denomination list, heaviest first.
func (inv *Inventory) Denominations() []Denomination {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]Denomination, len(inv.denoms))
	copy(out, inv.denoms)
	return out
}

// BarWeight returns the active bar weight.
func (inv *Inventory) BarWeight() float64 {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.bar
}

// Bars returns the selectable bar weights, ascending.
func (inv *Inventory) Bars() []float64 {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	out := make([]float64, len(inv.bars))
	copy(out, inv.bars)
	return out
}

// SetAvailableCount sets the available plate count for a denomination,
// clamped at zero. There is no upper cap. Returns false if the denomination
// does not exist.
func (inv *Inventory) SetAvailableCount(weight float64, count int) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if count < 0 {
		count = 0
	}
	for i := range inv.denoms {
		if inv.denoms[i].Weight == weight {
			inv.denoms[i].Available = count
			return true
		}
	}
	return false
}

// AddDenomination inserts a new plate weight with the default available
// count, keeping the list weight-descending. No-op on a duplicate weight or
// a non-positive weight.
func (inv *Inventory) AddDenomination(weight float64) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if weight <= 0 {
		return false
	}
	for _, d := range inv.denoms {
		if d.Weight == weight {
			return false
		}
	}
	inv.denoms = append(inv.denoms, Denomination{Weight: weight, Available: defaultAvailable})
	sort.Slice(inv.denoms, func(i, j int) bool { return inv.denoms[i].Weight > inv.denoms[j].Weight })
	return true
}

// RemoveDenomination deletes a plate weight from the inventory. Any loadout
// or reverse-load entries referencing it are the caller's to drop.
func (inv *Inventory) RemoveDenomination(weight float64) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for i, d := range inv.denoms {
		if d.Weight == weight {
			inv.denoms = append(inv.denoms[:i], inv.denoms[i+1:]...)
			return true
		}
	}
	return false
}

// SetBarWeight sets the active bar weight. No-op if the weight is not
// positive.
func (inv *Inventory) SetBarWeight(weight float64) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if weight <= 0 {
		return false
	}
	inv.bar = weight
	return true
}

// AddBar adds a custom bar weight to the selectable list. No-op on a
// duplicate or a non-positive weight.
func (inv *Inventory) AddBar(weight float64) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	if weight <= 0 {
		return false
	}
	for _, b := range inv.bars {
		if b == weight {
			return false
		}
	}
	inv.bars = append(inv.bars, weight)
	sort.Float64s(inv.bars)
	return true
}

// Resolve runs a forward resolve against a single consistent snapshot of
// the denominations and the active bar weight.
func (inv *Inventory) Resolve(targetTotal float64) (Loadout, error) {
	inv.mu.Lock()
	bar := inv.bar
	denoms := make([]Denomination, len(inv.denoms))
	copy(denoms, inv.denoms)
	inv.mu.Unlock()
	return ResolveForward(targetTotal, bar, denoms)
}

// Snapshot returns the persistable state of the inventory.
func (inv *Inventory) Snapshot() State {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	st := State{
		Denominations: make([]Denomination, len(inv.denoms)),
		BarWeight:     inv.bar,
		Bars:          make([]float64, len(inv.bars)),
	}
	copy(st.Denominations, inv.denoms)
	copy(st.Bars, inv.bars)
	return st
}

// Restore replaces the inventory with a previously snapshotted state,
// re-sorting to restore invariants. Invalid states (no denominations or a
// non-positive bar) are rejected so a corrupt save cannot wipe the defaults.
func (inv *Inventory) Restore(st State) bool {
	if len(st.Denominations) == 0 || st.BarWeight <= 0 {
		return false
	}
	denoms := make([]Denomination, 0, len(st.Denominations))
	for _, d := range st.Denominations {
		if d.Weight <= 0 {
			continue
		}
		if d.Available < 0 {
			d.Available = 0
		}
		denoms = append(denoms, d)
	}
	if len(denoms) == 0 {
		return false
	}
	sort.Slice(denoms, func(i, j int) bool { return denoms[i].Weight > denoms[j].Weight })

	bars := make([]float64, 0, len(st.Bars))
	for _, b := range st.Bars {
		if b > 0 {
			bars = append(bars, b)
		}
	}
	if len(bars) == 0 {
		bars = []float64{st.BarWeight}
	}
	sort.Float64s(bars)

	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.denoms = denoms
	inv.bar = st.BarWeight
	inv.bars = bars
	return true
}
