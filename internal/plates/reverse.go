package plates

// ReverseLoad maps a denomination weight to the number of plates the user
// has placed on one side of the bar. Unlike forward resolution it is not
// bounded by inventory availability: reverse mode describes a real bar the
// user is looking at, which may hold more plates than the inventory
// bookkeeping says exist.
type ReverseLoad map[float64]int

// Add places one more plate of the given weight.
func (l ReverseLoad) Add(weight float64) {
	if weight <= 0 {
		return
	}
	l[weight]++
}

// Remove takes one plate of the given weight off. Removing the last plate
// deletes the entry; removing from an absent weight is a no-op.
func (l ReverseLoad) Remove(weight float64) {
	count, ok := l[weight]
	if !ok {
		return
	}
	if count <= 1 {
		delete(l, weight)
		return
	}
	l[weight] = count - 1
}

// Clone returns an independent copy of the load.
func (l ReverseLoad) Clone() ReverseLoad {
	out := make(ReverseLoad, len(l))
	for w, c := range l {
		out[w] = c
	}
	return out
}
