package depot

import "slices"

// Intersect returns the ids present in every input, ascending. Inputs must be
// sorted ascending and free of duplicates. No inputs yield an empty result.
//
// One cursor is kept per input. The cursor holding the current candidate
// value stays put while every other cursor jumps forward to the first value
// not below it; the first cursor landing on a larger value becomes the new
// candidate and the scan starts over. When all cursors agree the value is
// emitted and every cursor steps once. The walk stops as soon as any input
// runs out.
func Intersect(seqs ...[]Entity) []Entity {
	switch len(seqs) {
	case 0:
		return nil
	case 1:
		return slices.Clone(seqs[0])
	}

	firsts := make([]int, len(seqs))
	candidate := 0
	var out []Entity

	for {
		if firsts[candidate] >= len(seqs[candidate]) {
			return out
		}
		value := seqs[candidate][firsts[candidate]]

		agreed := true
		for n, seq := range seqs {
			if n == candidate {
				continue
			}
			offset, _ := slices.BinarySearch(seq[firsts[n]:], value)
			firsts[n] += offset
			if firsts[n] >= len(seq) {
				return out
			}
			if seq[firsts[n]] != value {
				candidate = n
				agreed = false
				break
			}
		}
		if !agreed {
			continue
		}

		out = append(out, value)
		for n := range firsts {
			firsts[n]++
		}
	}
}

// Difference returns the ids of a that are not in b, keeping a's order. Both
// inputs must be sorted ascending.
func Difference(a, b []Entity) []Entity {
	if len(b) == 0 {
		return slices.Clone(a)
	}
	out := make([]Entity, 0, len(a))
	j := 0
	for _, id := range a {
		for j < len(b) && b[j] < id {
			j++
		}
		if j < len(b) && b[j] == id {
			continue
		}
		out = append(out, id)
	}
	return out
}
