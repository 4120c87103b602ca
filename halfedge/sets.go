package halfedge

import (
	"cmp"
	"slices"
)

// addIfNew appends v to s unless it is already present, mirroring the
// source's addIfNew template used to build one-ring neighbour lists.
func addIfNew[T comparable](s []T, v T) []T {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}

// sortedIntersection returns the elements common to both s1 and s2,
// sorting copies of each first. Grounded on the source's
// setOp::sort::intersection, which sorts both operands before an O(m+n)
// merge; small one-ring sizes make the sort overhead negligible.
func sortedIntersection[T cmp.Ordered](s1, s2 []T) []T {
	a := append([]T(nil), s1...)
	b := append([]T(nil), s2...)
	slices.Sort(a)
	slices.Sort(b)

	var out []T
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// sortedEqual reports whether s1 and s2 contain the same multiset of
// elements, sorting copies of each first.
func sortedEqual[T cmp.Ordered](s1, s2 []T) bool {
	if len(s1) != len(s2) {
		return false
	}
	a := append([]T(nil), s1...)
	b := append([]T(nil), s2...)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// unsortedIntersection returns the elements common to s1 and s2 without
// sorting, grounded on the source's setOp::intersection - used where
// the operands are already small and order-sensitive (face lists).
func unsortedIntersection[T comparable](s1, s2 []T) []T {
	var out []T
	for _, x := range s1 {
		for _, y := range s2 {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}
