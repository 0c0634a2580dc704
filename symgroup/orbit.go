package symgroup

import (
	"fmt"
	"sort"
)

// insertSorted inserts v into a strictly ascending slice, keeping it sorted
// and deduplicated. Insertion is idempotent: an existing equal value is
// silently merged. Complexity: O(log n) comparisons + O(n) move.
func insertSorted[T any](s []T, v T, less LessFunc[T]) []T {
	i := sort.Search(len(s), func(k int) bool { return !less(s[k], v) })
	if i < len(s) && !less(v, s[i]) {
		return s // already present
	}
	s = append(s, v)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

// searchSorted returns the position of v in a strictly ascending slice and
// whether it is present.
func searchSorted[T any](s []T, v T, less LessFunc[T]) (int, bool) {
	i := sort.Search(len(s), func(k int) bool { return !less(s[k], v) })

	return i, i < len(s) && !less(v, s[i])
}

// MakeOrbit applies every element to obj and collects the distinct images
// in ascending order under less. An empty element sequence yields an empty
// orbit.
//
// Deterministic: the result depends only on obj, the element set, apply and
// less — never on element order.
// Complexity: O(|elements|·(T_apply + log|orbit|)).
func MakeOrbit[E, T any](obj T, elements []E, less LessFunc[T], apply TransformFunc[E, T]) []T {
	var orbit []T
	for i := range elements {
		orbit = insertSorted(orbit, apply(elements[i], obj), less)
	}

	return orbit
}

// MakeCanonicalElement returns the maximum orbit member of obj under less:
// the unique, deterministic representative of obj's equivalence class. For
// any two objects in the same orbit the result is the identical value. An
// empty element sequence returns obj unchanged.
// Complexity: O(|elements|·T_apply).
func MakeCanonicalElement[E, T any](obj T, elements []E, less LessFunc[T], apply TransformFunc[E, T]) T {
	best := obj
	first := true
	for i := range elements {
		image := apply(elements[i], obj)
		if first || less(best, image) {
			best = image
			first = false
		}
	}
	if first {
		return obj
	}

	return best
}

// MakeEquivalenceMap builds, for an orbit of size k, the table of k index
// lists where list i holds every element index that carries orbit[0] onto
// orbit[i]. The orbit must be ascending under less, as produced by
// MakeOrbit.
//
// Images of orbit[0] that fall outside the orbit are ignored; for an orbit
// generated by the same elements this never happens.
// Complexity: O(|elements|·(T_apply + log k)).
func MakeEquivalenceMap[E, T any](orbit []T, elements []E, less LessFunc[T], apply TransformFunc[E, T]) [][]int {
	eqMap := make([][]int, len(orbit))
	if len(orbit) == 0 {
		return eqMap
	}
	for j := range elements {
		image := apply(elements[j], orbit[0])
		if i, ok := searchSorted(orbit, image, less); ok {
			eqMap[i] = append(eqMap[i], j)
		}
	}

	return eqMap
}

// MakeInvariantSubgroupIndices returns the sorted element indices whose
// transform maps obj back onto itself exactly, under the order's equality.
// For translation-normalized objects the transform itself is expected to
// fold the recovered translation in; this layer compares values only.
// Complexity: O(|elements|·T_apply).
func MakeInvariantSubgroupIndices[E, T any](obj T, elements []E, less LessFunc[T], apply TransformFunc[E, T]) []int {
	var indices []int
	for i := range elements {
		image := apply(elements[i], obj)
		if !less(image, obj) && !less(obj, image) {
			indices = append(indices, i)
		}
	}

	return indices
}

// MakeInvariantSubgroups derives, from an equivalence map and the group
// that generated it, the stabilizer index set of every orbit member: if h
// is any element carrying orbit[0] onto orbit[i], the stabilizer of
// orbit[i] is { g·h⁻¹ : g carries orbit[0] onto orbit[i] }.
//
// The group must carry a multiplication table (a head group built by
// NewSymGroup); otherwise ErrNoMultiplicationTable is returned. An empty
// equivalence-map row signals an inconsistent orbit and is a
// non-recoverable internal error.
// Complexity: O(k·|stabilizer|) table lookups for an orbit of size k.
func MakeInvariantSubgroups(eqMap [][]int, group *SymGroup) ([][]int, error) {
	if !group.HasMultiplicationTable() {
		return nil, ErrNoMultiplicationTable
	}
	subgroups := make([][]int, len(eqMap))
	for i, row := range eqMap {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: orbit element %d", ErrEmptyEquivalenceMap, i)
		}
		hInv := group.Inv(row[0])
		indices := make([]int, 0, len(row))
		for _, j := range row {
			indices = append(indices, group.Mul(j, hInv))
		}
		sort.Ints(indices)
		subgroups[i] = indices
	}

	return subgroups, nil
}
