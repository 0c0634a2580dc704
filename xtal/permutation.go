package xtal

import "fmt"

// Permutation maps site indices under a symmetry operation using the
// value-movement convention: applying the operation moves the value at
// site p[s] to site s.
type Permutation []int

// identityUnset marks a permutation slot that has not yet been assigned.
const identityUnset = -1

// NewUnassignedPermutation returns a permutation of size n with every slot
// unassigned. Builders fill every slot exactly once and then call Validate.
func NewUnassignedPermutation(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = identityUnset
	}

	return p
}

// Validate returns ErrIncompletePermutation unless every slot holds a
// distinct index in [0, n). An unassigned slot after processing all sites
// signals an internal-consistency failure in the caller.
// Complexity: O(n).
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for s, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("%w: slot %d holds %d", ErrIncompletePermutation, s, v)
		}
		if seen[v] {
			return fmt.Errorf("%w: index %d assigned twice", ErrIncompletePermutation, v)
		}
		seen[v] = true
	}

	return nil
}

// Apply returns the image of site index s.
func (p Permutation) Apply(s int) int { return p[s] }

// Inverse returns the inverse permutation.
// Complexity: O(n).
func (p Permutation) Inverse() Permutation {
	inv := make(Permutation, len(p))
	for s, v := range p {
		inv[v] = s
	}

	return inv
}

// Compose returns the permutation equivalent to applying q first, then p:
// result[s] = q[p[s]].
// Complexity: O(n).
func (p Permutation) Compose(q Permutation) Permutation {
	r := make(Permutation, len(p))
	for s := range p {
		r[s] = q[p[s]]
	}

	return r
}
