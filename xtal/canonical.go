package xtal

// Canonical lattice helpers.
//
// The canonical form of a lattice under a set of (point) operations is the
// maximum of its symmetry images under Lattice.Compare. All functions here
// are pure and deterministic: for any two lattices in the same orbit they
// select the identical canonical value.

// CanonicalEquivalent returns the symmetry image of lat that compares
// greater-or-equal to every other image under the lattice total order.
// With an empty operation list the lattice itself is returned.
// Complexity: O(|ops|).
func CanonicalEquivalent(lat Lattice, ops []SymOp) Lattice {
	best := lat
	for _, op := range ops {
		if image := CopyApplyToLattice(op, lat); image.Compare(best) > 0 {
			best = image
		}
	}

	return best
}

// CanonicalCheck reports whether lat is already in canonical form: no
// symmetry image compares greater than lat itself.
// Complexity: O(|ops|).
func CanonicalCheck(lat Lattice, ops []SymOp) bool {
	for _, op := range ops {
		if CopyApplyToLattice(op, lat).Compare(lat) > 0 {
			return false
		}
	}

	return true
}

// CanonicalOperationIndex returns the index of the first operation that
// maps lat exactly onto its canonical equivalent, and true on success.
// The false case cannot occur when ops form a group containing the
// operation that produced the canonical equivalent; callers treat it as an
// internal-consistency failure.
// Complexity: O(|ops|).
func CanonicalOperationIndex(lat Lattice, ops []SymOp) (int, bool) {
	canonical := CanonicalEquivalent(lat, ops)
	for i, op := range ops {
		if CopyApplyToLattice(op, lat).EqualTo(canonical) {
			return i, true
		}
	}

	return -1, false
}

// InvariantSubgroupIndices returns the sorted indices of the operations
// whose application maps lat back onto the same set of lattice points
// (point-set equivalence, not strict column equality: a stabilizing
// operation generally re-bases the column matrix by a unimodular integer
// matrix). The result is the stabilizer of the lattice shape within ops.
// Complexity: O(|ops|).
func InvariantSubgroupIndices(lat Lattice, ops []SymOp) []int {
	var indices []int
	for i, op := range ops {
		if lat.IsEquivalentTo(CopyApplyToLattice(op, lat)) {
			indices = append(indices, i)
		}
	}

	return indices
}
