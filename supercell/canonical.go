package supercell

import (
	"fmt"

	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// IsCanonical reports whether the supercell lattice already equals the
// canonical lattice under the prim point group.
// Complexity: O(|point group|).
func IsCanonical(s *Supercell) bool {
	return xtal.CanonicalCheck(s.superlattice.SuperLattice(), s.prim.pointGroup.Elements())
}

// MakeCanonicalForm returns a supercell sharing the same prim whose lattice
// compares greater-or-equal, under the lattice total order, to every point
// group image of s's lattice.
// Complexity: O(|point group|).
func MakeCanonicalForm(s *Supercell) (*Supercell, error) {
	canonical := xtal.CanonicalEquivalent(s.superlattice.SuperLattice(), s.prim.pointGroup.Elements())

	return newSupercellFromLattice(s.prim, canonical)
}

// ToCanonical returns the first point-group element (in group order) that
// maps s's lattice exactly onto the canonical lattice.
// A miss is an internal-consistency failure: ErrCanonicalMappingNotFound.
func ToCanonical(s *Supercell) (xtal.SymOp, error) {
	ix, ok := xtal.CanonicalOperationIndex(s.superlattice.SuperLattice(), s.prim.pointGroup.Elements())
	if !ok {
		return xtal.SymOp{}, fmt.Errorf("%w: to-canonical for transform %v",
			ErrCanonicalMappingNotFound, s.superlattice.Transform())
	}

	return s.prim.pointGroup.Element(ix), nil
}

// FromCanonical returns the first point-group element that maps the
// canonical lattice onto s's lattice. A miss cannot occur for consistent
// inputs and surfaces as ErrCanonicalMappingNotFound — a fatal
// internal-consistency check, not a recoverable user error.
func FromCanonical(s *Supercell) (xtal.SymOp, error) {
	lhs := s.superlattice.SuperLattice()
	canonical := xtal.CanonicalEquivalent(lhs, s.prim.pointGroup.Elements())
	for _, op := range s.prim.pointGroup.Elements() {
		if lhs.EqualTo(xtal.CopyApplyToLattice(op, canonical)) {
			return op, nil
		}
	}

	return xtal.SymOp{}, fmt.Errorf("%w: from-canonical for transform %v",
		ErrCanonicalMappingNotFound, s.superlattice.Transform())
}

// MakeEquivalents returns the distinct symmetry images of s's lattice, each
// re-expressed in canonical form relative to its own invariant subgroup
// (not the full point group) before deduplication. Canonicalizing against
// the stabilizer collapses re-based column matrices of the same point set
// while keeping every distinct orientation separate.
//
// The result is ordered ascending under the lattice total order.
// Complexity: O(|point group|²).
func MakeEquivalents(s *Supercell) ([]*Supercell, error) {
	pointOps := s.prim.pointGroup.Elements()
	initial := s.superlattice.SuperLattice()

	// Re-express one symmetry image in canonical form with respect to its
	// own invariant subgroup.
	prepare := func(lat xtal.Lattice) xtal.Lattice {
		indices := xtal.InvariantSubgroupIndices(lat, pointOps)
		invariant := make([]xtal.SymOp, len(indices))
		for i, ix := range indices {
			invariant[i] = pointOps[ix]
		}

		return xtal.CanonicalEquivalent(lat, invariant)
	}

	less := func(a, b xtal.Lattice) bool { return a.Compare(b) < 0 }
	superlats := symgroup.MakeOrbit(initial, pointOps, less, func(op xtal.SymOp, lat xtal.Lattice) xtal.Lattice {
		return prepare(xtal.CopyApplyToLattice(op, lat))
	})

	result := make([]*Supercell, 0, len(superlats))
	for _, lat := range superlats {
		equivalent, err := newSupercellFromLattice(s.prim, lat)
		if err != nil {
			return nil, err
		}
		result = append(result, equivalent)
	}

	return result, nil
}

// SiteIndicesAreInvariant reports whether applying op never moves a value
// from a site inside the set to a site outside it. Applying op moves the
// value from site op.PermuteIndex(l) to site l, so the set is invariant
// exactly when every PermuteIndex image stays inside.
// Complexity: O(|siteIndices|).
func SiteIndicesAreInvariant(op SupercellSymOp, siteIndices map[int]bool) bool {
	for l := range siteIndices {
		if !siteIndices[op.PermuteIndex(l)] {
			return false
		}
	}

	return true
}
