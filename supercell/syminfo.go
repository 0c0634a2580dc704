package supercell

import (
	"fmt"

	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// SymInfo holds the symmetry information of one supercell: its factor
// group (the subgroup of the prim factor group whose elements fix the
// supercell lattice) and the two permutation representations describing
// how internal lattice translations and factor-group operations permute
// the supercell's enumerated sites.
//
// Permutations use the value-movement convention: applying the operation
// moves the value at site perm[l] to site l.
type SymInfo struct {
	factorGroup             *symgroup.SymGroup
	translationPermutations []xtal.Permutation
	factorGroupPermutations []xtal.Permutation
	converter               *xtal.UnitCellCoordIndexConverter
}

// NewSymInfo builds the symmetry info for a supercell. Every permutation
// slot must be assigned exactly once; an unassigned slot after processing
// all sites is an internal-consistency failure surfaced as a wrapped
// xtal.ErrIncompletePermutation.
// Complexity: O((volume + |factor group|) · sites).
func NewSymInfo(s *Supercell) (*SymInfo, error) {
	prim := s.prim
	transform := s.superlattice.Transform()

	cellConverter, err := xtal.NewUnitCellIndexConverter(transform)
	if err != nil {
		return nil, err
	}
	siteConverter, err := xtal.NewUnitCellCoordIndexConverter(transform, prim.structure.NumSublattices())
	if err != nil {
		return nil, err
	}

	factorGroup := makeSupercellFactorGroup(prim, s.superlattice)

	translationPermutations, err := makeTranslationPermutations(cellConverter, siteConverter)
	if err != nil {
		return nil, err
	}

	factorGroupPermutations, err := makeFactorGroupPermutations(
		factorGroup.HeadGroupIndex(), prim.siteRep, siteConverter)
	if err != nil {
		return nil, err
	}

	return &SymInfo{
		factorGroup:             factorGroup,
		translationPermutations: translationPermutations,
		factorGroupPermutations: factorGroupPermutations,
		converter:               siteConverter,
	}, nil
}

// FactorGroup returns the supercell factor group, a subgroup of the prim
// factor group.
func (si *SymInfo) FactorGroup() *symgroup.SymGroup { return si.factorGroup }

// TranslationPermutations returns one site permutation per lattice point
// inside the supercell, in lattice-point enumeration order. Read-only.
func (si *SymInfo) TranslationPermutations() []xtal.Permutation {
	return si.translationPermutations
}

// FactorGroupPermutations returns one site permutation per supercell
// factor-group element, in factor-group order. Read-only.
func (si *SymInfo) FactorGroupPermutations() []xtal.Permutation {
	return si.factorGroupPermutations
}

// Converter returns the site-index converter of this supercell.
func (si *SymInfo) Converter() *xtal.UnitCellCoordIndexConverter { return si.converter }

// Op returns the supercell symmetry operation combining factor-group
// element fgIx (into FactorGroup) with internal translation tIx.
func (si *SymInfo) Op(fgIx, tIx int) SupercellSymOp {
	return SupercellSymOp{symInfo: si, factorGroupIndex: fgIx, translationIndex: tIx}
}

// SupercellSymOp is one element of the supercell's full symmetry
// representation: a factor-group operation followed by an internal lattice
// translation.
type SupercellSymOp struct {
	symInfo          *SymInfo
	factorGroupIndex int
	translationIndex int
}

// PermuteIndex returns the site index whose value moves to site l when
// this operation is applied.
func (op SupercellSymOp) PermuteIndex(l int) int {
	fg := op.symInfo.factorGroupPermutations[op.factorGroupIndex]
	tr := op.symInfo.translationPermutations[op.translationIndex]

	return fg[tr[l]]
}

// makeSupercellFactorGroup selects the prim factor-group elements whose
// application fixes the supercell lattice point set.
func makeSupercellFactorGroup(prim *Prim, superlattice xtal.Superlattice) *symgroup.SymGroup {
	indices := xtal.InvariantSubgroupIndices(superlattice.SuperLattice(), prim.factorGroup.Elements())

	return symgroup.MakeSubgroup(prim.factorGroup, indices)
}

// makeTranslationPermutations builds, for every lattice point inside the
// supercell, the permutation of all site indices induced by translating
// the crystal by that lattice vector.
func makeTranslationPermutations(
	cells *xtal.UnitCellIndexConverter,
	sites *xtal.UnitCellCoordIndexConverter,
) ([]xtal.Permutation, error) {
	perms := make([]xtal.Permutation, 0, cells.TotalCells())
	for tIx := 0; tIx < cells.TotalCells(); tIx++ {
		translation, err := cells.LatticePoint(tIx)
		if err != nil {
			return nil, err
		}
		perm := xtal.NewUnassignedPermutation(sites.TotalSites())
		for oldIx := 0; oldIx < sites.TotalSites(); oldIx++ {
			oldCoord, err := sites.Coord(oldIx)
			if err != nil {
				return nil, err
			}
			perm[sites.Index(oldCoord.Translated(translation))] = oldIx
		}
		if err := perm.Validate(); err != nil {
			return nil, fmt.Errorf("supercell: translation permutation %d: %w", tIx, err)
		}
		perms = append(perms, perm)
	}

	return perms, nil
}

// makeFactorGroupPermutations builds, for every element of the supercell
// factor group, the permutation of all site indices it induces, by mapping
// each site coordinate through the element's site-coordinate
// representation.
func makeFactorGroupPermutations(
	headGroupIndex []int,
	siteRep []xtal.UnitCellCoordRep,
	sites *xtal.UnitCellCoordIndexConverter,
) ([]xtal.Permutation, error) {
	perms := make([]xtal.Permutation, 0, len(headGroupIndex))
	for _, opIx := range headGroupIndex {
		rep := siteRep[opIx]
		perm := xtal.NewUnassignedPermutation(sites.TotalSites())
		for oldIx := 0; oldIx < sites.TotalSites(); oldIx++ {
			oldCoord, err := sites.Coord(oldIx)
			if err != nil {
				return nil, err
			}
			perm[sites.Index(xtal.CopyApplyCoord(rep, oldCoord))] = oldIx
		}
		if err := perm.Validate(); err != nil {
			return nil, fmt.Errorf("supercell: factor group permutation for element %d: %w", opIx, err)
		}
		perms = append(perms, perm)
	}

	return perms, nil
}
