package supercell

import (
	"fmt"

	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// NewPrim constructs the shared parent object for supercells and clusters:
// it derives the point group from the factor group (translation parts
// dropped, duplicates merged) and the exact integer site-coordinate
// representation of every factor-group operation.
//
// Returns xtal.ErrIncompatibleOperation (wrapped) when a factor-group
// element is not a symmetry of the structure — a symmetry-group
// construction bug upstream.
func NewPrim(structure *xtal.BasicStructure, factorGroup *symgroup.SymGroup) (*Prim, error) {
	if structure == nil || factorGroup == nil {
		return nil, ErrNilPrim
	}
	siteRep, err := xtal.MakeUnitCellCoordSymGroupRep(factorGroup.Elements(), structure)
	if err != nil {
		return nil, fmt.Errorf("supercell: factor group inconsistent with structure: %w", err)
	}

	pointGroup, err := makePointGroup(factorGroup, structure.Lattice().Tol())
	if err != nil {
		return nil, err
	}

	return &Prim{
		structure:   structure,
		factorGroup: factorGroup,
		pointGroup:  pointGroup,
		siteRep:     siteRep,
	}, nil
}

// makePointGroup strips the translation part of every factor-group
// operation and merges duplicates, preserving first-seen order.
func makePointGroup(factorGroup *symgroup.SymGroup, tol float64) (*symgroup.SymGroup, error) {
	matches := func(a, b xtal.SymOp) bool { return xtal.SymOpMatches(a, b, tol) }

	var ops []xtal.SymOp
	for _, el := range factorGroup.Elements() {
		var m [3][3]float64
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				m[i][j] = el.Matrix.At(i, j)
			}
		}
		op := xtal.NewSymOp(m, [3]float64{}, el.TimeReversal)

		duplicate := false
		for _, existing := range ops {
			if matches(op, existing) {
				duplicate = true

				break
			}
		}
		if !duplicate {
			ops = append(ops, op)
		}
	}

	pg, err := symgroup.NewSymGroup(ops, matches)
	if err != nil {
		return nil, fmt.Errorf("supercell: point group construction: %w", err)
	}

	return pg, nil
}
