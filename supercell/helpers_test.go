package supercell_test

import (
	"testing"

	"github.com/quarzite/quarzite/supercell"
	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// cubicPointGroupOps returns the 48 operations of the full cubic point
// group: all 3×3 signed permutation matrices.
func cubicPointGroupOps() []xtal.SymOp {
	perms := [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	ops := make([]xtal.SymOp, 0, 48)
	for _, p := range perms {
		for s := 0; s < 8; s++ {
			var m [3][3]float64
			for i := 0; i < 3; i++ {
				sign := 1.0
				if s&(1<<i) != 0 {
					sign = -1.0
				}
				m[i][p[i]] = sign
			}
			ops = append(ops, xtal.NewSymOp(m, [3]float64{}, false))
		}
	}

	return ops
}

// makeCubicPrim builds a simple cubic prim (one basis site, lattice
// parameter 1) whose factor group is the full 48-element cubic group.
func makeCubicPrim(t *testing.T) *supercell.Prim {
	t.Helper()
	lat, err := xtal.NewLattice([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1}, 0)
	if err != nil {
		t.Fatalf("NewLattice error: %v", err)
	}
	structure, err := xtal.NewBasicStructure(lat, [][3]float64{{0, 0, 0}})
	if err != nil {
		t.Fatalf("NewBasicStructure error: %v", err)
	}

	return makePrimForStructure(t, structure)
}

// makePrimForStructure builds a prim whose factor group consists of the
// cubic point operations compatible with the given structure.
func makePrimForStructure(t *testing.T, structure *xtal.BasicStructure) *supercell.Prim {
	t.Helper()
	factorGroup, err := symgroup.NewSymGroup(cubicPointGroupOps(),
		xtal.SymOpPeriodicMatches(structure.Lattice()))
	if err != nil {
		t.Fatalf("NewSymGroup error: %v", err)
	}
	prim, err := supercell.NewPrim(structure, factorGroup)
	if err != nil {
		t.Fatalf("NewPrim error: %v", err)
	}

	return prim
}
