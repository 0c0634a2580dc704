package clust_test

import (
	"testing"

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

// cubicFixture bundles the simple cubic crystal used throughout: one basis
// site, lattice parameter 1, full 48-element factor group and its
// site-coordinate representation.
type cubicFixture struct {
	structure *xtal.BasicStructure
	group     *symgroup.SymGroup
	reps      []xtal.UnitCellCoordRep
}

func makeCubicFixture(t *testing.T) cubicFixture {
	t.Helper()
	lat, err := xtal.NewLattice([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1}, 0)
	if err != nil {
		t.Fatalf("NewLattice error: %v", err)
	}
	structure, err := xtal.NewBasicStructure(lat, [][3]float64{{0, 0, 0}})
	if err != nil {
		t.Fatalf("NewBasicStructure error: %v", err)
	}
	group, err := symgroup.NewSymGroup(cubicPointGroupOps(), xtal.SymOpPeriodicMatches(lat))
	if err != nil {
		t.Fatalf("NewSymGroup error: %v", err)
	}
	reps, err := xtal.MakeUnitCellCoordSymGroupRep(group.Elements(), structure)
	if err != nil {
		t.Fatalf("MakeUnitCellCoordSymGroupRep error: %v", err)
	}

	return cubicFixture{structure: structure, group: group, reps: reps}
}

// site is shorthand for a single-sublattice coordinate.
func site(i, j, k int) xtal.UnitCellCoord {
	return xtal.UnitCellCoord{Sublattice: 0, Cell: xtal.UnitCell{i, j, k}}
}
