package xtal_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/quarzite/quarzite/xtal"
)

// vec builds a gonum vector from a fixed-size triple.
func vec(v [3]float64) *mat.VecDense {
	return mat.NewVecDense(3, []float64{v[0], v[1], v[2]})
}

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

// cubicLattice returns a simple cubic lattice with parameter a.
func cubicLattice(t *testing.T, a float64) xtal.Lattice {
	t.Helper()
	lat, err := xtal.NewLattice([3]float64{a, 0, 0}, [3]float64{0, a, 0}, [3]float64{0, 0, a}, 0)
	if err != nil {
		t.Fatalf("NewLattice error: %v", err)
	}

	return lat
}

// cubicStructure returns a simple cubic structure with one basis site at
// the origin.
func cubicStructure(t *testing.T, a float64) *xtal.BasicStructure {
	t.Helper()
	s, err := xtal.NewBasicStructure(cubicLattice(t, a), [][3]float64{{0, 0, 0}})
	if err != nil {
		t.Fatalf("NewBasicStructure error: %v", err)
	}

	return s
}
