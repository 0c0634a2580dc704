package xtal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Superlattice ties a supercell lattice to its prim lattice via the integer
// transformation matrix T: superColumns = primColumns · T. It is immutable
// after construction.
type Superlattice struct {
	prim      Lattice
	super     Lattice
	transform [3][3]int
}

// NewSuperlattice constructs a Superlattice from a prim lattice and an
// integer transformation matrix. Returns ErrSingularLattice when the
// transformation has zero determinant.
func NewSuperlattice(prim Lattice, transform [3][3]int) (Superlattice, error) {
	if detInt3(transform) == 0 {
		return Superlattice{}, fmt.Errorf("%w: transformation matrix %v", ErrSingularLattice, transform)
	}
	t := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.Set(i, j, float64(transform[i][j]))
		}
	}
	cols := mat.NewDense(3, 3, nil)
	cols.Mul(prim.cols, t)
	super, err := newLatticeFromColumns(cols, prim.tol)
	if err != nil {
		return Superlattice{}, err
	}

	return Superlattice{prim: prim, super: super, transform: transform}, nil
}

// NewSuperlatticeFromLattices recovers the integer transformation relating
// a prim lattice and a supercell lattice: T = round(prim⁻¹ · super).
// Returns ErrNotIntegerTransform when T is not integer within the prim
// tolerance.
func NewSuperlatticeFromLattices(prim, super Lattice) (Superlattice, error) {
	t := mat.NewDense(3, 3, nil)
	t.Mul(prim.inv, super.cols)

	var transform [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r := math.Round(t.At(i, j))
			if math.Abs(t.At(i, j)-r) > prim.tol {
				return Superlattice{}, fmt.Errorf("%w: entry (%d,%d)=%v", ErrNotIntegerTransform, i, j, t.At(i, j))
			}
			transform[i][j] = int(r)
		}
	}
	if detInt3(transform) == 0 {
		return Superlattice{}, fmt.Errorf("%w: transformation matrix %v", ErrSingularLattice, transform)
	}

	return Superlattice{prim: prim, super: super, transform: transform}, nil
}

// PrimLattice returns the prim lattice.
func (s Superlattice) PrimLattice() Lattice { return s.prim }

// SuperLattice returns the supercell lattice.
func (s Superlattice) SuperLattice() Lattice { return s.super }

// Transform returns the integer transformation matrix T with
// superColumns = primColumns · T.
func (s Superlattice) Transform() [3][3]int { return s.transform }

// Volume returns the number of prim unit cells inside the supercell,
// |det(T)|.
func (s Superlattice) Volume() int {
	d := detInt3(s.transform)
	if d < 0 {
		return -d
	}

	return d
}
