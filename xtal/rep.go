package xtal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// UnitCellCoordRep is the exact integer representation of how a symmetry
// operation acts on site coordinates. Applying it to a UnitCellCoord(b, u)
// yields:
//
//	sublattice' = SublatticePermutation[b]
//	cell'       = PointMatrix · u + SublatticeTranslations[b]
//
// All arithmetic is integer, so repeated application never accumulates
// floating-point error.
type UnitCellCoordRep struct {
	PointMatrix            [3][3]int
	SublatticePermutation  []int
	SublatticeTranslations []UnitCell
}

// IdentityCoordRep returns the representation of the identity operation for
// a structure with n sublattices.
func IdentityCoordRep(n int) UnitCellCoordRep {
	perm := make([]int, n)
	trans := make([]UnitCell, n)
	for b := 0; b < n; b++ {
		perm[b] = b
	}

	return UnitCellCoordRep{
		PointMatrix:            [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		SublatticePermutation:  perm,
		SublatticeTranslations: trans,
	}
}

// CopyApplyCoord applies rep to a site coordinate, returning the new
// coordinate. Pure: neither input is mutated.
func CopyApplyCoord(rep UnitCellCoordRep, c UnitCellCoord) UnitCellCoord {
	var cell UnitCell
	for i := 0; i < 3; i++ {
		cell[i] = rep.PointMatrix[i][0]*c.Cell[0] +
			rep.PointMatrix[i][1]*c.Cell[1] +
			rep.PointMatrix[i][2]*c.Cell[2] +
			rep.SublatticeTranslations[c.Sublattice][i]
	}

	return UnitCellCoord{Sublattice: rep.SublatticePermutation[c.Sublattice], Cell: cell}
}

// MakeUnitCellCoordRep derives the exact integer site-coordinate
// representation of a Cartesian operation with respect to a structure.
//
// The fractional point matrix L⁻¹·R·L must round to integers, and the image
// of every basis site must land on a basis site plus an integer lattice
// translation, all within the lattice tolerance. Otherwise the operation is
// not a symmetry of the structure and ErrIncompatibleOperation is returned.
// Complexity: O(b²) for b sublattices.
func MakeUnitCellCoordRep(op SymOp, s *BasicStructure) (UnitCellCoordRep, error) {
	lat := s.Lattice()
	tol := lat.Tol()

	fracMat := mat.NewDense(3, 3, nil)
	fracMat.Mul(op.Matrix, lat.cols)
	fracMat.Mul(lat.inv, fracMat)

	var point [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r := math.Round(fracMat.At(i, j))
			if math.Abs(fracMat.At(i, j)-r) > tol {
				return UnitCellCoordRep{}, fmt.Errorf("%w: point matrix entry (%d,%d)=%v is not integer",
					ErrIncompatibleOperation, i, j, fracMat.At(i, j))
			}
			point[i][j] = int(r)
		}
	}

	n := s.NumSublattices()
	perm := make([]int, n)
	trans := make([]UnitCell, n)
	for b := 0; b < n; b++ {
		// Cartesian image of the basis site in the origin cell.
		image := mat.NewVecDense(3, nil)
		image.MulVec(op.Matrix, s.SiteCartesian(UnitCellCoord{Sublattice: b}))
		image.AddVec(image, op.Translation)
		imageFrac := lat.CartToFrac(image)

		found := false
		for b2 := 0; b2 < n && !found; b2++ {
			target := s.BasisFrac(b2)
			var cell UnitCell
			ok := true
			for i := 0; i < 3; i++ {
				d := imageFrac.AtVec(i) - target[i]
				r := math.Round(d)
				if math.Abs(d-r) > tol {
					ok = false

					break
				}
				cell[i] = int(r)
			}
			if ok {
				perm[b] = b2
				trans[b] = cell
				found = true
			}
		}
		if !found {
			return UnitCellCoordRep{}, fmt.Errorf("%w: basis site %d has no image site",
				ErrIncompatibleOperation, b)
		}
	}

	return UnitCellCoordRep{PointMatrix: point, SublatticePermutation: perm, SublatticeTranslations: trans}, nil
}

// MakeUnitCellCoordSymGroupRep derives the site-coordinate representation of
// every operation in a group element sequence, in group order. The i-th
// representation corresponds to the i-th operation; this index alignment is
// relied upon by every orbit and stabilizer computation.
func MakeUnitCellCoordSymGroupRep(ops []SymOp, s *BasicStructure) ([]UnitCellCoordRep, error) {
	reps := make([]UnitCellCoordRep, 0, len(ops))
	for i, op := range ops {
		rep, err := MakeUnitCellCoordRep(op, s)
		if err != nil {
			return nil, fmt.Errorf("group element %d: %w", i, err)
		}
		reps = append(reps, rep)
	}

	return reps, nil
}
