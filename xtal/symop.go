package xtal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SymOp is a Cartesian symmetry operation: x ↦ Matrix·x + Translation,
// optionally combined with time reversal. SymOp values are treated as
// immutable; Compose and the Apply helpers always allocate new values.
type SymOp struct {
	Matrix       *mat.Dense    // 3×3 rotation/reflection part
	Translation  *mat.VecDense // Cartesian translation part
	TimeReversal bool
}

// NewSymOp constructs a SymOp from a row-major 3×3 matrix and a Cartesian
// translation vector.
func NewSymOp(matrix [3][3]float64, translation [3]float64, timeReversal bool) SymOp {
	m := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, matrix[i][j])
		}
	}

	return SymOp{
		Matrix:       m,
		Translation:  mat.NewVecDense(3, []float64{translation[0], translation[1], translation[2]}),
		TimeReversal: timeReversal,
	}
}

// IdentityOp returns the identity symmetry operation.
func IdentityOp() SymOp {
	return NewSymOp([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]float64{}, false)
}

// Compose returns the operation lhs∘rhs, i.e. the operation that first
// applies rhs, then lhs:
//
//	matrix      = lhs.Matrix · rhs.Matrix
//	translation = lhs.Matrix · rhs.Translation + lhs.Translation
//	timeReversal = lhs.TimeReversal ⊻ rhs.TimeReversal
func Compose(lhs, rhs SymOp) SymOp {
	m := mat.NewDense(3, 3, nil)
	m.Mul(lhs.Matrix, rhs.Matrix)

	t := mat.NewVecDense(3, nil)
	t.MulVec(lhs.Matrix, rhs.Translation)
	t.AddVec(t, lhs.Translation)

	return SymOp{Matrix: m, Translation: t, TimeReversal: lhs.TimeReversal != rhs.TimeReversal}
}

// CopyApplyToLattice returns the lattice whose column matrix is
// op.Matrix · lat.columnMatrix. The translation part does not affect
// lattice vectors.
func CopyApplyToLattice(op SymOp, lat Lattice) Lattice {
	cols := mat.NewDense(3, 3, nil)
	cols.Mul(op.Matrix, lat.cols)

	// The image of an invertible lattice under an orthogonal operation is
	// itself invertible; a failure here means op is malformed.
	result, err := newLatticeFromColumns(cols, lat.tol)
	if err != nil {
		panic(err)
	}

	return result
}

// SymOpMatches reports whether two operations are identical within tol:
// same time reversal, element-wise equal matrices, and element-wise equal
// translations.
func SymOpMatches(a, b SymOp, tol float64) bool {
	if a.TimeReversal != b.TimeReversal {
		return false
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a.Matrix.At(i, j)-b.Matrix.At(i, j)) > tol {
				return false
			}
		}
		if math.Abs(a.Translation.AtVec(i)-b.Translation.AtVec(i)) > tol {
			return false
		}
	}

	return true
}

// SymOpPeriodicMatches returns a predicate reporting whether two operations
// are identical up to a lattice translation of lat: equal matrices and time
// reversal, and a translation difference that is an integer lattice vector
// within lat's tolerance. This is the equality used when composing factor
// group elements, whose product may differ from a group element by a pure
// lattice translation.
func SymOpPeriodicMatches(lat Lattice) func(a, b SymOp) bool {
	tol := lat.Tol()

	return func(a, b SymOp) bool {
		if a.TimeReversal != b.TimeReversal {
			return false
		}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if math.Abs(a.Matrix.At(i, j)-b.Matrix.At(i, j)) > tol {
					return false
				}
			}
		}
		diff := mat.NewVecDense(3, nil)
		diff.SubVec(a.Translation, b.Translation)
		frac := lat.CartToFrac(diff)
		for i := 0; i < 3; i++ {
			if math.Abs(frac.AtVec(i)-math.Round(frac.AtVec(i))) > tol {
				return false
			}
		}

		return true
	}
}
