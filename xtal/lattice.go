package xtal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lattice describes a periodic lattice by the 3×3 matrix whose columns are
// the Cartesian lattice vectors, together with the absolute tolerance used
// for all floating-point comparisons involving this lattice.
//
// A Lattice is immutable after construction; all methods return new values.
type Lattice struct {
	cols *mat.Dense // 3×3 column matrix of lattice vectors
	inv  *mat.Dense // precomputed inverse of cols
	tol  float64
}

// NewLattice constructs a Lattice from the three Cartesian lattice vectors
// a, b, c (the columns of the lattice column matrix). A non-positive tol
// falls back to DefaultTol.
// Returns ErrSingularLattice if the vectors do not span a 3D cell.
// Complexity: O(1).
func NewLattice(a, b, c [3]float64, tol float64) (Lattice, error) {
	if tol <= 0 {
		tol = DefaultTol
	}
	cols := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		cols.Set(i, 0, a[i])
		cols.Set(i, 1, b[i])
		cols.Set(i, 2, c[i])
	}
	if math.Abs(mat.Det(cols)) <= tol {
		return Lattice{}, ErrSingularLattice
	}
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(cols); err != nil {
		return Lattice{}, ErrSingularLattice
	}

	return Lattice{cols: cols, inv: inv, tol: tol}, nil
}

// newLatticeFromColumns wraps a freshly computed column matrix, reusing the
// tolerance of a source lattice. The caller must not alias cols afterwards.
func newLatticeFromColumns(cols *mat.Dense, tol float64) (Lattice, error) {
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(cols); err != nil {
		return Lattice{}, ErrSingularLattice
	}

	return Lattice{cols: cols, inv: inv, tol: tol}, nil
}

// Tol returns the absolute tolerance attached to this lattice.
func (l Lattice) Tol() float64 { return l.tol }

// ColumnMatrix returns a copy of the 3×3 matrix whose columns are the
// Cartesian lattice vectors.
func (l Lattice) ColumnMatrix() *mat.Dense {
	return mat.DenseCopyOf(l.cols)
}

// Volume returns the signed cell volume, det(columnMatrix).
func (l Lattice) Volume() float64 { return mat.Det(l.cols) }

// FracToCart converts fractional coordinates to Cartesian coordinates.
func (l Lattice) FracToCart(frac *mat.VecDense) *mat.VecDense {
	cart := mat.NewVecDense(3, nil)
	cart.MulVec(l.cols, frac)

	return cart
}

// CartToFrac converts Cartesian coordinates to fractional coordinates.
func (l Lattice) CartToFrac(cart *mat.VecDense) *mat.VecDense {
	frac := mat.NewVecDense(3, nil)
	frac.MulVec(l.inv, cart)

	return frac
}

// PlaneSpacings returns, for each lattice direction, the perpendicular
// distance between consecutive lattice planes. Used to bound how many unit
// cells must be searched to cover a Cartesian cutoff distance.
// Complexity: O(1).
func (l Lattice) PlaneSpacings() [3]float64 {
	var spacings [3]float64
	for i := 0; i < 3; i++ {
		norm := math.Hypot(math.Hypot(l.inv.At(i, 0), l.inv.At(i, 1)), l.inv.At(i, 2))
		spacings[i] = 1.0 / norm
	}

	return spacings
}

// Compare imposes the deterministic total order used for canonical-form
// selection: element-wise, column-major comparison of the column matrices,
// with entries closer than tol treated as equal.
// Returns -1 if l < other, 0 if equal within tol, +1 if l > other.
// Complexity: O(1).
func (l Lattice) Compare(other Lattice) int {
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			d := l.cols.At(i, j) - other.cols.At(i, j)
			if d < -l.tol {
				return -1
			}
			if d > l.tol {
				return 1
			}
		}
	}

	return 0
}

// EqualTo reports whether the two lattices have identical column matrices
// within this lattice's tolerance.
func (l Lattice) EqualTo(other Lattice) bool { return l.Compare(other) == 0 }

// IsEquivalentTo reports whether the two lattices describe the same set of
// lattice points, i.e. whether l⁻¹ · other is an integer matrix with
// determinant ±1 within tolerance. This is the equality used for lattice
// stabilizers: a symmetry operation fixes a lattice when its image is the
// same point set, even if expressed in a re-based column matrix.
// Complexity: O(1).
func (l Lattice) IsEquivalentTo(other Lattice) bool {
	u := mat.NewDense(3, 3, nil)
	u.Mul(l.inv, other.cols)

	var rounded [3][3]int
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r := math.Round(u.At(i, j))
			if math.Abs(u.At(i, j)-r) > l.tol {
				return false
			}
			rounded[i][j] = int(r)
		}
	}
	det := rounded[0][0]*(rounded[1][1]*rounded[2][2]-rounded[1][2]*rounded[2][1]) -
		rounded[0][1]*(rounded[1][0]*rounded[2][2]-rounded[1][2]*rounded[2][0]) +
		rounded[0][2]*(rounded[1][0]*rounded[2][1]-rounded[1][1]*rounded[2][0])

	return det == 1 || det == -1
}
