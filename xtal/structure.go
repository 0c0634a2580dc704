package xtal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// BasicStructure is the prim: a lattice plus the fractional coordinates of
// the basis sites in one unit cell. It is immutable after construction and
// intended to be shared by every supercell, cluster and group derived from
// it.
type BasicStructure struct {
	lattice Lattice
	basis   [][3]float64 // fractional coordinates, one entry per sublattice
}

// NewBasicStructure constructs a BasicStructure. The basis is deep-copied
// to ensure immutability. Returns ErrEmptyBasis when no basis sites are
// given.
func NewBasicStructure(lattice Lattice, basis [][3]float64) (*BasicStructure, error) {
	if len(basis) == 0 {
		return nil, ErrEmptyBasis
	}
	sites := make([][3]float64, len(basis))
	copy(sites, basis)

	return &BasicStructure{lattice: lattice, basis: sites}, nil
}

// Lattice returns the prim lattice.
func (s *BasicStructure) Lattice() Lattice { return s.lattice }

// NumSublattices returns the number of basis sites per unit cell.
func (s *BasicStructure) NumSublattices() int { return len(s.basis) }

// BasisFrac returns the fractional coordinate of sublattice b.
func (s *BasicStructure) BasisFrac(b int) [3]float64 { return s.basis[b] }

// SiteCartesian returns the Cartesian position of a site:
// columnMatrix · (cell + basisFrac(sublattice)).
func (s *BasicStructure) SiteCartesian(c UnitCellCoord) *mat.VecDense {
	frac := s.basis[c.Sublattice]
	v := mat.NewVecDense(3, []float64{
		frac[0] + float64(c.Cell[0]),
		frac[1] + float64(c.Cell[1]),
		frac[2] + float64(c.Cell[2]),
	})

	return s.lattice.FracToCart(v)
}

// SiteDistance returns the Cartesian distance between two sites.
// Complexity: O(1).
func (s *BasicStructure) SiteDistance(a, b UnitCellCoord) float64 {
	pa := s.SiteCartesian(a)
	pb := s.SiteCartesian(b)
	var sum float64
	for i := 0; i < 3; i++ {
		d := pa.AtVec(i) - pb.AtVec(i)
		sum += d * d
	}

	return math.Sqrt(sum)
}
