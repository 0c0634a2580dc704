package xtal

import (
	"fmt"
	"sort"
)

// UnitCellIndexConverter enumerates the |det(T)| distinct unit cells inside
// a supercell with transformation matrix T and converts between a unit cell
// and its linear index. Enumeration order is the lexicographic integer
// order of the canonical (brought-within) lattice points, so every
// conversion is deterministic.
//
// Bring-within is exact: it uses the integer adjugate of T, never a
// floating-point inverse.
type UnitCellIndexConverter struct {
	transform [3][3]int
	adjugate  [3][3]int
	det       int
	points    []UnitCell
	index     map[UnitCell]int
}

// NewUnitCellIndexConverter constructs the converter for a transformation
// matrix. Returns ErrSingularLattice for det(T) == 0 and
// ErrLatticePointCount if lattice-point enumeration does not produce
// exactly |det(T)| points (an internal-consistency failure).
// Complexity: O(box volume) ≈ O(|det T|) for well-shaped T.
func NewUnitCellIndexConverter(transform [3][3]int) (*UnitCellIndexConverter, error) {
	det := detInt3(transform)
	if det == 0 {
		return nil, fmt.Errorf("%w: transformation matrix %v", ErrSingularLattice, transform)
	}
	c := &UnitCellIndexConverter{
		transform: transform,
		adjugate:  adjugateInt3(transform),
		det:       det,
	}

	volume := det
	if volume < 0 {
		volume = -volume
	}

	// The canonical representatives lie in the half-open parallelepiped
	// T·[0,1)³; scan its integer bounding box and keep the fixed points of
	// BringWithin.
	var lo, hi UnitCell
	for cx := 0; cx < 2; cx++ {
		for cy := 0; cy < 2; cy++ {
			for cz := 0; cz < 2; cz++ {
				corner := mulInt3Cell(transform, UnitCell{cx, cy, cz})
				for i := 0; i < 3; i++ {
					if corner[i] < lo[i] {
						lo[i] = corner[i]
					}
					if corner[i] > hi[i] {
						hi[i] = corner[i]
					}
				}
			}
		}
	}

	for i := lo[0]; i <= hi[0]; i++ {
		for j := lo[1]; j <= hi[1]; j++ {
			for k := lo[2]; k <= hi[2]; k++ {
				u := UnitCell{i, j, k}
				if c.BringWithin(u) == u {
					c.points = append(c.points, u)
				}
			}
		}
	}
	if len(c.points) != volume {
		return nil, fmt.Errorf("%w: found %d points, want %d for T=%v",
			ErrLatticePointCount, len(c.points), volume, transform)
	}
	sort.Slice(c.points, func(a, b int) bool { return c.points[a].Compare(c.points[b]) < 0 })

	c.index = make(map[UnitCell]int, volume)
	for i, p := range c.points {
		c.index[p] = i
	}

	return c, nil
}

// TotalCells returns the number of unit cells inside the supercell.
func (c *UnitCellIndexConverter) TotalCells() int { return len(c.points) }

// BringWithin returns the canonical representative of u inside the
// supercell: u - T·⌊T⁻¹u⌋, computed exactly via the adjugate.
func (c *UnitCellIndexConverter) BringWithin(u UnitCell) UnitCell {
	v := mulInt3Cell(c.adjugate, u)
	var w UnitCell
	for i := 0; i < 3; i++ {
		w[i] = floorDiv(v[i], c.det)
	}

	return u.Sub(mulInt3Cell(c.transform, w))
}

// LatticePoint returns the unit cell with linear index idx.
// Returns ErrCoordOutOfRange for an invalid index.
func (c *UnitCellIndexConverter) LatticePoint(idx int) (UnitCell, error) {
	if idx < 0 || idx >= len(c.points) {
		return UnitCell{}, fmt.Errorf("%w: lattice point index %d of %d", ErrCoordOutOfRange, idx, len(c.points))
	}

	return c.points[idx], nil
}

// Index returns the linear index of u after bringing it within the
// supercell.
func (c *UnitCellIndexConverter) Index(u UnitCell) int {
	return c.index[c.BringWithin(u)]
}

// UnitCellCoordIndexConverter converts between a site coordinate and its
// linear site index inside a supercell. The linear index of site (b, u) is
// b·volume + index(u), matching the sublattice-major site enumeration used
// by the supercell permutation representations.
type UnitCellCoordIndexConverter struct {
	cells          *UnitCellIndexConverter
	numSublattices int
}

// NewUnitCellCoordIndexConverter constructs a site-index converter for a
// supercell transformation matrix and a number of sublattices.
func NewUnitCellCoordIndexConverter(transform [3][3]int, numSublattices int) (*UnitCellCoordIndexConverter, error) {
	if numSublattices <= 0 {
		return nil, ErrEmptyBasis
	}
	cells, err := NewUnitCellIndexConverter(transform)
	if err != nil {
		return nil, err
	}

	return &UnitCellCoordIndexConverter{cells: cells, numSublattices: numSublattices}, nil
}

// TotalSites returns the number of sites inside the supercell.
func (c *UnitCellCoordIndexConverter) TotalSites() int {
	return c.numSublattices * c.cells.TotalCells()
}

// Coord returns the site coordinate with linear index l.
// Returns ErrCoordOutOfRange for an invalid index.
func (c *UnitCellCoordIndexConverter) Coord(l int) (UnitCellCoord, error) {
	if l < 0 || l >= c.TotalSites() {
		return UnitCellCoord{}, fmt.Errorf("%w: site index %d of %d", ErrCoordOutOfRange, l, c.TotalSites())
	}
	volume := c.cells.TotalCells()
	cell, err := c.cells.LatticePoint(l % volume)
	if err != nil {
		return UnitCellCoord{}, err
	}

	return UnitCellCoord{Sublattice: l / volume, Cell: cell}, nil
}

// Index returns the linear site index of a coordinate after bringing its
// unit cell within the supercell.
func (c *UnitCellCoordIndexConverter) Index(coord UnitCellCoord) int {
	return coord.Sublattice*c.cells.TotalCells() + c.cells.Index(coord.Cell)
}
