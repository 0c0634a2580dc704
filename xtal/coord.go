package xtal

// UnitCell is the exact integer coordinate of a unit cell: the lattice
// translation (i, j, k) in fractional (lattice-vector) units.
type UnitCell [3]int

// Add returns u + v component-wise.
func (u UnitCell) Add(v UnitCell) UnitCell {
	return UnitCell{u[0] + v[0], u[1] + v[1], u[2] + v[2]}
}

// Sub returns u - v component-wise.
func (u UnitCell) Sub(v UnitCell) UnitCell {
	return UnitCell{u[0] - v[0], u[1] - v[1], u[2] - v[2]}
}

// Neg returns -u component-wise.
func (u UnitCell) Neg() UnitCell {
	return UnitCell{-u[0], -u[1], -u[2]}
}

// IsZero reports whether u is the origin cell.
func (u UnitCell) IsZero() bool { return u == UnitCell{} }

// Compare imposes the lexicographic integer order (i, then j, then k).
// Returns -1, 0 or +1. Exact: no tolerance is involved.
func (u UnitCell) Compare(v UnitCell) int {
	for i := 0; i < 3; i++ {
		if u[i] < v[i] {
			return -1
		}
		if u[i] > v[i] {
			return 1
		}
	}

	return 0
}

// UnitCellCoord identifies one site of a crystal exactly: the sublattice
// (basis) index plus the integer unit cell containing the site. Equality is
// integer equality; there is no tolerance-based comparison on coordinates.
type UnitCellCoord struct {
	Sublattice int
	Cell       UnitCell
}

// Translated returns the coordinate shifted by the lattice translation t.
func (c UnitCellCoord) Translated(t UnitCell) UnitCellCoord {
	return UnitCellCoord{Sublattice: c.Sublattice, Cell: c.Cell.Add(t)}
}

// Compare imposes the deterministic total order on site coordinates:
// unit cell first (lexicographic), then sublattice index.
// Returns -1, 0 or +1.
func (c UnitCellCoord) Compare(other UnitCellCoord) int {
	if cmp := c.Cell.Compare(other.Cell); cmp != 0 {
		return cmp
	}
	switch {
	case c.Sublattice < other.Sublattice:
		return -1
	case c.Sublattice > other.Sublattice:
		return 1
	default:
		return 0
	}
}
