// Package xtal provides the crystallographic primitives consumed by the
// orbit engine: lattices, Cartesian symmetry operations, exact integer
// site coordinates, and the conversions between them.
//
// The package provides:
//
//   - Lattice: a 3×3 column matrix of lattice vectors (gonum mat.Dense)
//     with an attached comparison tolerance, plus a deterministic total
//     order used for canonical-form selection.
//   - SymOp: a Cartesian symmetry operation (matrix, translation, time
//     reversal) with composition and lattice application.
//   - UnitCell / UnitCellCoord: exact integer coordinates of unit cells
//     and of individual sites (sublattice index + unit cell). Equality is
//     integer equality — never tolerance-based.
//   - UnitCellCoordRep: the exact integer representation of how a SymOp
//     acts on site coordinates, derived from a BasicStructure.
//   - Superlattice: a supercell lattice tied to its prim lattice by an
//     integer transformation matrix.
//   - Canonical lattice helpers: CanonicalEquivalent, CanonicalCheck,
//     CanonicalOperationIndex and InvariantSubgroupIndices.
//   - UnitCellIndexConverter / UnitCellCoordIndexConverter: deterministic
//     linear-index enumerations of the unit cells and sites inside a
//     supercell, using exact integer (adjugate-based) bring-within.
//
// Determinism: every enumeration in this package is ordered by the
// lexicographic integer order of UnitCell/UnitCellCoord or by the
// tolerance-aware lattice order; no map iteration order leaks into
// results.
//
// Tolerances apply only to floating-point lattice geometry. Site
// coordinates and transformation matrices are exact integers.
package xtal
