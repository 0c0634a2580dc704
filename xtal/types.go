// Package xtal: sentinel errors and shared numeric policy for the
// crystallographic primitives.
package xtal

import "errors"

// DefaultTol is the default absolute tolerance for floating-point lattice
// comparisons. Integer site coordinates never use a tolerance.
const DefaultTol = 1e-5

// Sentinel errors for xtal operations.
var (
	// ErrSingularLattice indicates a lattice whose column matrix is not
	// invertible (zero or near-zero volume).
	ErrSingularLattice = errors.New("xtal: lattice column matrix is singular")

	// ErrEmptyBasis indicates a structure with no basis sites.
	ErrEmptyBasis = errors.New("xtal: structure must have at least one basis site")

	// ErrNotIntegerTransform indicates a pair of lattices not related by an
	// integer transformation matrix within tolerance.
	ErrNotIntegerTransform = errors.New("xtal: superlattice is not an integer multiple of the prim lattice")

	// ErrIncompatibleOperation indicates a symmetry operation that does not
	// map the structure onto itself, so no exact integer site-coordinate
	// representation exists.
	ErrIncompatibleOperation = errors.New("xtal: operation has no exact integer site-coordinate representation")

	// ErrLatticePointCount indicates that enumeration of the lattice points
	// inside a supercell did not produce exactly |det(T)| points. This is an
	// internal-consistency failure and is not recoverable.
	ErrLatticePointCount = errors.New("xtal: lattice point enumeration is inconsistent with the supercell volume")

	// ErrCoordOutOfRange indicates a linear site index outside the converter
	// range.
	ErrCoordOutOfRange = errors.New("xtal: linear index out of range for this supercell")

	// ErrIncompletePermutation indicates a permutation vector with an
	// unassigned or repeated slot. This is an internal-consistency failure
	// and is not recoverable.
	ErrIncompletePermutation = errors.New("xtal: permutation is not a bijection")
)
