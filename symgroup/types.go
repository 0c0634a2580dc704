// Package symgroup: sentinel errors and the function types consumed by the
// generic group-action engine.
package symgroup

import "errors"

// Sentinel errors for group construction and stabilizer derivation.
var (
	// ErrEmptyGroup indicates an attempt to build a group with no elements.
	ErrEmptyGroup = errors.New("symgroup: group must have at least one element")

	// ErrNotClosed indicates that the product of two elements matched no
	// element of the group while building the multiplication table.
	ErrNotClosed = errors.New("symgroup: element product not found in group")

	// ErrMissingInverse indicates an element with no inverse in the group.
	ErrMissingInverse = errors.New("symgroup: element has no inverse in group")

	// ErrMissingIdentity indicates a group whose multiplication table
	// contains no identity element.
	ErrMissingIdentity = errors.New("symgroup: group has no identity element")

	// ErrNoMultiplicationTable indicates a stabilizer derivation against a
	// group that was constructed without a multiplication table (e.g. a
	// derived subgroup); use the head group instead.
	ErrNoMultiplicationTable = errors.New("symgroup: group has no multiplication table")

	// ErrEmptyEquivalenceMap indicates an equivalence map row with no
	// element indices. For an orbit generated by the same group this cannot
	// happen; it signals an internal-consistency failure upstream.
	ErrEmptyEquivalenceMap = errors.New("symgroup: equivalence map row is empty")
)

// TransformFunc applies a group element representation to an object and
// returns a new, normalized value. Implementations must be pure.
type TransformFunc[E, T any] func(E, T) T

// LessFunc is a strict total order on T. Two objects are equal exactly when
// neither compares less than the other.
type LessFunc[T any] func(T, T) bool
