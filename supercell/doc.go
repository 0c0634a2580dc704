// Package supercell provides supercell values over a shared prim, their
// canonical forms under the prim point group, and the per-supercell
// symmetry info consumed by site-permutation representations.
//
// The package provides:
//
//   - Prim: the shared, immutable parent of every supercell — structure,
//     factor group, derived point group and the exact integer
//     site-coordinate representation of each factor-group operation.
//   - Supercell: a prim handle plus a Superlattice. Two supercells are the
//     same object only when both the prim and the transformation matrix
//     match exactly; symmetry comparison always goes through the lattice.
//   - Canonical form: IsCanonical, MakeCanonicalForm, ToCanonical,
//     FromCanonical, MakeEquivalents and SiteIndicesAreInvariant.
//   - SymInfo: the supercell factor group (prim factor-group operations
//     compatible with the supercell shape) and the translation and
//     factor-group permutations of the supercell's enumerated sites.
//
// Error policy: a missing to/from-canonical mapping or a partially
// assigned permutation signals a broken symmetry-group invariant, not bad
// input. These surface as ErrCanonicalMappingNotFound or a wrapped
// xtal.ErrIncompletePermutation and are not recoverable.
//
// All functions are pure with respect to their inputs; prims and groups
// are never mutated after construction.
package supercell
