// Package symgroup implements the generic group-action engine and the
// SymGroup container it operates on.
//
// The engine is parametric over the object type T and the group-element
// representation E:
//
//   - MakeOrbit: every distinct image of an object under a group, as a
//     strictly ordered, deduplicated slice.
//   - MakeCanonicalElement: the maximum orbit member under a caller-supplied
//     strict total order — the unique, deterministic representative of the
//     object's equivalence class.
//   - MakeEquivalenceMap: for each orbit member, the indices of every group
//     element carrying the orbit's first member onto it.
//   - MakeInvariantSubgroupIndices: the stabilizer of an object, by direct
//     scan.
//   - MakeInvariantSubgroups: all per-orbit-member stabilizers, derived from
//     an equivalence map and the group's multiplication table without
//     repeating orbit generation.
//
// Transform functions must be pure: they return a new, normalized value and
// never mutate the element sequence. Given a deterministic order and
// transform, every result of this package is deterministic.
//
// SymGroup stores an ordered element sequence plus, for derived subgroups,
// the sorted head-group indices identifying each element's position in the
// parent group. An element's index is its identity surrogate everywhere in
// this module.
//
// Complexity: orbit generation and equivalence maps cost O(|G|·log|orbit|)
// transform-and-compare steps; stabilizer derivation from an equivalence
// map costs O(|orbit|·|stabilizer|) table lookups.
package symgroup
