// Package clust builds orbits of finite site clusters: periodic orbits
// under the full factor group of a crystal, and local orbits under a
// subgroup fixing a reference "phenomenal" cluster.
//
// The package provides:
//
//   - Cluster: an immutable, always-sorted set of exact integer site
//     coordinates. The empty (null) cluster is a valid value and is fixed
//     by every symmetry operation by convention.
//   - ClusterInvariants: a tolerance-aware, order-independent numeric
//     signature (cluster size, sorted inter-site distances and — for local
//     clusters — sorted distances to the phenomenal cluster) used both to
//     prune candidates and as the primary deduplication key.
//   - PrimPeriodicCopyApply / LocalCopyApply: the two transform
//     normalizations. The periodic transform translates the image so its
//     first site sits in the origin cell; the local transform does not
//     translate.
//   - MakePrimPeriodicOrbits / MakeLocalOrbits: the branch-growing search.
//     Clusters grow one site per branch from per-branch candidate pools,
//     are pruned by invariants, canonicalized, and deduplicated in a
//     sorted (invariants, cluster) pair set. Custom generators — and,
//     when requested, their subclusters — bypass every filter.
//   - MakeClusterGroups / MakeClusterGroup / MakeLocalClusterGroups: the
//     stabilizer subgroup of each orbit member. The periodic variants bake
//     the recovered lattice translation into each stabilizer element; the
//     local variant uses the equivalence-map indices directly.
//
// Determinism: candidate pools, orbit element order and the final orbit
// list order depend only on the inputs — never on map iteration or
// insertion order. Two symmetry-equivalent clusters always canonicalize to
// the identical Cluster value.
//
// Cost is CPU-bound combinatorics (candidates × group size); callers bound
// it through the per-branch max-length / cutoff-radius configuration. All
// functions are pure with respect to their inputs.
package clust
