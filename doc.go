// Package quarzite is an in-memory engine for enumerating symmetrically
// distinct geometric configurations of a periodic crystal — supercell
// shapes and finite site clusters — and for selecting a unique,
// deterministic canonical representative of every equivalence class.
//
// 🚀 What is quarzite?
//
//	A deterministic, exact (no floating-point orbit membership tests)
//	library that brings together:
//		• Group action engine: orbits, canonical elements, equivalence
//		  maps and invariant (stabilizer) subgroups, generic over the
//		  object type and the group-element representation
//		• Supercell canonical forms: canonical lattices, to/from-canonical
//		  operations and symmetry-distinct equivalents
//		• Cluster orbits: branch-by-branch growth of periodic and local
//		  clusters with invariants-first deduplication, site filters,
//		  distance cutoffs and custom generators
//		• Supercell symmetry info: factor groups and the translation and
//		  factor-group site permutations of a supercell
//
// ✨ Why choose quarzite?
//
//   - Deterministic by construction – every orbit, representative and
//     stabilizer is reproducible across runs and platforms
//   - Exact where it matters – site coordinates are integers; tolerances
//     apply only to lattice geometry, never to combinatorial identity
//   - Pure Go – no cgo; linear algebra via gonum
//   - Extensible – site filters, cluster filters and candidate-site
//     strategies are plain function values
//
// Under the hood, everything is organized under four subpackages:
//
//	xtal/      — lattices, symmetry operations, integer site coordinates,
//	             index converters & canonical lattice comparison
//	symgroup/  — generic orbit/canonical/equivalence-map engine and the
//	             SymGroup container (elements + head-group indices)
//	supercell/ — supercell canonical forms and per-supercell symmetry info
//	clust/     — periodic and local cluster orbit generation, cluster
//	             invariants and cluster (stabilizer) groups
//
// Quick ASCII example:
//
//	prim lattice          2×2 supercell        pair cluster
//	┌───┐                 ┌───┬───┐            ●───●
//	│   │        →        ├───┼───┤            within one
//	└───┘                 └───┴───┘            symmetry orbit
//
// The engine is synchronous and side-effect free: prims and groups are
// immutable after construction, and every result is a value computed on
// demand.
//
//	go get github.com/quarzite/quarzite
package quarzite
