package clust

import "sort"

// prototypePair couples a canonical cluster with its precomputed
// invariants. Invariants are symmetry-invariant, so the pair computed for a
// test cluster is valid for its canonical form as well.
type prototypePair struct {
	invariants ClusterInvariants
	cluster    Cluster
}

// prototypeSet is a sorted, deduplicating set of (invariants, cluster)
// pairs, keyed first by the tolerance-aware invariants order and then by
// the exact cluster order. Invariants-first keying makes deduplication of
// symmetry-equivalent placements a binary search over a numeric signature
// instead of a pairwise orbit-membership test against the full group.
// Insertion is idempotent: duplicate keys silently merge.
type prototypeSet struct {
	tol   float64
	pairs []prototypePair
}

func newPrototypeSet(tol float64) *prototypeSet {
	return &prototypeSet{tol: tol}
}

func (ps *prototypeSet) compare(a, b prototypePair) int {
	if cmp := a.invariants.Compare(b.invariants, ps.tol); cmp != 0 {
		return cmp
	}

	return a.cluster.Compare(b.cluster)
}

// insert adds the pair unless an equal key is already present.
// Complexity: O(log n) comparisons + O(n) move.
func (ps *prototypeSet) insert(p prototypePair) {
	i := sort.Search(len(ps.pairs), func(k int) bool { return ps.compare(ps.pairs[k], p) >= 0 })
	if i < len(ps.pairs) && ps.compare(ps.pairs[i], p) == 0 {
		return
	}
	ps.pairs = append(ps.pairs, prototypePair{})
	copy(ps.pairs[i+1:], ps.pairs[i:])
	ps.pairs[i] = p
}

// insertAll merges another set into this one.
func (ps *prototypeSet) insertAll(other *prototypeSet) {
	for _, p := range other.pairs {
		ps.insert(p)
	}
}
