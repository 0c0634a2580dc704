package clust

import "github.com/quarzite/quarzite/xtal"

// SubClusterCounter enumerates the proper, non-empty subclusters of a
// prototype cluster by walking every size-reducing subset of its sites.
// Prototypes are small (clusters rarely exceed a handful of sites), so a
// bitmask walk over the 2^n subsets is exact and cheap.
type SubClusterCounter struct {
	prototype Cluster
}

// NewSubClusterCounter wraps a prototype cluster.
func NewSubClusterCounter(prototype Cluster) SubClusterCounter {
	return SubClusterCounter{prototype: prototype}
}

// ForEach calls fn once per proper, non-empty subcluster of the prototype.
// The prototype itself and the null cluster are excluded. Enumeration order
// is the ascending bitmask order over the prototype's sorted sites, so the
// walk is deterministic.
func (sc SubClusterCounter) ForEach(fn func(Cluster)) {
	n := sc.prototype.Size()
	if n < 2 {
		return
	}
	for mask := 1; mask < (1<<n)-1; mask++ {
		sites := make([]xtal.UnitCellCoord, 0, n-1)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sites = append(sites, sc.prototype.Site(i))
			}
		}
		fn(newCluster(sites))
	}
}

// SubClusters returns every proper, non-empty subcluster as a slice, in
// enumeration order.
func (sc SubClusterCounter) SubClusters() []Cluster {
	var subs []Cluster
	sc.ForEach(func(c Cluster) { subs = append(subs, c) })

	return subs
}
