package clust

import (
	"sort"

	"github.com/quarzite/quarzite/xtal"
)

// Cluster is a finite set of exact integer site coordinates, held in
// ascending site order. Clusters are immutable values: every operation
// returns a new cluster. The zero value is the null (empty) cluster.
type Cluster struct {
	sites []xtal.UnitCellCoord
}

// NullCluster returns the empty cluster. Its orbit under any group is
// itself and every operation fixes it.
func NullCluster() Cluster { return Cluster{} }

// NewCluster constructs a cluster from the given sites. The input order is
// irrelevant: sites are sorted into the deterministic coordinate order.
// Returns ErrDuplicateSite when the same coordinate appears twice.
func NewCluster(sites ...xtal.UnitCellCoord) (Cluster, error) {
	c := newCluster(sites)
	for i := 1; i < len(c.sites); i++ {
		if c.sites[i-1] == c.sites[i] {
			return Cluster{}, ErrDuplicateSite
		}
	}

	return c, nil
}

// newCluster copies and sorts sites without the duplicate check; internal
// callers only ever pass distinct coordinates.
func newCluster(sites []xtal.UnitCellCoord) Cluster {
	if len(sites) == 0 {
		return Cluster{}
	}
	s := make([]xtal.UnitCellCoord, len(sites))
	copy(s, sites)
	sort.Slice(s, func(a, b int) bool { return s[a].Compare(s[b]) < 0 })

	return Cluster{sites: s}
}

// Size returns the number of sites.
func (c Cluster) Size() int { return len(c.sites) }

// Site returns the i-th site in ascending coordinate order.
func (c Cluster) Site(i int) xtal.UnitCellCoord { return c.sites[i] }

// Sites returns the sites in ascending coordinate order. Read-only.
func (c Cluster) Sites() []xtal.UnitCellCoord { return c.sites }

// Contains reports whether the cluster holds the given site.
func (c Cluster) Contains(site xtal.UnitCellCoord) bool {
	i := sort.Search(len(c.sites), func(k int) bool { return c.sites[k].Compare(site) >= 0 })

	return i < len(c.sites) && c.sites[i] == site
}

// WithSite returns a new cluster with one additional site. The caller must
// not pass a site already present; use Contains first.
func (c Cluster) WithSite(site xtal.UnitCellCoord) Cluster {
	sites := make([]xtal.UnitCellCoord, 0, len(c.sites)+1)
	sites = append(sites, c.sites...)
	sites = append(sites, site)

	return newCluster(sites)
}

// Translated returns the cluster shifted by the lattice translation t.
// Translation preserves the site order, so no re-sort is needed.
func (c Cluster) Translated(t xtal.UnitCell) Cluster {
	if len(c.sites) == 0 || t.IsZero() {
		return c
	}
	sites := make([]xtal.UnitCellCoord, len(c.sites))
	for i, s := range c.sites {
		sites[i] = s.Translated(t)
	}

	return Cluster{sites: sites}
}

// Compare imposes the deterministic total order used as the tie-break key
// in orbit deduplication: size first, then site-wise coordinate order.
// Returns -1, 0 or +1. Exact: no tolerance is involved.
func (c Cluster) Compare(other Cluster) int {
	switch {
	case len(c.sites) < len(other.sites):
		return -1
	case len(c.sites) > len(other.sites):
		return 1
	}
	for i := range c.sites {
		if cmp := c.sites[i].Compare(other.sites[i]); cmp != 0 {
			return cmp
		}
	}

	return 0
}

// Equal reports exact set equality.
func (c Cluster) Equal(other Cluster) bool { return c.Compare(other) == 0 }

// clusterLess adapts Compare to the engine's strict-order contract.
func clusterLess(a, b Cluster) bool { return a.Compare(b) < 0 }
