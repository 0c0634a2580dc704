package clust

import (
	"sort"

	"github.com/quarzite/quarzite/xtal"
)

// ClusterInvariants is the order-independent numeric signature of a
// cluster: its size, its sorted inter-site distances and — for local
// clusters — its sorted site-to-phenomenal distances. Two clusters related
// by a symmetry operation always share the same invariants, so invariants
// serve as the primary deduplication key; the converse does not hold, which
// is why the cluster value itself remains the secondary key.
type ClusterInvariants struct {
	size                int
	distances           []float64 // ascending
	phenomenalDistances []float64 // ascending; nil for periodic clusters
}

// MakeClusterInvariants computes the periodic-variant invariants of a
// cluster: size plus all pairwise inter-site distances, ascending.
// Complexity: O(n²·log n) for n sites.
func MakeClusterInvariants(c Cluster, s *xtal.BasicStructure) ClusterInvariants {
	return ClusterInvariants{size: c.Size(), distances: pairDistances(c, s)}
}

// MakeLocalClusterInvariants computes the local-variant invariants: the
// periodic invariants plus the sorted distances from every cluster site to
// every phenomenal site.
func MakeLocalClusterInvariants(c, phenomenal Cluster, s *xtal.BasicStructure) ClusterInvariants {
	pheno := make([]float64, 0, c.Size()*phenomenal.Size())
	for i := 0; i < c.Size(); i++ {
		for j := 0; j < phenomenal.Size(); j++ {
			pheno = append(pheno, s.SiteDistance(c.Site(i), phenomenal.Site(j)))
		}
	}
	sort.Float64s(pheno)

	return ClusterInvariants{
		size:                c.Size(),
		distances:           pairDistances(c, s),
		phenomenalDistances: pheno,
	}
}

func pairDistances(c Cluster, s *xtal.BasicStructure) []float64 {
	n := c.Size()
	if n < 2 {
		return nil
	}
	distances := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			distances = append(distances, s.SiteDistance(c.Site(i), c.Site(j)))
		}
	}
	sort.Float64s(distances)

	return distances
}

// Size returns the cluster size the invariants were computed from.
func (ci ClusterInvariants) Size() int { return ci.size }

// Distances returns the ascending inter-site distances. Read-only.
func (ci ClusterInvariants) Distances() []float64 { return ci.distances }

// PhenomenalDistances returns the ascending site-to-phenomenal distances,
// or nil for periodic invariants. Read-only.
func (ci ClusterInvariants) PhenomenalDistances() []float64 { return ci.phenomenalDistances }

// MaxDistance returns the largest inter-site distance, or 0 for clusters
// with fewer than two sites.
func (ci ClusterInvariants) MaxDistance() float64 {
	if len(ci.distances) == 0 {
		return 0
	}

	return ci.distances[len(ci.distances)-1]
}

// Compare imposes the tolerance-aware total order on invariants: size
// first, then inter-site distances element-wise, then phenomenal distances
// element-wise, with values closer than tol treated as equal.
// Returns -1, 0 or +1.
func (ci ClusterInvariants) Compare(other ClusterInvariants, tol float64) int {
	switch {
	case ci.size < other.size:
		return -1
	case ci.size > other.size:
		return 1
	}
	if cmp := compareDistances(ci.distances, other.distances, tol); cmp != 0 {
		return cmp
	}

	return compareDistances(ci.phenomenalDistances, other.phenomenalDistances, tol)
}

func compareDistances(a, b []float64, tol float64) int {
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := range a {
		switch {
		case a[i] < b[i]-tol:
			return -1
		case a[i] > b[i]+tol:
			return 1
		}
	}

	return 0
}
