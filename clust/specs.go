package clust

import (
	"math"

	"github.com/quarzite/quarzite/xtal"
)

// OriginNeighborhood returns the candidate sites for the first branch of
// periodic orbit generation: every sublattice site of the origin unit
// cell, passing the filter. Periodic clusters are translation-normalized
// to the origin cell, so one site per sublattice suffices for size-1
// clusters.
func OriginNeighborhood(s *xtal.BasicStructure, filter SiteFilter) []xtal.UnitCellCoord {
	sites := make([]xtal.UnitCellCoord, 0, s.NumSublattices())
	for b := 0; b < s.NumSublattices(); b++ {
		site := xtal.UnitCellCoord{Sublattice: b}
		if filter == nil || filter(site) {
			sites = append(sites, site)
		}
	}

	return sites
}

// MaxLengthNeighborhood returns every site within maxLength of some
// origin-cell site, passing the filter, in ascending coordinate order.
// The unit-cell search range is bounded through the lattice plane
// spacings.
func MaxLengthNeighborhood(s *xtal.BasicStructure, maxLength float64, filter SiteFilter) []xtal.UnitCellCoord {
	anchors := make([]xtal.UnitCellCoord, s.NumSublattices())
	for b := range anchors {
		anchors[b] = xtal.UnitCellCoord{Sublattice: b}
	}

	return neighborhood(s, anchors, maxLength, nil, filter)
}

// CutoffRadiusNeighborhood returns every site within cutoff of some
// phenomenal site, passing the filter, in ascending coordinate order. The
// phenomenal cluster's own sites are excluded unless includePhenomenalSites
// is set.
func CutoffRadiusNeighborhood(
	s *xtal.BasicStructure,
	phenomenal Cluster,
	cutoff float64,
	includePhenomenalSites bool,
	filter SiteFilter,
) []xtal.UnitCellCoord {
	exclude := func(site xtal.UnitCellCoord) bool {
		return !includePhenomenalSites && phenomenal.Contains(site)
	}

	return neighborhood(s, phenomenal.Sites(), cutoff, exclude, filter)
}

// neighborhood scans the unit cells around every anchor site and keeps the
// sites within radius of at least one anchor. The per-direction cell range
// is ceil(radius / plane spacing) + 1 around the anchor's cell; a site
// within radius of an anchor cannot lie outside that box.
func neighborhood(
	s *xtal.BasicStructure,
	anchors []xtal.UnitCellCoord,
	radius float64,
	exclude func(xtal.UnitCellCoord) bool,
	filter SiteFilter,
) []xtal.UnitCellCoord {
	if radius < 0 || len(anchors) == 0 {
		return nil
	}
	tol := s.Lattice().Tol()
	spacings := s.Lattice().PlaneSpacings()
	var ranges [3]int
	for i := 0; i < 3; i++ {
		ranges[i] = int(math.Ceil(radius/spacings[i])) + 1
	}

	var lo, hi xtal.UnitCell
	for i := 0; i < 3; i++ {
		lo[i] = anchors[0].Cell[i]
		hi[i] = anchors[0].Cell[i]
	}
	for _, a := range anchors[1:] {
		for i := 0; i < 3; i++ {
			if a.Cell[i] < lo[i] {
				lo[i] = a.Cell[i]
			}
			if a.Cell[i] > hi[i] {
				hi[i] = a.Cell[i]
			}
		}
	}

	var sites []xtal.UnitCellCoord
	for ci := lo[0] - ranges[0]; ci <= hi[0]+ranges[0]; ci++ {
		for cj := lo[1] - ranges[1]; cj <= hi[1]+ranges[1]; cj++ {
			for ck := lo[2] - ranges[2]; ck <= hi[2]+ranges[2]; ck++ {
				for b := 0; b < s.NumSublattices(); b++ {
					site := xtal.UnitCellCoord{Sublattice: b, Cell: xtal.UnitCell{ci, cj, ck}}
					if exclude != nil && exclude(site) {
						continue
					}
					if filter != nil && !filter(site) {
						continue
					}
					if withinRadius(s, site, anchors, radius, tol) {
						sites = append(sites, site)
					}
				}
			}
		}
	}

	return sites
}

func withinRadius(s *xtal.BasicStructure, site xtal.UnitCellCoord, anchors []xtal.UnitCellCoord, radius, tol float64) bool {
	for _, a := range anchors {
		if s.SiteDistance(site, a) <= radius+tol {
			return true
		}
	}

	return false
}

// AllClustersFilter accepts every cluster.
func AllClustersFilter() ClusterFilter {
	return func(ClusterInvariants, Cluster) bool { return true }
}

// MaxLengthClusterFilter accepts clusters whose largest inter-site
// distance does not exceed maxLength, within tol. Clusters with fewer than
// two sites always pass.
func MaxLengthClusterFilter(maxLength, tol float64) ClusterFilter {
	return func(invariants ClusterInvariants, _ Cluster) bool {
		return invariants.Size() < 2 || invariants.MaxDistance() <= maxLength+tol
	}
}
