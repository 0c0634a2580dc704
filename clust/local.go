package clust

import (
	"fmt"

	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// LocalCopyApply applies rep to a cluster and sorts the image. Local
// clusters keep their absolute position relative to the phenomenal
// cluster, so no translation normalization is applied. Pure.
func LocalCopyApply(rep xtal.UnitCellCoordRep, c Cluster) Cluster {
	return applySorted(rep, c)
}

// MakeLocalOrbit returns the ascending orbit of a cluster under the local
// transform. reps must represent a group that fixes the phenomenal cluster;
// no consistency check is performed.
func MakeLocalOrbit(c Cluster, reps []xtal.UnitCellCoordRep) []Cluster {
	return symgroup.MakeOrbit(c, reps, clusterLess, LocalCopyApply)
}

// MakeLocalOrbits grows local cluster orbits around a phenomenal cluster,
// branch by branch.
//
// Branch b (cluster size b) runs for b = 1 … len(opts.MaxLength)-1, exactly
// as in the periodic variant; CutoffRadius never bounds the branch count
// and must carry an entry per branch. Each branch draws candidates from
// the sites within CutoffRadius[b] of some phenomenal site; the phenomenal
// cluster's own sites are excluded unless opts.IncludePhenomenalSites is
// set. Branch 1 applies no cluster filter; every later branch applies the
// pairwise distance ceiling MaxLength[b]. Custom generators bypass every
// filter, as in the periodic variant.
//
// reps must represent the subgroup fixing the phenomenal cluster. No
// validation of that consistency is performed; supplying an inconsistent
// representation silently produces meaningless orbits.
func MakeLocalOrbits(s *xtal.BasicStructure, reps []xtal.UnitCellCoordRep, opts LocalOrbitOptions) []Orbit {
	tol := s.Lattice().Tol()
	canonicalize := func(c Cluster) Cluster {
		return symgroup.MakeCanonicalElement(c, reps, clusterLess, LocalCopyApply)
	}
	invariants := func(c Cluster) ClusterInvariants {
		return MakeLocalClusterInvariants(c, opts.Phenomenal, s)
	}

	result := newPrototypeSet(tol)
	result.insert(prototypePair{invariants: invariants(NullCluster()), cluster: NullCluster()})

	prev := result.pairs
	for b := 1; b < len(opts.MaxLength); b++ {
		candidates := CutoffRadiusNeighborhood(
			s, opts.Phenomenal, opts.CutoffRadius[b], opts.IncludePhenomenalSites, opts.SiteFilter)

		filter := opts.Filter
		if filter == nil {
			if b == 1 {
				filter = AllClustersFilter()
			} else {
				filter = MaxLengthClusterFilter(opts.MaxLength[b], tol)
			}
		}

		branch := newPrototypeSet(tol)
		for _, pair := range prev {
			for _, site := range candidates {
				if pair.cluster.Contains(site) {
					continue
				}
				test := pair.cluster.WithSite(site)
				inv := invariants(test)
				if !filter(inv, test) {
					continue
				}
				branch.insert(prototypePair{invariants: inv, cluster: canonicalize(test)})
			}
		}
		result.insertAll(branch)
		prev = branch.pairs
	}

	insertGenerators(result, opts.CustomGenerators, canonicalize, invariants)

	return expandOrbits(result, reps, LocalCopyApply)
}

// MakeLocalClusterGroups computes the stabilizer subgroup of every orbit
// member in the local variant. Local clusters are not translation
// normalized, so the stabilizer is exactly the equivalence-map-derived
// index set — no translation correction is baked in.
//
// reps must be aligned index-for-index with group's elements, and group
// must carry a multiplication table (a head group built by
// symgroup.NewSymGroup).
func MakeLocalClusterGroups(
	orbit []Cluster,
	group *symgroup.SymGroup,
	reps []xtal.UnitCellCoordRep,
) ([]*symgroup.SymGroup, error) {
	if len(orbit) == 0 {
		return nil, ErrEmptyOrbit
	}
	if group.Size() != len(reps) {
		return nil, fmt.Errorf("%w: %d elements, %d representations", ErrRepMismatch, group.Size(), len(reps))
	}

	eqMap := symgroup.MakeEquivalenceMap(orbit, reps, clusterLess, LocalCopyApply)
	stabilizers, err := symgroup.MakeInvariantSubgroups(eqMap, group)
	if err != nil {
		return nil, err
	}

	groups := make([]*symgroup.SymGroup, len(orbit))
	for i, indices := range stabilizers {
		groups[i] = symgroup.MakeSubgroup(group, indices)
	}

	return groups, nil
}
