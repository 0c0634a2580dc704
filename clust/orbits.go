package clust

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// Orbit is one equivalence class of clusters: the ascending, deduplicated
// images of a representative under the group, plus the shared invariants.
type Orbit struct {
	invariants ClusterInvariants
	elements   []Cluster
}

// Invariants returns the signature shared by every orbit element.
func (o Orbit) Invariants() ClusterInvariants { return o.invariants }

// Elements returns the orbit members in ascending cluster order. Read-only.
func (o Orbit) Elements() []Cluster { return o.elements }

// Size returns the number of distinct orbit members.
func (o Orbit) Size() int { return len(o.elements) }

// Prototype returns the canonical representative: the maximum orbit member.
func (o Orbit) Prototype() Cluster { return o.elements[len(o.elements)-1] }

// applySorted applies rep to every site and returns the sorted image
// without translation normalization. The first site of the result is the
// reference for recovering the lattice translation the normalized
// transform would have applied.
func applySorted(rep xtal.UnitCellCoordRep, c Cluster) Cluster {
	if c.Size() == 0 {
		return c
	}
	sites := make([]xtal.UnitCellCoord, c.Size())
	for i, site := range c.Sites() {
		sites[i] = xtal.CopyApplyCoord(rep, site)
	}

	return newCluster(sites)
}

// PrimPeriodicCopyApply applies rep to a cluster and normalizes the image
// by translating it so its first (sorted) site sits in the origin cell.
// This is the transform of the periodic variant: two clusters related by a
// pure lattice translation map to the identical value. Pure.
func PrimPeriodicCopyApply(rep xtal.UnitCellCoordRep, c Cluster) Cluster {
	image := applySorted(rep, c)
	if image.Size() == 0 {
		return image
	}

	return image.Translated(image.Site(0).Cell.Neg())
}

// MakePrimPeriodicOrbit returns the ascending orbit of a cluster under the
// periodic transform.
func MakePrimPeriodicOrbit(c Cluster, reps []xtal.UnitCellCoordRep) []Cluster {
	return symgroup.MakeOrbit(c, reps, clusterLess, PrimPeriodicCopyApply)
}

// MakePrimPeriodicOrbits grows periodic cluster orbits branch by branch.
//
// Branch b (cluster size b) runs for b = 1 … len(opts.MaxLength)-1. The
// first branch draws candidates from the origin unit cell; later branches
// draw from every site within MaxLength[b] of the origin cell. Each
// surviving cluster of the previous branch is extended by each candidate
// site, pruned by the branch filter, canonicalized and deduplicated by
// (invariants, cluster). Custom-generator prototypes (and, when requested,
// their subclusters) are inserted afterwards, bypassing every filter. The
// null cluster is always the first orbit.
//
// The result is ordered ascending by (invariants, prototype), so orbits
// appear by size, then by distance signature.
func MakePrimPeriodicOrbits(s *xtal.BasicStructure, reps []xtal.UnitCellCoordRep, opts OrbitOptions) []Orbit {
	tol := s.Lattice().Tol()
	canonicalize := func(c Cluster) Cluster {
		return symgroup.MakeCanonicalElement(c, reps, clusterLess, PrimPeriodicCopyApply)
	}

	result := newPrototypeSet(tol)
	result.insert(prototypePair{invariants: MakeClusterInvariants(NullCluster(), s), cluster: NullCluster()})

	prev := result.pairs
	for b := 1; b < len(opts.MaxLength); b++ {
		var candidates []xtal.UnitCellCoord
		if b == 1 {
			candidates = OriginNeighborhood(s, opts.SiteFilter)
		} else {
			candidates = MaxLengthNeighborhood(s, opts.MaxLength[b], opts.SiteFilter)
		}
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
				invariants := MakeClusterInvariants(test, s)
				if !filter(invariants, test) {
					continue
				}
				branch.insert(prototypePair{invariants: invariants, cluster: canonicalize(test)})
			}
		}
		result.insertAll(branch)
		prev = branch.pairs
	}

	insertGenerators(result, opts.CustomGenerators, canonicalize, func(c Cluster) ClusterInvariants {
		return MakeClusterInvariants(c, s)
	})

	return expandOrbits(result, reps, PrimPeriodicCopyApply)
}

// insertGenerators adds every custom-generator prototype — canonicalized,
// never filtered — and, when requested, every proper subcluster of it.
func insertGenerators(
	set *prototypeSet,
	generators []ClusterOrbitGenerator,
	canonicalize func(Cluster) Cluster,
	invariants func(Cluster) ClusterInvariants,
) {
	for _, gen := range generators {
		canonical := canonicalize(gen.Prototype)
		set.insert(prototypePair{invariants: invariants(canonical), cluster: canonical})
		if !gen.IncludeSubclusters {
			continue
		}
		NewSubClusterCounter(gen.Prototype).ForEach(func(sub Cluster) {
			canonicalSub := canonicalize(sub)
			set.insert(prototypePair{invariants: invariants(canonicalSub), cluster: canonicalSub})
		})
	}
}

// expandOrbits turns each unique (invariants, prototype) pair into its full
// orbit.
func expandOrbits(
	set *prototypeSet,
	reps []xtal.UnitCellCoordRep,
	apply symgroup.TransformFunc[xtal.UnitCellCoordRep, Cluster],
) []Orbit {
	orbits := make([]Orbit, 0, len(set.pairs))
	for _, pair := range set.pairs {
		elements := symgroup.MakeOrbit(pair.cluster, reps, clusterLess, apply)
		if len(elements) == 0 {
			elements = []Cluster{pair.cluster}
		}
		orbits = append(orbits, Orbit{invariants: pair.invariants, elements: elements})
	}

	return orbits
}

// latticeTranslationOp returns the pure translation operation moving the
// crystal by the lattice vector t, in Cartesian coordinates.
func latticeTranslationOp(lat xtal.Lattice, t xtal.UnitCell) xtal.SymOp {
	frac := mat.NewVecDense(3, []float64{float64(t[0]), float64(t[1]), float64(t[2])})
	cart := lat.FracToCart(frac)

	return xtal.NewSymOp(
		[3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		[3]float64{cart.AtVec(0), cart.AtVec(1), cart.AtVec(2)},
		false,
	)
}

// clusterGroupElement folds into op the lattice translation that maps op's
// sorted image of c back onto c. The periodic transform normalizes only up
// to translation; stabilizer elements must carry the exact translation.
func clusterGroupElement(op xtal.SymOp, rep xtal.UnitCellCoordRep, c Cluster, lat xtal.Lattice) xtal.SymOp {
	if c.Size() == 0 {
		return op
	}
	image := applySorted(rep, c)
	t := c.Site(0).Cell.Sub(image.Site(0).Cell)
	if t.IsZero() {
		return op
	}

	return xtal.Compose(latticeTranslationOp(lat, t), op)
}

// MakeClusterGroups computes the stabilizer subgroup of every orbit member
// in the periodic variant. The equivalence map of the orbit is reduced to
// per-member stabilizer index sets through the group's multiplication
// table, then each stabilizer element gets the recovered lattice
// translation baked in.
//
// reps must be aligned index-for-index with group's elements, and group
// must carry a multiplication table (a head group built by
// symgroup.NewSymGroup).
func MakeClusterGroups(
	orbit []Cluster,
	group *symgroup.SymGroup,
	reps []xtal.UnitCellCoordRep,
	lat xtal.Lattice,
) ([]*symgroup.SymGroup, error) {
	if len(orbit) == 0 {
		return nil, ErrEmptyOrbit
	}
	if group.Size() != len(reps) {
		return nil, fmt.Errorf("%w: %d elements, %d representations", ErrRepMismatch, group.Size(), len(reps))
	}

	eqMap := symgroup.MakeEquivalenceMap(orbit, reps, clusterLess, PrimPeriodicCopyApply)
	stabilizers, err := symgroup.MakeInvariantSubgroups(eqMap, group)
	if err != nil {
		return nil, err
	}

	groups := make([]*symgroup.SymGroup, len(orbit))
	for i, indices := range stabilizers {
		elements := make([]xtal.SymOp, len(indices))
		for k, g := range indices {
			elements[k] = clusterGroupElement(group.Element(g), reps[g], orbit[i], lat)
		}
		groups[i] = symgroup.NewSubgroup(group, elements, indices)
	}

	return groups, nil
}

// MakeClusterGroup computes the stabilizer of a single cluster by scanning
// every group element directly, recovering the lattice translation per
// element. Use this when only one cluster — not a full orbit — is known.
// No multiplication table is required. The null cluster is fixed by every
// element, so its stabilizer is group itself (multiplication table and
// all, when group carries one).
func MakeClusterGroup(
	c Cluster,
	group *symgroup.SymGroup,
	reps []xtal.UnitCellCoordRep,
	lat xtal.Lattice,
) (*symgroup.SymGroup, error) {
	if group.Size() != len(reps) {
		return nil, fmt.Errorf("%w: %d elements, %d representations", ErrRepMismatch, group.Size(), len(reps))
	}
	if c.Size() == 0 {
		return group, nil
	}

	var elements []xtal.SymOp
	var indices []int
	for g := 0; g < group.Size(); g++ {
		image := applySorted(reps[g], c)
		t := c.Site(0).Cell.Sub(image.Site(0).Cell)
		if !image.Translated(t).Equal(c) {
			continue
		}
		elements = append(elements, clusterGroupElement(group.Element(g), reps[g], c, lat))
		indices = append(indices, g)
	}

	return symgroup.NewSubgroup(group, elements, indices), nil
}
