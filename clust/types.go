// Package clust: sentinel errors, option structures and the strategy
// function types consumed by the orbit builders.
package clust

import (
	"errors"

	"github.com/quarzite/quarzite/xtal"
)

// Sentinel errors for cluster construction and orbit generation.
var (
	// ErrDuplicateSite indicates a cluster constructed with the same site
	// coordinate listed twice. Clusters are set-wise: duplicates are
	// forbidden.
	ErrDuplicateSite = errors.New("clust: duplicate site in cluster")

	// ErrRepMismatch indicates a group whose element count differs from the
	// site-coordinate representation count; the index alignment between the
	// two is relied upon everywhere.
	ErrRepMismatch = errors.New("clust: group size does not match representation count")

	// ErrEmptyOrbit indicates a stabilizer request for an empty orbit.
	ErrEmptyOrbit = errors.New("clust: orbit has no elements")
)

// SiteFilter decides whether a candidate site may enter any cluster.
// A nil filter admits every site.
type SiteFilter func(xtal.UnitCellCoord) bool

// ClusterFilter decides whether a freshly grown test cluster survives its
// branch, given its precomputed invariants. Custom-generator prototypes and
// their subclusters are never passed through a filter.
type ClusterFilter func(ClusterInvariants, Cluster) bool

// ClusterOrbitGenerator forces one prototype cluster (and, when requested,
// every proper subcluster of it) into the orbit list regardless of the
// branch filters. Generators represent known-important clusters that
// violate the generic distance cutoffs.
type ClusterOrbitGenerator struct {
	Prototype          Cluster
	IncludeSubclusters bool
}

// OrbitOptions configures periodic branch-growing orbit generation.
//
// MaxLength[b] is the Cartesian distance ceiling for clusters of size b;
// branches run for b = 1 … len(MaxLength)-1, so entries 0 and 1 are
// placeholders (size-0 and size-1 clusters have no pair distance). An empty
// or single-entry MaxLength produces only the null-cluster orbit, which is
// a valid, non-error outcome.
type OrbitOptions struct {
	MaxLength        []float64
	SiteFilter       SiteFilter
	Filter           ClusterFilter // overrides the per-branch max-length filter when set
	CustomGenerators []ClusterOrbitGenerator
}

// LocalOrbitOptions configures local branch-growing orbit generation around
// a phenomenal cluster.
//
// MaxLength drives the branch count exactly as in OrbitOptions: branches
// run for b = 1 … len(MaxLength)-1, branch 1 is unfiltered and every later
// branch applies the pairwise ceiling MaxLength[b]. CutoffRadius[b] bounds
// the distance from any phenomenal site to any candidate site for branch b;
// it must carry an entry for every branch MaxLength names.
//
// No validation is performed that the supplied site-coordinate
// representation is consistent with Phenomenal; callers are responsible
// for supplying the subgroup that fixes it.
type LocalOrbitOptions struct {
	Phenomenal             Cluster
	CutoffRadius           []float64
	MaxLength              []float64
	IncludePhenomenalSites bool
	SiteFilter             SiteFilter
	Filter                 ClusterFilter
	CustomGenerators       []ClusterOrbitGenerator
}
