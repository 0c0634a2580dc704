package clust_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/quarzite/quarzite/clust"
	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// requireFixesCluster asserts that op, applied in Cartesian coordinates,
// maps the cluster's site positions onto themselves as a set.
func requireFixesCluster(t *testing.T, op xtal.SymOp, c clust.Cluster, s *xtal.BasicStructure) {
	t.Helper()
	for _, siteCoord := range c.Sites() {
		pos := mat.NewVecDense(3, nil)
		pos.MulVec(op.Matrix, s.SiteCartesian(siteCoord))
		pos.AddVec(pos, op.Translation)

		matched := false
		for _, target := range c.Sites() {
			tp := s.SiteCartesian(target)
			d := 0.0
			for i := 0; i < 3; i++ {
				d += (pos.AtVec(i) - tp.AtVec(i)) * (pos.AtVec(i) - tp.AtVec(i))
			}
			if d < 1e-10 {
				matched = true

				break
			}
		}
		require.True(t, matched, "operation must map every site onto a cluster site")
	}
}

func TestMakeClusterGroup_NearestNeighborPair(t *testing.T) {
	fx := makeCubicFixture(t)
	lat := fx.structure.Lattice()

	pair, err := clust.NewCluster(site(0, 0, 0), site(1, 0, 0))
	require.NoError(t, err)

	group, err := clust.MakeClusterGroup(pair, fx.group, fx.reps, lat)
	require.NoError(t, err)

	// The dumbbell along x has 4/mmm symmetry: 8 operations fixing both
	// sites plus 8 swapping them via the recovered lattice translation.
	require.Equal(t, 16, group.Size())
	for _, op := range group.Elements() {
		requireFixesCluster(t, op, pair, fx.structure)
	}

	// Head-group indices are the induced sub-order of the parent.
	indices := group.HeadGroupIndex()
	for i := 1; i < len(indices); i++ {
		require.Greater(t, indices[i], indices[i-1])
	}
}

func TestMakeClusterGroup_NullCluster(t *testing.T) {
	fx := makeCubicFixture(t)

	group, err := clust.MakeClusterGroup(clust.NullCluster(), fx.group, fx.reps, fx.structure.Lattice())
	require.NoError(t, err)

	// Every operation fixes the null cluster, so its stabilizer is the
	// factor group itself — multiplication table included, ready for
	// further stabilizer derivation.
	require.Same(t, fx.group, group)
	require.True(t, group.HasMultiplicationTable())
}

func TestMakeClusterGroups_OrbitStabilizers(t *testing.T) {
	fx := makeCubicFixture(t)
	lat := fx.structure.Lattice()

	pair, err := clust.NewCluster(site(0, 0, 0), site(1, 0, 0))
	require.NoError(t, err)
	orbit := clust.MakePrimPeriodicOrbit(pair, fx.reps)
	require.Len(t, orbit, 3)

	groups, err := clust.MakeClusterGroups(orbit, fx.group, fx.reps, lat)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	for i, g := range groups {
		// Orbit-stabilizer: |G| = |orbit| · |stabilizer|.
		require.Equal(t, 16, g.Size())
		for _, op := range g.Elements() {
			requireFixesCluster(t, op, orbit[i], fx.structure)
		}
	}
}

func TestMakeClusterGroups_Errors(t *testing.T) {
	fx := makeCubicFixture(t)
	lat := fx.structure.Lattice()

	_, err := clust.MakeClusterGroups(nil, fx.group, fx.reps, lat)
	require.ErrorIs(t, err, clust.ErrEmptyOrbit)

	pair, err := clust.NewCluster(site(0, 0, 0), site(1, 0, 0))
	require.NoError(t, err)
	orbit := clust.MakePrimPeriodicOrbit(pair, fx.reps)

	_, err = clust.MakeClusterGroups(orbit, fx.group, fx.reps[:10], lat)
	require.ErrorIs(t, err, clust.ErrRepMismatch)

	// A derived subgroup carries no multiplication table.
	sub := symgroup.MakeSubgroup(fx.group, []int{fx.group.IdentityIndex()})
	subReps := []xtal.UnitCellCoordRep{fx.reps[fx.group.IdentityIndex()]}
	_, err = clust.MakeClusterGroups(orbit[:1], sub, subReps, lat)
	require.ErrorIs(t, err, symgroup.ErrNoMultiplicationTable)
}
