package clust_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarzite/quarzite/clust"
)

const tol = 1e-9

func TestMakeClusterInvariants_SortedDistances(t *testing.T) {
	fx := makeCubicFixture(t)

	c, err := clust.NewCluster(site(0, 0, 0), site(1, 0, 0), site(1, 1, 0))
	require.NoError(t, err)

	inv := clust.MakeClusterInvariants(c, fx.structure)
	require.Equal(t, 3, inv.Size())
	require.Len(t, inv.Distances(), 3)
	require.InDelta(t, 1.0, inv.Distances()[0], tol)
	require.InDelta(t, 1.0, inv.Distances()[1], tol)
	require.InDelta(t, math.Sqrt2, inv.Distances()[2], tol)
	require.InDelta(t, math.Sqrt2, inv.MaxDistance(), tol)
	require.Nil(t, inv.PhenomenalDistances())
}

func TestMakeClusterInvariants_SmallClusters(t *testing.T) {
	fx := makeCubicFixture(t)

	null := clust.MakeClusterInvariants(clust.NullCluster(), fx.structure)
	require.Equal(t, 0, null.Size())
	require.Empty(t, null.Distances())
	require.Zero(t, null.MaxDistance())

	single, err := clust.NewCluster(site(3, 0, 0))
	require.NoError(t, err)
	inv := clust.MakeClusterInvariants(single, fx.structure)
	require.Equal(t, 1, inv.Size())
	require.Empty(t, inv.Distances())
}

func TestMakeLocalClusterInvariants(t *testing.T) {
	fx := makeCubicFixture(t)

	phenomenal, err := clust.NewCluster(site(0, 0, 0), site(1, 0, 0))
	require.NoError(t, err)
	c, err := clust.NewCluster(site(0, 1, 0))
	require.NoError(t, err)

	inv := clust.MakeLocalClusterInvariants(c, phenomenal, fx.structure)
	require.Equal(t, 1, inv.Size())
	require.Empty(t, inv.Distances())
	require.Len(t, inv.PhenomenalDistances(), 2)
	require.InDelta(t, 1.0, inv.PhenomenalDistances()[0], tol)
	require.InDelta(t, math.Sqrt2, inv.PhenomenalDistances()[1], tol)
}

func TestClusterInvariants_Compare(t *testing.T) {
	fx := makeCubicFixture(t)

	nn, err := clust.NewCluster(site(0, 0, 0), site(1, 0, 0))
	require.NoError(t, err)
	nnn, err := clust.NewCluster(site(0, 0, 0), site(1, 1, 0))
	require.NoError(t, err)
	single, err := clust.NewCluster(site(0, 0, 0))
	require.NoError(t, err)

	invNN := clust.MakeClusterInvariants(nn, fx.structure)
	invNNN := clust.MakeClusterInvariants(nnn, fx.structure)
	invSingle := clust.MakeClusterInvariants(single, fx.structure)

	cmpTol := 1e-5
	require.Negative(t, invSingle.Compare(invNN, cmpTol), "size orders before distance")
	require.Negative(t, invNN.Compare(invNNN, cmpTol))
	require.Positive(t, invNNN.Compare(invNN, cmpTol))
	require.Zero(t, invNN.Compare(invNN, cmpTol))

	// A symmetry image shares the invariants exactly.
	rotated, err := clust.NewCluster(site(0, 0, 0), site(0, 0, 1))
	require.NoError(t, err)
	require.Zero(t, invNN.Compare(clust.MakeClusterInvariants(rotated, fx.structure), cmpTol))
}
