package clust_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarzite/quarzite/clust"
)

func TestSubClusterCounter_Triplet(t *testing.T) {
	prototype, err := clust.NewCluster(site(0, 0, 0), site(3, 0, 0), site(0, 3, 0))
	require.NoError(t, err)

	subs := clust.NewSubClusterCounter(prototype).SubClusters()
	require.Len(t, subs, 6, "2^3 subsets minus the prototype and the null cluster")

	sizes := map[int]int{}
	for _, sub := range subs {
		sizes[sub.Size()]++
		for _, s := range sub.Sites() {
			require.True(t, prototype.Contains(s))
		}
	}
	require.Equal(t, map[int]int{1: 3, 2: 3}, sizes)
}

func TestSubClusterCounter_SmallPrototypes(t *testing.T) {
	require.Empty(t, clust.NewSubClusterCounter(clust.NullCluster()).SubClusters())

	single, err := clust.NewCluster(site(0, 0, 0))
	require.NoError(t, err)
	require.Empty(t, clust.NewSubClusterCounter(single).SubClusters(),
		"a single site has no proper non-empty subcluster")
}
