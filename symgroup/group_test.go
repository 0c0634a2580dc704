package symgroup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// c2vOps returns the four operations of the C2v point group: identity,
// 180° rotation about z, and the two vertical mirrors.
func c2vOps() []xtal.SymOp {
	return []xtal.SymOp{
		xtal.NewSymOp([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]float64{}, false),
		xtal.NewSymOp([3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, [3]float64{}, false),
		xtal.NewSymOp([3][3]float64{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]float64{}, false),
		xtal.NewSymOp([3][3]float64{{1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, [3]float64{}, false),
	}
}

func exactMatches(a, b xtal.SymOp) bool { return xtal.SymOpMatches(a, b, 1e-9) }

func TestNewSymGroup_C2v(t *testing.T) {
	g, err := symgroup.NewSymGroup(c2vOps(), exactMatches)
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())
	require.True(t, g.HasMultiplicationTable())
	require.Equal(t, 0, g.IdentityIndex())

	// C2v is abelian and every element is its own inverse.
	for i := 0; i < 4; i++ {
		require.Equal(t, i, g.Inv(i))
		for j := 0; j < 4; j++ {
			require.Equal(t, g.Mul(i, j), g.Mul(j, i))
		}
	}

	// Rotation ∘ mirror(x) = mirror(y).
	require.Equal(t, 3, g.Mul(1, 2))
}

func TestNewSymGroup_Errors(t *testing.T) {
	_, err := symgroup.NewSymGroup(nil, exactMatches)
	require.ErrorIs(t, err, symgroup.ErrEmptyGroup)

	// Identity plus a single mirror of a pair that is not closed.
	ops := []xtal.SymOp{
		xtal.NewSymOp([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, [3]float64{}, false),
		xtal.NewSymOp([3][3]float64{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, [3]float64{}, false), // 90° rotation
		xtal.NewSymOp([3][3]float64{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}, [3]float64{}, false),
	}
	_, err = symgroup.NewSymGroup(ops, exactMatches)
	require.ErrorIs(t, err, symgroup.ErrNotClosed)
}

func TestNewSubgroup_InducedOrder(t *testing.T) {
	head, err := symgroup.NewSymGroup(c2vOps(), exactMatches)
	require.NoError(t, err)

	sub := symgroup.MakeSubgroup(head, []int{3, 0, 3})
	require.Equal(t, 2, sub.Size(), "duplicate indices must merge")
	require.Equal(t, []int{0, 3}, sub.HeadGroupIndex())
	require.Same(t, head, sub.Head())
	require.True(t, exactMatches(head.Element(3), sub.Element(1)))
	require.False(t, sub.HasMultiplicationTable())
}

func TestMakeInvariantSubgroups_FromEquivalenceMap(t *testing.T) {
	head, err := symgroup.NewSymGroup(c2vOps(), exactMatches)
	require.NoError(t, err)

	// Action of C2v on the four quadrant labels: quadrant q = (sx, sy)
	// encoded as 0:(+,+) 1:(-,+) 2:(-,-) 3:(+,-).
	apply := func(opIx, q int) int {
		table := [4][4]int{
			{0, 1, 2, 3}, // identity
			{2, 3, 0, 1}, // C2 rotation
			{1, 0, 3, 2}, // mirror x→-x
			{3, 2, 1, 0}, // mirror y→-y
		}

		return table[opIx][q]
	}
	elems := []int{0, 1, 2, 3}
	less := func(a, b int) bool { return a < b }

	orbit := symgroup.MakeOrbit(0, elems, less, apply)
	require.Equal(t, []int{0, 1, 2, 3}, orbit)

	eqMap := symgroup.MakeEquivalenceMap(orbit, elems, less, apply)
	subgroups, err := symgroup.MakeInvariantSubgroups(eqMap, head)
	require.NoError(t, err)
	require.Len(t, subgroups, 4)

	// The action is free, so every stabilizer is the identity alone.
	for _, sub := range subgroups {
		require.Equal(t, []int{0}, sub)
	}
}

func TestMakeInvariantSubgroups_RequiresTable(t *testing.T) {
	head, err := symgroup.NewSymGroup(c2vOps(), exactMatches)
	require.NoError(t, err)
	sub := symgroup.MakeSubgroup(head, []int{0, 1})

	_, err = symgroup.MakeInvariantSubgroups([][]int{{0}}, sub)
	require.ErrorIs(t, err, symgroup.ErrNoMultiplicationTable)
}

func TestMakeInvariantSubgroups_NonFreeAction(t *testing.T) {
	head, err := symgroup.NewSymGroup(c2vOps(), exactMatches)
	require.NoError(t, err)

	// Action on the two half-plane labels {0: x>0, 1: x<0}: the rotation
	// and the x-mirror swap them, identity and the y-mirror fix them.
	apply := func(opIx, h int) int {
		if opIx == 1 || opIx == 2 {
			return 1 - h
		}

		return h
	}
	elems := []int{0, 1, 2, 3}
	less := func(a, b int) bool { return a < b }

	orbit := symgroup.MakeOrbit(0, elems, less, apply)
	eqMap := symgroup.MakeEquivalenceMap(orbit, elems, less, apply)
	subgroups, err := symgroup.MakeInvariantSubgroups(eqMap, head)
	require.NoError(t, err)

	// Both orbit members are stabilized by {identity, y-mirror}.
	require.Equal(t, [][]int{{0, 3}, {0, 3}}, subgroups)

	// Stabilizer correctness: each listed element fixes its orbit member.
	for i, sub := range subgroups {
		for _, j := range sub {
			require.Equal(t, orbit[i], apply(j, orbit[i]))
		}
	}
}
