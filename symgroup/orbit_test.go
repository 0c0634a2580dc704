package symgroup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quarzite/quarzite/symgroup"
)

// The cyclic group C4 acting on positions 0..3 by rotation is the smallest
// useful fixture for the generic engine: elements are rotation amounts.
var c4 = []int{0, 1, 2, 3}

func rotate(e, x int) int { return (x + e) % 4 }

func intLess(a, b int) bool { return a < b }

func TestMakeOrbit_Cyclic(t *testing.T) {
	orbit := symgroup.MakeOrbit(1, c4, intLess, rotate)
	require.Equal(t, []int{0, 1, 2, 3}, orbit)
}

func TestMakeOrbit_EmptyElements(t *testing.T) {
	require.Empty(t, symgroup.MakeOrbit(7, nil, intLess, rotate))
}

func TestMakeOrbit_Closure(t *testing.T) {
	orbit := symgroup.MakeOrbit(2, c4, intLess, rotate)
	for _, x := range orbit {
		for _, e := range c4 {
			image := rotate(e, x)
			found := false
			for _, y := range orbit {
				if y == image {
					found = true

					break
				}
			}
			require.True(t, found, "orbit must be closed under the group action")
		}
	}
}

func TestMakeCanonicalElement_Properties(t *testing.T) {
	// Canonical element is the orbit maximum.
	require.Equal(t, 3, symgroup.MakeCanonicalElement(1, c4, intLess, rotate))

	// Idempotence.
	c := symgroup.MakeCanonicalElement(2, c4, intLess, rotate)
	require.Equal(t, c, symgroup.MakeCanonicalElement(c, c4, intLess, rotate))

	// Class invariance: every member of the same orbit canonicalizes to the
	// identical value.
	orbit := symgroup.MakeOrbit(0, c4, intLess, rotate)
	for _, x := range orbit {
		require.Equal(t, 3, symgroup.MakeCanonicalElement(x, c4, intLess, rotate))
	}

	// Empty element sequence returns the object unchanged.
	require.Equal(t, 9, symgroup.MakeCanonicalElement(9, nil, intLess, rotate))
}

func TestMakeEquivalenceMap_Cyclic(t *testing.T) {
	orbit := symgroup.MakeOrbit(0, c4, intLess, rotate)
	eqMap := symgroup.MakeEquivalenceMap(orbit, c4, intLess, rotate)

	require.Len(t, eqMap, 4)
	for i, row := range eqMap {
		require.Len(t, row, 1, "free action: exactly one element per image")
		require.Equal(t, orbit[i], rotate(c4[row[0]], orbit[0]))
	}
}

// A two-element action with a non-trivial stabilizer: reflections of a
// segment. Elements 0 (identity) and 1 (swap endpoints) act on the pair
// values {0,1,2}: value 2 is the midpoint, fixed by both.
func reflect(e, x int) int {
	if e == 1 && x < 2 {
		return 1 - x
	}

	return x
}

func TestMakeInvariantSubgroupIndices(t *testing.T) {
	elems := []int{0, 1}

	require.Equal(t, []int{0, 1}, symgroup.MakeInvariantSubgroupIndices(2, elems, intLess, reflect))
	require.Equal(t, []int{0}, symgroup.MakeInvariantSubgroupIndices(0, elems, intLess, reflect))
}

func TestMakeEquivalenceMap_EmptyOrbit(t *testing.T) {
	eqMap := symgroup.MakeEquivalenceMap(nil, c4, intLess, rotate)
	require.Empty(t, eqMap)
}
