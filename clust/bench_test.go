package clust_test

import (
	"testing"

	"github.com/quarzite/quarzite/clust"
	"github.com/quarzite/quarzite/symgroup"
	"github.com/quarzite/quarzite/xtal"
)

// benchmarkOrbits grows periodic orbits on the simple cubic crystal with
// the given per-branch distance ceilings. It resets the timer after the
// fixture setup.
func benchmarkOrbits(b *testing.B, maxLength []float64) {
	lat, err := xtal.NewLattice([3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1}, 0)
	if err != nil {
		b.Fatalf("NewLattice failed: %v", err)
	}
	structure, err := xtal.NewBasicStructure(lat, [][3]float64{{0, 0, 0}})
	if err != nil {
		b.Fatalf("NewBasicStructure failed: %v", err)
	}
	group, err := symgroup.NewSymGroup(cubicPointGroupOps(), xtal.SymOpPeriodicMatches(lat))
	if err != nil {
		b.Fatalf("NewSymGroup failed: %v", err)
	}
	reps, err := xtal.MakeUnitCellCoordSymGroupRep(group.Elements(), structure)
	if err != nil {
		b.Fatalf("MakeUnitCellCoordSymGroupRep failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = clust.MakePrimPeriodicOrbits(structure, reps, clust.OrbitOptions{MaxLength: maxLength})
	}
}

// BenchmarkMakePrimPeriodicOrbits_Pairs measures pair generation up to the
// second neighbor shell.
func BenchmarkMakePrimPeriodicOrbits_Pairs(b *testing.B) {
	benchmarkOrbits(b, []float64{0, 0, 1.8})
}

// BenchmarkMakePrimPeriodicOrbits_Triplets adds a triplet branch with the
// same ceiling.
func BenchmarkMakePrimPeriodicOrbits_Triplets(b *testing.B) {
	benchmarkOrbits(b, []float64{0, 0, 1.8, 1.8})
}
