package pathcost_test

import (
	"testing"

	"github.com/geodels/biolec/conngraph"
	"github.com/geodels/biolec/grid"
	"github.com/geodels/biolec/pathcost"
)

// BenchmarkCloseness measures one single-source closeness pass over a
// flat 64×64 grid under 8-connectivity, the dominant inner loop of a
// full LEC run.
func BenchmarkCloseness(b *testing.B) {
	const side = 64
	z := make([][]float64, side)
	for r := range z {
		z[r] = make([]float64, side)
	}
	g, err := grid.New(z, grid.DefaultOptions())
	if err != nil {
		b.Fatalf("New error: %v", err)
	}
	members := make([]int, g.Len())
	for i := range members {
		members[i] = i
	}
	cg, err := conngraph.Build(g, members, nil)
	if err != nil {
		b.Fatalf("Build error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = pathcost.Closeness(cg, (i*997)%g.Len()); err != nil {
			b.Fatalf("Closeness error: %v", err)
		}
	}
}
