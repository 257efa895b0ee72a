package pagerank_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/dicklesworthstone/graphrank/pkg/graphtest"
	"github.com/dicklesworthstone/graphrank/pkg/pagerank"
)

// TestPropertyRankSumsToOne checks invariant 1: PageRank sums to 1 +/-
// N*1e-12 at return, across random directed graphs.
func TestPropertyRankSumsToOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(rt, "n")
		density := rapid.Float64Range(0, 0.5).Draw(rt, "density")
		seed := rapid.Int64().Draw(rt, "seed")

		g := graphtest.RandomDAG(n, density, seed)
		result := pagerank.Run(g, pagerank.DefaultConfig())

		var total float64
		for _, score := range result.Scores {
			total += score
		}
		if diff := math.Abs(total - 1); diff > float64(n)*1e-12+1e-12 {
			rt.Fatalf("rank sum = %v, want 1 +/- N*1e-12 (n=%d)", total, n)
		}
	})
}

// TestPropertyRerunConvergesQuickly checks invariant 8: re-running PageRank
// seeded with a prior result's vector converges within <=2 iterations to
// the same fixed point.
func TestPropertyRerunConvergesQuickly(t *testing.T) {
	g := graphtest.RandomDAG(30, 0.15, 99)
	first := pagerank.Run(g, pagerank.DefaultConfig())
	if !first.Converged {
		t.Fatalf("expected first run to converge")
	}

	cfg := pagerank.DefaultConfig()
	cfg.Init = first.Scores
	second := pagerank.Run(g, cfg)

	if !second.Converged || second.Iterations > 2 {
		t.Fatalf("rerun from prior result: converged=%v iterations=%d, want converged within 2", second.Converged, second.Iterations)
	}
	for id, want := range first.Scores {
		if got := second.Scores[id]; math.Abs(got-want) > 1e-6 {
			t.Fatalf("node %d: first=%v second=%v", id, want, got)
		}
	}
}
