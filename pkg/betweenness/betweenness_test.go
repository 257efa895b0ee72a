package betweenness_test

import (
	"math/rand"
	"testing"

	"github.com/dicklesworthstone/graphrank/pkg/betweenness"
	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
	"github.com/dicklesworthstone/graphrank/pkg/graphtest"
)

func TestNodeUndirectedStar(t *testing.T) {
	g := graphtest.Star(5, false)
	scores := betweenness.NodeUndirected(g)

	if got, want := scores[0], 6.0; got != want {
		t.Fatalf("center betweenness = %v, want %v", got, want)
	}
	for _, leaf := range []int64{1, 2, 3, 4} {
		if got := scores[leaf]; got != 0 {
			t.Fatalf("leaf %d betweenness = %v, want 0", leaf, got)
		}
	}
}

func TestNodeDirectedChainHasNoHalving(t *testing.T) {
	// 0 -> 1 -> 2 -> 3: node 1 lies on 0->2 and 0->3, node 2 on 0->3 and
	// 1->3, so each scores 2 unhalved (halving would give 1).
	g := graphtest.Chain(4, true)
	scores := betweenness.NodeDirected(g)

	if got, want := scores[1], 2.0; got != want {
		t.Fatalf("node 1 betweenness = %v, want %v", got, want)
	}
	if got, want := scores[2], 2.0; got != want {
		t.Fatalf("node 2 betweenness = %v, want %v", got, want)
	}
}

// TestNodeAndEdgeUndirectedChain checks node and edge betweenness together
// on the path graph 0-1-2-3, against hand-computed Brandes values: the two
// internal nodes each sit on two shortest paths (node 1: {0,2} and {0,3};
// node 2: {1,3} and {0,3}), and each edge's unhalved accumulation is the sum
// of per-source contributions from every BFS tree that uses it.
func TestNodeAndEdgeUndirectedChain(t *testing.T) {
	g := graphtest.Chain(4, false)
	nodeScores, edgeScores := betweenness.NodeAndEdgeUndirected(g)

	wantNodes := map[int64]float64{0: 0, 1: 2, 2: 2, 3: 0}
	for id, want := range wantNodes {
		if got := nodeScores[id]; got != want {
			t.Fatalf("node %d betweenness = %v, want %v", id, got, want)
		}
	}

	if len(edgeScores) != 3 {
		t.Fatalf("edge count = %d, want 3", len(edgeScores))
	}
	wantEdges := map[graphapi.EdgeKey]float64{
		{U: 0, V: 1}: 6,
		{U: 1, V: 2}: 8,
		{U: 2, V: 3}: 6,
	}
	for key, want := range wantEdges {
		if got := edgeScores[key]; got != want {
			t.Fatalf("edge %v betweenness = %v, want %v", key, got, want)
		}
	}
}

func TestSampledAllNodesMatchesExact(t *testing.T) {
	g := graphtest.Star(5, false)
	exact := betweenness.NodeUndirected(g)

	sampled, _, k := betweenness.Sampled(g, 1.0, true, false, false, rand.New(rand.NewSource(1)))
	if k != 5 {
		t.Fatalf("sample size = %d, want 5 (frac=1.0)", k)
	}
	for id, want := range exact {
		if got := sampled[id]; got != want {
			t.Fatalf("node %d sampled(frac=1) = %v, want exact %v", id, got, want)
		}
	}
}

func TestParallelSampledMatchesSerialSampled(t *testing.T) {
	g := graphtest.RandomDAG(30, 0.2, 7)

	serial, _, k1 := betweenness.Sampled(g, 1.0, true, false, true, rand.New(rand.NewSource(3)))
	parallel, _, k2 := betweenness.ParallelSampled(g, 1.0, true, false, true, rand.New(rand.NewSource(3)))

	if k1 != k2 {
		t.Fatalf("sample sizes differ: serial=%d parallel=%d", k1, k2)
	}
	for id, want := range serial {
		got := parallel[id]
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("node %d: serial=%v parallel=%v", id, want, got)
		}
	}
}

func TestRecommendSampleSizeSmallGraphIsExact(t *testing.T) {
	if got := betweenness.RecommendSampleSize(50, 100); got != 50 {
		t.Fatalf("RecommendSampleSize(50,100) = %d, want 50", got)
	}
}
