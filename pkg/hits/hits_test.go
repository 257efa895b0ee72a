package hits_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
	"github.com/dicklesworthstone/graphrank/pkg/hits"
)

func buildS6() graphapi.Graph {
	g := simple.NewDirectedGraph()
	for i := int64(0); i < 3; i++ {
		g.AddNode(simple.Node(i))
	}
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(1)))
	g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(2)))
	g.SetEdge(g.NewEdge(simple.Node(1), simple.Node(2)))
	g.SetEdge(g.NewEdge(simple.Node(2), simple.Node(0)))
	return graphapi.FromSimpleDirected(g)
}

func l2Norm(scores graphapi.NodeScores) float64 {
	var sumSq float64
	for _, v := range scores {
		sumSq += v * v
	}
	return math.Sqrt(sumSq)
}

func TestHitsUnitNormAndAuthRanking(t *testing.T) {
	g := buildS6()
	result := hits.Run(g, hits.DefaultConfig())

	if got := l2Norm(result.Auth); math.Abs(got-1) > 1e-9 {
		t.Fatalf("||auth|| = %v, want 1", got)
	}
	if got := l2Norm(result.Hub); math.Abs(got-1) > 1e-9 {
		t.Fatalf("||hub|| = %v, want 1", got)
	}

	for id, score := range result.Auth {
		if id != 2 && score > result.Auth[2] {
			t.Fatalf("auth[%d]=%v exceeds auth[2]=%v", id, score, result.Auth[2])
		}
	}
}

func TestHitsEmptyGraph(t *testing.T) {
	g := graphapi.FromSimpleDirected(simple.NewDirectedGraph())
	result := hits.Run(g, hits.DefaultConfig())
	if len(result.Auth) != 0 || len(result.Hub) != 0 {
		t.Fatalf("expected empty scores for empty graph")
	}
}
