// Package graphtest builds small, deterministic graph topologies for
// exercising the centrality packages and their property tests. Every
// generator produces dense node ids 0..n-1, mirroring the id allocation
// gonum's simple graph builders already hand out in production use.
package graphtest

import (
	"math/rand"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/dicklesworthstone/graphrank/pkg/graphapi"
)

func newDirected(n int) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	return g
}

func newUndirected(n int) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	return g
}

// Chain returns a linear path 0 -> 1 -> ... -> n-1 (directed) or the
// equivalent path with undirected edges.
func Chain(n int, directed bool) graphapi.Graph {
	if directed {
		g := newDirected(n)
		for i := 0; i < n-1; i++ {
			g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(i+1))))
		}
		return graphapi.FromSimpleDirected(g)
	}
	g := newUndirected(n)
	for i := 0; i < n-1; i++ {
		g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(i+1))))
	}
	return graphapi.FromSimpleUndirected(g)
}

// Cycle returns 0 -> 1 -> ... -> n-1 -> 0.
func Cycle(n int, directed bool) graphapi.Graph {
	if directed {
		g := newDirected(n)
		for i := 0; i < n; i++ {
			g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64((i+1)%n))))
		}
		return graphapi.FromSimpleDirected(g)
	}
	g := newUndirected(n)
	for i := 0; i < n; i++ {
		g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64((i+1)%n))))
	}
	return graphapi.FromSimpleUndirected(g)
}

// Star returns a hub (node 0) with n-1 spokes. When directed, edges run
// hub -> spoke, so the hub's eccentricity is 1 and spokes have no
// out-neighbors.
func Star(n int, directed bool) graphapi.Graph {
	if directed {
		g := newDirected(n)
		for i := 1; i < n; i++ {
			g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(int64(i))))
		}
		return graphapi.FromSimpleDirected(g)
	}
	g := newUndirected(n)
	for i := 1; i < n; i++ {
		g.SetEdge(g.NewEdge(simple.Node(0), simple.Node(int64(i))))
	}
	return graphapi.FromSimpleUndirected(g)
}

// Complete returns the complete graph on n nodes: every lower-indexed node
// connects to every higher-indexed node (and, when directed, only in that
// direction, keeping the result acyclic).
func Complete(n int, directed bool) graphapi.Graph {
	if directed {
		g := newDirected(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
		return graphapi.FromSimpleDirected(g)
	}
	g := newUndirected(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
		}
	}
	return graphapi.FromSimpleUndirected(g)
}

// Isolated returns n nodes with no edges at all.
func Isolated(n int) graphapi.Graph {
	g := newUndirected(n)
	return graphapi.FromSimpleUndirected(g)
}

// RandomDAG returns a random directed acyclic graph on n nodes: for every
// ordered pair (i, j) with i<j, an edge i->j is added with probability
// density. Deterministic for a given seed.
func RandomDAG(n int, density float64, seed int64) graphapi.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := newDirected(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
	}
	return graphapi.FromSimpleDirected(g)
}

// RandomUndirected returns an Erdos-Renyi random graph on n nodes with edge
// probability density. Deterministic for a given seed.
func RandomUndirected(n int, density float64, seed int64) graphapi.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := newUndirected(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < density {
				g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
	}
	return graphapi.FromSimpleUndirected(g)
}

// Disjoint concatenates one or more graphs into a single graph with no
// edges between the original components, offsetting each component's node
// ids so they remain distinct. All inputs must share the same
// directedness; the result does too.
func Disjoint(gs ...graphapi.Graph) graphapi.Graph {
	if len(gs) == 0 {
		return Isolated(0)
	}
	directed := gs[0].Directed()
	total := 0
	for _, g := range gs {
		total += g.NodeCount()
	}

	if directed {
		dg := newDirected(total)
		offset := int64(0)
		for _, g := range gs {
			for _, n := range g.Nodes() {
				for i := 0; i < n.OutDegree(); i++ {
					w := n.OutNeighbor(i)
					dg.SetEdge(dg.NewEdge(simple.Node(n.ID()+offset), simple.Node(w+offset)))
				}
			}
			offset += int64(g.NodeCount())
		}
		return graphapi.FromSimpleDirected(dg)
	}

	ug := newUndirected(total)
	offset := int64(0)
	for _, g := range gs {
		for _, n := range g.Nodes() {
			for i := 0; i < n.OutDegree(); i++ {
				w := n.OutNeighbor(i)
				ug.SetEdge(ug.NewEdge(simple.Node(n.ID()+offset), simple.Node(w+offset)))
			}
		}
		offset += int64(g.NodeCount())
	}
	return graphapi.FromSimpleUndirected(ug)
}

// Disconnected returns `components` copies of Chain(componentSize, directed)
// glued into one graph with disjoint node ids.
func Disconnected(components, componentSize int, directed bool) graphapi.Graph {
	parts := make([]graphapi.Graph, components)
	for i := range parts {
		parts[i] = Chain(componentSize, directed)
	}
	return Disjoint(parts...)
}
